package states

import (
	"fmt"

	"github.com/Faultbox/strider/internal/control"
	"github.com/Faultbox/strider/internal/engine/physics"
	"github.com/Faultbox/strider/internal/logger"
)

// PlayingState runs the first person controller. Entering it captures the
// pointer and wakes the physics simulation; leaving it undoes both.
type PlayingState struct {
	manager  *Manager
	controls *control.Switch
	pipeline *control.Pipeline
	world    *physics.World
	source   control.Source
	paused   *PausedState
}

// NewPlayingState creates the playing state.
func NewPlayingState(manager *Manager, controls *control.Switch, pipeline *control.Pipeline, world *physics.World, source control.Source) *PlayingState {
	return &PlayingState{
		manager:  manager,
		controls: controls,
		pipeline: pipeline,
		world:    world,
		source:   source,
	}
}

// SetPauseTarget sets the state entered when the player pauses.
func (s *PlayingState) SetPauseTarget(p *PausedState) {
	s.paused = p
}

// Enter is called when entering this state.
func (s *PlayingState) Enter() error {
	if err := s.controls.Set(control.ModeEnabled); err != nil {
		return fmt.Errorf("enabling controls: %w", err)
	}
	s.world.SetActive(true)
	logger.Info("entering PlayingState")
	return nil
}

// Exit is called when leaving this state.
func (s *PlayingState) Exit() error {
	s.world.SetActive(false)
	if err := s.controls.Set(control.ModeDisabled); err != nil {
		return fmt.Errorf("disabling controls: %w", err)
	}
	return nil
}

// Update runs one controller tick, or schedules the pause transition.
func (s *PlayingState) Update(dt float64) error {
	if s.paused != nil && pauseToggleRequested(s.source) {
		s.manager.Change(s.paused)
		return nil
	}
	return s.pipeline.Tick(s.source)
}
