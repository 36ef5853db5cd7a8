package states

import (
	"github.com/Faultbox/strider/internal/control"
	"github.com/Faultbox/strider/internal/logger"
)

// PausedState freezes the simulation. Controls are released and physics is
// inactive, both handled by PlayingState.Exit on the way in.
type PausedState struct {
	manager *Manager
	playing *PlayingState
	source  control.Source
}

// NewPausedState creates the paused state resuming into playing.
func NewPausedState(manager *Manager, playing *PlayingState, source control.Source) *PausedState {
	return &PausedState{
		manager: manager,
		playing: playing,
		source:  source,
	}
}

// Enter is called when entering this state.
func (s *PausedState) Enter() error {
	logger.Info("game paused")
	return nil
}

// Exit is called when leaving this state.
func (s *PausedState) Exit() error {
	logger.Info("game resumed")
	return nil
}

// Update waits for the pause toggle and schedules the resume.
func (s *PausedState) Update(dt float64) error {
	if pauseToggleRequested(s.source) {
		s.manager.Change(s.playing)
	}
	return nil
}
