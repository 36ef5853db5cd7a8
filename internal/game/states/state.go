// Package states implements game state management.
package states

import "github.com/Faultbox/strider/internal/control"

// State represents a game state (playing, paused, etc.)
type State interface {
	// Enter is called when entering this state.
	Enter() error

	// Exit is called when leaving this state.
	Exit() error

	// Update is called every frame.
	Update(dt float64) error
}

// Manager manages game state transitions.
type Manager struct {
	current State
	next    State
}

// NewManager creates a new state manager.
func NewManager() *Manager {
	return &Manager{}
}

// Current returns the current state.
func (m *Manager) Current() State {
	return m.current
}

// Change schedules a state change.
func (m *Manager) Change(next State) {
	m.next = next
}

// Update processes state changes and updates current state.
func (m *Manager) Update(dt float64) error {
	// Handle state transition
	if m.next != nil {
		if m.current != nil {
			if err := m.current.Exit(); err != nil {
				return err
			}
		}
		m.current = m.next
		m.next = nil
		if err := m.current.Enter(); err != nil {
			return err
		}
	}

	// Update current state
	if m.current != nil {
		return m.current.Update(dt)
	}
	return nil
}

// pauseToggleRequested reports whether Escape or a controller Start button
// went down this frame.
func pauseToggleRequested(src control.Source) bool {
	if src.JustPressed(control.KeyEscape) {
		return true
	}
	for _, pad := range src.Gamepads() {
		if pad.JustPressed(control.ButtonStart) {
			return true
		}
	}
	return false
}
