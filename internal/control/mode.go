package control

import "fmt"

// Mode is the control mode: while Disabled none of the pipeline stages
// run and the pointer is free; while Enabled the pipeline runs every tick
// and the pointer is captured.
type Mode uint8

const (
	ModeDisabled Mode = iota
	ModeEnabled
)

// String returns the mode name.
func (m Mode) String() string {
	if m == ModeEnabled {
		return "Enabled"
	}
	return "Disabled"
}

// PointerLock is the window collaborator's cursor capture surface.
type PointerLock interface {
	// Capture hides the cursor and locks it to the window.
	Capture() error
	// Release undoes Capture.
	Release() error
}

// Switch gates the control pipeline. It starts Disabled. Transition
// requests to the current mode are reported as errors rather than
// silently ignored, so callers notice conflicting requests.
type Switch struct {
	mode    Mode
	pointer PointerLock
}

// NewSwitch creates a switch in the Disabled mode.
func NewSwitch(pointer PointerLock) *Switch {
	return &Switch{pointer: pointer}
}

// Mode returns the current mode.
func (s *Switch) Mode() Mode {
	return s.mode
}

// Enabled reports whether the pipeline should run this tick.
func (s *Switch) Enabled() bool {
	return s.mode == ModeEnabled
}

// Set transitions to the requested mode, acquiring or releasing pointer
// capture accordingly.
func (s *Switch) Set(mode Mode) error {
	if mode == s.mode {
		return fmt.Errorf("control mode is already %s", mode)
	}

	switch mode {
	case ModeEnabled:
		if err := s.pointer.Capture(); err != nil {
			return fmt.Errorf("acquiring pointer capture: %w", err)
		}
	case ModeDisabled:
		if err := s.pointer.Release(); err != nil {
			return fmt.Errorf("releasing pointer capture: %w", err)
		}
	default:
		return fmt.Errorf("unknown control mode %d", mode)
	}

	s.mode = mode
	return nil
}
