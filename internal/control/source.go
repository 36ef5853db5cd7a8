package control

import "github.com/Faultbox/strider/pkg/math"

// Key is a logical keyboard key the controller cares about. The input
// collaborator maps physical scancodes to these.
type Key uint8

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeySpace
	KeyEscape
)

// Axis is a named gamepad analog axis. Values are in [-1, 1]; for stick Y
// axes, positive means up/forward.
type Axis uint8

const (
	AxisLeftX Axis = iota
	AxisLeftY
	AxisRightX
	AxisRightY
)

// Button is a named gamepad button.
type Button uint8

const (
	ButtonSouth Button = iota
	ButtonStart
)

// Gamepad is one connected game controller.
type Gamepad interface {
	// Axis returns the axis value in [-1, 1].
	Axis(Axis) float32
	// JustPressed reports whether the button went down this tick.
	JustPressed(Button) bool
}

// Source is the device state the sampler reads each tick.
type Source interface {
	// Pressed reports whether the key is currently held.
	Pressed(Key) bool
	// JustPressed reports whether the key went down this tick
	// (edge-triggered: one tick per press transition).
	JustPressed(Key) bool
	// MouseDeltas returns the relative mouse motions accumulated since
	// the previous tick.
	MouseDeltas() []math.Vec2
	// Gamepads returns the connected game controllers.
	Gamepads() []Gamepad
}
