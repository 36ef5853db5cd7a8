// Package control implements the first-person locomotion core: sampling
// device input into per-tick intents, integrating look intent into body
// yaw and camera pitch, computing the horizontal movement force, and
// gating jumps on ground contact. The four stages run from a single
// explicit pipeline, once per simulation tick.
package control

import "github.com/chewxy/math32"

// Two direction values with the same tag compare equal when their
// magnitudes differ by less than this margin.
const directionMargin = 0.01

// MoveTag identifies a movement direction.
type MoveTag uint8

const (
	MoveLeft MoveTag = iota
	MoveRight
	MoveForward
	MoveBack
)

// String returns the tag name.
func (t MoveTag) String() string {
	switch t {
	case MoveLeft:
		return "Left"
	case MoveRight:
		return "Right"
	case MoveForward:
		return "Forward"
	case MoveBack:
		return "Back"
	}
	return "Unknown"
}

// MoveDirection is a movement direction tag paired with the magnitude
// (or speed) with which the subject should change its position.
type MoveDirection struct {
	Tag       MoveTag
	Magnitude float32
}

// Equal reports tag-exact, magnitude-approximate equality. It exists for
// tests and determinism checks; gameplay logic branches on the tag, never
// on this comparison.
func (d MoveDirection) Equal(other MoveDirection) bool {
	return d.Tag == other.Tag && math32.Abs(d.Magnitude-other.Magnitude) < directionMargin
}

// LookTag identifies a look direction.
type LookTag uint8

const (
	LookLeft LookTag = iota
	LookRight
	LookUp
	LookDown
)

// String returns the tag name.
func (t LookTag) String() string {
	switch t {
	case LookLeft:
		return "Left"
	case LookRight:
		return "Right"
	case LookUp:
		return "Up"
	case LookDown:
		return "Down"
	}
	return "Unknown"
}

// LookDirection is a look direction tag paired with the magnitude with
// which the subject should change its orientation.
type LookDirection struct {
	Tag       LookTag
	Magnitude float32
}

// Equal reports tag-exact, magnitude-approximate equality. Reserved for
// tests and determinism checks, like MoveDirection.Equal.
func (d LookDirection) Equal(other LookDirection) bool {
	return d.Tag == other.Tag && math32.Abs(d.Magnitude-other.Magnitude) < directionMargin
}
