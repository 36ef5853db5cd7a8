package control

import "github.com/Faultbox/strider/pkg/math"

// Right-stick look input is much smaller per tick than mouse motion, so it
// is scaled up to give comparable turn rates.
const (
	lookStickScaleX = 11
	lookStickScaleY = 6.5
)

// SampleMovement reads keyboard and gamepad state into a fresh movement
// intent. Keys are checked in a fixed order, so when both keys of an axis
// pair are held the later check wins (D over A, W over S). A nonzero
// left-stick axis on any connected gamepad overrides the keyboard on that
// axis; with several pads reporting, the last one iterated wins.
func SampleMovement(src Source) Movement {
	m := NeutralMovement()

	if src.Pressed(KeyA) || src.Pressed(KeyArrowLeft) {
		m.LeftRight = MoveDirection{Tag: MoveLeft, Magnitude: 1}
	}
	if src.Pressed(KeyD) || src.Pressed(KeyArrowRight) {
		m.LeftRight = MoveDirection{Tag: MoveRight, Magnitude: 1}
	}
	if src.Pressed(KeyS) || src.Pressed(KeyArrowDown) {
		m.ForwardBack = MoveDirection{Tag: MoveBack, Magnitude: 1}
	}
	if src.Pressed(KeyW) || src.Pressed(KeyArrowUp) {
		m.ForwardBack = MoveDirection{Tag: MoveForward, Magnitude: 1}
	}

	for _, pad := range src.Gamepads() {
		if v := pad.Axis(AxisLeftX); v != 0 {
			if v > 0 {
				m.LeftRight = MoveDirection{Tag: MoveRight, Magnitude: v}
			} else {
				m.LeftRight = MoveDirection{Tag: MoveLeft, Magnitude: -v}
			}
		}
		if v := pad.Axis(AxisLeftY); v != 0 {
			if v > 0 {
				m.ForwardBack = MoveDirection{Tag: MoveForward, Magnitude: v}
			} else {
				m.ForwardBack = MoveDirection{Tag: MoveBack, Magnitude: -v}
			}
		}
	}

	return m
}

// SampleLookaround reads mouse and gamepad state into a fresh look intent.
// Mouse deltas accumulated over the tick are summed per axis; a zero sum
// leaves that axis neutral. A nonzero right-stick axis overrides the
// mouse. Stick vertical is up-positive while mouse vertical is
// down-positive; both conventions are kept as-is.
func SampleLookaround(src Source) Lookaround {
	l := NeutralLookaround()

	var sum math.Vec2
	for _, delta := range src.MouseDeltas() {
		sum = sum.Add(delta)
	}
	if sum.X > 0 {
		l.LeftRight = LookDirection{Tag: LookRight, Magnitude: sum.X}
	} else if sum.X < 0 {
		l.LeftRight = LookDirection{Tag: LookLeft, Magnitude: -sum.X}
	}
	if sum.Y > 0 {
		l.UpDown = LookDirection{Tag: LookDown, Magnitude: sum.Y}
	} else if sum.Y < 0 {
		l.UpDown = LookDirection{Tag: LookUp, Magnitude: -sum.Y}
	}

	for _, pad := range src.Gamepads() {
		if v := pad.Axis(AxisRightX); v != 0 {
			if v > 0 {
				l.LeftRight = LookDirection{Tag: LookRight, Magnitude: v * lookStickScaleX}
			} else {
				l.LeftRight = LookDirection{Tag: LookLeft, Magnitude: -v * lookStickScaleX}
			}
		}
		if v := pad.Axis(AxisRightY); v != 0 {
			if v > 0 {
				l.UpDown = LookDirection{Tag: LookUp, Magnitude: v * lookStickScaleY}
			} else {
				l.UpDown = LookDirection{Tag: LookDown, Magnitude: -v * lookStickScaleY}
			}
		}
	}

	return l
}
