package control

import (
	"testing"

	"github.com/Faultbox/strider/pkg/math"
)

func TestSampleMovementIdle(t *testing.T) {
	m := SampleMovement(newFakeSource())
	if !m.Equal(NeutralMovement()) {
		t.Errorf("no input should sample neutral movement, got %+v", m)
	}
}

func TestSampleMovementSingleKeys(t *testing.T) {
	tests := []struct {
		name string
		key  Key
		want Movement
	}{
		{"w", KeyW, Movement{MoveDirection{MoveRight, 0}, MoveDirection{MoveForward, 1}}},
		{"s", KeyS, Movement{MoveDirection{MoveRight, 0}, MoveDirection{MoveBack, 1}}},
		{"a", KeyA, Movement{MoveDirection{MoveLeft, 1}, MoveDirection{MoveForward, 0}}},
		{"d", KeyD, Movement{MoveDirection{MoveRight, 1}, MoveDirection{MoveForward, 0}}},
		{"arrow up", KeyArrowUp, Movement{MoveDirection{MoveRight, 0}, MoveDirection{MoveForward, 1}}},
		{"arrow down", KeyArrowDown, Movement{MoveDirection{MoveRight, 0}, MoveDirection{MoveBack, 1}}},
		{"arrow left", KeyArrowLeft, Movement{MoveDirection{MoveLeft, 1}, MoveDirection{MoveForward, 0}}},
		{"arrow right", KeyArrowRight, Movement{MoveDirection{MoveRight, 1}, MoveDirection{MoveForward, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newFakeSource()
			src.pressed[tt.key] = true
			m := SampleMovement(src)
			if !m.Equal(tt.want) {
				t.Errorf("got %+v, want %+v", m, tt.want)
			}
		})
	}
}

func TestSampleMovementAxesIndependent(t *testing.T) {
	src := newFakeSource()
	src.pressed[KeyW] = true
	src.pressed[KeyD] = true

	m := SampleMovement(src)
	want := Movement{MoveDirection{MoveRight, 1}, MoveDirection{MoveForward, 1}}
	if !m.Equal(want) {
		t.Errorf("holding forward+right should set both axes, got %+v", m)
	}
}

func TestSampleMovementOpposingKeysLastCheckedWins(t *testing.T) {
	src := newFakeSource()
	src.pressed[KeyA] = true
	src.pressed[KeyD] = true
	src.pressed[KeyW] = true
	src.pressed[KeyS] = true

	m := SampleMovement(src)
	// Evaluation order is A, D, S, W: D wins laterally, W longitudinally.
	want := Movement{MoveDirection{MoveRight, 1}, MoveDirection{MoveForward, 1}}
	if !m.Equal(want) {
		t.Errorf("got %+v, want %+v", m, want)
	}
}

func TestSampleMovementNoLatchingAcrossTicks(t *testing.T) {
	src := newFakeSource()
	src.pressed[KeyW] = true

	m := SampleMovement(src)
	if !m.ForwardBack.Equal(MoveDirection{MoveForward, 1}) {
		t.Fatalf("press tick should sample Forward(1), got %+v", m.ForwardBack)
	}

	// Release before the next tick: the axis must reset to neutral.
	src.pressed[KeyW] = false
	m = SampleMovement(src)
	if !m.ForwardBack.Equal(MoveDirection{MoveForward, 0}) {
		t.Errorf("release tick should sample Forward(0), got %+v", m.ForwardBack)
	}
}

func TestSampleMovementGamepadOverridesKeyboard(t *testing.T) {
	src := newFakeSource()
	src.pressed[KeyA] = true
	src.pads = []Gamepad{&fakeGamepad{axes: map[Axis]float32{AxisLeftX: 0.5}}}

	m := SampleMovement(src)
	if !m.LeftRight.Equal(MoveDirection{MoveRight, 0.5}) {
		t.Errorf("nonzero stick should override keyboard, got %+v", m.LeftRight)
	}
}

func TestSampleMovementGamepadZeroAxisKeepsKeyboard(t *testing.T) {
	src := newFakeSource()
	src.pressed[KeyA] = true
	src.pads = []Gamepad{&fakeGamepad{axes: map[Axis]float32{}}}

	m := SampleMovement(src)
	if !m.LeftRight.Equal(MoveDirection{MoveLeft, 1}) {
		t.Errorf("a centered stick should leave keyboard intent, got %+v", m.LeftRight)
	}
}

func TestSampleMovementGamepadStickDirections(t *testing.T) {
	src := newFakeSource()
	src.pads = []Gamepad{&fakeGamepad{axes: map[Axis]float32{
		AxisLeftX: -0.25,
		AxisLeftY: -0.75,
	}}}

	m := SampleMovement(src)
	if !m.LeftRight.Equal(MoveDirection{MoveLeft, 0.25}) {
		t.Errorf("negative stick X should map to Left, got %+v", m.LeftRight)
	}
	if !m.ForwardBack.Equal(MoveDirection{MoveBack, 0.75}) {
		t.Errorf("negative stick Y should map to Back, got %+v", m.ForwardBack)
	}
}

func TestSampleMovementLastGamepadWins(t *testing.T) {
	src := newFakeSource()
	src.pads = []Gamepad{
		&fakeGamepad{axes: map[Axis]float32{AxisLeftX: 0.3}},
		&fakeGamepad{axes: map[Axis]float32{AxisLeftX: -0.9}},
	}

	m := SampleMovement(src)
	if !m.LeftRight.Equal(MoveDirection{MoveLeft, 0.9}) {
		t.Errorf("last connected pad with nonzero axis should win, got %+v", m.LeftRight)
	}
}

func TestSampleLookaroundIdle(t *testing.T) {
	l := SampleLookaround(newFakeSource())
	if !l.Equal(NeutralLookaround()) {
		t.Errorf("no input should sample neutral lookaround, got %+v", l)
	}
}

func TestSampleLookaroundSumsMouseDeltas(t *testing.T) {
	src := newFakeSource()
	src.deltas = []math.Vec2{{X: 3, Y: -1}, {X: 2, Y: -1.5}}

	l := SampleLookaround(src)
	if !l.LeftRight.Equal(LookDirection{LookRight, 5}) {
		t.Errorf("positive summed x should map to Right(5), got %+v", l.LeftRight)
	}
	if !l.UpDown.Equal(LookDirection{LookUp, 2.5}) {
		t.Errorf("negative summed y should map to Up(2.5), got %+v", l.UpDown)
	}
}

func TestSampleLookaroundMouseDownConvention(t *testing.T) {
	src := newFakeSource()
	src.deltas = []math.Vec2{{X: -4, Y: 6}}

	l := SampleLookaround(src)
	if !l.LeftRight.Equal(LookDirection{LookLeft, 4}) {
		t.Errorf("negative x should map to Left, got %+v", l.LeftRight)
	}
	if !l.UpDown.Equal(LookDirection{LookDown, 6}) {
		t.Errorf("positive mouse y should map to Down, got %+v", l.UpDown)
	}
}

func TestSampleLookaroundDeltasCancelToNeutral(t *testing.T) {
	src := newFakeSource()
	src.deltas = []math.Vec2{{X: 5}, {X: -5}}

	l := SampleLookaround(src)
	if !l.Equal(NeutralLookaround()) {
		t.Errorf("deltas summing to zero should leave the axis neutral, got %+v", l)
	}
}

func TestSampleLookaroundStickOverridesMouse(t *testing.T) {
	src := newFakeSource()
	src.deltas = []math.Vec2{{X: 100, Y: 100}}
	src.pads = []Gamepad{&fakeGamepad{axes: map[Axis]float32{
		AxisRightX: -0.5,
		AxisRightY: 0.5,
	}}}

	l := SampleLookaround(src)
	if !l.LeftRight.Equal(LookDirection{LookLeft, 0.5 * lookStickScaleX}) {
		t.Errorf("stick should override mouse laterally, got %+v", l.LeftRight)
	}
	// Stick vertical is up-positive, unlike the mouse.
	if !l.UpDown.Equal(LookDirection{LookUp, 0.5 * lookStickScaleY}) {
		t.Errorf("positive stick Y should map to Up, got %+v", l.UpDown)
	}
}
