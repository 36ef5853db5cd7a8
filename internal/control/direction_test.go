package control

import "testing"

func TestMoveDirectionEqualWithinMargin(t *testing.T) {
	a := MoveDirection{Tag: MoveLeft, Magnitude: 0}
	b := MoveDirection{Tag: MoveLeft, Magnitude: 0.001}
	if !a.Equal(b) {
		t.Error("magnitudes within margin should compare equal")
	}
}

func TestMoveDirectionEqualAtMargin(t *testing.T) {
	a := MoveDirection{Tag: MoveLeft, Magnitude: 0}
	b := MoveDirection{Tag: MoveLeft, Magnitude: 0.01}
	if a.Equal(b) {
		t.Error("a magnitude difference of exactly the margin should not compare equal")
	}
}

func TestMoveDirectionEqualOutOfMargin(t *testing.T) {
	a := MoveDirection{Tag: MoveLeft, Magnitude: 0}
	b := MoveDirection{Tag: MoveLeft, Magnitude: 0.02}
	if a.Equal(b) {
		t.Error("magnitudes outside the margin should not compare equal")
	}
}

func TestMoveDirectionEqualDifferentTags(t *testing.T) {
	left := MoveDirection{Tag: MoveLeft, Magnitude: 0.5}
	right := MoveDirection{Tag: MoveRight, Magnitude: 0.5}
	if left.Equal(right) {
		t.Error("different tags should never compare equal, regardless of magnitude")
	}
}

func TestLookDirectionEqual(t *testing.T) {
	a := LookDirection{Tag: LookUp, Magnitude: 1}
	b := LookDirection{Tag: LookUp, Magnitude: 1.005}
	if !a.Equal(b) {
		t.Error("magnitudes within margin should compare equal")
	}

	c := LookDirection{Tag: LookDown, Magnitude: 1}
	if a.Equal(c) {
		t.Error("Up and Down should never compare equal")
	}
}

func TestNeutralIntents(t *testing.T) {
	m := NeutralMovement()
	if m.LeftRight.Tag != MoveRight || m.LeftRight.Magnitude != 0 {
		t.Errorf("neutral lateral should be Right(0), got %s(%v)", m.LeftRight.Tag, m.LeftRight.Magnitude)
	}
	if m.ForwardBack.Tag != MoveForward || m.ForwardBack.Magnitude != 0 {
		t.Errorf("neutral longitudinal should be Forward(0), got %s(%v)", m.ForwardBack.Tag, m.ForwardBack.Magnitude)
	}

	l := NeutralLookaround()
	if l.LeftRight.Tag != LookRight || l.LeftRight.Magnitude != 0 {
		t.Errorf("neutral look lateral should be Right(0), got %s(%v)", l.LeftRight.Tag, l.LeftRight.Magnitude)
	}
	if l.UpDown.Tag != LookUp || l.UpDown.Magnitude != 0 {
		t.Errorf("neutral look vertical should be Up(0), got %s(%v)", l.UpDown.Tag, l.UpDown.Magnitude)
	}
}
