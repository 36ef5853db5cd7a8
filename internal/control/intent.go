package control

// Movement is the per-tick movement intent for the subject. Intents are
// transient: the sampler rebuilds them from device state every tick, so
// nothing latches across ticks.
type Movement struct {
	LeftRight   MoveDirection // tag MoveLeft or MoveRight
	ForwardBack MoveDirection // tag MoveForward or MoveBack
}

// NeutralMovement returns the canonical no-input movement intent.
func NeutralMovement() Movement {
	return Movement{
		LeftRight:   MoveDirection{Tag: MoveRight},
		ForwardBack: MoveDirection{Tag: MoveForward},
	}
}

// Equal reports approximate equality of both axes.
func (m Movement) Equal(other Movement) bool {
	return m.LeftRight.Equal(other.LeftRight) && m.ForwardBack.Equal(other.ForwardBack)
}

// Lookaround is the per-tick look intent for the subject.
type Lookaround struct {
	LeftRight LookDirection // tag LookLeft or LookRight
	UpDown    LookDirection // tag LookUp or LookDown
}

// NeutralLookaround returns the canonical no-input look intent.
func NeutralLookaround() Lookaround {
	return Lookaround{
		LeftRight: LookDirection{Tag: LookRight},
		UpDown:    LookDirection{Tag: LookUp},
	}
}

// Equal reports approximate equality of both axes.
func (l Lookaround) Equal(other Lookaround) bool {
	return l.LeftRight.Equal(other.LeftRight) && l.UpDown.Equal(other.UpDown)
}
