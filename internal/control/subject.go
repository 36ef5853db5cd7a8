package control

import (
	"errors"

	"github.com/Faultbox/strider/pkg/math"
)

var (
	// ErrNoSubject is returned when an operation needs a subject and
	// none has been spawned.
	ErrNoSubject = errors.New("no subject spawned")

	// ErrSubjectExists is returned when spawning while a subject is
	// already registered.
	ErrSubjectExists = errors.New("a subject already exists")
)

// Body is the physics surface the controller drives. SetForce replaces
// the body's force accumulator for the current step; AddForce adds on top
// of whatever is already accumulated.
type Body interface {
	Position() math.Vec3
	Rotation() math.Quat
	SetRotation(math.Quat)
	LinearVelocity() math.Vec3
	SetForce(math.Vec3)
	AddForce(math.Vec3)
}

// RayCaster is the collision query surface of the physics collaborator.
type RayCaster interface {
	// RayHits reports whether a ray from origin along dir (normalized)
	// hits anything within maxDist.
	RayHits(origin, dir math.Vec3, maxDist float32) bool
}

// Subject is the single controllable entity: its physics body, the camera
// pitch it owns, and its per-tick intents. Pitch persists across ticks;
// the intents are overwritten by the sampler every tick.
type Subject struct {
	body       Body
	pitch      float32
	movement   Movement
	lookaround Lookaround
}

// Body returns the subject's physics body.
func (s *Subject) Body() Body {
	return s.body
}

// Pitch returns the camera pitch in radians, always within [-pi/2, pi/2].
func (s *Subject) Pitch() float32 {
	return s.pitch
}

// Movement returns the movement intent sampled this tick.
func (s *Subject) Movement() Movement {
	return s.movement
}

// Lookaround returns the look intent sampled this tick.
func (s *Subject) Lookaround() Lookaround {
	return s.lookaround
}

// Registry holds at most one subject. Spawning checks for an existing
// handle and fails fast instead of leaving cardinality to be discovered
// at use time.
type Registry struct {
	subject *Subject
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Spawn registers a new subject around the given body. Returns
// ErrSubjectExists if one is already registered.
func (r *Registry) Spawn(body Body) (*Subject, error) {
	if r.subject != nil {
		return nil, ErrSubjectExists
	}
	r.subject = &Subject{
		body:       body,
		movement:   NeutralMovement(),
		lookaround: NeutralLookaround(),
	}
	return r.subject, nil
}

// Subject returns the registered subject, or ErrNoSubject.
func (r *Registry) Subject() (*Subject, error) {
	if r.subject == nil {
		return nil, ErrNoSubject
	}
	return r.subject, nil
}

// Teardown removes the registered subject. Returns ErrNoSubject if none
// is registered.
func (r *Registry) Teardown() error {
	if r.subject == nil {
		return ErrNoSubject
	}
	r.subject = nil
	return nil
}
