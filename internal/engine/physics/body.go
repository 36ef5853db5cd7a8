// Package physics provides the rigid body simulation the controller acts
// on: per-step force accumulation, gravity integration, static colliders
// and ray queries.
package physics

import (
	"github.com/Faultbox/strider/pkg/math"
)

// Body is a dynamic rigid body with a vertical capsule shape. Rotation is
// locked to the world-up axis (the body never tips over), mirroring a
// character controller.
type Body struct {
	position math.Vec3
	rotation math.Quat
	velocity math.Vec3

	// Force accumulator for the current step. Cleared by World.Step.
	force math.Vec3

	mass       float32
	halfHeight float32
	radius     float32
}

// NewBody creates a capsule body at a position. capsuleHeight is the total
// height including both hemisphere caps.
func NewBody(position math.Vec3, capsuleHeight, capsuleRadius, mass float32) *Body {
	return &Body{
		position:   position,
		rotation:   math.QuatIdentity(),
		mass:       mass,
		halfHeight: capsuleHeight / 2,
		radius:     capsuleRadius,
	}
}

// Position returns the body's world position (capsule center).
func (b *Body) Position() math.Vec3 {
	return b.position
}

// SetPosition teleports the body.
func (b *Body) SetPosition(p math.Vec3) {
	b.position = p
}

// Rotation returns the body's orientation.
func (b *Body) Rotation() math.Quat {
	return b.rotation
}

// SetRotation sets the body's orientation.
func (b *Body) SetRotation(q math.Quat) {
	b.rotation = q
}

// LinearVelocity returns the body's current velocity.
func (b *Body) LinearVelocity() math.Vec3 {
	return b.velocity
}

// SetLinearVelocity sets the body's velocity directly.
func (b *Body) SetLinearVelocity(v math.Vec3) {
	b.velocity = v
}

// SetForce replaces the force accumulator for this step.
func (b *Body) SetForce(f math.Vec3) {
	b.force = f
}

// AddForce adds to the force accumulator for this step.
func (b *Body) AddForce(f math.Vec3) {
	b.force = b.force.Add(f)
}

// Force returns the current force accumulator.
func (b *Body) Force() math.Vec3 {
	return b.force
}

// HalfHeight returns half the capsule's total height.
func (b *Body) HalfHeight() float32 {
	return b.halfHeight
}

// Radius returns the capsule radius.
func (b *Body) Radius() float32 {
	return b.radius
}
