package physics

import (
	"github.com/Faultbox/strider/pkg/math"
)

// Hit describes a ray cast result.
type Hit struct {
	Distance float32
	Point    math.Vec3
}

// World simulates dynamic bodies against static colliders. Stepping and
// queries run only while the world is active; the game deactivates the
// world while paused.
type World struct {
	Gravity math.Vec3

	// Linear damping applied each step, so bodies do not accelerate
	// without bound under a constant force.
	Damping float32

	active    bool
	bodies    []*Body
	colliders []Collider
}

// NewWorld creates an inactive world with standard gravity.
func NewWorld() *World {
	return &World{
		Gravity: math.Vec3{X: 0, Y: -9.81, Z: 0},
		Damping: 0.9,
	}
}

// SetActive starts or stops simulation stepping.
func (w *World) SetActive(active bool) {
	w.active = active
}

// Active reports whether the world is stepping.
func (w *World) Active() bool {
	return w.active
}

// AddBody registers a dynamic body.
func (w *World) AddBody(b *Body) {
	w.bodies = append(w.bodies, b)
}

// RemoveBody unregisters a dynamic body.
func (w *World) RemoveBody(b *Body) {
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return
		}
	}
}

// AddCollider registers a static collider.
func (w *World) AddCollider(c Collider) {
	w.colliders = append(w.colliders, c)
}

// Colliders returns the static colliders for iteration. The slice must not
// be modified.
func (w *World) Colliders() []Collider {
	return w.colliders
}

// Clear removes all bodies and colliders (level teardown).
func (w *World) Clear() {
	w.bodies = nil
	w.colliders = nil
}

// Step advances the simulation by dt seconds. Force accumulators are
// consumed and cleared: forces written between steps apply to exactly one
// step.
func (w *World) Step(dt float32) {
	if !w.active || dt <= 0 {
		return
	}

	for _, b := range w.bodies {
		accel := w.Gravity.Add(b.force.Scale(1 / b.mass))
		b.velocity = b.velocity.Add(accel.Scale(dt))
		b.velocity = b.velocity.Scale(1 / (1 + w.Damping*dt))
		b.position = b.position.Add(b.velocity.Scale(dt))

		w.resolveGround(b)

		b.force = math.Vec3{}
	}
}

// resolveGround keeps a falling capsule from sinking into a collider it
// stands on. Boxes are only resolved from above; this is a character
// sandbox, not a general contact solver.
func (w *World) resolveGround(b *Body) {
	bottom := b.position.Y - b.halfHeight
	for _, c := range w.colliders {
		if b.position.X < c.Min.X-b.radius || b.position.X > c.Max.X+b.radius ||
			b.position.Z < c.Min.Z-b.radius || b.position.Z > c.Max.Z+b.radius {
			continue
		}
		if bottom < c.Max.Y && b.position.Y > c.Max.Y && b.velocity.Y <= 0 {
			b.position.Y = c.Max.Y + b.halfHeight
			b.velocity.Y = 0
			bottom = c.Max.Y
		}
	}
}

// RayHits reports whether a ray hits any collider within maxDist.
func (w *World) RayHits(origin, dir math.Vec3, maxDist float32) bool {
	_, ok := w.CastRay(origin, dir, maxDist)
	return ok
}

// CastRay casts against all static colliders and returns the nearest hit
// within maxDist. dir must be normalized. Dynamic bodies are not part of
// the query set, so a body probing beneath itself never hits itself.
func (w *World) CastRay(origin, dir math.Vec3, maxDist float32) (Hit, bool) {
	best := Hit{Distance: maxDist}
	found := false
	for _, c := range w.colliders {
		if dist, ok := c.IntersectRay(origin, dir, maxDist); ok && (!found || dist < best.Distance) {
			best = Hit{
				Distance: dist,
				Point:    origin.Add(dir.Scale(dist)),
			}
			found = true
		}
	}
	return best, found
}
