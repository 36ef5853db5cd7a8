package control

import (
	"github.com/Faultbox/strider/pkg/math"
)

// fakeGamepad implements Gamepad for tests.
type fakeGamepad struct {
	axes map[Axis]float32
	just map[Button]bool
}

func (g *fakeGamepad) Axis(a Axis) float32 {
	return g.axes[a]
}

func (g *fakeGamepad) JustPressed(b Button) bool {
	return g.just[b]
}

// fakeSource implements Source for tests.
type fakeSource struct {
	pressed map[Key]bool
	just    map[Key]bool
	deltas  []math.Vec2
	pads    []Gamepad
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		pressed: make(map[Key]bool),
		just:    make(map[Key]bool),
	}
}

func (s *fakeSource) Pressed(k Key) bool {
	return s.pressed[k]
}

func (s *fakeSource) JustPressed(k Key) bool {
	return s.just[k]
}

func (s *fakeSource) MouseDeltas() []math.Vec2 {
	return s.deltas
}

func (s *fakeSource) Gamepads() []Gamepad {
	return s.pads
}

// fakeBody implements Body for tests and records force writes.
type fakeBody struct {
	position math.Vec3
	rotation math.Quat
	velocity math.Vec3
	force    math.Vec3

	setForceCalls int
	addForceCalls int
}

func newFakeBody() *fakeBody {
	return &fakeBody{rotation: math.QuatIdentity()}
}

func (b *fakeBody) Position() math.Vec3 {
	return b.position
}

func (b *fakeBody) Rotation() math.Quat {
	return b.rotation
}

func (b *fakeBody) SetRotation(q math.Quat) {
	b.rotation = q
}

func (b *fakeBody) LinearVelocity() math.Vec3 {
	return b.velocity
}

func (b *fakeBody) SetForce(f math.Vec3) {
	b.force = f
	b.setForceCalls++
}

func (b *fakeBody) AddForce(f math.Vec3) {
	b.force = b.force.Add(f)
	b.addForceCalls++
}

// fakeCaster implements RayCaster for tests.
type fakeCaster struct {
	hit bool

	lastOrigin  math.Vec3
	lastDir     math.Vec3
	lastMaxDist float32
}

func (c *fakeCaster) RayHits(origin, dir math.Vec3, maxDist float32) bool {
	c.lastOrigin = origin
	c.lastDir = dir
	c.lastMaxDist = maxDist
	return c.hit
}
