// Package camera provides camera implementations for 3D rendering.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/strider/pkg/math"
)

// FirstPersonCamera renders from the subject's eye. Yaw comes from the
// body orientation, pitch is applied on top of it.
type FirstPersonCamera struct {
	// Eye offset above the body center
	EyeHeight float32

	// Projection parameters
	FOV  float32 // Vertical field of view, radians
	Near float32
	Far  float32
}

// NewFirstPersonCamera creates a first person camera with default projection
// settings and the given eye offset.
func NewFirstPersonCamera(eyeHeight float32) *FirstPersonCamera {
	return &FirstPersonCamera{
		EyeHeight: eyeHeight,
		FOV:       math32.Pi / 3,
		Near:      0.1,
		Far:       1000.0,
	}
}

// Eye returns the camera position for a body at the given position.
func (c *FirstPersonCamera) Eye(bodyPos math.Vec3) math.Vec3 {
	return math.Vec3{X: bodyPos.X, Y: bodyPos.Y + c.EyeHeight, Z: bodyPos.Z}
}

// Forward returns the unit view direction for the given body yaw and pitch.
// Pitch is positive looking up.
func (c *FirstPersonCamera) Forward(yaw math.Quat, pitch float32) math.Vec3 {
	// Rotate -Z up by pitch, then by the body yaw.
	local := math.Vec3{
		Y: math32.Sin(pitch),
		Z: -math32.Cos(pitch),
	}
	return yaw.Normalize().Rotate(local)
}

// ViewMatrix returns the view matrix for a body at the given position and
// yaw, with the camera's pitch applied.
func (c *FirstPersonCamera) ViewMatrix(bodyPos math.Vec3, yaw math.Quat, pitch float32) math.Mat4 {
	eye := c.Eye(bodyPos)
	target := eye.Add(c.Forward(yaw, pitch))
	return math.LookAt(eye, target, math.UnitY)
}

// ProjectionMatrix returns the perspective projection for the given aspect
// ratio.
func (c *FirstPersonCamera) ProjectionMatrix(aspect float32) math.Mat4 {
	return math.Perspective(c.FOV, aspect, c.Near, c.Far)
}
