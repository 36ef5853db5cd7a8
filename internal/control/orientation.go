package control

import (
	"fmt"

	"github.com/Faultbox/strider/internal/settings"
	"github.com/Faultbox/strider/pkg/math"
	"github.com/chewxy/math32"
)

const (
	// Radians of pitch/yaw per unit of look magnitude at baseline
	// sensitivity.
	pitchStep = 0.005
	yawStep   = 0.002

	pitchLimit = math32.Pi / 2
)

// IntegratePitch applies the vertical look intent to the camera pitch and
// clamps the result to [-pi/2, +pi/2]. Up increases pitch, Down decreases
// it. An impossible tag on the vertical axis violates the sampler's
// contract and is returned as an error.
func IntegratePitch(pitch float32, look Lookaround, verticalSensitivity uint8) (float32, error) {
	scale := pitchStep * float32(verticalSensitivity) / settings.Baseline

	switch look.UpDown.Tag {
	case LookUp:
		pitch += look.UpDown.Magnitude * scale
	case LookDown:
		pitch -= look.UpDown.Magnitude * scale
	default:
		return pitch, fmt.Errorf("lookaround vertical axis holds %s, expected Up or Down", look.UpDown.Tag)
	}

	if pitch > pitchLimit {
		pitch = pitchLimit
	}
	if pitch < -pitchLimit {
		pitch = -pitchLimit
	}
	return pitch, nil
}

// IntegrateYaw appends the horizontal look intent to the body rotation as
// a small rotation about world-up, positive for Left and negative for
// Right. Per-tick angles are tiny, so the append is linearized; the
// result drifts off unit length and the pipeline renormalizes it
// periodically. An impossible tag is returned as an error.
func IntegrateYaw(rotation math.Quat, look Lookaround, horizontalSensitivity uint8) (math.Quat, error) {
	scale := yawStep * float32(horizontalSensitivity) / settings.Baseline

	var angle float32
	switch look.LeftRight.Tag {
	case LookLeft:
		angle = look.LeftRight.Magnitude * scale
	case LookRight:
		angle = -look.LeftRight.Magnitude * scale
	default:
		return rotation, fmt.Errorf("lookaround lateral axis holds %s, expected Left or Right", look.LeftRight.Tag)
	}

	return rotation.AppendAxisAngleLinearized(math.UnitY.Scale(angle)), nil
}
