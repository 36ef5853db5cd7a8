package control

import (
	"fmt"

	"github.com/Faultbox/strider/internal/config"
	"github.com/Faultbox/strider/pkg/math"
)

// ComputeForce turns the movement intent into the horizontal force for
// this tick. The returned bool reports whether the force should be
// written: at or above MaxSpeed no force is produced at all, the existing
// velocity just persists through the physics world's own damping. The
// computer never actively decelerates.
//
// Forward and right are derived from the body orientation only; camera
// pitch never leans the movement direction into the ground.
func ComputeForce(move Movement, rotation math.Quat, horizontalSpeed float32, player config.PlayerConfig) (math.Vec3, bool, error) {
	if horizontalSpeed >= player.MaxSpeed {
		return math.Vec3{}, false, nil
	}

	localZ := rotation.Rotate(math.Vec3{Z: 1})
	forward := math.Vec3{X: -localZ.X, Z: -localZ.Z}
	right := math.Vec3{X: localZ.Z, Z: -localZ.X}

	var lateral float32
	switch move.LeftRight.Tag {
	case MoveLeft:
		lateral = -move.LeftRight.Magnitude * player.MovementForce
	case MoveRight:
		lateral = move.LeftRight.Magnitude * player.MovementForce
	default:
		return math.Vec3{}, false, fmt.Errorf("movement lateral axis holds %s, expected Left or Right", move.LeftRight.Tag)
	}

	var longitudinal float32
	switch move.ForwardBack.Tag {
	case MoveForward:
		longitudinal = move.ForwardBack.Magnitude * player.MovementForce
	case MoveBack:
		longitudinal = -move.ForwardBack.Magnitude * player.MovementForce
	default:
		return math.Vec3{}, false, fmt.Errorf("movement longitudinal axis holds %s, expected Forward or Back", move.ForwardBack.Tag)
	}

	return forward.Scale(longitudinal).Add(right.Scale(lateral)), true, nil
}
