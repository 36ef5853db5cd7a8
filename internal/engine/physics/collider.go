package physics

import (
	"github.com/Faultbox/strider/pkg/math"
	"github.com/chewxy/math32"
)

// Collider is a static axis-aligned box.
type Collider struct {
	Min, Max math.Vec3
}

// NewBoxCollider creates a collider from a center and full extents.
func NewBoxCollider(center, size math.Vec3) Collider {
	half := size.Scale(0.5)
	return Collider{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

// IntersectRay intersects a ray with the box using the slab method.
// dir must be normalized. Returns the hit distance along the ray; a ray
// starting inside the box hits at distance 0 (boxes are solid).
func (c Collider) IntersectRay(origin, dir math.Vec3, maxDist float32) (float32, bool) {
	tmin := float32(0)
	tmax := maxDist

	for axis := 0; axis < 3; axis++ {
		var o, d, lo, hi float32
		switch axis {
		case 0:
			o, d, lo, hi = origin.X, dir.X, c.Min.X, c.Max.X
		case 1:
			o, d, lo, hi = origin.Y, dir.Y, c.Min.Y, c.Max.Y
		case 2:
			o, d, lo, hi = origin.Z, dir.Z, c.Min.Z, c.Max.Z
		}

		if math32.Abs(d) < 1e-8 {
			// Parallel to the slab: miss unless the origin lies inside it
			if o < lo || o > hi {
				return 0, false
			}
			continue
		}

		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, false
		}
	}

	return tmin, true
}
