package physics

import (
	"github.com/spaghettifunk/kestrel/engine/math"
)

// Collider is an axis aligned box following the position and scale of its
// owner transform. Rotation is ignored.
type Collider struct {
	owner *math.Transform
	// Size is multiplied by the owner scale. Defaults to a unit box.
	Size math.Vec3
}

func NewCollider(owner *math.Transform) *Collider {
	return &Collider{owner: owner, Size: math.NewVec3One()}
}

// NewColliderFromExtents sizes the box to fit mesh extents.
func NewColliderFromExtents(owner *math.Transform, extents math.Extents3D) *Collider {
	return &Collider{owner: owner, Size: extents.Size()}
}

func (c *Collider) Owner() *math.Transform {
	return c.owner
}

// Bounds is the box centered on the owner position, half the scaled size
// on each side.
func (c *Collider) Bounds() math.Extents3D {
	if c.owner == nil {
		half := c.Size.MulScalar(0.5)
		return math.Extents3D{Min: half.Negate(), Max: half}
	}
	half := c.Size.Mul(c.owner.Scale()).MulScalar(0.5)
	half = math.NewVec3(kabs(half.X), kabs(half.Y), kabs(half.Z))
	p := c.owner.Position()
	return math.Extents3D{Min: p.Sub(half), Max: p.Add(half)}
}

func (c *Collider) IsColliding(other *Collider) bool {
	if other == nil || other == c {
		return false
	}
	return c.Bounds().Intersects(other.Bounds())
}

func (c *Collider) ContainsPoint(p math.Vec3) bool {
	return c.Bounds().Contains(p)
}

func kabs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
