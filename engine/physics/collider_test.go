package physics

import (
	"testing"

	"github.com/spaghettifunk/kestrel/engine/math"
	"github.com/stretchr/testify/assert"
)

func TestColliderBounds(t *testing.T) {
	tr := math.NewTransformFromPosition(math.NewVec3(1, 2, 3))
	tr.SetScale(math.NewVec3(2, 4, 6))
	c := NewCollider(tr)

	b := c.Bounds()
	assert.Equal(t, math.NewVec3(0, 0, 0), b.Min)
	assert.Equal(t, math.NewVec3(2, 4, 6), b.Max)
	assert.True(t, c.ContainsPoint(math.NewVec3(1, 1, 1)))
}

func TestColliderOverlap(t *testing.T) {
	a := NewCollider(math.NewTransformFromPosition(math.NewVec3(0, 0, 0)))
	b := NewCollider(math.NewTransformFromPosition(math.NewVec3(0.9, 0, 0)))
	far := NewCollider(math.NewTransformFromPosition(math.NewVec3(5, 0, 0)))

	assert.True(t, a.IsColliding(b))
	assert.True(t, b.IsColliding(a))
	assert.False(t, a.IsColliding(far))
	assert.False(t, a.IsColliding(a))
	assert.False(t, a.IsColliding(nil))

	far.Owner().SetPosition(math.NewVec3(1, 0, 0))
	assert.True(t, a.IsColliding(far), "touching faces collide")
}

func TestColliderFromExtents(t *testing.T) {
	ext := math.Extents3D{Min: math.NewVec3(-1, -1, 0), Max: math.NewVec3(1, 1, 0)}
	c := NewColliderFromExtents(math.NewTransform(), ext)
	assert.Equal(t, math.NewVec3(2, 2, 0), c.Size)
	assert.Equal(t, math.NewVec3(1, 1, 0), c.Bounds().Max)
}
