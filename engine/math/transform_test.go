package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModelMatrixComposition(t *testing.T) {
	position := NewVec3(5, 0, -1)
	rotation := NewVec3(0, 0, HalfPi)
	scale := NewVec3(2, 2, 2)
	m := ModelMatrix(position, rotation, scale)

	want := NewMat4RotationX(rotation.X).
		Mul(NewMat4RotationY(rotation.Y)).
		Mul(NewMat4RotationZ(rotation.Z)).
		Mul(NewMat4Scale(scale)).
		Mul(NewMat4Translation(position))
	assert.True(t, m.Compare(want, tolerance))

	// rotate, then scale, then translate, one step at a time
	p := NewVec3(1, 0, 0)
	stepwise := p.Transform(NewMat4EulerXYZ(rotation.X, rotation.Y, rotation.Z))
	stepwise = stepwise.Mul(scale)
	stepwise = stepwise.Add(position)

	got := p.Transform(m)
	assert.True(t, got.Compare(stepwise, tolerance))
	assert.True(t, got.Compare(NewVec3(5, 2, -1), tolerance), "got %v", got)
}

func TestModelMatrixRandomizedAgreement(t *testing.T) {
	cases := []struct{ p, r, s, v Vec3 }{
		{NewVec3(1, 2, 3), NewVec3(0.1, 0.2, 0.3), NewVec3(1, 2, 3), NewVec3(1, 1, 1)},
		{NewVec3(-4, 0, 8), NewVec3(1.5, -0.4, 2.9), NewVec3(0.5, 0.5, 4), NewVec3(-2, 3, 0.5)},
		{NewVec3Zero(), NewVec3(Pi, HalfPi, 0), NewVec3One(), NewVec3(0, 0, 1)},
	}
	for _, c := range cases {
		m := ModelMatrix(c.p, c.r, c.s)
		rotated := c.v.Transform(NewMat4RotationX(c.r.X)).
			Transform(NewMat4RotationY(c.r.Y)).
			Transform(NewMat4RotationZ(c.r.Z))
		want := rotated.Mul(c.s).Add(c.p)
		assert.True(t, c.v.Transform(m).Compare(want, 1e-4))
	}
}

func TestTransformDirtyCache(t *testing.T) {
	tr := NewTransform()
	assert.True(t, tr.GetLocal().Compare(NewMat4Identity(), tolerance))

	tr.SetPosition(NewVec3(1, 2, 3))
	assert.True(t, tr.GetLocal().Compare(NewMat4Translation(NewVec3(1, 2, 3)), tolerance))

	tr.Translate(NewVec3(1, 0, 0))
	tr.ScaleBy(NewVec3(2, 1, 1))
	tr.Rotate(NewVec3(0, 0.5, 0))
	assert.Equal(t, NewVec3(2, 2, 3), tr.Position())
	assert.Equal(t, NewVec3(2, 1, 1), tr.Scale())
	assert.Equal(t, NewVec3(0, 0.5, 0), tr.Rotation())
	assert.True(t, tr.GetLocal().Compare(ModelMatrix(tr.Position(), tr.Rotation(), tr.Scale()), tolerance))
}

func TestTransformParent(t *testing.T) {
	parent := NewTransformFromPosition(NewVec3(10, 0, 0))
	child := NewTransformFromPosition(NewVec3(0, 1, 0))
	child.Parent = parent

	p := NewVec3Zero().Transform(child.GetWorld())
	assert.True(t, p.Compare(NewVec3(10, 1, 0), tolerance))

	parent.SetScale(NewVec3(2, 2, 2))
	p = NewVec3Zero().Transform(child.GetWorld())
	assert.True(t, p.Compare(NewVec3(10, 2, 0), tolerance))
}

func TestExtents(t *testing.T) {
	vertices := []float32{
		-1, 0, 2, 0, 0,
		3, -2, 1, 1, 0,
		0, 5, -4, 1, 1,
	}
	e := ComputeExtents(vertices, 5)
	assert.Equal(t, NewVec3(-1, -2, -4), e.Min)
	assert.Equal(t, NewVec3(3, 5, 2), e.Max)
	assert.True(t, e.Contains(NewVec3(0, 0, 0)))

	moved := TransformExtents(e, NewMat4Translation(NewVec3(10, 0, 0)))
	assert.Equal(t, NewVec3(9, -2, -4), moved.Min)
	assert.False(t, e.Intersects(moved))
	assert.Equal(t, float32(4), e.Size().X)
	assert.Equal(t, Clamp(7, 0, 5), 5)
}
