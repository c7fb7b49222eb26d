package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRotations() []Quaternion {
	return []Quaternion{
		NewQuatIdentity(),
		NewQuatFromAxisAngle(NewVec3(1, 0, 0), 0.7),
		NewQuatFromAxisAngle(NewVec3(0, 1, 0), -2.4),
		NewQuatFromAxisAngle(NewVec3(0, 0, 1), Pi),
		NewQuatFromAxisAngle(NewVec3(1, 1, 1).Normalized(), 1.9),
		NewQuatFromAxisAngle(NewVec3(-0.3, 0.8, 0.2).Normalized(), 3.0),
		NewQuatFromYawPitchRoll(0.4, -1.1, 2.2),
		Quaternion{0.5, 0.5, 0.5, 0.5},
	}
}

func TestQuaternionMatrixRoundTrip(t *testing.T) {
	for _, q := range sampleRotations() {
		_, r, _, ok := q.ToMat4().Decompose()
		require.True(t, ok)
		assert.True(t, r.Compare(q, 1e-4), "got %v want %v", r, q)

		r = NewQuatFromRotationMatrix(q.ToMat4())
		assert.True(t, r.Compare(q, 1e-4), "got %v want %v", r, q)
	}
}

func TestDecomposeScaleRotationTranslation(t *testing.T) {
	scale := NewVec3(2, 0.5, 3)
	translation := NewVec3(-4, 1, 9)
	for _, q := range sampleRotations() {
		m := NewMat4Scale(scale).Mul(q.ToMat4()).Mul(NewMat4Translation(translation))
		s, r, tr, ok := m.Decompose()
		require.True(t, ok)
		assert.True(t, s.Compare(scale, 1e-4), "scale %v", s)
		assert.True(t, tr.Compare(translation, 1e-5), "translation %v", tr)
		assert.True(t, r.Compare(q, 1e-4), "rotation %v want %v", r, q)
	}
}

func TestQuaternionMatchesAxisRotations(t *testing.T) {
	angle := float32(0.83)
	assert.True(t, NewQuatFromAxisAngle(NewVec3(1, 0, 0), angle).ToMat4().Compare(NewMat4RotationX(angle), tolerance))
	assert.True(t, NewQuatFromAxisAngle(NewVec3(0, 1, 0), angle).ToMat4().Compare(NewMat4RotationY(angle), tolerance))
	assert.True(t, NewQuatFromAxisAngle(NewVec3(0, 0, 1), angle).ToMat4().Compare(NewMat4RotationZ(angle), tolerance))
}

func TestQuaternionMulOrder(t *testing.T) {
	a := NewQuatFromAxisAngle(NewVec3(1, 0, 0), 0.5)
	b := NewQuatFromAxisAngle(NewVec3(0, 1, 0), 1.2)
	// a.Mul(b) rotates by b first
	want := b.ToMat4().Mul(a.ToMat4())
	assert.True(t, a.Mul(b).ToMat4().Compare(want, 1e-5))

	v := NewVec3(1, 2, 3)
	assert.True(t, a.Mul(b).Rotate(v).Compare(a.Rotate(b.Rotate(v)), 1e-4))
}

func TestQuaternionInverse(t *testing.T) {
	q := NewQuatFromAxisAngle(NewVec3(0, 1, 0), 1)
	assert.True(t, q.Mul(q.Inverse()).Compare(NewQuatIdentity(), 1e-5))
}

func TestQuaternionSlerp(t *testing.T) {
	a := NewQuatIdentity()
	b := NewQuatFromAxisAngle(NewVec3(0, 0, 1), HalfPi)

	assert.True(t, a.Slerp(b, 0).Compare(a, 1e-5))
	assert.True(t, a.Slerp(b, 1).Compare(b, 1e-5))
	mid := a.Slerp(b, 0.5)
	assert.True(t, mid.Compare(NewQuatFromAxisAngle(NewVec3(0, 0, 1), HalfPi/2), 1e-5))
}
