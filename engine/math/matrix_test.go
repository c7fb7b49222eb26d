package math

import (
	"testing"

	"github.com/spaghettifunk/kestrel/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance float32 = 1e-5

func TestMat4MulIdentity(t *testing.T) {
	m := ModelMatrix(NewVec3(1, 2, 3), NewVec3(0.3, -0.2, 1.1), NewVec3(2, 2, 2))
	assert.True(t, m.Mul(NewMat4Identity()).Compare(m, tolerance))
	assert.True(t, NewMat4Identity().Mul(m).Compare(m, tolerance))
}

func TestMat4RowVectorTranslation(t *testing.T) {
	m := NewMat4Translation(NewVec3(1, 2, 3))
	assert.Equal(t, float32(1), m.At(3, 0))
	assert.Equal(t, float32(2), m.At(3, 1))
	assert.Equal(t, float32(3), m.At(3, 2))

	p := NewVec3(1, 1, 1).Transform(m)
	assert.True(t, p.Compare(NewVec3(2, 3, 4), tolerance))
}

func TestMat4Rotations(t *testing.T) {
	half := HalfPi
	tests := []struct {
		name string
		m    Mat4
		in   Vec3
		want Vec3
	}{
		{"x", NewMat4RotationX(half), NewVec3(0, 1, 0), NewVec3(0, 0, 1)},
		{"y", NewMat4RotationY(half), NewVec3(0, 0, 1), NewVec3(1, 0, 0)},
		{"z", NewMat4RotationZ(half), NewVec3(1, 0, 0), NewVec3(0, 1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Transform(tt.m)
			assert.True(t, got.Compare(tt.want, tolerance), "got %v want %v", got, tt.want)
		})
	}
}

func TestPerspectiveFieldOfView(t *testing.T) {
	valid := []struct{ fov, aspect, near, far float32 }{
		{DegToRad(45), 800.0 / 600.0, 0.1, 100},
		{DegToRad(90), 1, 1, 2},
		{3.1, 0.5, 0.001, 1000},
	}
	for _, v := range valid {
		m, err := NewMat4PerspectiveFieldOfView(v.fov, v.aspect, v.near, v.far)
		require.NoError(t, err)
		assert.Equal(t, float32(-1), m.At(2, 3), "M34")
		assert.Equal(t, float32(0), m.At(3, 3), "M44")
		assert.InDelta(t, v.near*v.far/(v.near-v.far), m.At(3, 2), 1e-4, "M43")
	}

	invalid := []struct {
		name                   string
		fov, aspect, near, far float32
	}{
		{"zero fov", 0, 1, 0.1, 100},
		{"fov pi", Pi, 1, 0.1, 100},
		{"negative fov", -1, 1, 0.1, 100},
		{"zero near", 1, 1, 0, 100},
		{"negative far", 1, 1, 0.1, -1},
		{"near beyond far", 1, 1, 10, 1},
		{"near equals far", 1, 1, 5, 5},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMat4PerspectiveFieldOfView(tt.fov, tt.aspect, tt.near, tt.far)
			assert.ErrorIs(t, err, core.ErrOutOfRange)
		})
	}
}

func TestOrthographicOffCenter(t *testing.T) {
	m := NewMat4OrthographicOffCenter(-400, 400, 300, -300, 0.01, 100)
	// the box corners land on the clip cube corners
	assert.True(t, NewVec3(-400, 300, 0).Transform(m).Compare(NewVec3(-1, -1, m.At(3, 2)), tolerance))
	assert.True(t, NewVec3(400, -300, 0).Transform(m).Compare(NewVec3(1, 1, m.At(3, 2)), tolerance))
	assert.Equal(t, float32(1), m.At(3, 3))
}

func TestLookAtMatchesTranslation(t *testing.T) {
	view := NewMat4LookAt(NewVec3(0, 0, 3), NewVec3Zero(), NewVec3Up())
	assert.True(t, view.Compare(NewMat4Translation(NewVec3(0, 0, -3)), tolerance))
}

func TestMat4Inverse(t *testing.T) {
	m := ModelMatrix(NewVec3(4, -2, 7), NewVec3(0.5, 1.2, -0.7), NewVec3(1, 3, 0.5))
	inv, ok := m.Inverse()
	require.True(t, ok)
	assert.True(t, m.Mul(inv).Compare(NewMat4Identity(), 1e-4))
	assert.InDelta(t, 1.5, m.Determinant(), 1e-4)

	_, ok = NewMat4Scale(NewVec3(1, 0, 1)).Inverse()
	assert.False(t, ok)
}

func TestMat4Transposed(t *testing.T) {
	m := NewMat4Translation(NewVec3(1, 2, 3)).Transposed()
	assert.Equal(t, float32(1), m.At(0, 3))
	assert.Equal(t, float32(3), m.At(2, 3))
	assert.Equal(t, float32(0), m.At(3, 0))
}

func TestDecomposeRejectsProjection(t *testing.T) {
	p, err := NewMat4PerspectiveFieldOfView(1, 1, 0.1, 10)
	require.NoError(t, err)
	_, _, _, ok := p.Decompose()
	assert.False(t, ok)
}

func TestMat4Directions(t *testing.T) {
	view := NewMat4Identity()
	assert.True(t, view.Forward().Compare(NewVec3(0, 0, -1), tolerance))
	assert.True(t, view.Right().Compare(NewVec3(1, 0, 0), tolerance))
	assert.True(t, view.Up().Compare(NewVec3(0, 1, 0), tolerance))
	assert.True(t, view.Left().Compare(view.Right().Negate(), tolerance))
}
