package mesh

import (
	"testing"

	"github.com/spaghettifunk/kestrel/engine/core"
	"github.com/spaghettifunk/kestrel/engine/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuad(t *testing.T) {
	q := NewQuad(2, 1)
	assert.Equal(t, int32(6), q.VertexCount())
	assert.Len(t, q.Vertices, 6*FloatsPerVertex)

	e := q.Extents()
	assert.Equal(t, math.NewVec3(-1, -0.5, 0), e.Min)
	assert.Equal(t, math.NewVec3(1, 0.5, 0), e.Max)
}

func TestCube(t *testing.T) {
	c := NewCube(1)
	assert.Equal(t, int32(36), c.VertexCount())

	e := c.Extents()
	assert.Equal(t, math.NewVec3(-0.5, -0.5, -0.5), e.Min)
	assert.Equal(t, math.NewVec3(0.5, 0.5, 0.5), e.Max)

	// every triangle faces outwards: its normal points away from the center
	v := c.Vertices
	for tri := 0; tri < 12; tri++ {
		p := func(i int) math.Vec3 {
			o := (tri*3 + i) * FloatsPerVertex
			return math.NewVec3(v[o], v[o+1], v[o+2])
		}
		a, b, cc := p(0), p(1), p(2)
		normal := b.Sub(a).Cross(cc.Sub(a))
		centroid := a.Add(b).Add(cc).MulScalar(1.0 / 3.0)
		assert.Greater(t, normal.Dot(centroid), float32(0), "triangle %d", tri)
	}
}

func TestExpand(t *testing.T) {
	vertices := []float32{
		0, 0, 0, 0, 0,
		1, 0, 0, 1, 0,
		0, 1, 0, 0, 1,
	}
	m, err := Expand("tri", vertices, []uint32{2, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, float32(0), m.Vertices[0])
	assert.Equal(t, float32(1), m.Vertices[1])
	assert.Equal(t, int32(3), m.VertexCount())

	_, err = Expand("bad", vertices, []uint32{0, 1, 3})
	assert.ErrorIs(t, err, core.ErrOutOfRange)
	_, err = Expand("bad", vertices[:4], []uint32{0, 0, 0})
	assert.ErrorIs(t, err, core.ErrOutOfRange)
	_, err = Expand("bad", vertices, []uint32{0, 1})
	assert.ErrorIs(t, err, core.ErrOutOfRange)
}
