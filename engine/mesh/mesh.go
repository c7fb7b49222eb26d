package mesh

import (
	"fmt"

	"github.com/spaghettifunk/kestrel/engine/core"
	"github.com/spaghettifunk/kestrel/engine/math"
)

// FloatsPerVertex is the interleaved layout of every mesh: x, y, z, u, v.
const FloatsPerVertex = 5

// Mesh holds triangle list vertex data ready for a non-indexed draw.
type Mesh struct {
	Name     string
	Vertices []float32
}

func (m *Mesh) VertexCount() int32 {
	return int32(len(m.Vertices) / FloatsPerVertex)
}

func (m *Mesh) Extents() math.Extents3D {
	return math.ComputeExtents(m.Vertices, FloatsPerVertex)
}

// Expand turns indexed vertex data into a triangle list so it can be drawn
// without an index buffer.
func Expand(name string, vertices []float32, indices []uint32) (*Mesh, error) {
	if len(vertices)%FloatsPerVertex != 0 {
		return nil, fmt.Errorf("mesh %s: %d floats is not a whole number of vertices: %w", name, len(vertices), core.ErrOutOfRange)
	}
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("mesh %s: %d indices is not a whole number of triangles: %w", name, len(indices), core.ErrOutOfRange)
	}
	count := uint32(len(vertices) / FloatsPerVertex)
	out := make([]float32, 0, len(indices)*FloatsPerVertex)
	for _, idx := range indices {
		if idx >= count {
			return nil, fmt.Errorf("mesh %s: index %d with %d vertices: %w", name, idx, count, core.ErrOutOfRange)
		}
		start := idx * FloatsPerVertex
		out = append(out, vertices[start:start+FloatsPerVertex]...)
	}
	return &Mesh{Name: name, Vertices: out}, nil
}

// NewQuad builds a width x height rectangle on the XY plane centered on the
// origin, facing +Z.
func NewQuad(width, height float32) *Mesh {
	hw, hh := width/2, height/2
	corners := []float32{
		hw, hh, 0, 1, 1, // top right
		hw, -hh, 0, 1, 0, // bottom right
		-hw, -hh, 0, 0, 0, // bottom left
		-hw, hh, 0, 0, 1, // top left
	}
	m, _ := Expand("quad", corners, []uint32{0, 3, 1, 1, 3, 2})
	return m
}

// NewCube builds an axis aligned cube of the given edge length centered on
// the origin, every face mapped to the full texture.
func NewCube(size float32) *Mesh {
	h := size / 2
	// corner order per face: bottom left, bottom right, top right, top left
	faces := [6][4][3]float32{
		{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}},     // front
		{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}, // back
		{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}, // left
		{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}},     // right
		{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}},     // top
		{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}, // bottom
	}
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	vertices := make([]float32, 0, 24*FloatsPerVertex)
	indices := make([]uint32, 0, 36)
	for f, face := range faces {
		for c, p := range face {
			vertices = append(vertices, p[0], p[1], p[2], uvs[c][0], uvs[c][1])
		}
		base := uint32(f * 4)
		indices = append(indices, base, base+1, base+2, base+2, base+3, base)
	}
	m, _ := Expand("cube", vertices, indices)
	return m
}
