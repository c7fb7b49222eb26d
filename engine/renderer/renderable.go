package renderer

import (
	"fmt"

	"github.com/spaghettifunk/kestrel/engine/core"
	"github.com/spaghettifunk/kestrel/engine/math"
)

const MaxTextureSlots = 2

// Renderable is the GPU side of a drawable object: uploaded vertex data, the
// shader drawing it and up to MaxTextureSlots textures.
type Renderable struct {
	Geometry    GeometryHandle
	VertexCount int32
	Shader      *Shader
	Textures    [MaxTextureSlots]*Texture
	Tint        math.Vec4
}

// NewRenderable uploads vertices laid out as PositionTexCoordLayout.
func NewRenderable(backend RendererBackend, vertices []float32, shader *Shader) (*Renderable, error) {
	stride := int(PositionTexCoordLayout.Stride)
	if len(vertices) == 0 || len(vertices)%stride != 0 {
		return nil, fmt.Errorf("renderable with %d floats, want a non-zero multiple of %d: %w", len(vertices), stride, core.ErrOutOfRange)
	}
	if shader == nil {
		return nil, fmt.Errorf("renderable shader: %w", core.ErrNotInitialized)
	}
	geometry, err := backend.CreateGeometry(vertices, PositionTexCoordLayout)
	if err != nil {
		return nil, fmt.Errorf("renderable geometry: %w", err)
	}
	return &Renderable{
		Geometry:    geometry,
		VertexCount: int32(len(vertices) / stride),
		Shader:      shader,
		Tint:        math.NewVec4(1, 1, 1, 1),
	}, nil
}

// SetTexture binds texture to slot. A nil texture clears the slot.
func (r *Renderable) SetTexture(slot int, texture *Texture) error {
	if slot < 0 || slot >= MaxTextureSlots {
		return fmt.Errorf("texture slot %d: %w", slot, core.ErrOutOfRange)
	}
	r.Textures[slot] = texture
	return nil
}

// Destroy releases the uploaded geometry. Shader and textures belong to
// their systems.
func (r *Renderable) Destroy(backend RendererBackend) {
	if r.Geometry != InvalidHandle {
		backend.DestroyGeometry(r.Geometry)
		r.Geometry = InvalidHandle
	}
	r.VertexCount = 0
}
