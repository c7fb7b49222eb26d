package renderer

import (
	"github.com/spaghettifunk/kestrel/engine/core"
	"github.com/spaghettifunk/kestrel/engine/math"
	"github.com/spaghettifunk/kestrel/engine/renderer/components"
)

// Drawable is anything the rendering manager can draw.
type Drawable interface {
	IsActive() bool
	ModelMatrix() math.Mat4
	RenderData() *Renderable
}

// RenderingManager keeps the ordered list of drawables and issues one draw
// call per entry every frame, in insertion order. There is no culling,
// sorting or batching.
type RenderingManager struct {
	backend    RendererBackend
	renderList []Drawable
	wireframe  bool
}

func NewRenderingManager(backend RendererBackend) *RenderingManager {
	return &RenderingManager{backend: backend}
}

func (rm *RenderingManager) Add(d Drawable) {
	rm.renderList = append(rm.renderList, d)
}

// Remove drops the first entry equal to d.
func (rm *RenderingManager) Remove(d Drawable) bool {
	for i, entry := range rm.renderList {
		if entry == d {
			rm.renderList = append(rm.renderList[:i], rm.renderList[i+1:]...)
			return true
		}
	}
	return false
}

func (rm *RenderingManager) Contains(d Drawable) bool {
	for _, entry := range rm.renderList {
		if entry == d {
			return true
		}
	}
	return false
}

func (rm *RenderingManager) Len() int {
	return len(rm.renderList)
}

func (rm *RenderingManager) Clear() {
	rm.renderList = nil
}

// Draw renders every active entry with the view and projection of camera
// and returns the number of draw calls issued.
func (rm *RenderingManager) Draw(camera components.Viewer) int {
	if camera == nil {
		core.LogError("no active camera, skipping %d renderables", len(rm.renderList))
		return 0
	}
	view := camera.View()
	projection := camera.Projection()

	calls := 0
	for _, d := range rm.renderList {
		if !d.IsActive() {
			continue
		}
		r := d.RenderData()
		if r == nil || r.Shader == nil || r.VertexCount == 0 {
			continue
		}
		shader := r.Shader.Handle
		rm.backend.UseShader(shader)
		rm.backend.BindGeometry(r.Geometry)

		rm.backend.SetUniformMat4(shader, UniformModel, d.ModelMatrix())
		rm.backend.SetUniformMat4(shader, UniformView, view)
		rm.backend.SetUniformMat4(shader, UniformProjection, projection)
		rm.backend.SetUniformVec4(shader, UniformTint, r.Tint)

		// empty slots keep whatever the previous draw bound, the mask tells
		// the shader which samplers to read
		mask := int32(0)
		for slot, texture := range r.Textures {
			if texture == nil {
				continue
			}
			rm.backend.BindTexture(uint32(slot), texture.Handle)
			rm.backend.SetUniformInt(shader, TextureUniform(slot), int32(slot))
			mask |= 1 << slot
		}
		rm.backend.SetUniformInt(shader, UniformTextureMask, mask)
		rm.backend.DrawArrays(r.VertexCount)
		calls++
	}
	return calls
}

func (rm *RenderingManager) SetWireframe(enabled bool) {
	rm.wireframe = enabled
	rm.backend.SetWireframe(enabled)
}

func (rm *RenderingManager) ToggleWireframe() bool {
	rm.SetWireframe(!rm.wireframe)
	return rm.wireframe
}

func (rm *RenderingManager) Wireframe() bool {
	return rm.wireframe
}
