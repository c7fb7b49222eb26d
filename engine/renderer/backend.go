package renderer

import (
	"image"

	"github.com/spaghettifunk/kestrel/engine/math"
)

type BackendConfig struct {
	ApplicationName string
	Width, Height   uint32
	ClearColour     math.Vec4
}

// RendererBackend is the graphics API seen by the engine. Handles are opaque
// to callers and only meaningful to the backend that issued them. Every
// method must be called from the thread owning the graphics context.
type RendererBackend interface {
	Initialize(config BackendConfig) error
	Shutdown() error
	Resized(width, height uint32)

	SetClearColour(colour math.Vec4)
	Clear()
	SetWireframe(enabled bool)

	CreateGeometry(vertices []float32, layout VertexLayout) (GeometryHandle, error)
	DestroyGeometry(geometry GeometryHandle)
	BindGeometry(geometry GeometryHandle)

	CreateShader(vertexSource, fragmentSource string) (ShaderHandle, error)
	DestroyShader(shader ShaderHandle)
	UseShader(shader ShaderHandle)
	SetUniformMat4(shader ShaderHandle, name string, value math.Mat4)
	SetUniformInt(shader ShaderHandle, name string, value int32)
	SetUniformVec4(shader ShaderHandle, name string, value math.Vec4)

	CreateTexture(pixels *image.RGBA) (TextureHandle, error)
	DestroyTexture(texture TextureHandle)
	BindTexture(unit uint32, texture TextureHandle)

	// DrawArrays draws vertexCount vertices of the bound geometry as triangles.
	DrawArrays(vertexCount int32)
}
