package renderer

type RendererType uint8

const (
	OpenGL RendererType = iota
)

type (
	GeometryHandle uint32
	ShaderHandle   uint32
	TextureHandle  uint32
)

// InvalidHandle is never returned by a backend for a live resource.
const InvalidHandle = 0

type VertexAttribute struct {
	Location uint32
	// Size is the number of float components.
	Size int32
	// Offset is counted in floats from the start of the vertex.
	Offset int32
}

// VertexLayout describes interleaved float vertex data.
type VertexLayout struct {
	// Stride is the number of floats per vertex.
	Stride     int32
	Attributes []VertexAttribute
}

// PositionTexCoordLayout is three position floats followed by two UV floats,
// bound to locations 0 and 1.
var PositionTexCoordLayout = VertexLayout{
	Stride: 5,
	Attributes: []VertexAttribute{
		{Location: 0, Size: 3, Offset: 0},
		{Location: 1, Size: 2, Offset: 3},
	},
}

type Texture struct {
	Name   string
	Path   string
	Handle TextureHandle
	Width  uint32
	Height uint32
	// Generation is bumped every time the pixels are reloaded.
	Generation uint32
}

type Shader struct {
	Name         string
	Handle       ShaderHandle
	VertexPath   string
	FragmentPath string
	Generation   uint32
}

// Uniform names understood by the built-in shader.
const (
	UniformModel      = "model"
	UniformView       = "view"
	UniformProjection = "projection"
	UniformTint       = "tint"
	// UniformTextureMask has bit n set when slot n holds a texture.
	UniformTextureMask = "textureMask"
)

// TextureUniform returns the sampler name bound to slot, e.g. texture0.
func TextureUniform(slot int) string {
	return textureUniforms[slot]
}

var textureUniforms = [MaxTextureSlots]string{"texture0", "texture1"}
