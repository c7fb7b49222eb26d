package opengl

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/spaghettifunk/kestrel/engine/core"
	"github.com/spaghettifunk/kestrel/engine/math"
	"github.com/spaghettifunk/kestrel/engine/renderer"
)

const floatSize = 4

type geometry struct {
	vao, vbo    uint32
	vertexCount int32
}

type program struct {
	id       uint32
	uniforms map[string]int32
}

// Backend renders through an OpenGL 4.1 core context. The context must be
// current on the calling thread before Initialize.
type Backend struct {
	geometries map[renderer.GeometryHandle]*geometry
	programs   map[renderer.ShaderHandle]*program
	textures   map[renderer.TextureHandle]uint32
	next       uint32
}

func New() *Backend {
	return &Backend{
		geometries: make(map[renderer.GeometryHandle]*geometry),
		programs:   make(map[renderer.ShaderHandle]*program),
		textures:   make(map[renderer.TextureHandle]uint32),
	}
}

func (b *Backend) handle() uint32 {
	b.next++
	return b.next
}

func (b *Backend) Initialize(config renderer.BackendConfig) error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("opengl init: %w", err)
	}
	core.LogInfo("OpenGL version %s (%s)", gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER)))

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	b.Resized(config.Width, config.Height)
	b.SetClearColour(config.ClearColour)
	return nil
}

func (b *Backend) Shutdown() error {
	for h := range b.geometries {
		b.DestroyGeometry(h)
	}
	for h := range b.programs {
		b.DestroyShader(h)
	}
	for h := range b.textures {
		b.DestroyTexture(h)
	}
	core.LogInfo("OpenGL backend shut down")
	return nil
}

func (b *Backend) Resized(width, height uint32) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (b *Backend) SetClearColour(colour math.Vec4) {
	gl.ClearColor(colour.X, colour.Y, colour.Z, colour.W)
}

func (b *Backend) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (b *Backend) SetWireframe(enabled bool) {
	if enabled {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

func (b *Backend) CreateGeometry(vertices []float32, layout renderer.VertexLayout) (renderer.GeometryHandle, error) {
	if layout.Stride <= 0 || len(vertices) == 0 || len(vertices)%int(layout.Stride) != 0 {
		return renderer.InvalidHandle, fmt.Errorf("geometry of %d floats with stride %d: %w", len(vertices), layout.Stride, core.ErrOutOfRange)
	}
	g := &geometry{vertexCount: int32(len(vertices)) / layout.Stride}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)
	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*floatSize, gl.Ptr(vertices), gl.STATIC_DRAW)

	stride := layout.Stride * floatSize
	for _, attr := range layout.Attributes {
		gl.EnableVertexAttribArray(attr.Location)
		gl.VertexAttribPointerWithOffset(attr.Location, attr.Size, gl.FLOAT, false, stride, uintptr(attr.Offset*floatSize))
	}
	gl.BindVertexArray(0)

	h := renderer.GeometryHandle(b.handle())
	b.geometries[h] = g
	return h, nil
}

func (b *Backend) DestroyGeometry(h renderer.GeometryHandle) {
	g, ok := b.geometries[h]
	if !ok {
		return
	}
	gl.DeleteBuffers(1, &g.vbo)
	gl.DeleteVertexArrays(1, &g.vao)
	delete(b.geometries, h)
}

func (b *Backend) BindGeometry(h renderer.GeometryHandle) {
	if g, ok := b.geometries[h]; ok {
		gl.BindVertexArray(g.vao)
		return
	}
	gl.BindVertexArray(0)
}

func (b *Backend) CreateTexture(pixels *image.RGBA) (renderer.TextureHandle, error) {
	if pixels == nil {
		return renderer.InvalidHandle, fmt.Errorf("texture pixels: %w", core.ErrNotInitialized)
	}
	size := pixels.Rect.Size()

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST_MIPMAP_NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(pixels.Stride/4))
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(size.X), int32(size.Y), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels.Pix))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	h := renderer.TextureHandle(b.handle())
	b.textures[h] = id
	return h, nil
}

func (b *Backend) DestroyTexture(h renderer.TextureHandle) {
	id, ok := b.textures[h]
	if !ok {
		return
	}
	gl.DeleteTextures(1, &id)
	delete(b.textures, h)
}

func (b *Backend) BindTexture(unit uint32, h renderer.TextureHandle) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, b.textures[h])
}

func (b *Backend) DrawArrays(vertexCount int32) {
	gl.DrawArrays(gl.TRIANGLES, 0, vertexCount)
}

var _ renderer.RendererBackend = (*Backend)(nil)
