// Package renderertest provides a recording renderer backend for tests that
// must not touch a graphics context.
package renderertest

import (
	"errors"
	"fmt"
	"image"

	"github.com/spaghettifunk/kestrel/engine/math"
	"github.com/spaghettifunk/kestrel/engine/renderer"
)

var ErrCompile = errors.New("shader compile failed")

// Call is one recorded backend invocation.
type Call struct {
	Method string
	Handle uint32
	Name   string
	Int    int32
	Mat4   math.Mat4
}

// Backend records every call and hands out increasing handles.
type Backend struct {
	Calls []Call

	Initialized bool
	Width       uint32
	Height      uint32
	ClearColour math.Vec4
	Wireframe   bool

	Geometries map[renderer.GeometryHandle][]float32
	Shaders    map[renderer.ShaderHandle][2]string
	Textures   map[renderer.TextureHandle]*image.RGBA

	// FailShaders makes CreateShader fail when a source equals one of its keys.
	FailShaders map[string]bool

	next uint32
}

func NewBackend() *Backend {
	return &Backend{
		Geometries:  make(map[renderer.GeometryHandle][]float32),
		Shaders:     make(map[renderer.ShaderHandle][2]string),
		Textures:    make(map[renderer.TextureHandle]*image.RGBA),
		FailShaders: make(map[string]bool),
	}
}

func (b *Backend) record(c Call) {
	b.Calls = append(b.Calls, c)
}

func (b *Backend) handle() uint32 {
	b.next++
	return b.next
}

// CallsTo returns the recorded calls of method, in order.
func (b *Backend) CallsTo(method string) []Call {
	var out []Call
	for _, c := range b.Calls {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

func (b *Backend) Reset() {
	b.Calls = nil
}

func (b *Backend) Initialize(config renderer.BackendConfig) error {
	b.Initialized = true
	b.Width, b.Height = config.Width, config.Height
	b.ClearColour = config.ClearColour
	b.record(Call{Method: "Initialize"})
	return nil
}

func (b *Backend) Shutdown() error {
	b.Initialized = false
	b.record(Call{Method: "Shutdown"})
	return nil
}

func (b *Backend) Resized(width, height uint32) {
	b.Width, b.Height = width, height
	b.record(Call{Method: "Resized", Int: int32(width)})
}

func (b *Backend) SetClearColour(colour math.Vec4) {
	b.ClearColour = colour
	b.record(Call{Method: "SetClearColour"})
}

func (b *Backend) Clear() {
	b.record(Call{Method: "Clear"})
}

func (b *Backend) SetWireframe(enabled bool) {
	b.Wireframe = enabled
	b.record(Call{Method: "SetWireframe"})
}

func (b *Backend) CreateGeometry(vertices []float32, layout renderer.VertexLayout) (renderer.GeometryHandle, error) {
	if layout.Stride <= 0 || len(vertices)%int(layout.Stride) != 0 {
		return renderer.InvalidHandle, fmt.Errorf("bad vertex layout")
	}
	h := renderer.GeometryHandle(b.handle())
	b.Geometries[h] = append([]float32(nil), vertices...)
	b.record(Call{Method: "CreateGeometry", Handle: uint32(h)})
	return h, nil
}

func (b *Backend) DestroyGeometry(geometry renderer.GeometryHandle) {
	delete(b.Geometries, geometry)
	b.record(Call{Method: "DestroyGeometry", Handle: uint32(geometry)})
}

func (b *Backend) BindGeometry(geometry renderer.GeometryHandle) {
	b.record(Call{Method: "BindGeometry", Handle: uint32(geometry)})
}

func (b *Backend) CreateShader(vertexSource, fragmentSource string) (renderer.ShaderHandle, error) {
	if b.FailShaders[vertexSource] || b.FailShaders[fragmentSource] {
		return renderer.InvalidHandle, ErrCompile
	}
	h := renderer.ShaderHandle(b.handle())
	b.Shaders[h] = [2]string{vertexSource, fragmentSource}
	b.record(Call{Method: "CreateShader", Handle: uint32(h)})
	return h, nil
}

func (b *Backend) DestroyShader(shader renderer.ShaderHandle) {
	delete(b.Shaders, shader)
	b.record(Call{Method: "DestroyShader", Handle: uint32(shader)})
}

func (b *Backend) UseShader(shader renderer.ShaderHandle) {
	b.record(Call{Method: "UseShader", Handle: uint32(shader)})
}

func (b *Backend) SetUniformMat4(shader renderer.ShaderHandle, name string, value math.Mat4) {
	b.record(Call{Method: "SetUniformMat4", Handle: uint32(shader), Name: name, Mat4: value})
}

func (b *Backend) SetUniformInt(shader renderer.ShaderHandle, name string, value int32) {
	b.record(Call{Method: "SetUniformInt", Handle: uint32(shader), Name: name, Int: value})
}

func (b *Backend) SetUniformVec4(shader renderer.ShaderHandle, name string, value math.Vec4) {
	b.record(Call{Method: "SetUniformVec4", Handle: uint32(shader), Name: name})
}

func (b *Backend) CreateTexture(pixels *image.RGBA) (renderer.TextureHandle, error) {
	if pixels == nil {
		return renderer.InvalidHandle, fmt.Errorf("nil pixels")
	}
	h := renderer.TextureHandle(b.handle())
	b.Textures[h] = pixels
	b.record(Call{Method: "CreateTexture", Handle: uint32(h)})
	return h, nil
}

func (b *Backend) DestroyTexture(texture renderer.TextureHandle) {
	delete(b.Textures, texture)
	b.record(Call{Method: "DestroyTexture", Handle: uint32(texture)})
}

func (b *Backend) BindTexture(unit uint32, texture renderer.TextureHandle) {
	b.record(Call{Method: "BindTexture", Handle: uint32(texture), Int: int32(unit)})
}

func (b *Backend) DrawArrays(vertexCount int32) {
	b.record(Call{Method: "DrawArrays", Int: vertexCount})
}

var _ renderer.RendererBackend = (*Backend)(nil)
