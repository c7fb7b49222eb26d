package opengl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/spaghettifunk/kestrel/engine/core"
	"github.com/spaghettifunk/kestrel/engine/math"
	"github.com/spaghettifunk/kestrel/engine/renderer"
)

func (b *Backend) CreateShader(vertexSource, fragmentSource string) (renderer.ShaderHandle, error) {
	vertex, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return renderer.InvalidHandle, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vertex)

	fragment, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return renderer.InvalidHandle, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fragment)

	id := gl.CreateProgram()
	gl.AttachShader(id, vertex)
	gl.AttachShader(id, fragment)
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(id, logLength, nil, &log[0])
		gl.DeleteProgram(id)
		return renderer.InvalidHandle, fmt.Errorf("link program: %s", strings.TrimRight(string(log), "\x00"))
	}

	h := renderer.ShaderHandle(b.handle())
	b.programs[h] = &program{id: id, uniforms: make(map[string]int32)}
	return h, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile: %s", strings.TrimRight(string(log), "\x00"))
	}
	return shader, nil
}

func (b *Backend) DestroyShader(h renderer.ShaderHandle) {
	p, ok := b.programs[h]
	if !ok {
		return
	}
	gl.DeleteProgram(p.id)
	delete(b.programs, h)
}

func (b *Backend) UseShader(h renderer.ShaderHandle) {
	if p, ok := b.programs[h]; ok {
		gl.UseProgram(p.id)
		return
	}
	core.LogWarn("use of unknown shader handle %d", h)
}

// location caches uniform lookups; -1 means the program has no such uniform
// and GL ignores writes to it.
func (b *Backend) location(h renderer.ShaderHandle, name string) int32 {
	p, ok := b.programs[h]
	if !ok {
		return -1
	}
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}

// SetUniformMat4 uploads transposed since the shader multiplies row vectors
// on the left: vec4(pos, 1) * model * view * projection.
func (b *Backend) SetUniformMat4(h renderer.ShaderHandle, name string, value math.Mat4) {
	gl.UniformMatrix4fv(b.location(h, name), 1, true, &value.Data[0])
}

func (b *Backend) SetUniformInt(h renderer.ShaderHandle, name string, value int32) {
	gl.Uniform1i(b.location(h, name), value)
}

func (b *Backend) SetUniformVec4(h renderer.ShaderHandle, name string, value math.Vec4) {
	gl.Uniform4f(b.location(h, name), value.X, value.Y, value.Z, value.W)
}
