package systems

import (
	"embed"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spaghettifunk/kestrel/engine/assets"
	"github.com/spaghettifunk/kestrel/engine/core"
	"github.com/spaghettifunk/kestrel/engine/renderer"
)

// BuiltinShaderName is the textured, tinted shader every renderable can use.
const BuiltinShaderName = "transformation"

//go:embed shaders/builtin.vert shaders/builtin.frag
var builtinShaders embed.FS

type ShaderSystem struct {
	backend      renderer.RendererBackend
	assetManager *assets.AssetManager
	shaders      map[string]*renderer.Shader
}

func NewShaderSystem(backend renderer.RendererBackend, am *assets.AssetManager) *ShaderSystem {
	return &ShaderSystem{
		backend:      backend,
		assetManager: am,
		shaders:      make(map[string]*renderer.Shader),
	}
}

// Initialize compiles the built-in shader.
func (ss *ShaderSystem) Initialize() error {
	vertex, err := builtinShaders.ReadFile("shaders/builtin.vert")
	if err != nil {
		return err
	}
	fragment, err := builtinShaders.ReadFile("shaders/builtin.frag")
	if err != nil {
		return err
	}
	handle, err := ss.backend.CreateShader(string(vertex), string(fragment))
	if err != nil {
		core.LogError("failed to compile the built-in shader: %s", err)
		return err
	}
	ss.shaders[BuiltinShaderName] = &renderer.Shader{Name: BuiltinShaderName, Handle: handle}
	return nil
}

func (ss *ShaderSystem) Shutdown() error {
	for _, name := range ss.Names() {
		ss.backend.DestroyShader(ss.shaders[name].Handle)
	}
	ss.shaders = make(map[string]*renderer.Shader)
	return nil
}

// Load compiles a program from a vertex and a fragment source file and
// registers it under name.
func (ss *ShaderSystem) Load(name, vertexPath, fragmentPath string) (*renderer.Shader, error) {
	if name == "" {
		return nil, fmt.Errorf("empty shader name: %w", core.ErrOutOfRange)
	}
	if _, exists := ss.shaders[name]; exists {
		return nil, fmt.Errorf("shader %s: %w", name, core.ErrDuplicate)
	}
	shader := &renderer.Shader{
		Name:         name,
		VertexPath:   filepath.Clean(vertexPath),
		FragmentPath: filepath.Clean(fragmentPath),
	}
	handle, err := ss.compile(shader)
	if err != nil {
		core.LogError("failed to load shader %s: %s", name, err)
		return nil, err
	}
	shader.Handle = handle
	ss.shaders[name] = shader
	core.LogDebug("shader %s loaded", name)
	return shader, nil
}

func (ss *ShaderSystem) Get(name string) (*renderer.Shader, bool) {
	s, ok := ss.shaders[name]
	return s, ok
}

func (ss *ShaderSystem) Builtin() *renderer.Shader {
	return ss.shaders[BuiltinShaderName]
}

// Reload recompiles every shader that uses path as one of its stages. A
// shader that fails to compile keeps running its previous program.
func (ss *ShaderSystem) Reload(path string) (int, error) {
	path = filepath.Clean(path)
	reloaded := 0
	for _, name := range ss.Names() {
		s := ss.shaders[name]
		if s.VertexPath != path && s.FragmentPath != path {
			continue
		}
		handle, err := ss.compile(s)
		if err != nil {
			core.LogError("failed to reload shader %s, keeping the previous program: %s", name, err)
			return reloaded, err
		}
		ss.backend.DestroyShader(s.Handle)
		s.Handle = handle
		s.Generation++
		reloaded++
		core.LogInfo("shader %s reloaded (generation %d)", name, s.Generation)
	}
	return reloaded, nil
}

func (ss *ShaderSystem) Remove(name string) error {
	if name == BuiltinShaderName {
		return fmt.Errorf("the built-in shader cannot be removed: %w", core.ErrOutOfRange)
	}
	s, ok := ss.shaders[name]
	if !ok {
		return fmt.Errorf("shader %s: %w", name, core.ErrNotFound)
	}
	ss.backend.DestroyShader(s.Handle)
	delete(ss.shaders, name)
	return nil
}

func (ss *ShaderSystem) Names() []string {
	names := make([]string, 0, len(ss.shaders))
	for name := range ss.shaders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (ss *ShaderSystem) compile(s *renderer.Shader) (renderer.ShaderHandle, error) {
	vertex, err := ss.source(s.VertexPath)
	if err != nil {
		return renderer.InvalidHandle, err
	}
	fragment, err := ss.source(s.FragmentPath)
	if err != nil {
		return renderer.InvalidHandle, err
	}
	return ss.backend.CreateShader(vertex, fragment)
}

func (ss *ShaderSystem) source(path string) (string, error) {
	res, err := ss.assetManager.Load(path)
	if err != nil {
		return "", err
	}
	src, ok := res.Data.(string)
	if !ok {
		return "", fmt.Errorf("%s is a %s, not a shader: %w", path, res.Type, core.ErrOutOfRange)
	}
	return src, nil
}
