package systems

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spaghettifunk/kestrel/engine/assets"
	"github.com/spaghettifunk/kestrel/engine/assets/loaders"
	"github.com/spaghettifunk/kestrel/engine/core"
	"github.com/spaghettifunk/kestrel/engine/math"
	"github.com/spaghettifunk/kestrel/engine/renderer"
	"github.com/spaghettifunk/kestrel/engine/renderer/components"
	"github.com/spaghettifunk/kestrel/engine/renderer/renderertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	vertexSource   = "#version 410 core\nvoid main() { gl_Position = vec4(0.0); }\n"
	fragmentSource = "#version 410 core\nout vec4 c;\nvoid main() { c = vec4(1.0); }\n"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 100, A: 255})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func newAssetManager(t *testing.T) *assets.AssetManager {
	t.Helper()
	am, err := assets.NewAssetManager()
	require.NoError(t, err)
	t.Cleanup(func() { am.Close() })
	return am
}

func TestCameraSystem(t *testing.T) {
	cs, err := NewCameraSystem(components.DefaultPerspectiveConfig(800, 600))
	require.NoError(t, err)
	assert.Equal(t, components.DefaultCameraName, cs.ActiveName())
	assert.Same(t, cs.Default(), cs.Active())

	ui, err := components.NewCamera2D(math.NewVec2(0, 0), 1, 800, 600)
	require.NoError(t, err)
	require.NoError(t, cs.Register("ui", ui))
	assert.ErrorIs(t, cs.Register("ui", ui), core.ErrDuplicate)
	assert.ErrorIs(t, cs.Register("", ui), core.ErrOutOfRange)
	assert.ErrorIs(t, cs.Register("nil", nil), core.ErrOutOfRange)
	assert.Equal(t, []string{components.DefaultCameraName, "ui"}, cs.Names())

	assert.ErrorIs(t, cs.SetActive("missing"), core.ErrNotFound)
	assert.Equal(t, components.DefaultCameraName, cs.ActiveName())

	require.NoError(t, cs.SetActive("ui"))
	assert.Same(t, ui, cs.Active())
	got, ok := cs.Get("ui")
	require.True(t, ok)
	assert.Same(t, ui, got)

	require.NoError(t, cs.OnResize(1024, 512))
	assert.InDelta(t, 2, cs.Default().Perspective().AspectRatio, 1e-6)
	left, right, _, _ := ui.Bounds()
	assert.InDelta(t, -512, left, 1e-4)
	assert.InDelta(t, 512, right, 1e-4)

	require.NoError(t, cs.OnResize(0, 0))
	assert.InDelta(t, 2, cs.Default().Perspective().AspectRatio, 1e-6)

	require.NoError(t, cs.Remove("ui"))
	assert.Equal(t, components.DefaultCameraName, cs.ActiveName())
	assert.ErrorIs(t, cs.Remove("ui"), core.ErrNotFound)
	assert.ErrorIs(t, cs.Remove(components.DefaultCameraName), core.ErrOutOfRange)
}

func TestCameraSystemRejectsInvalidDefault(t *testing.T) {
	config := components.DefaultPerspectiveConfig(800, 600)
	config.Near = 0
	_, err := NewCameraSystem(config)
	assert.ErrorIs(t, err, core.ErrOutOfRange)
}

func TestTextureSystem(t *testing.T) {
	backend := renderertest.NewBackend()
	ts := NewTextureSystem(backend, newAssetManager(t))
	require.NoError(t, ts.Initialize())

	def := ts.Default()
	require.NotNil(t, def)
	assert.Equal(t, uint32(8), def.Width)
	assert.Contains(t, backend.Textures, def.Handle)

	dir := t.TempDir()
	path := filepath.Join(dir, "wall.png")
	writePNG(t, path, 4, 2)

	wall, err := ts.Add("wall", path)
	require.NoError(t, err)
	assert.Equal(t, uint32(4), wall.Width)
	assert.Equal(t, uint32(2), wall.Height)
	assert.Equal(t, path, wall.Path)

	_, err = ts.Add("wall", path)
	assert.ErrorIs(t, err, core.ErrDuplicate)
	_, err = ts.Add(DefaultTextureName, path)
	assert.ErrorIs(t, err, core.ErrOutOfRange)
	_, err = ts.Add("missing", filepath.Join(dir, "missing.png"))
	assert.Error(t, err)

	got, ok := ts.Get("wall")
	require.True(t, ok)
	assert.Same(t, wall, got)
	_, ok = ts.Get("nope")
	assert.False(t, ok)
	assert.Same(t, def, ts.GetOrDefault("nope"))
	assert.Same(t, wall, ts.GetOrDefault("wall"))

	oldHandle := wall.Handle
	writePNG(t, path, 8, 8)
	n, err := ts.Reload(path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, uint32(1), wall.Generation)
	assert.Equal(t, uint32(8), wall.Width)
	assert.NotEqual(t, oldHandle, wall.Handle)
	assert.NotContains(t, backend.Textures, oldHandle)

	n, err = ts.Reload(filepath.Join(dir, "other.png"))
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, os.WriteFile(path, []byte("broken"), 0o644))
	handle := wall.Handle
	_, err = ts.Reload(path)
	assert.Error(t, err)
	assert.Equal(t, handle, wall.Handle)
	assert.Equal(t, uint32(1), wall.Generation)

	require.NoError(t, ts.Remove("wall"))
	assert.ErrorIs(t, ts.Remove("wall"), core.ErrNotFound)

	require.NoError(t, ts.Shutdown())
	assert.Empty(t, backend.Textures)
	assert.Nil(t, ts.Default())
}

func TestTextureSystemAddImage(t *testing.T) {
	backend := renderertest.NewBackend()
	ts := NewTextureSystem(backend, newAssetManager(t))

	tex, err := ts.AddImage("generated", image.NewRGBA(image.Rect(0, 0, 16, 4)))
	require.NoError(t, err)
	assert.Equal(t, uint32(16), tex.Width)
	assert.Empty(t, tex.Path)
	assert.Equal(t, []string{"generated"}, ts.Names())
}

func writeShaders(t *testing.T, dir string) (string, string) {
	t.Helper()
	vert := filepath.Join(dir, "basic.vert")
	frag := filepath.Join(dir, "basic.frag")
	require.NoError(t, os.WriteFile(vert, []byte(vertexSource), 0o644))
	require.NoError(t, os.WriteFile(frag, []byte(fragmentSource), 0o644))
	return vert, frag
}

func TestShaderSystem(t *testing.T) {
	backend := renderertest.NewBackend()
	ss := NewShaderSystem(backend, newAssetManager(t))
	require.NoError(t, ss.Initialize())

	builtin := ss.Builtin()
	require.NotNil(t, builtin)
	sources := backend.Shaders[builtin.Handle]
	assert.Contains(t, sources[0], "uniform mat4 model;")
	assert.Contains(t, sources[0], "layout(location = 1) in vec2 aTexCoord;")
	assert.Contains(t, sources[1], "uniform sampler2D texture1;")

	vert, frag := writeShaders(t, t.TempDir())
	basic, err := ss.Load("basic", vert, frag)
	require.NoError(t, err)
	assert.Equal(t, [2]string{vertexSource, fragmentSource}, backend.Shaders[basic.Handle])

	_, err = ss.Load("basic", vert, frag)
	assert.ErrorIs(t, err, core.ErrDuplicate)
	_, err = ss.Load("broken", vert, frag+".missing")
	assert.Error(t, err)
	_, ok := ss.Get("broken")
	assert.False(t, ok)

	edited := strings.Replace(fragmentSource, "1.0", "0.5", 1)
	require.NoError(t, os.WriteFile(frag, []byte(edited), 0o644))
	oldHandle := basic.Handle
	n, err := ss.Reload(frag)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, uint32(1), basic.Generation)
	assert.NotEqual(t, oldHandle, basic.Handle)
	assert.Equal(t, edited, backend.Shaders[basic.Handle][1])
	assert.NotContains(t, backend.Shaders, oldHandle)

	backend.FailShaders[fragmentSource] = true
	require.NoError(t, os.WriteFile(frag, []byte(fragmentSource), 0o644))
	handle := basic.Handle
	_, err = ss.Reload(frag)
	assert.ErrorIs(t, err, renderertest.ErrCompile)
	assert.Equal(t, handle, basic.Handle)

	assert.ErrorIs(t, ss.Remove(BuiltinShaderName), core.ErrOutOfRange)
	require.NoError(t, ss.Remove("basic"))
	assert.ErrorIs(t, ss.Remove("basic"), core.ErrNotFound)

	require.NoError(t, ss.Shutdown())
	assert.Empty(t, backend.Shaders)
}

func TestShaderSystemBuiltinCompileFailure(t *testing.T) {
	backend := renderertest.NewBackend()
	src, err := builtinShaders.ReadFile("shaders/builtin.vert")
	require.NoError(t, err)
	backend.FailShaders[string(src)] = true

	ss := NewShaderSystem(backend, newAssetManager(t))
	assert.ErrorIs(t, ss.Initialize(), renderertest.ErrCompile)
	assert.Nil(t, ss.Builtin())
}

func TestFontSystemRasterized(t *testing.T) {
	backend := renderertest.NewBackend()
	am := newAssetManager(t)
	ts := NewTextureSystem(backend, am)
	fs := NewFontSystem(ts, am)

	data, err := (&loaders.SystemFontLoader{Size: 18, Runes: "Hello"}).Parse("go", goregular.TTF)
	require.NoError(t, err)

	font, err := fs.AddRasterized("ui", data)
	require.NoError(t, err)
	assert.Equal(t, "font:ui", font.Atlas.Name)
	assert.Equal(t, uint32(data.AtlasWidth), font.Atlas.Width)
	assert.Contains(t, backend.Textures, font.Atlas.Handle)
	assert.NotEmpty(t, font.Font.Layout("Hello", 1).Vertices)

	_, err = fs.AddRasterized("ui", data)
	assert.ErrorIs(t, err, core.ErrDuplicate)

	got, ok := fs.Get("ui")
	require.True(t, ok)
	assert.Same(t, font, got)

	require.NoError(t, fs.Shutdown())
	assert.Empty(t, backend.Textures)
	assert.Empty(t, fs.Names())
	assert.ErrorIs(t, fs.Unload("ui"), core.ErrNotFound)
}

func TestFontSystemRejectsBitmapWithoutFile(t *testing.T) {
	backend := renderertest.NewBackend()
	am := newAssetManager(t)
	fs := NewFontSystem(NewTextureSystem(backend, am), am)

	_, err := fs.LoadBitmap("ui", filepath.Join(t.TempDir(), "missing.fnt"))
	assert.Error(t, err)
	_, err = fs.AddRasterized("bare", &loaders.FontData{})
	assert.ErrorIs(t, err, core.ErrOutOfRange)
}

func TestSystemManagerHotReload(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "textures"), 0o755))
	wallPath := filepath.Join(dir, "textures", "wall.png")
	writePNG(t, wallPath, 2, 2)
	vert, frag := writeShaders(t, dir)

	backend := renderertest.NewBackend()
	sm, err := NewSystemManager(backend, SystemManagerConfig{
		AssetsDir:   dir,
		WatchAssets: true,
		Camera:      components.DefaultPerspectiveConfig(800, 600),
	})
	require.NoError(t, err)
	require.NoError(t, sm.Initialize())
	t.Cleanup(func() { sm.Shutdown() })

	require.NotNil(t, sm.ShaderSystem.Builtin())
	require.NotNil(t, sm.TextureSystem.Default())

	wall, err := sm.TextureSystem.Add("wall", wallPath)
	require.NoError(t, err)
	basic, err := sm.ShaderSystem.Load("basic", vert, frag)
	require.NoError(t, err)

	writePNG(t, wallPath, 4, 4)
	require.NoError(t, os.WriteFile(vert, []byte(vertexSource+"// edited\n"), 0o644))

	require.Eventually(t, func() bool {
		sm.ReloadChangedAssets()
		return wall.Generation > 0 && basic.Generation > 0
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, uint32(4), wall.Width)
}

func TestSystemManagerWithoutAssetDirectory(t *testing.T) {
	backend := renderertest.NewBackend()
	sm, err := NewSystemManager(backend, SystemManagerConfig{
		AssetsDir:   filepath.Join(t.TempDir(), "does-not-exist"),
		WatchAssets: true,
		Camera:      components.DefaultPerspectiveConfig(800, 600),
	})
	require.NoError(t, err)
	require.NoError(t, sm.Initialize())
	assert.Zero(t, sm.ReloadChangedAssets())

	sm.RenderingManager.Add(&stubDrawable{})
	require.NoError(t, sm.OnResize(640, 480))
	require.NoError(t, sm.Shutdown())
	assert.Zero(t, sm.RenderingManager.Len())
	assert.Empty(t, backend.Shaders)
}

type stubDrawable struct{}

func (stubDrawable) IsActive() bool                   { return true }
func (stubDrawable) ModelMatrix() math.Mat4           { return math.NewMat4Identity() }
func (stubDrawable) RenderData() *renderer.Renderable { return nil }
