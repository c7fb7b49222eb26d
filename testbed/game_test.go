package testbed

import (
	"testing"

	"github.com/spaghettifunk/kestrel/engine"
	"github.com/spaghettifunk/kestrel/engine/core"
	"github.com/spaghettifunk/kestrel/engine/math"
	"github.com/spaghettifunk/kestrel/engine/platform"
	"github.com/spaghettifunk/kestrel/engine/renderer"
	"github.com/spaghettifunk/kestrel/engine/renderer/components"
	"github.com/spaghettifunk/kestrel/engine/renderer/renderertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type headlessWindow struct {
	input *core.InputState
	down  map[core.KeyCode]bool
	close bool
	now   float64
}

func (w *headlessWindow) Startup(_ platform.WindowConfig, input *core.InputState) error {
	w.input = input
	w.down = make(map[core.KeyCode]bool)
	return nil
}

func (w *headlessWindow) Shutdown() error               { return nil }
func (w *headlessWindow) ShouldClose() bool             { return w.close }
func (w *headlessWindow) SetShouldClose(v bool)         { w.close = v }
func (w *headlessWindow) SwapBuffers()                  {}
func (w *headlessWindow) PollEvents()                   { w.now += 1.0 / 60.0 }
func (w *headlessWindow) GetTime() float64              { return w.now }
func (w *headlessWindow) IsKeyDown(k core.KeyCode) bool { return w.down[k] }

func (w *headlessWindow) press(key core.KeyCode, pressed bool) {
	w.down[key] = pressed
	w.input.ProcessKey(key, pressed)
}

func newSandbox(t *testing.T) (*engine.Engine, *headlessWindow, *renderertest.Backend) {
	t.Helper()
	config := engine.DefaultApplicationConfig()
	config.LogLevel = "error"
	config.AssetsDir = t.TempDir()
	config.WatchAssets = false
	config.Window.Width = 800
	config.Window.Height = 600
	config.Input.Bindings["menu"] = "m"

	tg, err := NewTestGame(config)
	require.NoError(t, err)

	window := &headlessWindow{}
	backend := renderertest.NewBackend()
	e, err := engine.New(tg.Game, engine.WithWindow(window), engine.WithBackend(backend))
	require.NoError(t, err)
	require.NoError(t, e.Initialize())
	t.Cleanup(func() { _ = e.Shutdown() })
	return e, window, backend
}

func projections(backend *renderertest.Backend) []math.Mat4 {
	var out []math.Mat4
	for _, c := range backend.CallsTo("SetUniformMat4") {
		if c.Name == renderer.UniformProjection {
			out = append(out, c.Mat4)
		}
	}
	return out
}

func TestSandboxInitialize(t *testing.T) {
	e, _, _ := newSandbox(t)
	sm := e.SystemManager()

	assert.Equal(t, []string{components.DefaultCameraName, overviewCamera}, sm.CameraSystem.Names())
	assert.Equal(t, components.DefaultCameraName, sm.CameraSystem.ActiveName())
	// cube, quad and the HUD label
	assert.Equal(t, 3, sm.RenderingManager.Len())
	_, ok := sm.FontSystem.Get("goregular")
	assert.True(t, ok)
}

func TestSandboxOverviewCamera(t *testing.T) {
	e, window, backend := newSandbox(t)
	cameras := e.SystemManager().CameraSystem
	overview, ok := cameras.Get(overviewCamera)
	require.True(t, ok)

	window.press(core.KeyM, true)
	backend.Reset()
	_, err := e.RunFrame()
	require.NoError(t, err)
	assert.Equal(t, overviewCamera, cameras.ActiveName())

	got := projections(backend)
	require.NotEmpty(t, got)
	for _, p := range got {
		assert.Equal(t, overview.Projection(), p)
	}

	// resizing reaches the orthographic camera too
	window.input.ProcessResize(400, 300)
	_, err = e.RunFrame()
	require.NoError(t, err)
	left, right, _, _ := overview.(*components.Camera2D).Bounds()
	assert.Equal(t, float32(-200), left)
	assert.Equal(t, float32(200), right)

	window.press(core.KeyM, false)
	_, err = e.RunFrame()
	require.NoError(t, err)
	window.press(core.KeyM, true)
	_, err = e.RunFrame()
	require.NoError(t, err)
	assert.Equal(t, components.DefaultCameraName, cameras.ActiveName())
	assert.Equal(t, float32(components.DefaultCameraDistance), cameras.Default().Position().Z)
}
