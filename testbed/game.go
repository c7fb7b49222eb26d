package testbed

import (
	"fmt"
	gomath "math"
	"path/filepath"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/spaghettifunk/kestrel/engine"
	"github.com/spaghettifunk/kestrel/engine/assets/loaders"
	"github.com/spaghettifunk/kestrel/engine/core"
	"github.com/spaghettifunk/kestrel/engine/math"
	"github.com/spaghettifunk/kestrel/engine/mesh"
	"github.com/spaghettifunk/kestrel/engine/renderer"
	"github.com/spaghettifunk/kestrel/engine/renderer/components"
	"github.com/spaghettifunk/kestrel/engine/scene"
	"github.com/spaghettifunk/kestrel/engine/text"
)

const (
	cameraSpeed   float32 = 2.5
	rotationSpeed float32 = 0.8
	// the quad slides back and forth through the cube
	quadAmplitude = 1.5
	labelScale    = 0.004

	overviewCamera = "overview"
	// pixels per world unit in the overview
	overviewZoom = 200
)

type TestGame struct {
	*engine.Game
}

type gameState struct {
	WorldCamera *components.Camera

	scene *scene.Scene
	cube  *scene.Entity
	quad  *scene.Entity
	hud   *text.Label

	elapsed     float64
	sinceHUD    float64
	lastOverlap bool
}

func NewTestGame(config *engine.ApplicationConfig) (*TestGame, error) {
	if config == nil {
		config = engine.DefaultApplicationConfig()
	}
	tg := &TestGame{
		Game: &engine.Game{
			ApplicationConfig: config,
			State:             &gameState{},
		},
	}

	tg.FnInitialize = tg.Initialize
	tg.FnUpdate = tg.Update
	tg.FnRender = tg.Render
	tg.FnOnResize = tg.OnResize
	tg.FnShutdown = tg.Shutdown

	return tg, nil
}

func (g *TestGame) Initialize(e *engine.Engine) error {
	core.LogDebug("TestGame Initialize fn....")

	sm := e.SystemManager()
	if sm == nil {
		return fmt.Errorf("the engine is not yet initialized with all the system managers: %w", core.ErrNotInitialized)
	}

	state := g.State.(*gameState)
	state.WorldCamera = sm.CameraSystem.Default()

	// orthographic view of the XY plane, kept in sync with the window by the
	// camera system; screen space is y-down so the scene shows mirrored
	width, height := e.GetFramebufferSize()
	overview, err := components.NewCamera2D(math.NewVec2(0, 0), overviewZoom, float32(width), float32(height))
	if err != nil {
		return err
	}
	if err := sm.CameraSystem.Register(overviewCamera, overview); err != nil {
		return err
	}
	state.scene = scene.NewScene(e.Backend(), sm.RenderingManager)

	shader := sm.ShaderSystem.Builtin()

	// a texture dropped in the asset folder replaces the checkerboard and is
	// hot reloaded while the sandbox runs
	crate, err := sm.TextureSystem.Add("crate", filepath.Join(e.Config().AssetsDir, "textures", "crate.png"))
	if err != nil {
		core.LogWarn("crate texture not available, using the default one: %s", err)
		crate = sm.TextureSystem.Default()
	}

	cube, err := state.scene.SpawnMesh("cube", mesh.NewCube(1), shader, crate)
	if err != nil {
		return err
	}
	state.cube = cube

	quad, err := state.scene.SpawnMesh("quad", mesh.NewQuad(0.5, 0.5), shader, sm.TextureSystem.Default(), crate)
	if err != nil {
		return err
	}
	quad.Transform.SetPosition(math.NewVec3(quadAmplitude, 0, 0))
	state.quad = quad

	label, err := g.createHUD(e, shader)
	if err != nil {
		// text is a nice to have in the sandbox
		core.LogWarn("failed to create the HUD: %s", err)
	} else {
		state.hud = label
		sm.RenderingManager.Add(label)
	}

	return nil
}

func (g *TestGame) createHUD(e *engine.Engine, shader *renderer.Shader) (*text.Label, error) {
	sm := e.SystemManager()
	loader := &loaders.SystemFontLoader{Size: 32}
	data, err := loader.Parse("goregular", goregular.TTF)
	if err != nil {
		return nil, err
	}
	font, err := sm.FontSystem.AddRasterized("goregular", data)
	if err != nil {
		return nil, err
	}
	label, err := text.NewLabel(e.Backend(), font.Font, shader, font.Atlas, "Kestrel", labelScale)
	if err != nil {
		return nil, err
	}
	// layout is y-down, the world is y-up
	label.Transform.SetPosition(math.NewVec3(-1.1, 1.1, 0))
	label.Transform.SetScale(math.NewVec3(1, -1, 1))
	return label, nil
}

func (g *TestGame) Update(e *engine.Engine, deltaTime float64) error {
	state := g.State.(*gameState)
	keys := e.Keys()
	dt := float32(deltaTime)
	state.elapsed += deltaTime

	if keys.GetKey(core.ActionUp) {
		state.WorldCamera.MoveForward(cameraSpeed * dt)
	}
	if keys.GetKey(core.ActionDown) {
		state.WorldCamera.MoveBackward(cameraSpeed * dt)
	}
	if keys.GetKey(core.ActionLeft) {
		state.WorldCamera.MoveLeft(cameraSpeed * dt)
	}
	if keys.GetKey(core.ActionRight) {
		state.WorldCamera.MoveRight(cameraSpeed * dt)
	}
	if keys.GetKeyDown(core.ActionAction) {
		state.cube.SetActive(!state.cube.IsActive())
		core.LogInfo("cube active: %t", state.cube.IsActive())
	}
	if keys.GetKeyDown(core.ActionMenu) {
		if err := g.toggleOverview(e); err != nil {
			return err
		}
	}

	state.cube.Transform.Rotate(math.NewVec3(rotationSpeed*dt*0.5, rotationSpeed*dt, 0))

	x := float32(quadAmplitude * gomath.Sin(state.elapsed))
	state.quad.Transform.SetPosition(math.NewVec3(x, 0, 0))

	overlap := len(state.scene.Colliding(state.quad)) > 0
	if overlap != state.lastOverlap {
		core.LogDebug("quad colliding: %t", overlap)
		state.lastOverlap = overlap
	}

	state.sinceHUD += deltaTime
	if state.hud != nil && state.sinceHUD >= 0.5 {
		state.sinceHUD = 0
		fps, frameTime := e.Metrics().Frame()
		msg := fmt.Sprintf("Kestrel\nfps %.0f  frame %.2fms", fps, frameTime)
		if overlap {
			msg += "\ncolliding"
		}
		if err := state.hud.SetText(e.Backend(), msg); err != nil {
			return err
		}
	}
	return nil
}

// toggleOverview switches between the perspective camera and the
// orthographic overview. Leaving the overview resets the world camera.
func (g *TestGame) toggleOverview(e *engine.Engine) error {
	cameras := e.SystemManager().CameraSystem
	if cameras.ActiveName() == overviewCamera {
		g.State.(*gameState).WorldCamera.Reset()
		return cameras.SetActive(components.DefaultCameraName)
	}
	core.LogInfo("switching to the %s camera", overviewCamera)
	return cameras.SetActive(overviewCamera)
}

func (g *TestGame) Render(e *engine.Engine, deltaTime float64) error {
	return nil
}

func (g *TestGame) OnResize(e *engine.Engine, width uint32, height uint32) error {
	core.LogDebug("testbed resized to %dx%d", width, height)
	return nil
}

func (g *TestGame) Shutdown(e *engine.Engine) error {
	state := g.State.(*gameState)
	if state.hud != nil {
		e.SystemManager().RenderingManager.Remove(state.hud)
		state.hud.Destroy(e.Backend())
		state.hud = nil
	}
	if state.scene != nil {
		state.scene.Clear()
	}
	return nil
}
