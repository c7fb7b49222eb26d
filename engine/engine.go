package engine

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/spaghettifunk/kestrel/engine/core"
	"github.com/spaghettifunk/kestrel/engine/math"
	"github.com/spaghettifunk/kestrel/engine/platform"
	"github.com/spaghettifunk/kestrel/engine/renderer"
	"github.com/spaghettifunk/kestrel/engine/renderer/opengl"
	"github.com/spaghettifunk/kestrel/engine/systems"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently booting up
	EngineStageBooting
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
	// Engine released every system
	EngineStageShutdown
)

// Window is the OS window and input source the engine drives. The GLFW
// platform implements it.
type Window interface {
	Startup(config platform.WindowConfig, input *core.InputState) error
	Shutdown() error
	ShouldClose() bool
	SetShouldClose(value bool)
	SwapBuffers()
	PollEvents()
	// GetTime returns seconds since Startup.
	GetTime() float64
	IsKeyDown(key core.KeyCode) bool
}

// framebufferSizer is implemented by windows whose framebuffer may differ
// from the requested window size.
type framebufferSizer interface {
	FramebufferSize() (int, int)
}

type Option func(*Engine)

func WithWindow(w Window) Option {
	return func(e *Engine) { e.window = w }
}

func WithBackend(b renderer.RendererBackend) Option {
	return func(e *Engine) { e.backend = b }
}

type Engine struct {
	currentStage  Stage
	gameInstance  *Game
	config        *ApplicationConfig
	window        Window
	backend       renderer.RendererBackend
	systemManager *systems.SystemManager
	events        *core.EventSystem
	input         *core.InputState
	keys          *core.KeyDictionary
	state         *core.StateManager
	clock         *core.Clock
	metrics       *core.Metrics
	width         uint32
	height        uint32
	isSuspended   bool
	quit          atomic.Bool
}

func New(g *Game, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, fmt.Errorf("nil game: %w", core.ErrNotInitialized)
	}
	if g.ApplicationConfig == nil {
		g.ApplicationConfig = DefaultApplicationConfig()
	}
	config := g.ApplicationConfig
	if err := config.Validate(); err != nil {
		core.LogError(err.Error())
		return nil, err
	}
	core.SetLogLevel(config.Level())

	events := core.NewEventSystem(core.DefaultEventQueueSize)
	e := &Engine{
		currentStage: EngineStageUninitialized,
		gameInstance: g,
		config:       config,
		events:       events,
		input:        core.NewInputState(events),
		state:        core.NewStateManager(),
		metrics:      core.NewMetrics(),
		width:        uint32(config.Window.Width),
		height:       uint32(config.Window.Height),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.window == nil {
		e.window = platform.New()
	}
	if e.backend == nil {
		e.backend = opengl.New()
	}
	e.clock = core.NewClock(e.window.GetTime)
	return e, nil
}

func (e *Engine) Initialize() error {
	if e.currentStage != EngineStageUninitialized {
		return fmt.Errorf("engine already initialized: %w", core.ErrDuplicate)
	}
	e.currentStage = EngineStageBooting

	if err := e.window.Startup(e.config.WindowConfig(), e.input); err != nil {
		return err
	}
	if fs, ok := e.window.(framebufferSizer); ok {
		if w, h := fs.FramebufferSize(); w > 0 && h > 0 {
			e.width, e.height = uint32(w), uint32(h)
		}
	}

	if err := e.backend.Initialize(renderer.BackendConfig{
		ApplicationName: e.config.Name,
		Width:           e.width,
		Height:          e.height,
		ClearColour:     e.config.ClearColour(),
	}); err != nil {
		core.LogError("failed to initialize the renderer: %s", err)
		return err
	}

	bindings, err := e.config.KeyBindings()
	if err != nil {
		return err
	}
	e.keys = core.NewDefaultKeyDictionary(e.window, bindings)

	perspective := e.config.PerspectiveConfig()
	perspective.AspectRatio = float32(e.width) / float32(e.height)
	sm, err := systems.NewSystemManager(e.backend, systems.SystemManagerConfig{
		AssetsDir:   e.config.AssetsDir,
		WatchAssets: e.config.WatchAssets,
		Camera:      perspective,
	})
	if err != nil {
		return err
	}
	e.systemManager = sm
	if err := sm.Initialize(); err != nil {
		return err
	}
	sm.CameraSystem.Default().SetPosition(math.NewVec3(0, 0, e.config.Camera.Distance))

	for code, fn := range map[core.EventCode]core.OnEvent{
		core.EventCodeApplicationQuit: e.onQuit,
		core.EventCodeKeyPressed:      e.onKey,
		core.EventCodeResized:         e.onResized,
	} {
		if err := e.events.Register(code, e, fn); err != nil {
			return err
		}
	}

	if err := e.gameInstance.initialize(e); err != nil {
		core.LogError("game initialization failed: %s", err)
		return err
	}
	e.currentStage = EngineStageInitialized
	core.LogInfo("%s initialized (%dx%d)", e.config.Name, e.width, e.height)
	return nil
}

// Run drives frames until the window is asked to close or a game hook
// fails.
func (e *Engine) Run() error {
	if e.currentStage != EngineStageInitialized {
		return fmt.Errorf("engine is not initialized: %w", core.ErrNotInitialized)
	}
	e.currentStage = EngineStageRunning
	e.state.Set(core.GameStateActive)
	e.clock.Start()
	defer e.clock.Stop()

	for {
		running, err := e.RunFrame()
		if err != nil {
			return err
		}
		if !running {
			return nil
		}
	}
}

// RunFrame executes a single iteration of the main loop. It returns false
// once the window should close.
func (e *Engine) RunFrame() (bool, error) {
	if e.quit.Load() {
		e.window.SetShouldClose(true)
	}
	if e.window.ShouldClose() {
		return false, nil
	}
	frameStart := e.window.GetTime()

	e.clock.Update()
	delta := e.clock.Delta()

	e.systemManager.ReloadChangedAssets()

	e.keys.CheckInputs()
	if e.window.IsKeyDown(core.KeyEscape) {
		e.window.SetShouldClose(true)
	}

	e.events.Dispatch()

	if e.isSuspended {
		e.input.Update()
		e.window.PollEvents()
		return true, nil
	}

	if e.state.Current() != core.GameStatePaused {
		if err := e.gameInstance.update(e, delta); err != nil {
			core.LogError("game update failed, shutting down: %s", err)
			return false, err
		}
	}

	e.backend.Clear()
	if err := e.gameInstance.render(e, delta); err != nil {
		core.LogError("game render failed, shutting down: %s", err)
		return false, err
	}
	e.systemManager.RenderingManager.Draw(e.systemManager.CameraSystem.Active())
	e.window.SwapBuffers()

	// input state copying must happen after everything read this frame's
	// input and before new events are polled
	e.input.Update()
	e.window.PollEvents()

	e.metrics.Update(e.window.GetTime() - frameStart)
	return true, nil
}

// RequestQuit asks the loop to stop at the top of the next frame. Safe to
// call from any goroutine.
func (e *Engine) RequestQuit() {
	e.quit.Store(true)
}

func (e *Engine) Shutdown() error {
	if e.currentStage == EngineStageShutdown {
		return nil
	}
	e.currentStage = EngineStageShuttingDown
	var errs []error
	if e.systemManager != nil {
		errs = append(errs, e.gameInstance.shutdown(e))
	}
	e.events.Shutdown()
	if e.systemManager != nil {
		errs = append(errs, e.systemManager.Shutdown())
	}
	errs = append(errs, e.backend.Shutdown(), e.window.Shutdown())
	e.currentStage = EngineStageShutdown
	return errors.Join(errs...)
}

func (e *Engine) Stage() Stage                          { return e.currentStage }
func (e *Engine) Config() *ApplicationConfig            { return e.config }
func (e *Engine) Backend() renderer.RendererBackend     { return e.backend }
func (e *Engine) SystemManager() *systems.SystemManager { return e.systemManager }
func (e *Engine) Events() *core.EventSystem             { return e.events }
func (e *Engine) Input() *core.InputState               { return e.input }
func (e *Engine) Keys() *core.KeyDictionary             { return e.keys }
func (e *Engine) State() *core.StateManager             { return e.state }
func (e *Engine) Clock() *core.Clock                    { return e.clock }
func (e *Engine) Metrics() *core.Metrics                { return e.metrics }
func (e *Engine) IsSuspended() bool                     { return e.isSuspended }

// GetFramebufferSize returns the width and height (in this order) of the
// application framebuffer.
func (e *Engine) GetFramebufferSize() (uint32, uint32) {
	return e.width, e.height
}

func (e *Engine) onQuit(event core.Event) bool {
	core.LogInfo("application quit received, shutting down")
	e.window.SetShouldClose(true)
	return true
}

func (e *Engine) onKey(event core.Event) bool {
	switch event.Key {
	case core.KeyF1:
		core.LogDebug("wireframe %t", e.systemManager.RenderingManager.ToggleWireframe())
		return true
	case core.KeyF2, core.KeyF3, core.KeyF4, core.KeyF6, core.KeyF7:
		core.LogDebug("%s pressed", event.Key)
		return true
	case core.KeyPause:
		if e.state.TogglePause() {
			core.LogInfo("game state %s", e.state.Current())
		}
		return true
	}
	return false
}

func (e *Engine) onResized(event core.Event) bool {
	width, height := event.Width, event.Height
	if width == e.width && height == e.height && !e.isSuspended {
		return true
	}
	core.LogDebug("window resize: %d, %d", width, height)

	// minimized
	if width == 0 || height == 0 {
		core.LogInfo("window minimized, suspending application")
		e.isSuspended = true
		return true
	}
	if e.isSuspended {
		core.LogInfo("window restored, resuming application")
		e.isSuspended = false
	}
	e.width, e.height = width, height
	e.backend.Resized(width, height)
	if err := e.systemManager.OnResize(float32(width), float32(height)); err != nil {
		core.LogError(err.Error())
	}
	if err := e.gameInstance.onResize(e, width, height); err != nil {
		core.LogError("game resize failed: %s", err)
	}
	return true
}
