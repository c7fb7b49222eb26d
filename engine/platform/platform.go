package platform

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spaghettifunk/kestrel/engine/core"
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

type WindowConfig struct {
	Title  string
	X      int
	Y      int
	Width  int
	Height int
	VSync  bool
}

// Platform is a GLFW window with a current OpenGL 4.1 core context. Input
// callbacks feed the InputState passed to Startup.
type Platform struct {
	window    *glfw.Window
	input     *core.InputState
	startTime float64
}

func New() *Platform {
	return &Platform{}
}

func (p *Platform) Startup(config WindowConfig, input *core.InputState) error {
	if err := glfw.Init(); err != nil {
		core.LogError("failed to initialize glfw: %s", err)
		return err
	}

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(config.Width, config.Height, config.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		core.LogError("failed to create window: %s", err)
		return err
	}
	window.MakeContextCurrent()
	if config.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	p.window = window
	p.input = input

	window.SetKeyCallback(p.keyCallback)
	window.SetMouseButtonCallback(p.mouseButtonCallback)
	window.SetCursorPosCallback(p.cursorPosCallback)
	window.SetScrollCallback(p.scrollCallback)
	window.SetFramebufferSizeCallback(p.framebufferSizeCallback)
	window.SetPos(config.X, config.Y)
	window.Show()

	p.startTime = glfw.GetTime()
	return nil
}

func (p *Platform) Shutdown() error {
	if p.window != nil {
		p.window.Destroy()
		p.window = nil
	}
	glfw.Terminate()
	return nil
}

func (p *Platform) ShouldClose() bool {
	return p.window == nil || p.window.ShouldClose()
}

func (p *Platform) SetShouldClose(value bool) {
	if p.window != nil {
		p.window.SetShouldClose(value)
	}
}

func (p *Platform) SwapBuffers() {
	p.window.SwapBuffers()
}

func (p *Platform) PollEvents() {
	glfw.PollEvents()
}

// GetTime returns the seconds elapsed since Startup.
func (p *Platform) GetTime() float64 {
	return glfw.GetTime() - p.startTime
}

// IsKeyDown polls the window directly, independent of the callbacks.
func (p *Platform) IsKeyDown(key core.KeyCode) bool {
	g, ok := keyToGLFW[key]
	if !ok || p.window == nil {
		return false
	}
	return p.window.GetKey(g) == glfw.Press
}

func (p *Platform) FramebufferSize() (int, int) {
	return p.window.GetFramebufferSize()
}

func (p *Platform) String() string {
	return fmt.Sprintf("glfw %s", glfw.GetVersionString())
}

func (p *Platform) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Repeat {
		return
	}
	code := translateKey(key)
	if code == core.KeyUnknown {
		return
	}
	p.input.ProcessKey(code, action == glfw.Press)
}

func (p *Platform) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if b, ok := translateButton(button); ok {
		p.input.ProcessButton(b, action == glfw.Press)
	}
}

func (p *Platform) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	p.input.ProcessMouseMove(xpos, ypos)
}

func (p *Platform) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	p.input.ProcessMouseWheel(xoff, yoff)
}

func (p *Platform) framebufferSizeCallback(w *glfw.Window, width, height int) {
	p.input.ProcessResize(uint32(width), uint32(height))
}
