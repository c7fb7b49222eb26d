package engine

// Game is the application driven by the engine. Every hook is optional.
type Game struct {
	ApplicationConfig *ApplicationConfig
	State             interface{}
	FnInitialize      Initialize
	FnUpdate          Update
	FnRender          Render
	FnOnResize        OnResize
	FnShutdown        Shutdown
}

type Initialize func(e *Engine) error
type Update func(e *Engine, deltaTime float64) error

// Render runs after the frame is cleared and before the rendering manager
// draws the registered entities.
type Render func(e *Engine, deltaTime float64) error
type OnResize func(e *Engine, width uint32, height uint32) error
type Shutdown func(e *Engine) error

func (g *Game) initialize(e *Engine) error {
	if g.FnInitialize == nil {
		return nil
	}
	return g.FnInitialize(e)
}

func (g *Game) update(e *Engine, deltaTime float64) error {
	if g.FnUpdate == nil {
		return nil
	}
	return g.FnUpdate(e, deltaTime)
}

func (g *Game) render(e *Engine, deltaTime float64) error {
	if g.FnRender == nil {
		return nil
	}
	return g.FnRender(e, deltaTime)
}

func (g *Game) onResize(e *Engine, width, height uint32) error {
	if g.FnOnResize == nil {
		return nil
	}
	return g.FnOnResize(e, width, height)
}

func (g *Game) shutdown(e *Engine) error {
	if g.FnShutdown == nil {
		return nil
	}
	return g.FnShutdown(e)
}
