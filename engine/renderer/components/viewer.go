package components

import "github.com/spaghettifunk/kestrel/engine/math"

// Viewer supplies the view and projection matrices used to draw a frame.
type Viewer interface {
	View() math.Mat4
	Projection() math.Mat4
}

// Resizable viewers follow the framebuffer size.
type Resizable interface {
	Resize(width, height float32) error
}
