package components

import (
	"fmt"

	"github.com/spaghettifunk/kestrel/engine/core"
	"github.com/spaghettifunk/kestrel/engine/math"
)

const (
	camera2DNear float32 = 0.01
	camera2DFar  float32 = 100
)

// Camera2D is an orthographic camera centered on a focus point and sized to
// the window, in pixels. Y grows downwards: top is above the focus point.
type Camera2D struct {
	focus  math.Vec2
	zoom   float32
	width  float32
	height float32
}

// NewCamera2D fails with ErrOutOfRange on a non-positive size or zoom.
func NewCamera2D(focus math.Vec2, zoom, width, height float32) (*Camera2D, error) {
	c := &Camera2D{focus: focus}
	if err := c.SetZoom(zoom); err != nil {
		return nil, err
	}
	if err := c.Resize(width, height); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Camera2D) Focus() math.Vec2 {
	return c.focus
}

func (c *Camera2D) SetFocus(focus math.Vec2) {
	c.focus = focus
}

func (c *Camera2D) Zoom() float32 {
	return c.zoom
}

func (c *Camera2D) SetZoom(zoom float32) error {
	if zoom <= 0 {
		return fmt.Errorf("camera zoom %f: %w", zoom, core.ErrOutOfRange)
	}
	c.zoom = zoom
	return nil
}

func (c *Camera2D) Resize(width, height float32) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("camera size %fx%f: %w", width, height, core.ErrOutOfRange)
	}
	c.width = width
	c.height = height
	return nil
}

// Bounds returns the visible box around the focus point.
func (c *Camera2D) Bounds() (left, right, top, bottom float32) {
	left = c.focus.X - c.width/2
	right = c.focus.X + c.width/2
	top = c.focus.Y - c.height/2
	bottom = c.focus.Y + c.height/2
	return
}

func (c *Camera2D) Projection() math.Mat4 {
	left, right, top, bottom := c.Bounds()
	ortho := math.NewMat4OrthographicOffCenter(left, right, bottom, top, camera2DNear, camera2DFar)
	return ortho.Mul(math.NewMat4UniformScale(c.zoom))
}

// View is the identity, the focus point is folded into the projection.
func (c *Camera2D) View() math.Mat4 {
	return math.NewMat4Identity()
}
