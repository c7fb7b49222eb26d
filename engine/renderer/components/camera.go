package components

import (
	"fmt"

	"github.com/spaghettifunk/kestrel/engine/core"
	"github.com/spaghettifunk/kestrel/engine/math"
)

/** @brief The name of the default camera. */
const DefaultCameraName string = "default"

// DefaultCameraDistance is how far back on Z a new camera is placed.
const DefaultCameraDistance float32 = 3

// pitch limit of 89 degrees
const pitchLimit float32 = 1.55334306

type PerspectiveConfig struct {
	FieldOfView float32 // radians
	AspectRatio float32
	Near        float32
	Far         float32
}

func DefaultPerspectiveConfig(width, height float32) PerspectiveConfig {
	aspect := float32(1)
	if height > 0 {
		aspect = width / height
	}
	return PerspectiveConfig{
		FieldOfView: math.DegToRad(45),
		AspectRatio: aspect,
		Near:        0.1,
		Far:         100,
	}
}

/**
 * @brief A perspective camera. The view matrix is the inverse of the camera
 * world matrix and is only rebuilt after the position or rotation changed.
 * Cameras are registered with the camera system, constructing one does not
 * make it active.
 */
type Camera struct {
	position      math.Vec3
	eulerRotation math.Vec3 // pitch, yaw, roll
	isDirty       bool
	viewMatrix    math.Mat4

	config     PerspectiveConfig
	projection math.Mat4
}

// NewCamera fails with core.ErrOutOfRange when config describes an invalid
// frustum.
func NewCamera(config PerspectiveConfig) (*Camera, error) {
	c := &Camera{}
	if err := c.SetPerspective(config); err != nil {
		return nil, err
	}
	c.Reset()
	return c, nil
}

// Reset puts the camera back DefaultCameraDistance units up the Z axis,
// looking down -Z.
func (c *Camera) Reset() {
	c.eulerRotation = math.NewVec3Zero()
	c.position = math.NewVec3(0, 0, DefaultCameraDistance)
	c.isDirty = true
}

func (c *Camera) SetPerspective(config PerspectiveConfig) error {
	p, err := math.NewMat4PerspectiveFieldOfView(config.FieldOfView, config.AspectRatio, config.Near, config.Far)
	if err != nil {
		return fmt.Errorf("camera perspective: %w", err)
	}
	c.config = config
	c.projection = p
	return nil
}

func (c *Camera) Perspective() PerspectiveConfig {
	return c.config
}

// Resize keeps the field of view and updates the aspect ratio.
func (c *Camera) Resize(width, height float32) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("camera size %fx%f: %w", width, height, core.ErrOutOfRange)
	}
	cfg := c.config
	cfg.AspectRatio = width / height
	return c.SetPerspective(cfg)
}

func (c *Camera) Projection() math.Mat4 {
	return c.projection
}

func (c *Camera) Position() math.Vec3 {
	return c.position
}

func (c *Camera) SetPosition(position math.Vec3) {
	c.position = position
	c.isDirty = true
}

func (c *Camera) EulerRotation() math.Vec3 {
	return c.eulerRotation
}

func (c *Camera) SetEulerRotation(rotation math.Vec3) {
	c.eulerRotation = rotation
	c.isDirty = true
}

func (c *Camera) View() math.Mat4 {
	if c.isDirty {
		rotation := math.NewMat4EulerXYZ(c.eulerRotation.X, c.eulerRotation.Y, c.eulerRotation.Z)
		translation := math.NewMat4Translation(c.position)
		if view, ok := rotation.Mul(translation).Inverse(); ok {
			c.viewMatrix = view
		}
		c.isDirty = false
	}
	return c.viewMatrix
}

func (c *Camera) Forward() math.Vec3 {
	return c.View().Forward()
}

func (c *Camera) Backward() math.Vec3 {
	return c.View().Backward()
}

func (c *Camera) Left() math.Vec3 {
	return c.View().Left()
}

func (c *Camera) Right() math.Vec3 {
	return c.View().Right()
}

func (c *Camera) move(direction math.Vec3, amount float32) {
	c.position = c.position.Add(direction.MulScalar(amount))
	c.isDirty = true
}

func (c *Camera) MoveForward(amount float32) {
	c.move(c.Forward(), amount)
}

func (c *Camera) MoveBackward(amount float32) {
	c.move(c.Backward(), amount)
}

func (c *Camera) MoveLeft(amount float32) {
	c.move(c.Left(), amount)
}

func (c *Camera) MoveRight(amount float32) {
	c.move(c.Right(), amount)
}

func (c *Camera) MoveUp(amount float32) {
	c.move(math.NewVec3Up(), amount)
}

func (c *Camera) MoveDown(amount float32) {
	c.move(math.NewVec3Up(), -amount)
}

func (c *Camera) Yaw(amount float32) {
	c.eulerRotation.Y += amount
	c.isDirty = true
}

// Pitch is clamped to 89 degrees either way to avoid gimbal lock.
func (c *Camera) Pitch(amount float32) {
	c.eulerRotation.X = math.Clamp(c.eulerRotation.X+amount, -pitchLimit, pitchLimit)
	c.isDirty = true
}
