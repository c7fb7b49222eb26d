package scene

import (
	"github.com/google/uuid"
	"github.com/spaghettifunk/kestrel/engine/math"
	"github.com/spaghettifunk/kestrel/engine/physics"
	"github.com/spaghettifunk/kestrel/engine/renderer"
)

// Registry is told about entities turning active or inactive. The rendering
// manager satisfies it.
type Registry interface {
	Add(renderer.Drawable)
	Remove(renderer.Drawable) bool
}

// Entity is built from optional components. An entity without a Render
// component is still registered but draws nothing.
type Entity struct {
	ID        uuid.UUID
	Name      string
	Transform *math.Transform
	Render    *renderer.Renderable
	Collider  *physics.Collider

	active   bool
	registry Registry
}

// NewEntity creates an active entity at the origin and registers it with
// registry when one is given.
func NewEntity(name string, registry Registry) *Entity {
	e := &Entity{
		ID:        uuid.New(),
		Name:      name,
		Transform: math.NewTransform(),
		registry:  registry,
	}
	e.SetActive(true)
	return e
}

// SetActive registers the entity with its registry when it becomes active
// and unregisters it when it becomes inactive.
func (e *Entity) SetActive(active bool) {
	if e.active == active {
		return
	}
	e.active = active
	if e.registry == nil {
		return
	}
	if active {
		e.registry.Add(e)
	} else {
		e.registry.Remove(e)
	}
}

func (e *Entity) IsActive() bool {
	return e.active
}

func (e *Entity) ModelMatrix() math.Mat4 {
	if e.Transform == nil {
		return math.NewMat4Identity()
	}
	return e.Transform.GetWorld()
}

func (e *Entity) RenderData() *renderer.Renderable {
	return e.Render
}

// AddCollider attaches a unit box collider following the entity transform.
func (e *Entity) AddCollider() *physics.Collider {
	e.Collider = physics.NewCollider(e.Transform)
	return e.Collider
}

// Collides reports whether both entities are active and their colliders
// overlap.
func (e *Entity) Collides(other *Entity) bool {
	if other == nil || other == e || !e.active || !other.active {
		return false
	}
	if e.Collider == nil || other.Collider == nil {
		return false
	}
	return e.Collider.IsColliding(other.Collider)
}

// destroy unregisters the entity and releases its geometry.
func (e *Entity) destroy(backend renderer.RendererBackend) {
	e.SetActive(false)
	e.registry = nil
	if e.Render != nil {
		e.Render.Destroy(backend)
		e.Render = nil
	}
	e.Collider = nil
}
