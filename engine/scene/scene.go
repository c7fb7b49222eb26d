package scene

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spaghettifunk/kestrel/engine/core"
	"github.com/spaghettifunk/kestrel/engine/mesh"
	"github.com/spaghettifunk/kestrel/engine/physics"
	"github.com/spaghettifunk/kestrel/engine/renderer"
)

// Scene owns a set of entities and the GPU resources of their renderables.
type Scene struct {
	backend  renderer.RendererBackend
	registry Registry
	entities []*Entity
	byID     map[uuid.UUID]*Entity
}

func NewScene(backend renderer.RendererBackend, registry Registry) *Scene {
	return &Scene{
		backend:  backend,
		registry: registry,
		byID:     make(map[uuid.UUID]*Entity),
	}
}

// Spawn adds an empty active entity.
func (s *Scene) Spawn(name string) *Entity {
	e := NewEntity(name, s.registry)
	s.entities = append(s.entities, e)
	s.byID[e.ID] = e
	return e
}

// SpawnMesh uploads m and returns an entity drawing it with shader and the
// given textures, one per slot. The collider is sized to the mesh extents.
func (s *Scene) SpawnMesh(name string, m *mesh.Mesh, shader *renderer.Shader, textures ...*renderer.Texture) (*Entity, error) {
	if len(textures) > renderer.MaxTextureSlots {
		return nil, fmt.Errorf("entity %s with %d textures: %w", name, len(textures), core.ErrOutOfRange)
	}
	r, err := renderer.NewRenderable(s.backend, m.Vertices, shader)
	if err != nil {
		return nil, fmt.Errorf("entity %s: %w", name, err)
	}
	for slot, t := range textures {
		if err := r.SetTexture(slot, t); err != nil {
			r.Destroy(s.backend)
			return nil, err
		}
	}
	e := s.Spawn(name)
	e.Render = r
	e.Collider = physics.NewColliderFromExtents(e.Transform, m.Extents())
	return e, nil
}

func (s *Scene) Find(id uuid.UUID) (*Entity, bool) {
	e, ok := s.byID[id]
	return e, ok
}

// FindByName returns the first entity spawned with name.
func (s *Scene) FindByName(name string) (*Entity, bool) {
	for _, e := range s.entities {
		if e.Name == name {
			return e, true
		}
	}
	return nil, false
}

// Entities returns the entities in spawn order.
func (s *Scene) Entities() []*Entity {
	return append([]*Entity(nil), s.entities...)
}

func (s *Scene) Len() int {
	return len(s.entities)
}

// Destroy unregisters e and frees its geometry.
func (s *Scene) Destroy(e *Entity) error {
	if e == nil {
		return fmt.Errorf("nil entity: %w", core.ErrNotFound)
	}
	if _, ok := s.byID[e.ID]; !ok {
		return fmt.Errorf("entity %s (%s): %w", e.Name, e.ID, core.ErrNotFound)
	}
	delete(s.byID, e.ID)
	for i, entry := range s.entities {
		if entry == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			break
		}
	}
	e.destroy(s.backend)
	return nil
}

// Colliding returns every other entity whose collider overlaps e.
func (s *Scene) Colliding(e *Entity) []*Entity {
	var out []*Entity
	for _, other := range s.entities {
		if e.Collides(other) {
			out = append(out, other)
		}
	}
	return out
}

func (s *Scene) Clear() {
	for _, e := range s.entities {
		e.destroy(s.backend)
	}
	s.entities = nil
	s.byID = make(map[uuid.UUID]*Entity)
}
