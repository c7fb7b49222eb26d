package systems

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spaghettifunk/kestrel/engine/core"
	"github.com/spaghettifunk/kestrel/engine/renderer/components"
)

// CameraSystem owns the named cameras and which one is active. The default
// perspective camera always exists and becomes active again when the active
// camera is removed.
type CameraSystem struct {
	cameras       map[string]components.Viewer
	active        string
	defaultCamera *components.Camera
}

func NewCameraSystem(config components.PerspectiveConfig) (*CameraSystem, error) {
	camera, err := components.NewCamera(config)
	if err != nil {
		core.LogError("failed to create the default camera: %s", err)
		return nil, err
	}
	return &CameraSystem{
		cameras:       map[string]components.Viewer{components.DefaultCameraName: camera},
		active:        components.DefaultCameraName,
		defaultCamera: camera,
	}, nil
}

func (cs *CameraSystem) Shutdown() error {
	cs.cameras = map[string]components.Viewer{components.DefaultCameraName: cs.defaultCamera}
	cs.active = components.DefaultCameraName
	return nil
}

func (cs *CameraSystem) Register(name string, camera components.Viewer) error {
	if name == "" || camera == nil {
		return fmt.Errorf("camera %q: %w", name, core.ErrOutOfRange)
	}
	if _, exists := cs.cameras[name]; exists {
		return fmt.Errorf("camera %q: %w", name, core.ErrDuplicate)
	}
	cs.cameras[name] = camera
	return nil
}

func (cs *CameraSystem) Get(name string) (components.Viewer, bool) {
	camera, ok := cs.cameras[name]
	return camera, ok
}

// Default returns the camera registered under components.DefaultCameraName.
func (cs *CameraSystem) Default() *components.Camera {
	return cs.defaultCamera
}

func (cs *CameraSystem) SetActive(name string) error {
	if _, ok := cs.cameras[name]; !ok {
		return fmt.Errorf("camera %q: %w", name, core.ErrNotFound)
	}
	cs.active = name
	return nil
}

func (cs *CameraSystem) Active() components.Viewer {
	return cs.cameras[cs.active]
}

func (cs *CameraSystem) ActiveName() string {
	return cs.active
}

func (cs *CameraSystem) Remove(name string) error {
	if name == components.DefaultCameraName {
		return fmt.Errorf("the default camera cannot be removed: %w", core.ErrOutOfRange)
	}
	if _, ok := cs.cameras[name]; !ok {
		return fmt.Errorf("camera %q: %w", name, core.ErrNotFound)
	}
	delete(cs.cameras, name)
	if cs.active == name {
		cs.active = components.DefaultCameraName
	}
	return nil
}

func (cs *CameraSystem) Names() []string {
	names := make([]string, 0, len(cs.cameras))
	for name := range cs.cameras {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// OnResize forwards the new framebuffer size to every camera that can follow
// it. A zero size is ignored.
func (cs *CameraSystem) OnResize(width, height float32) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	var errs []error
	for _, name := range cs.Names() {
		if r, ok := cs.cameras[name].(components.Resizable); ok {
			if err := r.Resize(width, height); err != nil {
				errs = append(errs, fmt.Errorf("camera %q: %w", name, err))
			}
		}
	}
	return errors.Join(errs...)
}
