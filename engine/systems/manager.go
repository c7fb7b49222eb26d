package systems

import (
	"errors"
	"os"

	"github.com/spaghettifunk/kestrel/engine/assets"
	"github.com/spaghettifunk/kestrel/engine/assets/loaders"
	"github.com/spaghettifunk/kestrel/engine/core"
	"github.com/spaghettifunk/kestrel/engine/renderer"
	"github.com/spaghettifunk/kestrel/engine/renderer/components"
)

type SystemManagerConfig struct {
	AssetsDir   string
	WatchAssets bool
	Camera      components.PerspectiveConfig
}

// SystemManager wires the engine subsystems together. It is created after
// the renderer backend and shut down before it.
type SystemManager struct {
	AssetManager     *assets.AssetManager
	CameraSystem     *CameraSystem
	TextureSystem    *TextureSystem
	ShaderSystem     *ShaderSystem
	FontSystem       *FontSystem
	RenderingManager *renderer.RenderingManager

	config SystemManagerConfig
}

func NewSystemManager(backend renderer.RendererBackend, config SystemManagerConfig) (*SystemManager, error) {
	am, err := assets.NewAssetManager()
	if err != nil {
		return nil, err
	}
	cs, err := NewCameraSystem(config.Camera)
	if err != nil {
		am.Close()
		return nil, err
	}
	ts := NewTextureSystem(backend, am)
	return &SystemManager{
		AssetManager:     am,
		CameraSystem:     cs,
		TextureSystem:    ts,
		ShaderSystem:     NewShaderSystem(backend, am),
		FontSystem:       NewFontSystem(ts, am),
		RenderingManager: renderer.NewRenderingManager(backend),
		config:           config,
	}, nil
}

func (sm *SystemManager) Initialize() error {
	if sm.config.WatchAssets && sm.config.AssetsDir != "" {
		if _, err := os.Stat(sm.config.AssetsDir); err != nil {
			core.LogWarn("asset directory %s is not available, hot reload disabled: %s", sm.config.AssetsDir, err)
		} else if err := sm.AssetManager.Initialize(sm.config.AssetsDir); err != nil {
			return err
		}
	}
	if err := sm.TextureSystem.Initialize(); err != nil {
		return err
	}
	return sm.ShaderSystem.Initialize()
}

// OnResize updates the projection of every resizable camera.
func (sm *SystemManager) OnResize(width, height float32) error {
	return sm.CameraSystem.OnResize(width, height)
}

// ReloadChangedAssets applies the file changes reported by the asset watcher.
// It must run on the thread owning the graphics context. It returns the
// number of textures and shaders that were rebuilt.
func (sm *SystemManager) ReloadChangedAssets() int {
	reloaded := 0
	for _, path := range sm.AssetManager.Poll() {
		var (
			n   int
			err error
		)
		switch assets.DetermineAssetType(path) {
		case loaders.ResourceTypeImage:
			n, err = sm.TextureSystem.Reload(path)
		case loaders.ResourceTypeShader:
			n, err = sm.ShaderSystem.Reload(path)
		default:
			continue
		}
		if err != nil {
			core.LogWarn("hot reload of %s failed: %s", path, err)
		}
		reloaded += n
	}
	return reloaded
}

func (sm *SystemManager) Shutdown() error {
	sm.RenderingManager.Clear()
	errs := []error{
		sm.FontSystem.Shutdown(),
		sm.ShaderSystem.Shutdown(),
		sm.TextureSystem.Shutdown(),
		sm.CameraSystem.Shutdown(),
		sm.AssetManager.Close(),
	}
	return errors.Join(errs...)
}
