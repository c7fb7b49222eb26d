package systems

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"sort"

	"github.com/spaghettifunk/kestrel/engine/assets"
	"github.com/spaghettifunk/kestrel/engine/core"
	"github.com/spaghettifunk/kestrel/engine/renderer"
)

const (
	DefaultTextureName = "default"

	defaultTextureSize = 8
)

// TextureSystem maps names to uploaded textures. Textures created from a file
// remember their path so they can be reloaded in place when it changes.
type TextureSystem struct {
	backend        renderer.RendererBackend
	assetManager   *assets.AssetManager
	textures       map[string]*renderer.Texture
	defaultTexture *renderer.Texture
}

func NewTextureSystem(backend renderer.RendererBackend, am *assets.AssetManager) *TextureSystem {
	return &TextureSystem{
		backend:      backend,
		assetManager: am,
		textures:     make(map[string]*renderer.Texture),
	}
}

// Initialize uploads the default checkerboard texture.
func (ts *TextureSystem) Initialize() error {
	handle, err := ts.backend.CreateTexture(checkerboard(defaultTextureSize))
	if err != nil {
		return fmt.Errorf("default texture: %w", err)
	}
	ts.defaultTexture = &renderer.Texture{
		Name:   DefaultTextureName,
		Handle: handle,
		Width:  defaultTextureSize,
		Height: defaultTextureSize,
	}
	return nil
}

func (ts *TextureSystem) Shutdown() error {
	for _, name := range ts.Names() {
		ts.backend.DestroyTexture(ts.textures[name].Handle)
	}
	ts.textures = make(map[string]*renderer.Texture)
	if ts.defaultTexture != nil {
		ts.backend.DestroyTexture(ts.defaultTexture.Handle)
		ts.defaultTexture = nil
	}
	return nil
}

// Add loads the image at path and registers it under name.
func (ts *TextureSystem) Add(name, path string) (*renderer.Texture, error) {
	if err := ts.checkName(name); err != nil {
		return nil, err
	}
	path = filepath.Clean(path)
	pixels, err := ts.load(path)
	if err != nil {
		core.LogError("failed to load texture %s from %s: %s", name, path, err)
		return nil, err
	}
	t, err := ts.upload(name, pixels)
	if err != nil {
		return nil, err
	}
	t.Path = path
	core.LogDebug("texture %s loaded from %s (%dx%d)", name, path, t.Width, t.Height)
	return t, nil
}

// AddImage registers pixels that were produced in memory, such as a font
// atlas. Such textures are never reloaded.
func (ts *TextureSystem) AddImage(name string, pixels *image.RGBA) (*renderer.Texture, error) {
	if err := ts.checkName(name); err != nil {
		return nil, err
	}
	return ts.upload(name, pixels)
}

// Get looks up a texture by name and logs when it is missing.
func (ts *TextureSystem) Get(name string) (*renderer.Texture, bool) {
	t, ok := ts.textures[name]
	if !ok {
		core.LogWarn("texture %s is not registered", name)
	}
	return t, ok
}

// GetOrDefault returns the named texture or the default checkerboard.
func (ts *TextureSystem) GetOrDefault(name string) *renderer.Texture {
	if t, ok := ts.Get(name); ok {
		return t
	}
	return ts.defaultTexture
}

func (ts *TextureSystem) Default() *renderer.Texture {
	return ts.defaultTexture
}

// Reload re-reads every texture created from path and swaps the pixels in
// place, so renderables holding the texture see the new data. It returns the
// number of textures updated. On failure the previous pixels stay bound.
func (ts *TextureSystem) Reload(path string) (int, error) {
	path = filepath.Clean(path)
	var targets []*renderer.Texture
	for _, name := range ts.Names() {
		if t := ts.textures[name]; t.Path == path {
			targets = append(targets, t)
		}
	}
	if len(targets) == 0 {
		return 0, nil
	}

	pixels, err := ts.load(path)
	if err != nil {
		core.LogError("failed to reload texture %s: %s", path, err)
		return 0, err
	}
	for _, t := range targets {
		handle, err := ts.backend.CreateTexture(pixels)
		if err != nil {
			return 0, fmt.Errorf("texture %s: %w", t.Name, err)
		}
		ts.backend.DestroyTexture(t.Handle)
		t.Handle = handle
		t.Width = uint32(pixels.Rect.Dx())
		t.Height = uint32(pixels.Rect.Dy())
		t.Generation++
		core.LogInfo("texture %s reloaded (generation %d)", t.Name, t.Generation)
	}
	return len(targets), nil
}

func (ts *TextureSystem) Remove(name string) error {
	t, ok := ts.textures[name]
	if !ok {
		return fmt.Errorf("texture %s: %w", name, core.ErrNotFound)
	}
	ts.backend.DestroyTexture(t.Handle)
	delete(ts.textures, name)
	return nil
}

func (ts *TextureSystem) Names() []string {
	names := make([]string, 0, len(ts.textures))
	for name := range ts.textures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (ts *TextureSystem) checkName(name string) error {
	if name == "" || name == DefaultTextureName {
		return fmt.Errorf("texture name %q is reserved: %w", name, core.ErrOutOfRange)
	}
	if _, exists := ts.textures[name]; exists {
		return fmt.Errorf("texture %s: %w", name, core.ErrDuplicate)
	}
	return nil
}

func (ts *TextureSystem) load(path string) (*image.RGBA, error) {
	res, err := ts.assetManager.Load(path)
	if err != nil {
		return nil, err
	}
	pixels, ok := res.Data.(*image.RGBA)
	if !ok {
		return nil, fmt.Errorf("%s is a %s, not an image: %w", path, res.Type, core.ErrOutOfRange)
	}
	return pixels, nil
}

func (ts *TextureSystem) upload(name string, pixels *image.RGBA) (*renderer.Texture, error) {
	handle, err := ts.backend.CreateTexture(pixels)
	if err != nil {
		return nil, fmt.Errorf("texture %s: %w", name, err)
	}
	t := &renderer.Texture{
		Name:   name,
		Handle: handle,
		Width:  uint32(pixels.Rect.Dx()),
		Height: uint32(pixels.Rect.Dy()),
	}
	ts.textures[name] = t
	return t, nil
}

// checkerboard alternates white and blue single pixel cells.
func checkerboard(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	blue := color.RGBA{B: 255, A: 255}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x+y)%2 == 0 {
				img.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
			} else {
				img.SetRGBA(x, y, blue)
			}
		}
	}
	return img
}
