package systems

import (
	"fmt"
	"image"
	"sort"

	"github.com/spaghettifunk/kestrel/engine/assets"
	"github.com/spaghettifunk/kestrel/engine/assets/loaders"
	"github.com/spaghettifunk/kestrel/engine/core"
	"github.com/spaghettifunk/kestrel/engine/renderer"
	"github.com/spaghettifunk/kestrel/engine/text"
)

// LoadedFont pairs a font's glyph metrics with its uploaded atlas.
type LoadedFont struct {
	Font  *text.Font
	Atlas *renderer.Texture
}

// FontSystem loads bitmap (.fnt) and TrueType/OpenType fonts. Only the first
// atlas page is used.
type FontSystem struct {
	textureSystem *TextureSystem
	assetManager  *assets.AssetManager
	fonts         map[string]*LoadedFont
}

func NewFontSystem(ts *TextureSystem, am *assets.AssetManager) *FontSystem {
	return &FontSystem{
		textureSystem: ts,
		assetManager:  am,
		fonts:         make(map[string]*LoadedFont),
	}
}

func (fs *FontSystem) Shutdown() error {
	for _, name := range fs.Names() {
		if err := fs.Unload(name); err != nil {
			return err
		}
	}
	return nil
}

// LoadBitmap loads an AngelCode font whose atlas image sits next to it.
func (fs *FontSystem) LoadBitmap(name, path string) (*LoadedFont, error) {
	if err := fs.checkName(name); err != nil {
		return nil, err
	}
	res, err := fs.assetManager.Load(path)
	if err != nil {
		return nil, err
	}
	data, ok := res.Data.(*loaders.FontData)
	if !ok || res.Type != loaders.ResourceTypeBitmapFont {
		return nil, fmt.Errorf("%s is a %s, not a bitmap font: %w", path, res.Type, core.ErrOutOfRange)
	}
	if len(data.Pages) == 0 {
		return nil, fmt.Errorf("bitmap font %s has no pages: %w", path, core.ErrOutOfRange)
	}
	if len(data.Pages) > 1 {
		core.LogWarn("bitmap font %s has %d pages, only the first is used", path, len(data.Pages))
	}
	font, err := text.NewFont(name, data)
	if err != nil {
		return nil, err
	}
	atlas, err := fs.textureSystem.Add(atlasName(name), data.Pages[0].File)
	if err != nil {
		return nil, err
	}
	return fs.register(name, font, atlas), nil
}

// LoadSystem rasterizes a TrueType/OpenType font at size pixels.
func (fs *FontSystem) LoadSystem(name, path string, size float64) (*LoadedFont, error) {
	if err := fs.checkName(name); err != nil {
		return nil, err
	}
	loader := &loaders.SystemFontLoader{Size: size}
	res, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	return fs.addRasterized(name, res.Data.(*loaders.FontData))
}

// AddRasterized registers font data produced in memory by
// loaders.SystemFontLoader.Parse.
func (fs *FontSystem) AddRasterized(name string, data *loaders.FontData) (*LoadedFont, error) {
	if err := fs.checkName(name); err != nil {
		return nil, err
	}
	return fs.addRasterized(name, data)
}

func (fs *FontSystem) addRasterized(name string, data *loaders.FontData) (*LoadedFont, error) {
	if len(data.Pages) == 0 {
		return nil, fmt.Errorf("font %s has no atlas: %w", name, core.ErrOutOfRange)
	}
	pixels, ok := data.Pages[0].Image.(*image.RGBA)
	if !ok {
		return nil, fmt.Errorf("font %s atlas is not rasterized: %w", name, core.ErrOutOfRange)
	}
	font, err := text.NewFont(name, data)
	if err != nil {
		return nil, err
	}
	// glyph UVs assume the bottom row first, same as file textures
	flipped := image.NewRGBA(pixels.Rect)
	copy(flipped.Pix, pixels.Pix)
	loaders.FlipVertical(flipped)

	atlas, err := fs.textureSystem.AddImage(atlasName(name), flipped)
	if err != nil {
		return nil, err
	}
	return fs.register(name, font, atlas), nil
}

func (fs *FontSystem) Get(name string) (*LoadedFont, bool) {
	f, ok := fs.fonts[name]
	return f, ok
}

func (fs *FontSystem) Unload(name string) error {
	f, ok := fs.fonts[name]
	if !ok {
		return fmt.Errorf("font %s: %w", name, core.ErrNotFound)
	}
	delete(fs.fonts, name)
	return fs.textureSystem.Remove(f.Atlas.Name)
}

func (fs *FontSystem) Names() []string {
	names := make([]string, 0, len(fs.fonts))
	for name := range fs.fonts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (fs *FontSystem) checkName(name string) error {
	if name == "" {
		return fmt.Errorf("empty font name: %w", core.ErrOutOfRange)
	}
	if _, exists := fs.fonts[name]; exists {
		return fmt.Errorf("font %s: %w", name, core.ErrDuplicate)
	}
	return nil
}

func (fs *FontSystem) register(name string, font *text.Font, atlas *renderer.Texture) *LoadedFont {
	f := &LoadedFont{Font: font, Atlas: atlas}
	fs.fonts[name] = f
	core.LogDebug("font %s loaded (%d glyphs, atlas %dx%d)", name, len(font.Data().Glyphs), atlas.Width, atlas.Height)
	return f
}

func atlasName(font string) string {
	return "font:" + font
}
