package loaders

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	DefaultSystemFontSize  = 16
	DefaultSystemFontRunes = " !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"

	atlasWidth  = 512
	atlasMargin = 1
)

// SystemFontLoader rasterizes a TrueType or OpenType font into a single
// in-memory glyph atlas.
type SystemFontLoader struct {
	Size  float64
	Runes string
}

func (fl *SystemFontLoader) Load(path string) (*Resource, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	data, err := fl.Parse(name, raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &Resource{
		Name:     filepath.Base(path),
		FullPath: path,
		Type:     ResourceTypeSystemFont,
		DataSize: uint64(len(raw)),
		Data:     data,
	}, nil
}

func (fl *SystemFontLoader) Unload(resource *Resource) error {
	resource.Data = nil
	resource.DataSize = 0
	return nil
}

// Parse builds FontData from raw font bytes. The atlas is stored as an
// *image.RGBA in the first page with white glyphs on a transparent background.
func (fl *SystemFontLoader) Parse(name string, raw []byte) (*FontData, error) {
	size := fl.Size
	if size <= 0 {
		size = DefaultSystemFontSize
	}
	runes := fl.Runes
	if runes == "" {
		runes = DefaultSystemFontRunes
	}

	parsed, err := opentype.Parse(raw)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	defer face.Close()

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	lineHeight := metrics.Height.Ceil()

	type placed struct {
		r      rune
		bounds fixed.Rectangle26_6
		glyph  FontGlyph
	}
	var glyphs []placed
	x, y, rowHeight := atlasMargin, atlasMargin, 0
	seen := make(map[rune]bool)
	for _, r := range runes {
		if seen[r] {
			continue
		}
		seen[r] = true
		bounds, advance, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}
		w := bounds.Max.X.Ceil() - bounds.Min.X.Floor()
		h := bounds.Max.Y.Ceil() - bounds.Min.Y.Floor()
		if x+w+atlasMargin > atlasWidth {
			x = atlasMargin
			y += rowHeight + atlasMargin
			rowHeight = 0
		}
		glyphs = append(glyphs, placed{
			r:      r,
			bounds: bounds,
			glyph: FontGlyph{
				Codepoint: r,
				X:         x,
				Y:         y,
				Width:     w,
				Height:    h,
				XOffset:   bounds.Min.X.Floor(),
				YOffset:   ascent + bounds.Min.Y.Floor(),
				XAdvance:  advance.Round(),
			},
		})
		x += w + atlasMargin
		rowHeight = max(rowHeight, h)
	}
	if len(glyphs) == 0 {
		return nil, fmt.Errorf("font %s has none of the requested glyphs", name)
	}
	atlasHeight := nextPowerOfTwo(y + rowHeight + atlasMargin)

	atlas := image.NewRGBA(image.Rect(0, 0, atlasWidth, atlasHeight))
	drawer := &font.Drawer{Dst: atlas, Src: image.White, Face: face}
	data := &FontData{
		Face:        name,
		Size:        int(size),
		LineHeight:  lineHeight,
		Baseline:    ascent,
		AtlasWidth:  atlasWidth,
		AtlasHeight: atlasHeight,
		Pages:       []FontPage{{ID: 0, Image: atlas}},
		Glyphs:      make(map[rune]FontGlyph, len(glyphs)),
		Kernings:    make(map[KerningPair]int),
	}
	for _, p := range glyphs {
		drawer.Dot = fixed.P(p.glyph.X-p.bounds.Min.X.Floor(), p.glyph.Y-p.bounds.Min.Y.Floor())
		drawer.DrawString(string(p.r))
		data.Glyphs[p.r] = p.glyph
	}
	for _, a := range glyphs {
		for _, b := range glyphs {
			if k := face.Kern(a.r, b.r).Round(); k != 0 {
				data.Kernings[KerningPair{First: a.r, Second: b.r}] = k
			}
		}
	}
	return data, nil
}

func nextPowerOfTwo(v int) int {
	n := 1
	for n < v {
		n <<= 1
	}
	return n
}
