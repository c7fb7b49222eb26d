// Package text lays out strings into textured glyph quads.
//
// Coordinates are y-down screen units: the pen starts at the top-left of the
// first line and every newline moves it down by the font line height. This
// matches the projection of components.Camera2D.
package text

import (
	"fmt"

	"github.com/spaghettifunk/kestrel/engine/assets/loaders"
	"github.com/spaghettifunk/kestrel/engine/core"
	"github.com/spaghettifunk/kestrel/engine/mesh"
)

const (
	fallbackRune = '?'
	tabWidth     = 4
)

type Font struct {
	Name string
	data *loaders.FontData
}

func NewFont(name string, data *loaders.FontData) (*Font, error) {
	if data == nil || len(data.Glyphs) == 0 {
		return nil, fmt.Errorf("font %s has no glyphs: %w", name, core.ErrOutOfRange)
	}
	if data.AtlasWidth <= 0 || data.AtlasHeight <= 0 {
		return nil, fmt.Errorf("font %s atlas is %dx%d: %w", name, data.AtlasWidth, data.AtlasHeight, core.ErrOutOfRange)
	}
	return &Font{Name: name, data: data}, nil
}

func (f *Font) Data() *loaders.FontData {
	return f.data
}

func (f *Font) LineHeight() int {
	return f.data.LineHeight
}

func (f *Font) glyph(r rune) (loaders.FontGlyph, bool) {
	if g, ok := f.data.Glyphs[r]; ok {
		return g, true
	}
	g, ok := f.data.Glyphs[fallbackRune]
	return g, ok
}

func (f *Font) tabAdvance() int {
	if g, ok := f.data.Glyphs[' ']; ok {
		return g.XAdvance * tabWidth
	}
	return f.data.Size * tabWidth / 2
}

// Layout builds one quad per visible glyph of s, starting at the origin and
// scaled by scale. Runes missing from the font are drawn with '?' when the
// font has it and skipped otherwise.
func (f *Font) Layout(s string, scale float32) *mesh.Mesh {
	out := &mesh.Mesh{Name: "text"}
	f.walk(s, scale, func(g loaders.FontGlyph, penX, penY float32) {
		f.appendQuad(out, g, penX, penY, scale)
	})
	return out
}

// Measure returns the width of the widest line and the height of all lines.
func (f *Font) Measure(s string, scale float32) (float32, float32) {
	if s == "" {
		return 0, 0
	}
	width, lines := f.walk(s, scale, nil)
	return width, float32(lines) * float32(f.data.LineHeight) * scale
}

func (f *Font) walk(s string, scale float32, emit func(g loaders.FontGlyph, penX, penY float32)) (float32, int) {
	var penX, penY, widest float32
	lines := 1
	var prev rune = -1
	for _, r := range s {
		switch r {
		case '\r':
			continue
		case '\n':
			widest = max(widest, penX)
			penX = 0
			penY += float32(f.data.LineHeight) * scale
			lines++
			prev = -1
			continue
		case '\t':
			penX += float32(f.tabAdvance()) * scale
			prev = -1
			continue
		}

		g, ok := f.glyph(r)
		if !ok {
			prev = -1
			continue
		}
		if prev >= 0 {
			penX += float32(f.data.Kerning(prev, g.Codepoint)) * scale
		}
		if emit != nil && g.Width > 0 && g.Height > 0 {
			emit(g, penX, penY)
		}
		penX += float32(g.XAdvance) * scale
		prev = g.Codepoint
	}
	return max(widest, penX), lines
}

func (f *Font) appendQuad(m *mesh.Mesh, g loaders.FontGlyph, penX, penY, scale float32) {
	x0 := penX + float32(g.XOffset)*scale
	y0 := penY + float32(g.YOffset)*scale
	x1 := x0 + float32(g.Width)*scale
	y1 := y0 + float32(g.Height)*scale

	// atlas textures are uploaded bottom row first
	aw, ah := float32(f.data.AtlasWidth), float32(f.data.AtlasHeight)
	u0 := float32(g.X) / aw
	u1 := float32(g.X+g.Width) / aw
	vTop := 1 - float32(g.Y)/ah
	vBottom := 1 - float32(g.Y+g.Height)/ah

	m.Vertices = append(m.Vertices,
		x0, y0, 0, u0, vTop,
		x0, y1, 0, u0, vBottom,
		x1, y1, 0, u1, vBottom,
		x0, y0, 0, u0, vTop,
		x1, y1, 0, u1, vBottom,
		x1, y0, 0, u1, vTop,
	)
}
