package loaders

import (
	"path/filepath"

	"github.com/fzipp/bmfont"
)

type FontGlyph struct {
	Codepoint rune
	X         int
	Y         int
	Width     int
	Height    int
	XOffset   int
	YOffset   int
	XAdvance  int
	Page      int
}

type KerningPair struct {
	First  rune
	Second rune
}

// FontPage references one atlas image of a font. Image is set when the atlas
// was rasterized in memory, File when it lives on disk next to the font.
type FontPage struct {
	ID    int
	File  string
	Image interface{}
}

// FontData describes a glyph atlas in pixel units. YOffset is measured from
// the top of the line to the top of the glyph.
type FontData struct {
	Face        string
	Size        int
	LineHeight  int
	Baseline    int
	AtlasWidth  int
	AtlasHeight int
	Pages       []FontPage
	Glyphs      map[rune]FontGlyph
	Kernings    map[KerningPair]int
}

// Kerning returns the advance adjustment between two runes.
func (fd *FontData) Kerning(first, second rune) int {
	return fd.Kernings[KerningPair{First: first, Second: second}]
}

// BitmapFontLoader reads AngelCode BMFont descriptors (.fnt).
type BitmapFontLoader struct{}

func (fl *BitmapFontLoader) Load(path string) (*Resource, error) {
	font, err := bmfont.Load(path)
	if err != nil {
		return nil, err
	}
	desc := font.Descriptor
	dir := filepath.Dir(path)

	data := &FontData{
		Face:        desc.Info.Face,
		Size:        int(desc.Info.Size),
		LineHeight:  int(desc.Common.LineHeight),
		Baseline:    int(desc.Common.Base),
		AtlasWidth:  int(desc.Common.ScaleW),
		AtlasHeight: int(desc.Common.ScaleH),
		Glyphs:      make(map[rune]FontGlyph, len(desc.Chars)),
		Kernings:    make(map[KerningPair]int, len(desc.Kerning)),
	}
	for _, p := range desc.Pages {
		data.Pages = append(data.Pages, FontPage{ID: int(p.ID), File: filepath.Join(dir, p.File)})
	}
	for _, g := range desc.Chars {
		data.Glyphs[rune(g.ID)] = FontGlyph{
			Codepoint: rune(g.ID),
			X:         int(g.X),
			Y:         int(g.Y),
			Width:     int(g.Width),
			Height:    int(g.Height),
			XOffset:   int(g.XOffset),
			YOffset:   int(g.YOffset),
			XAdvance:  int(g.XAdvance),
			Page:      int(g.Page),
		}
	}
	for pair, k := range desc.Kerning {
		data.Kernings[KerningPair{First: rune(pair.First), Second: rune(pair.Second)}] = int(k.Amount)
	}

	return &Resource{
		Name:     filepath.Base(path),
		FullPath: path,
		Type:     ResourceTypeBitmapFont,
		DataSize: uint64(len(data.Glyphs)),
		Data:     data,
	}, nil
}

func (fl *BitmapFontLoader) Unload(resource *Resource) error {
	resource.Data = nil
	resource.DataSize = 0
	return nil
}
