package text

import (
	"github.com/spaghettifunk/kestrel/engine/math"
	"github.com/spaghettifunk/kestrel/engine/renderer"
)

// Label is a piece of text that can be handed to the rendering manager
// directly. Changing the text rebuilds its geometry.
type Label struct {
	Transform *math.Transform
	Scale     float32

	font       *Font
	shader     *renderer.Shader
	atlas      *renderer.Texture
	text       string
	active     bool
	renderable *renderer.Renderable
}

func NewLabel(backend renderer.RendererBackend, font *Font, shader *renderer.Shader, atlas *renderer.Texture, s string, scale float32) (*Label, error) {
	l := &Label{
		Transform: math.NewTransform(),
		Scale:     scale,
		font:      font,
		shader:    shader,
		atlas:     atlas,
		active:    true,
	}
	if err := l.rebuild(backend, s); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Label) Text() string {
	return l.text
}

// SetText rebuilds the geometry when s differs from the current text.
func (l *Label) SetText(backend renderer.RendererBackend, s string) error {
	if s == l.text && l.renderable != nil {
		return nil
	}
	return l.rebuild(backend, s)
}

func (l *Label) rebuild(backend renderer.RendererBackend, s string) error {
	m := l.font.Layout(s, l.Scale)
	var next *renderer.Renderable
	if len(m.Vertices) > 0 {
		r, err := renderer.NewRenderable(backend, m.Vertices, l.shader)
		if err != nil {
			return err
		}
		if err := r.SetTexture(0, l.atlas); err != nil {
			r.Destroy(backend)
			return err
		}
		next = r
	}
	if l.renderable != nil {
		l.renderable.Destroy(backend)
	}
	l.renderable = next
	l.text = s
	return nil
}

func (l *Label) Destroy(backend renderer.RendererBackend) {
	if l.renderable != nil {
		l.renderable.Destroy(backend)
		l.renderable = nil
	}
}

func (l *Label) SetActive(active bool) {
	l.active = active
}

func (l *Label) IsActive() bool {
	return l.active
}

func (l *Label) ModelMatrix() math.Mat4 {
	return l.Transform.GetWorld()
}

// RenderData is nil while the text has no visible glyphs.
func (l *Label) RenderData() *renderer.Renderable {
	return l.renderable
}
