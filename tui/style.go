package tui

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/gridtui/terminal"
)

// Style bundles foreground, background, and attributes for text rendering
// Zero fields are transparent: they inherit whatever is already painted
type Style struct {
	Fg   terminal.RGB
	Bg   terminal.RGB
	Attr terminal.Attr
}

// IsZero returns true if style has no colors or attributes set
func (s Style) IsZero() bool {
	return s.Fg == (terminal.RGB{}) && s.Bg == (terminal.RGB{}) && s.Attr == terminal.AttrNone
}

// Patch returns s overlaid with the non-zero fields of other
// Attributes combine rather than replace
func (s Style) Patch(other Style) Style {
	if !other.Fg.Equal(terminal.RGB{}) {
		s.Fg = other.Fg
	}
	if !other.Bg.Equal(terminal.RGB{}) {
		s.Bg = other.Bg
	}
	s.Attr |= other.Attr
	return s
}

// Lighten returns the color blended toward white by amount (0.0-1.0)
func Lighten(c terminal.RGB, amount float64) terminal.RGB {
	return blend(c, colorful.Color{R: 1, G: 1, B: 1}, amount)
}

// Darken returns the color blended toward black by amount (0.0-1.0)
func Darken(c terminal.RGB, amount float64) terminal.RGB {
	return blend(c, colorful.Color{}, amount)
}

func blend(c terminal.RGB, target colorful.Color, amount float64) terminal.RGB {
	if amount < 0 {
		amount = 0
	}
	if amount > 1 {
		amount = 1
	}
	from := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	out := from.BlendLab(target, amount).Clamped()
	return terminal.RGB{
		R: uint8(out.R*255 + 0.5),
		G: uint8(out.G*255 + 0.5),
		B: uint8(out.B*255 + 0.5),
	}
}
