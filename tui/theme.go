package tui

import "github.com/lixenwraith/gridtui/terminal"

// Theme defines semantic colors for widget rendering
type Theme struct {
	Bg       terminal.RGB
	Fg       terminal.RGB
	Border   terminal.RGB
	HeaderBg terminal.RGB
	HeaderFg terminal.RGB
	Accent   terminal.RGB
	DimFg    terminal.RGB
	SelectBg terminal.RGB
	SelectFg terminal.RGB
}

// DefaultTheme provides reasonable defaults
var DefaultTheme = Theme{
	Bg:       terminal.RGB{R: 20, G: 20, B: 30},
	Fg:       terminal.RGB{R: 200, G: 200, B: 200},
	Border:   terminal.RGB{R: 60, G: 80, B: 100},
	HeaderBg: terminal.RGB{R: 40, G: 60, B: 90},
	HeaderFg: terminal.RGB{R: 255, G: 255, B: 255},
	Accent:   terminal.RGB{R: 100, G: 200, B: 220},
	DimFg:    terminal.RGB{R: 100, G: 100, B: 100},
	SelectBg: terminal.RGB{R: 50, G: 70, B: 110},
	SelectFg: terminal.RGB{R: 255, G: 255, B: 255},
}

// HeaderStyle returns the table header style for this theme
func (t Theme) HeaderStyle() Style {
	return Style{Fg: t.HeaderFg, Bg: t.HeaderBg, Attr: terminal.AttrBold}
}

// RowStyle returns the default row style for this theme
func (t Theme) RowStyle() Style {
	return Style{Fg: t.Fg}
}

// AltRowStyle returns the zebra-stripe row style, a slightly lightened
// variant of the theme background
func (t Theme) AltRowStyle() Style {
	return Style{Fg: t.Fg, Bg: Lighten(t.Bg, 0.06)}
}

// HighlightStyle returns the selected-row style for this theme
func (t Theme) HighlightStyle() Style {
	return Style{Fg: t.SelectFg, Bg: t.SelectBg, Attr: terminal.AttrBold}
}
