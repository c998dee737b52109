package tui

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DisplayWidth returns the number of terminal columns the string occupies
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate truncates string with … suffix if it exceeds maxWidth columns
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if DisplayWidth(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return "…"
	}

	out := make([]rune, 0, maxWidth)
	width := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cw := runewidth.StringWidth(g.Str())
		if width+cw > maxWidth-1 {
			break
		}
		out = append(out, g.Runes()...)
		width += cw
	}
	return string(out) + "…"
}

// PadRight pads string with spaces to the given display width
func PadRight(s string, width int) string {
	pad := width - DisplayWidth(s)
	for i := 0; i < pad; i++ {
		s += " "
	}
	return s
}

// PadLeft left-pads string with spaces to the given display width
func PadLeft(s string, width int) string {
	pad := width - DisplayWidth(s)
	out := ""
	for i := 0; i < pad; i++ {
		out += " "
	}
	return out + s
}
