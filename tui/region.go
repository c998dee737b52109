package tui

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/lixenwraith/gridtui/terminal"
)

// Region represents a rectangular area within a cell buffer
// All coordinates are relative to the region's origin
type Region struct {
	Cells  []terminal.Cell
	TotalW int // Total width of the underlying cell buffer
	X, Y   int // Absolute position in cell buffer
	W, H   int // Region dimensions
}

// NewRegion creates a region referencing a cell slice with bounds
func NewRegion(cells []terminal.Cell, totalW, x, y, w, h int) Region {
	return Region{
		Cells:  cells,
		TotalW: totalW,
		X:      x,
		Y:      y,
		W:      w,
		H:      h,
	}
}

// Sub returns a nested region with coordinates relative to parent, result is clipped to parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	return Region{
		Cells:  r.Cells,
		TotalW: r.TotalW,
		X:      r.X + x,
		Y:      r.Y + y,
		W:      w,
		H:      h,
	}
}

// Inset returns a region shrunk by n cells on all sides
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// SetCell sets a single cell with bounds checking. Zero color fields of
// the style inherit whatever an earlier paint left in the cell, so text
// drawn with a plain style keeps the row or base background beneath it
func (r Region) SetCell(x, y int, ch rune, style Style) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	absX := r.X + x
	absY := r.Y + y

	if uint(absX) >= uint(r.TotalW) {
		return
	}

	idx := absY*r.TotalW + absX
	if uint(idx) >= uint(len(r.Cells)) {
		return
	}
	c := &r.Cells[idx]
	c.Rune = ch
	if !style.Fg.Equal(terminal.RGB{}) {
		c.Fg = style.Fg
	}
	if !style.Bg.Equal(terminal.RGB{}) {
		c.Bg = style.Bg
	}
	c.Attrs |= style.Attr
}

// SetString renders a single line of text at position, clipped to region bounds.
// Wide runes occupy a continuation cell; a cluster that would straddle the
// right edge is dropped. Returns the number of columns written.
func (r Region) SetString(x, y int, s string, style Style) int {
	if y < 0 || y >= r.H {
		return 0
	}
	col := x
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		cw := runewidth.StringWidth(cluster)
		if cw == 0 {
			continue
		}
		if col+cw > r.W {
			break
		}
		if col >= 0 {
			runes := g.Runes()
			r.SetCell(col, y, runes[0], style)
			for i := 1; i < cw; i++ {
				r.SetCell(col+i, y, 0, style)
			}
		}
		col += cw
	}
	written := col - x
	if written < 0 {
		return 0
	}
	return written
}

// Fill resets the region to spaces over the given background, discarding
// whatever was painted before. This is the per-frame starting point
func (r Region) Fill(bg terminal.RGB) {
	for y := 0; y < r.H; y++ {
		absY := r.Y + y
		for x := 0; x < r.W; x++ {
			absX := r.X + x
			if uint(absX) >= uint(r.TotalW) {
				continue
			}
			idx := absY*r.TotalW + absX
			if uint(idx) >= uint(len(r.Cells)) {
				continue
			}
			r.Cells[idx] = terminal.Cell{Rune: ' ', Bg: bg}
		}
	}
}

// Clear resets the region to spaces with zero colors and attributes
func (r Region) Clear() {
	r.Fill(terminal.RGB{})
}

// ApplyStyle paints a style over the region without touching runes.
// Zero fields of the style inherit the existing cell value, attributes
// are combined. This is the "later paint overrides" composition step.
func (r Region) ApplyStyle(style Style) {
	for y := 0; y < r.H; y++ {
		absY := r.Y + y
		for x := 0; x < r.W; x++ {
			absX := r.X + x
			if uint(absX) >= uint(r.TotalW) {
				continue
			}
			idx := absY*r.TotalW + absX
			if uint(idx) >= uint(len(r.Cells)) {
				continue
			}
			c := &r.Cells[idx]
			if !style.Fg.Equal(terminal.RGB{}) {
				c.Fg = style.Fg
			}
			if !style.Bg.Equal(terminal.RGB{}) {
				c.Bg = style.Bg
			}
			c.Attrs |= style.Attr
		}
	}
}

// Bounds returns absolute position and dimensions
func (r Region) Bounds() (x, y, w, h int) {
	return r.X, r.Y, r.W, r.H
}
