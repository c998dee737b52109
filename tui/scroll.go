package tui

import "strconv"

// ClampCursor ensures a cursor index is within [0, total)
func ClampCursor(cursor, total int) int {
	if total <= 0 {
		return 0
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= total {
		return total - 1
	}
	return cursor
}

// ClampScroll ensures a scroll offset is within valid range
func ClampScroll(scroll, visible, total int) int {
	if total <= visible {
		return 0
	}
	maxScroll := total - visible
	if scroll < 0 {
		return 0
	}
	if scroll > maxScroll {
		return maxScroll
	}
	return scroll
}

// ScrollPercent returns scroll position as 0-100 percentage
func ScrollPercent(scroll, visible, total int) int {
	if total <= visible {
		return 0
	}
	maxScroll := total - visible
	if maxScroll <= 0 {
		return 0
	}
	pct := (scroll * 100) / maxScroll
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	return pct
}

// PageDelta returns recommended page scroll amount
func PageDelta(visible int) int {
	delta := visible / 2
	if delta < 1 {
		delta = 1
	}
	return delta
}

// ScrollBar draws a vertical scrollbar track with thumb in column x.
// The thumb is a lightened variant of the track style's foreground.
func ScrollBar(r Region, x int, offset, visible, total int, style Style) {
	if x < 0 || x >= r.W || r.H < 1 {
		return
	}

	trackH := r.H
	if total <= visible || trackH < 3 {
		// No scrolling needed or track too small
		for y := 0; y < trackH; y++ {
			r.SetCell(x, y, '│', style)
		}
		return
	}

	thumbH := (visible * trackH) / total
	if thumbH < 1 {
		thumbH = 1
	}
	if thumbH > trackH {
		thumbH = trackH
	}

	maxScroll := total - visible
	thumbY := 0
	if maxScroll > 0 {
		thumbY = (offset * (trackH - thumbH)) / maxScroll
	}
	if thumbY < 0 {
		thumbY = 0
	}
	if thumbY+thumbH > trackH {
		thumbY = trackH - thumbH
	}

	thumbStyle := Style{Fg: Lighten(style.Fg, 0.35), Bg: style.Bg}
	for y := 0; y < trackH; y++ {
		if y >= thumbY && y < thumbY+thumbH {
			r.SetCell(x, y, '█', thumbStyle)
		} else {
			r.SetCell(x, y, '░', style)
		}
	}
}

// ScrollIndicator draws compact position text on row y, right-aligned.
// Renders one of: "Top", "Bot", or "XX%"
func ScrollIndicator(r Region, y int, offset, visible, total int, style Style) {
	if y < 0 || y >= r.H {
		return
	}

	var text string
	if total <= visible || offset <= 0 {
		text = "Top"
	} else if offset+visible >= total {
		text = "Bot"
	} else {
		pct := ScrollPercent(offset, visible, total)
		if pct >= 100 {
			pct = 99
		}
		text = PadLeft(strconv.Itoa(pct)+"%", 3)
	}

	r.SetString(r.W-DisplayWidth(text), y, text, style)
}
