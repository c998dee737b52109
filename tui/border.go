package tui

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
	LineNone                    // spaces (invisible border with padding)
)

// boxChars contains box drawing character sets indexed by LineType
var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
	LineNone:    {' ', ' ', ' ', ' ', ' ', ' '},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// Border is a decoration wrapper: Draw paints a one-cell frame with an
// optional title, Inner reports the content area the frame leaves free.
// Widgets treat it as an opaque pre-step around their own layout.
type Border struct {
	Line  LineType
	Title string
	Style Style
}

// Inner returns the content region inside the frame
func (b Border) Inner(r Region) Region {
	return r.Inset(1)
}

// Draw paints the frame around the region edge
func (b Border) Draw(r Region) {
	if r.W < 2 || r.H < 2 {
		return
	}
	line := b.Line
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	chars := boxChars[line]

	r.SetCell(0, 0, chars[boxTL], b.Style)
	r.SetCell(r.W-1, 0, chars[boxTR], b.Style)
	r.SetCell(0, r.H-1, chars[boxBL], b.Style)
	r.SetCell(r.W-1, r.H-1, chars[boxBR], b.Style)

	for x := 1; x < r.W-1; x++ {
		r.SetCell(x, 0, chars[boxH], b.Style)
		r.SetCell(x, r.H-1, chars[boxH], b.Style)
	}
	for y := 1; y < r.H-1; y++ {
		r.SetCell(0, y, chars[boxV], b.Style)
		r.SetCell(r.W-1, y, chars[boxV], b.Style)
	}

	if b.Title != "" && r.W > 4 {
		title := b.Title
		if DisplayWidth(title) > r.W-4 {
			title = Truncate(title, r.W-4)
		}
		titleX := (r.W - DisplayWidth(title) - 2) / 2
		r.SetString(titleX, 0, " "+title+" ", b.Style)
	}
}
