// Package terminal provides the cell model and screen backend for gridtui.
//
// The unit of drawing is Cell: one styled character position. Widgets write
// into a caller-owned []Cell buffer (row-major, cells[y*width+x]) and the
// Terminal flushes that buffer to the screen once per frame.
package terminal

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrBlink     Attr = 1 << 4
	AttrReverse   Attr = 1 << 5
)

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Equal returns true if colors match
func (c RGB) Equal(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// Cell represents a single terminal cell
// A zero Rune marks the continuation cell of a wide character
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey EventType = iota
	EventResize
	EventError
	EventClosed
)

// Key identifies a non-printable key
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDn
	KeyCtrlC
)

// Event represents a terminal input event
type Event struct {
	Type   EventType
	Key    Key
	Rune   rune
	Width  int   // For EventResize
	Height int   // For EventResize
	Err    error // For EventError
}

// Terminal provides screen access for the per-frame render loop
type Terminal interface {
	// Init enters the alternate screen buffer and hides the cursor
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// Flush writes the cell buffer to the terminal
	// Cells are row-major: cells[y*width + x]
	Flush(cells []Cell, width, height int)

	// Sync forces a full redraw on the next flush
	Sync()

	// SetCursorVisible shows/hides the cursor
	SetCursorVisible(visible bool)

	// PollEvent blocks until the next input event
	PollEvent() Event
}
