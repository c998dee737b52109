package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// screenImpl implements Terminal on top of a tcell.Screen
type screenImpl struct {
	mu          sync.Mutex
	screen      tcell.Screen
	initialized bool
	finalized   bool
}

// New creates a Terminal backed by the default tcell screen
func New() Terminal {
	return &screenImpl{}
}

// Init enters the alternate screen and hides the cursor
func (t *screenImpl) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "terminal: create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "terminal: init screen")
	}
	screen.HideCursor()
	screen.Clear()

	t.screen = screen
	t.initialized = true
	t.finalized = false
	return nil
}

// Fini restores the terminal. Safe to call multiple times
func (t *screenImpl) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.screen.Fini()
	t.finalized = true
	t.initialized = false
}

// Size returns current terminal dimensions
func (t *screenImpl) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.screen == nil {
		return 0, 0
	}
	return t.screen.Size()
}

// Flush writes the cell buffer to the terminal
func (t *screenImpl) Flush(cells []Cell, width, height int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.screen == nil || width <= 0 {
		return
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x
			if idx >= len(cells) {
				return
			}
			c := cells[idx]
			if c.Rune == 0 {
				// Continuation cell of a wide rune, tcell manages these itself
				continue
			}
			t.screen.SetContent(x, y, c.Rune, nil, styleFor(c))
		}
	}
	t.screen.Show()
}

// Sync forces a full redraw
func (t *screenImpl) Sync() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.screen != nil {
		t.screen.Sync()
	}
}

// SetCursorVisible shows/hides the cursor
func (t *screenImpl) SetCursorVisible(visible bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.screen == nil {
		return
	}
	if !visible {
		t.screen.HideCursor()
	}
}

// PollEvent blocks until the next input event
func (t *screenImpl) PollEvent() Event {
	t.mu.Lock()
	screen := t.screen
	t.mu.Unlock()

	if screen == nil {
		return Event{Type: EventClosed}
	}

	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			return keyEvent(ev)
		case *tcell.EventResize:
			w, h := ev.Size()
			return Event{Type: EventResize, Width: w, Height: h}
		case *tcell.EventError:
			return Event{Type: EventError, Err: ev}
		case nil:
			return Event{Type: EventClosed}
		}
	}
}

// styleFor converts a Cell's colors and attributes to a tcell style
func styleFor(c Cell) tcell.Style {
	style := tcell.StyleDefault
	if !c.Fg.Equal(RGB{}) {
		style = style.Foreground(tcell.NewRGBColor(int32(c.Fg.R), int32(c.Fg.G), int32(c.Fg.B)))
	}
	if !c.Bg.Equal(RGB{}) {
		style = style.Background(tcell.NewRGBColor(int32(c.Bg.R), int32(c.Bg.G), int32(c.Bg.B)))
	}
	if c.Attrs&AttrBold != 0 {
		style = style.Bold(true)
	}
	if c.Attrs&AttrDim != 0 {
		style = style.Dim(true)
	}
	if c.Attrs&AttrItalic != 0 {
		style = style.Italic(true)
	}
	if c.Attrs&AttrUnderline != 0 {
		style = style.Underline(true)
	}
	if c.Attrs&AttrBlink != 0 {
		style = style.Blink(true)
	}
	if c.Attrs&AttrReverse != 0 {
		style = style.Reverse(true)
	}
	return style
}

// keyEvent translates a tcell key event
func keyEvent(ev *tcell.EventKey) Event {
	switch ev.Key() {
	case tcell.KeyRune:
		return Event{Type: EventKey, Key: KeyRune, Rune: ev.Rune()}
	case tcell.KeyEnter:
		return Event{Type: EventKey, Key: KeyEnter}
	case tcell.KeyEscape:
		return Event{Type: EventKey, Key: KeyEscape}
	case tcell.KeyTab:
		return Event{Type: EventKey, Key: KeyTab}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Event{Type: EventKey, Key: KeyBackspace}
	case tcell.KeyUp:
		return Event{Type: EventKey, Key: KeyUp}
	case tcell.KeyDown:
		return Event{Type: EventKey, Key: KeyDown}
	case tcell.KeyLeft:
		return Event{Type: EventKey, Key: KeyLeft}
	case tcell.KeyRight:
		return Event{Type: EventKey, Key: KeyRight}
	case tcell.KeyHome:
		return Event{Type: EventKey, Key: KeyHome}
	case tcell.KeyEnd:
		return Event{Type: EventKey, Key: KeyEnd}
	case tcell.KeyPgUp:
		return Event{Type: EventKey, Key: KeyPgUp}
	case tcell.KeyPgDn:
		return Event{Type: EventKey, Key: KeyPgDn}
	case tcell.KeyCtrlC:
		return Event{Type: EventKey, Key: KeyCtrlC}
	default:
		return Event{Type: EventKey, Key: KeyNone}
	}
}
