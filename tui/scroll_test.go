package tui

import (
	"testing"

	"github.com/lixenwraith/gridtui/terminal"
)

func TestClampCursor(t *testing.T) {
	tests := []struct {
		cursor, total, expected int
	}{
		{5, 10, 5},
		{-1, 10, 0},
		{10, 10, 9},
		{0, 0, 0},
		{3, 0, 0},
	}
	for _, tt := range tests {
		if got := ClampCursor(tt.cursor, tt.total); got != tt.expected {
			t.Errorf("ClampCursor(%d, %d): expected %d, got %d", tt.cursor, tt.total, tt.expected, got)
		}
	}
}

func TestClampScroll(t *testing.T) {
	tests := []struct {
		scroll, visible, total, expected int
	}{
		{7, 5, 20, 7},
		{-2, 5, 20, 0},
		{99, 5, 20, 15},
		{5, 10, 8, 0}, // everything fits, no scrolling
	}
	for _, tt := range tests {
		if got := ClampScroll(tt.scroll, tt.visible, tt.total); got != tt.expected {
			t.Errorf("ClampScroll(%d, %d, %d): expected %d, got %d",
				tt.scroll, tt.visible, tt.total, tt.expected, got)
		}
	}
}

func TestScrollPercent(t *testing.T) {
	tests := []struct {
		scroll, visible, total, expected int
	}{
		{0, 5, 20, 0},
		{15, 5, 20, 100},
		{7, 5, 19, 50},
		{3, 10, 8, 0},
	}
	for _, tt := range tests {
		if got := ScrollPercent(tt.scroll, tt.visible, tt.total); got != tt.expected {
			t.Errorf("ScrollPercent(%d, %d, %d): expected %d, got %d",
				tt.scroll, tt.visible, tt.total, tt.expected, got)
		}
	}
}

func TestPageDelta(t *testing.T) {
	if got := PageDelta(10); got != 5 {
		t.Errorf("PageDelta(10): got %d", got)
	}
	if got := PageDelta(1); got != 1 {
		t.Errorf("PageDelta(1): got %d", got)
	}
	if got := PageDelta(0); got != 1 {
		t.Errorf("PageDelta(0): got %d", got)
	}
}

func scrollColumn(cells []terminal.Cell, w, x, h int) string {
	out := make([]rune, h)
	for y := 0; y < h; y++ {
		out[y] = cells[y*w+x].Rune
	}
	return string(out)
}

func TestScrollBar(t *testing.T) {
	style := Style{Fg: terminal.RGB{R: 128, G: 128, B: 128}}

	t.Run("Thumb at top", func(t *testing.T) {
		cells, root := newBuffer(3, 6)
		ScrollBar(root, 1, 0, 6, 12, style)
		if got := scrollColumn(cells, 3, 1, 6); got != "███░░░" {
			t.Errorf("expected thumb in the top half, got %q", got)
		}
	})

	t.Run("Thumb at bottom", func(t *testing.T) {
		cells, root := newBuffer(3, 6)
		ScrollBar(root, 1, 6, 6, 12, style)
		if got := scrollColumn(cells, 3, 1, 6); got != "░░░███" {
			t.Errorf("expected thumb in the bottom half, got %q", got)
		}
	})

	t.Run("No scrolling draws a plain track", func(t *testing.T) {
		cells, root := newBuffer(3, 6)
		ScrollBar(root, 1, 0, 6, 4, style)
		if got := scrollColumn(cells, 3, 1, 6); got != "││││││" {
			t.Errorf("expected plain track, got %q", got)
		}
	})

	t.Run("Column outside region is ignored", func(t *testing.T) {
		cells, root := newBuffer(3, 6)
		ScrollBar(root, 5, 0, 6, 12, style)
		for i, c := range cells {
			if c.Rune != ' ' {
				t.Fatalf("cell %d written: %q", i, c.Rune)
			}
		}
	})
}

func TestScrollIndicator(t *testing.T) {
	tests := []struct {
		name                   string
		offset, visible, total int
		expected               string
	}{
		{"At top", 0, 5, 20, "     Top"},
		{"At bottom", 15, 5, 20, "     Bot"},
		{"Midway", 7, 5, 19, "     50%"},
		{"Everything visible", 0, 10, 8, "     Top"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells, root := newBuffer(8, 1)
			ScrollIndicator(root, 0, tt.offset, tt.visible, tt.total, Style{})
			assertLines(t, cells, 8, 1, []string{tt.expected})
		})
	}
}
