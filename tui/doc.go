// Package tui provides immediate-mode widget rendering over a terminal cell buffer.
//
// Core abstraction is Region, representing a rectangular area within a cell buffer.
// All drawing operations are relative to region bounds with automatic clipping.
//
// Design principles:
//   - Immediate mode: no retained widget state, app owns render loop
//   - Explicit state: scroll/selection state is a value the host passes each frame
//   - Composable: regions nest via Sub(), Split partitions extents under constraints
//   - Total: size arithmetic saturates, rendering never panics on degenerate areas
//
// Usage pattern:
//
//	cells := make([]terminal.Cell, w*h)
//	root := tui.NewRegion(cells, w, 0, 0, w, h)
//	root.Fill(theme.Bg)
//
//	table := tui.NewTable(rows, []tui.Constraint{tui.Fixed(10), tui.Percent(50)}).
//		Header(tui.NewRow("NAME", "VALUE")).
//		HighlightSymbol("> ")
//	table.Render(root, state) // state persists across frames
//
//	term.Flush(cells, w, h)
package tui
