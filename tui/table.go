package tui

// Align specifies text alignment within a cell's bounding box
type Align uint8

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// Cell is one renderable table cell. It paints its own single line of
// text into the bounding box the table hands it; the table never lays
// out text itself.
type Cell struct {
	Text  string
	Style Style
	Align Align
}

// render paints the cell into its bounding box, clipped on all sides
func (c Cell) render(r Region) {
	if r.W < 1 || r.H < 1 {
		return
	}
	if !c.Style.IsZero() {
		r.ApplyStyle(c.Style)
	}
	w := DisplayWidth(c.Text)
	x := 0
	switch c.Align {
	case AlignRight:
		x = r.W - w
	case AlignCenter:
		x = (r.W - w) / 2
	}
	if x < 0 {
		x = 0
	}
	r.SetString(x, 0, c.Text, c.Style)
}

// Row is an ordered sequence of cells with a height and vertical margins
type Row struct {
	Cells        []Cell
	Height       int // Rendered height in lines, minimum 1
	TopMargin    int
	BottomMargin int
	Style        Style
}

// NewRow builds a single-line row from plain strings
func NewRow(texts ...string) Row {
	cells := make([]Cell, len(texts))
	for i, t := range texts {
		cells[i] = Cell{Text: t}
	}
	return Row{Cells: cells, Height: 1}
}

// WithStyle returns a copy of the row with the given style
func (r Row) WithStyle(style Style) Row {
	r.Style = style
	return r
}

// WithMargins returns a copy of the row with the given vertical margins
func (r Row) WithMargins(top, bottom int) Row {
	r.TopMargin = top
	r.BottomMargin = bottom
	return r
}

// contentHeight returns the row height with the minimum of 1 applied
func (r Row) contentHeight() int {
	if r.Height < 1 {
		return 1
	}
	return r.Height
}

// heightWithMargin returns the full vertical extent the row occupies
func (r Row) heightWithMargin() int {
	return r.contentHeight() + r.TopMargin + r.BottomMargin
}

// HighlightSpacing decides when the selection gutter is reserved
type HighlightSpacing uint8

const (
	// HighlightWhenSelected reserves the gutter only while a row is
	// selected, so columns shift when selection appears
	HighlightWhenSelected HighlightSpacing = iota
	// HighlightAlways reserves the gutter regardless of selection state,
	// keeping column positions stable
	HighlightAlways
	// HighlightNever renders no gutter and no symbol
	HighlightNever
)

func (h HighlightSpacing) shouldReserve(hasSelection bool) bool {
	switch h {
	case HighlightAlways:
		return true
	case HighlightWhenSelected:
		return hasSelection
	default:
		return false
	}
}

// TableState is the cross-frame scroll and selection state of a table.
// The host UI loop owns it: the renderer only writes Offset back so the
// next frame starts from the same window instead of row zero.
type TableState struct {
	Offset   int // Row index of the first visible row
	Selected int // Selected row index, -1 when none
}

// NewTableState creates state with no selection
func NewTableState() *TableState {
	return &TableState{Selected: -1}
}

// HasSelection returns true if a row is selected
func (s *TableState) HasSelection() bool {
	return s.Selected >= 0
}

// Select sets the selected row, negative clears the selection
func (s *TableState) Select(i int) {
	if i < 0 {
		i = -1
	}
	s.Selected = i
}

// ClearSelection removes the selection
func (s *TableState) ClearSelection() {
	s.Selected = -1
}

// Table is an immutable per-render snapshot of a table's configuration.
// Setters return a modified copy, the original is never mutated.
type Table struct {
	rows             []Row
	header           *Row
	footer           *Row
	widths           []Constraint
	columnSpacing    int
	border           *Border
	style            Style
	highlightStyle   Style
	highlightSymbol  string
	highlightSpacing HighlightSpacing
	distribution     Distribution
}

// NewTable creates a table with the given rows and column constraints.
// An empty constraint list derives equal column widths at render time.
func NewTable(rows []Row, widths []Constraint) Table {
	return Table{
		rows:          rows,
		widths:        widths,
		columnSpacing: 1,
	}
}

// Rows returns a copy of the table with the given rows
func (t Table) Rows(rows []Row) Table {
	t.rows = rows
	return t
}

// Header returns a copy of the table with a header row
func (t Table) Header(header Row) Table {
	t.header = &header
	return t
}

// Footer returns a copy of the table with a footer row
func (t Table) Footer(footer Row) Table {
	t.footer = &footer
	return t
}

// Widths returns a copy of the table with the given column constraints
func (t Table) Widths(widths []Constraint) Table {
	t.widths = widths
	return t
}

// ColumnSpacing returns a copy of the table with the given inter-column gap
func (t Table) ColumnSpacing(spacing int) Table {
	t.columnSpacing = spacing
	return t
}

// Border returns a copy of the table wrapped in a border decoration
func (t Table) Border(border Border) Table {
	t.border = &border
	return t
}

// Style returns a copy of the table with the given base style
func (t Table) Style(style Style) Table {
	t.style = style
	return t
}

// HighlightStyle returns a copy of the table with the selected-row style.
// It is painted last, over per-row and per-cell styling.
func (t Table) HighlightStyle(style Style) Table {
	t.highlightStyle = style
	return t
}

// HighlightSymbol returns a copy of the table with the symbol drawn in
// front of the selected row
func (t Table) HighlightSymbol(symbol string) Table {
	t.highlightSymbol = symbol
	return t
}

// HighlightSpacingPolicy returns a copy of the table with the gutter policy
func (t Table) HighlightSpacingPolicy(policy HighlightSpacing) Table {
	t.highlightSpacing = policy
	return t
}

// Distribution returns a copy of the table with the slack policy used
// for column layout
func (t Table) Distribution(policy Distribution) Table {
	t.distribution = policy
	return t
}

// RowCount returns the number of body rows
func (t Table) RowCount() int {
	return len(t.rows)
}

// Render draws the table into the region and persists the computed
// window offset back into state. A nil state renders without selection
// or scroll persistence.
func (t Table) Render(area Region, state *TableState) {
	if state == nil {
		state = NewTableState()
	}
	if !t.style.IsZero() {
		area.ApplyStyle(t.style)
	}

	table := area
	if t.border != nil {
		t.border.Draw(area)
		table = t.border.Inner(area)
	}
	if table.W < 1 || table.H < 1 {
		return
	}

	gutter := 0
	if t.highlightSpacing.shouldReserve(state.HasSelection()) {
		gutter = DisplayWidth(t.highlightSymbol)
	}
	columns := t.ColumnWidths(table.W, gutter)

	headerArea, rowsArea, footerArea := t.bands(table)
	t.renderEdgeRow(headerArea, t.header, columns)
	t.renderRows(rowsArea, state, gutter, columns)
	t.renderEdgeRow(footerArea, t.footer, columns)
}

// bands splits the table area vertically into header, body and footer
func (t Table) bands(area Region) (header, body, footer Region) {
	var htm, hh, hbm, ftm, fh, fbm int
	if t.header != nil {
		htm, hh, hbm = t.header.TopMargin, t.header.contentHeight(), t.header.BottomMargin
	}
	if t.footer != nil {
		ftm, fh, fbm = t.footer.TopMargin, t.footer.contentHeight(), t.footer.BottomMargin
	}
	segs := Split(area.H, []Constraint{
		Fixed(htm),
		Fixed(hh),
		Fixed(hbm),
		Fill(),
		Fixed(ftm),
		Fixed(fh),
		Fixed(fbm),
	}, Exact)
	header = area.Sub(0, segs[1].Offset, area.W, segs[1].Length)
	body = area.Sub(0, segs[3].Offset, area.W, segs[3].Length)
	footer = area.Sub(0, segs[5].Offset, area.W, segs[5].Length)
	return header, body, footer
}

// renderEdgeRow draws the header or footer band
func (t Table) renderEdgeRow(area Region, row *Row, columns []Segment) {
	if row == nil || area.W < 1 || area.H < 1 {
		return
	}
	if !row.Style.IsZero() {
		area.ApplyStyle(row.Style)
	}
	for i, col := range columns {
		if i >= len(row.Cells) {
			break
		}
		row.Cells[i].render(area.Sub(col.Offset, 0, col.Length, area.H))
	}
}

// renderRows draws the visible window of body rows and persists the
// window start back into state.Offset
func (t Table) renderRows(area Region, state *TableState, gutter int, columns []Segment) {
	if len(t.rows) == 0 || area.W < 1 || area.H < 1 {
		return
	}

	start, end := t.Window(state.Offset, state.Selected, area.H)
	state.Offset = start

	y := 0
	for i := start; i < end; i++ {
		row := t.rows[i]
		rowArea := area.Sub(0, y+row.TopMargin, area.W, row.contentHeight()+row.BottomMargin)
		if !row.Style.IsZero() {
			rowArea.ApplyStyle(row.Style)
		}

		selected := state.Selected == i
		if gutter > 0 && selected {
			// SetString clips at the row edge, a symbol wider than the
			// row never spills into neighboring cells
			rowArea.SetString(0, 0, t.highlightSymbol, row.Style)
		}
		for ci, col := range columns {
			if ci >= len(row.Cells) {
				break
			}
			row.Cells[ci].render(rowArea.Sub(col.Offset, 0, col.Length, row.contentHeight()))
		}
		if selected {
			rowArea.ApplyStyle(t.highlightStyle)
		}

		y += row.heightWithMargin()
	}
}

// ColumnWidths computes the (offset, length) of each content column over
// maxWidth, with gutter cells reserved in front for the selection symbol.
// Offsets are relative to the content origin. When no explicit constraints
// are configured, equal widths are derived from the widest row.
func (t Table) ColumnWidths(maxWidth, gutter int) []Segment {
	widths := t.widths
	if len(widths) == 0 {
		widths = t.derivedWidths(maxWidth)
	}

	constraints := make([]Constraint, 0, 2*len(widths)+1)
	constraints = append(constraints, Fixed(gutter))
	for i, w := range widths {
		if i > 0 {
			constraints = append(constraints, Fixed(t.columnSpacing))
		}
		constraints = append(constraints, w)
	}

	segs := Split(maxWidth, constraints, t.distribution)

	columns := make([]Segment, 0, len(widths))
	for i := 1; i < len(segs); i += 2 { // skip gutter, then every spacer
		columns = append(columns, segs[i])
	}
	return columns
}

// derivedWidths produces equal Fixed widths from the widest of rows,
// header and footer. Integer division makes trailing columns absorb
// the truncation, not a policy choice.
func (t Table) derivedWidths(maxWidth int) []Constraint {
	count := 0
	for _, r := range t.rows {
		if len(r.Cells) > count {
			count = len(r.Cells)
		}
	}
	if t.header != nil && len(t.header.Cells) > count {
		count = len(t.header.Cells)
	}
	if t.footer != nil && len(t.footer.Cells) > count {
		count = len(t.footer.Cells)
	}
	if count == 0 {
		return nil
	}

	total := maxWidth - t.columnSpacing*(count-1)
	if total < 0 {
		total = 0
	}
	widths := make([]Constraint, count)
	for i := range widths {
		widths[i] = Fixed(total / count)
	}
	return widths
}

// Window computes the half-open range of rows to render given the
// persisted offset, the selected row (-1 for none) and the available
// height. The window moves the minimum amount needed to keep the
// selection visible, so per-frame movement tracks how far the selection
// moved rather than resetting to row zero.
func (t Table) Window(offset, selected, maxHeight int) (start, end int) {
	if len(t.rows) == 0 {
		return 0, 0
	}
	if offset >= len(t.rows) {
		offset = len(t.rows) - 1
	}
	if offset < 0 {
		offset = 0
	}

	start, end = offset, offset
	height := 0
	for _, row := range t.rows[offset:] {
		h := row.heightWithMargin()
		if height+h > maxHeight {
			break
		}
		height += h
		end++
	}

	if selected < 0 {
		selected = 0
	}
	if selected >= len(t.rows) {
		selected = len(t.rows) - 1
	}

	for selected >= end {
		height += t.rows[end].heightWithMargin()
		end++
		for height > maxHeight && start < end-1 {
			height -= t.rows[start].heightWithMargin()
			start++
		}
	}
	for selected < start {
		start--
		height += t.rows[start].heightWithMargin()
		for height > maxHeight && end > start+1 {
			end--
			height -= t.rows[end].heightWithMargin()
		}
	}
	return start, end
}
