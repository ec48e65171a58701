package linetui

// renderState is what the renderer remembers between frames.
type renderState struct {
	// flushed is the number of leading root lines already written to
	// scrollback. It never decreases.
	flushed int

	// drawn is set once an active region is on screen.
	drawn bool

	// active is the active region as last written, after compositing and
	// viewport trimming, and cursor is where the hardware cursor was left in
	// it. Rows are recomputed from these at the current width, so a resize
	// between frames still erases the right amount.
	active []string
	cursor cursorPos
}

// parkedRow returns the terminal row, relative to the top of the active
// region, that the hardware cursor was left on.
func (rs *renderState) parkedRow(width int) int {
	if !rs.drawn || len(rs.active) == 0 {
		return 0
	}
	if rs.cursor.ok {
		row, _ := cursorCell(rs.active, rs.cursor, width)
		return row
	}
	return totalRows(rs.active, width) - 1
}

func (rs *renderState) update(flushed int, active []string, cursor cursorPos) {
	rs.flushed = max(rs.flushed, flushed)
	rs.active = active
	rs.cursor = cursor
	rs.drawn = true
}

// clear forgets the active region. Flushed lines stay flushed: they remain
// in scrollback.
func (rs *renderState) clear() {
	rs.drawn = false
	rs.active = nil
	rs.cursor = cursorPos{}
}
