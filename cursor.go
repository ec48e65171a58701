package linetui

import (
	"errors"
	"strings"
)

// ErrMultipleCursorMarkers is returned by Render when a frame carries more
// than one CursorMarker. The frame is still written, with the cursor at the
// first marker.
var ErrMultipleCursorMarkers = errors.New("linetui: multiple cursor markers in frame")

// cursorPos is a cursor location in logical lines: row is a line index and
// col the display column within that line.
type cursorPos struct {
	row, col int
	ok       bool
}

// extractCursor locates the first CursorMarker in lines and returns the lines
// with every marker removed. lines is never modified.
func extractCursor(lines []string) ([]string, cursorPos, error) {
	var (
		pos   cursorPos
		count int
		out   []string
	)
	for i, line := range lines {
		n := strings.Count(line, CursorMarker)
		if n == 0 {
			continue
		}
		if !pos.ok {
			idx := strings.Index(line, CursorMarker)
			pos = cursorPos{row: i, col: VisibleWidth(line[:idx]), ok: true}
		}
		if out == nil {
			out = append([]string(nil), lines...)
		}
		out[i] = strings.ReplaceAll(line, CursorMarker, "")
		count += n
	}
	if out == nil {
		return lines, pos, nil
	}
	if count > 1 {
		return out, pos, ErrMultipleCursorMarkers
	}
	return out, pos, nil
}

// lineRows is the number of terminal rows line occupies once the terminal
// wraps it at width columns.
func lineRows(line string, width int) int {
	w := VisibleWidth(line)
	if w <= width {
		return 1
	}
	return (w + width - 1) / width
}

func totalRows(lines []string, width int) int {
	total := 0
	for _, line := range lines {
		total += lineRows(line, width)
	}
	return total
}

// cursorCell maps a logical cursor to a terminal row within lines and a
// column, accounting for wrapping. A column past the last cell of its line
// is pinned to that cell.
func cursorCell(lines []string, pos cursorPos, width int) (row, col int) {
	for _, line := range lines[:pos.row] {
		row += lineRows(line, width)
	}
	rows := lineRows(lines[pos.row], width)
	r, c := pos.col/width, pos.col%width
	if r >= rows {
		r, c = rows-1, width-1
	}
	return row + r, c
}
