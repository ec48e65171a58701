package linetui

import "strings"

// compositeOverlays draws the overlay entries, bottom to top, over the active
// lines. Positions are resolved against the active region; when an overlay
// reaches below it, the region grows with blank lines. base is not modified.
func compositeOverlays(base []string, entries []OverlayEntry, width int) []string {
	if len(entries) == 0 {
		return base
	}

	regionHeight := len(base)
	result := make([]string, len(base))
	copy(result, base)

	for _, entry := range entries {
		overlayWidth := entry.Options.resolveWidth(width)
		lines := entry.Component.Render(overlayWidth)
		if limit := entry.Options.MaxHeight; limit > 0 && len(lines) > limit {
			lines = lines[:limit]
		}
		if len(lines) == 0 {
			continue
		}

		layout := entry.Options.resolve(overlayWidth, len(lines), width, regionHeight)
		for len(result) < layout.row+len(lines) {
			result = append(result, "")
		}
		for i, line := range lines {
			idx := layout.row + i
			result[idx] = compositeLine(result[idx], line, layout.col, layout.width, width)
		}
	}
	return result
}

// compositeLine splices overlay into base at column col, overlayWidth columns
// wide. The base style is closed before the overlay and re-opened after it.
// A wide character of base cut by either edge becomes spaces.
func compositeLine(base, overlay string, col, overlayWidth, termWidth int) string {
	before, beforeWidth := SliceColumns(base, 0, col)
	text, textWidth := SliceColumns(overlay, 0, overlayWidth)
	after, lead := columnsFrom(base, col+overlayWidth)

	var b strings.Builder
	b.WriteString(before)
	b.WriteString(spaces(col - beforeWidth))
	b.WriteString(SegmentReset)
	b.WriteString(text)
	b.WriteString(spaces(overlayWidth - textWidth))
	b.WriteString(SegmentReset)
	if after != "" {
		b.WriteString(spaces(lead))
		b.WriteString(after)
	}

	line := b.String()
	if VisibleWidth(line) > termWidth {
		line, _ = SliceColumns(line, 0, termWidth)
	}
	return line
}
