package linetui

// TruncateToWidth shortens a styled line to maxWidth columns, ending it with
// ellipsis ("..." when empty) if anything was cut. With pad set, the result
// is right-padded with spaces to exactly maxWidth columns.
func TruncateToWidth(text string, maxWidth int, ellipsis string, pad bool) string {
	if maxWidth <= 0 {
		return ""
	}
	if ellipsis == "" {
		ellipsis = "..."
	}

	width := VisibleWidth(text)
	if width <= maxWidth {
		if pad {
			return text + spaces(maxWidth-width)
		}
		return text
	}

	ellipsisWidth := DisplayWidth(ellipsis)
	if maxWidth <= ellipsisWidth {
		return SliceToFitWidth(ellipsis, maxWidth)
	}

	kept, keptWidth := SliceColumns(text, 0, maxWidth-ellipsisWidth)
	result := kept + "\x1b[0m" + ellipsis
	if pad {
		result += spaces(maxWidth - keptWidth - ellipsisWidth)
	}
	return result
}

// PadToWidth right-pads a styled line with spaces up to width columns.
func PadToWidth(line string, width int) string {
	return line + spaces(width-VisibleWidth(line))
}

// ApplyBackgroundToLine pads line to width and passes it through bgFn, so
// the background covers the full row.
func ApplyBackgroundToLine(line string, width int, bgFn func(string) string) string {
	return bgFn(PadToWidth(line, width))
}
