package linetui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
)

const (
	// CursorMarker is embedded by a focused component at the position where
	// the hardware cursor should be placed. Terminals ignore APC strings, so
	// the marker is invisible even if it leaks to the screen.
	CursorMarker = "\x1b_lt:c\x07"

	// SegmentReset closes SGR styling and any open OSC 8 hyperlink.
	SegmentReset = "\x1b[0m\x1b]8;;\x07"
)

// escapeLen returns the byte length of the escape sequence starting at s[i],
// or 0 when s[i] is not ESC. Unterminated string sequences run to the end of s.
func escapeLen(s string, i int) int {
	if i >= len(s) || s[i] != '\x1b' {
		return 0
	}
	if i+1 >= len(s) {
		return 1
	}
	switch s[i+1] {
	case '[':
		j := i + 2
		for j < len(s) && s[j] >= 0x20 && s[j] <= 0x3f {
			j++
		}
		if j < len(s) && s[j] >= 0x40 && s[j] <= 0x7e {
			return j + 1 - i
		}
		return j - i
	case ']', '_', 'P', '^', 'X':
		for j := i + 2; j < len(s); j++ {
			if s[j] == '\a' {
				return j + 1 - i
			}
			if s[j] == '\x1b' && j+1 < len(s) && s[j+1] == '\\' {
				return j + 2 - i
			}
		}
		return len(s) - i
	default:
		return 2
	}
}

// StripANSI removes CSI, OSC, APC, DCS and two-byte escape sequences.
func StripANSI(s string) string {
	if !strings.Contains(s, "\x1b") {
		return s
	}
	return ansi.Strip(strings.ReplaceAll(s, CursorMarker, ""))
}

// VisibleWidth returns the number of columns a styled line occupies.
// Tabs count as three columns.
func VisibleWidth(s string) int {
	if s == "" {
		return 0
	}
	clean := StripANSI(s)
	if strings.Contains(clean, "\t") {
		clean = strings.ReplaceAll(clean, "\t", "   ")
	}
	return DisplayWidth(clean)
}

func runeColumns(r rune) int {
	if r == '\t' {
		return 3
	}
	return CharWidth(r)
}

// SliceColumns returns the part of line covering columns [start, start+length)
// together with its visible width. Escape sequences inside the range, or
// directly at its end, are kept verbatim; those preceding it are replayed
// before the first kept character.
// A wide character that straddles either boundary is dropped.
func SliceColumns(line string, start, length int) (string, int) {
	if length <= 0 {
		return "", 0
	}
	end := start + length
	var b, pending strings.Builder
	col, width := 0, 0
	for i := 0; i < len(line); {
		if n := escapeLen(line, i); n > 0 {
			code := line[i : i+n]
			if col < start {
				pending.WriteString(code)
			} else if col <= end {
				b.WriteString(code)
			}
			i += n
			continue
		}
		if col >= end {
			break
		}
		r, size := utf8.DecodeRuneInString(line[i:])
		w := runeColumns(r)
		if col >= start && col+w <= end {
			if pending.Len() > 0 {
				b.WriteString(pending.String())
				pending.Reset()
			}
			b.WriteString(line[i : i+size])
			width += w
		}
		col += w
		i += size
	}
	return b.String(), width
}

// columnsFrom returns the tail of line from column start, prefixed with the
// SGR state gathered before it. Escape sequences at start, such as a cursor
// marker right after a spliced overlay, stay in the tail verbatim. lead is
// the number of columns between start and the tail (non-zero when a wide
// character straddles start).
func columnsFrom(line string, start int) (tail string, lead int) {
	var state sgrState
	col := 0
	for i := 0; i < len(line); {
		if col >= start {
			return state.sequence() + line[i:], col - start
		}
		if n := escapeLen(line, i); n > 0 {
			state.apply(line[i : i+n])
			i += n
			continue
		}
		r, size := utf8.DecodeRuneInString(line[i:])
		col += runeColumns(r)
		i += size
	}
	return "", 0
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
