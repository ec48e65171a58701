package linetui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLen(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "CSI color code", input: "\x1b[31mred", want: 5},
		{name: "CSI with multiple parameters", input: "\x1b[1;31;40m", want: 10},
		{name: "OSC hyperlink with BEL", input: "\x1b]8;;https://example.com\x07x", want: 25},
		{name: "OSC hyperlink with ESC backslash", input: "\x1b]8;;https://example.com\x1b\\x", want: 26},
		{name: "APC cursor marker", input: CursorMarker + "x", want: len(CursorMarker)},
		{name: "two byte escape", input: "\x1b7", want: 2},
		{name: "unterminated OSC runs to the end", input: "\x1b]8;;abc", want: 8},
		{name: "not an escape", input: "abc", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeLen(tt.input, 0))
		})
	}
}

func TestStripANSI(t *testing.T) {
	assert.Equal(t, "red", StripANSI("\x1b[31mred\x1b[0m"))
	assert.Equal(t, "link", StripANSI("\x1b]8;;http://x\x07link\x1b]8;;\x07"))
	assert.Equal(t, "ab", StripANSI("a"+CursorMarker+"b"))
	assert.Equal(t, "plain", StripANSI("plain"))
	assert.Equal(t, "link", StripANSI("\x1b]8;;http://x\x1b\\link\x1b]8;;\x1b\\"))
	assert.Equal(t, "ab", StripANSI("a\x1b7\x1b[2Kb"))
	assert.Equal(t, "xy", StripANSI("x\x1bP1$r0m\x1b\\y"))
	assert.Equal(t, "日本", StripANSI("\x1b[1m日"+CursorMarker+"本\x1b[0m"))
}

func TestVisibleWidth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "empty", input: "", want: 0},
		{name: "plain", input: "hello", want: 5},
		{name: "styled", input: "\x1b[1;31mhello\x1b[0m", want: 5},
		{name: "hyperlink", input: "\x1b]8;;http://x\x07go\x1b]8;;\x07", want: 2},
		{name: "cursor marker", input: "ab" + CursorMarker + "c", want: 3},
		{name: "tab counts three", input: "a\tb", want: 5},
		{name: "wide styled", input: "\x1b[32m日本\x1b[0m", want: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VisibleWidth(tt.input))
		})
	}
}

func TestSliceColumns(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		start     int
		length    int
		want      string
		wantWidth int
	}{
		{name: "plain middle", line: "abcdef", start: 1, length: 3, want: "bcd", wantWidth: 3},
		{name: "zero length", line: "abc", start: 0, length: 0, want: "", wantWidth: 0},
		{name: "past end", line: "abc", start: 2, length: 5, want: "c", wantWidth: 1},
		{name: "style before range replayed", line: "\x1b[31mabcd", start: 2, length: 2, want: "\x1b[31mcd", wantWidth: 2},
		{name: "style inside range kept", line: "ab\x1b[1mcd", start: 0, length: 4, want: "ab\x1b[1mcd", wantWidth: 4},
		{name: "escape at end kept", line: "ab\x1b[0mcd", start: 0, length: 2, want: "ab\x1b[0m", wantWidth: 2},
		{name: "wide straddling start dropped", line: "日本", start: 1, length: 3, want: "本", wantWidth: 2},
		{name: "wide straddling end dropped", line: "a日", start: 0, length: 2, want: "a", wantWidth: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, width := SliceColumns(tt.line, tt.start, tt.length)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantWidth, width)
		})
	}
}

func TestColumnsFrom(t *testing.T) {
	tail, lead := columnsFrom("abcdef", 3)
	assert.Equal(t, "def", tail)
	assert.Zero(t, lead)

	tail, lead = columnsFrom("\x1b[31mabc\x1b[1mdef", 4)
	assert.Equal(t, "\x1b[1;31mef", tail, "the active style is re-opened")
	assert.Zero(t, lead)

	tail, lead = columnsFrom("日本語", 1)
	assert.Equal(t, "本語", tail)
	assert.Equal(t, 1, lead)

	tail, _ = columnsFrom("abc", 10)
	assert.Empty(t, tail)

	tail, _ = columnsFrom("abc"+CursorMarker+"def", 3)
	assert.Equal(t, CursorMarker+"def", tail, "an escape at start is kept")

	tail, _ = columnsFrom("\x1b[31mabc\x1b]8;;https://x.dev\x07def", 3)
	assert.Equal(t, "\x1b[31m\x1b]8;;https://x.dev\x07def", tail)

	tail, _ = columnsFrom("ab"+CursorMarker+"cdef", 3)
	assert.Equal(t, "def", tail, "a covered marker is dropped")

	tail, _ = columnsFrom("abc"+CursorMarker, 3)
	assert.Equal(t, CursorMarker, tail)
}

func TestSGRState(t *testing.T) {
	var s sgrState
	s.apply("\x1b[1;38;5;196;48;2;1;2;3m")
	assert.Equal(t, "\x1b[1;38;5;196;48;2;1;2;3m", s.sequence())

	s.apply("\x1b[22m")
	assert.Equal(t, "\x1b[38;5;196;48;2;1;2;3m", s.sequence())

	s.apply("\x1b[39;49m")
	assert.Empty(t, s.sequence())

	s.apply("\x1b[4;7m")
	s.apply("\x1b[m")
	assert.False(t, s.active())

	s.apply("\x1b[2K")
	assert.False(t, s.active(), "non-SGR sequences are ignored")
}

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth int
		ellipsis string
		pad      bool
		want     string
	}{
		{name: "fits", text: "hello", maxWidth: 10, want: "hello"},
		{name: "fits padded", text: "hi", maxWidth: 4, pad: true, want: "hi  "},
		{name: "cut default ellipsis", text: "hello world", maxWidth: 8, want: "hello\x1b[0m..."},
		{name: "cut custom ellipsis", text: "hello world", maxWidth: 6, ellipsis: "…", want: "hello\x1b[0m…"},
		{name: "wide cut padded", text: "日本語です", maxWidth: 6, ellipsis: "…", pad: true, want: "日本\x1b[0m… "},
		{name: "narrower than ellipsis", text: "hello", maxWidth: 2, want: ".."},
		{name: "zero", text: "hello", maxWidth: 0, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateToWidth(tt.text, tt.maxWidth, tt.ellipsis, tt.pad))
		})
	}
}

func TestPadAndBackground(t *testing.T) {
	assert.Equal(t, "ab  ", PadToWidth("ab", 4))
	assert.Equal(t, "abc", PadToWidth("abc", 2))

	bg := ApplyBackgroundToLine("x", 3, func(s string) string { return "[" + s + "]" })
	assert.Equal(t, "[x  ]", bg)
}
