package linetui

import (
	"unicode"
	"unicode/utf8"
)

// wideRunes lists the East Asian wide ranges that occupy two terminal columns.
var wideRunes = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x1100, Hi: 0x115f, Stride: 1}, // Hangul Jamo
		{Lo: 0x2e80, Hi: 0x303e, Stride: 1}, // CJK radicals, Kangxi, CJK symbols
		{Lo: 0x3041, Hi: 0x33ff, Stride: 1}, // Hiragana, Katakana, Bopomofo, compat Jamo, enclosed CJK
		{Lo: 0x3400, Hi: 0x4dbf, Stride: 1}, // CJK extension A
		{Lo: 0x4e00, Hi: 0x9fff, Stride: 1}, // CJK unified ideographs
		{Lo: 0xac00, Hi: 0xd7a3, Stride: 1}, // Hangul syllables
		{Lo: 0xf900, Hi: 0xfaff, Stride: 1}, // CJK compatibility ideographs
		{Lo: 0xfe30, Hi: 0xfe4f, Stride: 1}, // CJK compatibility forms
		{Lo: 0xff00, Hi: 0xff60, Stride: 1}, // fullwidth forms
		{Lo: 0xffe0, Hi: 0xffe6, Stride: 1}, // fullwidth signs
	},
	R32: []unicode.Range32{
		{Lo: 0x20000, Hi: 0x2fffd, Stride: 1}, // CJK extensions B-F
		{Lo: 0x30000, Hi: 0x3fffd, Stride: 1}, // CJK extension G+
	},
}

// CharWidth returns the number of terminal columns r occupies: 2 for East
// Asian wide characters, 1 for everything else.
func CharWidth(r rune) int {
	if r < 0x1100 {
		return 1
	}
	if unicode.Is(wideRunes, r) {
		return 2
	}
	return 1
}

// DisplayWidth returns the column width of text. Escape sequences are not
// interpreted; use VisibleWidth for styled lines.
func DisplayWidth(text string) int {
	if isPrintableASCII(text) {
		return len(text)
	}
	width := 0
	for _, r := range text {
		width += CharWidth(r)
	}
	return width
}

func isPrintableASCII(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] < 0x20 || text[i] > 0x7e {
			return false
		}
	}
	return true
}

// SliceToFitWidth returns the longest prefix of text, in whole runes, whose
// display width does not exceed maxWidth.
func SliceToFitWidth(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	width := 0
	for i, r := range text {
		w := CharWidth(r)
		if width+w > maxWidth {
			return text[:i]
		}
		width += w
	}
	return text
}

// SliceFromEndToFitWidth returns the longest suffix of text, in whole runes,
// whose display width does not exceed maxWidth.
func SliceFromEndToFitWidth(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	width := 0
	end := len(text)
	for end > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:end])
		w := CharWidth(r)
		if width+w > maxWidth {
			break
		}
		width += w
		end -= size
	}
	return text[end:]
}
