// Package keys decodes raw terminal input: it splits byte chunks into
// individual sequences and matches them against logical key identifiers
// such as "enter", "ctrl+c" or "shift+tab", for both legacy escape
// sequences and the Kitty keyboard protocol.
package keys

import "unicode/utf8"

const (
	esc = '\x1b'
	bel = '\a'

	// PasteStart and PasteEnd bracket pasted text when bracketed paste mode
	// is enabled.
	PasteStart = "\x1b[200~"
	PasteEnd   = "\x1b[201~"
)

// ScanSequence returns the byte length of the sequence starting at data[i].
// complete is false when data ends before the sequence does; n then covers
// the rest of data. A malformed CSI ends before the offending byte and is
// reported complete.
func ScanSequence(data string, i int) (n int, complete bool) {
	if i >= len(data) {
		return 0, true
	}
	if data[i] != esc {
		return scanRune(data, i, i)
	}
	if i+1 >= len(data) {
		return 1, false
	}

	switch data[i+1] {
	case '[':
		j := i + 2
		for j < len(data) && data[j] >= 0x30 && data[j] <= 0x3f {
			j++
		}
		for j < len(data) && data[j] >= 0x20 && data[j] <= 0x2f {
			j++
		}
		if j >= len(data) {
			return j - i, false
		}
		if data[j] >= 0x40 && data[j] <= 0x7e {
			return j + 1 - i, true
		}
		return j - i, true
	case 'O':
		if i+2 >= len(data) {
			return 2, false
		}
		return 3, true
	case '_':
		for j := i + 2; j < len(data); j++ {
			if data[j] == bel {
				return j + 1 - i, true
			}
			if data[j] == esc && j+1 < len(data) && data[j+1] == '\\' {
				return j + 2 - i, true
			}
		}
		return len(data) - i, false
	default:
		return scanRune(data, i, i+1)
	}
}

// scanRune measures from start to the end of the rune at r. Invalid UTF-8
// counts as a single byte; a rune cut off by the end of data is incomplete.
func scanRune(data string, start, r int) (int, bool) {
	if !utf8.FullRuneInString(data[r:]) {
		return len(data) - start, false
	}
	_, size := utf8.DecodeRuneInString(data[r:])
	return r + size - start, true
}

// SplitSequences splits raw input into individual sequences. Joining the
// result reproduces raw; a truncated trailing sequence is returned as is.
func SplitSequences(raw string) []string {
	var seqs []string
	for i := 0; i < len(raw); {
		n, _ := ScanSequence(raw, i)
		seqs = append(seqs, raw[i:i+n])
		i += n
	}
	return seqs
}
