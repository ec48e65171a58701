package linetui

import (
	"strings"

	"github.com/yeeaiclub/linetui/keys"
)

// StdinBuffer turns raw input chunks into complete sequences. A sequence
// cut off at the end of a chunk is held until the next chunk completes it
// or Flush is called. Bracketed pastes are delivered whole, markers
// included.
type StdinBuffer struct {
	pending string
	paste   strings.Builder
	inPaste bool
}

func NewStdinBuffer() *StdinBuffer {
	return &StdinBuffer{}
}

// Process appends data and returns every sequence completed by it.
func (b *StdinBuffer) Process(data string) []string {
	buf := b.pending + data
	b.pending = ""

	var out []string
	for i := 0; i < len(buf); {
		if b.inPaste {
			end := strings.Index(buf[i:], keys.PasteEnd)
			if end < 0 {
				// Keep a possible partial end marker out of the paste body.
				keep := partialSuffix(buf[i:], keys.PasteEnd)
				b.paste.WriteString(buf[i : len(buf)-keep])
				b.pending = buf[len(buf)-keep:]
				return out
			}
			b.paste.WriteString(buf[i : i+end])
			b.paste.WriteString(keys.PasteEnd)
			out = append(out, b.paste.String())
			b.paste.Reset()
			b.inPaste = false
			i += end + len(keys.PasteEnd)
			continue
		}

		n, complete := keys.ScanSequence(buf, i)
		if !complete {
			b.pending = buf[i:]
			return out
		}
		seq := buf[i : i+n]
		i += n
		if seq == keys.PasteStart {
			b.inPaste = true
			b.paste.WriteString(seq)
			continue
		}
		out = append(out, seq)
	}
	return out
}

// Pending reports whether an incomplete sequence is being held.
func (b *StdinBuffer) Pending() bool {
	return b.pending != "" && !b.inPaste
}

// Flush releases a held incomplete sequence as is, so that a lone ESC is
// delivered as the escape key. An unfinished paste is kept.
func (b *StdinBuffer) Flush() []string {
	if b.inPaste || b.pending == "" {
		return nil
	}
	seqs := keys.SplitSequences(b.pending)
	b.pending = ""
	return seqs
}

// Reset drops all buffered input.
func (b *StdinBuffer) Reset() {
	b.pending = ""
	b.paste.Reset()
	b.inPaste = false
}

// partialSuffix returns the length of the longest suffix of s that is a
// proper prefix of marker.
func partialSuffix(s, marker string) int {
	for n := min(len(s), len(marker)-1); n > 0; n-- {
		if strings.HasSuffix(s, marker[:n]) {
			return n
		}
	}
	return 0
}
