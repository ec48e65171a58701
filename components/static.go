package components

import (
	"strings"

	"github.com/yeeaiclub/linetui"
)

// Static is finished output, such as a completed chat turn. All of its
// lines are committed, so the renderer writes them to scrollback once and
// never redraws them.
type Static struct {
	content linetui.Component
}

func NewStatic(text string) *Static {
	return &Static{content: NewText(text, 0, 0, nil)}
}

// NewStaticOf commits whatever content renders, e.g. a finished Code block.
func NewStaticOf(content linetui.Component) *Static {
	return &Static{content: content}
}

// NewStaticLines wraps pre-rendered lines, joined by newlines.
func NewStaticLines(lines ...string) *Static {
	return NewStatic(strings.Join(lines, "\n"))
}

func (s *Static) Render(width int) []string {
	return s.content.Render(width)
}

func (s *Static) Invalidate() {
	s.content.Invalidate()
}

func (s *Static) CommittedLineCount(width int) int {
	return len(s.Render(width))
}

var _ linetui.Committer = (*Static)(nil)
