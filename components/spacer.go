package components

// Spacer renders a fixed number of empty lines.
type Spacer struct {
	lines int
}

func NewSpacer(lines int) *Spacer {
	return &Spacer{lines: max(0, lines)}
}

func (s *Spacer) SetLines(lines int) {
	s.lines = max(0, lines)
}

func (s *Spacer) Render(width int) []string {
	return make([]string, s.lines)
}

func (s *Spacer) Invalidate() {}
