package linetui

import (
	"errors"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"
)

// screen is a minimal terminal model: an unbounded grid of cells with auto
// wrap, enough of CSI to follow the renderer's cursor movement, and no
// styling. Row 0 is the first row ever written, so scrollback is kept.
type screen struct {
	width    int
	rows     [][]string
	row, col int
	// wrapPending is set after writing into the last column.
	wrapPending bool
}

func newScreen(width int) *screen {
	return &screen{width: width, rows: [][]string{nil}}
}

func (s *screen) ensureRow(row int) {
	for len(s.rows) <= row {
		s.rows = append(s.rows, nil)
	}
}

func (s *screen) put(cell string, w int) {
	if s.wrapPending || s.col+w > s.width {
		s.row++
		s.col = 0
		s.wrapPending = false
	}
	s.ensureRow(s.row)
	line := s.rows[s.row]
	for len(line) < s.col+w {
		line = append(line, " ")
	}
	line[s.col] = cell
	if w == 2 {
		line[s.col+1] = ""
	}
	s.rows[s.row] = line
	s.col += w
	if s.col >= s.width {
		s.col = s.width - 1
		s.wrapPending = true
	}
}

func (s *screen) feed(data string) {
	for i := 0; i < len(data); {
		if n := escapeLen(data, i); n > 0 {
			s.control(data[i : i+n])
			i += n
			continue
		}
		switch data[i] {
		case '\r':
			s.col = 0
			s.wrapPending = false
			i++
			continue
		case '\n':
			s.row++
			s.ensureRow(s.row)
			s.wrapPending = false
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(data[i:])
		s.put(string(r), CharWidth(r))
		i += size
	}
}

func (s *screen) control(seq string) {
	if len(seq) < 3 || seq[1] != '[' {
		return
	}
	final := seq[len(seq)-1]
	params := seq[2 : len(seq)-1]
	if strings.HasPrefix(params, "?") {
		return
	}
	n := 1
	if params != "" {
		if v, err := strconv.Atoi(params); err == nil {
			n = v
		}
	}
	switch final {
	case 'A':
		s.row = max(0, s.row-n)
		s.wrapPending = false
	case 'B':
		s.row += n
		s.ensureRow(s.row)
		s.wrapPending = false
	case 'C':
		s.col = min(s.width-1, s.col+n)
		s.wrapPending = false
	case 'J':
		if params == "" || params == "0" {
			s.ensureRow(s.row)
			if len(s.rows[s.row]) > s.col {
				s.rows[s.row] = s.rows[s.row][:s.col]
			}
			s.rows = s.rows[:s.row+1]
		}
	}
}

// Lines returns every row with trailing blanks removed. Trailing empty rows
// are dropped too.
func (s *screen) Lines() []string {
	out := make([]string, len(s.rows))
	for i, row := range s.rows {
		out[i] = strings.TrimRight(strings.Join(row, ""), " ")
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return out
}

func (s *screen) Cursor() (row, col int) {
	return s.row, s.col
}

// fakeTerminal records output and feeds it through a screen model.
type fakeTerminal struct {
	mu       sync.Mutex
	cols     int
	rows     int
	screen   *screen
	output   strings.Builder
	frames   []string
	visible  bool
	writeErr error

	started  bool
	stopped  bool
	onInput  func(string)
	onResize func()
}

func newFakeTerminal(cols, rows int) *fakeTerminal {
	return &fakeTerminal{cols: cols, rows: rows, screen: newScreen(max(1, cols)), visible: true}
}

func (f *fakeTerminal) Start(onInput func(string), onResize func()) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.started {
		return ErrAlreadyStarted
	}
	f.started = true
	f.onInput = onInput
	f.onResize = onResize
	return nil
}

func (f *fakeTerminal) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
	f.started = false
}

func (f *fakeTerminal) Write(data string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return f.writeErr
	}
	f.output.WriteString(data)
	f.screen.feed(data)
	return nil
}

func (f *fakeTerminal) WriteSynchronized(data string) error {
	f.mu.Lock()
	if f.writeErr == nil {
		f.frames = append(f.frames, data)
	}
	f.mu.Unlock()
	return f.Write(data)
}

func (f *fakeTerminal) HideCursor() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.visible = false
}

func (f *fakeTerminal) ShowCursor() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.visible = true
}

func (f *fakeTerminal) Columns() int { return f.cols }
func (f *fakeTerminal) Rows() int    { return f.rows }

func (f *fakeTerminal) Output() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.output.String()
}

func (f *fakeTerminal) LastFrame() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.frames) == 0 {
		return ""
	}
	return f.frames[len(f.frames)-1]
}

func (f *fakeTerminal) CursorVisible() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.visible
}

// send delivers data as if the user typed it.
func (f *fakeTerminal) send(data string) {
	f.mu.Lock()
	onInput := f.onInput
	f.mu.Unlock()
	onInput(data)
}

var errWriteFailed = errors.New("write failed")

// fixedLines is a component rendering fixed lines, with an optional committed
// prefix and input recording.
type fixedLines struct {
	content   []string
	committed int
	focused   bool
	inputs    []string
	releases  bool
}

func newFixed(content ...string) *fixedLines {
	return &fixedLines{content: content}
}

func (l *fixedLines) Render(width int) []string {
	return append([]string(nil), l.content...)
}

func (l *fixedLines) Invalidate() {}

func (l *fixedLines) CommittedLineCount(width int) int {
	return l.committed
}

func (l *fixedLines) HandleInput(data string) {
	l.inputs = append(l.inputs, data)
}

func (l *fixedLines) SetFocused(focused bool) {
	l.focused = focused
}

func (l *fixedLines) IsFocused() bool {
	return l.focused
}

func (l *fixedLines) WantsKeyRelease() bool {
	return l.releases
}
