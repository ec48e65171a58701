package linetui

import (
	"strconv"
	"strings"
)

// renderBuffer accumulates the escape sequences of one frame so they reach
// the terminal in a single write.
type renderBuffer struct {
	builder strings.Builder
}

func (rb *renderBuffer) CarriageReturn() {
	rb.builder.WriteString("\r")
}

func (rb *renderBuffer) NewLine() {
	rb.builder.WriteString("\r\n")
}

func (rb *renderBuffer) Write(text string) {
	rb.builder.WriteString(text)
}

// EraseDown clears from the cursor to the end of the screen.
func (rb *renderBuffer) EraseDown() {
	rb.builder.WriteString("\x1b[0J")
}

func (rb *renderBuffer) MoveUp(lines int) {
	rb.move(lines, 'A')
}

func (rb *renderBuffer) MoveDown(lines int) {
	rb.move(lines, 'B')
}

func (rb *renderBuffer) MoveRight(cols int) {
	rb.move(cols, 'C')
}

func (rb *renderBuffer) move(n int, final byte) {
	if n <= 0 {
		return
	}
	rb.builder.WriteString("\x1b[")
	rb.builder.WriteString(strconv.Itoa(n))
	rb.builder.WriteByte(final)
}

// Line writes one rendered line closed by a style reset.
func (rb *renderBuffer) Line(line string) {
	rb.builder.WriteString(line)
	rb.builder.WriteString(SegmentReset)
}

func (rb *renderBuffer) Len() int {
	return rb.builder.Len()
}

func (rb *renderBuffer) String() string {
	return rb.builder.String()
}
