package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yeeaiclub/linetui"
)

// Box draws a border around its children, rendered one below the other.
// Input and focus are forwarded to the first child that accepts them, so a
// Box can be shown as an overlay around a list or an input.
type Box struct {
	children    []linetui.Component
	border      lipgloss.Border
	borderStyle lipgloss.Style
	titleStyle  lipgloss.Style
	title       string
	paddingX    int
	focused     bool
}

func NewBox(children ...linetui.Component) *Box {
	return &Box{
		children:    children,
		border:      lipgloss.RoundedBorder(),
		borderStyle: lipgloss.NewStyle(),
		titleStyle:  lipgloss.NewStyle().Bold(true),
		paddingX:    1,
	}
}

func (b *Box) AddChild(child linetui.Component) {
	b.children = append(b.children, child)
}

func (b *Box) SetTitle(title string) {
	b.title = title
}

func (b *Box) SetBorder(border lipgloss.Border) {
	b.border = border
}

// SetBorderColor colors the frame, e.g. lipgloss.Color("6").
func (b *Box) SetBorderColor(color lipgloss.TerminalColor) {
	b.borderStyle = lipgloss.NewStyle().Foreground(color)
}

func (b *Box) SetPaddingX(padding int) {
	b.paddingX = max(0, padding)
}

// The frame is drawn from the border's characters rather than through
// lipgloss.Style.Render so the children's escape sequences, including the
// cursor marker, pass through untouched.
func (b *Box) Render(width int) []string {
	frame := 2 + b.paddingX*2
	if width <= frame {
		return nil
	}
	inner := width - frame
	pad := spaces(b.paddingX)
	left := b.borderStyle.Render(b.border.Left)
	right := b.borderStyle.Render(b.border.Right)

	lines := []string{b.topLine(width)}
	for _, child := range b.children {
		for _, line := range child.Render(inner) {
			line = linetui.TruncateToWidth(line, inner, "…", true)
			lines = append(lines, left+pad+line+linetui.SegmentReset+pad+right)
		}
	}
	bottom := b.border.BottomLeft + repeatTo(b.border.Bottom, width-2) + b.border.BottomRight
	return append(lines, b.borderStyle.Render(bottom))
}

func (b *Box) topLine(width int) string {
	span := width - 2
	if b.title == "" || span < 4 {
		return b.borderStyle.Render(b.border.TopLeft + repeatTo(b.border.Top, span) + b.border.TopRight)
	}
	title := linetui.TruncateToWidth(b.title, span-4, "…", false)
	rest := span - 3 - linetui.VisibleWidth(title)
	return b.borderStyle.Render(b.border.TopLeft+b.border.Top+" ") +
		b.titleStyle.Render(title) +
		b.borderStyle.Render(" "+repeatTo(b.border.Top, rest)+b.border.TopRight)
}

func repeatTo(s string, n int) string {
	if n <= 0 || s == "" {
		return ""
	}
	return strings.Repeat(s, n)
}

func spaces(n int) string {
	return repeatTo(" ", n)
}

func (b *Box) Invalidate() {
	for _, child := range b.children {
		child.Invalidate()
	}
}

func (b *Box) HandleInput(data string) {
	for _, child := range b.children {
		if h, ok := child.(linetui.InputHandler); ok {
			h.HandleInput(data)
			return
		}
	}
}

func (b *Box) SetFocused(focused bool) {
	b.focused = focused
	for _, child := range b.children {
		if f, ok := child.(linetui.Focusable); ok {
			f.SetFocused(focused)
			return
		}
	}
}

func (b *Box) IsFocused() bool {
	return b.focused
}
