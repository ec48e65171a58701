package components

import "strings"

// DynamicBorder is a horizontal rule spanning the full width.
type DynamicBorder struct {
	color func(string) string
	char  string
}

func NewDynamicBorder(color func(string) string) *DynamicBorder {
	if color == nil {
		color = func(s string) string { return s }
	}
	return &DynamicBorder{
		color: color,
		char:  "─",
	}
}

// SetChar changes the rule character. It must be one column wide.
func (d *DynamicBorder) SetChar(char string) {
	d.char = char
}

func (d *DynamicBorder) Render(width int) []string {
	return []string{d.color(strings.Repeat(d.char, max(0, width)))}
}

func (d *DynamicBorder) Invalidate() {}
