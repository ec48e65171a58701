package components

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"

	"github.com/yeeaiclub/linetui"
)

const (
	codeFormatter = "terminal256"
	codeStyle     = "monokai"
)

// Code is a syntax-highlighted block. Lines longer than the width are
// truncated rather than wrapped so the code keeps its shape.
type Code struct {
	source   string
	language string
	style    string

	highlighted []string
	cachedWidth int
	cachedLines []string
	cacheValid  bool
}

// NewCode highlights source as language, a chroma lexer name such as "go".
// An unknown or empty language falls back to plain text.
func NewCode(source, language string) *Code {
	return &Code{source: source, language: language, style: codeStyle}
}

func (c *Code) SetSource(source string) {
	c.source = source
	c.highlighted = nil
	c.cacheValid = false
}

// SetStyle selects a chroma style by name.
func (c *Code) SetStyle(style string) {
	c.style = style
	c.highlighted = nil
	c.cacheValid = false
}

func (c *Code) Invalidate() {
	c.cacheValid = false
}

func (c *Code) Render(width int) []string {
	if c.cacheValid && c.cachedWidth == width {
		return c.cachedLines
	}
	if c.highlighted == nil {
		c.highlighted = highlight(c.source, c.language, c.style)
	}
	lines := make([]string, len(c.highlighted))
	for i, line := range c.highlighted {
		lines[i] = linetui.TruncateToWidth(line, width, "…", false)
	}
	c.cachedWidth = width
	c.cachedLines = lines
	c.cacheValid = true
	return lines
}

func highlight(source, language, style string) []string {
	source = strings.ReplaceAll(strings.TrimSuffix(source, "\n"), "\t", "    ")
	var buf strings.Builder
	if err := quick.Highlight(&buf, source, language, codeFormatter, style); err != nil {
		return strings.Split(source, "\n")
	}
	highlighted := strings.TrimSuffix(buf.String(), "\n")
	if highlighted == "" {
		return []string{""}
	}
	return strings.Split(highlighted, "\n")
}
