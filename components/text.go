package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/yeeaiclub/linetui"
)

// Text displays multi-line text with word wrapping
type Text struct {
	text       string
	paddingX   int // Left/right padding
	paddingY   int // Top/bottom padding
	customBgFn func(string) string

	// Cache for rendered output
	cachedWidth int
	cachedLines []string
	cacheValid  bool
}

func NewText(text string, paddingX int, paddingY int, customBgFn func(string) string) *Text {
	return &Text{
		text:       text,
		paddingX:   max(0, paddingX),
		paddingY:   max(0, paddingY),
		customBgFn: customBgFn,
	}
}

func (t *Text) Text() string {
	return t.text
}

func (t *Text) SetText(text string) {
	t.text = text
	t.cacheValid = false
}

func (t *Text) SetCustomBgFn(customBgFn func(string) string) {
	t.customBgFn = customBgFn
	t.cacheValid = false
}

func (t *Text) Invalidate() {
	t.cacheValid = false
}

func (t *Text) Render(width int) []string {
	if t.cacheValid && t.cachedWidth == width {
		return t.cachedLines
	}

	var result []string
	if strings.TrimSpace(t.text) != "" {
		result = t.render(max(1, width))
	}

	t.cachedWidth = width
	t.cachedLines = result
	t.cacheValid = true
	return result
}

func (t *Text) render(width int) []string {
	normalized := strings.ReplaceAll(t.text, "\t", "   ")
	contentWidth := max(1, width-t.paddingX*2)
	wrapped := strings.Split(ansi.Wrap(normalized, contentWidth, ""), "\n")

	margin := strings.Repeat(" ", t.paddingX)
	lines := make([]string, 0, len(wrapped)+t.paddingY*2)
	for range t.paddingY {
		lines = append(lines, t.fill("", width))
	}
	for _, line := range wrapped {
		lines = append(lines, t.fill(margin+line+margin, width))
	}
	for range t.paddingY {
		lines = append(lines, t.fill("", width))
	}
	return lines
}

// fill pads line to the full width, applying the background if set.
func (t *Text) fill(line string, width int) string {
	if t.customBgFn != nil {
		return linetui.ApplyBackgroundToLine(line, width, t.customBgFn)
	}
	return linetui.PadToWidth(line, width)
}
