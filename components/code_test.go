package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeeaiclub/linetui"
)

func TestCodeHighlights(t *testing.T) {
	code := NewCode("package main\n\nfunc main() {}\n", "go")
	lines := code.Render(80)

	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "\x1b[", "go source should be colored")
	assert.Equal(t, "package main", strings.TrimSpace(ansi.Strip(lines[0])))
	assert.Equal(t, "func main() {}", strings.TrimSpace(ansi.Strip(lines[2])))
}

func TestCodeTruncatesLongLines(t *testing.T) {
	code := NewCode(strings.Repeat("x", 50), "")
	lines := code.Render(20)
	require.Len(t, lines, 1)
	assert.LessOrEqual(t, linetui.VisibleWidth(lines[0]), 20)
}

func TestCodeCache(t *testing.T) {
	code := NewCode("a := 1", "go")
	first := code.Render(40)
	assert.True(t, code.cacheValid)
	assert.Equal(t, first, code.Render(40))

	code.SetSource("b := 2")
	assert.False(t, code.cacheValid)
	assert.Contains(t, ansi.Strip(strings.Join(code.Render(40), "")), "b := 2")
}
