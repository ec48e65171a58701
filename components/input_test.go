package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeeaiclub/linetui"
	"github.com/yeeaiclub/linetui/keys"
)

func typeInto(input *Input, text string) {
	for _, r := range text {
		input.HandleInput(string(r))
	}
}

func TestInputSubmitWithBackslash(t *testing.T) {
	input := NewInput()
	var submitted string
	input.SetOnSubmit(func(value string) {
		submitted = value
	})

	typeInto(input, "hello\\")
	input.HandleInput("\r")

	assert.Equal(t, "hello\\", submitted)
}

func TestInputInsertBackslash(t *testing.T) {
	input := NewInput()

	input.HandleInput("\\")
	input.HandleInput("x")

	assert.Equal(t, "\\x", input.Value())
}

func TestInputEscape(t *testing.T) {
	input := NewInput()
	escaped := false
	input.SetOnEscape(func() { escaped = true })

	input.HandleInput("\x1b")
	assert.True(t, escaped)
}

func TestInputRenderFocused(t *testing.T) {
	input := NewInput()
	input.SetPrompt("prompt> ")
	input.SetValue("hello")
	input.SetCursor(2)
	input.SetFocused(true)

	lines := input.Render(40)
	require.Len(t, lines, 1)

	line := lines[0]
	idx := strings.Index(line, linetui.CursorMarker)
	require.GreaterOrEqual(t, idx, 0, "focused input should embed the cursor marker")
	assert.Equal(t, "prompt> he", line[:idx])
	assert.Equal(t, 40, linetui.VisibleWidth(line))
	assert.Equal(t, "prompt> hello", strings.TrimRight(ansi.Strip(line), " "))
}

func TestInputRenderUnfocusedHasNoMarker(t *testing.T) {
	input := NewInput()
	input.SetValue("hello")

	line := input.Render(20)[0]
	assert.NotContains(t, line, linetui.CursorMarker)
	assert.Equal(t, "> hello", strings.TrimRight(line, " "))
}

func TestInputCursorMovement(t *testing.T) {
	input := NewInput()
	typeInto(input, "hello world")
	require.Equal(t, 11, input.Cursor())

	input.HandleInput("\x1b[D") // left
	assert.Equal(t, 10, input.Cursor())

	input.HandleInput("\x01") // ctrl+a
	assert.Equal(t, 0, input.Cursor())

	input.HandleInput("\x1bf") // alt+f
	assert.Equal(t, 5, input.Cursor())

	input.HandleInput("\x05") // ctrl+e
	assert.Equal(t, 11, input.Cursor())

	input.HandleInput("\x1bb") // alt+b
	assert.Equal(t, 6, input.Cursor())
}

func TestInputDeletion(t *testing.T) {
	input := NewInput()
	typeInto(input, "hello world")

	input.HandleInput("\x7f") // backspace
	assert.Equal(t, "hello worl", input.Value())

	input.HandleInput("\x17") // ctrl+w
	assert.Equal(t, "hello ", input.Value())

	input.HandleInput("\x01")
	input.HandleInput("\x04") // ctrl+d
	assert.Equal(t, "ello ", input.Value())
}

func TestInputKillAndYank(t *testing.T) {
	input := NewInput()
	typeInto(input, "one two")
	input.SetCursor(3)

	input.HandleInput("\x0b") // ctrl+k
	assert.Equal(t, "one", input.Value())

	input.HandleInput("\x01")
	input.HandleInput("\x19") // ctrl+y
	assert.Equal(t, " twoone", input.Value())
	assert.Equal(t, 4, input.Cursor())
}

func TestInputWideCharacters(t *testing.T) {
	input := NewInput()
	input.SetFocused(true)
	typeInto(input, "日本語")
	assert.Equal(t, 3, input.Cursor())

	input.HandleInput("\x7f")
	assert.Equal(t, "日本", input.Value())

	line := input.Render(20)[0]
	idx := strings.Index(line, linetui.CursorMarker)
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, 6, linetui.VisibleWidth(line[:idx]))
}

func TestInputHorizontalScroll(t *testing.T) {
	input := NewInput()
	input.SetFocused(true)
	typeInto(input, strings.Repeat("abcdefghij", 3))

	line := input.Render(12)[0]
	assert.Equal(t, 12, linetui.VisibleWidth(line))
	before := line[:strings.Index(line, linetui.CursorMarker)]
	assert.Equal(t, "> bcdefghij", ansi.Strip(before))

	input.HandleInput("\x01")
	line = input.Render(12)[0]
	assert.True(t, strings.HasPrefix(line, "> "+linetui.CursorMarker))
	assert.LessOrEqual(t, linetui.VisibleWidth(line), 12)
}

func TestInputPaste(t *testing.T) {
	input := NewInput()
	typeInto(input, "ab")
	input.SetCursor(1)

	input.HandleInput(keys.PasteStart + "x\ny\tz" + keys.PasteEnd)
	assert.Equal(t, "axy    zb", input.Value())
	assert.Equal(t, 8, input.Cursor())
}

func TestInputIgnoresControlSequences(t *testing.T) {
	input := NewInput()
	changes := 0
	input.SetOnChange(func(string) { changes++ })

	input.HandleInput("\x1b[15~") // F5
	input.HandleInput("\x00")
	assert.Empty(t, input.Value())
	assert.Zero(t, changes)
}

func TestInputCustomKeybindings(t *testing.T) {
	input := NewInput()
	input.SetKeybindings(keys.NewKeybindings(keys.KeybindingsConfig{
		keys.ActionSubmit: {"ctrl+s"},
	}))
	submitted := ""
	input.SetOnSubmit(func(v string) { submitted = v })

	typeInto(input, "hi")
	input.HandleInput("\r")
	assert.Empty(t, submitted)

	input.HandleInput("\x13") // ctrl+s
	assert.Equal(t, "hi", submitted)
}
