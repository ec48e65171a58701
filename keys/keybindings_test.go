package keys

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeybindingsDefaults(t *testing.T) {
	withKitty(t, false)
	kb := NewKeybindings(nil)

	assert.True(t, kb.Matches("\r", ActionSubmit))
	assert.True(t, kb.Matches("\x01", ActionCursorLineStart))
	assert.True(t, kb.Matches("\x1b[H", ActionCursorLineStart))
	assert.True(t, kb.Matches("\x17", ActionDeleteWordBackward))
	assert.False(t, kb.Matches("x", ActionSubmit))
	assert.False(t, kb.Matches("\r", Action("unknown")))
	assert.Equal(t, []string{"ctrl+u"}, kb.Keys(ActionDeleteToLineStart))
}

func TestKeybindingsOverride(t *testing.T) {
	kb := NewKeybindings(KeybindingsConfig{ActionSubmit: {"ctrl+s"}})

	assert.True(t, kb.Matches("\x13", ActionSubmit))
	assert.False(t, kb.Matches("\r", ActionSubmit))

	keys := kb.Keys(ActionSubmit)
	keys[0] = "mutated"
	assert.Equal(t, []string{"ctrl+s"}, kb.Keys(ActionSubmit))
}

func TestLoadKeybindings(t *testing.T) {
	kb, err := LoadKeybindings(strings.NewReader("submit: [ctrl+j, enter]\ncursorWordLeft:\n  - alt+b\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"ctrl+j", "enter"}, kb.Keys(ActionSubmit))
	assert.Equal(t, []string{"alt+b"}, kb.Keys(ActionCursorWordLeft))
	assert.Equal(t, []string{"ctrl+k"}, kb.Keys(ActionDeleteToLineEnd))
}

func TestLoadKeybindingsEmpty(t *testing.T) {
	kb, err := LoadKeybindings(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, []string{"enter"}, kb.Keys(ActionSubmit))
}

func TestLoadKeybindingsErrors(t *testing.T) {
	_, err := LoadKeybindings(strings.NewReader("submit: {nested: true}"))
	assert.Error(t, err)

	_, err = LoadKeybindings(strings.NewReader("submit: [hyper+x]"))
	assert.ErrorContains(t, err, "hyper+x")
}

func TestDefaultKeybindings(t *testing.T) {
	prev := Default()
	t.Cleanup(func() { SetDefault(prev) })

	custom := NewKeybindings(KeybindingsConfig{ActionInterrupt: {"ctrl+q"}})
	SetDefault(custom)
	assert.Same(t, custom, Default())

	SetDefault(nil)
	assert.Equal(t, []string{"ctrl+c"}, Default().Keys(ActionInterrupt))
}
