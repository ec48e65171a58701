package keys

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

// Action names an editing or navigation command that can be bound to keys.
type Action string

const (
	ActionCursorLeft         Action = "cursorLeft"
	ActionCursorRight        Action = "cursorRight"
	ActionCursorWordLeft     Action = "cursorWordLeft"
	ActionCursorWordRight    Action = "cursorWordRight"
	ActionCursorLineStart    Action = "cursorLineStart"
	ActionCursorLineEnd      Action = "cursorLineEnd"
	ActionDeleteCharBackward Action = "deleteCharBackward"
	ActionDeleteCharForward  Action = "deleteCharForward"
	ActionDeleteWordBackward Action = "deleteWordBackward"
	ActionDeleteWordForward  Action = "deleteWordForward"
	ActionDeleteToLineStart  Action = "deleteToLineStart"
	ActionDeleteToLineEnd    Action = "deleteToLineEnd"
	ActionYank               Action = "yank"
	ActionSubmit             Action = "submit"
	ActionSelectUp           Action = "selectUp"
	ActionSelectDown         Action = "selectDown"
	ActionSelectPageUp       Action = "selectPageUp"
	ActionSelectPageDown     Action = "selectPageDown"
	ActionSelectConfirm      Action = "selectConfirm"
	ActionSelectCancel       Action = "selectCancel"
	ActionInterrupt          Action = "interrupt"
	ActionOpenPalette        Action = "openPalette"
)

// KeybindingsConfig maps actions to key identifiers. An action present in
// a config replaces its default keys entirely.
type KeybindingsConfig map[Action][]string

var defaultKeybindings = KeybindingsConfig{
	ActionCursorLeft:         {"left", "ctrl+b"},
	ActionCursorRight:        {"right", "ctrl+f"},
	ActionCursorWordLeft:     {"alt+left", "ctrl+left", "alt+b"},
	ActionCursorWordRight:    {"alt+right", "ctrl+right", "alt+f"},
	ActionCursorLineStart:    {"home", "ctrl+a"},
	ActionCursorLineEnd:      {"end", "ctrl+e"},
	ActionDeleteCharBackward: {"backspace"},
	ActionDeleteCharForward:  {"delete", "ctrl+d"},
	ActionDeleteWordBackward: {"ctrl+w", "alt+backspace"},
	ActionDeleteWordForward:  {"alt+d", "alt+delete"},
	ActionDeleteToLineStart:  {"ctrl+u"},
	ActionDeleteToLineEnd:    {"ctrl+k"},
	ActionYank:               {"ctrl+y"},
	ActionSubmit:             {"enter"},
	ActionSelectUp:           {"up"},
	ActionSelectDown:         {"down"},
	ActionSelectPageUp:       {"pageup"},
	ActionSelectPageDown:     {"pagedown"},
	ActionSelectConfirm:      {"enter"},
	ActionSelectCancel:       {"escape", "ctrl+c"},
	ActionInterrupt:          {"ctrl+c"},
	ActionOpenPalette:        {"ctrl+p"},
}

// Keybindings resolves actions to key identifiers.
type Keybindings struct {
	actionToKeys map[Action][]string
}

// NewKeybindings returns the default bindings overridden by config, which
// may be nil.
func NewKeybindings(config KeybindingsConfig) *Keybindings {
	kb := &Keybindings{actionToKeys: make(map[Action][]string, len(defaultKeybindings))}
	for action, keys := range defaultKeybindings {
		kb.actionToKeys[action] = slices.Clone(keys)
	}
	for action, keys := range config {
		if keys != nil {
			kb.actionToKeys[action] = slices.Clone(keys)
		}
	}
	return kb
}

// LoadKeybindings reads a YAML document of the form
//
//	submit: [enter]
//	cursorWordLeft: [alt+left, ctrl+left]
//
// and returns the defaults overridden by it. Unknown key identifiers are
// rejected.
func LoadKeybindings(r io.Reader) (*Keybindings, error) {
	var config KeybindingsConfig
	if err := yaml.NewDecoder(r).Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("keys: decode keybindings: %w", err)
	}
	for action, ids := range config {
		for _, id := range ids {
			if _, ok := parseKeyID(id); !ok {
				return nil, fmt.Errorf("keys: action %q: invalid key %q", action, id)
			}
		}
	}
	return NewKeybindings(config), nil
}

// Matches reports whether data is one of the keys bound to action.
func (kb *Keybindings) Matches(data string, action Action) bool {
	for _, id := range kb.actionToKeys[action] {
		if MatchesKey(data, id) {
			return true
		}
	}
	return false
}

// Keys returns the key identifiers bound to action.
func (kb *Keybindings) Keys(action Action) []string {
	return slices.Clone(kb.actionToKeys[action])
}

var (
	defaultMu sync.RWMutex
	defaultKB = NewKeybindings(nil)
)

// Default returns the process-wide bindings used by components that were not
// given their own.
func Default() *Keybindings {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultKB
}

// SetDefault replaces the process-wide bindings.
func SetDefault(kb *Keybindings) {
	if kb == nil {
		kb = NewKeybindings(nil)
	}
	defaultMu.Lock()
	defaultKB = kb
	defaultMu.Unlock()
}
