package keys

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var kittyKeyNames = map[int]string{
	CodepointEscape:    "escape",
	CodepointTab:       "tab",
	CodepointEnter:     "enter",
	CodepointKPEnter:   "enter",
	CodepointSpace:     "space",
	CodepointBackspace: "backspace",
	CodepointDelete:    "delete",
	CodepointInsert:    "insert",
	CodepointHome:      "home",
	CodepointEnd:       "end",
	CodepointPageUp:    "pageup",
	CodepointPageDown:  "pagedown",
	CodepointUp:        "up",
	CodepointDown:      "down",
	CodepointLeft:      "left",
	CodepointRight:     "right",
}

// literalKeyIDs holds fixed single sequences outside the named key tables.
var literalKeyIDs = map[string]string{
	"\x1b":     "escape",
	"\x1c":     "ctrl+\\",
	"\x1d":     "ctrl+]",
	"\x1f":     "ctrl+-",
	"\x1b\x1b": "ctrl+alt+[",
	"\x1b\x1c": "ctrl+alt+\\",
	"\x1b\x1d": "ctrl+alt+]",
	"\x1b\x1f": "ctrl+alt+-",
	"\t":       "tab",
	"\r":       "enter",
	"\x1bOM":   "enter",
	"\x00":     "ctrl+space",
	" ":        "space",
	"\x7f":     "backspace",
	"\b":       "backspace",
	"\x1b[Z":   "shift+tab",
	"\x1b\x7f": "alt+backspace",
	"\x1b\b":   "alt+backspace",
}

// ParseKey returns the canonical key identifier for a single input
// sequence, such as "shift+enter", "ctrl+c" or "a". Modifiers are listed in
// the order shift, ctrl, alt. It returns "" for unrecognized input and for
// Kitty release events.
func ParseKey(data string) string {
	if seq, ok := ParseKittySequence(data); ok {
		if seq.EventType == KeyRelease {
			return ""
		}
		if id := kittyKeyID(seq); id != "" {
			return id
		}
	}

	kitty := KittyProtocolActive()
	if kitty && (data == "\x1b\r" || data == "\n") {
		return "shift+enter"
	}
	if id, ok := literalKeyIDs[data]; ok {
		return id
	}
	if id, ok := legacyKeyIDs[data]; ok {
		return id
	}
	if !kitty {
		switch data {
		case "\n":
			return "enter"
		case "\x1b\r":
			return "alt+enter"
		case "\x1b ":
			return "alt+space"
		case "\x1bB":
			return "alt+left"
		case "\x1bF":
			return "alt+right"
		}
		if len(data) == 2 && data[0] == esc {
			c := data[1]
			if c >= 1 && c <= 26 {
				return "ctrl+alt+" + string(rune(c+'a'-1))
			}
			if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
				return "alt+" + string(rune(c))
			}
		}
	}

	if len(data) == 1 {
		c := data[0]
		if c >= 1 && c <= 26 {
			return "ctrl+" + string(rune(c+'a'-1))
		}
		if c >= 'A' && c <= 'Z' {
			return "shift+" + strings.ToLower(data)
		}
	}
	if IsPrintable(data) {
		return data
	}
	return ""
}

func kittyKeyID(seq KittySequence) string {
	cp := seq.effectiveCodepoint()
	name, ok := kittyKeyNames[cp]
	if !ok {
		if cp < 0x20 || !unicode.IsPrint(rune(cp)) {
			return ""
		}
		name = string(rune(cp))
	}

	mod := seq.Modifier &^ LockMask
	var mods []string
	if mod&ModifierShift != 0 {
		mods = append(mods, "shift")
	}
	if mod&ModifierCtrl != 0 {
		mods = append(mods, "ctrl")
	}
	if mod&ModifierAlt != 0 {
		mods = append(mods, "alt")
	}
	if len(mods) == 0 {
		return name
	}
	return strings.Join(mods, "+") + "+" + name
}

// IsPrintable reports whether data is a single printable character: one
// rune, not a control character and not DEL.
func IsPrintable(data string) bool {
	r, size := utf8.DecodeRuneInString(data)
	if size == 0 || size != len(data) || r == utf8.RuneError {
		return false
	}
	return r >= 0x20 && r != 0x7f
}
