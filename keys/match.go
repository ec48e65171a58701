package keys

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// keyID is a parsed key identifier like "ctrl+shift+a".
type keyID struct {
	key      string
	modifier int
}

func (k keyID) has(mod int) bool {
	return k.modifier == mod
}

func parseKeyID(id string) (keyID, bool) {
	parts := strings.Split(strings.ToLower(id), "+")
	key := parts[len(parts)-1]
	if key == "" {
		// "ctrl++" binds the plus key.
		if len(parts) >= 2 && parts[len(parts)-2] == "" {
			key = "+"
			parts = parts[:len(parts)-1]
		} else {
			return keyID{}, false
		}
	}
	var k keyID
	k.key = key
	for _, p := range parts[:len(parts)-1] {
		switch p {
		case "shift":
			k.modifier |= ModifierShift
		case "alt", "meta", "option":
			k.modifier |= ModifierAlt
		case "ctrl", "control":
			k.modifier |= ModifierCtrl
		case "":
		default:
			return keyID{}, false
		}
	}
	switch k.key {
	case "esc":
		k.key = "escape"
	case "return":
		k.key = "enter"
	case "pgup":
		k.key = "pageup"
	case "pgdown":
		k.key = "pagedown"
	}
	return k, true
}

var namedCodepoints = map[string]int{
	"up":       CodepointUp,
	"down":     CodepointDown,
	"left":     CodepointLeft,
	"right":    CodepointRight,
	"home":     CodepointHome,
	"end":      CodepointEnd,
	"insert":   CodepointInsert,
	"delete":   CodepointDelete,
	"pageup":   CodepointPageUp,
	"pagedown": CodepointPageDown,
}

// MatchesKey reports whether the input sequence data is the key described
// by id, e.g. "enter", "ctrl+c", "shift+tab" or "alt+left". Modifiers
// must match exactly. Kitty release events never match.
func MatchesKey(data, id string) bool {
	k, ok := parseKeyID(id)
	if !ok {
		return false
	}
	kitty := KittyProtocolActive()
	mod := k.modifier

	switch k.key {
	case "escape":
		if mod != 0 {
			return matchesKitty(data, CodepointEscape, mod)
		}
		return data == "\x1b" || matchesKitty(data, CodepointEscape, 0)

	case "space":
		if !kitty {
			if k.has(ModifierCtrl) && data == "\x00" {
				return true
			}
			if k.has(ModifierAlt) && data == "\x1b " {
				return true
			}
		}
		if mod == 0 {
			return data == " " || matchesKitty(data, CodepointSpace, 0)
		}
		return matchesKitty(data, CodepointSpace, mod)

	case "tab":
		if k.has(ModifierShift) {
			return data == "\x1b[Z" || matchesKitty(data, CodepointTab, ModifierShift)
		}
		if mod == 0 {
			return data == "\t" || matchesKitty(data, CodepointTab, 0)
		}
		return matchesKitty(data, CodepointTab, mod)

	case "enter":
		if matchesKitty(data, CodepointEnter, mod) || matchesKitty(data, CodepointKPEnter, mod) {
			return true
		}
		switch {
		case k.has(ModifierShift):
			if matchesModifyOtherKeys(data, CodepointEnter, ModifierShift) {
				return true
			}
			return kitty && (data == "\x1b\r" || data == "\n")
		case k.has(ModifierAlt):
			if matchesModifyOtherKeys(data, CodepointEnter, ModifierAlt) {
				return true
			}
			return !kitty && data == "\x1b\r"
		case mod == 0:
			return data == "\r" || (!kitty && data == "\n") || data == "\x1bOM"
		}
		return false

	case "backspace":
		if k.has(ModifierAlt) && (data == "\x1b\x7f" || data == "\x1b\b") {
			return true
		}
		if mod == 0 && (data == "\x7f" || data == "\b") {
			return true
		}
		return matchesKitty(data, CodepointBackspace, mod)

	case "clear":
		if mod == 0 {
			return matchesAny(data, legacySequences["clear"])
		}
		return matchesLegacyModified(data, "clear", mod)

	case "f1", "f2", "f3", "f4", "f5", "f6", "f7", "f8", "f9", "f10", "f11", "f12":
		return mod == 0 && matchesAny(data, legacySequences[k.key])
	}

	if cp, ok := namedCodepoints[k.key]; ok {
		return matchesNamed(data, k.key, cp, mod, kitty)
	}

	// Any other single printable rune is a character key.
	if IsPrintable(k.key) {
		return matchesCharacter(data, k, kitty)
	}
	return false
}

func matchesNamed(data, key string, codepoint, mod int, kitty bool) bool {
	if mod == 0 {
		if matchesAny(data, legacySequences[key]) {
			return true
		}
		return matchesKitty(data, codepoint, 0)
	}
	if matchesLegacyModified(data, key, mod) {
		return true
	}
	if mod == ModifierAlt && !kitty {
		switch {
		case key == "left" && data == "\x1bB":
			return true
		case key == "right" && data == "\x1bF":
			return true
		}
	}
	return matchesKitty(data, codepoint, mod)
}

func matchesCharacter(data string, k keyID, kitty bool) bool {
	key := k.key
	r, _ := utf8.DecodeRuneInString(key)
	rawCtrl := rawCtrlChar(key)

	switch k.modifier {
	case ModifierCtrl | ModifierAlt:
		if !kitty && rawCtrl != "" && data == "\x1b"+rawCtrl {
			return true
		}
	case ModifierAlt:
		if !kitty && data == "\x1b"+key {
			return true
		}
	case ModifierCtrl:
		if rawCtrl != "" && data == rawCtrl {
			return true
		}
	case ModifierShift:
		if upper := string(unicode.ToUpper(r)); upper != key && data == upper {
			return true
		}
	case 0:
		if data == key {
			return true
		}
	}
	return matchesKitty(data, int(r), k.modifier)
}
