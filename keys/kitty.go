package keys

import (
	"regexp"
	"strconv"
	"sync/atomic"
)

var kittyProtocolActive atomic.Bool

// SetKittyProtocolActive records whether the terminal has confirmed Kitty
// keyboard protocol support. Some legacy sequences are ambiguous and are
// decoded differently once the protocol is active.
func SetKittyProtocolActive(active bool) {
	kittyProtocolActive.Store(active)
}

func KittyProtocolActive() bool {
	return kittyProtocolActive.Load()
}

type KeyEventType int

const (
	KeyPress KeyEventType = iota + 1
	KeyRepeat
	KeyRelease
)

func (e KeyEventType) String() string {
	switch e {
	case KeyRepeat:
		return "repeat"
	case KeyRelease:
		return "release"
	default:
		return "press"
	}
}

// Modifier bits, in the 0-based form (wire value minus one).
const (
	ModifierShift = 1
	ModifierAlt   = 2
	ModifierCtrl  = 4

	// LockMask covers caps lock and num lock, which never affect matching.
	LockMask = 64 + 128
)

const (
	CodepointEscape    = 27
	CodepointTab       = 9
	CodepointEnter     = 13
	CodepointSpace     = 32
	CodepointBackspace = 127
	CodepointKPEnter   = 57414
)

// Keys without a Unicode codepoint use negative pseudo codepoints.
const (
	CodepointUp    = -1
	CodepointDown  = -2
	CodepointRight = -3
	CodepointLeft  = -4

	CodepointDelete   = -10
	CodepointInsert   = -11
	CodepointPageUp   = -12
	CodepointPageDown = -13
	CodepointHome     = -14
	CodepointEnd      = -15
)

// KittySequence is a decoded Kitty keyboard protocol sequence. ShiftedKey
// and BaseLayoutKey are zero when absent.
type KittySequence struct {
	Codepoint     int
	ShiftedKey    int
	BaseLayoutKey int
	Modifier      int
	EventType     KeyEventType
}

var (
	kittyCSIu      = regexp.MustCompile(`^\x1b\[(\d+)(?::(\d*))?(?::(\d+))?(?:;(\d+))?(?::(\d+))?u$`)
	kittyArrow     = regexp.MustCompile(`^\x1b\[1;(\d+)(?::(\d+))?([ABCDHF])$`)
	kittyFunc      = regexp.MustCompile(`^\x1b\[(\d+)(?:;(\d+))?(?::(\d+))?~$`)
	modifyOtherKey = regexp.MustCompile(`^\x1b\[27;(\d+);(\d+)~$`)
)

var arrowCodepoints = map[byte]int{
	'A': CodepointUp,
	'B': CodepointDown,
	'C': CodepointRight,
	'D': CodepointLeft,
	'H': CodepointHome,
	'F': CodepointEnd,
}

var functionalCodepoints = map[int]int{
	2: CodepointInsert,
	3: CodepointDelete,
	5: CodepointPageUp,
	6: CodepointPageDown,
	7: CodepointHome,
	8: CodepointEnd,
}

func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func parseEventType(s string) KeyEventType {
	switch atoiOr(s, 1) {
	case 2:
		return KeyRepeat
	case 3:
		return KeyRelease
	default:
		return KeyPress
	}
}

// ParseKittySequence decodes the CSI u form
// (ESC [ code[:shifted[:base]] [;mods[:event]] u) as well as the
// ESC [ 1;mods[:event] {A,B,C,D,H,F} and ESC [ n[;mods[:event]] ~ forms.
// The modifier is returned 0-based. It reports false for anything else.
func ParseKittySequence(data string) (KittySequence, bool) {
	if m := kittyCSIu.FindStringSubmatch(data); m != nil {
		return KittySequence{
			Codepoint:     atoiOr(m[1], 0),
			ShiftedKey:    atoiOr(m[2], 0),
			BaseLayoutKey: atoiOr(m[3], 0),
			Modifier:      atoiOr(m[4], 1) - 1,
			EventType:     parseEventType(m[5]),
		}, true
	}
	if m := kittyArrow.FindStringSubmatch(data); m != nil {
		return KittySequence{
			Codepoint: arrowCodepoints[m[3][0]],
			Modifier:  atoiOr(m[1], 1) - 1,
			EventType: parseEventType(m[2]),
		}, true
	}
	if m := kittyFunc.FindStringSubmatch(data); m != nil {
		if cp, ok := functionalCodepoints[atoiOr(m[1], 0)]; ok {
			return KittySequence{
				Codepoint: cp,
				Modifier:  atoiOr(m[2], 1) - 1,
				EventType: parseEventType(m[3]),
			}, true
		}
	}
	return KittySequence{}, false
}

// IsKeyRelease reports whether data is a Kitty key release event.
func IsKeyRelease(data string) bool {
	seq, ok := ParseKittySequence(data)
	return ok && seq.EventType == KeyRelease
}

// IsKeyRepeat reports whether data is a Kitty key repeat event.
func IsKeyRepeat(data string) bool {
	seq, ok := ParseKittySequence(data)
	return ok && seq.EventType == KeyRepeat
}

func isLatinLetter(cp int) bool {
	return cp >= 'a' && cp <= 'z'
}

// effectiveCodepoint prefers the base-layout key for characters outside the
// Latin letters and known symbols, so shortcuts work on non-Latin layouts.
func (k KittySequence) effectiveCodepoint() int {
	if k.BaseLayoutKey != 0 && !isLatinLetter(k.Codepoint) && !symbolKeys[rune(k.Codepoint)] {
		return k.BaseLayoutKey
	}
	return k.Codepoint
}

// matchesKitty reports whether data is a Kitty press or repeat of codepoint
// with exactly the given modifiers.
func matchesKitty(data string, codepoint, modifier int) bool {
	seq, ok := ParseKittySequence(data)
	if !ok || seq.EventType == KeyRelease {
		return false
	}
	if seq.Modifier&^LockMask != modifier&^LockMask {
		return false
	}
	return seq.Codepoint == codepoint || seq.effectiveCodepoint() == codepoint
}

// matchesModifyOtherKeys matches xterm's ESC [ 27;mods;code ~ form.
func matchesModifyOtherKeys(data string, keycode, modifier int) bool {
	m := modifyOtherKey.FindStringSubmatch(data)
	if m == nil {
		return false
	}
	return atoiOr(m[2], -1) == keycode && atoiOr(m[1], 1)-1 == modifier
}
