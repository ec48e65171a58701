package linetui

import (
	"strconv"
	"strings"
)

type sgrAttr uint16

const (
	attrBold sgrAttr = 1 << iota
	attrDim
	attrItalic
	attrUnderline
	attrBlink
	attrInverse
	attrHidden
	attrStrikethrough
)

// attrCodes maps each attribute to the SGR parameter that enables it, in
// emission order.
var attrCodes = []struct {
	attr sgrAttr
	code string
}{
	{attrBold, "1"},
	{attrDim, "2"},
	{attrItalic, "3"},
	{attrUnderline, "4"},
	{attrBlink, "5"},
	{attrInverse, "7"},
	{attrHidden, "8"},
	{attrStrikethrough, "9"},
}

// sgrState follows SGR sequences so the style in effect at any column can be
// re-opened after a splice.
type sgrState struct {
	attrs sgrAttr
	fg    string
	bg    string
}

func (s *sgrState) reset() {
	*s = sgrState{}
}

// apply updates the state from one escape sequence. Anything other than an
// SGR sequence is ignored.
func (s *sgrState) apply(code string) {
	if len(code) < 3 || code[1] != '[' || code[len(code)-1] != 'm' {
		return
	}
	params := code[2 : len(code)-1]
	if params == "" {
		s.reset()
		return
	}
	parts := strings.Split(params, ";")
	for i := 0; i < len(parts); i++ {
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			continue
		}
		if n == 38 || n == 48 {
			var color string
			switch {
			case i+2 < len(parts) && parts[i+1] == "5":
				color = strings.Join(parts[i:i+3], ";")
				i += 2
			case i+4 < len(parts) && parts[i+1] == "2":
				color = strings.Join(parts[i:i+5], ";")
				i += 4
			default:
				continue
			}
			if n == 38 {
				s.fg = color
			} else {
				s.bg = color
			}
			continue
		}
		switch {
		case n == 0:
			s.reset()
		case n >= 1 && n <= 9 && n != 6:
			for _, ac := range attrCodes {
				if ac.code == parts[i] {
					s.attrs |= ac.attr
				}
			}
		case n == 21 || n == 22:
			s.attrs &^= attrBold
			if n == 22 {
				s.attrs &^= attrDim
			}
		case n == 23:
			s.attrs &^= attrItalic
		case n == 24:
			s.attrs &^= attrUnderline
		case n == 25:
			s.attrs &^= attrBlink
		case n == 27:
			s.attrs &^= attrInverse
		case n == 28:
			s.attrs &^= attrHidden
		case n == 29:
			s.attrs &^= attrStrikethrough
		case n == 39:
			s.fg = ""
		case n == 49:
			s.bg = ""
		case (n >= 30 && n <= 37) || (n >= 90 && n <= 97):
			s.fg = parts[i]
		case (n >= 40 && n <= 47) || (n >= 100 && n <= 107):
			s.bg = parts[i]
		}
	}
}

func (s *sgrState) active() bool {
	return s.attrs != 0 || s.fg != "" || s.bg != ""
}

// sequence returns one SGR sequence re-establishing the state, or "" when
// nothing is set.
func (s *sgrState) sequence() string {
	if !s.active() {
		return ""
	}
	codes := make([]string, 0, len(attrCodes)+2)
	for _, ac := range attrCodes {
		if s.attrs&ac.attr != 0 {
			codes = append(codes, ac.code)
		}
	}
	if s.fg != "" {
		codes = append(codes, s.fg)
	}
	if s.bg != "" {
		codes = append(codes, s.bg)
	}
	return "\x1b[" + strings.Join(codes, ";") + "m"
}
