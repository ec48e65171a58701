package components

import (
	"strings"
	"unicode"

	"github.com/yeeaiclub/linetui"
	"github.com/yeeaiclub/linetui/keys"
)

const defaultPrompt = "> "

// Input is a single-line text field. The value is edited as runes and
// scrolled horizontally by display width when it does not fit.
type Input struct {
	prompt      string
	value       []rune
	cursor      int // rune index into value
	scroll      int // first visible rune
	killed      string
	focused     bool
	keybindings *keys.Keybindings

	onSubmit func(string)
	onEscape func()
	onChange func(string)
}

func NewInput() *Input {
	return &Input{prompt: defaultPrompt}
}

func (i *Input) SetPrompt(prompt string) {
	i.prompt = prompt
}

// SetKeybindings overrides the process-wide bindings for this input.
func (i *Input) SetKeybindings(kb *keys.Keybindings) {
	i.keybindings = kb
}

func (i *Input) bindings() *keys.Keybindings {
	if i.keybindings != nil {
		return i.keybindings
	}
	return keys.Default()
}

func (i *Input) Value() string {
	return string(i.value)
}

// SetValue replaces the value and moves the cursor to its end.
func (i *Input) SetValue(value string) {
	i.value = []rune(value)
	i.cursor = len(i.value)
	i.scroll = 0
}

// Cursor returns the cursor position in runes.
func (i *Input) Cursor() int {
	return i.cursor
}

func (i *Input) SetCursor(pos int) {
	i.cursor = max(0, min(pos, len(i.value)))
}

func (i *Input) Clear() {
	i.SetValue("")
}

func (i *Input) SetOnSubmit(onSubmit func(string)) {
	i.onSubmit = onSubmit
}

func (i *Input) SetOnEscape(onEscape func()) {
	i.onEscape = onEscape
}

func (i *Input) SetOnChange(onChange func(string)) {
	i.onChange = onChange
}

func (i *Input) SetFocused(focused bool) {
	i.focused = focused
}

func (i *Input) IsFocused() bool {
	return i.focused
}

func (i *Input) Invalidate() {}

func (i *Input) Render(width int) []string {
	prompt := i.prompt
	promptWidth := linetui.VisibleWidth(prompt)
	if promptWidth >= width {
		return []string{linetui.TruncateToWidth(prompt, width, "…", false)}
	}
	available := width - promptWidth

	start, end := i.window(available)
	var b strings.Builder
	b.WriteString(prompt)
	b.WriteString(string(i.value[start:i.cursor]))
	if i.focused {
		b.WriteString(linetui.CursorMarker)
		atCursor := " "
		if i.cursor < len(i.value) {
			atCursor = string(i.value[i.cursor])
		}
		b.WriteString("\x1b[7m" + atCursor + "\x1b[27m")
		if i.cursor < end {
			b.WriteString(string(i.value[i.cursor+1 : end]))
		}
	} else {
		b.WriteString(string(i.value[i.cursor:end]))
	}
	return []string{linetui.PadToWidth(b.String(), width)}
}

// window returns the visible rune range [start, end). It keeps the cursor
// cell on screen and moves the scroll offset as little as possible.
func (i *Input) window(available int) (start, end int) {
	if i.scroll > i.cursor {
		i.scroll = i.cursor
	}
	cursorCell := 1
	if i.cursor < len(i.value) {
		cursorCell = max(1, linetui.CharWidth(i.value[i.cursor]))
	}
	for i.scroll < i.cursor && runesWidth(i.value[i.scroll:i.cursor])+cursorCell > available {
		i.scroll++
	}

	start = i.scroll
	used := runesWidth(i.value[start:i.cursor])
	end = i.cursor
	for end < len(i.value) {
		w := linetui.CharWidth(i.value[end])
		if used+w > available {
			break
		}
		used += w
		end++
	}
	return start, end
}

func runesWidth(rs []rune) int {
	w := 0
	for _, r := range rs {
		w += linetui.CharWidth(r)
	}
	return w
}

func (i *Input) HandleInput(data string) {
	if strings.HasPrefix(data, keys.PasteStart) {
		content := strings.TrimPrefix(data, keys.PasteStart)
		content = strings.TrimSuffix(content, keys.PasteEnd)
		i.handlePaste(content)
		return
	}

	kb := i.bindings()
	switch {
	case kb.Matches(data, keys.ActionSelectCancel):
		if i.onEscape != nil {
			i.onEscape()
		}
	case kb.Matches(data, keys.ActionSubmit) || data == "\n":
		if i.onSubmit != nil {
			i.onSubmit(i.Value())
		}
	case kb.Matches(data, keys.ActionCursorLeft):
		i.SetCursor(i.cursor - 1)
	case kb.Matches(data, keys.ActionCursorRight):
		i.SetCursor(i.cursor + 1)
	case kb.Matches(data, keys.ActionCursorWordLeft):
		i.cursor = i.wordStart()
	case kb.Matches(data, keys.ActionCursorWordRight):
		i.cursor = i.wordEnd()
	case kb.Matches(data, keys.ActionCursorLineStart):
		i.cursor = 0
	case kb.Matches(data, keys.ActionCursorLineEnd):
		i.cursor = len(i.value)
	case kb.Matches(data, keys.ActionDeleteCharBackward):
		if i.cursor > 0 {
			i.deleteRange(i.cursor-1, i.cursor, false)
		}
	case kb.Matches(data, keys.ActionDeleteCharForward):
		if i.cursor < len(i.value) {
			i.deleteRange(i.cursor, i.cursor+1, false)
		}
	case kb.Matches(data, keys.ActionDeleteWordBackward):
		i.deleteRange(i.wordStart(), i.cursor, true)
	case kb.Matches(data, keys.ActionDeleteWordForward):
		i.deleteRange(i.cursor, i.wordEnd(), true)
	case kb.Matches(data, keys.ActionDeleteToLineStart):
		i.deleteRange(0, i.cursor, true)
	case kb.Matches(data, keys.ActionDeleteToLineEnd):
		i.deleteRange(i.cursor, len(i.value), true)
	case kb.Matches(data, keys.ActionYank):
		i.insert(i.killed)
	default:
		if !hasControlChars(data) {
			i.insert(data)
		}
	}
}

func hasControlChars(data string) bool {
	for _, r := range data {
		if r < 0x20 || r == 0x7f || (r >= 0x80 && r <= 0x9f) {
			return true
		}
	}
	return false
}

func (i *Input) insert(text string) {
	if text == "" {
		return
	}
	rs := []rune(text)
	value := make([]rune, 0, len(i.value)+len(rs))
	value = append(value, i.value[:i.cursor]...)
	value = append(value, rs...)
	value = append(value, i.value[i.cursor:]...)
	i.value = value
	i.cursor += len(rs)
	i.changed()
}

// deleteRange removes value[from:to]. With kill set the removed text
// becomes the yank buffer.
func (i *Input) deleteRange(from, to int, kill bool) {
	if from >= to {
		return
	}
	if kill {
		i.killed = string(i.value[from:to])
	}
	i.value = append(i.value[:from:from], i.value[to:]...)
	i.cursor = from
	i.changed()
}

func (i *Input) changed() {
	if i.onChange != nil {
		i.onChange(i.Value())
	}
}

func (i *Input) wordStart() int {
	pos := i.cursor
	for pos > 0 && unicode.IsSpace(i.value[pos-1]) {
		pos--
	}
	for pos > 0 && !unicode.IsSpace(i.value[pos-1]) {
		pos--
	}
	return pos
}

func (i *Input) wordEnd() int {
	pos := i.cursor
	for pos < len(i.value) && unicode.IsSpace(i.value[pos]) {
		pos++
	}
	for pos < len(i.value) && !unicode.IsSpace(i.value[pos]) {
		pos++
	}
	return pos
}

// handlePaste inserts pasted text with line breaks removed and tabs
// expanded.
func (i *Input) handlePaste(content string) {
	content = strings.NewReplacer("\r\n", "", "\r", "", "\n", "", "\t", "    ").Replace(content)
	if hasControlChars(content) {
		content = strings.Map(func(r rune) rune {
			if r < 0x20 || r == 0x7f {
				return -1
			}
			return r
		}, content)
	}
	i.insert(content)
}
