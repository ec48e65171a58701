package components

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"

	"github.com/yeeaiclub/linetui"
	"github.com/yeeaiclub/linetui/keys"
)

type SelectItem struct {
	Value       string
	Label       string
	Description string
}

func (item SelectItem) text() string {
	if item.Label != "" {
		return item.Label
	}
	return item.Value
}

type SelectListTheme struct {
	SelectedPrefix string
	NormalPrefix   string
	SelectedText   func(string) string
	Description    func(string) string
	ScrollInfo     func(string) string
	NoMatch        func(string) string
}

func identity(s string) string { return s }

func DefaultSelectListTheme() SelectListTheme {
	return SelectListTheme{
		SelectedPrefix: "→ ",
		NormalPrefix:   "  ",
		SelectedText:   func(s string) string { return "\x1b[1m" + s + "\x1b[22m" },
		Description:    func(s string) string { return "\x1b[2m" + s + "\x1b[22m" },
		ScrollInfo:     func(s string) string { return "\x1b[2m" + s + "\x1b[22m" },
		NoMatch:        identity,
	}
}

// SelectList is a scrolling list with fuzzy filtering. Typed characters
// narrow the list; the bound select actions move and confirm.
type SelectList struct {
	items         []SelectItem
	filteredItems []SelectItem
	filter        []rune
	selectedIndex int
	maxVisible    int
	theme         SelectListTheme
	keybindings   *keys.Keybindings
	focused       bool

	onSelect          func(item SelectItem)
	onCancel          func()
	onSelectionChange func(item SelectItem)
}

func NewSelectList(items []SelectItem, maxVisible int, theme SelectListTheme) *SelectList {
	if maxVisible <= 0 {
		maxVisible = 5
	}
	defaults := DefaultSelectListTheme()
	if theme.SelectedText == nil {
		theme.SelectedText = defaults.SelectedText
	}
	if theme.Description == nil {
		theme.Description = defaults.Description
	}
	if theme.ScrollInfo == nil {
		theme.ScrollInfo = defaults.ScrollInfo
	}
	if theme.NoMatch == nil {
		theme.NoMatch = defaults.NoMatch
	}
	if theme.SelectedPrefix == "" && theme.NormalPrefix == "" {
		theme.SelectedPrefix, theme.NormalPrefix = defaults.SelectedPrefix, defaults.NormalPrefix
	}
	return &SelectList{
		items:         items,
		filteredItems: items,
		maxVisible:    maxVisible,
		theme:         theme,
	}
}

func (s *SelectList) SetKeybindings(kb *keys.Keybindings) {
	s.keybindings = kb
}

func (s *SelectList) SetOnSelect(fn func(item SelectItem)) {
	s.onSelect = fn
}

func (s *SelectList) SetOnCancel(fn func()) {
	s.onCancel = fn
}

func (s *SelectList) SetOnSelectionChange(fn func(item SelectItem)) {
	s.onSelectionChange = fn
}

func (s *SelectList) SetItems(items []SelectItem) {
	s.items = items
	s.applyFilter()
}

// SetFilter narrows the list to the items fuzzily matching query and
// selects the best match.
func (s *SelectList) SetFilter(query string) {
	s.filter = []rune(query)
	s.applyFilter()
}

func (s *SelectList) Filter() string {
	return string(s.filter)
}

func (s *SelectList) applyFilter() {
	s.filteredItems = FuzzyFilter(s.items, string(s.filter), SelectItem.text)
	s.selectedIndex = 0
	s.notifySelection()
}

func (s *SelectList) SetSelectedIndex(index int) {
	if len(s.filteredItems) == 0 {
		return
	}
	s.selectedIndex = max(0, min(index, len(s.filteredItems)-1))
	s.notifySelection()
}

// SelectedItem returns the highlighted item, if any item matches.
func (s *SelectList) SelectedItem() (SelectItem, bool) {
	if s.selectedIndex < 0 || s.selectedIndex >= len(s.filteredItems) {
		return SelectItem{}, false
	}
	return s.filteredItems[s.selectedIndex], true
}

func (s *SelectList) Render(width int) []string {
	var lines []string

	if len(s.filteredItems) == 0 {
		lines = append(lines, s.theme.NoMatch(ansi.Truncate("  No matching commands", width, "…")))
		return lines
	}

	startIndex := max(0, min(s.selectedIndex-s.maxVisible/2, len(s.filteredItems)-s.maxVisible))
	endIndex := min(startIndex+s.maxVisible, len(s.filteredItems))

	for i := startIndex; i < endIndex; i++ {
		lines = append(lines, s.renderItem(s.filteredItems[i], i == s.selectedIndex, width))
	}

	if len(s.filteredItems) > s.maxVisible {
		info := fmt.Sprintf("  (%d/%d)", s.selectedIndex+1, len(s.filteredItems))
		lines = append(lines, s.theme.ScrollInfo(ansi.Truncate(info, width, "")))
	}
	return lines
}

func (s *SelectList) renderItem(item SelectItem, selected bool, width int) string {
	prefix := s.theme.NormalPrefix
	label := item.text()
	if selected {
		prefix = s.theme.SelectedPrefix
		label = s.theme.SelectedText(label)
	}
	line := prefix + label
	if item.Description != "" {
		used := linetui.VisibleWidth(line)
		// Descriptions only show when there is room for a few columns.
		if room := width - used - 2; room > 8 {
			line += "  " + s.theme.Description(ansi.Truncate(item.Description, room, "…"))
		}
	}
	return ansi.Truncate(line, width, "…")
}

func (s *SelectList) bindings() *keys.Keybindings {
	if s.keybindings != nil {
		return s.keybindings
	}
	return keys.Default()
}

func (s *SelectList) HandleInput(data string) {
	kb := s.bindings()
	switch {
	case kb.Matches(data, keys.ActionSelectUp):
		s.move(-1)
	case kb.Matches(data, keys.ActionSelectDown):
		s.move(1)
	case kb.Matches(data, keys.ActionSelectPageUp):
		s.SetSelectedIndex(s.selectedIndex - s.maxVisible)
	case kb.Matches(data, keys.ActionSelectPageDown):
		s.SetSelectedIndex(s.selectedIndex + s.maxVisible)
	case kb.Matches(data, keys.ActionSelectConfirm):
		if item, ok := s.SelectedItem(); ok && s.onSelect != nil {
			s.onSelect(item)
		}
	case kb.Matches(data, keys.ActionSelectCancel):
		if s.onCancel != nil {
			s.onCancel()
		}
	case kb.Matches(data, keys.ActionDeleteCharBackward):
		if len(s.filter) > 0 {
			s.filter = s.filter[:len(s.filter)-1]
			s.applyFilter()
		}
	default:
		if keys.IsPrintable(data) {
			s.filter = append(s.filter, []rune(data)...)
			s.applyFilter()
		}
	}
}

// move changes the selection by delta, wrapping around at either end.
func (s *SelectList) move(delta int) {
	n := len(s.filteredItems)
	if n == 0 {
		return
	}
	s.selectedIndex = ((s.selectedIndex+delta)%n + n) % n
	s.notifySelection()
}

func (s *SelectList) notifySelection() {
	if s.onSelectionChange == nil {
		return
	}
	if item, ok := s.SelectedItem(); ok {
		s.onSelectionChange(item)
	}
}

func (s *SelectList) SetFocused(focused bool) {
	s.focused = focused
}

func (s *SelectList) IsFocused() bool {
	return s.focused
}

func (s *SelectList) Invalidate() {}
