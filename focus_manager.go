package linetui

// focusManager holds the explicit focus token and keeps the Focusable flags
// of the components in sync with it.
type focusManager struct {
	focused Component
}

// SetFocus moves focus to component, which may be nil. It reports whether
// focus changed.
func (fm *focusManager) SetFocus(component Component) bool {
	if fm.focused == component {
		return false
	}
	if f, ok := fm.focused.(Focusable); ok {
		f.SetFocused(false)
	}
	fm.focused = component
	if f, ok := component.(Focusable); ok {
		f.SetFocused(true)
	}
	return true
}

func (fm *focusManager) Focused() Component {
	return fm.focused
}
