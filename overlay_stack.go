package linetui

import "slices"

// OverlayEntry is a snapshot of one stacked overlay.
type OverlayEntry struct {
	Component Component
	Options   OverlayOptions
}

type overlaySlot struct {
	component Component
	options   OverlayOptions
	hidden    bool
	live      bool
	gen       uint32
}

// OverlayStack keeps modal components layered above the base tree. Entries
// live in an arena of slots; the stack order is the z-order, later entries
// drawing on top.
type OverlayStack struct {
	slots    []overlaySlot
	free     []int
	order    []int
	onChange func()
}

func NewOverlayStack() *OverlayStack {
	return &OverlayStack{}
}

// OverlayHandle refers to one entry of an OverlayStack. Handles are plain
// values: they stay valid while other entries come and go, compare equal
// only for the same entry, and become inert once the entry is removed.
type OverlayHandle struct {
	stack *OverlayStack
	slot  int
	gen   uint32
}

// OnChange registers fn to be called after every mutation of the stack.
func (s *OverlayStack) OnChange(fn func()) {
	s.onChange = fn
}

func (s *OverlayStack) changed() {
	if s.onChange != nil {
		s.onChange()
	}
}

// Show pushes component on top of the stack.
func (s *OverlayStack) Show(component Component, options OverlayOptions) OverlayHandle {
	var idx int
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.slots = append(s.slots, overlaySlot{})
		idx = len(s.slots) - 1
	}
	slot := &s.slots[idx]
	slot.component = component
	slot.options = options
	slot.hidden = false
	slot.live = true
	s.order = append(s.order, idx)
	s.changed()
	return OverlayHandle{stack: s, slot: idx, gen: slot.gen}
}

func (s *OverlayStack) release(idx int) {
	if i := slices.Index(s.order, idx); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
	slot := &s.slots[idx]
	*slot = overlaySlot{gen: slot.gen + 1}
	s.free = append(s.free, idx)
}

// HideTop removes the most recently pushed entry, hidden or not, and
// returns its component.
func (s *OverlayStack) HideTop() (Component, bool) {
	if len(s.order) == 0 {
		return nil, false
	}
	idx := s.order[len(s.order)-1]
	component := s.slots[idx].component
	s.release(idx)
	s.changed()
	return component, true
}

// Visible returns the non-hidden entries from bottom to top.
func (s *OverlayStack) Visible() []OverlayEntry {
	var entries []OverlayEntry
	for _, idx := range s.order {
		slot := &s.slots[idx]
		if !slot.hidden {
			entries = append(entries, OverlayEntry{Component: slot.component, Options: slot.options})
		}
	}
	return entries
}

// HasVisible reports whether at least one entry is not hidden.
func (s *OverlayStack) HasVisible() bool {
	return s.TopComponent() != nil
}

// TopComponent returns the topmost non-hidden component, or nil. It is the
// component that receives input while any overlay is visible.
func (s *OverlayStack) TopComponent() Component {
	for i := len(s.order) - 1; i >= 0; i-- {
		slot := &s.slots[s.order[i]]
		if !slot.hidden {
			return slot.component
		}
	}
	return nil
}

// Len returns the number of stacked entries, hidden ones included.
func (s *OverlayStack) Len() int {
	return len(s.order)
}

// Clear removes every entry. Outstanding handles become inert.
func (s *OverlayStack) Clear() {
	if len(s.order) == 0 {
		return
	}
	for len(s.order) > 0 {
		s.release(s.order[len(s.order)-1])
	}
	s.changed()
}

func (h OverlayHandle) lookup() *overlaySlot {
	if h.stack == nil || h.slot < 0 || h.slot >= len(h.stack.slots) {
		return nil
	}
	slot := &h.stack.slots[h.slot]
	if !slot.live || slot.gen != h.gen {
		return nil
	}
	return slot
}

// Valid reports whether the entry is still on the stack.
func (h OverlayHandle) Valid() bool {
	return h.lookup() != nil
}

// Component returns the overlay's component, or nil once removed.
func (h OverlayHandle) Component() Component {
	if slot := h.lookup(); slot != nil {
		return slot.component
	}
	return nil
}

// Hide removes the entry from the stack. Calling it again is a no-op.
func (h OverlayHandle) Hide() {
	if h.lookup() == nil {
		return
	}
	h.stack.release(h.slot)
	h.stack.changed()
}

// SetHidden toggles visibility without removing the entry, keeping its
// place in the stack and its component state.
func (h OverlayHandle) SetHidden(hidden bool) {
	slot := h.lookup()
	if slot == nil || slot.hidden == hidden {
		return
	}
	slot.hidden = hidden
	h.stack.changed()
}

// IsHidden reports whether the entry is hidden. Removed entries report true.
func (h OverlayHandle) IsHidden() bool {
	slot := h.lookup()
	return slot == nil || slot.hidden
}
