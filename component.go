package linetui

// Component is the unit of composition. Render returns the lines the
// component occupies at the given viewport width; the result must be
// recomputed whenever width changes.
type Component interface {
	Render(width int) []string

	// Invalidate drops any cached render state, e.g. after a theme change.
	Invalidate()
}

// InputHandler is implemented by components that accept keyboard input
// while focused. data is one decoded sequence (or one bracketed paste).
type InputHandler interface {
	HandleInput(data string)
}

// Committer is implemented by components whose leading lines are final.
// CommittedLineCount reports how many leading lines of Render(width) will
// never change again; the renderer flushes them to scrollback once.
type Committer interface {
	CommittedLineCount(width int) int
}

// Focusable components are told when they gain or lose input focus. A
// focused component typically embeds CursorMarker in its output.
type Focusable interface {
	Component
	SetFocused(focused bool)
	IsFocused() bool
}

// KeyReleaseReceiver opts a component into Kitty key release events, which
// are dropped otherwise.
type KeyReleaseReceiver interface {
	WantsKeyRelease() bool
}

func committedCount(c Component, width int) int {
	if cc, ok := c.(Committer); ok {
		return cc.CommittedLineCount(width)
	}
	return 0
}
