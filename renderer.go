package linetui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

type cursorVisibility int8

const (
	cursorUnknown cursorVisibility = iota
	cursorHidden
	cursorShown
)

// Renderer turns the root component into terminal output. Lines the root
// reports as committed are written once and left in scrollback; the
// remaining active lines are erased and redrawn in full on every frame.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	terminal Terminal
	root     Component
	overlays *OverlayStack

	logger             *slog.Logger
	frameDumpPath      string
	showHardwareCursor bool

	state  renderState
	cursor cursorVisibility
}

// Option configures a Renderer, or the Renderer of a TUI.
type Option func(*options)

type options struct {
	logger             *slog.Logger
	frameDumpPath      string
	showHardwareCursor bool
}

func newOptions(opts []Option) options {
	o := options{
		logger:             slog.New(slog.DiscardHandler),
		showHardwareCursor: true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger used for frame and input diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithFrameDump writes a text dump of every rendered frame to path,
// replacing the previous one.
func WithFrameDump(path string) Option {
	return func(o *options) {
		o.frameDumpPath = path
	}
}

// WithShowHardwareCursor controls whether the hardware cursor is made
// visible at the cursor marker. When disabled the cursor is still moved
// there, for IME placement, but kept hidden.
func WithShowHardwareCursor(show bool) Option {
	return func(o *options) {
		o.showHardwareCursor = show
	}
}

// NewRenderer creates a renderer drawing root, with the entries of overlays
// composited on top. overlays may be nil.
func NewRenderer(terminal Terminal, root Component, overlays *OverlayStack, opts ...Option) *Renderer {
	o := newOptions(opts)
	return &Renderer{
		terminal:           terminal,
		root:               root,
		overlays:           overlays,
		logger:             o.logger,
		frameDumpPath:      o.frameDumpPath,
		showHardwareCursor: o.showHardwareCursor,
	}
}

// FlushedLines returns how many root lines have been committed to scrollback.
func (r *Renderer) FlushedLines() int {
	return r.state.flushed
}

// Render draws one frame. The whole frame goes out in a single synchronized
// write. ErrMultipleCursorMarkers is returned after a frame was written with
// more than one cursor marker; any other error means nothing was drawn.
func (r *Renderer) Render() error {
	width := max(1, r.terminal.Columns())
	height := max(1, r.terminal.Rows())

	all := r.root.Render(width)
	reported := committedCount(r.root, width)
	split := min(max(reported, r.state.flushed), len(all))
	if reported > len(all) {
		r.logger.Warn("committed line count exceeds frame", "reported", reported, "lines", len(all))
	}

	committed := all[min(r.state.flushed, split):split]
	active := all[split:]
	if r.overlays != nil {
		active = compositeOverlays(active, r.overlays.Visible(), width)
	}

	active, cursor, markerErr := extractCursor(active)
	if markerErr != nil {
		r.logger.Warn("multiple cursor markers in frame", "width", width)
	}
	if len(active) == 0 {
		active = []string{""}
	}

	active, cursor = fitViewport(active, cursor, width, height)

	var buf renderBuffer
	if r.state.drawn {
		buf.CarriageReturn()
		buf.MoveUp(r.state.parkedRow(width))
		buf.EraseDown()
	}
	for _, line := range committed {
		buf.Line(strings.ReplaceAll(line, CursorMarker, ""))
		buf.NewLine()
	}
	for i, line := range active {
		if i > 0 {
			buf.NewLine()
		}
		buf.Line(line)
	}
	if cursor.ok {
		row, col := cursorCell(active, cursor, width)
		buf.CarriageReturn()
		buf.MoveUp(totalRows(active, width) - 1 - row)
		buf.MoveRight(col)
	}

	visible := cursor.ok && r.showHardwareCursor
	if !visible {
		r.setCursorVisible(false)
	}
	if err := r.terminal.WriteSynchronized(buf.String()); err != nil {
		r.logger.Error("frame write failed", "error", err)
		return fmt.Errorf("linetui: write frame: %w", err)
	}
	if visible {
		r.setCursorVisible(true)
	}

	r.state.update(split, active, cursor)
	r.logger.Debug("frame rendered",
		"width", width,
		"lines", len(all),
		"committed", split,
		"newly_committed", len(committed),
		"active", len(active),
		"cursor", cursor.ok,
	)
	r.dumpFrame(all, width, split)
	return markerErr
}

// fitViewport drops leading active lines until the region fits in height
// terminal rows. The last line is always kept. A cursor on a dropped line is
// suppressed.
func fitViewport(lines []string, cursor cursorPos, width, height int) ([]string, cursorPos) {
	rows := totalRows(lines, width)
	drop := 0
	for rows > height && drop < len(lines)-1 {
		rows -= lineRows(lines[drop], width)
		drop++
	}
	if drop == 0 {
		return lines, cursor
	}
	if cursor.ok {
		if cursor.row < drop {
			cursor = cursorPos{}
		} else {
			cursor.row -= drop
		}
	}
	return lines[drop:], cursor
}

func (r *Renderer) setCursorVisible(visible bool) {
	if visible && r.cursor != cursorShown {
		r.terminal.ShowCursor()
		r.cursor = cursorShown
	} else if !visible && r.cursor != cursorHidden {
		r.terminal.HideCursor()
		r.cursor = cursorHidden
	}
}

func (r *Renderer) dumpFrame(lines []string, width, committed int) {
	if r.frameDumpPath == "" {
		return
	}
	for i, line := range lines {
		if w := VisibleWidth(line); w > width {
			r.logger.Warn("rendered line exceeds terminal width", "line", i, "width", w, "columns", width)
		}
	}
	data := formatFrameDump(lines, width, committed, time.Now())
	if err := writeFrameDump(r.frameDumpPath, data); err != nil {
		r.logger.Warn("frame dump failed", "path", r.frameDumpPath, "error", err)
	}
}

// Stop erases the active region, leaving committed lines in scrollback, and
// shows the cursor. Write errors are ignored.
func (r *Renderer) Stop() {
	if r.state.drawn {
		var buf renderBuffer
		buf.CarriageReturn()
		buf.MoveUp(r.state.parkedRow(max(1, r.terminal.Columns())))
		buf.EraseDown()
		if err := r.terminal.WriteSynchronized(buf.String()); err != nil {
			r.logger.Debug("erase on stop failed", "error", err)
		}
	}
	r.terminal.ShowCursor()
	r.cursor = cursorShown
	r.state.clear()
}

