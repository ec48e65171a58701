package linetui

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// escapeTimeout is how long an incomplete sequence, typically a lone ESC,
// is held before being delivered as is.
const escapeTimeout = 10 * time.Millisecond

// TUI owns a terminal, a root container and an overlay stack, and runs the
// event loop that routes input and renders frames. Everything except
// RequestRender and Dispatch must be called on the loop goroutine, or
// before Run.
type TUI struct {
	terminal Terminal
	root     *Container
	overlays *OverlayStack
	renderer *Renderer
	logger   *slog.Logger

	focus     focusManager
	baseFocus Component
	filter    inputFilter
	stdin     *StdinBuffer
	onKey     func(data string) bool

	renderCh   chan struct{}
	inputCh    chan string
	resizeCh   chan struct{}
	dispatchCh chan func()
	stopCh     chan struct{}

	flushTimer *time.Timer
	inputGen   uint64
	started    bool
}

func NewTUI(terminal Terminal, opts ...Option) *TUI {
	o := newOptions(opts)
	t := &TUI{
		terminal:   terminal,
		root:       NewContainer(),
		overlays:   NewOverlayStack(),
		logger:     o.logger,
		stdin:      NewStdinBuffer(),
		renderCh:   make(chan struct{}, 1),
		inputCh:    make(chan string, 16),
		resizeCh:   make(chan struct{}, 1),
		dispatchCh: make(chan func(), 64),
		stopCh:     make(chan struct{}),
	}
	t.renderer = NewRenderer(terminal, t.root, t.overlays, opts...)
	t.filter = inputFilter{write: terminal.Write, logger: o.logger}
	t.overlays.OnChange(func() {
		t.syncFocus()
		t.RequestRender()
	})
	return t
}

// Root is the container rendered below the overlays.
func (t *TUI) Root() *Container {
	return t.root
}

func (t *TUI) Overlays() *OverlayStack {
	return t.overlays
}

func (t *TUI) Terminal() Terminal {
	return t.terminal
}

// OnKey installs a handler that sees every input sequence before the focused
// component. Returning true consumes the sequence.
func (t *TUI) OnKey(fn func(data string) bool) {
	t.onKey = fn
}

// SetFocus makes component the input target whenever no overlay is visible.
func (t *TUI) SetFocus(component Component) {
	t.baseFocus = component
	t.syncFocus()
}

// Focused returns the component currently receiving input.
func (t *TUI) Focused() Component {
	return t.focus.Focused()
}

func (t *TUI) syncFocus() {
	target := t.overlays.TopComponent()
	if target == nil {
		target = t.baseFocus
	}
	t.focus.SetFocus(target)
}

// ShowOverlay pushes component onto the overlay stack. It takes focus until
// it is hidden or covered by another overlay.
func (t *TUI) ShowOverlay(component Component, options OverlayOptions) OverlayHandle {
	return t.overlays.Show(component, options)
}

// HideOverlay removes the topmost overlay.
func (t *TUI) HideOverlay() {
	t.overlays.HideTop()
}

// Start puts the terminal in raw mode and draws the first frame. A TUI
// cannot be started again after Stop.
func (t *TUI) Start() error {
	if t.started {
		return ErrAlreadyStarted
	}
	select {
	case <-t.stopCh:
		return ErrStopped
	default:
	}
	err := t.terminal.Start(
		func(data string) {
			select {
			case t.inputCh <- data:
			case <-t.stopCh:
			}
		},
		func() {
			select {
			case t.resizeCh <- struct{}{}:
			default:
			}
		},
	)
	if err != nil {
		return err
	}
	t.started = true
	t.syncFocus()
	t.render()
	return nil
}

// Stop erases the active region, leaving committed output in scrollback,
// and restores the terminal.
func (t *TUI) Stop() {
	if !t.started {
		return
	}
	t.started = false
	if t.flushTimer != nil {
		t.flushTimer.Stop()
	}
	t.stdin.Reset()
	t.renderer.Stop()
	close(t.stopCh)
	t.terminal.Stop()
}

// Run starts the TUI and processes events until ctx is cancelled or the
// terminal's input ends. The terminal is restored before Run returns.
func (t *TUI) Run(ctx context.Context) error {
	if err := t.Start(); err != nil {
		return err
	}
	defer t.Stop()

	var inputDone <-chan struct{}
	if d, ok := t.terminal.(interface{ Done() <-chan struct{} }); ok {
		inputDone = d.Done()
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-inputDone:
			return nil
		case data := <-t.inputCh:
			t.processInput(data)
		case <-t.resizeCh:
			t.Invalidate()
			t.render()
		case fn := <-t.dispatchCh:
			fn()
		case <-t.renderCh:
			t.render()
		}
	}
}

// RequestRender schedules a frame. Any number of requests made before the
// loop gets to them result in a single frame. Safe for concurrent use.
func (t *TUI) RequestRender() {
	select {
	case t.renderCh <- struct{}{}:
	default:
	}
}

// Dispatch runs fn on the loop goroutine. Safe for concurrent use; it is
// dropped once the TUI has stopped.
func (t *TUI) Dispatch(fn func()) {
	select {
	case t.dispatchCh <- fn:
	case <-t.stopCh:
	}
}

// ForceRender draws a frame immediately.
func (t *TUI) ForceRender() error {
	return t.renderer.Render()
}

// Invalidate drops the render caches of the root tree and the overlays.
func (t *TUI) Invalidate() {
	t.root.Invalidate()
	for _, entry := range t.overlays.Visible() {
		entry.Component.Invalidate()
	}
}

func (t *TUI) render() {
	if err := t.renderer.Render(); err != nil {
		if errors.Is(err, ErrMultipleCursorMarkers) {
			return
		}
		t.logger.Error("render failed", "error", err)
	}
}

func (t *TUI) processInput(data string) {
	if t.flushTimer != nil {
		t.flushTimer.Stop()
	}
	t.inputGen++
	for _, seq := range t.stdin.Process(data) {
		t.HandleInput(seq)
	}
	if t.stdin.Pending() {
		gen := t.inputGen
		t.flushTimer = time.AfterFunc(escapeTimeout, func() {
			t.Dispatch(func() { t.flushInput(gen) })
		})
	}
}

func (t *TUI) flushInput(gen uint64) {
	if gen != t.inputGen {
		return
	}
	for _, seq := range t.stdin.Flush() {
		t.HandleInput(seq)
	}
}

// HandleInput delivers one decoded sequence: to the OnKey handler first,
// then to the topmost visible overlay or, without one, to the focused
// component.
func (t *TUI) HandleInput(seq string) {
	target := t.Focused()
	if !t.filter.Filter(seq, target) {
		return
	}
	if t.onKey != nil && t.onKey(seq) {
		t.RequestRender()
		return
	}
	if target == nil {
		return
	}

	delivered := false
	if target == t.overlays.TopComponent() {
		if h, ok := target.(InputHandler); ok {
			h.HandleInput(seq)
			delivered = true
		}
	} else {
		delivered = t.root.HandleInputFor(target, seq)
	}
	if delivered {
		t.RequestRender()
	} else {
		t.logger.Debug("input not delivered", "key", seq)
	}
}
