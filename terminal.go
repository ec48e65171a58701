package linetui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/cancelreader"
	"golang.org/x/term"

	"github.com/yeeaiclub/linetui/keys"
)

var (
	ErrAlreadyStarted = errors.New("linetui: already started")

	// ErrStopped is returned when starting a TUI that was already stopped.
	ErrStopped = errors.New("linetui: stopped")
)

const (
	syncBegin = "\x1b[?2026h"
	syncEnd   = "\x1b[?2026l"

	bracketedPasteOn  = "\x1b[?2004h"
	bracketedPasteOff = "\x1b[?2004l"
)

// Terminal is the device the renderer draws on.
type Terminal interface {
	// Start enters raw mode and begins delivering input chunks to onInput
	// and size changes to onResize. Both are called from other goroutines.
	Start(onInput func(data string), onResize func()) error

	// Stop restores the terminal state saved by Start.
	Stop()

	Write(data string) error

	// WriteSynchronized writes data wrapped in synchronized-output mode so
	// the terminal presents it at once.
	WriteSynchronized(data string) error

	HideCursor()
	ShowCursor()
	Columns() int
	Rows() int
}

// ProcessTerminal is a Terminal over the process's stdin and stdout.
// Dimensions are cached and refreshed on SIGWINCH.
type ProcessTerminal struct {
	in  *os.File
	out *os.File

	queryKitty bool

	writeMu sync.Mutex

	sizeMu sync.RWMutex
	cols   int
	rows   int

	started  bool
	oldState *term.State
	reader   cancelreader.CancelReader
	sigCh    chan os.Signal
	stop     chan struct{}
	done     chan struct{}
}

type ProcessTerminalOption func(*ProcessTerminal)

// WithKittyQuery controls whether Start asks the terminal for Kitty keyboard
// protocol support. Enabled by default.
func WithKittyQuery(enabled bool) ProcessTerminalOption {
	return func(p *ProcessTerminal) {
		p.queryKitty = enabled
	}
}

func NewProcessTerminal(opts ...ProcessTerminalOption) *ProcessTerminal {
	p := &ProcessTerminal{
		in:         os.Stdin,
		out:        os.Stdout,
		queryKitty: true,
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *ProcessTerminal) Start(onInput func(data string), onResize func()) error {
	if p.started {
		return ErrAlreadyStarted
	}

	fd := int(p.in.Fd())
	if term.IsTerminal(fd) {
		oldState, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("linetui: raw mode: %w", err)
		}
		p.oldState = oldState
	}

	reader, err := cancelreader.NewReader(p.in)
	if err != nil {
		p.restore()
		return fmt.Errorf("linetui: stdin reader: %w", err)
	}
	p.reader = reader
	p.refreshSize()
	p.stop = make(chan struct{})
	p.done = make(chan struct{})
	p.started = true

	_ = p.Write(bracketedPasteOn)
	if p.queryKitty {
		_ = p.Write(ansi.RequestKittyKeyboard)
	}

	go p.readLoop(onInput)

	p.sigCh = make(chan os.Signal, 1)
	signal.Notify(p.sigCh, syscall.SIGWINCH)
	go func() {
		for {
			select {
			case <-p.sigCh:
				p.refreshSize()
				if onResize != nil {
					onResize()
				}
			case <-p.stop:
				return
			}
		}
	}()
	return nil
}

func (p *ProcessTerminal) readLoop(onInput func(string)) {
	defer close(p.done)
	buf := make([]byte, 4096)
	for {
		n, err := p.reader.Read(buf)
		if n > 0 && onInput != nil {
			onInput(string(buf[:n]))
		}
		if err != nil {
			return
		}
	}
}

// Done is closed when input ends, either on EOF or after Stop.
func (p *ProcessTerminal) Done() <-chan struct{} {
	return p.done
}

func (p *ProcessTerminal) Stop() {
	if !p.started {
		return
	}
	p.started = false

	if keys.KittyProtocolActive() {
		_ = p.Write(ansi.PopKittyKeyboard(0))
		keys.SetKittyProtocolActive(false)
	}
	_ = p.Write(bracketedPasteOff)

	close(p.stop)
	signal.Stop(p.sigCh)
	p.reader.Cancel()
	<-p.done
	_ = p.reader.Close()
	p.restore()
}

func (p *ProcessTerminal) restore() {
	if p.oldState != nil {
		_ = term.Restore(int(p.in.Fd()), p.oldState)
		p.oldState = nil
	}
}

func (p *ProcessTerminal) Write(data string) error {
	p.writeMu.Lock()
	defer p.writeMu.Unlock()
	_, err := io.WriteString(p.out, data)
	return err
}

func (p *ProcessTerminal) WriteSynchronized(data string) error {
	return p.Write(syncBegin + data + syncEnd)
}

func (p *ProcessTerminal) HideCursor() {
	_ = p.Write("\x1b[?25l")
}

func (p *ProcessTerminal) ShowCursor() {
	_ = p.Write("\x1b[?25h")
}

// SetTitle sets the terminal window title.
func (p *ProcessTerminal) SetTitle(title string) {
	_ = p.Write(ansi.SetWindowTitle(title))
}

func (p *ProcessTerminal) Columns() int {
	p.sizeMu.RLock()
	defer p.sizeMu.RUnlock()
	if p.cols <= 0 {
		return 80
	}
	return p.cols
}

func (p *ProcessTerminal) Rows() int {
	p.sizeMu.RLock()
	defer p.sizeMu.RUnlock()
	if p.rows <= 0 {
		return 24
	}
	return p.rows
}

func (p *ProcessTerminal) refreshSize() {
	cols, rows, err := term.GetSize(int(p.out.Fd()))
	if err != nil {
		return
	}
	p.sizeMu.Lock()
	p.cols, p.rows = cols, rows
	p.sizeMu.Unlock()
}
