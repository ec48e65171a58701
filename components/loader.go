package components

import (
	"sync"
	"time"
)

// Scheduler is the part of the TUI a background component needs: a way to
// run code on the event loop and to ask for a frame. *linetui.TUI
// implements it.
type Scheduler interface {
	Dispatch(fn func())
	RequestRender()
}

const loaderInterval = 80 * time.Millisecond

var loaderFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Loader is a spinner followed by a message. While running, a ticker
// goroutine advances the frame through the scheduler, so all state changes
// happen on the event loop.
type Loader struct {
	text           *Text
	frames         []string
	currentFrame   int
	scheduler      Scheduler
	spinnerColorFn func(string) string
	messageColorFn func(string) string
	message        string

	mu      sync.Mutex
	running bool
	stop    chan struct{}
}

// NewLoader creates a loader and starts it. With a nil scheduler the
// spinner stays on its first frame.
func NewLoader(
	scheduler Scheduler,
	spinnerColorFn func(string) string,
	messageColorFn func(string) string,
	message string,
) *Loader {
	if message == "" {
		message = "Loading..."
	}

	loader := &Loader{
		text:           NewText("", 1, 0, nil),
		frames:         loaderFrames,
		scheduler:      scheduler,
		spinnerColorFn: spinnerColorFn,
		messageColorFn: messageColorFn,
		message:        message,
	}
	loader.updateDisplay()
	loader.Start()
	return loader
}

func (l *Loader) Render(width int) []string {
	lines := l.text.Render(width)
	result := make([]string, 0, len(lines)+1)
	result = append(result, "")
	result = append(result, lines...)
	return result
}

func (l *Loader) Invalidate() {
	l.text.Invalidate()
}

func (l *Loader) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

func (l *Loader) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.running || l.scheduler == nil {
		return
	}
	l.running = true
	l.stop = make(chan struct{})
	go l.tick(l.stop)
}

func (l *Loader) tick(stop <-chan struct{}) {
	ticker := time.NewTicker(loaderInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.scheduler.Dispatch(l.advance)
		case <-stop:
			return
		}
	}
}

// Stop halts the animation. Safe to call more than once.
func (l *Loader) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.running {
		return
	}
	l.running = false
	close(l.stop)
}

func (l *Loader) SetMessage(message string) {
	l.message = message
	l.updateDisplay()
}

func (l *Loader) Message() string {
	return l.message
}

func (l *Loader) advance() {
	if !l.Running() {
		return
	}
	l.currentFrame = (l.currentFrame + 1) % len(l.frames)
	l.updateDisplay()
}

func (l *Loader) updateDisplay() {
	frame := l.frames[l.currentFrame]
	message := l.message
	if l.spinnerColorFn != nil {
		frame = l.spinnerColorFn(frame)
	}
	if l.messageColorFn != nil {
		message = l.messageColorFn(message)
	}
	l.text.SetText(frame + " " + message)

	if l.scheduler != nil {
		l.scheduler.RequestRender()
	}
}
