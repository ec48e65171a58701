package linetui

import (
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeeaiclub/linetui/keys"
)

// pipeTerminal returns a ProcessTerminal reading from a pipe and writing to
// a temp file, with the write end of the input pipe.
func pipeTerminal(t *testing.T, opts ...ProcessTerminalOption) (*ProcessTerminal, *os.File, *os.File) {
	t.Helper()
	inR, inW, err := os.Pipe()
	require.NoError(t, err)
	out, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = inW.Close()
		_ = inR.Close()
		_ = out.Close()
	})

	p := NewProcessTerminal(opts...)
	p.in = inR
	p.out = out
	return p, inW, out
}

func readOutput(t *testing.T, out *os.File) string {
	t.Helper()
	data, err := os.ReadFile(out.Name())
	require.NoError(t, err)
	return string(data)
}

func TestProcessTerminalLifecycle(t *testing.T) {
	p, inW, out := pipeTerminal(t)

	var mu sync.Mutex
	var received strings.Builder
	require.NoError(t, p.Start(func(data string) {
		mu.Lock()
		defer mu.Unlock()
		received.WriteString(data)
	}, nil))
	assert.ErrorIs(t, p.Start(nil, nil), ErrAlreadyStarted)

	_, err := inW.WriteString("hi")
	require.NoError(t, err)
	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return received.String() == "hi"
	}, time.Second, 5*time.Millisecond)

	p.Stop()
	select {
	case <-p.Done():
	default:
		t.Fatal("Done is closed after Stop")
	}
	p.Stop()

	output := readOutput(t, out)
	assert.True(t, strings.HasPrefix(output, bracketedPasteOn+ansi.RequestKittyKeyboard))
	assert.True(t, strings.HasSuffix(output, bracketedPasteOff))
}

func TestProcessTerminalEOF(t *testing.T) {
	p, inW, _ := pipeTerminal(t, WithKittyQuery(false))
	require.NoError(t, p.Start(nil, nil))

	require.NoError(t, inW.Close())
	select {
	case <-p.Done():
	case <-time.After(time.Second):
		t.Fatal("Done is not closed on EOF")
	}
	p.Stop()
}

func TestProcessTerminalPopsKitty(t *testing.T) {
	keys.SetKittyProtocolActive(true)
	t.Cleanup(func() { keys.SetKittyProtocolActive(false) })

	p, _, out := pipeTerminal(t, WithKittyQuery(false))
	require.NoError(t, p.Start(nil, nil))
	p.Stop()

	assert.Contains(t, readOutput(t, out), ansi.PopKittyKeyboard(0))
	assert.False(t, keys.KittyProtocolActive())
}

func TestProcessTerminalWrites(t *testing.T) {
	p, _, out := pipeTerminal(t)

	require.NoError(t, p.WriteSynchronized("frame"))
	p.HideCursor()
	p.ShowCursor()
	p.SetTitle("demo")

	assert.Equal(t, syncBegin+"frame"+syncEnd+"\x1b[?25l\x1b[?25h"+ansi.SetWindowTitle("demo"), readOutput(t, out))
}

func TestProcessTerminalSizeFallback(t *testing.T) {
	p, _, _ := pipeTerminal(t)
	p.refreshSize()
	assert.Equal(t, 80, p.Columns(), "not a tty")
	assert.Equal(t, 24, p.Rows())
}
