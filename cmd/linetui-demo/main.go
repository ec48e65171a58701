// Command linetui-demo is a small chat-style program built on linetui:
// submitted lines scroll into the terminal's history while the input line
// stays live at the bottom.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"

	"github.com/yeeaiclub/linetui"
	"github.com/yeeaiclub/linetui/components"
	"github.com/yeeaiclub/linetui/keys"
)

const sampleCode = `func greet(name string) string {
	return fmt.Sprintf("hello, %s", name)
}`

var (
	userStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	replyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	noteStyle  = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("8"))
	spinStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
)

// paint adapts a style to the single-string color functions components take.
func paint(style lipgloss.Style) func(string) string {
	return func(s string) string { return style.Render(s) }
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var keybindingsPath, logFile, frameDump string
	var noKitty bool

	flagSet := pflag.NewFlagSet("linetui-demo", pflag.ContinueOnError)
	flagSet.StringVar(&keybindingsPath, "keybindings", "", "YAML file overriding the default keybindings")
	flagSet.StringVar(&logFile, "log-file", "", "write debug logs to this file")
	flagSet.StringVar(&frameDump, "frame-dump", "", "write a frame dump here when a line overflows")
	flagSet.BoolVar(&noKitty, "no-kitty", false, "do not negotiate the Kitty keyboard protocol")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	logger, closeLog, err := openLogger(logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	if keybindingsPath != "" {
		kb, err := loadKeybindings(keybindingsPath)
		if err != nil {
			return err
		}
		keys.SetDefault(kb)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer cancel()

	terminal := linetui.NewProcessTerminal(linetui.WithKittyQuery(!noKitty))
	opts := []linetui.Option{linetui.WithLogger(logger)}
	if frameDump != "" {
		opts = append(opts, linetui.WithFrameDump(frameDump))
	}
	tui := linetui.NewTUI(terminal, opts...)
	terminal.SetTitle("linetui demo")

	app := newDemo(tui, cancel, logger)
	app.note("Type a message and press enter. ctrl+p opens the command palette, ctrl+c quits.")
	return tui.Run(ctx)
}

func openLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = file.Close() }, nil
}

func loadKeybindings(path string) (*keys.Keybindings, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open keybindings: %w", err)
	}
	defer file.Close()
	return keys.LoadKeybindings(file)
}

// demo holds the widgets of the chat screen. All methods run on the TUI's
// event loop.
type demo struct {
	tui    *linetui.TUI
	quit   context.CancelFunc
	logger *slog.Logger

	input   *components.Input
	loader  *components.Loader
	palette linetui.OverlayHandle
}

func newDemo(tui *linetui.TUI, quit context.CancelFunc, logger *slog.Logger) *demo {
	d := &demo{tui: tui, quit: quit, logger: logger}

	d.input = components.NewInput()
	d.input.SetPrompt(userStyle.Render("you") + "> ")
	d.input.SetOnSubmit(d.submit)
	d.input.SetOnEscape(d.input.Clear)

	root := tui.Root()
	root.AddChild(components.NewDynamicBorder(paint(replyStyle)))
	root.AddChild(d.input)
	tui.SetFocus(d.input)

	tui.OnKey(func(data string) bool {
		kb := keys.Default()
		switch {
		case kb.Matches(data, keys.ActionInterrupt):
			d.quit()
			return true
		case kb.Matches(data, keys.ActionOpenPalette):
			d.openPalette()
			return true
		}
		return false
	})
	return d
}

// commit adds a finished block above the live area.
func (d *demo) commit(block linetui.Component) {
	root := d.tui.Root()
	children := root.Children()
	root.InsertBefore(components.NewStaticOf(block), firstLive(children))
	d.tui.RequestRender()
}

func firstLive(children []linetui.Component) linetui.Component {
	for _, child := range children {
		if _, ok := child.(*components.Static); !ok {
			return child
		}
	}
	return nil
}

func (d *demo) note(text string) {
	d.commit(components.NewText(noteStyle.Render(text), 0, 0, nil))
}

func (d *demo) submit(value string) {
	value = strings.TrimSpace(value)
	d.input.Clear()
	if value == "" {
		return
	}
	d.logger.Debug("submitted", "value", value)
	d.commit(components.NewText(userStyle.Render("you")+"  "+value, 0, 1, nil))
	d.reply("echo: " + value)
}

// reply shows a spinner for a moment, then commits text.
func (d *demo) reply(text string) {
	if d.loader != nil {
		d.loader.Stop()
		d.tui.Root().RemoveChild(d.loader)
	}
	loader := components.NewLoader(d.tui, paint(spinStyle), paint(replyStyle), "thinking...")
	d.loader = loader
	d.tui.Root().InsertBefore(loader, d.input)

	time.AfterFunc(600*time.Millisecond, func() {
		d.tui.Dispatch(func() {
			loader.Stop()
			d.tui.Root().RemoveChild(loader)
			if d.loader == loader {
				d.loader = nil
			}
			d.commit(components.NewText(replyStyle.Render(text), 2, 0, nil))
		})
	})
}

func (d *demo) openPalette() {
	if d.palette.Valid() {
		return
	}
	list := components.NewSelectList([]components.SelectItem{
		{Value: "help", Description: "Show the keybindings"},
		{Value: "code", Description: "Print a highlighted snippet"},
		{Value: "clear", Description: "Clear the input line"},
		{Value: "quit", Description: "Leave the demo"},
	}, 6, components.SelectListTheme{})

	box := components.NewBox(list)
	box.SetTitle("Commands")
	box.SetBorderColor(lipgloss.Color("6"))

	list.SetOnCancel(d.closePalette)
	list.SetOnSelect(func(item components.SelectItem) {
		d.closePalette()
		d.runCommand(item.Value)
	})

	d.palette = d.tui.ShowOverlay(box, linetui.OverlayOptions{
		Anchor:    linetui.AnchorBottomCenter,
		Width:     50,
		MaxHeight: 10,
	})
}

func (d *demo) closePalette() {
	d.palette.Hide()
	d.palette = linetui.OverlayHandle{}
}

func (d *demo) runCommand(name string) {
	switch name {
	case "help":
		var b strings.Builder
		kb := keys.Default()
		for _, action := range []keys.Action{keys.ActionSubmit, keys.ActionOpenPalette, keys.ActionInterrupt, keys.ActionDeleteWordBackward, keys.ActionYank} {
			fmt.Fprintf(&b, "%-20s %s\n", action, strings.Join(kb.Keys(action), ", "))
		}
		d.note(strings.TrimSuffix(b.String(), "\n"))
	case "code":
		d.commit(components.NewCode(sampleCode, "go"))
	case "clear":
		d.input.Clear()
	case "quit":
		d.quit()
	}
}
