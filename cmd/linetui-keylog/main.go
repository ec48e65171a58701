// Command linetui-keylog shows what the terminal sends for each key press:
// the raw bytes and the name keys.ParseKey gives them.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"

	"github.com/yeeaiclub/linetui"
	"github.com/yeeaiclub/linetui/components"
	"github.com/yeeaiclub/linetui/keys"
)

var headerStyle = lipgloss.NewStyle().Bold(true)

// keyLogger is a component listing the most recent input sequences.
type keyLogger struct {
	log      []string
	maxLines int
	releases bool
}

func (k *keyLogger) HandleInput(data string) {
	name := keys.ParseKey(data)
	if name == "" {
		name = "?"
	}
	if keys.IsKeyRelease(data) {
		name += " (release)"
	} else if keys.IsKeyRepeat(data) {
		name += " (repeat)"
	}

	k.log = append(k.log, fmt.Sprintf("%-24s %-28s %q", name, hexDump(data), data))
	if len(k.log) > k.maxLines {
		k.log = k.log[len(k.log)-k.maxLines:]
	}
}

func (k *keyLogger) WantsKeyRelease() bool {
	return k.releases
}

func (k *keyLogger) Invalidate() {}

func (k *keyLogger) Render(width int) []string {
	kitty := "off"
	if keys.KittyProtocolActive() {
		kitty = "on"
	}
	lines := []string{
		headerStyle.Render("Press keys to see their codes (ctrl+c to exit)"),
		fmt.Sprintf("kitty keyboard protocol: %s", kitty),
		"",
	}
	for _, entry := range k.log {
		lines = append(lines, linetui.TruncateToWidth(entry, width, "…", false))
	}
	return lines
}

func hexDump(data string) string {
	parts := make([]string, len(data))
	for i := range len(data) {
		parts[i] = fmt.Sprintf("%02x", data[i])
	}
	return strings.Join(parts, " ")
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var noKitty, releases bool
	var maxLines int

	flagSet := pflag.NewFlagSet("linetui-keylog", pflag.ContinueOnError)
	flagSet.BoolVar(&noKitty, "no-kitty", false, "do not negotiate the Kitty keyboard protocol")
	flagSet.BoolVar(&releases, "releases", false, "also show Kitty key release events")
	flagSet.IntVarP(&maxLines, "lines", "n", 20, "number of sequences to keep on screen")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tui := linetui.NewTUI(linetui.NewProcessTerminal(linetui.WithKittyQuery(!noKitty)))
	logger := &keyLogger{maxLines: max(1, maxLines), releases: releases}
	tui.Root().AddChild(logger)
	tui.Root().AddChild(components.NewDynamicBorder(nil))
	tui.SetFocus(logger)
	tui.OnKey(func(data string) bool {
		if keys.MatchesKey(data, "ctrl+c") {
			cancel()
			return true
		}
		return false
	})
	return tui.Run(ctx)
}
