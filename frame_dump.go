package linetui

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// formatFrameDump renders a frame as text for debugging: a header, then one
// entry per line with its index and visible width.
func formatFrameDump(lines []string, width, committed int, at time.Time) string {
	var b strings.Builder
	b.WriteString("Frame at ")
	b.WriteString(at.Format(time.RFC3339))
	b.WriteString("\nTerminal width: ")
	b.WriteString(strconv.Itoa(width))
	b.WriteString("\nCommitted lines: ")
	b.WriteString(strconv.Itoa(committed))
	b.WriteString("\n\n=== All rendered lines ===\n")
	for idx, line := range lines {
		w := VisibleWidth(line)
		b.WriteString("[")
		b.WriteString(strconv.Itoa(idx))
		b.WriteString("] (w=")
		b.WriteString(strconv.Itoa(w))
		b.WriteString(")")
		if w > width {
			b.WriteString(" OVERFLOW")
		}
		b.WriteString(" ")
		b.WriteString(strconv.Quote(line))
		b.WriteString("\n")
	}
	return b.String()
}

func writeFrameDump(path, data string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("linetui: frame dump dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("linetui: frame dump: %w", err)
	}
	return nil
}
