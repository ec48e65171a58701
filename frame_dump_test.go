package linetui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFrameDump(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	got := formatFrameDump([]string{"ok", "\x1b[1mwide line\x1b[0m"}, 4, 1, at)

	assert.Contains(t, got, "Frame at 2024-05-01T12:00:00Z\n")
	assert.Contains(t, got, "Terminal width: 4\n")
	assert.Contains(t, got, "Committed lines: 1\n")
	assert.Contains(t, got, "[0] (w=2) \"ok\"\n")
	assert.Contains(t, got, `[1] (w=9) OVERFLOW "\x1b[1mwide line\x1b[0m"`)
}

func TestWriteFrameDump(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "frame.txt")
	require.NoError(t, writeFrameDump(path, "one"))
	require.NoError(t, writeFrameDump(path, "two"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "two", string(data), "each dump replaces the last")
}

func TestWriteFrameDumpError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	err := writeFrameDump(filepath.Join(blocker, "frame.txt"), "x")
	assert.Error(t, err)
}
