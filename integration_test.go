package histlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEndToEnd walks the full lifecycle: construction, derivation at
// each level, filtering, and file state.
func TestEndToEnd(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "t.log")

	cfg := DefaultConfig()
	cfg.File = path
	cfg.MaxFileSize = 1048576

	l0, err := New(cfg)
	require.NoError(t, err)

	l1, err := l0.Info("a")
	require.NoError(t, err)
	l2, err := l1.Warning("b")
	require.NoError(t, err)
	l3, err := l2.Error("c")
	require.NoError(t, err)

	assert.Equal(t, 0, len(l0.Logs()))
	assert.Equal(t, 1, len(l1.Logs()))
	assert.Equal(t, 2, len(l2.Logs()))
	assert.Equal(t, 3, len(l3.Logs()))

	errorsOnly := l3.Logs("ERROR")
	require.Len(t, errorsOnly, 1)
	assert.Equal(t, "c", errorsOnly[0].Message)
	assert.Equal(t, "ERROR", errorsOnly[0].Level)

	require.NoError(t, l3.Sync())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "[INFO] a")
	assert.Contains(t, lines[1], "[WARNING] b")
	assert.Contains(t, lines[2], "[ERROR] c")

	// Timestamps are non-decreasing within one lineage
	entries := l3.Logs()
	for i := 1; i < len(entries); i++ {
		assert.False(t, entries[i].Time.Before(entries[i-1].Time))
	}
}

// TestEndToEndRotationUnderLoad combines derivation and rotation:
// nothing written is ever lost across the archive set.
func TestEndToEndRotationUnderLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "app.log")

	logger, err := NewBuilder().
		File(path).
		MaxFileSize(512).
		Build()
	require.NoError(t, err)

	const total = 50
	for i := 0; i < total; i++ {
		logger, err = logger.Logv(LevelInfo, "load entry", i)
		require.NoError(t, err)
	}

	assert.Equal(t, total, logger.Len())

	// Every history entry must appear exactly once somewhere on disk
	files, err := os.ReadDir(tmpDir)
	require.NoError(t, err)

	var combined strings.Builder
	for _, f := range files {
		content, err := os.ReadFile(filepath.Join(tmpDir, f.Name()))
		require.NoError(t, err)
		combined.Write(content)
	}

	onDisk := combined.String()
	assert.Equal(t, total, strings.Count(onDisk, "\n"))
	for _, e := range logger.Logs() {
		assert.Equal(t, 1, strings.Count(onDisk, e.Message+"\n"), "entry %q", e.Message)
	}
}
