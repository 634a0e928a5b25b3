package compat

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/histlog"
)

func createTestLogger(t *testing.T) (histlog.Logger, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "compat.log")

	logger, err := histlog.NewBuilder().File(path).Build()
	require.NoError(t, err)

	return logger, path
}

func TestHolderAdvances(t *testing.T) {
	logger, _ := createTestLogger(t)
	holder := NewHolder(logger)

	require.NoError(t, holder.Log(histlog.LevelInfo, "one"))
	require.NoError(t, holder.Log(histlog.LevelError, "two"))

	current := holder.Logger()
	assert.Equal(t, 2, current.Len())

	// The seed value is untouched
	assert.Equal(t, 0, logger.Len())
}

func TestHolderKeepsValueOnError(t *testing.T) {
	logger, _ := createTestLogger(t)
	holder := NewHolder(logger)

	require.NoError(t, holder.Log(histlog.LevelInfo, "kept"))
	require.Error(t, holder.Log(histlog.LevelInfo, "   "))

	assert.Equal(t, 1, holder.Logger().Len())
}

func TestHolderConcurrent(t *testing.T) {
	logger, path := createTestLogger(t)
	holder := NewHolder(logger)

	const goroutines = 8
	const perGoroutine = 25

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				assert.NoError(t, holder.Log(histlog.LevelInfo, "held"))
			}
		}()
	}
	wg.Wait()

	// Unlike raw sibling derivation, the holder serializes appends,
	// so the held history is complete
	assert.Equal(t, goroutines*perGoroutine, holder.Logger().Len())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, goroutines*perGoroutine, strings.Count(string(content), "\n"))
}

func TestFastHTTPAdapterPrintf(t *testing.T) {
	logger, _ := createTestLogger(t)
	adapter := NewFastHTTPAdapter(logger)

	adapter.Printf("serving %s", "/index")
	adapter.Printf("error when serving connection %s", "127.0.0.1")
	adapter.Printf("connection deprecated behavior")

	entries := adapter.Logger().Logs()
	require.Len(t, entries, 3)
	assert.Equal(t, histlog.LevelInfo, entries[0].Level)
	assert.Equal(t, histlog.LevelError, entries[1].Level)
	assert.Equal(t, histlog.LevelWarning, entries[2].Level)
	assert.Equal(t, "serving /index", entries[0].Message)
}

func TestFastHTTPAdapterOptions(t *testing.T) {
	logger, _ := createTestLogger(t)
	adapter := NewFastHTTPAdapter(
		logger,
		WithDefaultLevel("notice"),
		WithLevelDetector(func(string) string { return "" }),
	)

	adapter.Printf("error text without detection")

	entries := adapter.Logger().Logs()
	require.Len(t, entries, 1)
	assert.Equal(t, "NOTICE", entries[0].Level)
}

func TestDetectLogLevel(t *testing.T) {
	tests := []struct {
		msg  string
		want string
	}{
		{"connection failed", histlog.LevelError},
		{"fatal shutdown", histlog.LevelError},
		{"warning: slow request", histlog.LevelWarning},
		{"debug dump", histlog.LevelDebug},
		{"request served", histlog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectLogLevel(tt.msg))
		})
	}
}

func TestGnetAdapterLevels(t *testing.T) {
	logger, _ := createTestLogger(t)
	adapter := NewGnetAdapter(logger)

	adapter.Debugf("debug %d", 1)
	adapter.Infof("info %d", 2)
	adapter.Warnf("warn %d", 3)
	adapter.Errorf("error %d", 4)

	entries := adapter.Logger().Logs()
	require.Len(t, entries, 4)
	assert.Equal(t, histlog.LevelDebug, entries[0].Level)
	assert.Equal(t, histlog.LevelInfo, entries[1].Level)
	assert.Equal(t, histlog.LevelWarning, entries[2].Level)
	assert.Equal(t, histlog.LevelError, entries[3].Level)
	assert.Equal(t, "error 4", entries[3].Message)
}

func TestGnetAdapterFatal(t *testing.T) {
	logger, _ := createTestLogger(t)

	var fatalMsg string
	adapter := NewGnetAdapter(logger, WithFatalHandler(func(msg string) {
		fatalMsg = msg
	}))

	adapter.Fatalf("unrecoverable: %v", "disk gone")

	assert.Equal(t, "unrecoverable: disk gone", fatalMsg)

	entries := adapter.Logger().Logs(histlog.LevelError)
	require.Len(t, entries, 1)
	assert.Equal(t, "unrecoverable: disk gone", entries[0].Message)
}

func TestCompatBuilder(t *testing.T) {
	logger, _ := createTestLogger(t)
	seeded, err := logger.Info("pre-existing")
	require.NoError(t, err)

	gnetAdapter, err := NewBuilder().WithLogger(seeded).BuildGnet()
	require.NoError(t, err)
	assert.Equal(t, 1, gnetAdapter.Logger().Len())

	cfg := histlog.DefaultConfig()
	cfg.File = filepath.Join(t.TempDir(), "built.log")

	b := NewBuilder().WithConfig(cfg)
	fastAdapter, err := b.BuildFastHTTP()
	require.NoError(t, err)
	assert.Equal(t, 0, fastAdapter.Logger().Len())

	resolved, err := b.GetLogger()
	require.NoError(t, err)
	assert.Equal(t, cfg.File, resolved.Config().File)
}
