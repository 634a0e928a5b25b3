package compat

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/histlog"
)

// FastHTTPAdapter wraps a histlog logger value to implement fasthttp's
// Logger interface
type FastHTTPAdapter struct {
	holder        *Holder
	defaultLevel  string
	levelDetector func(string) string // Function to detect log level from message
}

// NewFastHTTPAdapter creates a new fasthttp-compatible logger adapter
func NewFastHTTPAdapter(logger histlog.Logger, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		holder:        NewHolder(logger),
		defaultLevel:  histlog.LevelInfo,
		levelDetector: DetectLogLevel, // Default level detection
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FastHTTPOption allows customizing adapter behavior
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultLevel sets the default log level for Printf calls
func WithDefaultLevel(level string) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultLevel = histlog.NormalizeLevel(level)
	}
}

// WithLevelDetector sets a custom function to detect log level from message content
func WithLevelDetector(detector func(string) string) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.levelDetector = detector
	}
}

// Logger returns the current logger value accumulated by the adapter.
func (a *FastHTTPAdapter) Logger() histlog.Logger {
	return a.holder.Logger()
}

// Printf implements fasthttp's Logger interface
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	// Detect log level from message content
	level := a.defaultLevel
	if a.levelDetector != nil {
		if detected := a.levelDetector(msg); detected != "" {
			level = detected
		}
	}

	// fasthttp's interface has no error return; a failed append keeps
	// the held history unchanged
	_ = a.holder.Log(level, msg)
}

// DetectLogLevel attempts to detect log level from message content
func DetectLogLevel(msg string) string {
	msgLower := strings.ToLower(msg)

	// Check for error indicators
	if strings.Contains(msgLower, "error") ||
		strings.Contains(msgLower, "failed") ||
		strings.Contains(msgLower, "fatal") ||
		strings.Contains(msgLower, "panic") {
		return histlog.LevelError
	}

	// Check for warning indicators
	if strings.Contains(msgLower, "warn") ||
		strings.Contains(msgLower, "warning") ||
		strings.Contains(msgLower, "deprecated") {
		return histlog.LevelWarning
	}

	// Check for debug indicators
	if strings.Contains(msgLower, "debug") ||
		strings.Contains(msgLower, "trace") {
		return histlog.LevelDebug
	}

	// Default to info level
	return histlog.LevelInfo
}
