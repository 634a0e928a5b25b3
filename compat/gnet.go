package compat

import (
	"fmt"
	"os"

	"github.com/lixenwraith/histlog"
)

// GnetAdapter wraps a histlog logger value to implement gnet's
// logging.Logger interface
type GnetAdapter struct {
	holder       *Holder
	fatalHandler func(msg string) // Customizable fatal behavior
}

// NewGnetAdapter creates a new gnet-compatible logger adapter
func NewGnetAdapter(logger histlog.Logger, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		holder: NewHolder(logger),
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior
type GnetOption func(*GnetAdapter)

// WithFatalHandler sets a custom fatal handler
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// Logger returns the current logger value accumulated by the adapter.
func (a *GnetAdapter) Logger() histlog.Logger {
	return a.holder.Logger()
}

// Debugf logs at debug level with printf-style formatting
func (a *GnetAdapter) Debugf(format string, args ...any) {
	_ = a.holder.Log(histlog.LevelDebug, fmt.Sprintf(format, args...))
}

// Infof logs at info level with printf-style formatting
func (a *GnetAdapter) Infof(format string, args ...any) {
	_ = a.holder.Log(histlog.LevelInfo, fmt.Sprintf(format, args...))
}

// Warnf logs at warning level with printf-style formatting
func (a *GnetAdapter) Warnf(format string, args ...any) {
	_ = a.holder.Log(histlog.LevelWarning, fmt.Sprintf(format, args...))
}

// Errorf logs at error level with printf-style formatting
func (a *GnetAdapter) Errorf(format string, args ...any) {
	_ = a.holder.Log(histlog.LevelError, fmt.Sprintf(format, args...))
}

// Fatalf logs at error level and triggers fatal handler
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_ = a.holder.Log(histlog.LevelError, msg)

	// Ensure the line is flushed before exit
	_ = a.holder.Logger().Sync()

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}
