package histlog

import (
	"strings"
	"time"
)

// Logger is an immutable value: every logging call returns a new
// Logger holding the prior history plus one appended entry, leaving
// the receiver exactly as it was. Values may be shared read-only
// across goroutines without any locking; the file side effect is
// serialized per path by the sink registry.
//
// The zero Logger is not usable; construct one with New or a Builder.
type Logger struct {
	hist history
	cfg  *Config
	sink *sink
}

// New creates a logger with an empty history. A nil cfg uses
// DefaultConfig. The configuration is cloned and fixed for the
// lineage; later mutation of the caller's Config has no effect.
func New(cfg *Config) (Logger, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	} else {
		cfg = cfg.Clone()
	}
	if err := cfg.Validate(); err != nil {
		return Logger{}, err
	}

	s, err := sinkFor(cfg.File)
	if err != nil {
		return Logger{}, err
	}

	return Logger{cfg: cfg, sink: s}, nil
}

// Log validates and normalizes the call, appends one line to the log
// file (rotating it when the size threshold is reached), and returns a
// derived Logger whose history is the receiver's plus the new entry.
//
// On any failure the receiver is returned unchanged alongside the
// error: the in-memory history is extended only after the entry is on
// disk, so a logger's history never claims more than the file holds.
func (l Logger) Log(level, message string) (Logger, error) {
	if l.cfg == nil {
		return l, configErrorf("use of zero Logger, construct with New")
	}
	if strings.TrimSpace(message) == "" {
		return l, validationErrorf("message cannot be empty or blank")
	}
	level = NormalizeLevel(level)
	if level == "" {
		return l, validationErrorf("level cannot be empty or blank")
	}

	entry := Entry{
		Time:    time.Now(),
		Level:   level,
		Message: message,
	}

	if err := l.sink.write(entry, l.cfg); err != nil {
		return l, err
	}

	return Logger{hist: l.hist.append(entry), cfg: l.cfg, sink: l.sink}, nil
}

// Debug logs a message at DEBUG level.
func (l Logger) Debug(message string) (Logger, error) {
	return l.Log(LevelDebug, message)
}

// Info logs a message at INFO level.
func (l Logger) Info(message string) (Logger, error) {
	return l.Log(LevelInfo, message)
}

// Warning logs a message at WARNING level.
func (l Logger) Warning(message string) (Logger, error) {
	return l.Log(LevelWarning, message)
}

// Error logs a message at ERROR level.
func (l Logger) Error(message string) (Logger, error) {
	return l.Log(LevelError, message)
}

// Logv logs arbitrary values at the given level, rendered as one
// space-separated message.
func (l Logger) Logv(level string, args ...any) (Logger, error) {
	return l.Log(level, formatArgs(args))
}

// Infov logs arbitrary values at INFO level.
func (l Logger) Infov(args ...any) (Logger, error) {
	return l.Logv(LevelInfo, args...)
}

// Warningv logs arbitrary values at WARNING level.
func (l Logger) Warningv(args ...any) (Logger, error) {
	return l.Logv(LevelWarning, args...)
}

// Errorv logs arbitrary values at ERROR level.
func (l Logger) Errorv(args ...any) (Logger, error) {
	return l.Logv(LevelError, args...)
}

// Logs returns the receiver's history, oldest first. With a level
// argument, only entries at that level are returned (compared
// case-insensitively, relative order preserved). A level never used
// yields an empty result, not an error. The returned slice is
// detached from future appends on derived loggers.
func (l Logger) Logs(level ...string) []Entry {
	all := l.hist.snapshot()
	if len(level) == 0 {
		return all
	}

	want := NormalizeLevel(level[0])
	var filtered []Entry
	for _, e := range all {
		if e.Level == want {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// Len reports the number of entries in the receiver's history.
func (l Logger) Len() int {
	return l.hist.n
}

// String renders the history as one line per entry, oldest first.
func (l Logger) String() string {
	var b strings.Builder
	for i, e := range l.hist.snapshot() {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.String())
	}
	return b.String()
}

// Config returns a copy of the lineage's configuration.
func (l Logger) Config() *Config {
	if l.cfg == nil {
		return nil
	}
	return l.cfg.Clone()
}

// Sync flushes the active log file's buffers to disk. It affects the
// shared file for this lineage's path, not any particular value.
func (l Logger) Sync() error {
	if l.sink == nil {
		return nil
	}
	return l.sink.sync()
}
