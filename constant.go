package histlog

import (
	"strings"
)

// Canonical level strings. Log accepts any non-blank level; these cover
// the well-known ones and are what the convenience methods use.
const (
	LevelDebug   = "DEBUG"
	LevelInfo    = "INFO"
	LevelWarning = "WARNING"
	LevelError   = "ERROR"
)

// NormalizeLevel trims surrounding whitespace and uppercases a level
// string. Entries always carry the normalized form.
func NormalizeLevel(level string) string {
	return strings.ToUpper(strings.TrimSpace(level))
}
