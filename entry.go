package histlog

import (
	"time"
)

// Entry is one immutable log record: a timestamp assigned at creation,
// a normalized level, and the message text. Entries are shared freely
// between logger values descending from a common ancestor and are never
// mutated after construction.
type Entry struct {
	Time    time.Time
	Level   string
	Message string
}

// String renders the entry as a single log line without the trailing
// newline, in the same layout the file sink writes.
func (e Entry) String() string {
	return string(appendEntry(nil, e, time.RFC3339Nano))
}
