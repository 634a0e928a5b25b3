package compat

import (
	"sync"

	"github.com/lixenwraith/histlog"
)

// Holder bridges histlog's immutable Logger values to the mutable
// logger interfaces third-party servers expect: it keeps the current
// value and replaces it with the derived one on every logging call.
// The mutex keeps concurrent adapter calls on one lineage, so the
// held history stays complete rather than forking.
type Holder struct {
	mu  sync.Mutex
	cur histlog.Logger
}

// NewHolder creates a holder seeded with the given logger value.
func NewHolder(l histlog.Logger) *Holder {
	return &Holder{cur: l}
}

// Logger returns the current logger value. The value is immutable and
// safe to inspect while other goroutines keep logging through the holder.
func (h *Holder) Logger() histlog.Logger {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cur
}

// Log appends through the current value and publishes the derived one.
// On error the held value is left unchanged.
func (h *Holder) Log(level, message string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	next, err := h.cur.Log(level, message)
	if err != nil {
		return err
	}
	h.cur = next
	return nil
}
