package histlog

import (
	"sync"
)

// history is a persistent, append-only view over a shared arena.
// Appending produces a new history one entry longer; the receiver's
// view never changes. When two histories derived from the same parent
// both append, the first claims the next arena slot and the second
// forks the arena, so a committed prefix is never overwritten. This
// keeps append O(1) amortized for the common single-lineage case
// instead of copying the whole history on every call.
type history struct {
	arena *arena
	n     int
}

// arena is the shared backing store. Slots below any published
// history's length are immutable; the mutex guards only the tail
// extension and the slice header.
type arena struct {
	mu      sync.Mutex
	entries []Entry
}

// append returns a history holding the receiver's entries plus e.
func (h history) append(e Entry) history {
	a := h.arena
	if a == nil {
		a = &arena{}
	}
	a.mu.Lock()
	if len(a.entries) == h.n {
		a.entries = append(a.entries, e)
		a.mu.Unlock()
		return history{arena: a, n: h.n + 1}
	}
	// A sibling already extended this arena past our view; fork.
	forked := make([]Entry, h.n, h.n+1)
	copy(forked, a.entries[:h.n])
	a.mu.Unlock()
	forked = append(forked, e)
	return history{arena: &arena{entries: forked}, n: h.n + 1}
}

// snapshot returns the receiver's entries, oldest first. The result
// aliases the arena prefix, which is immutable; the capacity is
// clipped so an append on the returned slice cannot reach arena slots.
func (h history) snapshot() []Entry {
	if h.arena == nil || h.n == 0 {
		return nil
	}
	h.arena.mu.Lock()
	s := h.arena.entries[:h.n:h.n]
	h.arena.mu.Unlock()
	return s
}
