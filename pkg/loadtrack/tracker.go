// Package loadtrack tracks which images of a rendered listing collection
// have finished loading, so a client can swap a skeleton placeholder for the
// real image without layout shift.
package loadtrack

import (
	"sync"
)

// Tracker is a per-collection state machine. Each tracked id is Pending
// until MarkLoaded flips it to Loaded, a terminal state. A failed load never
// transitions; the placeholder simply persists.
type Tracker struct {
	mu     sync.Mutex
	loaded map[string]struct{}
}

func NewTracker() *Tracker {
	return &Tracker{
		loaded: make(map[string]struct{}),
	}
}

// MarkLoaded records that the image finished loading. Repeat calls are no-ops.
func (t *Tracker) MarkLoaded(imageID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.loaded[imageID] = struct{}{}
}

// IsLoaded reports whether the real image should render instead of the
// placeholder.
func (t *Tracker) IsLoaded(imageID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.loaded[imageID]
	return ok
}

// Reset discards all state. Call it whenever the underlying collection is
// replaced: image ids from a stale collection mean nothing for a new one.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.loaded = make(map[string]struct{})
}
