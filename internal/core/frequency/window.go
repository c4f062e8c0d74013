// Package frequency implements per-key sliding time windows. One Window type
// backs the (partner, ad) frequency cap, the per-source click rate limit and
// the dedup/idempotency checks of the adjudicator: each is a keyed counter of
// events inside a rolling span.
package frequency

import (
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"
)

// Window counts events per key inside a rolling span and enforces a maximum.
// Entries are stored in a TTL cache so idle keys are evicted without a
// dedicated sweeper; the pruning on access keeps counts exact within the
// span. Updates are atomic per Window.
type Window struct {
	max  int
	span time.Duration

	mu    sync.Mutex
	store *cache.Cache
}

// New returns a window allowing at most max events per key per span.
func New(max int, span time.Duration) *Window {
	return &Window{
		max:   max,
		span:  span,
		store: cache.New(span, 2*span),
	}
}

func (w *Window) pruned(key string, now time.Time) []time.Time {
	cutoff := now.Add(-w.span)
	var kept []time.Time
	if v, ok := w.store.Get(key); ok {
		for _, ts := range v.([]time.Time) {
			if ts.After(cutoff) {
				kept = append(kept, ts)
			}
		}
	}
	return kept
}

// Allow records an event for key and reports whether it fit under the cap.
// When the key is already at the cap nothing is recorded.
func (w *Window) Allow(key string, now time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	kept := w.pruned(key, now)
	if len(kept) >= w.max {
		w.store.Set(key, kept, w.span)
		return false
	}
	w.store.Set(key, append(kept, now), w.span)
	return true
}

// AtCap reports whether the key is currently at the cap, without recording.
func (w *Window) AtCap(key string, now time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.pruned(key, now)) >= w.max
}

// Record unconditionally records an event for key.
func (w *Window) Record(key string, now time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.store.Set(key, append(w.pruned(key, now), now), w.span)
}
