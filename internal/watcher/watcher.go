// Package watcher bridges the live OS clipboard into the history store.
// Nothing else in the process polls the clipboard.
package watcher

import (
	"context"
	"log/slog"
	"time"

	"go.klb.dev/clippick/internal/clip"
	"go.klb.dev/clippick/internal/history"
)

// DefaultInterval is the poll cadence used when none is configured.
const DefaultInterval = 300 * time.Millisecond

// Watcher polls the clipboard on a fixed interval and offers new
// content to the store. lastObserved tracks the last text seen on the
// clipboard — not the last text inserted — so an entry already in the
// history is offered once per change, not once per tick.
type Watcher struct {
	store    *history.Store
	backend  clip.Backend
	interval time.Duration

	lastObserved string
}

// New creates a watcher. A non-positive interval falls back to
// DefaultInterval.
func New(store *history.Store, backend clip.Backend, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Watcher{store: store, backend: backend, interval: interval}
}

// Run polls until ctx is cancelled, returning within one interval of
// cancellation. Call in a goroutine.
func (w *Watcher) Run(ctx context.Context) {
	// Seed lastObserved with whatever is already on the clipboard so
	// pre-existing content is never recorded as new.
	if text, err := w.backend.Read(); err == nil {
		w.lastObserved = text
	}

	slog.Info("clipboard watcher started",
		"backend", w.backend.Name(),
		"interval", w.interval,
	)

	t := time.NewTicker(w.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			slog.Debug("clipboard watcher stopped")
			return
		case <-t.C:
			w.check()
		}
	}
}

// check reads the clipboard once and forwards a change to the store.
func (w *Watcher) check() {
	text, err := w.backend.Read()
	if err != nil {
		// Transient clipboard failures are retried on the next tick.
		slog.Debug("clipboard read failed", "err", err)
		return
	}
	if text == "" || text == w.lastObserved {
		return
	}
	if w.store.Offer(text) {
		slog.Debug("clipboard change recorded",
			"kind", history.Classify(text),
			"chars", len(text),
		)
	}
	w.lastObserved = text
}
