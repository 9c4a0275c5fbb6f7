// Package history implements the clipboard history store: a
// capacity-bounded, deduplicated, ordered sequence of text snapshots.
// The store is the single source of truth for clipboard history; the
// watcher appends to it and the picker reads and mutates it, possibly
// concurrently. Every mutation is persisted through the configured Sink
// before the lock is released, so concurrent writers can never
// interleave partial state on disk.
package history

import (
	"errors"
	"log/slog"
	"sync"

	"go.klb.dev/clippick/internal/state"
)

// DefaultCapacity is used when the state file carries no usable max_size.
const DefaultCapacity = 100

// ErrInvalidCapacity is returned by Resize for capacities <= 0.
var ErrInvalidCapacity = errors.New("history: capacity must be > 0")

// Sink persists store state. Save is always called with the store's
// mutation lock held, so implementations need no ordering of their own.
type Sink interface {
	Save(state.State) error
}

// Store holds the clipboard history. Entries are ordered oldest first,
// unique by exact text equality, and never exceed the capacity; when an
// insert or a shrink overflows the bound, the oldest entries are evicted.
type Store struct {
	mu        sync.RWMutex
	items     []string
	capacity  int
	autoPaste bool
	sink      Sink
}

// New builds a Store from persisted state. A non-positive max_size falls
// back to DefaultCapacity. Hydration re-applies the store invariants, so
// a state file edited by hand (duplicates, empties, too many entries)
// loads cleanly instead of poisoning the store. sink may be nil for an
// ephemeral store.
func New(st state.State, sink Sink) *Store {
	capacity := st.MaxSize
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	seen := make(map[string]struct{}, len(st.History))
	items := make([]string, 0, len(st.History))
	for _, text := range st.History {
		if text == "" {
			continue
		}
		if _, dup := seen[text]; dup {
			continue
		}
		seen[text] = struct{}{}
		items = append(items, text)
	}
	if n := len(items) - capacity; n > 0 {
		items = items[n:]
	}

	return &Store{
		items:     items,
		capacity:  capacity,
		autoPaste: st.AutoPaste,
		sink:      sink,
	}
}

// Offer records text as a new history entry and reports whether an
// insertion happened. Empty text is ignored. Text already present
// anywhere in the history is ignored too: it is neither duplicated nor
// moved to the most-recent position. Inserting beyond capacity evicts
// the oldest entries.
func (s *Store) Offer(text string) bool {
	if text == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexLocked(text) >= 0 {
		return false
	}
	s.items = append(s.items, text)
	if n := len(s.items) - s.capacity; n > 0 {
		s.items = s.items[n:]
		slog.Debug("history evicted oldest", "evicted", n)
	}
	s.persistLocked()
	slog.Debug("history entry added", "chars", len(text), "entries", len(s.items))
	return true
}

// Snapshot returns a copy of the history, oldest first. Callers that
// display most-recent-first must reverse it.
func (s *Store) Snapshot() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// Latest returns the most recently added entry, if any.
func (s *Store) Latest() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.items) == 0 {
		return "", false
	}
	return s.items[len(s.items)-1], true
}

// Remove deletes the entry exactly matching text and reports whether it
// was present. Removing an absent entry is a no-op, not an error.
func (s *Store) Remove(text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(text)
	if i < 0 {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	s.persistLocked()
	slog.Debug("history entry removed", "entries", len(s.items))
	return true
}

// Clear empties the history. The capacity is unchanged.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persistLocked()
	slog.Info("history cleared")
}

// Resize sets a new capacity, evicting the oldest entries when the
// history no longer fits. Capacities <= 0 are rejected with
// ErrInvalidCapacity and leave the store untouched.
func (s *Store) Resize(capacity int) error {
	if capacity <= 0 {
		return ErrInvalidCapacity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.capacity = capacity
	if n := len(s.items) - capacity; n > 0 {
		s.items = s.items[n:]
	}
	s.persistLocked()
	slog.Info("history capacity changed", "capacity", capacity, "entries", len(s.items))
	return nil
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Capacity returns the current capacity bound.
func (s *Store) Capacity() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.capacity
}

// AutoPaste reports whether selecting an entry should also send the
// paste keystroke, or only copy.
func (s *Store) AutoPaste() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.autoPaste
}

// SetAutoPaste updates the persisted auto-paste preference.
func (s *Store) SetAutoPaste(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.autoPaste == on {
		return
	}
	s.autoPaste = on
	s.persistLocked()
}

// indexLocked returns the position of text, or -1. Must be called with
// s.mu held.
func (s *Store) indexLocked(text string) int {
	for i, it := range s.items {
		if it == text {
			return i
		}
	}
	return -1
}

// persistLocked mirrors the in-memory state to the sink. A failed save
// is logged and dropped: memory stays authoritative and the next
// mutation retries. Must be called with s.mu held for writing.
func (s *Store) persistLocked() {
	if s.sink == nil {
		return
	}
	st := state.State{
		MaxSize:   s.capacity,
		AutoPaste: s.autoPaste,
		History:   append([]string(nil), s.items...),
	}
	if err := s.sink.Save(st); err != nil {
		slog.Warn("history save failed", "err", err)
	}
}
