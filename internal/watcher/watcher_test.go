package watcher

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.klb.dev/clippick/internal/history"
	"go.klb.dev/clippick/internal/state"
)

// fakeBackend is a scriptable clipboard.
type fakeBackend struct {
	mu   sync.Mutex
	text string
	err  error
}

func (b *fakeBackend) set(text string) {
	b.mu.Lock()
	b.text = text
	b.mu.Unlock()
}

func (b *fakeBackend) Name() string { return "fake" }

func (b *fakeBackend) Read() (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.text, b.err
}

func (b *fakeBackend) Write(text string) error {
	b.set(text)
	return nil
}

func (b *fakeBackend) Close() {}

func newWatcher(backend *fakeBackend) (*Watcher, *history.Store) {
	store := history.New(state.State{MaxSize: 10}, nil)
	return New(store, backend, time.Millisecond), store
}

func TestCheck_RecordsChange(t *testing.T) {
	backend := &fakeBackend{}
	w, store := newWatcher(backend)

	backend.set("hello")
	w.check()

	assert.Equal(t, []string{"hello"}, store.Snapshot())
}

func TestCheck_SameContentOnlyOfferedOnce(t *testing.T) {
	backend := &fakeBackend{}
	w, store := newWatcher(backend)

	backend.set("hello")
	for i := 0; i < 5; i++ {
		w.check()
	}
	assert.Equal(t, []string{"hello"}, store.Snapshot())
}

func TestCheck_EmptyClipboardIgnored(t *testing.T) {
	backend := &fakeBackend{}
	w, store := newWatcher(backend)

	w.check()
	assert.Empty(t, store.Snapshot())
}

func TestCheck_LastObservedTracksSeenNotInserted(t *testing.T) {
	backend := &fakeBackend{}
	w, store := newWatcher(backend)

	backend.set("a")
	w.check()
	backend.set("b")
	w.check()

	// Re-copying "a" is a duplicate: not inserted, but observed — so
	// subsequent ticks must not retry the insertion.
	backend.set("a")
	w.check()
	assert.Equal(t, "a", w.lastObserved)
	w.check()

	assert.Equal(t, []string{"a", "b"}, store.Snapshot())
}

func TestCheck_ReadErrorsAreSwallowed(t *testing.T) {
	backend := &fakeBackend{err: errors.New("clipboard unavailable")}
	w, store := newWatcher(backend)

	w.check()
	assert.Empty(t, store.Snapshot())

	// Recovery on a later tick.
	backend.mu.Lock()
	backend.err = nil
	backend.mu.Unlock()
	backend.set("back")
	w.check()
	assert.Equal(t, []string{"back"}, store.Snapshot())
}

func TestRun_SeedsInitialContent(t *testing.T) {
	backend := &fakeBackend{}
	backend.set("pre-existing")
	store := history.New(state.State{MaxSize: 10}, nil)
	w := New(store, backend, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	// Give the loop a few ticks: the startup content must never be
	// recorded, a change after startup must be.
	time.Sleep(20 * time.Millisecond)
	backend.set("fresh")

	require.Eventually(t, func() bool {
		snap := store.Snapshot()
		return len(snap) == 1 && snap[0] == "fresh"
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop after cancellation")
	}
}

func TestNew_DefaultsInterval(t *testing.T) {
	w := New(nil, &fakeBackend{}, 0)
	assert.Equal(t, DefaultInterval, w.interval)
}
