package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"go.klb.dev/clippick/internal/clip"
	"go.klb.dev/clippick/internal/history"
	"go.klb.dev/clippick/internal/ipc"
	"go.klb.dev/clippick/internal/message"
	"go.klb.dev/clippick/internal/pasteexec"
	"go.klb.dev/clippick/internal/state"
	"go.klb.dev/clippick/internal/wire"
)

// openStore hydrates a history store from the configured state file.
// A corrupt (or undecryptable) file degrades to an empty store rather
// than failing startup; the broken file is only overwritten on the next
// successful mutation.
func openStore(v *viper.Viper) (*history.Store, *state.FileSink, error) {
	sink, err := state.NewFileSink(v.GetString("state"), v.GetString("passphrase"))
	if err != nil {
		return nil, nil, err
	}
	st, err := sink.Load()
	if err != nil {
		slog.Warn("state file unusable, starting empty", "path", sink.Path(), "err", err)
	}
	return history.New(st, sink), sink, nil
}

// roundTrip sends one request to the watch daemon and returns its reply.
// A reply of type ERROR is surfaced as a Go error.
func roundTrip(msg *message.Message) (*message.Message, error) {
	conn, err := ipc.Dial()
	if err != nil {
		return nil, fmt.Errorf("dial daemon: %w", err)
	}
	defer conn.Close()

	wc := wire.New(conn)
	if err := wc.WriteMsg(msg); err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	resp, err := wc.ReadMsg()
	if err != nil {
		return nil, fmt.Errorf("read reply: %w", err)
	}
	if resp.Type == message.TypeError {
		return nil, errors.New(resp.Error)
	}
	return resp, nil
}

// ipcClient drives the picker through a running watch daemon.
type ipcClient struct{}

func (ipcClient) Snapshot() ([]string, error) {
	resp, err := roundTrip(&message.Message{Type: message.TypeSnapshot})
	if err != nil {
		return nil, err
	}
	return resp.Entries, nil
}

func (ipcClient) Select(text string) error {
	_, err := roundTrip(&message.Message{Type: message.TypeSelect, Text: text})
	return err
}

func (ipcClient) Remove(text string) error {
	_, err := roundTrip(&message.Message{Type: message.TypeRemove, Text: text})
	return err
}

// directClient drives the picker against the state file when no daemon
// is running. Selections still reach the OS clipboard; they just won't
// be observed by a watcher that isn't there.
type directClient struct {
	store   *history.Store
	backend clip.Backend
	paste   pasteexec.Executor
}

func (c *directClient) Snapshot() ([]string, error) {
	return c.store.Snapshot(), nil
}

func (c *directClient) Select(text string) error {
	if err := c.backend.Write(text); err != nil {
		return fmt.Errorf("clipboard write: %w", err)
	}
	if c.store.AutoPaste() {
		if err := c.paste.Paste(); err != nil {
			slog.Warn("paste keystroke failed", "err", err)
		}
	}
	return nil
}

func (c *directClient) Remove(text string) error {
	c.store.Remove(text)
	return nil
}

// newDirectClient builds a directClient from viper config.
func newDirectClient(v *viper.Viper) (*directClient, error) {
	store, _, err := openStore(v)
	if err != nil {
		return nil, err
	}
	return &directClient{
		store:   store,
		backend: clip.New(),
		paste:   pasteexec.New(),
	}, nil
}

// snapshotEntries fetches the history (oldest first) via the daemon
// when one is running, else straight from the state file.
func snapshotEntries(v *viper.Viper) ([]string, error) {
	if ipc.IsRunning() {
		resp, err := roundTrip(&message.Message{Type: message.TypeSnapshot})
		if err != nil {
			return nil, err
		}
		return resp.Entries, nil
	}
	store, _, err := openStore(v)
	if err != nil {
		return nil, err
	}
	return store.Snapshot(), nil
}
