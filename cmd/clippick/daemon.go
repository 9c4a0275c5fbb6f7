package main

import (
	"log/slog"
	"net"
	"time"

	"go.klb.dev/clippick/internal/clip"
	"go.klb.dev/clippick/internal/history"
	"go.klb.dev/clippick/internal/message"
	"go.klb.dev/clippick/internal/pasteexec"
	"go.klb.dev/clippick/internal/wire"
)

// daemon answers IPC requests from the other sub-commands. It is the
// only writer to the OS clipboard besides the user, so selections made
// through it are picked up by the watcher on the next tick (and
// dedup-suppressed by the store).
type daemon struct {
	store     *history.Store
	backend   clip.Backend
	paster    pasteexec.Executor
	statePath string
	interval  time.Duration
	startedAt time.Time
}

func (d *daemon) serve(ln net.Listener) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		go d.handle(conn)
	}
}

// handle processes one request/reply exchange per connection.
func (d *daemon) handle(conn net.Conn) {
	defer conn.Close()
	wc := wire.New(conn)

	msg, err := wc.ReadMsg()
	if err != nil {
		return
	}
	reply := d.dispatch(msg)
	if err := wc.WriteMsg(reply); err != nil {
		slog.Debug("ipc reply failed", "type", msg.Type, "err", err)
	}
}

func (d *daemon) dispatch(msg *message.Message) *message.Message {
	switch msg.Type {
	case message.TypeOffer:
		inserted := d.store.Offer(msg.Text)
		if msg.Text != "" {
			if err := d.backend.Write(msg.Text); err != nil {
				slog.Warn("clipboard write failed", "err", err)
			}
		}
		return &message.Message{Type: message.TypeOK, Changed: inserted}

	case message.TypeSnapshot:
		return &message.Message{
			Type:    message.TypeSnapshotResponse,
			Entries: d.store.Snapshot(),
		}

	case message.TypeLatest:
		resp := &message.Message{Type: message.TypeSnapshotResponse}
		if text, ok := d.store.Latest(); ok {
			resp.Entries = []string{text}
		}
		return resp

	case message.TypeSelect:
		if err := d.backend.Write(msg.Text); err != nil {
			return errorReply(err)
		}
		slog.Debug("entry selected", "kind", history.Classify(msg.Text), "chars", len(msg.Text))
		if d.store.AutoPaste() {
			if err := d.paster.Paste(); err != nil {
				slog.Warn("paste keystroke failed", "err", err)
			}
		}
		return &message.Message{Type: message.TypeOK}

	case message.TypeRemove:
		removed := d.store.Remove(msg.Text)
		return &message.Message{Type: message.TypeOK, Changed: removed}

	case message.TypeClear:
		d.store.Clear()
		return &message.Message{Type: message.TypeOK}

	case message.TypeResize:
		if err := d.store.Resize(msg.Capacity); err != nil {
			return errorReply(err)
		}
		return &message.Message{Type: message.TypeOK}

	case message.TypeStatus:
		return &message.Message{
			Type: message.TypeStatusResponse,
			Status: &message.StatusInfo{
				Version:   Version,
				Backend:   d.backend.Name(),
				Paster:    d.paster.Name(),
				Entries:   d.store.Len(),
				Capacity:  d.store.Capacity(),
				AutoPaste: d.store.AutoPaste(),
				Interval:  d.interval.String(),
				StatePath: d.statePath,
				StartedAt: d.startedAt,
			},
		}

	default:
		return &message.Message{
			Type:  message.TypeError,
			Error: "unknown message type: " + string(msg.Type),
		}
	}
}

func errorReply(err error) *message.Message {
	return &message.Message{Type: message.TypeError, Error: err.Error()}
}
