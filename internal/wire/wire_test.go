package wire

import (
	"net"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.klb.dev/clippick/internal/message"
)

func pipePair() (*Conn, *Conn) {
	a, b := net.Pipe()
	return New(a), New(b)
}

func TestWriteRead_RoundTrip(t *testing.T) {
	client, server := pipePair()
	defer client.Close()
	defer server.Close()

	want := &message.Message{
		Type:    message.TypeSnapshotResponse,
		Entries: []string{"a", "multi\nline", "b"},
		Changed: true,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- client.WriteMsg(want) }()

	got, err := server.ReadMsg()
	require.NoError(t, err)
	require.NoError(t, <-errCh)

	assert.Equal(t, want.Type, got.Type)
	assert.Equal(t, want.Entries, got.Entries)
	assert.True(t, got.Changed)
}

func TestReadMsg_EntriesWithNewlinesSurvive(t *testing.T) {
	// Newlines inside entries are JSON-escaped and must not break the
	// line framing.
	client, server := pipePair()
	defer client.Close()
	defer server.Close()

	text := "first line\nsecond line\n\nthird"
	go func() {
		_ = client.WriteMsg(&message.Message{Type: message.TypeOffer, Text: text})
	}()

	got, err := server.ReadMsg()
	require.NoError(t, err)
	assert.Equal(t, text, got.Text)
}

func TestReadMsg_GarbageFails(t *testing.T) {
	a, b := net.Pipe()
	server := New(b)
	defer a.Close()
	defer server.Close()

	go func() {
		_, _ = a.Write([]byte("not json\n"))
	}()

	_, err := server.ReadMsg()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "message decode"))
}
