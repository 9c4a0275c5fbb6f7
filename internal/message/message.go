// Package message defines the clippick IPC protocol spoken between the
// CLI sub-commands and the watch daemon.
//
// All messages are newline-delimited JSON carried over the local Unix
// socket. Each message is exactly one line: <json>\n. Every request
// receives exactly one reply.
package message

import (
	"encoding/json"
	"fmt"
	"time"
)

// Type identifies the kind of message.
type Type string

const (
	// Requests
	TypeOffer    Type = "OFFER"    // record Text and set the OS clipboard
	TypeSnapshot Type = "SNAPSHOT" // fetch the full history
	TypeLatest   Type = "LATEST"   // fetch the most recent entry
	TypeSelect   Type = "SELECT"   // copy Text back to the OS clipboard (+ auto-paste)
	TypeRemove   Type = "REMOVE"   // delete the entry matching Text
	TypeClear    Type = "CLEAR"    // empty the history
	TypeResize   Type = "RESIZE"   // set Capacity
	TypeStatus   Type = "STATUS"   // fetch daemon state

	// Replies
	TypeSnapshotResponse Type = "SNAPSHOT_RESPONSE"
	TypeStatusResponse   Type = "STATUS_RESPONSE"
	TypeOK               Type = "OK"
	TypeError            Type = "ERROR"
)

// StatusInfo carries daemon state for STATUS_RESPONSE messages.
type StatusInfo struct {
	Version   string    `json:"version"`
	Backend   string    `json:"backend"`
	Paster    string    `json:"paster"`
	Entries   int       `json:"entries"`
	Capacity  int       `json:"capacity"`
	AutoPaste bool      `json:"auto_paste"`
	Interval  string    `json:"interval"`
	StatePath string    `json:"state_path"`
	StartedAt time.Time `json:"started_at"`
}

// Message is the top-level IPC envelope.
type Message struct {
	Type Type `json:"type"`

	// OFFER / SELECT / REMOVE — the entry text
	Text string `json:"text,omitempty"`

	// RESIZE
	Capacity int `json:"capacity,omitempty"`

	// SNAPSHOT_RESPONSE — entries oldest first (one entry for LATEST)
	Entries []string `json:"entries,omitempty"`

	// OK — whether OFFER inserted / REMOVE deleted anything
	Changed bool `json:"changed,omitempty"`

	// STATUS_RESPONSE
	Status *StatusInfo `json:"status,omitempty"`

	// ERROR
	Error string `json:"error,omitempty"`
}

// Encode serialises the message to JSON without a trailing newline.
func (m *Message) Encode() ([]byte, error) {
	return json.Marshal(m)
}

// Decode deserialises a message from raw JSON bytes.
func Decode(b []byte) (*Message, error) {
	var m Message
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("message decode: %w", err)
	}
	return &m, nil
}
