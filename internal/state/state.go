// Package state persists clipboard history to a single JSON document.
//
// The file format is shared with other front-ends:
//
//	{
//	  "max_size": 100,
//	  "auto_paste": true,
//	  "history": ["oldest", "...", "newest"]
//	}
//
// Unknown fields (presentation preferences such as theme or opacity)
// are carried through load/save untouched so clippick never destroys
// another front-end's settings. Writes go to a temp file in the same
// directory followed by a rename, so a crash mid-save never leaves a
// torn state file. With a passphrase configured the JSON payload is
// sealed with NaCl secretbox before it touches disk.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.klb.dev/clippick/internal/crypto"
)

// State is the persisted shape of the history store.
type State struct {
	MaxSize   int      `json:"max_size"`
	AutoPaste bool     `json:"auto_paste"`
	History   []string `json:"history"`

	// Extra holds unknown top-level fields verbatim.
	Extra map[string]json.RawMessage `json:"-"`
}

// Default returns the state used when no file exists yet.
func Default() State {
	return State{MaxSize: 100, AutoPaste: true}
}

// MarshalJSON emits the known fields plus any carried-through extras.
// Known fields win over stale copies of themselves in Extra.
func (s State) MarshalJSON() ([]byte, error) {
	m := make(map[string]json.RawMessage, len(s.Extra)+3)
	for k, v := range s.Extra {
		m[k] = v
	}

	history := s.History
	if history == nil {
		history = []string{}
	}
	for k, v := range map[string]any{
		"max_size":   s.MaxSize,
		"auto_paste": s.AutoPaste,
		"history":    history,
	} {
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		m[k] = raw
	}
	return json.Marshal(m)
}

// UnmarshalJSON fills the known fields and stashes everything else in
// Extra. Fields absent from the document keep their prior values, so
// unmarshalling over Default() applies the defaults.
func (s *State) UnmarshalJSON(b []byte) error {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	for k, v := range m {
		var err error
		switch k {
		case "max_size":
			err = json.Unmarshal(v, &s.MaxSize)
		case "auto_paste":
			err = json.Unmarshal(v, &s.AutoPaste)
		case "history":
			err = json.Unmarshal(v, &s.History)
		default:
			if s.Extra == nil {
				s.Extra = make(map[string]json.RawMessage)
			}
			s.Extra[k] = v
		}
		if err != nil {
			return fmt.Errorf("state field %q: %w", k, err)
		}
	}
	return nil
}

// FileSink loads and saves State at a fixed path. It remembers the
// unknown fields seen at load time and merges them back into every
// save, keeping the shared file round-trip safe.
type FileSink struct {
	path string
	key  *[32]byte // nil = plain JSON on disk

	mu    sync.Mutex
	extra map[string]json.RawMessage
}

// NewFileSink returns a sink for path. A non-empty passphrase enables
// at-rest encryption of the whole document.
func NewFileSink(path, passphrase string) (*FileSink, error) {
	f := &FileSink{path: path}
	if passphrase != "" {
		key, err := crypto.DeriveKey(passphrase)
		if err != nil {
			return nil, err
		}
		f.key = key
	}
	return f, nil
}

// Path returns the state file path.
func (f *FileSink) Path() string { return f.path }

// Load reads the state file. A missing file is not an error: defaults
// are returned so a first run starts empty. A corrupt or undecryptable
// file returns defaults alongside the error; the caller decides whether
// to log and continue.
func (f *FileSink) Load() (State, error) {
	raw, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("read state: %w", err)
	}
	if f.key != nil {
		raw, err = crypto.Open(raw, f.key)
		if err != nil {
			return Default(), fmt.Errorf("decrypt state: %w", err)
		}
	}

	st := Default()
	if err := json.Unmarshal(raw, &st); err != nil {
		return Default(), fmt.Errorf("parse state %s: %w", f.path, err)
	}

	f.mu.Lock()
	f.extra = st.Extra
	f.mu.Unlock()
	return st, nil
}

// Save writes st atomically: whole file to a temp sibling, then rename
// into place. Unknown fields remembered from Load are merged in unless
// st carries its own.
func (f *FileSink) Save(st State) error {
	f.mu.Lock()
	if st.Extra == nil {
		st.Extra = f.extra
	}
	f.mu.Unlock()

	raw, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if f.key != nil {
		raw, err = crypto.Seal(raw, f.key)
		if err != nil {
			return fmt.Errorf("encrypt state: %w", err)
		}
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("state dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".state-*")
	if err != nil {
		return fmt.Errorf("temp state: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("write state: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close state: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replace state: %w", err)
	}
	return nil
}
