package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSink(t *testing.T, passphrase string) *FileSink {
	t.Helper()
	sink, err := NewFileSink(filepath.Join(t.TempDir(), "state.json"), passphrase)
	require.NoError(t, err)
	return sink
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	sink := newSink(t, "")

	st, err := sink.Load()
	require.NoError(t, err)
	assert.Equal(t, 100, st.MaxSize)
	assert.True(t, st.AutoPaste)
	assert.Empty(t, st.History)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	sink := newSink(t, "")

	want := State{MaxSize: 42, AutoPaste: false, History: []string{"a", "b", "c"}}
	require.NoError(t, sink.Save(want))

	got, err := sink.Load()
	require.NoError(t, err)
	assert.Equal(t, want.MaxSize, got.MaxSize)
	assert.Equal(t, want.AutoPaste, got.AutoPaste)
	assert.Equal(t, want.History, got.History)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	sink := newSink(t, "")
	require.NoError(t, os.WriteFile(sink.Path(), []byte(`{"history": ["x"]}`), 0o600))

	st, err := sink.Load()
	require.NoError(t, err)
	assert.Equal(t, 100, st.MaxSize, "absent max_size keeps the default")
	assert.True(t, st.AutoPaste, "absent auto_paste keeps the default")
	assert.Equal(t, []string{"x"}, st.History)
}

func TestLoad_CorruptFileReturnsDefaultsAndError(t *testing.T) {
	sink := newSink(t, "")
	require.NoError(t, os.WriteFile(sink.Path(), []byte("{not json"), 0o600))

	st, err := sink.Load()
	require.Error(t, err)
	assert.Equal(t, Default(), st)
}

func TestUnknownFieldsRoundTrip(t *testing.T) {
	sink := newSink(t, "")
	doc := `{
  "max_size": 10,
  "auto_paste": false,
  "history": ["a"],
  "theme": "dark",
  "opacity": 0.95,
  "compact_mode": true
}`
	require.NoError(t, os.WriteFile(sink.Path(), []byte(doc), 0o600))

	_, err := sink.Load()
	require.NoError(t, err)
	require.NoError(t, sink.Save(State{MaxSize: 7, History: []string{"b"}}))

	raw, err := os.ReadFile(sink.Path())
	require.NoError(t, err)
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &m))

	assert.JSONEq(t, `"dark"`, string(m["theme"]))
	assert.JSONEq(t, `0.95`, string(m["opacity"]))
	assert.JSONEq(t, `true`, string(m["compact_mode"]))
	assert.JSONEq(t, `7`, string(m["max_size"]))
}

func TestSave_CreatesParentDirAndNoTempLeftover(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewFileSink(filepath.Join(dir, "nested", "deep", "state.json"), "")
	require.NoError(t, err)

	require.NoError(t, sink.Save(State{MaxSize: 1, History: []string{"a"}}))

	_, err = os.Stat(sink.Path())
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Dir(sink.Path()))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp file must be renamed away")
}

func TestSave_NilHistoryMarshalsAsEmptyArray(t *testing.T) {
	sink := newSink(t, "")
	require.NoError(t, sink.Save(State{MaxSize: 5}))

	raw, err := os.ReadFile(sink.Path())
	require.NoError(t, err)
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.JSONEq(t, `[]`, string(m["history"]))
}

func TestEncrypted_RoundTrip(t *testing.T) {
	sink := newSink(t, "hunter2")

	want := State{MaxSize: 9, AutoPaste: true, History: []string{"secret"}}
	require.NoError(t, sink.Save(want))

	// On-disk bytes are not JSON.
	raw, err := os.ReadFile(sink.Path())
	require.NoError(t, err)
	assert.False(t, json.Valid(raw))

	got, err := sink.Load()
	require.NoError(t, err)
	assert.Equal(t, want.History, got.History)
	assert.Equal(t, want.MaxSize, got.MaxSize)
}

func TestEncrypted_WrongPassphraseDegradesToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	sink, err := NewFileSink(path, "right")
	require.NoError(t, err)
	require.NoError(t, sink.Save(State{MaxSize: 9, History: []string{"secret"}}))

	wrong, err := NewFileSink(path, "wrong")
	require.NoError(t, err)
	st, err := wrong.Load()
	require.Error(t, err)
	assert.Equal(t, Default(), st)
}
