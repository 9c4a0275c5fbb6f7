package picker

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient records picker actions.
type fakeClient struct {
	snapshot  []string
	selected  []string
	removed   []string
	selectErr error
}

func (c *fakeClient) Snapshot() ([]string, error) { return c.snapshot, nil }

func (c *fakeClient) Select(text string) error {
	if c.selectErr != nil {
		return c.selectErr
	}
	c.selected = append(c.selected, text)
	return nil
}

func (c *fakeClient) Remove(text string) error {
	c.removed = append(c.removed, text)
	return nil
}

func key(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestNewModel_MostRecentFirst(t *testing.T) {
	client := &fakeClient{}
	m := newModel(client, []string{"oldest", "middle", "newest"})

	text, ok := m.current()
	require.True(t, ok)
	assert.Equal(t, "newest", text, "cursor starts on the most recent entry")
	assert.Len(t, m.filtered, 3)
}

func TestUpdate_CursorMovesAndClamps(t *testing.T) {
	m := newModel(&fakeClient{}, []string{"a", "b", "c"})

	m = update(m, key(tea.KeyUp)) // already at top
	assert.Equal(t, 0, m.cursor)

	m = update(m, key(tea.KeyDown), key(tea.KeyDown), key(tea.KeyDown))
	assert.Equal(t, 2, m.cursor, "cursor clamps at the last entry")
}

func TestUpdate_EnterSelectsAndQuits(t *testing.T) {
	client := &fakeClient{}
	m := newModel(client, []string{"a", "b"})

	next, cmd := m.Update(key(tea.KeyEnter))
	m = next.(Model)

	assert.Equal(t, []string{"b"}, client.selected)
	assert.Equal(t, "b", m.chosen)
	require.NotNil(t, cmd, "enter must quit the program")
}

func TestUpdate_SelectErrorStaysOpen(t *testing.T) {
	client := &fakeClient{selectErr: errors.New("daemon gone")}
	m := newModel(client, []string{"a"})

	next, cmd := m.Update(key(tea.KeyEnter))
	m = next.(Model)

	assert.Nil(t, cmd)
	assert.Empty(t, m.chosen)
	require.Error(t, m.err)
}

func TestUpdate_DeleteRemovesEntry(t *testing.T) {
	client := &fakeClient{}
	m := newModel(client, []string{"a", "b"})

	m = update(m, key(tea.KeyDelete))
	assert.Equal(t, []string{"b"}, client.removed)
	assert.Len(t, m.filtered, 1)

	text, ok := m.current()
	require.True(t, ok)
	assert.Equal(t, "a", text)
}

func TestUpdate_QueryFilters(t *testing.T) {
	m := newModel(&fakeClient{}, []string{
		"git push origin main",
		"https://example.com",
		"grocery list",
	})

	m = update(m, runes("git"))
	require.NotEmpty(t, m.filtered)
	text, ok := m.current()
	require.True(t, ok)
	assert.Equal(t, "git push origin main", text)

	// Backspacing the query restores everything.
	m = update(m, key(tea.KeyBackspace), key(tea.KeyBackspace), key(tea.KeyBackspace))
	assert.Len(t, m.filtered, 3)
}

func TestUpdate_NoMatchHasNoCurrent(t *testing.T) {
	m := newModel(&fakeClient{}, []string{"alpha"})

	m = update(m, runes("zzzz"))
	_, ok := m.current()
	assert.False(t, ok)

	// Enter and Delete must be safe with nothing selected.
	m = update(m, key(tea.KeyEnter), key(tea.KeyDelete))
	assert.Empty(t, m.chosen)
}

func TestView_ShowsEntriesAndKinds(t *testing.T) {
	m := newModel(&fakeClient{}, []string{"12345", "https://example.com"})

	out := m.View()
	assert.Contains(t, out, "https://example.com")
	assert.Contains(t, out, "[link]")
	assert.Contains(t, out, "[number]")
	assert.Contains(t, out, "2 items")
}
