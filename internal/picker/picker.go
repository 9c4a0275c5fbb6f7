// Package picker implements the terminal history picker: a list of
// entries, most recent first, with incremental fuzzy search, arrow-key
// selection, Enter to re-copy, and Del to remove an entry.
package picker

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"go.klb.dev/clippick/internal/history"
)

// Client is the picker's view of the history store — either the IPC
// client talking to a running daemon or a direct wrapper around the
// store itself.
type Client interface {
	// Snapshot returns the history oldest first.
	Snapshot() ([]string, error)

	// Select copies text back to the OS clipboard and, when auto-paste
	// is enabled, sends the paste keystroke.
	Select(text string) error

	// Remove deletes the entry exactly matching text.
	Remove(text string) error
}

const previewWidth = 64

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	promptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	selectedStyle = lipgloss.NewStyle().Bold(true)
	kindStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Model is the bubbletea model backing the picker.
type Model struct {
	client Client

	entries  []string // most recent first
	previews []string // one flattened line per entry
	filtered []int    // indexes into entries currently shown
	query    string
	cursor   int

	chosen string
	err    error
}

// newModel builds a Model from a snapshot (oldest first, as Snapshot
// returns it).
func newModel(client Client, snapshot []string) Model {
	entries := make([]string, len(snapshot))
	for i, text := range snapshot {
		entries[len(snapshot)-1-i] = text
	}
	previews := make([]string, len(entries))
	for i, text := range entries {
		previews[i] = history.Preview(text, previewWidth)
	}
	m := Model{client: client, entries: entries, previews: previews}
	m.refilter()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case tea.KeyDown:
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}

	case tea.KeyEnter:
		if text, ok := m.current(); ok {
			if err := m.client.Select(text); err != nil {
				m.err = err
				return m, nil
			}
			m.chosen = text
			return m, tea.Quit
		}

	case tea.KeyDelete:
		if text, ok := m.current(); ok {
			if err := m.client.Remove(text); err != nil {
				m.err = err
				return m, nil
			}
			m.drop(text)
		}

	case tea.KeyBackspace:
		if m.query != "" {
			runes := []rune(m.query)
			m.query = string(runes[:len(runes)-1])
			m.refilter()
		}

	case tea.KeyRunes:
		m.query += string(key.Runes)
		m.refilter()
	case tea.KeySpace:
		m.query += " "
		m.refilter()
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("clipboard history"))
	b.WriteString("\n")
	b.WriteString(promptStyle.Render("search: "))
	b.WriteString(m.query)
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("error: %v", m.err)))
		b.WriteString("\n\n")
	}

	if len(m.filtered) == 0 {
		b.WriteString(helpStyle.Render("no clipboard history yet"))
		b.WriteString("\n")
	}
	for pos, idx := range m.filtered {
		text := m.entries[idx]
		line := m.previews[idx]
		kind := kindStyle.Render(fmt.Sprintf("[%s]", history.Classify(text)))
		if pos == m.cursor {
			b.WriteString(cursorStyle.Render("> "))
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString("  ")
			b.WriteString(line)
		}
		b.WriteString(" ")
		b.WriteString(kind)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(
		fmt.Sprintf("%d items • ↑↓ move • enter select • del remove • esc quit", len(m.filtered)),
	))
	b.WriteString("\n")
	return b.String()
}

// current returns the entry under the cursor.
func (m Model) current() (string, bool) {
	if m.cursor < 0 || m.cursor >= len(m.filtered) {
		return "", false
	}
	return m.entries[m.filtered[m.cursor]], true
}

// refilter recomputes the visible index list for the current query and
// clamps the cursor.
func (m *Model) refilter() {
	if m.query == "" {
		m.filtered = make([]int, len(m.entries))
		for i := range m.entries {
			m.filtered[i] = i
		}
	} else {
		matches := fuzzy.Find(m.query, m.previews)
		m.filtered = make([]int, len(matches))
		for i, match := range matches {
			m.filtered[i] = match.Index
		}
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// drop removes an entry from the local lists after a successful Remove.
func (m *Model) drop(text string) {
	for i, it := range m.entries {
		if it == text {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			m.previews = append(m.previews[:i], m.previews[i+1:]...)
			break
		}
	}
	m.refilter()
}

// Run shows the picker and blocks until the user exits. It returns the
// selected entry, or "" when the picker was dismissed.
func Run(client Client) (string, error) {
	snapshot, err := client.Snapshot()
	if err != nil {
		return "", fmt.Errorf("load history: %w", err)
	}

	p := tea.NewProgram(newModel(client, snapshot), tea.WithAltScreen())
	out, err := p.Run()
	if err != nil {
		return "", err
	}
	final := out.(Model)
	return final.chosen, nil
}
