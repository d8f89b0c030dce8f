package tui

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/sortstep/internal/config"
	"github.com/studiowebux/sortstep/internal/history"
)

// CreateTestModel creates a Model backed by a history database in a temp dir
func CreateTestModel(t *testing.T) *Model {
	t.Helper()

	mgr, err := history.NewManager(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create history manager: %v", err)
	}

	m := createModel(t, Options{Settings: config.DefaultSettings(), History: mgr})
	t.Cleanup(m.Cleanup)
	return m
}

// CreateTestModelWithoutHistory creates a Model with the run journal disabled
func CreateTestModelWithoutHistory(t *testing.T) *Model {
	t.Helper()

	settings := config.DefaultSettings()
	settings.HistoryEnabled = false
	return createModel(t, Options{Settings: settings})
}

func createModel(t *testing.T, opts Options) *Model {
	t.Helper()

	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	m, err := New(opts)
	if err != nil {
		t.Fatalf("Failed to create test model: %v", err)
	}
	return &m
}

// keyPress builds the key message bubbletea sends for a printable key or a
// named key such as "enter"
func keyPress(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// press sends keys to the model in order and returns the last command
func press(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, key := range keys {
		_, cmd = m.Update(keyPress(key))
	}
	return cmd
}

// AssertModelField is a generic helper for checking model field values
func AssertModelField[T comparable](t *testing.T, fieldName string, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", fieldName, got, want)
	}
}

// AssertNoError verifies that an error is nil
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}
