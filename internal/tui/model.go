package tui

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/sortstep/internal/config"
	"github.com/studiowebux/sortstep/internal/history"
	"github.com/studiowebux/sortstep/internal/keybinds"
	"github.com/studiowebux/sortstep/internal/sorting"
)

// Mode represents the current TUI mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeInput
	ModeHelp
	ModeHistory
	ModeHistoryClearConfirm
)

// Model represents the TUI state
type Model struct {
	// Core state
	engine         *sorting.Engine
	keybinds       *keybinds.Registry
	settings       config.Settings
	historyManager *history.Manager
	logger         *slog.Logger
	mode           Mode

	// Array input
	arrayInput textinput.Model

	// Viewers
	helpView  viewport.Model
	modalView viewport.Model
	history   *HistoryState

	// Autoplay: playGen invalidates ticks scheduled before the last toggle
	playing bool
	playGen int

	// recorded is set once the current run has been sent to the journal
	recorded bool
	// pendingRuns are journal writes whose result has not reached Update yet
	pendingRuns []*runRecorder

	// UI state
	width     int
	height    int
	statusMsg string
	errorMsg  string
}

// Init initializes the TUI
func (m *Model) Init() tea.Cmd {
	return nil
}

// Cleanup finishes pending journal writes, then closes the database.
// Run calls it once the program has exited.
func (m *Model) Cleanup() {
	for _, rec := range m.pendingRuns {
		if msg := rec.record(); msg.err != nil {
			m.logger.Warn("failed to save run", "error", msg.err)
		}
	}
	m.pendingRuns = nil

	if m.historyManager != nil {
		if err := m.historyManager.Close(); err != nil {
			m.logger.Error("error closing history database", "error", err)
		}
		m.historyManager = nil
	}
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewport()

	case playTickMsg:
		cmd = m.handlePlayTick(msg)

	case runSavedMsg:
		m.pendingRuns = slices.DeleteFunc(m.pendingRuns, func(rec *runRecorder) bool {
			return rec == msg.recorder
		})
		if msg.err != nil {
			m.logger.Warn("failed to save run", "error", msg.err)
			cmd = m.setErrorMessage(fmt.Sprintf("Failed to save run: %v", msg.err))
		} else {
			m.logger.Info("run recorded", "run_id", msg.id)
		}

	case historyLoadedMsg:
		if msg.err != nil {
			cmd = m.setErrorMessage(fmt.Sprintf("Failed to load history: %v", msg.err))
			break
		}
		m.history.SetEntries(msg.entries)
		m.history.SetIndex(0)
		m.updateHistoryView()

	case historyClearedMsg:
		m.mode = ModeHistory
		if msg.err != nil {
			cmd = m.setErrorMessage(fmt.Sprintf("Failed to clear history: %v", msg.err))
			break
		}
		m.history.SetEntries(nil)
		m.history.SetIndex(0)
		m.updateHistoryView()
		cmd = m.setStatusMessage("All history cleared")

	case clipboardMsg:
		if msg.err != nil {
			cmd = m.setErrorMessage(fmt.Sprintf("Failed to copy to clipboard: %v", msg.err))
		} else {
			cmd = m.setStatusMessage(fmt.Sprintf("Copied [%s] to clipboard", msg.text))
		}

	case clearStatusMsg:
		m.statusMsg = ""

	case clearErrorMsg:
		m.errorMsg = ""
	}

	return m, cmd
}

// View renders the TUI
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	switch m.mode {
	case ModeHelp:
		return m.renderHelp()
	case ModeHistory:
		return m.renderHistory()
	case ModeHistoryClearConfirm:
		return m.renderHistoryClearConfirmation()
	default:
		return m.renderMain()
	}
}

// Custom message types
type playTickMsg struct {
	gen int
}

type runSavedMsg struct {
	id       string
	err      error
	recorder *runRecorder
}

type historyLoadedMsg struct {
	entries []history.Entry
	err     error
}

type historyClearedMsg struct {
	err error
}

type clipboardMsg struct {
	text string
	err  error
}

type clearStatusMsg struct{}
type clearErrorMsg struct{}

// messageTimeout returns the auto-clear delay, or 0 to keep messages
func (m *Model) messageTimeout() time.Duration {
	if m.settings.MessageTimeout <= 0 {
		return 0
	}
	return time.Duration(m.settings.MessageTimeout) * time.Second
}

// Helper methods for setting messages with optional timeout
func (m *Model) setStatusMessage(msg string) tea.Cmd {
	m.statusMsg = truncateMessage(msg)

	if timeout := m.messageTimeout(); timeout > 0 {
		return tea.Tick(timeout, func(time.Time) tea.Msg {
			return clearStatusMsg{}
		})
	}
	return nil
}

func (m *Model) setErrorMessage(msg string) tea.Cmd {
	m.errorMsg = truncateMessage(msg)

	if timeout := m.messageTimeout(); timeout > 0 {
		return tea.Tick(timeout, func(time.Time) tea.Msg {
			return clearErrorMsg{}
		})
	}
	return nil
}

// truncateMessage shortens a message for footer display (max 100 chars)
func truncateMessage(msg string) string {
	if len(msg) > 100 {
		return msg[:97] + "..."
	}
	return msg
}
