package tui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/sortstep/internal/config"
	"github.com/studiowebux/sortstep/internal/history"
	"github.com/studiowebux/sortstep/internal/keybinds"
	"github.com/studiowebux/sortstep/internal/logging"
	"github.com/studiowebux/sortstep/internal/parser"
	"github.com/studiowebux/sortstep/internal/sorting"
)

// Options holds the dependencies of a Model
type Options struct {
	Settings config.Settings
	// Keybinds defaults to the built-in registry
	Keybinds *keybinds.Registry
	// History is optional; nil disables the run journal
	History *history.Manager
	Logger  *slog.Logger
}

// New creates a new TUI model
func New(opts Options) (Model, error) {
	values, err := parser.ParseArray(opts.Settings.DefaultArray)
	if err != nil {
		// Fall back to the built-in array when the configured one is invalid
		values, err = parser.ParseArray(config.DefaultSettings().DefaultArray)
		if err != nil {
			return Model{}, err
		}
	}

	engine, err := sorting.NewEngine(values)
	if err != nil {
		return Model{}, err
	}

	registry := opts.Keybinds
	if registry == nil {
		registry = keybinds.NewDefaultRegistry()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	input := textinput.New()
	input.Placeholder = "5, 2, 9, 1, 5, 6"
	input.Prompt = "Array: "
	input.CharLimit = 512
	input.Width = 60

	m := Model{
		engine:         engine,
		keybinds:       registry,
		settings:       opts.Settings,
		historyManager: opts.History,
		logger:         logger,
		mode:           ModeNormal,
		arrayInput:     input,
		helpView:       viewport.New(80, 20),
		modalView:      viewport.New(80, 20),
		history:        NewHistoryState(),
	}

	return m, nil
}

// Run starts the TUI. Logs go to config.LogFile since the UI owns the terminal.
func Run(ctx context.Context, settings config.Settings) error {
	logger, closer, err := logging.SetupFile(config.LogFile, settings.LogLevel, settings.LogFormat)
	if err != nil {
		return err
	}
	defer closer.Close()

	registry, err := keybinds.LoadOrDefault(config.KeybindsFile)
	if err != nil {
		logger.Warn("falling back to default keybinds", "error", err)
		registry = keybinds.NewDefaultRegistry()
	}

	var mgr *history.Manager
	if settings.HistoryEnabled {
		mgr, err = history.NewManager(config.DatabasePath)
		if err != nil {
			// The visualizer works without a journal
			logger.Warn("run journal unavailable", "error", err)
			mgr = nil
		}
	}

	m, err := New(Options{
		Settings: settings,
		Keybinds: registry,
		History:  mgr,
		Logger:   logger,
	})
	if err != nil {
		if mgr != nil {
			mgr.Close()
		}
		return fmt.Errorf("failed to create model: %w", err)
	}
	defer m.Cleanup()

	logger.Info("tui started", "array", parser.FormatArray(m.engine.Original()))

	// Pass pointer since Update uses pointer receiver
	p := tea.NewProgram(&m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return err
	}

	return nil
}
