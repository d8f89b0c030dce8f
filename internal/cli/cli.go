package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/studiowebux/sortstep/internal/bars"
	"github.com/studiowebux/sortstep/internal/config"
	"github.com/studiowebux/sortstep/internal/filter"
	"github.com/studiowebux/sortstep/internal/history"
	"github.com/studiowebux/sortstep/internal/logging"
	"github.com/studiowebux/sortstep/internal/parser"
	"github.com/studiowebux/sortstep/internal/sorting"
	"gopkg.in/yaml.v3"
)

// IsInteractive checks if stdin is a terminal (not piped)
func IsInteractive() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// RunOptions contains options for tracing a sort in CLI mode
type RunOptions struct {
	Algorithm    string
	Array        string // comma-separated integers
	File         string // array file (.yaml, .json, .jsonc or comma text)
	OutputFormat string // text, json, yaml
	Filter       string // JMESPath filter expression
	Query        string // JMESPath query expression
	NoColor      bool
	NoHistory    bool

	Settings     config.Settings
	DatabasePath string
	// Stdin is read for the array when neither Array nor File is set
	Stdin  io.Reader
	Stdout io.Writer
	// Prompt enables the algorithm selector when Algorithm is empty
	Prompt bool
}

// Run traces a sort from the initial array to completion and prints every step
func Run(ctx context.Context, opts RunOptions) error {
	logger := logging.FromContext(ctx)

	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	// Reject bad expressions before anything is traced or recorded
	for _, expr := range []string{opts.Filter, opts.Query} {
		if expr != "" && !filter.IsValidJMESPath(expr) {
			return fmt.Errorf("invalid JMESPath expression: %q", expr)
		}
	}

	values, err := resolveValues(opts)
	if err != nil {
		return err
	}

	algorithm, err := resolveAlgorithm(opts)
	if err != nil {
		return err
	}

	logger = logging.WithAlgorithm(logger, algorithm.String())
	logger.Debug("tracing run", "length", len(values))

	run, err := sorting.Trace(algorithm, values)
	if err != nil {
		return fmt.Errorf("failed to trace run: %w", err)
	}

	logger.Info("run completed", "steps", run.Steps())

	if opts.Settings.HistoryEnabled && !opts.NoHistory && opts.DatabasePath != "" {
		if err := recordRun(logging.WithLogger(ctx, logger), opts.DatabasePath, run); err != nil {
			// Don't fail the run if the journal is unavailable
			logger.Warn("failed to save history", "error", err)
		}
	}

	if opts.Filter != "" || opts.Query != "" {
		result, err := filter.ApplyValue(run, opts.Filter, opts.Query)
		if err != nil {
			return fmt.Errorf("filter/query error: %w", err)
		}
		fmt.Fprintln(opts.Stdout, result)
		return nil
	}

	if opts.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	output, err := formatOutput(run, opts.OutputFormat, opts.Settings, opts.NoColor)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	fmt.Fprint(opts.Stdout, output)
	return nil
}

// resolveValues picks the array source. Priority: file > flag > stdin > settings
func resolveValues(opts RunOptions) ([]int, error) {
	if opts.File != "" {
		values, err := parser.ParseArrayFile(opts.File)
		if err != nil {
			return nil, fmt.Errorf("failed to read array file: %w", err)
		}
		return values, nil
	}

	text := opts.Array
	if text == "" && opts.Stdin != nil {
		data, err := io.ReadAll(opts.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read from stdin: %w", err)
		}
		text = strings.TrimSpace(string(data))
	}
	if text == "" {
		text = opts.Settings.DefaultArray
	}

	return parser.ParseArray(text)
}

func resolveAlgorithm(opts RunOptions) (sorting.Algorithm, error) {
	if opts.Algorithm != "" {
		return sorting.ParseAlgorithm(opts.Algorithm)
	}

	fallback, err := sorting.ParseAlgorithm(opts.Settings.DefaultAlgorithm)
	if err != nil {
		fallback = sorting.Bubble
	}

	if opts.Prompt {
		return promptForAlgorithm(fallback)
	}
	return fallback, nil
}

func recordRun(ctx context.Context, dbPath string, run *sorting.Run) error {
	mgr, err := history.NewManager(dbPath)
	if err != nil {
		return err
	}
	defer mgr.Close()

	id, err := mgr.Save(ctx, run)
	if err != nil {
		return err
	}

	logging.WithRunID(logging.FromContext(ctx), id).Debug("run saved to history")
	return nil
}

// formatOutput formats the run based on the output format
func formatOutput(run *sorting.Run, format string, settings config.Settings, plain bool) (string, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(run, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil

	case "yaml":
		data, err := yaml.Marshal(run)
		if err != nil {
			return "", err
		}
		return string(data), nil

	case "text", "":
		var sb strings.Builder

		sb.WriteString(headerStyle.Render(run.Algorithm.Title()))
		sb.WriteString(fmt.Sprintf(" on [%s]\n\n", parser.FormatArray(run.Input)))

		for _, frame := range run.Frames {
			chart := newChart(frame, settings, plain)
			sb.WriteString(chart.Render())
			sb.WriteString("\n")
			sb.WriteString(explanationStyle.Render(frame.Explanation))
			sb.WriteString("\n\n")
		}

		final := run.Final()
		sb.WriteString(fmt.Sprintf("Result: [%s] in %d steps\n", parser.FormatArray(final.Values), final.Step))
		return sb.String(), nil

	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}

func newChart(frame sorting.Frame, settings config.Settings, plain bool) bars.Chart {
	chart := bars.New(frame.Values, frame.Step).WithHighlight(frame.Touched)
	if settings.BarHeight > 0 {
		chart.Height = settings.BarHeight
	}
	if settings.BarWidth > 0 {
		chart.BarWidth = settings.BarWidth
	}
	if settings.Colors.Bar != "" {
		chart.NormalColor = lipgloss.Color(settings.Colors.Bar)
	}
	if settings.Colors.Highlight != "" {
		chart.HighlightColor = lipgloss.Color(settings.Colors.Highlight)
	}
	chart.Plain = plain
	return chart
}

var (
	headerStyle      = lipgloss.NewStyle().Bold(true)
	explanationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)
