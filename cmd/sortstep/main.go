package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/studiowebux/sortstep/internal/cli"
	"github.com/studiowebux/sortstep/internal/config"
	"github.com/studiowebux/sortstep/internal/logging"
	"github.com/studiowebux/sortstep/internal/tui"
)

var (
	version = "0.1.0"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sortstep",
	Short: "sortstep - step through sorting algorithms",
	Long: `sortstep visualizes bubble, selection and insertion sort one step at a time.

Run without arguments to start the interactive visualizer, or use 'run' to
print a full trace in the terminal.

Examples:
  sortstep                                  # Start interactive TUI
  sortstep run --algo bubble --array 5,2,9  # Print every step
  echo "3, 1, 2" | sortstep run -a insertion -o json
  sortstep run -a 2 --file input.yaml --query "frames[-1].values"
  sortstep history --limit 10               # Recent completed runs
  sortstep keybinds validate                # Check keybinds.json`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		return tui.Run(cmd.Context(), settings)
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Print the full trace of a sort",
	Long: `Trace a sort from the initial array to completion and print every step.

The array comes from --file, then --array, then piped stdin, then the
default_array setting. Without --algo an interactive selector is shown
when stdin is a terminal.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}

		level := "warn"
		if flagVerbose {
			level = "debug"
		}
		logger := logging.Setup(os.Stderr, level, settings.LogFormat)
		ctx := logging.WithLogger(cmd.Context(), logger)

		interactive := cli.IsInteractive()
		opts := cli.RunOptions{
			Algorithm:    flagAlgorithm,
			Array:        flagArray,
			File:         flagFile,
			OutputFormat: flagOutput,
			Filter:       flagFilter,
			Query:        flagQuery,
			NoColor:      flagNoColor,
			NoHistory:    flagNoHistory,
			Settings:     settings,
			DatabasePath: config.DatabasePath,
			Stdout:       cmd.OutOrStdout(),
			Prompt:       interactive && flagAlgorithm == "",
		}
		if !interactive {
			opts.Stdin = os.Stdin
		}

		return cli.Run(ctx, opts)
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List completed runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := loadSettings(); err != nil {
			return err
		}
		return cli.ListHistory(cmd.Context(), cli.HistoryOptions{
			DatabasePath: config.DatabasePath,
			Limit:        flagHistoryLimit,
			OutputFormat: flagHistoryOutput,
			Stdout:       cmd.OutOrStdout(),
		})
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := loadSettings(); err != nil {
			return err
		}
		return cli.ClearHistory(cmd.Context(), config.DatabasePath, cmd.OutOrStdout())
	},
}

var keybindsCmd = &cobra.Command{
	Use:   "keybinds",
	Short: "Inspect keybinding configuration",
}

var keybindsValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate keybinds.json",
	Long: `Validate a keybinding file and print errors and warnings.

Defaults to ~/.sortstep/keybinds.json.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := loadSettings(); err != nil {
			return err
		}
		path := config.KeybindsFile
		if len(args) > 0 {
			path = args[0]
		}
		return cli.ValidateKeybinds(path, cmd.OutOrStdout())
	},
}

// Flags for run command
var (
	flagAlgorithm string
	flagArray     string
	flagFile      string
	flagOutput    string
	flagFilter    string
	flagQuery     string
	flagNoColor   bool
	flagNoHistory bool
	flagVerbose   bool
)

// Flags for history command
var (
	flagHistoryLimit  int
	flagHistoryOutput string
)

func init() {
	// Run command flags
	runCmd.Flags().StringVarP(&flagAlgorithm, "algo", "a", "", "Algorithm (bubble/selection/insertion or 1/2/3)")
	runCmd.Flags().StringVar(&flagArray, "array", "", "Comma-separated integers, e.g. \"5, 2, 9\"")
	runCmd.Flags().StringVarP(&flagFile, "file", "f", "", "Read the array from a .yaml, .json, .jsonc or text file")
	runCmd.Flags().StringVarP(&flagOutput, "output", "o", "text", "Output format (text/json/yaml)")
	runCmd.Flags().StringVar(&flagFilter, "filter", "", "JMESPath filter applied to the JSON trace")
	runCmd.Flags().StringVarP(&flagQuery, "query", "q", "", "JMESPath query applied after --filter")
	runCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable colored bars")
	runCmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "Do not record the run")
	runCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug output to stderr")
	runCmd.MarkFlagsMutuallyExclusive("array", "file")

	// History command flags
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 20, "Number of runs to show (0 = all)")
	historyCmd.Flags().StringVarP(&flagHistoryOutput, "output", "o", "text", "Output format (text/json/yaml)")

	// Add subcommands
	historyCmd.AddCommand(historyClearCmd)
	keybindsCmd.AddCommand(keybindsValidateCmd)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(keybindsCmd)
}

// loadSettings initializes ~/.sortstep and reads the active settings file
func loadSettings() (config.Settings, error) {
	if err := config.Initialize(); err != nil {
		return config.Settings{}, fmt.Errorf("failed to initialize config: %w", err)
	}

	settings, err := config.LoadSettings(config.GetSettingsFilePath())
	if err != nil {
		return settings, err
	}
	if err := settings.Validate(); err != nil {
		slog.Warn("invalid settings, using defaults", "error", err)
		return config.DefaultSettings(), nil
	}
	return settings, nil
}
