package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/studiowebux/sortstep/internal/history"
	"github.com/studiowebux/sortstep/internal/keybinds"
	"gopkg.in/yaml.v3"
)

// HistoryOptions contains options for listing the run journal
type HistoryOptions struct {
	DatabasePath string
	Limit        int
	OutputFormat string // text, json, yaml
	Stdout       io.Writer
}

// ListHistory prints recorded runs, newest first
func ListHistory(ctx context.Context, opts HistoryOptions) error {
	mgr, err := history.NewManager(opts.DatabasePath)
	if err != nil {
		return err
	}
	defer mgr.Close()

	entries, err := mgr.Load(ctx, opts.Limit)
	if err != nil {
		return err
	}

	switch opts.OutputFormat {
	case "json":
		if entries == nil {
			entries = []history.Entry{}
		}
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(opts.Stdout, string(data))
	case "yaml":
		data, err := yaml.Marshal(entries)
		if err != nil {
			return err
		}
		fmt.Fprint(opts.Stdout, string(data))
	case "text", "":
		fmt.Fprintln(opts.Stdout, history.Format(entries))
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", opts.OutputFormat)
	}

	return nil
}

// ClearHistory empties the run journal
func ClearHistory(ctx context.Context, dbPath string, out io.Writer) error {
	mgr, err := history.NewManager(dbPath)
	if err != nil {
		return err
	}
	defer mgr.Close()

	count, err := mgr.GetCount(ctx)
	if err != nil {
		return err
	}

	if err := mgr.Clear(ctx); err != nil {
		return err
	}

	fmt.Fprintf(out, "Cleared %d run(s) from history\n", count)
	return nil
}

// ValidateKeybinds loads a keybinds file over the defaults and prints the report.
// It fails when the report has errors.
func ValidateKeybinds(path string, out io.Writer) error {
	config := &keybinds.Config{Version: "1.0"}

	loaded, err := keybinds.LoadConfig(path)
	switch {
	case err == nil:
		config = loaded
		fmt.Fprintf(out, "Validating %s\n", path)
	case errors.Is(err, fs.ErrNotExist):
		fmt.Fprintf(out, "%s not found, validating defaults\n", path)
	default:
		return err
	}

	result := keybinds.NewValidator().ValidateConfig(config)
	fmt.Fprintln(out, result.String())

	if conflicts := keybinds.FindConflicts(config); len(conflicts) > 0 {
		fmt.Fprintf(out, "\n%d conflicting binding(s):\n", len(conflicts))
		for _, conflict := range conflicts {
			fmt.Fprintf(out, "  %s\n", conflict)
		}
	}

	if result.HasErrors() {
		return fmt.Errorf("keybinds have %d error(s)", len(result.Errors))
	}
	return nil
}
