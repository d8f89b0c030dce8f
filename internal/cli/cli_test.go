package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/sortstep/internal/config"
	"github.com/studiowebux/sortstep/internal/sorting"
)

func runOpts(t *testing.T) (RunOptions, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	settings := config.DefaultSettings()
	return RunOptions{
		Settings:     settings,
		DatabasePath: filepath.Join(t.TempDir(), "sortstep.db"),
		Stdout:       &out,
		NoColor:      true,
	}, &out
}

func TestRun_TextOutput(t *testing.T) {
	opts, out := runOpts(t)
	opts.Algorithm = "bubble"
	opts.Array = "5, 2, 9, 1, 5, 6"

	if err := Run(context.Background(), opts); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Bubble Sort on [5, 2, 9, 1, 5, 6]",
		"Step: 1",
		"Bubble Sort: Comparing and swapping adjacent elements.",
		"Bubble Sort completed! Complexity: O(n^2) Time, O(1) Space.",
		"Result: [1, 2, 5, 5, 6, 9] in 4 steps",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRun_OutputFormats(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"json", `"algorithm": "selection"`},
		{"yaml", "algorithm: selection"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			opts, out := runOpts(t)
			opts.Algorithm = "selection"
			opts.Array = "3,1,2"
			opts.OutputFormat = tt.format

			if err := Run(context.Background(), opts); err != nil {
				t.Fatalf("Run() error: %v", err)
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out.String())
			}
		})
	}
}

func TestRun_UnknownFormat(t *testing.T) {
	opts, _ := runOpts(t)
	opts.Array = "2,1"
	opts.OutputFormat = "xml"

	if err := Run(context.Background(), opts); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestRun_Query(t *testing.T) {
	opts, out := runOpts(t)
	opts.Algorithm = "insertion"
	opts.Array = "3,1,2"
	opts.Query = "frames[-1].values"

	if err := Run(context.Background(), opts); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	want := "[\n  1,\n  2,\n  3\n]\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestRun_InvalidExpression(t *testing.T) {
	tests := []struct {
		name   string
		filter string
		query  string
	}{
		{"bad query", "", "frames[-1"},
		{"bad filter", "frames[?", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, out := runOpts(t)
			opts.Array = "3,1,2"
			opts.Filter = tt.filter
			opts.Query = tt.query
			ctx := context.Background()

			err := Run(ctx, opts)
			if err == nil || !strings.Contains(err.Error(), "invalid JMESPath expression") {
				t.Fatalf("Run() error = %v, want invalid JMESPath expression", err)
			}
			if out.Len() != 0 {
				t.Errorf("expected no output, got %q", out.String())
			}

			var list bytes.Buffer
			err = ListHistory(ctx, HistoryOptions{DatabasePath: opts.DatabasePath, OutputFormat: "json", Stdout: &list})
			if err != nil {
				t.Fatalf("ListHistory() error: %v", err)
			}
			if strings.TrimSpace(list.String()) != "[]" {
				t.Errorf("expected no recorded run, got %q", list.String())
			}
		})
	}
}

func TestRun_InvalidArray(t *testing.T) {
	opts, out := runOpts(t)
	opts.Array = "1, two, 3"

	err := Run(context.Background(), opts)
	if !errors.Is(err, sorting.ErrInvalidArrayInput) {
		t.Fatalf("Run() error = %v, want ErrInvalidArrayInput", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output, got %q", out.String())
	}
}

func TestRun_ArraySources(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "values.yaml")
	if err := os.WriteFile(yamlPath, []byte("values: [4, 3]\n"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	tests := []struct {
		name   string
		modify func(*RunOptions)
		want   string
	}{
		{
			name:   "settings default",
			modify: func(o *RunOptions) {},
			want:   "on [5, 2, 9, 1, 5, 6]",
		},
		{
			name:   "stdin",
			modify: func(o *RunOptions) { o.Stdin = strings.NewReader("7,8\n") },
			want:   "on [7, 8]",
		},
		{
			name: "flag wins over stdin",
			modify: func(o *RunOptions) {
				o.Array = "9,1"
				o.Stdin = strings.NewReader("7,8")
			},
			want: "on [9, 1]",
		},
		{
			name: "file wins over flag",
			modify: func(o *RunOptions) {
				o.Array = "9,1"
				o.File = yamlPath
			},
			want: "on [4, 3]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, out := runOpts(t)
			opts.NoHistory = true
			tt.modify(&opts)

			if err := Run(context.Background(), opts); err != nil {
				t.Fatalf("Run() error: %v", err)
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out.String())
			}
		})
	}
}

func TestRun_RecordsHistory(t *testing.T) {
	opts, _ := runOpts(t)
	opts.Array = "2,1"
	ctx := context.Background()

	if err := Run(ctx, opts); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	opts.NoHistory = true
	if err := Run(ctx, opts); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	var out bytes.Buffer
	err := ListHistory(ctx, HistoryOptions{DatabasePath: opts.DatabasePath, Stdout: &out})
	if err != nil {
		t.Fatalf("ListHistory() error: %v", err)
	}
	if strings.Count(out.String(), "Bubble Sort") != 1 {
		t.Errorf("expected exactly one recorded run:\n%s", out.String())
	}

	out.Reset()
	if err := ClearHistory(ctx, opts.DatabasePath, &out); err != nil {
		t.Fatalf("ClearHistory() error: %v", err)
	}
	if !strings.Contains(out.String(), "Cleared 1 run(s)") {
		t.Errorf("unexpected clear output %q", out.String())
	}

	out.Reset()
	err = ListHistory(ctx, HistoryOptions{DatabasePath: opts.DatabasePath, OutputFormat: "json", Stdout: &out})
	if err != nil {
		t.Fatalf("ListHistory() error: %v", err)
	}
	if strings.TrimSpace(out.String()) != "[]" {
		t.Errorf("expected empty json list, got %q", out.String())
	}
}

func TestValidateKeybinds(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file validates defaults", func(t *testing.T) {
		var out bytes.Buffer
		if err := ValidateKeybinds(filepath.Join(dir, "missing.json"), &out); err != nil {
			t.Fatalf("ValidateKeybinds() error: %v", err)
		}
		if !strings.Contains(out.String(), "No issues found") {
			t.Errorf("unexpected report:\n%s", out.String())
		}
	})

	t.Run("unbound quit fails", func(t *testing.T) {
		path := filepath.Join(dir, "keybinds.json")
		if err := os.WriteFile(path, []byte(`{"normal": {"q": "noop"}}`), 0644); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}

		var out bytes.Buffer
		if err := ValidateKeybinds(path, &out); err == nil {
			t.Error("expected error for unbound quit")
		}
		if !strings.Contains(out.String(), "no key bound to quit") {
			t.Errorf("unexpected report:\n%s", out.String())
		}
	})

	t.Run("conflicts are listed", func(t *testing.T) {
		path := filepath.Join(dir, "conflicts.json")
		fixture := `{"normal": {"right": "noop", "l": "noop", "n": "noop"}}`
		if err := os.WriteFile(path, []byte(fixture), 0644); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}

		var out bytes.Buffer
		if err := ValidateKeybinds(path, &out); err == nil {
			t.Error("expected error for unbound step_forward")
		}
		if !strings.Contains(out.String(), "1 conflicting binding(s)") {
			t.Errorf("unexpected report:\n%s", out.String())
		}
	})
}

func TestSelectorModel(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want *sorting.Algorithm
	}{
		{
			name: "enter keeps default",
			keys: []tea.KeyMsg{{Type: tea.KeyEnter}},
			want: algPtr(sorting.Selection),
		},
		{
			name: "move down then enter",
			keys: []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyEnter}},
			want: algPtr(sorting.Insertion),
		},
		{
			name: "quick pick",
			keys: []tea.KeyMsg{{Type: tea.KeyRunes, Runes: []rune{'1'}}},
			want: algPtr(sorting.Bubble),
		},
		{
			name: "cancel",
			keys: []tea.KeyMsg{{Type: tea.KeyEsc}},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var model tea.Model = newSelectorModel(sorting.Selection)
			for _, key := range tt.keys {
				model, _ = model.Update(key)
			}

			m := model.(selectorModel)
			if !m.quitting {
				t.Error("selector should have quit")
			}
			switch {
			case tt.want == nil && m.choice != nil:
				t.Errorf("choice = %s, want none", *m.choice)
			case tt.want != nil && (m.choice == nil || *m.choice != *tt.want):
				t.Errorf("choice = %v, want %s", m.choice, *tt.want)
			}
		})
	}
}

func algPtr(a sorting.Algorithm) *sorting.Algorithm {
	return &a
}
