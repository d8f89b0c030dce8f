package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/studiowebux/sortstep/internal/keybinds"
)

func TestDefaultSettingsAreValid(t *testing.T) {
	if err := DefaultSettings().Validate(); err != nil {
		t.Errorf("default settings invalid: %v", err)
	}
}

func TestLoadSettings_MissingFile(t *testing.T) {
	t.Setenv("SORTSTEP_LOG_LEVEL", "")
	t.Setenv("SORTSTEP_LOG_FORMAT", "")

	settings, err := LoadSettings(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings != DefaultSettings() {
		t.Errorf("expected defaults, got %+v", settings)
	}
}

func TestLoadSettings_PartialFile(t *testing.T) {
	t.Setenv("SORTSTEP_LOG_LEVEL", "")
	t.Setenv("SORTSTEP_LOG_FORMAT", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "default_array: \"9, 8, 7\"\nbar_height: 4\ncolors:\n  highlight: \"#ff0000\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if settings.DefaultArray != "9, 8, 7" {
		t.Errorf("DefaultArray = %q", settings.DefaultArray)
	}
	if settings.BarHeight != 4 {
		t.Errorf("BarHeight = %d, want 4", settings.BarHeight)
	}
	if settings.BarWidth != DefaultSettings().BarWidth {
		t.Errorf("BarWidth = %d, want default", settings.BarWidth)
	}
	if settings.Colors.Highlight != "#ff0000" {
		t.Errorf("Colors.Highlight = %q", settings.Colors.Highlight)
	}
	if settings.Colors.Bar != DefaultSettings().Colors.Bar {
		t.Errorf("Colors.Bar = %q, want default", settings.Colors.Bar)
	}
}

func TestLoadSettings_EnvOverride(t *testing.T) {
	t.Setenv("SORTSTEP_LOG_LEVEL", "debug")
	t.Setenv("SORTSTEP_LOG_FORMAT", "json")

	settings, err := LoadSettings(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.LogLevel != "debug" || settings.LogFormat != "json" {
		t.Errorf("env overrides not applied: %+v", settings)
	}
}

func TestLoadSettings_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("bar_height: [\n"), 0644); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}

	if _, err := LoadSettings(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr string
	}{
		{"zero height", func(s *Settings) { s.BarHeight = 0 }, "bar_height"},
		{"zero width", func(s *Settings) { s.BarWidth = 0 }, "bar_width"},
		{"fast play", func(s *Settings) { s.PlayIntervalMs = 10 }, "play_interval_ms"},
		{"negative timeout", func(s *Settings) { s.MessageTimeout = -1 }, "message_timeout"},
		{"bad level", func(s *Settings) { s.LogLevel = "loud" }, "log_level"},
		{"bad format", func(s *Settings) { s.LogFormat = "xml" }, "log_format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)
			err := s.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error mentioning %q", err, tt.wantErr)
			}
		})
	}
}

func TestInitializeAt(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sortstep")

	if err := InitializeAt(dir); err != nil {
		t.Fatalf("InitializeAt error: %v", err)
	}

	if _, err := os.Stat(SettingsFile); err != nil {
		t.Errorf("settings file not created: %v", err)
	}
	if filepath.Dir(DatabasePath) != dir {
		t.Errorf("DatabasePath = %s, want inside %s", DatabasePath, dir)
	}
	if filepath.Base(KeybindsFile) != "keybinds.json" {
		t.Errorf("KeybindsFile = %s", KeybindsFile)
	}
}

func TestInitializeAt_WritesKeybindsTemplate(t *testing.T) {
	dir := t.TempDir()

	if err := InitializeAt(dir); err != nil {
		t.Fatalf("InitializeAt error: %v", err)
	}

	template, err := keybinds.LoadConfig(KeybindsFile)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if template.Normal["l"] != "step_forward" {
		t.Errorf("normal l = %q, want step_forward", template.Normal["l"])
	}

	result := keybinds.NewValidator().ValidateConfig(template)
	if result.HasErrors() {
		t.Errorf("template has errors:\n%s", result.String())
	}

	registry, err := keybinds.LoadOrDefault(KeybindsFile)
	if err != nil {
		t.Fatalf("LoadOrDefault error: %v", err)
	}
	if action, _ := registry.Match(keybinds.ContextNormal, "tab"); action != keybinds.ActionCycleAlgorithm {
		t.Errorf("tab -> %s, want %s", action, keybinds.ActionCycleAlgorithm)
	}

	// An edited file is left alone on the next start
	if err := os.WriteFile(KeybindsFile, []byte(`{"normal": {"x": "quit"}}`), FilePermissions); err != nil {
		t.Fatalf("failed to edit keybinds: %v", err)
	}
	if err := InitializeAt(dir); err != nil {
		t.Fatalf("InitializeAt error: %v", err)
	}
	edited, err := keybinds.LoadConfig(KeybindsFile)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if _, ok := edited.Normal["l"]; ok {
		t.Error("keybinds file was overwritten")
	}
}
