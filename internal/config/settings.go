package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Colors holds lipgloss color strings (ANSI numbers or hex)
type Colors struct {
	Bar       string `yaml:"bar"`
	Highlight string `yaml:"highlight"`
}

// Settings is the user configuration loaded from config.yaml
type Settings struct {
	DefaultArray     string `yaml:"default_array"`
	DefaultAlgorithm string `yaml:"default_algorithm"`
	BarHeight        int    `yaml:"bar_height"`
	BarWidth         int    `yaml:"bar_width"`
	PlayIntervalMs   int    `yaml:"play_interval_ms"`
	// MessageTimeout clears status/error messages after this many seconds (0 = keep)
	MessageTimeout int    `yaml:"message_timeout"`
	HistoryEnabled bool   `yaml:"history_enabled"`
	LogLevel       string `yaml:"log_level"`
	LogFormat      string `yaml:"log_format"`
	Colors         Colors `yaml:"colors"`
}

// DefaultSettings returns the built-in configuration
func DefaultSettings() Settings {
	return Settings{
		DefaultArray:     "5, 2, 9, 1, 5, 6",
		DefaultAlgorithm: "bubble",
		BarHeight:        10,
		BarWidth:         3,
		PlayIntervalMs:   600,
		MessageTimeout:   5,
		HistoryEnabled:   true,
		LogLevel:         "info",
		LogFormat:        "text",
		Colors: Colors{
			Bar:       "62",
			Highlight: "214",
		},
	}
}

// LoadSettings reads settings from path. Missing keys keep their defaults and
// a missing file yields the defaults. SORTSTEP_LOG_LEVEL and SORTSTEP_LOG_FORMAT
// override the file.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return settings, fmt.Errorf("failed to read settings: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &settings); err != nil {
			return DefaultSettings(), fmt.Errorf("invalid settings file %s: %w", path, err)
		}
	}

	if level := os.Getenv("SORTSTEP_LOG_LEVEL"); level != "" {
		settings.LogLevel = level
	}
	if format := os.Getenv("SORTSTEP_LOG_FORMAT"); format != "" {
		settings.LogFormat = format
	}

	return settings, nil
}

// SaveSettings writes settings as YAML
func SaveSettings(path string, settings Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	return os.WriteFile(path, data, FilePermissions)
}

// Validate reports settings that cannot be used
func (s Settings) Validate() error {
	var problems []string

	if s.BarHeight < 1 {
		problems = append(problems, fmt.Sprintf("bar_height must be positive (got %d)", s.BarHeight))
	}
	if s.BarWidth < 1 {
		problems = append(problems, fmt.Sprintf("bar_width must be positive (got %d)", s.BarWidth))
	}
	if s.PlayIntervalMs < 50 {
		problems = append(problems, fmt.Sprintf("play_interval_ms must be at least 50 (got %d)", s.PlayIntervalMs))
	}
	if s.MessageTimeout < 0 {
		problems = append(problems, fmt.Sprintf("message_timeout cannot be negative (got %d)", s.MessageTimeout))
	}

	switch strings.ToLower(s.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("unknown log_level %q", s.LogLevel))
	}

	switch strings.ToLower(s.LogFormat) {
	case "text", "json":
	default:
		problems = append(problems, fmt.Sprintf("unknown log_format %q", s.LogFormat))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid settings: %s", strings.Join(problems, "; "))
	}
	return nil
}
