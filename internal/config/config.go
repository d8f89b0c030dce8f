package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/studiowebux/sortstep/internal/keybinds"
)

const (
	// FilePermissions is the default permission mode for regular files (read/write for owner, read for others)
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories (rwxr-xr-x)
	DirPermissions = 0755
)

var (
	// ConfigDir is the global configuration directory (~/.sortstep)
	ConfigDir string

	// SettingsFile is the YAML settings file
	SettingsFile string

	// KeybindsFile holds user keybinding overrides
	KeybindsFile string

	// DatabasePath is the SQLite database file for the run journal
	DatabasePath string

	// LogFile receives TUI logs, since the terminal is owned by the UI
	LogFile string
)

// Initialize sets up the configuration directory and default settings file
// It creates ~/.sortstep/ if it doesn't exist
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	return InitializeAt(filepath.Join(homeDir, ".sortstep"))
}

// InitializeAt is Initialize rooted at an explicit directory
func InitializeAt(dir string) error {
	ConfigDir = dir
	SettingsFile = filepath.Join(ConfigDir, "config.yaml")
	KeybindsFile = filepath.Join(ConfigDir, "keybinds.json")
	DatabasePath = filepath.Join(ConfigDir, "sortstep.db")
	LogFile = filepath.Join(ConfigDir, "sortstep.log")

	if err := os.MkdirAll(ConfigDir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", ConfigDir, err)
	}

	// Write defaults if the settings file doesn't exist yet
	if _, err := os.Stat(SettingsFile); os.IsNotExist(err) {
		if err := SaveSettings(SettingsFile, DefaultSettings()); err != nil {
			return fmt.Errorf("failed to create settings file: %w", err)
		}
	}

	// Keybinds template lists every default binding for editing
	if _, err := os.Stat(KeybindsFile); os.IsNotExist(err) {
		if err := keybinds.SaveConfig(keybinds.ExportDefaults(), KeybindsFile); err != nil {
			return fmt.Errorf("failed to create keybinds file: %w", err)
		}
	}

	return nil
}

// GetSettingsFilePath returns the settings file path (local or global)
func GetSettingsFilePath() string {
	if _, err := os.Stat(".sortstep.yaml"); err == nil {
		return ".sortstep.yaml"
	}
	return SettingsFile
}
