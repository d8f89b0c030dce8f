package keybinds

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// Config represents the user's keybinding configuration.
// Each section maps a key to an action name; "noop" unbinds a default.
type Config struct {
	Version string                       `json:"version"`
	Global  map[string]string            `json:"global,omitempty"`
	Normal  map[string]string            `json:"normal,omitempty"`
	Input   map[string]string            `json:"input,omitempty"`
	Help    map[string]string            `json:"help,omitempty"`
	History map[string]string            `json:"history,omitempty"`
	Confirm map[string]string            `json:"confirm,omitempty"`
	Custom  map[string]map[string]string `json:"custom,omitempty"`
}

// LoadConfig loads keybinding configuration from a JSON file.
// Comments and trailing commas are allowed.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(jsonc.ToJSON(data), &config); err != nil {
		return nil, fmt.Errorf("invalid keybinds.json format: %w", err)
	}

	return &config, nil
}

// SaveConfig saves keybinding configuration to a JSON file
func SaveConfig(config *Config, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// sections maps config sections to contexts
func (c *Config) sections() map[Context]map[string]string {
	sections := map[Context]map[string]string{
		ContextGlobal:  c.Global,
		ContextNormal:  c.Normal,
		ContextInput:   c.Input,
		ContextHelp:    c.Help,
		ContextHistory: c.History,
		ContextConfirm: c.Confirm,
	}
	for name, bindings := range c.Custom {
		sections[Context(name)] = bindings
	}
	return sections
}

// ApplyConfig applies user configuration to a registry
// User bindings override default bindings
func ApplyConfig(registry *Registry, config *Config) error {
	for context, bindings := range config.sections() {
		for key, actionStr := range bindings {
			if err := ValidateKey(key); err != nil {
				return fmt.Errorf("context %s: %w", context, err)
			}
			if err := ValidateAction(actionStr); err != nil {
				return fmt.Errorf("context %s, key %q: %w", context, key, err)
			}

			action := Action(actionStr)
			if action == ActionNoOp {
				registry.Unregister(context, key)
				continue
			}
			registry.Register(context, key, action)
		}
	}

	return nil
}

// LoadOrDefault loads user config if it exists, otherwise returns default registry
func LoadOrDefault(configPath string) (*Registry, error) {
	registry := NewDefaultRegistry()

	if _, err := os.Stat(configPath); err == nil {
		config, err := LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load keybinds.json: %w", err)
		}

		if err := ApplyConfig(registry, config); err != nil {
			return nil, fmt.Errorf("failed to apply keybinds config: %w", err)
		}
	}

	return registry, nil
}

// ExportDefaults exports the default bindings as a config, one section per context
func ExportDefaults() *Config {
	registry := NewDefaultRegistry()
	config := &Config{Version: "1.0"}

	export := func(context Context) map[string]string {
		out := make(map[string]string)
		for key, action := range registry.bindings[context] {
			out[key] = string(action)
		}
		return out
	}

	config.Global = export(ContextGlobal)
	config.Normal = export(ContextNormal)
	config.Input = export(ContextInput)
	config.Help = export(ContextHelp)
	config.History = export(ContextHistory)
	config.Confirm = export(ContextConfirm)

	return config
}
