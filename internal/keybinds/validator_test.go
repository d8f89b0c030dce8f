package keybinds

import (
	"strings"
	"testing"
)

func TestNewValidator(t *testing.T) {
	v := NewValidator()

	if v == nil {
		t.Fatal("NewValidator returned nil")
	}

	if !v.reservedKeys["ctrl+c"] {
		t.Error("Expected ctrl+c to be a reserved key")
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      ValidationError
		expected string
	}{
		{
			name: "conflict error",
			err: ValidationError{
				Type:    "conflict",
				Context: ContextNormal,
				Key:     "q",
				Message: "no key bound to quit",
			},
			expected: "[conflict] q in context 'normal': no key bound to quit",
		},
		{
			name: "warning",
			err: ValidationError{
				Type:    "warning",
				Context: ContextHistory,
				Key:     "tab",
				Message: "shadows global binding",
			},
			expected: "[warning] tab in context 'history': shadows global binding",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestValidationResult_String(t *testing.T) {
	tests := []struct {
		name     string
		result   *ValidationResult
		contains []string
	}{
		{
			name:     "no issues",
			result:   &ValidationResult{},
			contains: []string{"No issues found"},
		},
		{
			name: "both errors and warnings",
			result: &ValidationResult{
				Errors: []ValidationError{
					{Type: "conflict", Context: ContextNormal, Key: "q", Message: "duplicate"},
				},
				Warnings: []ValidationError{
					{Type: "warning", Context: ContextHelp, Key: "tab", Message: "shadows"},
				},
			},
			contains: []string{"Errors (1)", "Warnings (1)", "conflict", "warning"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.result.String()
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("String() output missing %q, got:\n%s", want, got)
				}
			}
		})
	}
}

func TestValidateRegistry_Defaults(t *testing.T) {
	result := NewValidator().ValidateRegistry(NewDefaultRegistry())

	if result.HasErrors() {
		t.Errorf("default registry has errors:\n%s", result.String())
	}
	if result.HasWarnings() {
		t.Errorf("default registry has warnings:\n%s", result.String())
	}
}

func TestCheckReservedKeys(t *testing.T) {
	registry := NewDefaultRegistry()
	registry.Register(ContextGlobal, "ctrl+c", ActionOpenHelp)

	result := NewValidator().ValidateRegistry(registry)

	if !result.HasWarnings() {
		t.Fatal("expected warning for rebinding ctrl+c")
	}
	if !strings.Contains(result.Warnings[0].Message, "reserved") {
		t.Errorf("unexpected warning %v", result.Warnings[0])
	}
}

func TestCheckShadowing(t *testing.T) {
	registry := NewDefaultRegistry()
	registry.Register(ContextGlobal, "x", ActionQuit)
	registry.Register(ContextNormal, "x", ActionStepForward)

	result := NewValidator().ValidateRegistry(registry)

	found := false
	for _, w := range result.Warnings {
		if w.Key == "x" && w.Context == ContextNormal {
			found = true
		}
	}
	if !found {
		t.Errorf("expected shadowing warning, got:\n%s", result.String())
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name       string
		config     *Config
		wantErrors bool
	}{
		{
			name:   "empty config",
			config: &Config{Version: "1.0"},
		},
		{
			name: "rebind stepping",
			config: &Config{
				Normal: map[string]string{"f": "step_forward", "b": "step_backward"},
			},
		},
		{
			name: "unknown action",
			config: &Config{
				Normal: map[string]string{"z": "launch_rockets"},
			},
			wantErrors: true,
		},
		{
			name: "empty action",
			config: &Config{
				Normal: map[string]string{"z": ""},
			},
			wantErrors: true,
		},
		{
			name: "unbinding quit",
			config: &Config{
				Normal: map[string]string{"q": "noop"},
			},
			wantErrors: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewValidator().ValidateConfig(tt.config)
			if result.HasErrors() != tt.wantErrors {
				t.Errorf("HasErrors() = %v, want %v\n%s", result.HasErrors(), tt.wantErrors, result.String())
			}
		})
	}
}

func TestFindConflicts(t *testing.T) {
	config := &Config{
		Normal: map[string]string{
			"right": "noop",
			"l":     "noop",
			"n":     "noop",
		},
	}

	conflicts := FindConflicts(config)
	if len(conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %d: %v", len(conflicts), conflicts)
	}
	if !strings.Contains(conflicts[0], "step_forward") {
		t.Errorf("unexpected conflict %q", conflicts[0])
	}
}

func TestValidateKey(t *testing.T) {
	tests := []struct {
		key     string
		wantErr bool
	}{
		{"q", false},
		{"ctrl+c", false},
		{" ", false},
		{"", true},
		{"ctrl+", true},
		{"alt+", true},
	}

	for _, tt := range tests {
		err := ValidateKey(tt.key)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateKey(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
		}
	}
}
