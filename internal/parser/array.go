package parser

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/studiowebux/sortstep/internal/sorting"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// MaxArrayLength bounds input so every bar still fits on a terminal
const MaxArrayLength = 64

// ParseArray converts comma-separated text such as "5, 2, 9" into integers.
// Empty text, empty tokens and non-numeric tokens fail with
// sorting.ErrInvalidArrayInput.
func ParseArray(text string) ([]int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: input is empty", sorting.ErrInvalidArrayInput)
	}

	tokens := strings.Split(text, ",")
	values := make([]int, 0, len(tokens))

	for i, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			return nil, fmt.Errorf("%w: empty value at position %d", sorting.ErrInvalidArrayInput, i+1)
		}

		value, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", sorting.ErrInvalidArrayInput, token)
		}
		values = append(values, value)
	}

	return checkLength(values)
}

// FormatArray renders values back into the comma-separated input form
func FormatArray(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}

// arrayDocument is the keyed form accepted in YAML and JSON files
type arrayDocument struct {
	Values []int `json:"values" yaml:"values"`
}

// ParseArrayFile reads an array from a file.
// .yaml/.yml and .json/.jsonc files hold either a bare sequence or a document
// with a "values" key; any other file is read as comma-separated text.
func ParseArrayFile(path string) ([]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read array file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return parseYAMLArray(data)
	case ".json", ".jsonc":
		return parseJSONArray(jsonc.ToJSON(data))
	default:
		return ParseArray(string(data))
	}
}

func parseYAMLArray(data []byte) ([]int, error) {
	var values []int
	if err := yaml.Unmarshal(data, &values); err == nil {
		return checkLength(values)
	}

	var doc arrayDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: invalid YAML: %v", sorting.ErrInvalidArrayInput, err)
	}
	return checkLength(doc.Values)
}

func parseJSONArray(data []byte) ([]int, error) {
	var values []int
	if err := json.Unmarshal(data, &values); err == nil {
		return checkLength(values)
	}

	var doc arrayDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", sorting.ErrInvalidArrayInput, err)
	}
	return checkLength(doc.Values)
}

func checkLength(values []int) ([]int, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no values", sorting.ErrInvalidArrayInput)
	}
	if len(values) > MaxArrayLength {
		return nil, fmt.Errorf("%w: %d values exceeds the limit of %d", sorting.ErrInvalidArrayInput, len(values), MaxArrayLength)
	}
	return values, nil
}
