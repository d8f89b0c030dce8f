package sorting

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Algorithm selects which sort the engine steps through
type Algorithm int

const (
	Bubble Algorithm = iota
	Selection
	Insertion
)

// Algorithms lists every supported algorithm in menu order
var Algorithms = []Algorithm{Bubble, Selection, Insertion}

// algorithmNames are the canonical lowercase names used in config files and flags
var algorithmNames = map[Algorithm]string{
	Bubble:    "bubble",
	Selection: "selection",
	Insertion: "insertion",
}

// String returns the canonical name ("bubble", "selection", "insertion")
func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("algorithm(%d)", int(a))
}

// Title returns the display name shown in explanations
func (a Algorithm) Title() string {
	switch a {
	case Bubble:
		return "Bubble Sort"
	case Selection:
		return "Selection Sort"
	case Insertion:
		return "Insertion Sort"
	}
	return a.String()
}

// Valid reports whether a is one of the supported algorithms
func (a Algorithm) Valid() bool {
	_, ok := algorithmNames[a]
	return ok
}

// Next returns the following algorithm in menu order, wrapping around
func (a Algorithm) Next() Algorithm {
	return Algorithms[(int(a)+1)%len(Algorithms)]
}

// MarshalText implements encoding.TextMarshaler so traces encode the name
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("unknown algorithm %d", int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAlgorithm resolves a user-supplied algorithm name.
// Exact names, display titles and menu numbers (1-3) match directly; anything
// else is fuzzy matched against the canonical names and the best hit wins.
func ParseAlgorithm(name string) (Algorithm, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return 0, fmt.Errorf("algorithm name cannot be empty")
	}

	for _, alg := range Algorithms {
		if normalized == alg.String() || normalized == strings.ToLower(alg.Title()) {
			return alg, nil
		}
		if normalized == fmt.Sprintf("%d", int(alg)+1) {
			return alg, nil
		}
	}

	candidates := make([]string, len(Algorithms))
	for i, alg := range Algorithms {
		candidates[i] = alg.String()
	}

	matches := fuzzy.Find(normalized, candidates)
	if len(matches) == 0 {
		return 0, fmt.Errorf("unknown algorithm %q (expected one of: %s)", name, strings.Join(candidates, ", "))
	}

	return Algorithms[matches[0].Index], nil
}
