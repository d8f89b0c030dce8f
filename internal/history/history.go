// Package history keeps a journal of sorting runs that reached completion.
package history

import (
	"fmt"
	"strings"
	"time"

	"github.com/studiowebux/sortstep/internal/parser"
	"github.com/studiowebux/sortstep/internal/sorting"
)

// Entry is one completed run.
type Entry struct {
	ID        string            `json:"id" yaml:"id"`
	StartedAt time.Time         `json:"started_at" yaml:"started_at"`
	Algorithm sorting.Algorithm `json:"algorithm" yaml:"algorithm"`
	Input     []int             `json:"input" yaml:"input"`
	Final     []int             `json:"final" yaml:"final"`
	Steps     int               `json:"steps" yaml:"steps"`
}

// NewEntry builds an entry from a run trace.
func NewEntry(run *sorting.Run) Entry {
	final := run.Final()
	return Entry{
		Algorithm: run.Algorithm,
		Input:     append([]int(nil), run.Input...),
		Final:     append([]int(nil), final.Values...),
		Steps:     final.Step,
	}
}

// Summary returns a one-line description of the entry.
func (e Entry) Summary() string {
	return fmt.Sprintf("%s  %-14s  [%s] -> [%s]  %d steps",
		e.StartedAt.Local().Format("2006-01-02 15:04:05"),
		e.Algorithm.Title(),
		parser.FormatArray(e.Input),
		parser.FormatArray(e.Final),
		e.Steps,
	)
}

// Format renders entries one per line, newest first as given.
func Format(entries []Entry) string {
	if len(entries) == 0 {
		return "No runs recorded yet."
	}

	var sb strings.Builder
	for i, entry := range entries {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(entry.Summary())
	}
	return sb.String()
}
