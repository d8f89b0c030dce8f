package history

import (
	"context"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/studiowebux/sortstep/internal/sorting"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	m, err := NewManager(filepath.Join(t.TempDir(), "nested", "sortstep.db"))
	if err != nil {
		t.Fatalf("NewManager() error: %v", err)
	}
	t.Cleanup(func() { m.Close() })
	return m
}

func traceRun(t *testing.T, a sorting.Algorithm, values []int) *sorting.Run {
	t.Helper()

	run, err := sorting.Trace(a, values)
	if err != nil {
		t.Fatalf("Trace() error: %v", err)
	}
	return run
}

func TestManager_SaveAndLoad(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	calls := 0
	m.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Minute)
	}

	firstID, err := m.Save(ctx, traceRun(t, sorting.Bubble, []int{5, 2, 9, 1, 5, 6}))
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if _, err := uuid.Parse(firstID); err != nil {
		t.Errorf("Save() id %q is not a uuid: %v", firstID, err)
	}

	secondID, err := m.Save(ctx, traceRun(t, sorting.Insertion, []int{3, 1, 2}))
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	entries, err := m.Load(ctx, 0)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Load() returned %d entries, want 2", len(entries))
	}

	newest := entries[0]
	if newest.ID != secondID {
		t.Errorf("newest id = %s, want %s", newest.ID, secondID)
	}
	if newest.Algorithm != sorting.Insertion {
		t.Errorf("algorithm = %s, want insertion", newest.Algorithm)
	}
	if !reflect.DeepEqual(newest.Input, []int{3, 1, 2}) {
		t.Errorf("input = %v", newest.Input)
	}
	if !reflect.DeepEqual(newest.Final, []int{1, 2, 3}) {
		t.Errorf("final = %v", newest.Final)
	}
	if newest.Steps != 2 {
		t.Errorf("steps = %d, want 2", newest.Steps)
	}
	if !newest.StartedAt.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("started_at = %v", newest.StartedAt)
	}

	oldest := entries[1]
	if oldest.ID != firstID {
		t.Errorf("oldest id = %s, want %s", oldest.ID, firstID)
	}
	if !reflect.DeepEqual(oldest.Final, []int{1, 2, 5, 5, 6, 9}) {
		t.Errorf("final = %v", oldest.Final)
	}
}

func TestManager_LoadLimit(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := m.Save(ctx, traceRun(t, sorting.Selection, []int{2, 1})); err != nil {
			t.Fatalf("Save() error: %v", err)
		}
	}

	tests := []struct {
		limit int
		want  int
	}{
		{0, 5},
		{-1, 5},
		{3, 3},
		{10, 5},
	}

	for _, tt := range tests {
		entries, err := m.Load(ctx, tt.limit)
		if err != nil {
			t.Fatalf("Load(%d) error: %v", tt.limit, err)
		}
		if len(entries) != tt.want {
			t.Errorf("Load(%d) returned %d entries, want %d", tt.limit, len(entries), tt.want)
		}
	}
}

func TestManager_Clear(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	if _, err := m.Save(ctx, traceRun(t, sorting.Bubble, []int{2, 1})); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	if err := m.Clear(ctx); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}

	count, err := m.GetCount(ctx)
	if err != nil {
		t.Fatalf("GetCount() error: %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d after Clear, want 0", count)
	}
}

func TestManager_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortstep.db")
	ctx := context.Background()

	m, err := NewManager(path)
	if err != nil {
		t.Fatalf("NewManager() error: %v", err)
	}
	if _, err := m.Save(ctx, traceRun(t, sorting.Bubble, []int{4, 3})); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	m.Close()

	reopened, err := NewManager(path)
	if err != nil {
		t.Fatalf("NewManager() reopen error: %v", err)
	}
	defer reopened.Close()

	count, err := reopened.GetCount(ctx)
	if err != nil {
		t.Fatalf("GetCount() error: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d after reopen, want 1", count)
	}
}

func TestFormat(t *testing.T) {
	if got := Format(nil); got != "No runs recorded yet." {
		t.Errorf("Format(nil) = %q", got)
	}

	entries := []Entry{
		{
			StartedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local),
			Algorithm: sorting.Selection,
			Input:     []int{3, 1, 2},
			Final:     []int{1, 2, 3},
			Steps:     2,
		},
	}

	got := Format(entries)
	for _, want := range []string{"2026-03-01 12:00:00", "Selection Sort", "[3, 1, 2] -> [1, 2, 3]", "2 steps"} {
		if !strings.Contains(got, want) {
			t.Errorf("Format() = %q, missing %q", got, want)
		}
	}
}
