package tui

import (
	"sync"

	"github.com/studiowebux/sortstep/internal/history"
)

// HistoryState holds the run journal viewer state
type HistoryState struct {
	mu sync.RWMutex

	entries []history.Entry
	index   int
}

// NewHistoryState creates a new history state
func NewHistoryState() *HistoryState {
	return &HistoryState{
		entries: []history.Entry{},
		index:   0,
	}
}

// GetEntries returns a copy of the entries slice
func (s *HistoryState) GetEntries() []history.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]history.Entry, len(s.entries))
	copy(result, s.entries)
	return result
}

// SetEntries sets the entries slice and keeps the index in range
func (s *HistoryState) SetEntries(entries []history.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = entries
	if s.index >= len(entries) {
		s.index = 0
	}
}

// GetIndex returns the current index
func (s *HistoryState) GetIndex() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index
}

// SetIndex sets the current index
func (s *HistoryState) SetIndex(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.index = index
}

// Navigate moves the selection by delta
func (s *HistoryState) Navigate(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) == 0 {
		return
	}

	s.index += delta

	// Wrap around
	if s.index < 0 {
		s.index = len(s.entries) - 1
	} else if s.index >= len(s.entries) {
		s.index = 0
	}
}

// GetCurrentEntry returns the currently selected entry
func (s *HistoryState) GetCurrentEntry() *history.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.entries) == 0 || s.index < 0 || s.index >= len(s.entries) {
		return nil
	}

	entry := s.entries[s.index]
	return &entry
}
