package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/studiowebux/sortstep/internal/logging"
	"github.com/studiowebux/sortstep/internal/migrations"
	"github.com/studiowebux/sortstep/internal/sorting"
)

const timestampLayout = "2006-01-02 15:04:05"

// Manager stores completed runs in SQLite.
type Manager struct {
	db  *sql.DB
	now func() time.Time
}

// NewManager opens the database at dbPath, creating its directory, and applies migrations.
func NewManager(dbPath string) (*Manager, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to history database: %w", err)
	}

	if err := migrations.Run(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Manager{db: db, now: time.Now}, nil
}

// Save records a completed run and returns its id.
func (m *Manager) Save(ctx context.Context, run *sorting.Run) (string, error) {
	entry := NewEntry(run)
	entry.ID = uuid.NewString()
	entry.StartedAt = m.now()

	inputJSON, err := json.Marshal(entry.Input)
	if err != nil {
		return "", fmt.Errorf("failed to marshal input: %w", err)
	}
	finalJSON, err := json.Marshal(entry.Final)
	if err != nil {
		return "", fmt.Errorf("failed to marshal final array: %w", err)
	}

	query := `
		INSERT INTO runs (id, started_at, algorithm, input, final, steps)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err = m.db.ExecContext(ctx, query,
		entry.ID,
		entry.StartedAt.UTC().Format(timestampLayout),
		entry.Algorithm.String(),
		string(inputJSON),
		string(finalJSON),
		entry.Steps,
	)
	if err != nil {
		return "", fmt.Errorf("failed to save run: %w", err)
	}

	logging.FromContext(ctx).Debug("run recorded",
		"run_id", entry.ID,
		"algorithm", entry.Algorithm.String(),
		"steps", entry.Steps,
	)

	return entry.ID, nil
}

// Load returns up to limit entries, newest first. A non-positive limit returns all.
func (m *Manager) Load(ctx context.Context, limit int) ([]Entry, error) {
	query := `
		SELECT id, started_at, algorithm, input, final, steps
		FROM runs
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?
	`
	if limit <= 0 {
		limit = -1
	}

	rows, err := m.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry

	for rows.Next() {
		var (
			entry     Entry
			startedAt string
			algorithm string
			inputJSON string
			finalJSON string
		)

		if err := rows.Scan(&entry.ID, &startedAt, &algorithm, &inputJSON, &finalJSON, &entry.Steps); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}

		if err := entry.Algorithm.UnmarshalText([]byte(algorithm)); err != nil {
			return nil, fmt.Errorf("history entry %s: %w", entry.ID, err)
		}
		if err := json.Unmarshal([]byte(inputJSON), &entry.Input); err != nil {
			return nil, fmt.Errorf("history entry %s: bad input: %w", entry.ID, err)
		}
		if err := json.Unmarshal([]byte(finalJSON), &entry.Final); err != nil {
			return nil, fmt.Errorf("history entry %s: bad final array: %w", entry.ID, err)
		}

		parsed, err := time.ParseInLocation(timestampLayout, startedAt, time.UTC)
		if err != nil {
			parsed, err = time.Parse(time.RFC3339, startedAt)
			if err != nil {
				return nil, fmt.Errorf("history entry %s: bad timestamp %q", entry.ID, startedAt)
			}
		}
		entry.StartedAt = parsed

		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Clear deletes every recorded run.
func (m *Manager) Clear(ctx context.Context) error {
	_, err := m.db.ExecContext(ctx, "DELETE FROM runs")
	if err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

// GetCount returns the number of recorded runs.
func (m *Manager) GetCount(ctx context.Context) (int, error) {
	var count int
	err := m.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM runs").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get history count: %w", err)
	}
	return count, nil
}

// Close closes the database connection.
func (m *Manager) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}
