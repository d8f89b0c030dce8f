package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRun(t *testing.T) {
	db := openTestDB(t)

	if err := Run(db); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	version, err := GetCurrentVersion(db)
	if err != nil {
		t.Fatalf("GetCurrentVersion() error: %v", err)
	}
	want := AllMigrations[len(AllMigrations)-1].Version
	if version != want {
		t.Errorf("version = %d, want %d", version, want)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&count); err != nil {
		t.Errorf("runs table missing: %v", err)
	}
}

func TestRun_Idempotent(t *testing.T) {
	db := openTestDB(t)

	for i := 0; i < 3; i++ {
		if err := Run(db); err != nil {
			t.Fatalf("Run() pass %d error: %v", i, err)
		}
	}

	var applied int
	if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&applied); err != nil {
		t.Fatalf("failed to count migrations: %v", err)
	}
	if applied != len(AllMigrations) {
		t.Errorf("applied = %d, want %d", applied, len(AllMigrations))
	}
}

func TestApply_FailureRollsBack(t *testing.T) {
	db := openTestDB(t)

	broken := []Migration{
		{Version: 1, Name: "ok", Up: "CREATE INDEX IF NOT EXISTS idx_ok ON runs(steps);"},
		{Version: 2, Name: "broken", Up: "CREATE INDEX idx_bad ON missing_table(col);"},
	}

	if err := apply(db, broken); err == nil {
		t.Fatal("expected error from broken migration")
	}

	version, err := GetCurrentVersion(db)
	if err != nil {
		t.Fatalf("GetCurrentVersion() error: %v", err)
	}
	if version != 1 {
		t.Errorf("version = %d, want 1", version)
	}
}
