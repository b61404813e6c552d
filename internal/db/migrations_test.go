package db

import (
	"path/filepath"
	"testing"
)

func TestOpenSQLiteAppliesMigrations(t *testing.T) {
	t.Parallel()

	database := newTestDatabase(t)

	tables := []string{
		"users",
		"cycle_settings",
		"period_logs",
		"active_periods",
		"mood_entries",
		"water_entries",
		"nutrition_entries",
		"self_care_activities",
		"favorite_tips",
	}
	for _, table := range tables {
		var count int64
		err := database.Raw(
			`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&count).Error
		if err != nil {
			t.Fatalf("inspect table %s: %v", table, err)
		}
		if count != 1 {
			t.Fatalf("expected table %s to exist", table)
		}
	}
}

func TestReopeningDatabaseIsIdempotent(t *testing.T) {
	t.Parallel()

	databasePath := filepath.Join(t.TempDir(), "petal-reopen.db")

	first, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	firstSQL, err := first.DB()
	if err != nil {
		t.Fatalf("first sql db: %v", err)
	}
	if err := firstSQL.Close(); err != nil {
		t.Fatalf("close first: %v", err)
	}

	second, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	secondSQL, err := second.DB()
	if err != nil {
		t.Fatalf("second sql db: %v", err)
	}
	defer secondSQL.Close()

	var applied int64
	if err := second.Raw(`SELECT COUNT(*) FROM schema_migrations`).Scan(&applied).Error; err != nil {
		t.Fatalf("count applied migrations: %v", err)
	}
	if applied == 0 {
		t.Fatal("expected applied migrations recorded")
	}
}

func TestSplitSQLStatements(t *testing.T) {
	t.Parallel()

	statements := splitSQLStatements("CREATE TABLE a (id INTEGER); \n\nCREATE INDEX idx_a ON a(id);\n;")
	if len(statements) != 2 {
		t.Fatalf("expected 2 statements, got %d: %v", len(statements), statements)
	}
}
