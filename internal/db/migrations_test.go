package db_test

import (
	"path/filepath"
	"testing"

	"github.com/Ertugrulkurtul/Macromeal-Planner/internal/db"
)

func TestApplyMigrationsIdempotentAndSeedsDefaults(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "macromeal.db")
	sqldb, err := db.Open(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("first apply migrations: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("second apply migrations: %v", err)
	}

	var migrationCount int
	if err := sqldb.QueryRow(`SELECT COUNT(1) FROM schema_migrations`).Scan(&migrationCount); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if migrationCount != 3 {
		t.Fatalf("expected 3 migration versions, got %d", migrationCount)
	}

	for _, table := range []string{"profiles", "calculations", "app_config"} {
		var n int
		if err := sqldb.QueryRow(`SELECT COUNT(1) FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&n); err != nil {
			t.Fatalf("check %s table: %v", table, err)
		}
		if n != 1 {
			t.Fatalf("expected %s table to exist", table)
		}
	}

	var goal string
	if err := sqldb.QueryRow(`SELECT value FROM app_config WHERE key = 'default_goal'`).Scan(&goal); err != nil {
		t.Fatalf("read seeded default goal: %v", err)
	}
	if goal != "maintenance" {
		t.Fatalf("expected seeded default goal maintenance, got %q", goal)
	}
}

func TestApplyMigrationsKeepsUserConfig(t *testing.T) {
	t.Parallel()

	sqldb, err := db.Open(filepath.Join(t.TempDir(), "macromeal.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if _, err := sqldb.Exec(`UPDATE app_config SET value = 'lean_bulk' WHERE key = 'default_goal'`); err != nil {
		t.Fatalf("update config: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("re-apply migrations: %v", err)
	}

	var goal string
	if err := sqldb.QueryRow(`SELECT value FROM app_config WHERE key = 'default_goal'`).Scan(&goal); err != nil {
		t.Fatalf("read default goal: %v", err)
	}
	if goal != "lean_bulk" {
		t.Fatalf("expected user value to survive re-seed, got %q", goal)
	}
}
