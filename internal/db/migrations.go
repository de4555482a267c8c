package db

import (
	"database/sql"
	"fmt"
)

type migration struct {
	version int
	name    string
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		name:    "profiles",
		sql: `
CREATE TABLE IF NOT EXISTS profiles (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  weight_kg REAL NOT NULL CHECK(weight_kg > 0),
  height_cm REAL NOT NULL CHECK(height_cm > 0),
  age REAL NOT NULL CHECK(age > 0),
  gender TEXT NOT NULL CHECK(gender IN ('male', 'female')),
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`,
	},
	{
		version: 2,
		name:    "calculations",
		sql: `
CREATE TABLE IF NOT EXISTS calculations (
  id TEXT PRIMARY KEY,
  profile_id INTEGER,
  weight_kg REAL NOT NULL,
  height_cm REAL NOT NULL,
  age REAL NOT NULL,
  gender TEXT NOT NULL,
  activity_factor REAL NOT NULL,
  goal TEXT NOT NULL CHECK(goal IN ('fat_loss', 'maintenance', 'lean_bulk')),
  protein_per_kg REAL NOT NULL,
  bmr INTEGER NOT NULL,
  tdee INTEGER NOT NULL,
  target_calories INTEGER NOT NULL,
  protein_g INTEGER NOT NULL,
  fat_g INTEGER NOT NULL,
  carb_g INTEGER NOT NULL,
  template_index INTEGER NOT NULL CHECK(template_index >= 0),
  created_at DATETIME NOT NULL,
  FOREIGN KEY(profile_id) REFERENCES profiles(id) ON DELETE SET NULL
);

CREATE INDEX IF NOT EXISTS idx_calculations_created_at ON calculations(created_at);
`,
	},
	{
		version: 3,
		name:    "app_config",
		sql: `
CREATE TABLE IF NOT EXISTS app_config (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`,
	},
}

// defaultConfig mirrors the calculator's initial selections.
var defaultConfig = map[string]string{
	"default_activity": "1.55",
	"default_goal":     "maintenance",
	"default_protein":  "2.0",
}

func ApplyMigrations(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`); err != nil {
		return fmt.Errorf("ensure schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		var exists int
		err := db.QueryRow(`SELECT 1 FROM schema_migrations WHERE version = ?`, m.version).Scan(&exists)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("check migration version %d: %w", m.version, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration tx: %w", err)
		}
		if _, err := tx.Exec(m.sql); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply migration version %d (%s): %w", m.version, m.name, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations(version, name) VALUES(?, ?)`, m.version, m.name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration version %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration version %d: %w", m.version, err)
		}
	}

	for key, value := range defaultConfig {
		if _, err := db.Exec(`INSERT OR IGNORE INTO app_config(key, value) VALUES(?, ?)`, key, value); err != nil {
			return fmt.Errorf("seed default config %s: %w", key, err)
		}
	}
	return nil
}
