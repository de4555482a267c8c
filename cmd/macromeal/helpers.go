package macromeal

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/Ertugrulkurtul/Macromeal-Planner/internal/app"
	"github.com/Ertugrulkurtul/Macromeal-Planner/internal/db"
	"go.uber.org/zap"
)

func withDB(run func(*sql.DB) error) error {
	sqldb, path, err := openDB()
	if err != nil {
		return err
	}
	defer sqldb.Close()
	logger.Debug("database ready", zap.String("path", path))
	return run(sqldb)
}

func openDB() (*sql.DB, string, error) {
	path, err := resolveDBPath()
	if err != nil {
		return nil, "", err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return nil, "", err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return nil, "", err
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		_ = sqldb.Close()
		return nil, "", err
	}
	return sqldb, path, nil
}

// resolveDBPath prefers --db, then the db.path setting, then the per-user
// default.
func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	if settings.DB.Path != "" {
		return settings.DB.Path, nil
	}
	return app.DefaultDBPath()
}

func parseTemplateArg(value string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid --template %q", value)
	}
	if v < 0 {
		return 0, fmt.Errorf("--template must be >= 0")
	}
	return v, nil
}
