package app

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDirName     = "macromeal"
	dbFileName     = "macromeal.db"
	configFileName = "macromeal"
)

// ConfigDir is the per-user directory holding the database and the optional
// macromeal.yaml settings file.
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

func DefaultDBPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, dbFileName), nil
}

func EnsureDBDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db directory: %w", err)
	}
	return nil
}
