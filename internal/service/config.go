package service

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/Ertugrulkurtul/Macromeal-Planner/internal/model"
)

const (
	ConfigDefaultActivity = "default_activity"
	ConfigDefaultGoal     = "default_goal"
	ConfigDefaultProtein  = "default_protein"
)

// CalculatorDefaults are the selections used when a calculation does not
// name them explicitly.
type CalculatorDefaults struct {
	ActivityFactor float64
	Goal           model.Goal
	ProteinPerKg   float64
}

func SetConfig(db *sql.DB, key, value string) error {
	key = strings.TrimSpace(strings.ToLower(key))
	value = strings.TrimSpace(value)
	if err := validateConfigValue(key, value); err != nil {
		return err
	}
	_, err := db.Exec(`
INSERT INTO app_config(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, value)
	if err != nil {
		return fmt.Errorf("set config %q: %w", key, err)
	}
	return nil
}

func GetConfig(db *sql.DB, key string) (string, bool, error) {
	key = strings.TrimSpace(strings.ToLower(key))
	if key == "" {
		return "", false, fmt.Errorf("config key is required")
	}
	var value string
	err := db.QueryRow(`SELECT value FROM app_config WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get config %q: %w", key, err)
	}
	return value, true, nil
}

func ListConfig(db *sql.DB) (map[string]string, error) {
	rows, err := db.Query(`SELECT key, value FROM app_config ORDER BY key ASC`)
	if err != nil {
		return nil, fmt.Errorf("list config: %w", err)
	}
	defer rows.Close()
	out := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan config: %w", err)
		}
		out[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate config: %w", err)
	}
	return out, nil
}

// LoadCalculatorDefaults reads the stored defaults, falling back to
// 1.55 / maintenance / 2.0 for any key that is missing.
func LoadCalculatorDefaults(db *sql.DB) (CalculatorDefaults, error) {
	out := CalculatorDefaults{ActivityFactor: 1.55, Goal: model.GoalMaintenance, ProteinPerKg: 2.0}
	cfg, err := ListConfig(db)
	if err != nil {
		return out, err
	}
	if v, ok := cfg[ConfigDefaultActivity]; ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return out, fmt.Errorf("parse %s %q: %w", ConfigDefaultActivity, v, err)
		}
		out.ActivityFactor = f
	}
	if v, ok := cfg[ConfigDefaultGoal]; ok {
		out.Goal = model.Goal(v)
	}
	if v, ok := cfg[ConfigDefaultProtein]; ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return out, fmt.Errorf("parse %s %q: %w", ConfigDefaultProtein, v, err)
		}
		out.ProteinPerKg = f
	}
	return out, nil
}

func validateConfigValue(key, value string) error {
	switch key {
	case "":
		return fmt.Errorf("config key is required")
	case ConfigDefaultActivity:
		return validateFloatChoice(key, value, ActivityFactors)
	case ConfigDefaultProtein:
		return validateFloatChoice(key, value, ProteinTargets)
	case ConfigDefaultGoal:
		if _, ok := GoalMultiplier(model.Goal(value)); !ok {
			return fmt.Errorf("%s must be one of: fat_loss, maintenance, lean_bulk", key)
		}
		return nil
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
}

func validateFloatChoice(key, value string, allowed []float64) error {
	f, err := strconv.ParseFloat(value, 64)
	if err == nil {
		for _, a := range allowed {
			if f == a {
				return nil
			}
		}
	}
	return fmt.Errorf("%s must be one of: %s", key, joinFloats(allowed))
}
