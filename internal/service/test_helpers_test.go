package service_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/Ertugrulkurtul/Macromeal-Planner/internal/db"
	"github.com/Ertugrulkurtul/Macromeal-Planner/internal/model"
	"github.com/Ertugrulkurtul/Macromeal-Planner/internal/service"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "macromeal.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = sqldb.Close() })
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqldb
}

func standardInput() model.TargetsInput {
	return model.TargetsInput{
		Profile: model.Profile{
			WeightKg: 70,
			HeightCm: 175,
			Age:      25,
			Gender:   model.GenderMale,
		},
		ActivityFactor: 1.55,
		Goal:           model.GoalMaintenance,
		ProteinPerKg:   2.0,
	}
}

func mustTargets(t *testing.T, in model.TargetsInput) model.MacroTargets {
	t.Helper()
	out, err := service.ComputeTargets(in)
	require.NoError(t, err)
	return out
}
