package service_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/Ertugrulkurtul/Macromeal-Planner/internal/model"
	"github.com/Ertugrulkurtul/Macromeal-Planner/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigSetGetAndValidation(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	require.NoError(t, service.SetConfig(sqldb, "DEFAULT_ACTIVITY", "1.725"))
	v, ok, err := service.GetConfig(sqldb, "default_activity")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "1.725", v)

	assert.Error(t, service.SetConfig(sqldb, service.ConfigDefaultActivity, "1.3"))
	assert.Error(t, service.SetConfig(sqldb, service.ConfigDefaultProtein, "abc"))
	assert.Error(t, service.SetConfig(sqldb, service.ConfigDefaultGoal, "cut"))
	assert.Error(t, service.SetConfig(sqldb, "theme", "dark"))

	_, ok, err = service.GetConfig(sqldb, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadCalculatorDefaults(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	defaults, err := service.LoadCalculatorDefaults(sqldb)
	require.NoError(t, err)
	assert.Equal(t, service.CalculatorDefaults{ActivityFactor: 1.55, Goal: model.GoalMaintenance, ProteinPerKg: 2.0}, defaults)

	require.NoError(t, service.SetConfig(sqldb, service.ConfigDefaultGoal, "lean_bulk"))
	require.NoError(t, service.SetConfig(sqldb, service.ConfigDefaultProtein, "1.6"))
	defaults, err = service.LoadCalculatorDefaults(sqldb)
	require.NoError(t, err)
	assert.Equal(t, model.GoalLeanBulk, defaults.Goal)
	assert.InDelta(t, 1.6, defaults.ProteinPerKg, 1e-9)
}

func TestProfileSetAndCurrent(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	current, err := service.CurrentProfile(sqldb)
	require.NoError(t, err)
	assert.Nil(t, current)

	_, err = service.SetProfile(sqldb, service.ProfileInput{Weight: 70, Height: 175, Age: 25, Gender: "male"})
	require.NoError(t, err)
	id, err := service.SetProfile(sqldb, service.ProfileInput{
		Weight: 154, WeightUnit: "lb", Height: 65, HeightUnit: "in", Age: 31, Gender: "Female",
	})
	require.NoError(t, err)

	current, err = service.CurrentProfile(sqldb)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, id, current.ID)
	assert.InDelta(t, 69.853, current.Profile.WeightKg, 0.001)
	assert.InDelta(t, 165.1, current.Profile.HeightCm, 0.001)
	assert.Equal(t, model.GenderFemale, current.Profile.Gender)
	assert.False(t, current.CreatedAt.IsZero())
}

func TestProfileRejectsInvalidInput(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	_, err := service.SetProfile(sqldb, service.ProfileInput{Weight: 70, Height: 175, Age: 90, Gender: "male"})
	assert.ErrorIs(t, err, service.ErrInvalidProfile)
	_, err = service.SetProfile(sqldb, service.ProfileInput{Weight: 70, WeightUnit: "stone", Height: 175, Age: 30, Gender: "male"})
	assert.ErrorIs(t, err, service.ErrInvalidProfile)

	current, err := service.CurrentProfile(sqldb)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestRunCalculationRequiresProfile(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	_, err := service.RunCalculation(sqldb, service.RunCalculationInput{}, rand.New(rand.NewSource(1)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no profile")
}

func TestRunCalculationUsesDefaultsAndPersists(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	_, err := service.SetProfile(sqldb, service.ProfileInput{Weight: 70, Height: 175, Age: 25, Gender: "male"})
	require.NoError(t, err)

	idx := 4
	calc, err := service.RunCalculation(sqldb, service.RunCalculationInput{TemplateIndex: &idx}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, standardInput(), calc.Input)
	assert.Equal(t, 2594, calc.Targets.TargetCalories)
	assert.Equal(t, 4, calc.TemplateIndex)

	loaded, err := service.GetCalculation(sqldb, calc.ID)
	require.NoError(t, err)
	assert.Equal(t, calc.Input, loaded.Input)
	assert.Equal(t, calc.Targets, loaded.Targets)
	assert.Equal(t, calc.TemplateIndex, loaded.TemplateIndex)
	assert.True(t, calc.CreatedAt.Equal(loaded.CreatedAt))
}

func TestRunCalculationExplicitSelections(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	_, err := service.SetProfile(sqldb, service.ProfileInput{Weight: 60, Height: 165, Age: 30, Gender: "female"})
	require.NoError(t, err)

	calc, err := service.RunCalculation(sqldb, service.RunCalculationInput{
		ActivityFactor: 1.375,
		Goal:           model.GoalFatLoss,
		ProteinPerKg:   1.6,
	}, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	assert.Equal(t, 1543, calc.Targets.TargetCalories)
	assert.GreaterOrEqual(t, calc.TemplateIndex, 0)
	assert.Less(t, calc.TemplateIndex, service.TemplateCount())

	_, err = service.RunCalculation(sqldb, service.RunCalculationInput{ActivityFactor: 1.1}, rand.New(rand.NewSource(3)))
	assert.ErrorIs(t, err, service.ErrInvalidProfile)

	negative := -2
	_, err = service.RunCalculation(sqldb, service.RunCalculationInput{TemplateIndex: &negative}, rand.New(rand.NewSource(3)))
	assert.ErrorIs(t, err, service.ErrConfiguration)
}

func TestLatestCalculationAndHistory(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	latest, err := service.LatestCalculation(sqldb)
	require.NoError(t, err)
	assert.Nil(t, latest)

	_, err = service.SetProfile(sqldb, service.ProfileInput{Weight: 70, Height: 175, Age: 25, Gender: "male"})
	require.NoError(t, err)
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	rng := rand.New(rand.NewSource(9))
	var ids []string
	for i := 0; i < 3; i++ {
		calc, err := service.RunCalculation(sqldb, service.RunCalculationInput{Now: base.Add(time.Duration(i) * time.Hour)}, rng)
		require.NoError(t, err)
		ids = append(ids, calc.ID)
	}

	latest, err = service.LatestCalculation(sqldb)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, ids[2], latest.ID)

	history, err := service.CalculationHistory(sqldb, 2)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, ids[2], history[0].ID)
	assert.Equal(t, ids[1], history[1].ID)
}

func TestGetCalculationErrors(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	_, err := service.GetCalculation(sqldb, "not-a-uuid")
	assert.ErrorIs(t, err, service.ErrNotFound)
	_, err = service.GetCalculation(sqldb, "6f1c1f4e-5a0b-4c38-9a57-0f3a3d2e8c11")
	assert.ErrorIs(t, err, service.ErrNotFound)
}
