package service

import (
	"database/sql"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/Ertugrulkurtul/Macromeal-Planner/internal/model"
	"github.com/google/uuid"
)

// RunCalculationInput carries the selections for one calculation. Zero values
// are filled from the stored calculator defaults; a nil TemplateIndex picks a
// random template.
type RunCalculationInput struct {
	ActivityFactor float64
	Goal           model.Goal
	ProteinPerKg   float64
	TemplateIndex  *int
	Now            time.Time
}

// RunCalculation computes targets for the current profile, chooses a plan
// template and stores the result.
func RunCalculation(db *sql.DB, in RunCalculationInput, rng *rand.Rand) (*model.Calculation, error) {
	profile, err := CurrentProfile(db)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("no profile configured (run `macromeal profile set` first)")
	}
	defaults, err := LoadCalculatorDefaults(db)
	if err != nil {
		return nil, err
	}

	input := model.TargetsInput{
		Profile:        profile.Profile,
		ActivityFactor: in.ActivityFactor,
		Goal:           model.Goal(strings.TrimSpace(string(in.Goal))),
		ProteinPerKg:   in.ProteinPerKg,
	}
	if input.ActivityFactor == 0 {
		input.ActivityFactor = defaults.ActivityFactor
	}
	if input.Goal == "" {
		input.Goal = defaults.Goal
	}
	if input.ProteinPerKg == 0 {
		input.ProteinPerKg = defaults.ProteinPerKg
	}
	targets, err := ComputeTargets(input)
	if err != nil {
		return nil, err
	}

	var templateIndex int
	if in.TemplateIndex != nil {
		if _, err := TemplateAt(*in.TemplateIndex); err != nil {
			return nil, err
		}
		templateIndex = *in.TemplateIndex % TemplateCount()
	} else {
		templateIndex = PickTemplateIndex(rng)
	}
	if in.Now.IsZero() {
		in.Now = time.Now()
	}

	calc := &model.Calculation{
		ID:            uuid.NewString(),
		Input:         input,
		Targets:       targets,
		TemplateIndex: templateIndex,
		CreatedAt:     in.Now.UTC(),
	}
	if err := saveCalculation(db, calc, profile.ID); err != nil {
		return nil, err
	}
	return calc, nil
}

func saveCalculation(db *sql.DB, c *model.Calculation, profileID int64) error {
	p := c.Input.Profile
	t := c.Targets
	_, err := db.Exec(`
INSERT INTO calculations(
  id, profile_id, weight_kg, height_cm, age, gender,
  activity_factor, goal, protein_per_kg,
  bmr, tdee, target_calories, protein_g, fat_g, carb_g,
  template_index, created_at
) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, c.ID, profileID, p.WeightKg, p.HeightCm, p.Age, string(p.Gender),
		c.Input.ActivityFactor, string(c.Input.Goal), c.Input.ProteinPerKg,
		t.BMR, t.TDEE, t.TargetCalories, t.ProteinG, t.FatG, t.CarbG,
		c.TemplateIndex, c.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("save calculation: %w", err)
	}
	return nil
}

const calculationColumns = `
id, weight_kg, height_cm, age, gender,
activity_factor, goal, protein_per_kg,
bmr, tdee, target_calories, protein_g, fat_g, carb_g,
template_index, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCalculation(row rowScanner) (model.Calculation, error) {
	var c model.Calculation
	var gender, goal, createdRaw string
	err := row.Scan(&c.ID, &c.Input.Profile.WeightKg, &c.Input.Profile.HeightCm, &c.Input.Profile.Age, &gender,
		&c.Input.ActivityFactor, &goal, &c.Input.ProteinPerKg,
		&c.Targets.BMR, &c.Targets.TDEE, &c.Targets.TargetCalories, &c.Targets.ProteinG, &c.Targets.FatG, &c.Targets.CarbG,
		&c.TemplateIndex, &createdRaw)
	if err != nil {
		return c, err
	}
	c.Input.Profile.Gender = model.Gender(gender)
	c.Input.Goal = model.Goal(goal)
	created, err := time.Parse(time.RFC3339Nano, createdRaw)
	if err != nil {
		return c, fmt.Errorf("parse calculation created_at: %w", err)
	}
	c.CreatedAt = created
	return c, nil
}

// LatestCalculation returns the newest calculation, or nil when none exist.
func LatestCalculation(db *sql.DB) (*model.Calculation, error) {
	c, err := scanCalculation(db.QueryRow(`SELECT` + calculationColumns + `
FROM calculations
ORDER BY created_at DESC, rowid DESC
LIMIT 1
`))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("latest calculation: %w", err)
	}
	return &c, nil
}

func GetCalculation(db *sql.DB, id string) (*model.Calculation, error) {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("calculation %q: %w", id, ErrNotFound)
	}
	c, err := scanCalculation(db.QueryRow(`SELECT`+calculationColumns+`
FROM calculations
WHERE id = ?
`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("calculation %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get calculation %s: %w", id, err)
	}
	return &c, nil
}

func CalculationHistory(db *sql.DB, limit int) ([]model.Calculation, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Query(`SELECT`+calculationColumns+`
FROM calculations
ORDER BY created_at DESC, rowid DESC
LIMIT ?
`, limit)
	if err != nil {
		return nil, fmt.Errorf("list calculations: %w", err)
	}
	defer rows.Close()

	items := make([]model.Calculation, 0)
	for rows.Next() {
		c, err := scanCalculation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan calculation: %w", err)
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate calculations: %w", err)
	}
	return items, nil
}
