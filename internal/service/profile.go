package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Ertugrulkurtul/Macromeal-Planner/internal/model"
)

type ProfileInput struct {
	Weight     float64
	WeightUnit string
	Height     float64
	HeightUnit string
	Age        float64
	Gender     string
}

// ToProfile converts the input units to kg/cm and validates the ranges.
func (in ProfileInput) ToProfile() (model.Profile, error) {
	weightKg, err := ToKg(in.Weight, in.WeightUnit)
	if err != nil {
		return model.Profile{}, &InvalidProfileError{Fields: []string{err.Error()}}
	}
	heightCm, err := ToCm(in.Height, in.HeightUnit)
	if err != nil {
		return model.Profile{}, &InvalidProfileError{Fields: []string{err.Error()}}
	}
	p := model.Profile{
		WeightKg: weightKg,
		HeightCm: heightCm,
		Age:      in.Age,
		Gender:   model.Gender(strings.ToLower(strings.TrimSpace(in.Gender))),
	}
	if err := ValidateProfile(p); err != nil {
		return model.Profile{}, err
	}
	return p, nil
}

func SetProfile(db *sql.DB, in ProfileInput) (int64, error) {
	p, err := in.ToProfile()
	if err != nil {
		return 0, err
	}
	res, err := db.Exec(`
INSERT INTO profiles(weight_kg, height_cm, age, gender, created_at)
VALUES(?, ?, ?, ?, ?)
`, p.WeightKg, p.HeightCm, p.Age, string(p.Gender), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return 0, fmt.Errorf("set profile: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve profile id: %w", err)
	}
	return id, nil
}

// CurrentProfile returns the most recently stored profile, or nil when none
// has been set.
func CurrentProfile(db *sql.DB) (*model.StoredProfile, error) {
	var out model.StoredProfile
	var gender, createdRaw string
	err := db.QueryRow(`
SELECT id, weight_kg, height_cm, age, gender, created_at
FROM profiles
ORDER BY id DESC
LIMIT 1
`).Scan(&out.ID, &out.Profile.WeightKg, &out.Profile.HeightCm, &out.Profile.Age, &gender, &createdRaw)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("current profile: %w", err)
	}
	out.Profile.Gender = model.Gender(gender)
	created, err := time.Parse(time.RFC3339Nano, createdRaw)
	if err != nil {
		return nil, fmt.Errorf("parse profile created_at: %w", err)
	}
	out.CreatedAt = created
	return &out, nil
}
