package service

import (
	"database/sql"
	"fmt"

	"github.com/Ertugrulkurtul/Macromeal-Planner/internal/model"
)

type DoctorReport struct {
	CatalogIssues       []string `json:"catalog_issues,omitempty"`
	InvalidCalculations int      `json:"invalid_calculations"`
	StaleTargets        int      `json:"stale_targets"`
	RemovedRows         int      `json:"removed_rows,omitempty"`
	RecomputedRows      int      `json:"recomputed_rows,omitempty"`
}

func (r DoctorReport) Healthy() bool {
	return len(r.CatalogIssues) == 0 && r.InvalidCalculations == 0 && r.StaleTargets == 0
}

// CheckCatalog verifies that every template slot names a food of the right
// role and that every food has a usable portion range.
func CheckCatalog() []string {
	issues := make([]string, 0)
	for _, f := range Foods() {
		lo, hi := f.Range()
		if lo <= 0 || lo > hi {
			issues = append(issues, fmt.Sprintf("food %s has invalid range %d..%d", f.FoodKey(), lo, hi))
		}
		per, err := macroPerPortion(f)
		if err != nil || per <= 0 {
			issues = append(issues, fmt.Sprintf("food %s has no macro density", f.FoodKey()))
		}
	}
	for i, tpl := range planTemplates {
		if _, err := resolveTemplate(tpl); err != nil {
			issues = append(issues, fmt.Sprintf("template %d: %v", i, err))
		}
	}
	return issues
}

// RunDoctor checks the catalog and every stored calculation. Rows whose
// input no longer validates are invalid; rows whose targets differ from a
// fresh computation are stale. With fix, invalid rows are deleted and stale
// targets rewritten.
func RunDoctor(db *sql.DB, fix bool) (DoctorReport, error) {
	report := DoctorReport{CatalogIssues: CheckCatalog()}

	rows, err := db.Query(`SELECT` + calculationColumns + `
FROM calculations
`)
	if err != nil {
		return report, fmt.Errorf("doctor calculation query: %w", err)
	}
	var invalidIDs []string
	staleTargets := map[string]model.MacroTargets{}
	for rows.Next() {
		c, err := scanCalculation(rows)
		if err != nil {
			_ = rows.Close()
			return report, fmt.Errorf("doctor calculation scan: %w", err)
		}
		fresh, err := ComputeTargets(c.Input)
		if err != nil || c.TemplateIndex >= TemplateCount() {
			report.InvalidCalculations++
			invalidIDs = append(invalidIDs, c.ID)
			continue
		}
		if fresh != c.Targets {
			report.StaleTargets++
			staleTargets[c.ID] = fresh
		}
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return report, fmt.Errorf("doctor calculation iterate: %w", err)
	}
	_ = rows.Close()

	if !fix || (len(invalidIDs) == 0 && len(staleTargets) == 0) {
		return report, nil
	}
	tx, err := db.Begin()
	if err != nil {
		return report, fmt.Errorf("doctor fix begin tx: %w", err)
	}
	for _, id := range invalidIDs {
		if _, err := tx.Exec(`DELETE FROM calculations WHERE id = ?`, id); err != nil {
			_ = tx.Rollback()
			return report, fmt.Errorf("doctor remove calculation %s: %w", id, err)
		}
		report.RemovedRows++
	}
	for id, t := range staleTargets {
		if _, err := tx.Exec(`
UPDATE calculations
SET bmr = ?, tdee = ?, target_calories = ?, protein_g = ?, fat_g = ?, carb_g = ?
WHERE id = ?
`, t.BMR, t.TDEE, t.TargetCalories, t.ProteinG, t.FatG, t.CarbG, id); err != nil {
			_ = tx.Rollback()
			return report, fmt.Errorf("doctor recompute calculation %s: %w", id, err)
		}
		report.RecomputedRows++
	}
	if err := tx.Commit(); err != nil {
		return report, fmt.Errorf("doctor fix commit: %w", err)
	}
	return report, nil
}
