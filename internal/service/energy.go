package service

import (
	"math"

	"github.com/Ertugrulkurtul/Macromeal-Planner/internal/model"
)

var goalMultipliers = map[model.Goal]float64{
	model.GoalFatLoss:     0.85,
	model.GoalMaintenance: 1.00,
	model.GoalLeanBulk:    1.10,
}

var goalLabels = map[model.Goal]string{
	model.GoalFatLoss:     "Yağ Yakımı",
	model.GoalMaintenance: "İdame",
	model.GoalLeanBulk:    "Lean Bulk",
}

// ActivityFactors are the accepted TDEE multipliers, lowest first.
var ActivityFactors = []float64{1.2, 1.375, 1.55, 1.725}

// ProteinTargets are the accepted protein targets in g per kg body weight.
var ProteinTargets = []float64{1.6, 2.0}

const (
	fatCalorieShare = 0.25
	kcalPerGProtein = 4
	kcalPerGCarb    = 4
	kcalPerGFat     = 9
)

func GoalMultiplier(goal model.Goal) (float64, bool) {
	m, ok := goalMultipliers[goal]
	return m, ok
}

func GoalLabel(goal model.Goal) string {
	if label, ok := goalLabels[goal]; ok {
		return label
	}
	return string(goal)
}

// ComputeTargets derives calorie and macro targets with Mifflin-St Jeor.
// Each output is rounded on its own; the rounding residue is not redistributed.
func ComputeTargets(in model.TargetsInput) (model.MacroTargets, error) {
	if err := ValidateTargetsInput(in); err != nil {
		return model.MacroTargets{}, err
	}
	p := in.Profile

	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*p.Age
	if p.Gender == model.GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	tdee := bmr * in.ActivityFactor
	target := tdee * goalMultipliers[in.Goal]
	protein := in.ProteinPerKg * p.WeightKg
	fat := target * fatCalorieShare / kcalPerGFat
	carb := (target - (protein*kcalPerGProtein + fat*kcalPerGFat)) / kcalPerGCarb

	return model.MacroTargets{
		BMR:            roundHalfUp(bmr),
		TDEE:           roundHalfUp(tdee),
		TargetCalories: roundHalfUp(target),
		ProteinG:       roundHalfUp(protein),
		FatG:           roundHalfUp(fat),
		CarbG:          roundHalfUp(carb),
	}, nil
}

// MacroShare is the rounded percentage of targetCalories that grams of a
// macro at kcalPerGram supply.
func MacroShare(grams, kcalPerGram, targetCalories int) int {
	if targetCalories == 0 {
		return 0
	}
	return roundHalfUp(float64(grams*kcalPerGram*100) / float64(targetCalories))
}

// roundHalfUp rounds .5 toward positive infinity for negatives as well.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
