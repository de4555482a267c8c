package model

import "time"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type Goal string

const (
	GoalFatLoss     Goal = "fat_loss"
	GoalMaintenance Goal = "maintenance"
	GoalLeanBulk    Goal = "lean_bulk"
)

type Profile struct {
	WeightKg float64 `json:"weight" validate:"finite,gte=30,lte=250"`
	HeightCm float64 `json:"height" validate:"finite,gte=120,lte=230"`
	Age      float64 `json:"age" validate:"finite,gte=12,lte=80"`
	Gender   Gender  `json:"gender" validate:"oneof=male female"`
}

type TargetsInput struct {
	Profile        Profile `json:"profile"`
	ActivityFactor float64 `json:"activity" validate:"activity_factor"`
	Goal           Goal    `json:"goal" validate:"oneof=fat_loss maintenance lean_bulk"`
	ProteinPerKg   float64 `json:"protein" validate:"protein_per_kg"`
}

type MacroTargets struct {
	BMR            int `json:"bmr"`
	TDEE           int `json:"tdee"`
	TargetCalories int `json:"target_calories"`
	ProteinG       int `json:"protein_g"`
	FatG           int `json:"fat_g"`
	CarbG          int `json:"carb_g"`
}

// LineItem is one food in a meal. A nil Amount marks a non-quantified side
// and Unit is empty in that case.
type LineItem struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Amount *int   `json:"amount"`
	Unit   string `json:"unit,omitempty"`
}

type Meal struct {
	Name  string     `json:"name"`
	Icon  string     `json:"icon"`
	Items []LineItem `json:"items"`
}

type ShoppingListEntry struct {
	Label  string `json:"label"`
	Amount *int   `json:"amount"`
	Unit   string `json:"unit,omitempty"`
}

type MealPlan struct {
	TemplateIndex int                 `json:"template_index"`
	Meals         []Meal              `json:"meals"`
	ShoppingList  []ShoppingListEntry `json:"shopping_list"`
}

type StoredProfile struct {
	ID        int64
	Profile   Profile
	CreatedAt time.Time
}

// Calculation is a stored snapshot of the inputs and targets together with
// the template chosen for the plan.
type Calculation struct {
	ID            string       `json:"id"`
	Input         TargetsInput `json:"input"`
	Targets       MacroTargets `json:"targets"`
	TemplateIndex int          `json:"template_index"`
	CreatedAt     time.Time    `json:"created_at"`
}
