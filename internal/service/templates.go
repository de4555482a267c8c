package service

import "math/rand"

// PlanTemplate assigns a food key to each protein and carb slot of the day.
type PlanTemplate struct {
	BreakfastProtein string `json:"breakfast_protein"`
	BreakfastCarb    string `json:"breakfast_carb"`
	LunchProtein     string `json:"lunch_protein"`
	LunchCarb        string `json:"lunch_carb"`
	DinnerProtein    string `json:"dinner_protein"`
	DinnerCarb       string `json:"dinner_carb"`
}

// Fat sources do not vary between templates.
const (
	lunchFatKey = "zeytinyagi"
	snackFatKey = "badem"
)

var planTemplates = [...]PlanTemplate{
	{"yumurta", "yulaf", "tavuk", "pirinc", "kiyma", "patates"},
	{"lor", "yulaf", "hindi", "pirinc", "kiyma", "patates"},
	{"yumurta", "yulaf", "kiyma", "bulgur", "tavuk", "patates"},
	{"lor", "yulaf", "tavuk", "bulgur", "hindi", "patates"},
	{"yumurta", "yulaf", "hindi", "pirinc", "tavuk", "patates"},
	{"lor", "yulaf", "kiyma", "pirinc", "hindi", "patates"},
	{"yumurta", "yulaf", "tavuk", "bulgur", "hindi", "patates"},
	{"lor", "yulaf", "hindi", "bulgur", "kiyma", "patates"},
	{"yumurta", "yulaf", "kiyma", "pirinc", "hindi", "patates"},
	{"lor", "yulaf", "tavuk", "pirinc", "kiyma", "bulgur"},
}

func TemplateCount() int {
	return len(planTemplates)
}

// Templates returns a copy of the catalog in index order.
func Templates() []PlanTemplate {
	out := make([]PlanTemplate, len(planTemplates))
	copy(out, planTemplates[:])
	return out
}

// TemplateAt resolves a catalog index. Indexes past the end wrap around.
func TemplateAt(index int) (PlanTemplate, error) {
	if index < 0 {
		return PlanTemplate{}, configErrorf("template index %d is negative", index)
	}
	return planTemplates[index%len(planTemplates)], nil
}

// PickTemplateIndex draws a uniformly random catalog index.
func PickTemplateIndex(r *rand.Rand) int {
	return r.Intn(len(planTemplates))
}
