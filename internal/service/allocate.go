package service

import "github.com/Ertugrulkurtul/Macromeal-Planner/internal/model"

const minBreakfastProteinG = 25

// Share of each daily macro per meal. The snack carries only fat.
const (
	breakfastProteinShare = 0.25
	lunchProteinShare     = 0.30
	dinnerProteinShare    = 0.30
	breakfastCarbShare    = 0.25
	lunchCarbShare        = 0.30
	dinnerCarbShare       = 0.30
	lunchFatShare         = 0.30
	snackFatShare         = 0.15
)

// MealTargets are the per-meal macro gram targets before portioning.
type MealTargets struct {
	BreakfastProtein float64
	LunchProtein     float64
	DinnerProtein    float64
	BreakfastCarb    float64
	LunchCarb        float64
	DinnerCarb       float64
	LunchFat         float64
	SnackFat         float64
}

// SplitTargets distributes the day's macros over the meals. Breakfast protein
// is raised to 25 g by borrowing from the larger of lunch and dinner (lunch on
// a tie); the donor never drops below 25 g.
func SplitTargets(t model.MacroTargets) MealTargets {
	protein := float64(t.ProteinG)
	carb := float64(t.CarbG)
	fat := float64(t.FatG)

	mt := MealTargets{
		BreakfastProtein: protein * breakfastProteinShare,
		LunchProtein:     protein * lunchProteinShare,
		DinnerProtein:    protein * dinnerProteinShare,
		BreakfastCarb:    carb * breakfastCarbShare,
		LunchCarb:        carb * lunchCarbShare,
		DinnerCarb:       carb * dinnerCarbShare,
		LunchFat:         fat * lunchFatShare,
		SnackFat:         fat * snackFatShare,
	}
	if mt.BreakfastProtein < minBreakfastProteinG {
		shortfall := minBreakfastProteinG - mt.BreakfastProtein
		if mt.LunchProtein >= mt.DinnerProtein {
			mt.LunchProtein = maxFloat(minBreakfastProteinG, mt.LunchProtein-shortfall)
		} else {
			mt.DinnerProtein = maxFloat(minBreakfastProteinG, mt.DinnerProtein-shortfall)
		}
		mt.BreakfastProtein = minBreakfastProteinG
	}
	return mt
}

type portion struct {
	food     Food
	amount   int
	overflow float64
}

// portionFor converts a macro target to a clamped portion of f. overflow is
// the macro grams the clamp cut off above the food's max.
func portionFor(f Food, target float64) (portion, error) {
	raw, err := rawPortion(f, target)
	if err != nil {
		return portion{}, err
	}
	lo, hi := f.Range()
	p := portion{food: f, amount: clampInt(raw, lo, hi)}
	if raw > hi {
		per, err := macroPerPortion(f)
		if err != nil {
			return portion{}, err
		}
		p.overflow = float64(raw-hi) * per
	}
	return p, nil
}

func (p portion) item() model.LineItem {
	amount := p.amount
	return model.LineItem{
		Key:    p.food.FoodKey(),
		Label:  p.food.FoodLabel(),
		Amount: &amount,
		Unit:   portionUnit(p.food),
	}
}

type slot struct {
	key  string
	role Macro
}

// AllocateMeals turns the day's targets into four meals using the template at
// templateIndex, then builds the shopping list.
//
// Lunch is portioned before dinner: whatever the lunch protein and carb
// portions lose to their max is added to dinner's targets before dinner is
// portioned. Breakfast and snack portions never redirect.
func AllocateMeals(t model.MacroTargets, templateIndex int) (model.MealPlan, error) {
	tpl, err := TemplateAt(templateIndex)
	if err != nil {
		return model.MealPlan{}, err
	}
	foods, err := resolveTemplate(tpl)
	if err != nil {
		return model.MealPlan{}, err
	}
	mt := SplitTargets(t)

	breakfastProtein, err := portionFor(foods[tpl.BreakfastProtein], mt.BreakfastProtein)
	if err != nil {
		return model.MealPlan{}, err
	}
	breakfastCarb, err := portionFor(foods[tpl.BreakfastCarb], mt.BreakfastCarb)
	if err != nil {
		return model.MealPlan{}, err
	}

	lunchProtein, err := portionFor(foods[tpl.LunchProtein], mt.LunchProtein)
	if err != nil {
		return model.MealPlan{}, err
	}
	lunchCarb, err := portionFor(foods[tpl.LunchCarb], mt.LunchCarb)
	if err != nil {
		return model.MealPlan{}, err
	}
	lunchFat, err := portionFor(foods[lunchFatKey], mt.LunchFat)
	if err != nil {
		return model.MealPlan{}, err
	}
	snackFat, err := portionFor(foods[snackFatKey], mt.SnackFat)
	if err != nil {
		return model.MealPlan{}, err
	}

	dinnerProtein, err := portionFor(foods[tpl.DinnerProtein], mt.DinnerProtein+lunchProtein.overflow)
	if err != nil {
		return model.MealPlan{}, err
	}
	dinnerCarb, err := portionFor(foods[tpl.DinnerCarb], mt.DinnerCarb+lunchCarb.overflow)
	if err != nil {
		return model.MealPlan{}, err
	}

	meals := []model.Meal{
		{
			Name: "Kahvaltı", Icon: "☀️",
			Items: []model.LineItem{breakfastProtein.item(), breakfastCarb.item(), fruit("muz", "Muz")},
		},
		{
			Name: "Öğle", Icon: "🍽️",
			Items: []model.LineItem{lunchProtein.item(), lunchCarb.item(), lunchFat.item(), vegetables("sebze1")},
		},
		{
			Name: "Ara", Icon: "🥜",
			Items: []model.LineItem{snackFat.item(), fruit("elma", "Elma")},
		},
		{
			Name: "Akşam", Icon: "🌙",
			Items: []model.LineItem{dinnerProtein.item(), dinnerCarb.item(), vegetables("sebze2")},
		},
	}
	return model.MealPlan{
		TemplateIndex: templateIndex % len(planTemplates),
		Meals:         meals,
		ShoppingList:  BuildShoppingList(meals),
	}, nil
}

// resolveTemplate looks up every food the template names and checks it fills
// the role of its slot.
func resolveTemplate(tpl PlanTemplate) (map[string]Food, error) {
	slots := []slot{
		{tpl.BreakfastProtein, MacroProtein},
		{tpl.BreakfastCarb, MacroCarb},
		{tpl.LunchProtein, MacroProtein},
		{tpl.LunchCarb, MacroCarb},
		{tpl.DinnerProtein, MacroProtein},
		{tpl.DinnerCarb, MacroCarb},
		{lunchFatKey, MacroFat},
		{snackFatKey, MacroFat},
	}
	out := make(map[string]Food, len(slots))
	for _, s := range slots {
		f, err := lookupRole(s.key, s.role)
		if err != nil {
			return nil, err
		}
		out[s.key] = f
	}
	return out, nil
}

func fruit(key, label string) model.LineItem {
	one := 1
	return model.LineItem{Key: key, Label: label, Amount: &one, Unit: "adet"}
}

func vegetables(key string) model.LineItem {
	return model.LineItem{Key: key, Label: "Karışık sebze"}
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
