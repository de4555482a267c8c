package service

import "sort"

type Macro string

const (
	MacroProtein Macro = "protein"
	MacroCarb    Macro = "carb"
	MacroFat     Macro = "fat"
)

const gramUnit = "g"

// Food is either a UnitFood or a DensityFood.
type Food interface {
	FoodKey() string
	FoodLabel() string
	Role() Macro
	Range() (min, max int)
	isFood()
}

// UnitFood is counted in discrete units (eggs) and always supplies protein.
type UnitFood struct {
	Key            string
	Label          string
	Unit           string
	ProteinPerUnit float64
	Min            int
	Max            int
}

// DensityFood is weighed in grams; Per100g is grams of Macro per 100 g.
type DensityFood struct {
	Key     string
	Label   string
	Macro   Macro
	Per100g float64
	Min     int
	Max     int
}

func (f UnitFood) FoodKey() string { return f.Key }
func (f UnitFood) FoodLabel() string { return f.Label }
func (f UnitFood) Role() Macro { return MacroProtein }
func (f UnitFood) Range() (int, int) { return f.Min, f.Max }
func (UnitFood) isFood() {}
func (f DensityFood) FoodKey() string { return f.Key }
func (f DensityFood) FoodLabel() string { return f.Label }
func (f DensityFood) Role() Macro { return f.Macro }
func (f DensityFood) Range() (int, int) { return f.Min, f.Max }
func (DensityFood) isFood() {}

var foodTable = func() map[string]Food {
	foods := []Food{
		UnitFood{Key: "yumurta", Label: "Yumurta", Unit: "adet", ProteinPerUnit: 7, Min: 2, Max: 6},
		DensityFood{Key: "lor", Label: "Lor peyniri", Macro: MacroProtein, Per100g: 12, Min: 100, Max: 250},
		DensityFood{Key: "tavuk", Label: "Tavuk göğsü", Macro: MacroProtein, Per100g: 31, Min: 120, Max: 220},
		DensityFood{Key: "hindi", Label: "Hindi göğsü", Macro: MacroProtein, Per100g: 29, Min: 120, Max: 220},
		DensityFood{Key: "kiyma", Label: "Yağsız kıyma", Macro: MacroProtein, Per100g: 26, Min: 140, Max: 250},
		DensityFood{Key: "yulaf", Label: "Yulaf", Macro: MacroCarb, Per100g: 66, Min: 40, Max: 90},
		DensityFood{Key: "pirinc", Label: "Pirinç", Macro: MacroCarb, Per100g: 28, Min: 60, Max: 120},
		DensityFood{Key: "bulgur", Label: "Bulgur", Macro: MacroCarb, Per100g: 23, Min: 60, Max: 130},
		DensityFood{Key: "patates", Label: "Patates", Macro: MacroCarb, Per100g: 17, Min: 150, Max: 350},
		DensityFood{Key: "zeytinyagi", Label: "Zeytinyağı", Macro: MacroFat, Per100g: 100, Min: 5, Max: 15},
		DensityFood{Key: "badem", Label: "Badem", Macro: MacroFat, Per100g: 50, Min: 10, Max: 30},
	}
	out := make(map[string]Food, len(foods))
	for _, f := range foods {
		out[f.FoodKey()] = f
	}
	return out
}()

// LookupFood returns the food for key, or a ConfigurationError.
func LookupFood(key string) (Food, error) {
	f, ok := foodTable[key]
	if !ok {
		return nil, configErrorf("unknown food %q", key)
	}
	return f, nil
}

func lookupRole(key string, role Macro) (Food, error) {
	f, err := LookupFood(key)
	if err != nil {
		return nil, err
	}
	if f.Role() != role {
		return nil, configErrorf("food %q supplies %s, not %s", key, f.Role(), role)
	}
	return f, nil
}

// Foods lists the nutrition database sorted by role then key.
func Foods() []Food {
	out := make([]Food, 0, len(foodTable))
	for _, f := range foodTable {
		out = append(out, f)
	}
	order := map[Macro]int{MacroProtein: 0, MacroCarb: 1, MacroFat: 2}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Role() != out[j].Role() {
			return order[out[i].Role()] < order[out[j].Role()]
		}
		return out[i].FoodKey() < out[j].FoodKey()
	})
	return out
}

// rawPortion converts a macro target into an unclamped portion: units for a
// UnitFood, grams for a DensityFood.
func rawPortion(f Food, target float64) (int, error) {
	switch v := f.(type) {
	case UnitFood:
		return roundHalfUp(target / v.ProteinPerUnit), nil
	case DensityFood:
		return roundHalfUp(target * 100 / v.Per100g), nil
	default:
		return 0, configErrorf("unsupported food variant %T", f)
	}
}

// macroPerPortion is the macro grams one portion step (unit or gram) supplies.
func macroPerPortion(f Food) (float64, error) {
	switch v := f.(type) {
	case UnitFood:
		return v.ProteinPerUnit, nil
	case DensityFood:
		return v.Per100g / 100, nil
	default:
		return 0, configErrorf("unsupported food variant %T", f)
	}
}

func portionUnit(f Food) string {
	if u, ok := f.(UnitFood); ok {
		return u.Unit
	}
	return gramUnit
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
