package service_test

import (
	"testing"

	"github.com/Ertugrulkurtul/Macromeal-Planner/internal/model"
	"github.com/Ertugrulkurtul/Macromeal-Planner/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itemByKey(t *testing.T, meal model.Meal, key string) model.LineItem {
	t.Helper()
	for _, item := range meal.Items {
		if item.Key == key {
			return item
		}
	}
	t.Fatalf("meal %s has no item %q", meal.Name, key)
	return model.LineItem{}
}

func TestAllocateMealsStandardTemplate(t *testing.T) {
	t.Parallel()
	plan, err := service.AllocateMeals(mustTargets(t, standardInput()), 0)
	require.NoError(t, err)
	require.Len(t, plan.Meals, 4)

	names := []string{}
	for _, m := range plan.Meals {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"Kahvaltı", "Öğle", "Ara", "Akşam"}, names)

	eggs := itemByKey(t, plan.Meals[0], "yumurta")
	require.NotNil(t, eggs.Amount)
	assert.Equal(t, 5, *eggs.Amount)
	assert.Equal(t, "adet", eggs.Unit)

	chicken := itemByKey(t, plan.Meals[1], "tavuk")
	require.NotNil(t, chicken.Amount)
	assert.Equal(t, 135, *chicken.Amount)
	assert.Equal(t, "g", chicken.Unit)

	oats := itemByKey(t, plan.Meals[0], "yulaf")
	assert.Equal(t, 90, *oats.Amount)
	assert.Equal(t, 22, *itemByKey(t, plan.Meals[2], "badem").Amount)
	assert.Equal(t, 162, *itemByKey(t, plan.Meals[3], "kiyma").Amount)
	assert.Equal(t, 350, *itemByKey(t, plan.Meals[3], "patates").Amount)
}

func TestAllocateMealsPortionsStayInRange(t *testing.T) {
	t.Parallel()
	profiles := []model.Profile{
		{WeightKg: 30, HeightCm: 120, Age: 80, Gender: model.GenderFemale},
		{WeightKg: 70, HeightCm: 175, Age: 25, Gender: model.GenderMale},
		{WeightKg: 250, HeightCm: 230, Age: 12, Gender: model.GenderMale},
	}
	for _, p := range profiles {
		in := standardInput()
		in.Profile = p
		targets := mustTargets(t, in)
		for idx := 0; idx < service.TemplateCount(); idx++ {
			plan, err := service.AllocateMeals(targets, idx)
			require.NoError(t, err)
			for _, meal := range plan.Meals {
				for _, item := range meal.Items {
					food, err := service.LookupFood(item.Key)
					if err != nil {
						continue
					}
					lo, hi := food.Range()
					require.NotNil(t, item.Amount)
					assert.GreaterOrEqual(t, *item.Amount, lo, "%s template %d", item.Key, idx)
					assert.LessOrEqual(t, *item.Amount, hi, "%s template %d", item.Key, idx)
				}
			}
		}
	}
}

func TestAllocateMealsIsDeterministic(t *testing.T) {
	t.Parallel()
	targets := mustTargets(t, standardInput())
	first, err := service.AllocateMeals(targets, 3)
	require.NoError(t, err)
	second, err := service.AllocateMeals(targets, 3)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAllocateMealsRedirectsLunchOverflowToDinner(t *testing.T) {
	t.Parallel()
	in := standardInput()
	in.Profile = model.Profile{WeightKg: 109, HeightCm: 180, Age: 30, Gender: model.GenderMale}
	targets := mustTargets(t, in)
	require.Equal(t, 218, targets.ProteinG)

	// Template 2 puts beef at lunch (max 250 g) and chicken at dinner.
	plan, err := service.AllocateMeals(targets, 2)
	require.NoError(t, err)
	assert.Equal(t, 250, *itemByKey(t, plan.Meals[1], "kiyma").Amount)
	// 65.4 g alone would be 211 g of chicken; the 0.52 g cut from lunch lifts it.
	assert.Equal(t, 213, *itemByKey(t, plan.Meals[3], "tavuk").Amount)
}

func TestAllocateMealsRedirectsLunchCarbOverflowToDinner(t *testing.T) {
	t.Parallel()
	plan, err := service.AllocateMeals(model.MacroTargets{ProteinG: 140, CarbG: 150, FatG: 72}, 0)
	require.NoError(t, err)

	// Lunch rice wants 161 g for 45 g carb and is clamped to 120 g.
	assert.Equal(t, 120, *itemByKey(t, plan.Meals[1], "pirinc").Amount)
	// 45 g alone would be 265 g of potato; the 11.48 g cut from lunch makes it 332 g.
	assert.Equal(t, 332, *itemByKey(t, plan.Meals[3], "patates").Amount)
}

func TestSplitTargetsBreakfastFloorBorrowsFromLunchOnTie(t *testing.T) {
	t.Parallel()
	split := service.SplitTargets(model.MacroTargets{ProteinG: 64, CarbG: 100, FatG: 30})
	assert.InDelta(t, 25, split.BreakfastProtein, 1e-9)
	assert.InDelta(t, 25, split.LunchProtein, 1e-9)
	assert.InDelta(t, 19.2, split.DinnerProtein, 1e-9)
}

func TestSplitTargetsBorrowedAmount(t *testing.T) {
	t.Parallel()
	split := service.SplitTargets(model.MacroTargets{ProteinG: 96})
	// Breakfast 24 g is short by 1 g, which lunch gives up.
	assert.InDelta(t, 25, split.BreakfastProtein, 1e-9)
	assert.InDelta(t, 27.8, split.LunchProtein, 1e-9)
	assert.InDelta(t, 28.8, split.DinnerProtein, 1e-9)
}

func TestSplitTargetsNoBorrowAboveFloor(t *testing.T) {
	t.Parallel()
	split := service.SplitTargets(model.MacroTargets{ProteinG: 140, CarbG: 346, FatG: 72})
	assert.InDelta(t, 35, split.BreakfastProtein, 1e-9)
	assert.InDelta(t, 42, split.LunchProtein, 1e-9)
	assert.InDelta(t, 42, split.DinnerProtein, 1e-9)
	assert.InDelta(t, 21.6, split.LunchFat, 1e-9)
	assert.InDelta(t, 10.8, split.SnackFat, 1e-9)
}

func TestAllocateMealsTemplateIndex(t *testing.T) {
	t.Parallel()
	targets := mustTargets(t, standardInput())

	wrapped, err := service.AllocateMeals(targets, 12)
	require.NoError(t, err)
	direct, err := service.AllocateMeals(targets, 2)
	require.NoError(t, err)
	assert.Equal(t, direct, wrapped)
	assert.Equal(t, 2, wrapped.TemplateIndex)

	_, err = service.AllocateMeals(targets, -1)
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrConfiguration)
}

func TestAllocateMealsShoppingListCoversEveryLabel(t *testing.T) {
	t.Parallel()
	plan, err := service.AllocateMeals(mustTargets(t, standardInput()), 0)
	require.NoError(t, err)

	labels := map[string]bool{}
	for _, e := range plan.ShoppingList {
		assert.False(t, labels[e.Label], "duplicate entry %s", e.Label)
		labels[e.Label] = true
	}
	for _, meal := range plan.Meals {
		for _, item := range meal.Items {
			assert.True(t, labels[item.Label], "missing %s", item.Label)
		}
	}
}
