package service

import (
	"fmt"
	"strings"

	"github.com/Ertugrulkurtul/Macromeal-Planner/internal/model"
)

// FormatLineItem renders "150g Pirinç", "3 adet Yumurta" or a bare label when
// the amount is unset.
func FormatLineItem(item model.LineItem) string {
	return formatAmount(item.Label, item.Amount, item.Unit)
}

func FormatShoppingEntry(e model.ShoppingListEntry) string {
	return formatAmount(e.Label, e.Amount, e.Unit)
}

func formatAmount(label string, amount *int, unit string) string {
	if amount == nil {
		return label
	}
	if unit == gramUnit {
		return fmt.Sprintf("%dg %s", *amount, label)
	}
	return fmt.Sprintf("%d %s %s", *amount, unit, label)
}

// RenderPlanText is the plain-text export of a calculation and its plan, for
// pasting into notes or chat.
func RenderPlanText(calc model.Calculation, plan model.MealPlan) string {
	t := calc.Targets
	var b strings.Builder
	fmt.Fprintf(&b, "MacroMeal Planner — %s\n", GoalLabel(calc.Input.Goal))
	fmt.Fprintf(&b, "BMR: %d kcal | TDEE: %d kcal | Hedef: %d kcal\n", t.BMR, t.TDEE, t.TargetCalories)
	fmt.Fprintf(&b, "Protein: %dg | Yağ: %dg | Karbonhidrat: %dg\n", t.ProteinG, t.FatG, t.CarbG)
	b.WriteString("\n")
	for _, meal := range plan.Meals {
		fmt.Fprintf(&b, "%s %s\n", meal.Icon, meal.Name)
		for _, item := range meal.Items {
			fmt.Fprintf(&b, "  • %s\n", FormatLineItem(item))
		}
	}
	b.WriteString("\n🛒 Alışveriş Listesi:\n")
	for _, e := range plan.ShoppingList {
		fmt.Fprintf(&b, "  • %s\n", FormatShoppingEntry(e))
	}
	return b.String()
}
