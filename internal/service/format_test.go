package service_test

import (
	"testing"

	"github.com/Ertugrulkurtul/Macromeal-Planner/internal/model"
	"github.com/Ertugrulkurtul/Macromeal-Planner/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatLineItem(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "150g Pirinç", service.FormatLineItem(model.LineItem{Label: "Pirinç", Amount: intPtr(150), Unit: "g"}))
	assert.Equal(t, "3 adet Yumurta", service.FormatLineItem(model.LineItem{Label: "Yumurta", Amount: intPtr(3), Unit: "adet"}))
	assert.Equal(t, "Karışık sebze", service.FormatLineItem(model.LineItem{Label: "Karışık sebze"}))
}

func TestFormatShoppingEntry(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "270g Tavuk göğsü", service.FormatShoppingEntry(model.ShoppingListEntry{Label: "Tavuk göğsü", Amount: intPtr(270), Unit: "g"}))
	assert.Equal(t, "Karışık sebze", service.FormatShoppingEntry(model.ShoppingListEntry{Label: "Karışık sebze"}))
}

func TestRenderPlanText(t *testing.T) {
	t.Parallel()
	in := standardInput()
	calc := model.Calculation{Input: in, Targets: mustTargets(t, in)}
	plan, err := service.AllocateMeals(calc.Targets, 0)
	require.NoError(t, err)

	want := `MacroMeal Planner — İdame
BMR: 1674 kcal | TDEE: 2594 kcal | Hedef: 2594 kcal
Protein: 140g | Yağ: 72g | Karbonhidrat: 346g

☀️ Kahvaltı
  • 5 adet Yumurta
  • 90g Yulaf
  • 1 adet Muz
🍽️ Öğle
  • 135g Tavuk göğsü
  • 120g Pirinç
  • 15g Zeytinyağı
  • Karışık sebze
🥜 Ara
  • 22g Badem
  • 1 adet Elma
🌙 Akşam
  • 162g Yağsız kıyma
  • 350g Patates
  • Karışık sebze

🛒 Alışveriş Listesi:
  • 5 adet Yumurta
  • 90g Yulaf
  • 1 adet Muz
  • 135g Tavuk göğsü
  • 120g Pirinç
  • 15g Zeytinyağı
  • Karışık sebze
  • 22g Badem
  • 1 adet Elma
  • 162g Yağsız kıyma
  • 350g Patates
`
	assert.Equal(t, want, service.RenderPlanText(calc, plan))
}
