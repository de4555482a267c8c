package service

import "github.com/Ertugrulkurtul/Macromeal-Planner/internal/model"

// BuildShoppingList merges meal items by label in first-appearance order.
//
// A later item adds to an entry only when both amounts are set. An entry
// created from a nil-amount item therefore stays nil even if a later item with
// the same label carries an amount.
func BuildShoppingList(meals []model.Meal) []model.ShoppingListEntry {
	entries := make([]model.ShoppingListEntry, 0)
	index := map[string]int{}
	for _, meal := range meals {
		for _, item := range meal.Items {
			i, ok := index[item.Label]
			if !ok {
				index[item.Label] = len(entries)
				entries = append(entries, model.ShoppingListEntry{
					Label:  item.Label,
					Amount: copyAmount(item.Amount),
					Unit:   item.Unit,
				})
				continue
			}
			if item.Amount != nil && entries[i].Amount != nil {
				*entries[i].Amount += *item.Amount
			}
		}
	}
	return entries
}

func copyAmount(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
