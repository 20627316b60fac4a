package pantry

import "Kitchen-Gateway/domain"

// Toggle sets the selection flag on the item with the given id and returns
// the updated slice. Unknown ids leave the slice unchanged and report false.
func Toggle(items []domain.PantryItem, id string, selected bool) ([]domain.PantryItem, bool) {
	for i := range items {
		if items[i].ID == id {
			items[i].Selected = selected
			return items, true
		}
	}
	return items, false
}

// Selected filters the items down to those currently marked for cooking.
func Selected(items []domain.PantryItem) []domain.PantryItem {
	out := make([]domain.PantryItem, 0, len(items))
	for _, item := range items {
		if item.Selected {
			out = append(out, item)
		}
	}
	return out
}
