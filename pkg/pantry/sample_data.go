package pantry

import "Kitchen-Gateway/domain"

// SampleItems returns the fixed dataset served when the upstream inventory
// is unreachable. Statuses are baked in rather than derived because the
// sample has no real expiration dates to classify.
func SampleItems() []domain.PantryItem {
	three := 3
	two := 2
	return []domain.PantryItem{
		{ID: "1", Name: "Potatoes", Quantity: "2", Unit: "pc", Status: domain.StatusExpired},
		{ID: "2", Name: "Zucchini", Quantity: "4", Unit: "pc", Status: domain.StatusExpiring, DaysUntilExpiry: &three},
		{ID: "3", Name: "Quinoa", Quantity: "200", Unit: "g", Status: domain.StatusExpiring, DaysUntilExpiry: &two},
		{ID: "4", Name: "Salmon fillets", Quantity: "2 x 150", Unit: "g", Status: domain.StatusGood},
		{ID: "5", Name: "Potatoes", Quantity: "200", Unit: "g", Status: domain.StatusGood},
		{ID: "6", Name: "Chicken", Quantity: "500", Unit: "g", Status: domain.StatusGood},
		{ID: "7", Name: "Eggs", Quantity: "12", Unit: "pc", Status: domain.StatusGood},
	}
}
