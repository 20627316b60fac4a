package domain

var (
	MessageSuccessFinishCooking = "pantry reconciled with used ingredients"

	MessageFailedFinishCooking = "failed to reconcile pantry"
)

// Reconciliation outcomes for a single marked ingredient.
const (
	OutcomeUpdated = "updated"
	OutcomeDeleted = "deleted"
	OutcomeSkipped = "skipped"
	OutcomeFailed  = "failed"
)

type (
	UsedIngredient struct {
		Name     string  `json:"name" validate:"required"`
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit"`
		Used     bool    `json:"used"`
	}

	FinishCookingRequest struct {
		Ingredients []UsedIngredient `json:"ingredients" validate:"required,dive"`
	}

	// IngredientResult reports what happened to one ingredient during
	// reconciliation. A failed entry never aborts the rest of the batch.
	IngredientResult struct {
		Ingredient  string  `json:"ingredient"`
		Outcome     string  `json:"outcome"`
		ItemID      string  `json:"item_id,omitempty"`
		NewQuantity float64 `json:"new_quantity,omitempty"`
		Error       string  `json:"error,omitempty"`
	}

	FinishCookingResponse struct {
		Results []IngredientResult `json:"results"`
	}
)
