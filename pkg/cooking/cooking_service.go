package cooking

import (
	"Kitchen-Gateway/domain"
	"Kitchen-Gateway/pkg/kitchenapi"
	"context"
	"log"
	"strings"
)

type (
	CookingService interface {
		Finish(ctx context.Context, req domain.FinishCookingRequest) domain.FinishCookingResponse
	}

	cookingService struct {
		api kitchenapi.InventoryAPI
	}
)

func NewCookingService(api kitchenapi.InventoryAPI) CookingService {
	return &cookingService{api: api}
}

// Finish reconciles the pantry after cooking. Each used ingredient is
// handled sequentially against a fresh inventory fetch so concurrent edits
// between ingredients are honored. Ingredients are matched by exact
// case-insensitive name; a used quantity that drains the item deletes it,
// anything else subtracts. A failure on one ingredient is recorded and the
// batch continues.
func (s *cookingService) Finish(ctx context.Context, req domain.FinishCookingRequest) domain.FinishCookingResponse {
	results := make([]domain.IngredientResult, 0, len(req.Ingredients))

	for _, ingredient := range req.Ingredients {
		if !ingredient.Used {
			continue
		}
		results = append(results, s.reconcileOne(ctx, ingredient))
	}

	return domain.FinishCookingResponse{Results: results}
}

func (s *cookingService) reconcileOne(ctx context.Context, ingredient domain.UsedIngredient) domain.IngredientResult {
	result := domain.IngredientResult{Ingredient: ingredient.Name}

	items, err := s.api.FetchAll(ctx)
	if err != nil {
		log.Printf("cooking: inventory fetch failed for %s: %v", ingredient.Name, err)
		result.Outcome = domain.OutcomeFailed
		result.Error = err.Error()
		return result
	}

	match := findByName(items, ingredient.Name)
	if match == nil {
		result.Outcome = domain.OutcomeSkipped
		return result
	}
	result.ItemID = match.ID.String()

	remaining := match.Quantity.Float() - ingredient.Quantity
	if remaining <= 0 {
		if err := s.api.Delete(ctx, match.ID.String()); err != nil {
			log.Printf("cooking: failed to delete %s: %v", ingredient.Name, err)
			result.Outcome = domain.OutcomeFailed
			result.Error = err.Error()
			return result
		}
		result.Outcome = domain.OutcomeDeleted
		return result
	}

	update := kitchenapi.InventoryItemUpdate{
		Name:           match.Name,
		Quantity:       remaining,
		Unit:           match.Unit,
		ExpirationDate: match.ExpirationDate,
	}
	if err := s.api.Update(ctx, match.ID.String(), update); err != nil {
		log.Printf("cooking: failed to update %s: %v", ingredient.Name, err)
		result.Outcome = domain.OutcomeFailed
		result.Error = err.Error()
		return result
	}

	result.Outcome = domain.OutcomeUpdated
	result.NewQuantity = remaining
	return result
}

func findByName(items []kitchenapi.InventoryItem, name string) *kitchenapi.InventoryItem {
	for i := range items {
		if strings.EqualFold(items[i].Name, name) {
			return &items[i]
		}
	}
	return nil
}
