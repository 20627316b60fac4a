package pantry

import (
	"Kitchen-Gateway/domain"
	"Kitchen-Gateway/pkg/freshness"
	"Kitchen-Gateway/pkg/kitchenapi"
	"context"
	"log"
	"time"
)

type (
	PantryService interface {
		Overview(ctx context.Context) (domain.PantryOverview, error)
		AddItems(ctx context.Context, req domain.AddItemsRequest) (domain.AddItemsResponse, error)
		UpdateItem(ctx context.Context, id string, req domain.UpdateItemRequest) error
		DeleteItem(ctx context.Context, id string) error
		MarkUsed(ctx context.Context, items []domain.PantryItem) []domain.IngredientResult
	}

	pantryService struct {
		api kitchenapi.InventoryAPI
		now func() time.Time
	}
)

func NewPantryService(api kitchenapi.InventoryAPI) PantryService {
	return &pantryService{
		api: api,
		now: time.Now,
	}
}

// Overview fetches the authoritative inventory and derives freshness per
// item. When the upstream fetch fails the fixed sample dataset is served
// instead so the pantry screen is never empty; the result is flagged
// degraded so callers can tell it apart from real data.
func (s *pantryService) Overview(ctx context.Context) (domain.PantryOverview, error) {
	now := s.now()

	raw, err := s.api.FetchAll(ctx)
	if err != nil {
		log.Printf("pantry: inventory fetch failed, serving sample data: %v", err)
		return domain.PantryOverview{
			Items:     SampleItems(),
			Degraded:  true,
			UpdatedAt: now,
		}, nil
	}

	items := make([]domain.PantryItem, 0, len(raw))
	for _, r := range raw {
		items = append(items, toPantryItem(r, now))
	}

	return domain.PantryOverview{
		Items:     items,
		UpdatedAt: now,
	}, nil
}

func (s *pantryService) AddItems(ctx context.Context, req domain.AddItemsRequest) (domain.AddItemsResponse, error) {
	now := s.now()

	payload := make([]kitchenapi.NewInventoryItem, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Name == "" {
			return domain.AddItemsResponse{}, domain.ErrItemNameRequired
		}
		if item.Quantity <= 0 {
			return domain.AddItemsResponse{}, domain.ErrItemQuantityRequired
		}

		expiration := item.ExpirationDate
		if expiration == "" {
			expiration = DefaultExpiration(item.Name, now)
		}

		payload = append(payload, kitchenapi.NewInventoryItem{
			Name:           item.Name,
			Quantity:       item.Quantity,
			Unit:           item.Unit,
			ExpirationDate: expiration,
		})
	}

	created, err := s.api.Create(ctx, payload)
	if err != nil {
		return domain.AddItemsResponse{}, err
	}

	items := make([]domain.PantryItem, 0, len(created))
	for _, r := range created {
		items = append(items, toPantryItem(r, now))
	}

	return domain.AddItemsResponse{
		Added: len(items),
		Items: items,
	}, nil
}

func (s *pantryService) UpdateItem(ctx context.Context, id string, req domain.UpdateItemRequest) error {
	raw, err := s.api.FetchAll(ctx)
	if err != nil {
		return err
	}

	var current *kitchenapi.InventoryItem
	for i := range raw {
		if raw[i].ID.String() == id {
			current = &raw[i]
			break
		}
	}
	if current == nil {
		return domain.ErrItemNotFound
	}

	update := kitchenapi.InventoryItemUpdate{
		Name:           current.Name,
		Quantity:       current.Quantity.Float(),
		Unit:           current.Unit,
		ExpirationDate: current.ExpirationDate,
	}
	if req.Name != "" {
		update.Name = req.Name
	}
	if req.Quantity > 0 {
		update.Quantity = req.Quantity
	}
	if req.Unit != "" {
		update.Unit = req.Unit
	}
	if req.ExpirationDate != "" {
		update.ExpirationDate = req.ExpirationDate
	}

	return s.api.Update(ctx, id, update)
}

func (s *pantryService) DeleteItem(ctx context.Context, id string) error {
	return s.api.Delete(ctx, id)
}

// MarkUsed bulk-deletes the selected items. Deletions are attempted
// independently; one failure does not stop the rest.
func (s *pantryService) MarkUsed(ctx context.Context, items []domain.PantryItem) []domain.IngredientResult {
	results := make([]domain.IngredientResult, 0, len(items))
	for _, item := range items {
		if !item.Selected {
			continue
		}

		result := domain.IngredientResult{
			Ingredient: item.Name,
			ItemID:     item.ID,
			Outcome:    domain.OutcomeDeleted,
		}
		if err := s.api.Delete(ctx, item.ID); err != nil {
			log.Printf("pantry: failed to delete used item %s: %v", item.Name, err)
			result.Outcome = domain.OutcomeFailed
			result.Error = err.Error()
		}
		results = append(results, result)
	}
	return results
}

func toPantryItem(r kitchenapi.InventoryItem, now time.Time) domain.PantryItem {
	var expiry *time.Time
	if r.ExpirationDate != "" {
		if parsed, err := time.Parse("2006-01-02", r.ExpirationDate); err == nil {
			expiry = &parsed
		}
	}

	f := freshness.Classify(expiry, now)

	item := domain.PantryItem{
		ID:             r.ID.String(),
		Name:           r.Name,
		Quantity:       r.Quantity.String(),
		Unit:           r.Unit,
		ExpirationDate: r.ExpirationDate,
		Status:         f.Status,
	}
	if f.HasExpiry {
		days := f.DaysUntilExpiry
		item.DaysUntilExpiry = &days
	}
	return item
}
