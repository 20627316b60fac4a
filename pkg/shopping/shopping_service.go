package shopping

import (
	"Kitchen-Gateway/domain"
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

type (
	ShoppingService interface {
		List() []domain.ShoppingItem
		Add(req domain.AddShoppingItemRequest) (domain.ShoppingItem, error)
		SetChecked(id string, checked bool) (domain.ShoppingItem, error)
		Remove(id string) error
		Recommendations(ctx context.Context) ([]domain.ShoppingRecommendation, error)
	}

	pantryReader interface {
		Overview(ctx context.Context) (domain.PantryOverview, error)
	}

	shoppingService struct {
		mu     sync.RWMutex
		items  []domain.ShoppingItem
		pantry pantryReader
	}
)

func NewShoppingService(pantry pantryReader) ShoppingService {
	return &shoppingService{pantry: pantry}
}

func (s *shoppingService) List() []domain.ShoppingItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ShoppingItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *shoppingService) Add(req domain.AddShoppingItemRequest) (domain.ShoppingItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if strings.EqualFold(item.Name, req.Name) {
			return domain.ShoppingItem{}, domain.ErrDuplicateShoppingItem
		}
	}

	item := domain.ShoppingItem{
		ID:       uuid.New().String(),
		Name:     req.Name,
		Quantity: req.Quantity,
		Category: req.Category,
	}
	s.items = append(s.items, item)
	return item, nil
}

func (s *shoppingService) SetChecked(id string, checked bool) (domain.ShoppingItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Checked = checked
			return s.items[i], nil
		}
	}
	return domain.ShoppingItem{}, domain.ErrShoppingItemNotFound
}

func (s *shoppingService) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrShoppingItemNotFound
}

// Recommendations derives replacement purchases from the live pantry:
// expired items should be replaced, expiring items are flagged so the user
// can top up before they turn. Items already on the list are not repeated.
func (s *shoppingService) Recommendations(ctx context.Context) ([]domain.ShoppingRecommendation, error) {
	overview, err := s.pantry.Overview(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	listed := make(map[string]bool, len(s.items))
	for _, item := range s.items {
		listed[strings.ToLower(item.Name)] = true
	}
	s.mu.RUnlock()

	recommendations := []domain.ShoppingRecommendation{}
	for _, item := range overview.Items {
		if listed[strings.ToLower(item.Name)] {
			continue
		}
		switch item.Status {
		case domain.StatusExpired:
			recommendations = append(recommendations, domain.ShoppingRecommendation{
				Name:     item.Name,
				Quantity: item.Quantity,
				Reason:   "expired in your pantry",
			})
		case domain.StatusExpiring:
			recommendations = append(recommendations, domain.ShoppingRecommendation{
				Name:     item.Name,
				Quantity: item.Quantity,
				Reason:   "expiring soon in your pantry",
			})
		}
	}
	return recommendations, nil
}
