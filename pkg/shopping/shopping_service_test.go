package shopping

import (
	"Kitchen-Gateway/domain"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePantry struct {
	overview domain.PantryOverview
	err      error
}

func (f *fakePantry) Overview(ctx context.Context) (domain.PantryOverview, error) {
	if f.err != nil {
		return domain.PantryOverview{}, f.err
	}
	return f.overview, nil
}

func TestAddRejectsDuplicates(t *testing.T) {
	svc := NewShoppingService(&fakePantry{})

	first, err := svc.Add(domain.AddShoppingItemRequest{Name: "Milk", Quantity: "1 l"})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	_, err = svc.Add(domain.AddShoppingItemRequest{Name: "milk", Quantity: "2 l"})
	assert.ErrorIs(t, err, domain.ErrDuplicateShoppingItem)

	assert.Len(t, svc.List(), 1)
}

func TestCheckAndRemove(t *testing.T) {
	svc := NewShoppingService(&fakePantry{})

	item, err := svc.Add(domain.AddShoppingItemRequest{Name: "Bread", Quantity: "1"})
	require.NoError(t, err)

	checked, err := svc.SetChecked(item.ID, true)
	require.NoError(t, err)
	assert.True(t, checked.Checked)

	_, err = svc.SetChecked("missing", true)
	assert.ErrorIs(t, err, domain.ErrShoppingItemNotFound)

	require.NoError(t, svc.Remove(item.ID))
	assert.Empty(t, svc.List())
	assert.ErrorIs(t, svc.Remove(item.ID), domain.ErrShoppingItemNotFound)
}

func TestRecommendationsFromPantryStatus(t *testing.T) {
	pantry := &fakePantry{overview: domain.PantryOverview{Items: []domain.PantryItem{
		{Name: "Potatoes", Quantity: "2", Status: domain.StatusExpired},
		{Name: "Zucchini", Quantity: "4", Status: domain.StatusExpiring},
		{Name: "Rice", Quantity: "500", Status: domain.StatusGood},
	}}}
	svc := NewShoppingService(pantry)

	recs, err := svc.Recommendations(context.Background())
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "Potatoes", recs[0].Name)
	assert.Contains(t, recs[0].Reason, "expired")
	assert.Contains(t, recs[1].Reason, "expiring")
}

func TestRecommendationsSkipListedItems(t *testing.T) {
	pantry := &fakePantry{overview: domain.PantryOverview{Items: []domain.PantryItem{
		{Name: "Potatoes", Quantity: "2", Status: domain.StatusExpired},
	}}}
	svc := NewShoppingService(pantry)

	_, err := svc.Add(domain.AddShoppingItemRequest{Name: "potatoes", Quantity: "1 kg"})
	require.NoError(t, err)

	recs, err := svc.Recommendations(context.Background())
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestRecommendationsUpstreamError(t *testing.T) {
	boom := errors.New("fetch failed")
	svc := NewShoppingService(&fakePantry{err: boom})
	_, err := svc.Recommendations(context.Background())
	assert.ErrorIs(t, err, boom)
}
