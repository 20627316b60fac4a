package summary

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

func intPtr(n int) *int { return &n }

func TestSummaryCountsByStatus(t *testing.T) {
	pantry := &fakePantry{overview: domain.PantryOverview{Items: []domain.PantryItem{
		{Name: "Rice", Status: domain.StatusGood},
		{Name: "Milk", Quantity: "1", Unit: "l", Status: domain.StatusExpiring, DaysUntilExpiry: intPtr(4)},
		{Name: "Zucchini", Quantity: "4", Unit: "pc", Status: domain.StatusExpiring, DaysUntilExpiry: intPtr(2)},
		{Name: "Potatoes", Status: domain.StatusExpired},
	}}}

	resp, err := NewSummaryService(pantry).Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, resp.TotalItems)
	assert.Equal(t, 1, resp.GoodItems)
	assert.Equal(t, 2, resp.ExpiringItems)
	assert.Equal(t, 1, resp.ExpiredItems)
	assert.Equal(t, 75, resp.UtilizationPercent)

	// Soonest expiry first.
	require.Len(t, resp.ExpiringSoon, 2)
	assert.Equal(t, "Zucchini", resp.ExpiringSoon[0].Name)
	assert.Equal(t, 2, resp.ExpiringSoon[0].DaysUntilExpiry)
}

func TestSummaryEmptyPantry(t *testing.T) {
	resp, err := NewSummaryService(&fakePantry{}).Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, resp.TotalItems)
	assert.Equal(t, 100, resp.UtilizationPercent)
	assert.Empty(t, resp.ExpiringSoon)
}

func TestSummaryPropagatesDegradedFlag(t *testing.T) {
	pantry := &fakePantry{overview: domain.PantryOverview{Degraded: true}}
	resp, err := NewSummaryService(pantry).Summary(context.Background())
	require.NoError(t, err)
	assert.True(t, resp.Degraded)
}

func TestSummaryUpstreamError(t *testing.T) {
	boom := errors.New("down")
	_, err := NewSummaryService(&fakePantry{err: boom}).Summary(context.Background())
	assert.ErrorIs(t, err, boom)
}
