package summary

import (
	"Kitchen-Gateway/domain"
	"context"
	"sort"
)

type (
	SummaryService interface {
		Summary(ctx context.Context) (domain.SummaryResponse, error)
	}

	pantryReader interface {
		Overview(ctx context.Context) (domain.PantryOverview, error)
	}

	summaryService struct {
		pantry pantryReader
	}
)

func NewSummaryService(pantry pantryReader) SummaryService {
	return &summaryService{pantry: pantry}
}

// Summary aggregates freshness counts over the live pantry. Utilization is
// the share of items that are still usable, good or expiring, out of all
// items. An empty pantry reports full utilization.
func (s *summaryService) Summary(ctx context.Context) (domain.SummaryResponse, error) {
	overview, err := s.pantry.Overview(ctx)
	if err != nil {
		return domain.SummaryResponse{}, err
	}

	resp := domain.SummaryResponse{
		TotalItems:   len(overview.Items),
		ExpiringSoon: []domain.ExpiringSoonItem{},
		Degraded:     overview.Degraded,
	}

	for _, item := range overview.Items {
		switch item.Status {
		case domain.StatusGood:
			resp.GoodItems++
		case domain.StatusExpiring:
			resp.ExpiringItems++
			days := 0
			if item.DaysUntilExpiry != nil {
				days = *item.DaysUntilExpiry
			}
			resp.ExpiringSoon = append(resp.ExpiringSoon, domain.ExpiringSoonItem{
				Name:            item.Name,
				Quantity:        item.Quantity,
				Unit:            item.Unit,
				DaysUntilExpiry: days,
			})
		case domain.StatusExpired:
			resp.ExpiredItems++
		}
	}

	sort.Slice(resp.ExpiringSoon, func(i, j int) bool {
		return resp.ExpiringSoon[i].DaysUntilExpiry < resp.ExpiringSoon[j].DaysUntilExpiry
	})

	if resp.TotalItems == 0 {
		resp.UtilizationPercent = 100
	} else {
		usable := resp.GoodItems + resp.ExpiringItems
		resp.UtilizationPercent = usable * 100 / resp.TotalItems
	}

	return resp, nil
}
