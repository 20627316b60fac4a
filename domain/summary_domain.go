package domain

var (
	MessageSuccessGetSummary = "usage summary retrieved successfully"

	MessageFailedGetSummary = "failed to retrieve usage summary"
)

type (
	ExpiringSoonItem struct {
		Name            string `json:"name"`
		Quantity        string `json:"quantity"`
		Unit            string `json:"unit"`
		DaysUntilExpiry int    `json:"days_until_expiry"`
	}

	SummaryResponse struct {
		TotalItems         int                `json:"total_items"`
		GoodItems          int                `json:"good_items"`
		ExpiringItems      int                `json:"expiring_items"`
		ExpiredItems       int                `json:"expired_items"`
		UtilizationPercent int                `json:"utilization_percent"`
		ExpiringSoon       []ExpiringSoonItem `json:"expiring_soon"`
		Degraded           bool               `json:"degraded"`
	}
)
