// Package freshness classifies inventory items by how close they are to
// their expiration date. Classification is a pure function of the
// expiration date and an explicit reference date so callers control "now".
package freshness

import (
	"Kitchen-Gateway/domain"
	"math"
	"time"
)

// ExpiringWindowDays is the inclusive upper bound, in days, for an item
// to count as expiring rather than good.
const ExpiringWindowDays = 5

type Freshness struct {
	Status          string
	DaysUntilExpiry int
	HasExpiry       bool
}

// Classify maps an optional expiration date to a freshness status relative
// to ref. A nil expiry is always good. An expiry strictly before ref is
// expired. Otherwise the day count is the ceiling of the remaining time,
// expiring when it is at most ExpiringWindowDays.
func Classify(expiry *time.Time, ref time.Time) Freshness {
	if expiry == nil {
		return Freshness{Status: domain.StatusGood}
	}

	if expiry.Before(ref) {
		return Freshness{Status: domain.StatusExpired, HasExpiry: true}
	}

	days := int(math.Ceil(expiry.Sub(ref).Hours() / 24))
	status := domain.StatusGood
	if days <= ExpiringWindowDays {
		status = domain.StatusExpiring
	}

	return Freshness{
		Status:          status,
		DaysUntilExpiry: days,
		HasExpiry:       true,
	}
}
