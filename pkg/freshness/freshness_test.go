package freshness

import (
	"Kitchen-Gateway/domain"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClassify(t *testing.T) {
	ref := date(2025, time.April, 10)

	tests := []struct {
		name       string
		expiry     *time.Time
		wantStatus string
		wantDays   int
		wantExpiry bool
	}{
		{"no expiration date", nil, domain.StatusGood, 0, false},
		{"day before reference", ptr(date(2025, time.April, 9)), domain.StatusExpired, 0, true},
		{"long past", ptr(date(2024, time.December, 1)), domain.StatusExpired, 0, true},
		{"same instant", ptr(ref), domain.StatusExpiring, 0, true},
		{"one day left", ptr(date(2025, time.April, 11)), domain.StatusExpiring, 1, true},
		{"boundary five days", ptr(date(2025, time.April, 15)), domain.StatusExpiring, 5, true},
		{"six days left", ptr(date(2025, time.April, 16)), domain.StatusGood, 6, true},
		{"far future", ptr(date(2025, time.August, 15)), domain.StatusGood, 127, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.expiry, ref)
			if got.Status != tt.wantStatus {
				t.Errorf("Classify() status = %q, want %q", got.Status, tt.wantStatus)
			}
			if got.HasExpiry != tt.wantExpiry {
				t.Errorf("Classify() hasExpiry = %v, want %v", got.HasExpiry, tt.wantExpiry)
			}
			if got.HasExpiry && got.Status != domain.StatusExpired && got.DaysUntilExpiry != tt.wantDays {
				t.Errorf("Classify() days = %d, want %d", got.DaysUntilExpiry, tt.wantDays)
			}
		})
	}
}

func TestClassifyPartialDay(t *testing.T) {
	// A fraction of a day left still counts as one day, matching the
	// ceiling behavior callers rely on for the expiring window.
	ref := time.Date(2025, time.April, 10, 18, 0, 0, 0, time.UTC)
	expiry := time.Date(2025, time.April, 11, 0, 0, 0, 0, time.UTC)

	got := Classify(&expiry, ref)
	if got.Status != domain.StatusExpiring || got.DaysUntilExpiry != 1 {
		t.Errorf("Classify() = %+v, want expiring with 1 day", got)
	}
}

func TestClassifyIsPure(t *testing.T) {
	ref := date(2025, time.April, 10)
	expiry := date(2025, time.April, 12)

	first := Classify(&expiry, ref)
	second := Classify(&expiry, ref)
	if first != second {
		t.Errorf("Classify() not deterministic: %+v vs %+v", first, second)
	}
}

func ptr(t time.Time) *time.Time { return &t }
