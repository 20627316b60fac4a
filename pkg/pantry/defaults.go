package pantry

import (
	"strings"
	"time"
)

// shelfLifeDays maps a lowercase name fragment to a typical shelf life.
// First match wins, so more specific fragments come first.
var shelfLifeDays = []struct {
	fragment string
	days     int
}{
	{"milk", 7},
	{"cream", 7},
	{"bread", 5},
	{"bakery", 5},
	{"meat", 3},
	{"fish", 3},
	{"seafood", 3},
	{"vegetable", 7},
	{"fruit", 7},
	{"egg", 21},
	{"cheese", 14},
}

const fallbackShelfLifeDays = 7

// DefaultExpiration estimates an expiration date for an item added without
// one, based on a rough category guess from its name.
func DefaultExpiration(name string, now time.Time) string {
	lower := strings.ToLower(name)
	days := fallbackShelfLifeDays
	for _, entry := range shelfLifeDays {
		if strings.Contains(lower, entry.fragment) {
			days = entry.days
			break
		}
	}
	return now.AddDate(0, 0, days).Format("2006-01-02")
}
