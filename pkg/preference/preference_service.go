package preference

import (
	"Kitchen-Gateway/domain"
	"strconv"
	"sync"
)

type (
	PreferenceService interface {
		Get() domain.Preferences
		Save(prefs domain.Preferences) domain.Preferences
		Suggestion() domain.SuggestionPreferences
	}

	preferenceService struct {
		mu    sync.RWMutex
		prefs domain.Preferences
	}
)

func NewPreferenceService() PreferenceService {
	return &preferenceService{prefs: Defaults()}
}

// Defaults returns the preference set a fresh session starts from.
func Defaults() domain.Preferences {
	return domain.Preferences{
		Dietary: map[string]bool{
			"vegetarian":   false,
			"vegan":        false,
			"gluten_free":  false,
			"lactose_free": false,
		},
		Allergies: map[string]bool{
			"nuts":      false,
			"shellfish": false,
			"eggs":      false,
			"soy":       false,
		},
		Cuisines: []domain.CuisinePreference{
			{ID: "italian", Name: "Italian"},
			{ID: "asian", Name: "Asian"},
			{ID: "mexican", Name: "Mexican"},
			{ID: "mediterranean", Name: "Mediterranean"},
			{ID: "indian", Name: "Indian"},
			{ID: "french", Name: "French"},
		},
		SpiceLevel:  3,
		CookingTime: 30,
	}
}

func (s *preferenceService) Get() domain.Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs
}

func (s *preferenceService) Save(prefs domain.Preferences) domain.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs = prefs
	return s.prefs
}

// Suggestion projects the stored preferences onto the narrower suggestion
// request shape. The first selected cuisine wins; none selected means any.
func (s *preferenceService) Suggestion() domain.SuggestionPreferences {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := domain.SuggestionPreferences{
		SpicyLevel: spiceLevelName(s.prefs.SpiceLevel),
	}
	for _, cuisine := range s.prefs.Cuisines {
		if cuisine.Selected {
			out.Cuisine = cuisine.ID
			break
		}
	}
	if s.prefs.CookingTime > 0 {
		out.CookingTime = minutesLabel(s.prefs.CookingTime)
	}
	return out
}

// spiceLevelName collapses the 1..5 preference scale onto the three levels
// the suggestion API accepts.
func spiceLevelName(level int) string {
	switch {
	case level <= 2:
		return "low"
	case level == 3:
		return "medium"
	default:
		return "high"
	}
}

func minutesLabel(minutes int) string {
	return "under " + strconv.Itoa(minutes) + " minutes"
}
