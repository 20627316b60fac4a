package preference

import (
	"Kitchen-Gateway/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreNeutral(t *testing.T) {
	prefs := Defaults()

	for name, enabled := range prefs.Dietary {
		assert.False(t, enabled, "dietary %s should start off", name)
	}
	for _, cuisine := range prefs.Cuisines {
		assert.False(t, cuisine.Selected)
	}
	assert.Equal(t, 3, prefs.SpiceLevel)
}

func TestSaveRoundTrip(t *testing.T) {
	svc := NewPreferenceService()

	prefs := svc.Get()
	prefs.SpiceLevel = 5
	prefs.Dietary["vegan"] = true
	svc.Save(prefs)

	got := svc.Get()
	assert.Equal(t, 5, got.SpiceLevel)
	assert.True(t, got.Dietary["vegan"])
}

func TestSuggestionProjection(t *testing.T) {
	svc := NewPreferenceService()

	prefs := svc.Get()
	prefs.SpiceLevel = 1
	prefs.CookingTime = 20
	prefs.Cuisines[2].Selected = true
	svc.Save(prefs)

	suggestion := svc.Suggestion()
	assert.Equal(t, "low", suggestion.SpicyLevel)
	assert.Equal(t, "mexican", suggestion.Cuisine)
	assert.Equal(t, "under 20 minutes", suggestion.CookingTime)
}

func TestSuggestionNoCuisineSelected(t *testing.T) {
	svc := NewPreferenceService()
	suggestion := svc.Suggestion()
	require.IsType(t, domain.SuggestionPreferences{}, suggestion)
	assert.Empty(t, suggestion.Cuisine)
	assert.Equal(t, "medium", suggestion.SpicyLevel)
}

func TestSpiceLevelNames(t *testing.T) {
	assert.Equal(t, "low", spiceLevelName(1))
	assert.Equal(t, "low", spiceLevelName(2))
	assert.Equal(t, "medium", spiceLevelName(3))
	assert.Equal(t, "high", spiceLevelName(4))
	assert.Equal(t, "high", spiceLevelName(5))
}
