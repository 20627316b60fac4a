package domain

var (
	MessageSuccessGetPreferences  = "preferences retrieved successfully"
	MessageSuccessSavePreferences = "preferences saved successfully"

	MessageFailedSavePreferences = "failed to save preferences"
)

type (
	CuisinePreference struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Selected bool   `json:"selected"`
	}

	Preferences struct {
		Dietary     map[string]bool     `json:"dietary"`
		Allergies   map[string]bool     `json:"allergies"`
		Cuisines    []CuisinePreference `json:"cuisines"`
		SpiceLevel  int                 `json:"spice_level" validate:"min=1,max=5"`
		CookingTime int                 `json:"cooking_time" validate:"gt=0"`
	}
)
