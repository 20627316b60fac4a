package domain

import (
	"errors"
)

var (
	MessageSuccessSuggestRecipes = "recipe suggestions retrieved successfully"
	MessageSuccessGetRecipe      = "recipe retrieved successfully"

	MessageFailedSuggestRecipes = "failed to retrieve recipe suggestions"
	MessageFailedGetRecipe      = "failed to retrieve recipe"

	ErrEmptySelection = errors.New("no pantry items selected")
	ErrRecipeNotFound = errors.New("recipe not found")
)

type (
	// SuggestionPreferences narrows the upstream suggestion request. Empty
	// fields fall back to the stored user preferences, then to the upstream
	// defaults (any cuisine, medium spice, any cooking time).
	SuggestionPreferences struct {
		Cuisine     string `json:"cuisine"`
		SpicyLevel  string `json:"spicy_level" validate:"omitempty,oneof=low medium high"`
		CookingTime string `json:"cooking_time"`
	}

	RecipeIngredient struct {
		Name     string  `json:"name"`
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit"`
	}

	// Recipe is immutable once returned by the suggestion service; it is
	// held in session state only and never persisted by the gateway.
	Recipe struct {
		Name         string             `json:"recipe"`
		Overview     string             `json:"overview"`
		Ingredients  []RecipeIngredient `json:"ingredients"`
		Instructions string             `json:"instructions"`
		Steps        []string           `json:"steps"`
		CookingTime  string             `json:"cooking_time"`
		SpicyLevel   string             `json:"spicy_level"`
		Cuisine      string             `json:"cuisine"`
	}

	SuggestRecipesResponse struct {
		Recipes []Recipe `json:"recipes"`
	}
)
