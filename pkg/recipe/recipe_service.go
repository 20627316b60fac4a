package recipe

import (
	"Kitchen-Gateway/domain"
	"Kitchen-Gateway/pkg/kitchenapi"
	"context"
	"time"
)

// Defaults applied when neither the request nor the stored preferences
// constrain the suggestion.
const (
	DefaultCuisine     = "any"
	DefaultSpicyLevel  = "medium"
	DefaultCookingTime = "any"
)

type (
	RecipeService interface {
		Suggest(ctx context.Context, selected []domain.PantryItem, prefs domain.SuggestionPreferences) ([]domain.Recipe, error)
	}

	recipeService struct {
		api           kitchenapi.RecipeAPI
		contributorID string
		now           func() time.Time
	}
)

func NewRecipeService(api kitchenapi.RecipeAPI, contributorID string) RecipeService {
	return &recipeService{
		api:           api,
		contributorID: contributorID,
		now:           time.Now,
	}
}

func (s *recipeService) Suggest(ctx context.Context, selected []domain.PantryItem, prefs domain.SuggestionPreferences) ([]domain.Recipe, error) {
	req, err := s.buildRequest(selected, prefs)
	if err != nil {
		return nil, err
	}

	suggestions, err := s.api.SuggestRecipes(ctx, req)
	if err != nil {
		return nil, err
	}

	recipes := make([]domain.Recipe, 0, len(suggestions))
	for _, suggestion := range suggestions {
		recipes = append(recipes, toRecipe(suggestion))
	}
	return recipes, nil
}

// buildRequest assembles the upstream suggestion payload from the selected
// items. An empty selection fails before any network call is made.
func (s *recipeService) buildRequest(selected []domain.PantryItem, prefs domain.SuggestionPreferences) (kitchenapi.SuggestionRequest, error) {
	if len(selected) == 0 {
		return kitchenapi.SuggestionRequest{}, domain.ErrEmptySelection
	}

	today := s.now().Format("2006-01-02")

	ingredients := make([]kitchenapi.SuggestionIngredient, 0, len(selected))
	for _, item := range selected {
		expiration := item.ExpirationDate
		if expiration == "" {
			expiration = today
		}
		ingredients = append(ingredients, kitchenapi.SuggestionIngredient{
			Name:           item.Name,
			Quantity:       kitchenapi.ParseLooseFloat(item.Quantity),
			Unit:           item.Unit,
			ExpirationDate: expiration,
			AddedBy:        s.contributorID,
		})
	}

	cuisine := prefs.Cuisine
	if cuisine == "" {
		cuisine = DefaultCuisine
	}
	spicy := prefs.SpicyLevel
	if spicy == "" {
		spicy = DefaultSpicyLevel
	}
	cookingTime := prefs.CookingTime
	if cookingTime == "" {
		cookingTime = DefaultCookingTime
	}

	return kitchenapi.SuggestionRequest{
		Ingredients: ingredients,
		Cuisine:     cuisine,
		SpicyLevel:  spicy,
		CookingTime: cookingTime,
	}, nil
}

func toRecipe(r kitchenapi.Recipe) domain.Recipe {
	ingredients := make([]domain.RecipeIngredient, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		ingredients = append(ingredients, domain.RecipeIngredient{
			Name:     ing.Name,
			Quantity: ing.Quantity.Float(),
			Unit:     ing.Unit,
		})
	}

	return domain.Recipe{
		Name:         r.Name,
		Overview:     r.Overview,
		Ingredients:  ingredients,
		Instructions: r.Instructions,
		Steps:        ParseInstructionSteps(r.Instructions),
		CookingTime:  r.CookingTime.String(),
		SpicyLevel:   r.SpicyLevel,
		Cuisine:      r.Cuisine,
	}
}
