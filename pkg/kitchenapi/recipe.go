package kitchenapi

import (
	"context"
	"net/http"
)

type (
	SuggestionIngredient struct {
		Name           string  `json:"name"`
		Quantity       float64 `json:"quantity"`
		Unit           string  `json:"unit"`
		ExpirationDate string  `json:"expiration_date"`
		AddedBy        string  `json:"added_by"`
	}

	SuggestionRequest struct {
		Ingredients []SuggestionIngredient `json:"ingredients"`
		Cuisine     string                 `json:"cuisine"`
		SpicyLevel  string                 `json:"spicy_level"`
		CookingTime string                 `json:"cooking_time"`
	}

	RecipeIngredient struct {
		Name     string     `json:"name"`
		Quantity LooseValue `json:"quantity"`
		Unit     string     `json:"unit"`
	}

	Recipe struct {
		Name         string             `json:"recipe"`
		Overview     string             `json:"overview"`
		Ingredients  []RecipeIngredient `json:"ingredients"`
		Instructions string             `json:"instructions"`
		CookingTime  LooseValue         `json:"cooking_time"`
		SpicyLevel   string             `json:"spicy_level"`
		Cuisine      string             `json:"cuisine"`
	}

	suggestionResponse struct {
		Recipes []Recipe `json:"recipes"`
	}

	RecipeAPI interface {
		SuggestRecipes(ctx context.Context, req SuggestionRequest) ([]Recipe, error)
	}
)

func (c *Client) SuggestRecipes(ctx context.Context, req SuggestionRequest) ([]Recipe, error) {
	var resp suggestionResponse
	if err := c.do(ctx, http.MethodPost, "/recipe/suggest/", req, &resp); err != nil {
		return nil, err
	}
	return resp.Recipes, nil
}
