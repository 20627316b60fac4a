package domain

import (
	"errors"
)

var (
	MessageSuccessGetShoppingList    = "shopping list retrieved successfully"
	MessageSuccessAddShoppingItem    = "item added to shopping list"
	MessageSuccessUpdateShoppingItem = "shopping list item updated"
	MessageSuccessRemoveShoppingItem = "item removed from shopping list"
	MessageSuccessGetRecommendations = "shopping recommendations retrieved successfully"

	MessageFailedAddShoppingItem    = "failed to add item to shopping list"
	MessageFailedUpdateShoppingItem = "failed to update shopping list item"
	MessageFailedRemoveShoppingItem = "failed to remove item from shopping list"
	MessageFailedGetRecommendations = "failed to retrieve shopping recommendations"

	ErrDuplicateShoppingItem = errors.New("item already on shopping list")
	ErrShoppingItemNotFound  = errors.New("shopping list item not found")
)

type (
	ShoppingItem struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Quantity string `json:"quantity"`
		Category string `json:"category"`
		Checked  bool   `json:"checked"`
	}

	AddShoppingItemRequest struct {
		Name     string `json:"name" validate:"required"`
		Quantity string `json:"quantity" validate:"required"`
		Category string `json:"category"`
	}

	CheckShoppingItemRequest struct {
		Checked bool `json:"checked"`
	}

	// ShoppingRecommendation suggests a replacement purchase derived from
	// the live pantry state, with a human-readable reason.
	ShoppingRecommendation struct {
		Name     string `json:"name"`
		Quantity string `json:"quantity"`
		Reason   string `json:"reason"`
	}
)
