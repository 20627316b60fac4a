package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetPantry   = "pantry retrieved successfully"
	MessageSuccessAddItems    = "items added to pantry successfully"
	MessageSuccessUpdateItem  = "pantry item updated successfully"
	MessageSuccessDeleteItem  = "pantry item deleted successfully"
	MessageSuccessToggleItem  = "pantry item selection updated"
	MessageSuccessMarkUsed    = "selected items marked as used"

	MessageFailedGetPantry  = "failed to retrieve pantry"
	MessageFailedAddItems   = "failed to add items to pantry"
	MessageFailedUpdateItem = "failed to update pantry item"
	MessageFailedDeleteItem = "failed to delete pantry item"
	MessageFailedMarkUsed   = "failed to mark items as used"

	ErrItemNameRequired     = errors.New("item name is required")
	ErrItemQuantityRequired = errors.New("item quantity must be positive")
	ErrItemNotFound         = errors.New("pantry item not found")
)

// Freshness status values as exposed on the wire. Status is always derived
// from the expiration date at read time and never persisted upstream.
const (
	StatusExpired  = "expired"
	StatusExpiring = "expiring"
	StatusGood     = "good"
)

type (
	// PantryItem is the client-side view of an upstream inventory record,
	// augmented with derived freshness fields and the transient selection
	// flag. Selection is never sent back to the server.
	PantryItem struct {
		ID              string `json:"id"`
		Name            string `json:"name"`
		Quantity        string `json:"quantity"`
		Unit            string `json:"unit"`
		ExpirationDate  string `json:"expiration_date,omitempty"`
		Status          string `json:"status"`
		DaysUntilExpiry *int   `json:"days_until_expiry,omitempty"`
		Selected        bool   `json:"selected"`
	}

	PantryOverview struct {
		Items     []PantryItem `json:"items"`
		Degraded  bool         `json:"degraded"`
		UpdatedAt time.Time    `json:"updated_at"`
	}

	PantryOverviewResponse struct {
		SessionID string       `json:"session_id"`
		Items     []PantryItem `json:"items"`
		Degraded  bool         `json:"degraded"`
		UpdatedAt time.Time    `json:"updated_at"`
	}

	NewPantryItem struct {
		Name           string  `json:"name" validate:"required"`
		Quantity       float64 `json:"quantity" validate:"required,gt=0"`
		Unit           string  `json:"unit"`
		ExpirationDate string  `json:"expiration_date" validate:"omitempty,datetime=2006-01-02"`
	}

	AddItemsRequest struct {
		Items []NewPantryItem `json:"items" validate:"required,min=1,dive"`
	}

	AddItemsResponse struct {
		Added int          `json:"added"`
		Items []PantryItem `json:"items"`
	}

	UpdateItemRequest struct {
		Name           string  `json:"name" validate:"omitempty"`
		Quantity       float64 `json:"quantity" validate:"omitempty,gt=0"`
		Unit           string  `json:"unit" validate:"omitempty"`
		ExpirationDate string  `json:"expiration_date" validate:"omitempty,datetime=2006-01-02"`
	}

	ToggleItemRequest struct {
		ItemID   string `json:"item_id" validate:"required"`
		Selected bool   `json:"selected"`
	}
)
