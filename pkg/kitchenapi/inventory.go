package kitchenapi

import (
	"context"
	"net/http"
)

type (
	// InventoryItem is the raw record shape served by GET /inventory/.
	// ID and quantity are loose because the upstream serializer emits
	// them inconsistently as strings or numbers.
	InventoryItem struct {
		ID             LooseValue `json:"id"`
		Name           string     `json:"name"`
		Quantity       LooseValue `json:"quantity"`
		Unit           string     `json:"unit"`
		ExpirationDate string     `json:"expiration_date,omitempty"`
	}

	NewInventoryItem struct {
		Name           string  `json:"name"`
		Quantity       float64 `json:"quantity"`
		Unit           string  `json:"unit"`
		ExpirationDate string  `json:"expiration_date"`
	}

	InventoryItemUpdate struct {
		Name           string  `json:"name"`
		Quantity       float64 `json:"quantity"`
		Unit           string  `json:"unit"`
		ExpirationDate string  `json:"expiration_date,omitempty"`
	}

	InventoryAPI interface {
		FetchAll(ctx context.Context) ([]InventoryItem, error)
		Create(ctx context.Context, items []NewInventoryItem) ([]InventoryItem, error)
		Update(ctx context.Context, id string, item InventoryItemUpdate) error
		Delete(ctx context.Context, id string) error
	}
)

func (c *Client) FetchAll(ctx context.Context) ([]InventoryItem, error) {
	var items []InventoryItem
	if err := c.do(ctx, http.MethodGet, "/inventory/", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) Create(ctx context.Context, items []NewInventoryItem) ([]InventoryItem, error) {
	var created []InventoryItem
	if err := c.do(ctx, http.MethodPost, "/inventory/", items, &created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *Client) Update(ctx context.Context, id string, item InventoryItemUpdate) error {
	return c.do(ctx, http.MethodPut, "/inventory/"+id+"/", item, nil)
}

func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/inventory/"+id+"/", nil, nil)
}
