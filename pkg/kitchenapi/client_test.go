package kitchenapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := NewClient(server.URL, server.URL+"/receipts/scan_receipt/", "secret-token")
	return client
}

func TestFetchAllLooseDecoding(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/inventory/" || r.Method != http.MethodGet {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Token secret-token" {
			t.Errorf("Authorization = %q, want Token secret-token", got)
		}
		// Mixed string/number ids and quantities, as the upstream
		// serializer actually emits them.
		w.Write([]byte(`[
			{"id": 1, "name": "Tomato", "quantity": 5, "unit": "pc", "expiration_date": "2025-04-12"},
			{"id": "abc", "name": "Quinoa", "quantity": "200", "unit": "g"},
			{"id": 3, "name": "Salmon fillets", "quantity": "2 x 150", "unit": "g", "expiration_date": null}
		]`))
	})

	items, err := client.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll() error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("FetchAll() returned %d items, want 3", len(items))
	}
	if items[0].ID.String() != "1" || items[0].Quantity.Float() != 5 {
		t.Errorf("item[0] = %+v", items[0])
	}
	if items[1].ID.String() != "abc" || items[1].Quantity.Float() != 200 {
		t.Errorf("item[1] = %+v", items[1])
	}
	if items[2].Quantity.Float() != 2 {
		t.Errorf("item[2] quantity = %v, want leading-prefix parse 2", items[2].Quantity.Float())
	}
}

func TestCreateSendsItemList(t *testing.T) {
	var received []NewInventoryItem
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/inventory/" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`[{"id": 9, "name": "Milk", "quantity": 1, "unit": "liter"}]`))
	})

	created, err := client.Create(context.Background(), []NewInventoryItem{
		{Name: "Milk", Quantity: 1, Unit: "liter", ExpirationDate: "2025-04-17"},
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if len(received) != 1 || received[0].Name != "Milk" {
		t.Errorf("server received %+v", received)
	}
	if len(created) != 1 || created[0].ID.String() != "9" {
		t.Errorf("Create() = %+v", created)
	}
}

func TestUpdateAndDeletePaths(t *testing.T) {
	var gotMethod, gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.Write([]byte(`{}`))
	})

	if err := client.Update(context.Background(), "42", InventoryItemUpdate{Name: "Tomato", Quantity: 2, Unit: "pc"}); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if gotMethod != http.MethodPut || gotPath != "/inventory/42/" {
		t.Errorf("Update() issued %s %s", gotMethod, gotPath)
	}

	if err := client.Delete(context.Background(), "42"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/inventory/42/" {
		t.Errorf("Delete() issued %s %s", gotMethod, gotPath)
	}
}

func TestNon2xxSurfacesAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.FetchAll(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("FetchAll() error = %v, want *APIError", err)
	}
	if apiErr.Status != http.StatusInternalServerError {
		t.Errorf("APIError.Status = %d", apiErr.Status)
	}
}

func TestSuggestRecipes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/recipe/suggest/" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req SuggestionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Cuisine != "italian" || len(req.Ingredients) != 1 {
			t.Errorf("request = %+v", req)
		}
		w.Write([]byte(`{"recipes": [
			{"recipe": "Zucchini Pasta", "overview": "Light dinner",
			 "ingredients": [{"name": "Zucchini", "quantity": 2, "unit": "pc"}],
			 "instructions": "1. Slice. 2. Cook.",
			 "cooking_time": 25, "spicy_level": "low", "cuisine": "italian"}
		]}`))
	})

	recipes, err := client.SuggestRecipes(context.Background(), SuggestionRequest{
		Ingredients: []SuggestionIngredient{{Name: "Zucchini", Quantity: 2, Unit: "pc"}},
		Cuisine:     "italian",
		SpicyLevel:  "low",
		CookingTime: "30",
	})
	if err != nil {
		t.Fatalf("SuggestRecipes() error: %v", err)
	}
	if len(recipes) != 1 || recipes[0].Name != "Zucchini Pasta" {
		t.Fatalf("SuggestRecipes() = %+v", recipes)
	}
	if recipes[0].CookingTime.String() != "25" {
		t.Errorf("cooking time = %q", recipes[0].CookingTime.String())
	}
}

func TestScanReceipt(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/receipts/scan_receipt/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			t.Errorf("Content-Type = %q", r.Header.Get("Content-Type"))
		}
		w.Write([]byte(`{"success": true, "items": [
			{"name": "Eggs", "quantity": 12, "unit": "pc"},
			{"name": "Milk", "quantity": "1", "unit": "liter", "expiration_date": "2025-04-18"}
		]}`))
	})

	items, err := client.ScanReceipt(context.Background(), "receipt.jpg", strings.NewReader("imagedata"))
	if err != nil {
		t.Fatalf("ScanReceipt() error: %v", err)
	}
	if len(items) != 2 || items[0].Name != "Eggs" || items[1].ExpirationDate != "2025-04-18" {
		t.Fatalf("ScanReceipt() = %+v", items)
	}
}

func TestScanReceiptUnsuccessful(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "items": []}`))
	})

	if _, err := client.ScanReceipt(context.Background(), "receipt.jpg", strings.NewReader("x")); err == nil {
		t.Fatal("ScanReceipt() expected error for unsuccessful scan")
	}
}

func TestLooseValueFloat(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"5", 5},
		{"2.5", 2.5},
		{"200 g", 200},
		{"2 x 150", 2},
		{"  3 ", 3},
		{"-1", -1},
		{"", 0},
		{"plenty", 0},
		{"x2", 0},
	}

	for _, tt := range tests {
		if got := LooseValue(tt.in).Float(); got != tt.want {
			t.Errorf("LooseValue(%q).Float() = %v, want %v", tt.in, got, tt.want)
		}
	}
}
