// Package kitchenapi is the HTTP client for the external kitchen API, the
// single source of truth for inventory, and for the recipe-suggestion and
// receipt-scanner collaborator services. No call retries; failures are
// returned to the caller as-is.
package kitchenapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

type Client struct {
	BaseURL    string
	ScannerURL string
	Token      string
	HTTPClient *http.Client
}

func NewClient(baseURL, scannerURL, token string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		ScannerURL: scannerURL,
		Token:      token,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("kitchen API error: status %d - %s", e.Status, e.Body)
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return &APIError{Status: resp.StatusCode, Body: string(bodyBytes)}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// authorize attaches the static token configured for this deployment.
// There is no refresh flow; the token is opaque to the gateway.
func (c *Client) authorize(req *http.Request) {
	if c.Token != "" {
		req.Header.Set("Authorization", "Token "+c.Token)
	}
}

// LooseValue tolerates the upstream API's loose typing: the same field may
// arrive as a JSON string or number. Unparsable input decodes to the empty
// string rather than failing the whole payload.
type LooseValue string

func (v *LooseValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*v = ""
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			*v = ""
			return nil
		}
		*v = LooseValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		*v = ""
		return nil
	}
	*v = LooseValue(n.String())
	return nil
}

func (v LooseValue) String() string { return string(v) }

// Float returns the leading numeric prefix of the value, or 0 when no
// prefix parses. Quantities like "2 x 150" therefore read as 2.
func (v LooseValue) Float() float64 {
	return ParseLooseFloat(string(v))
}

// ParseLooseFloat parses the leading float prefix of a free-form quantity
// string, defaulting to 0. It never fails; a malformed quantity must not
// abort a request that is otherwise fine.
func ParseLooseFloat(raw string) float64 {
	s := strings.TrimSpace(raw)
	end := 0
	for i, r := range s {
		if r >= '0' && r <= '9' || r == '.' || (i == 0 && (r == '-' || r == '+')) {
			end = i + 1
			continue
		}
		break
	}
	if end == 0 {
		return 0
	}
	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return f
}
