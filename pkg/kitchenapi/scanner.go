package kitchenapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

type (
	ScannedItem struct {
		Name           string     `json:"name"`
		Quantity       LooseValue `json:"quantity"`
		Unit           string     `json:"unit"`
		ExpirationDate string     `json:"expiration_date,omitempty"`
	}

	scanResponse struct {
		Success bool          `json:"success"`
		Items   []ScannedItem `json:"items"`
	}

	ScannerAPI interface {
		ScanReceipt(ctx context.Context, filename string, image io.Reader) ([]ScannedItem, error)
	}
)

// ScanReceipt forwards a receipt image to the scanner collaborator as a
// multipart upload and returns the recognized line items. The scanner owns
// all OCR concerns; the gateway keeps neither the image nor the result.
func (c *Client) ScanReceipt(ctx context.Context, filename string, image io.Reader) ([]ScannedItem, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return nil, err
	}
	if _, err = io.Copy(part, image); err != nil {
		return nil, err
	}
	if err = writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.ScannerURL, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.authorize(req)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, &APIError{Status: resp.StatusCode, Body: string(bodyBytes)}
	}

	var scan scanResponse
	if err := json.NewDecoder(resp.Body).Decode(&scan); err != nil {
		return nil, err
	}
	if !scan.Success {
		return nil, fmt.Errorf("scanner could not extract items from receipt")
	}
	return scan.Items, nil
}
