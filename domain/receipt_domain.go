package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessScanReceipt = "receipt scanned successfully"

	MessageFailedScanReceipt = "failed to scan receipt"

	ErrScannerUnavailable = errors.New("receipt scanner service unavailable")
	ErrNoItemsRecognized  = errors.New("no items recognized on receipt")
)

type (
	ScanReceiptRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	// ScannedCandidate is a recognized line item awaiting user confirmation.
	// Candidates only enter the pantry through AddItems after confirmation.
	ScannedCandidate struct {
		Name           string  `json:"name"`
		Quantity       float64 `json:"quantity"`
		Unit           string  `json:"unit"`
		ExpirationDate string  `json:"expiration_date,omitempty"`
	}

	ScanReceiptResponse struct {
		Items []ScannedCandidate `json:"items"`
	}
)
