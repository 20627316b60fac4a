package receipt

import (
	"Kitchen-Gateway/domain"
	"Kitchen-Gateway/pkg/kitchenapi"
	"context"
	"errors"
	"io"
	"log"
)

type (
	ReceiptService interface {
		Scan(ctx context.Context, filename string, image io.Reader) (domain.ScanReceiptResponse, error)
	}

	receiptService struct {
		api kitchenapi.ScannerAPI
	}
)

func NewReceiptService(api kitchenapi.ScannerAPI) ReceiptService {
	return &receiptService{api: api}
}

// Scan forwards the receipt image to the scanner and returns the recognized
// candidates. Candidates carry no expiration date unless the scanner found
// one; the user confirms or edits them before they become pantry items.
func (s *receiptService) Scan(ctx context.Context, filename string, image io.Reader) (domain.ScanReceiptResponse, error) {
	scanned, err := s.api.ScanReceipt(ctx, filename, image)
	if err != nil {
		log.Printf("receipt: scan failed: %v", err)
		var apiErr *kitchenapi.APIError
		if errors.As(err, &apiErr) {
			return domain.ScanReceiptResponse{}, domain.ErrScannerUnavailable
		}
		return domain.ScanReceiptResponse{}, err
	}

	if len(scanned) == 0 {
		return domain.ScanReceiptResponse{}, domain.ErrNoItemsRecognized
	}

	candidates := make([]domain.ScannedCandidate, 0, len(scanned))
	for _, item := range scanned {
		candidates = append(candidates, domain.ScannedCandidate{
			Name:           item.Name,
			Quantity:       item.Quantity.Float(),
			Unit:           item.Unit,
			ExpirationDate: item.ExpirationDate,
		})
	}

	return domain.ScanReceiptResponse{Items: candidates}, nil
}
