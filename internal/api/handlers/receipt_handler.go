package handlers

import (
	"Kitchen-Gateway/domain"
	"Kitchen-Gateway/internal/api/presenters"
	"Kitchen-Gateway/pkg/receipt"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ReceiptHandler interface {
		ScanReceipt(c *fiber.Ctx) error
	}

	receiptHandler struct {
		receiptService receipt.ReceiptService
		validator      *validator.Validate
	}
)

func NewReceiptHandler(receiptService receipt.ReceiptService, validator *validator.Validate) ReceiptHandler {
	return &receiptHandler{
		receiptService: receiptService,
		validator:      validator,
	}
}

func (h *receiptHandler) ScanReceipt(c *fiber.Ctx) error {
	req := new(domain.ScanReceiptRequest)

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedScanReceipt, err)
	}

	image, err := file.Open()
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedScanReceipt, err)
	}
	defer image.Close()

	res, err := h.receiptService.Scan(c.Context(), file.Filename, image)
	if err != nil {
		status := fiber.StatusBadGateway
		if errors.Is(err, domain.ErrNoItemsRecognized) {
			status = fiber.StatusUnprocessableEntity
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedScanReceipt, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessScanReceipt)
}
