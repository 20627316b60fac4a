package handlers

import (
	"Kitchen-Gateway/domain"
	"Kitchen-Gateway/internal/api/presenters"
	"Kitchen-Gateway/pkg/summary"

	"github.com/gofiber/fiber/v2"
)

type (
	SummaryHandler interface {
		GetSummary(c *fiber.Ctx) error
	}

	summaryHandler struct {
		summaryService summary.SummaryService
	}
)

func NewSummaryHandler(summaryService summary.SummaryService) SummaryHandler {
	return &summaryHandler{summaryService: summaryService}
}

func (h *summaryHandler) GetSummary(c *fiber.Ctx) error {
	res, err := h.summaryService.Summary(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedGetSummary, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSummary)
}
