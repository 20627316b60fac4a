package handlers

import (
	"Kitchen-Gateway/domain"
	"Kitchen-Gateway/internal/api/presenters"
	"Kitchen-Gateway/pkg/cooking"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CookingHandler interface {
		FinishCooking(c *fiber.Ctx) error
	}

	cookingHandler struct {
		cookingService cooking.CookingService
		validator      *validator.Validate
	}
)

func NewCookingHandler(cookingService cooking.CookingService, validator *validator.Validate) CookingHandler {
	return &cookingHandler{
		cookingService: cookingService,
		validator:      validator,
	}
}

func (h *cookingHandler) FinishCooking(c *fiber.Ctx) error {
	req := new(domain.FinishCookingRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedFinishCooking, err)
	}

	res := h.cookingService.Finish(c.Context(), *req)

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessFinishCooking)
}
