package handlers

import (
	"Kitchen-Gateway/domain"
	"Kitchen-Gateway/internal/api/presenters"
	"Kitchen-Gateway/pkg/shopping"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ShoppingHandler interface {
		GetShoppingList(c *fiber.Ctx) error
		AddShoppingItem(c *fiber.Ctx) error
		CheckShoppingItem(c *fiber.Ctx) error
		RemoveShoppingItem(c *fiber.Ctx) error
		GetRecommendations(c *fiber.Ctx) error
	}

	shoppingHandler struct {
		shoppingService shopping.ShoppingService
		validator       *validator.Validate
	}
)

func NewShoppingHandler(shoppingService shopping.ShoppingService, validator *validator.Validate) ShoppingHandler {
	return &shoppingHandler{
		shoppingService: shoppingService,
		validator:       validator,
	}
}

func (h *shoppingHandler) GetShoppingList(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, fiber.Map{
		"items": h.shoppingService.List(),
	}, fiber.StatusOK, domain.MessageSuccessGetShoppingList)
}

func (h *shoppingHandler) AddShoppingItem(c *fiber.Ctx) error {
	req := new(domain.AddShoppingItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddShoppingItem, err)
	}

	item, err := h.shoppingService.Add(*req)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrDuplicateShoppingItem) {
			status = fiber.StatusConflict
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedAddShoppingItem, err)
	}

	return presenters.SuccessResponse(c, item, fiber.StatusCreated, domain.MessageSuccessAddShoppingItem)
}

func (h *shoppingHandler) CheckShoppingItem(c *fiber.Ctx) error {
	itemID := c.Params("id")
	req := new(domain.CheckShoppingItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	item, err := h.shoppingService.SetChecked(itemID, req.Checked)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateShoppingItem, err)
	}

	return presenters.SuccessResponse(c, item, fiber.StatusOK, domain.MessageSuccessUpdateShoppingItem)
}

func (h *shoppingHandler) RemoveShoppingItem(c *fiber.Ctx) error {
	itemID := c.Params("id")

	if err := h.shoppingService.Remove(itemID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedRemoveShoppingItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveShoppingItem)
}

func (h *shoppingHandler) GetRecommendations(c *fiber.Ctx) error {
	recommendations, err := h.shoppingService.Recommendations(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedGetRecommendations, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"recommendations": recommendations,
	}, fiber.StatusOK, domain.MessageSuccessGetRecommendations)
}
