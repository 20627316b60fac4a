package handlers

import (
	"Kitchen-Gateway/domain"
	"Kitchen-Gateway/internal/api/presenters"
	"Kitchen-Gateway/internal/session"
	"Kitchen-Gateway/pkg/pantry"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// HeaderSessionID names the header carrying the client's session token.
// GetPantry mints a session when the header is absent; every other
// session-bound endpoint requires it.
const HeaderSessionID = "X-Session-ID"

type (
	PantryHandler interface {
		GetPantry(c *fiber.Ctx) error
		AddItems(c *fiber.Ctx) error
		UpdateItem(c *fiber.Ctx) error
		DeleteItem(c *fiber.Ctx) error
		ToggleItem(c *fiber.Ctx) error
		MarkUsed(c *fiber.Ctx) error
	}

	pantryHandler struct {
		pantryService pantry.PantryService
		sessions      *session.Store
		validator     *validator.Validate
	}
)

func NewPantryHandler(pantryService pantry.PantryService, sessions *session.Store, validator *validator.Validate) PantryHandler {
	return &pantryHandler{
		pantryService: pantryService,
		sessions:      sessions,
		validator:     validator,
	}
}

func (h *pantryHandler) GetPantry(c *fiber.Ctx) error {
	sess := h.sessions.Resolve(c.Get(HeaderSessionID))

	overview, err := h.pantryService.Overview(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedGetPantry, err)
	}

	items := sess.SetItems(overview.Items)

	return presenters.SuccessResponse(c, domain.PantryOverviewResponse{
		SessionID: sess.ID,
		Items:     items,
		Degraded:  overview.Degraded,
		UpdatedAt: overview.UpdatedAt,
	}, fiber.StatusOK, domain.MessageSuccessGetPantry)
}

func (h *pantryHandler) AddItems(c *fiber.Ctx) error {
	req := new(domain.AddItemsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddItems, err)
	}

	res, err := h.pantryService.AddItems(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddItems, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddItems)
}

func (h *pantryHandler) UpdateItem(c *fiber.Ctx) error {
	itemID := c.Params("id")
	req := new(domain.UpdateItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateItem, err)
	}

	if err := h.pantryService.UpdateItem(c.Context(), itemID, *req); err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrItemNotFound) {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedUpdateItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateItem)
}

func (h *pantryHandler) DeleteItem(c *fiber.Ctx) error {
	itemID := c.Params("id")

	if err := h.pantryService.DeleteItem(c.Context(), itemID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteItem)
}

func (h *pantryHandler) ToggleItem(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c.Get(HeaderSessionID))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedSessionInvalid, err)
	}

	req := new(domain.ToggleItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if !sess.Toggle(req.ItemID, req.Selected) {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedProcessRequest, domain.ErrItemNotFound)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"selected_count": len(sess.Selected()),
	}, fiber.StatusOK, domain.MessageSuccessToggleItem)
}

func (h *pantryHandler) MarkUsed(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c.Get(HeaderSessionID))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedSessionInvalid, err)
	}

	selected := sess.Selected()
	if len(selected) == 0 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMarkUsed, domain.ErrEmptySelection)
	}

	results := h.pantryService.MarkUsed(c.Context(), selected)

	return presenters.SuccessResponse(c, fiber.Map{
		"results": results,
	}, fiber.StatusOK, domain.MessageSuccessMarkUsed)
}
