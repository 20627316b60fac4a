package handlers

import (
	"Kitchen-Gateway/domain"
	"Kitchen-Gateway/internal/api/presenters"
	"Kitchen-Gateway/pkg/preference"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PreferenceHandler interface {
		GetPreferences(c *fiber.Ctx) error
		SavePreferences(c *fiber.Ctx) error
	}

	preferenceHandler struct {
		preferenceService preference.PreferenceService
		validator         *validator.Validate
	}
)

func NewPreferenceHandler(preferenceService preference.PreferenceService, validator *validator.Validate) PreferenceHandler {
	return &preferenceHandler{
		preferenceService: preferenceService,
		validator:         validator,
	}
}

func (h *preferenceHandler) GetPreferences(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.preferenceService.Get(), fiber.StatusOK, domain.MessageSuccessGetPreferences)
}

func (h *preferenceHandler) SavePreferences(c *fiber.Ctx) error {
	req := new(domain.Preferences)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSavePreferences, err)
	}

	saved := h.preferenceService.Save(*req)

	return presenters.SuccessResponse(c, saved, fiber.StatusOK, domain.MessageSuccessSavePreferences)
}
