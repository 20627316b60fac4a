package handlers

import (
	"Kitchen-Gateway/domain"
	"Kitchen-Gateway/internal/api/presenters"
	"Kitchen-Gateway/internal/session"
	"Kitchen-Gateway/pkg/preference"
	"Kitchen-Gateway/pkg/recipe"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		SuggestRecipes(c *fiber.Ctx) error
		GetRecipe(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService     recipe.RecipeService
		preferenceService preference.PreferenceService
		sessions          *session.Store
		validator         *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, preferenceService preference.PreferenceService, sessions *session.Store, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService:     recipeService,
		preferenceService: preferenceService,
		sessions:          sessions,
		validator:         validator,
	}
}

func (h *recipeHandler) SuggestRecipes(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c.Get(HeaderSessionID))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedSessionInvalid, err)
	}

	req := new(domain.SuggestionPreferences)
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
		}
		if err := h.validator.Struct(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSuggestRecipes, err)
		}
	}

	prefs := h.mergePreferences(*req)

	recipes, err := h.recipeService.Suggest(c.Context(), sess.Selected(), prefs)
	if err != nil {
		status := fiber.StatusBadGateway
		if errors.Is(err, domain.ErrEmptySelection) {
			status = fiber.StatusBadRequest
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedSuggestRecipes, err)
	}

	sess.SetRecipes(recipes)

	return presenters.SuccessResponse(c, domain.SuggestRecipesResponse{
		Recipes: recipes,
	}, fiber.StatusOK, domain.MessageSuccessSuggestRecipes)
}

func (h *recipeHandler) GetRecipe(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c.Get(HeaderSessionID))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedSessionInvalid, err)
	}

	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipe, err)
	}

	rec, err := sess.Recipe(index)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRecipe, err)
	}

	return presenters.SuccessResponse(c, rec, fiber.StatusOK, domain.MessageSuccessGetRecipe)
}

// mergePreferences fills request gaps from the stored preferences; the
// request always wins where it says something.
func (h *recipeHandler) mergePreferences(req domain.SuggestionPreferences) domain.SuggestionPreferences {
	stored := h.preferenceService.Suggestion()
	if req.Cuisine == "" {
		req.Cuisine = stored.Cuisine
	}
	if req.SpicyLevel == "" {
		req.SpicyLevel = stored.SpicyLevel
	}
	if req.CookingTime == "" {
		req.CookingTime = stored.CookingTime
	}
	return req
}
