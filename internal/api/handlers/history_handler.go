package handlers

import (
	"recipe-app/domain"
	"recipe-app/internal/api/presenters"
	"recipe-app/pkg/history"
	"recipe-app/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	HistoryHandler interface {
		AddToHistory(c *fiber.Ctx) error
		GetHistory(c *fiber.Ctx) error
		ClearHistory(c *fiber.Ctx) error

		AddToDeviceHistory(c *fiber.Ctx) error
		GetDeviceHistory(c *fiber.Ctx) error
		ClearDeviceHistory(c *fiber.Ctx) error
	}

	historyHandler struct {
		historyService history.HistoryService
		localLog       history.LocalLog
		recipeService  recipe.RecipeService
		validator      *validator.Validate
	}
)

func NewHistoryHandler(historyService history.HistoryService, localLog history.LocalLog, recipeService recipe.RecipeService, validator *validator.Validate) HistoryHandler {
	return &historyHandler{
		historyService: historyService,
		localLog:       localLog,
		recipeService:  recipeService,
		validator:      validator,
	}
}

func (h *historyHandler) AddToHistory(c *fiber.Ctx) error {
	userID := sessionUserID(c)
	req := new(domain.HistoryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddHistory, err)
	}

	if err := h.historyService.AddToHistory(c.Context(), *req, userID); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedAddHistory, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessAddHistory)
}

func (h *historyHandler) GetHistory(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)

	res, err := h.historyService.GetHistory(c.Context(), sessionUserID(c), limit)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetHistory, err)
	}

	return presenters.SuccessResponse(c, recipeListResponse(res), fiber.StatusOK, domain.MessageSuccessGetHistory)
}

func (h *historyHandler) ClearHistory(c *fiber.Ctx) error {
	if err := h.historyService.ClearHistory(c.Context(), sessionUserID(c)); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedClearHistory, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessClearHistory)
}

// AddToDeviceHistory records a recipe view in the device's local log. The
// recipe is resolved first so the log keeps a full copy.
func (h *historyHandler) AddToDeviceHistory(c *fiber.Ctx) error {
	deviceID := c.Params("device_id")
	req := new(domain.HistoryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddHistory, err)
	}

	found, err := h.recipeService.FindRecipe(c.Context(), req.RecipeID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedAddHistory, err)
	}

	if err := h.localLog.AddToHistory(c.Context(), deviceID, found); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedAddHistory, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessAddHistory)
}

func (h *historyHandler) GetDeviceHistory(c *fiber.Ctx) error {
	recipes, err := h.localLog.GetHistory(c.Context(), c.Params("device_id"))
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetHistory, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"recipes": domain.NewRecipeResponses(recipes),
		"total":   len(recipes),
	}, fiber.StatusOK, domain.MessageSuccessGetHistory)
}

func (h *historyHandler) ClearDeviceHistory(c *fiber.Ctx) error {
	if err := h.localLog.ClearHistory(c.Context(), c.Params("device_id")); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedClearHistory, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessClearHistory)
}
