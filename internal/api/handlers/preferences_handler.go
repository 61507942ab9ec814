package handlers

import (
	"recipe-app/domain"
	"recipe-app/internal/api/presenters"
	"recipe-app/pkg/preferences"

	"github.com/gofiber/fiber/v2"
)

type (
	PreferencesHandler interface {
		GetSettings(c *fiber.Ctx) error
		UpdateSettings(c *fiber.Ctx) error
		GetNotes(c *fiber.Ctx) error
		SaveNotes(c *fiber.Ctx) error
	}

	preferencesHandler struct {
		preferencesService preferences.PreferencesService
	}
)

func NewPreferencesHandler(preferencesService preferences.PreferencesService) PreferencesHandler {
	return &preferencesHandler{preferencesService: preferencesService}
}

func (h *preferencesHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.preferencesService.GetSettings(c.Context(), c.Params("device_id"))
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetSettings, err)
	}

	return presenters.SuccessResponse(c, settings, fiber.StatusOK, domain.MessageSuccessGetSettings)
}

func (h *preferencesHandler) UpdateSettings(c *fiber.Ctx) error {
	req := map[string]bool{}

	if err := c.BodyParser(&req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	settings, err := h.preferencesService.UpdateSettings(c.Context(), c.Params("device_id"), req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedUpdateSettings, err)
	}

	return presenters.SuccessResponse(c, settings, fiber.StatusOK, domain.MessageSuccessUpdateSettings)
}

func (h *preferencesHandler) GetNotes(c *fiber.Ctx) error {
	notes, err := h.preferencesService.GetNotes(c.Context(), c.Params("device_id"))
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetNotes, err)
	}

	return presenters.SuccessResponse(c, notes, fiber.StatusOK, domain.MessageSuccessGetNotes)
}

func (h *preferencesHandler) SaveNotes(c *fiber.Ctx) error {
	req := new(domain.NotesRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.preferencesService.SaveNotes(c.Context(), c.Params("device_id"), *req); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedSaveNotes, err)
	}

	return presenters.SuccessResponse(c, domain.NotesResponse{Notes: req.Notes}, fiber.StatusOK, domain.MessageSuccessSaveNotes)
}
