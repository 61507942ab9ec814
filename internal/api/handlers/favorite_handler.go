package handlers

import (
	"recipe-app/domain"
	"recipe-app/internal/api/presenters"
	"recipe-app/pkg/favorite"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FavoriteHandler interface {
		AddFavorite(c *fiber.Ctx) error
		RemoveFavorite(c *fiber.Ctx) error
		CheckFavorite(c *fiber.Ctx) error
		GetFavorites(c *fiber.Ctx) error
	}

	favoriteHandler struct {
		favoriteService favorite.FavoriteService
		validator       *validator.Validate
	}
)

func NewFavoriteHandler(favoriteService favorite.FavoriteService, validator *validator.Validate) FavoriteHandler {
	return &favoriteHandler{
		favoriteService: favoriteService,
		validator:       validator,
	}
}

func (h *favoriteHandler) AddFavorite(c *fiber.Ctx) error {
	userID := sessionUserID(c)
	req := new(domain.FavoriteRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFavorite, err)
	}

	if err := h.favoriteService.AddFavorite(c.Context(), *req, userID); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedAddFavorite, err)
	}

	return presenters.SuccessResponse(c, domain.FavoriteStatusResponse{RecipeID: req.RecipeID, IsFavorite: true}, fiber.StatusOK, domain.MessageSuccessAddFavorite)
}

func (h *favoriteHandler) RemoveFavorite(c *fiber.Ctx) error {
	recipeID := c.Params("recipe_id")

	if err := h.favoriteService.RemoveFavorite(c.Context(), recipeID, sessionUserID(c)); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedRemoveFavorite, err)
	}

	return presenters.SuccessResponse(c, domain.FavoriteStatusResponse{RecipeID: recipeID, IsFavorite: false}, fiber.StatusOK, domain.MessageSuccessRemoveFavorite)
}

func (h *favoriteHandler) CheckFavorite(c *fiber.Ctx) error {
	recipeID := c.Params("recipe_id")

	isFavorite, err := h.favoriteService.IsFavorite(c.Context(), recipeID, sessionUserID(c))
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedCheckFavorite, err)
	}

	return presenters.SuccessResponse(c, domain.FavoriteStatusResponse{RecipeID: recipeID, IsFavorite: isFavorite}, fiber.StatusOK, domain.MessageSuccessCheckFavorite)
}

func (h *favoriteHandler) GetFavorites(c *fiber.Ctx) error {
	res, err := h.favoriteService.GetFavorites(c.Context(), sessionUserID(c))
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetFavorites, err)
	}

	return presenters.SuccessResponse(c, recipeListResponse(res), fiber.StatusOK, domain.MessageSuccessGetFavorites)
}

func recipeListResponse(res domain.RecipeListResult) fiber.Map {
	return fiber.Map{
		"recipes":    domain.NewRecipeResponses(res.Recipes),
		"unresolved": res.Unresolved,
		"total":      res.Total,
	}
}
