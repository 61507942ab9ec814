package handlers

import (
	"errors"
	"recipe-app/domain"

	"github.com/gofiber/fiber/v2"
)

// errorStatus maps service errors onto HTTP status codes. Anything it does
// not recognise is treated as a bad request.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrTokenNotFound),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenRevoked):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrShoppingItemNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrRemoteFailure):
		return fiber.StatusBadGateway
	case errors.Is(err, domain.ErrHashPasswordFailed):
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusBadRequest
	}
}

func sessionUserID(c *fiber.Ctx) string {
	userID, _ := c.Locals("user_id").(string)
	return userID
}
