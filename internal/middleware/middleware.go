package middleware

import (
	"errors"
	"recipe-app/domain"
	"recipe-app/internal/api/presenters"
	"recipe-app/internal/utils/kvstore"
	"recipe-app/pkg/jwt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
		OptionalAuthMiddleware(jwtService jwt.JWTService) fiber.Handler
	}

	middleware struct {
		store kvstore.Store
	}
)

func NewMiddleware(store kvstore.Store) Middleware {
	return &middleware{store: store}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	})
}

// AuthMiddleware rejects requests without a valid, unrevoked bearer token and
// stores the token's user in c.Locals("user_id").
func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrTokenNotFound)
		}

		userID, err := m.authenticate(c, jwtService, token)
		if err != nil {
			if errors.Is(err, domain.ErrRemoteFailure) {
				return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedProcessRequest, err)
			}
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
		}

		c.Locals("user_id", userID)
		c.Locals("token", token)
		return c.Next()
	}
}

// OptionalAuthMiddleware sets c.Locals("user_id") to the session user, or to
// "" when the request carries no usable token.
func (m *middleware) OptionalAuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user_id", "")

		token := bearerToken(c)
		if token == "" {
			return c.Next()
		}
		if userID, err := m.authenticate(c, jwtService, token); err == nil {
			c.Locals("user_id", userID)
			c.Locals("token", token)
		}
		return c.Next()
	}
}

func (m *middleware) authenticate(c *fiber.Ctx, jwtService jwt.JWTService, token string) (string, error) {
	session, err := jwtService.GetSessionByToken(token)
	if err != nil {
		return "", err
	}

	_, err = m.store.Get(c.UserContext(), jwt.RevocationKey(session.TokenID))
	if err == nil {
		return "", domain.ErrTokenRevoked
	}
	if !errors.Is(err, kvstore.ErrKeyNotFound) {
		return "", domain.Remote(err)
	}
	return session.UserID, nil
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}
