package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"school_backend/internals/configs"
	authService "school_backend/internals/features/users/auth/service"
)

// Locals keys set by AuthMiddleware.
const (
	LocalsUsername = "username"
	LocalsRole     = "role"
)

// AuthMiddleware verifies the bearer token through the auth service
// and stores username/role claims in locals for downstream handlers.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		if configs.JWTSecret == "" {
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT secret")
		}

		username, role, err := authService.ParseAccessToken(tokenString)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - invalid or expired token")
		}

		c.Locals(LocalsUsername, username)
		c.Locals(LocalsRole, role)
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Missing Authorization header")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Invalid Authorization header")
	}
	return parts[1], nil
}
