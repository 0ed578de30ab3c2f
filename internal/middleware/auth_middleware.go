package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/eventhub/eventhub-backend/internal/models"
	jwtPkg "github.com/eventhub/eventhub-backend/pkg/jwt"
)

// AuthMiddleware resolves the bearer token into a user identity. It
// short-circuits with 401 before the handler runs, so protected
// operations never execute for unauthenticated requests.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Authorization header is required"))
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid authorization header format"))
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := jwtPkg.ValidateToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid token"))
		}

		userIDFloat, ok := claims["user_id"].(float64)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid token"))
		}
		c.Locals("userID", uint(userIDFloat))

		if userEmail, ok := claims["email"].(string); ok {
			c.Locals("userEmail", userEmail)
		}

		return c.Next()
	}
}
