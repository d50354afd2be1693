package middleware

import (
	"strings"

	"go-repair-pos/internal/repository"
	"go-repair-pos/pkg/jwt"
	"go-repair-pos/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth validates the bearer token and sets operator info in context
func RequireAuth(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return response.Fail(c, 401, "Missing authorization token")
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return response.Fail(c, 401, "Invalid authorization format. Use: Bearer <token>")
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return response.Fail(c, 401, "Invalid or expired token")
		}

		// Check strict session against DB
		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			return response.Fail(c, 401, "User not found")
		}
		if user.TokenVersion != claims.TokenVersion {
			return response.Fail(c, 401, "Session expired (logged in on another device)")
		}

		c.Locals("user_id", claims.UserID.String())
		c.Locals("user_email", claims.Email)
		c.Locals("user_name", claims.Name)

		return c.Next()
	}
}
