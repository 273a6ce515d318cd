package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/resicare/resicare-api/internal/services"
)

const (
	// ContextKeyUserID is the key for the demo user id in context
	ContextKeyUserID = "user_id"
	// ContextKeyUserEmail is the key for the demo user email in context
	ContextKeyUserEmail = "user_email"
	// ContextKeyUserName is the key for the demo user display name in context
	ContextKeyUserName = "user_name"
)

// AuthMiddleware creates a middleware that validates demo session tokens
func AuthMiddleware(jwtService *services.JWTService) fiber.Handler {
	return func(c fiber.Ctx) error {
		// Try to get token from Authorization header first
		authHeader := c.Get("Authorization")
		var token string

		if strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimPrefix(authHeader, "Bearer ")
		}

		// If no token in header, try to get from cookie
		if token == "" {
			token = c.Cookies("token")
		}

		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":   "Unauthorized",
				"message": "Authentication required",
			})
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":   "Unauthorized",
				"message": "Invalid or expired token",
			})
		}

		c.Locals(ContextKeyUserID, claims.UserID)
		c.Locals(ContextKeyUserEmail, claims.Email)
		c.Locals(ContextKeyUserName, claims.Name)

		return c.Next()
	}
}

// GetUserID gets the demo user id from context
func GetUserID(c fiber.Ctx) int64 {
	if id, ok := c.Locals(ContextKeyUserID).(int64); ok {
		return id
	}
	return 0
}

// GetUserEmail gets the demo user email from context
func GetUserEmail(c fiber.Ctx) string {
	if email, ok := c.Locals(ContextKeyUserEmail).(string); ok {
		return email
	}
	return ""
}

// GetUserName gets the demo user display name from context
func GetUserName(c fiber.Ctx) string {
	if name, ok := c.Locals(ContextKeyUserName).(string); ok {
		return name
	}
	return ""
}
