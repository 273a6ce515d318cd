package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const (
	// SessionCookieName identifies the visitor; the key-value store and the
	// subscription list are scoped by it.
	SessionCookieName = "resicare_session"
	// ContextKeySessionID is the key for the session id in context
	ContextKeySessionID = "session_id"

	sessionCookieMaxAge = 365 * 24 * time.Hour
)

// SessionMiddleware issues a session cookie to first-time visitors and puts
// the session id in context for every request.
func SessionMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		sessionID := c.Cookies(SessionCookieName)
		if sessionID == "" || uuid.Validate(sessionID) != nil {
			sessionID = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     SessionCookieName,
				Value:    sessionID,
				Path:     "/",
				Expires:  time.Now().Add(sessionCookieMaxAge),
				HTTPOnly: true,
				SameSite: "Lax",
			})
		}

		c.Locals(ContextKeySessionID, sessionID)
		return c.Next()
	}
}

// GetSessionID gets the visitor session id from context
func GetSessionID(c fiber.Ctx) string {
	if id, ok := c.Locals(ContextKeySessionID).(string); ok {
		return id
	}
	return ""
}
