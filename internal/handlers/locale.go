package handlers

import (
	"github.com/gofiber/fiber/v3"
	"github.com/resicare/resicare-api/internal/i18n"
)

// requestLanguage resolves the response language: explicit ?lang= wins,
// then Accept-Language, then the default.
func requestLanguage(c fiber.Ctx) string {
	if lang := c.Query("lang"); lang != "" {
		return i18n.Normalize(lang)
	}
	return i18n.Normalize(c.Get("Accept-Language"))
}
