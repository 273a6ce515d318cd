package handlers

import (
	"github.com/gofiber/fiber/v3"
	"github.com/resicare/resicare-api/internal/services"
)

type FormHandler struct {
	formService *services.FormService
}

func NewFormHandler(formService *services.FormService) *FormHandler {
	return &FormHandler{formService: formService}
}

// Process runs a generic demo form (contact, claim, newsletter) through the
// simulated backend. Failures are retryable and commit nothing.
func (h *FormHandler) Process(c fiber.Ctx) error {
	formType := c.Params("type")
	if !services.KnownType(formType) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "Not Found",
			"message": "Unknown form type",
		})
	}

	var data map[string]string
	if err := c.Bind().JSON(&data); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Bad Request",
			"message": "Invalid request body",
		})
	}

	result, err := h.formService.Process(formType, data, requestLanguage(c))
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":   "Processing Failed",
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"result": result,
	})
}
