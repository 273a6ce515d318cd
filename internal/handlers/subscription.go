package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/resicare/resicare-api/internal/middleware"
	"github.com/resicare/resicare-api/internal/services"
	"github.com/resicare/resicare-api/internal/subscription"
)

type SubscriptionHandler struct {
	service       *subscription.Service
	exportService *services.ExportService
}

func NewSubscriptionHandler(service *subscription.Service, exportService *services.ExportService) *SubscriptionHandler {
	return &SubscriptionHandler{
		service:       service,
		exportService: exportService,
	}
}

// Create runs a subscription attempt: validate, simulate the payment and
// persist on success. Validation failures come back as field errors, a
// failed simulated payment as a retryable message.
func (h *SubscriptionHandler) Create(c fiber.Ctx) error {
	var form subscription.FormData
	if err := c.Bind().JSON(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Bad Request",
			"message": "Invalid request body",
		})
	}

	lang := requestLanguage(c)
	sessionID := middleware.GetSessionID(c)

	result, err := h.service.Submit(context.Background(), sessionID, form, lang)
	if err != nil {
		var inFlight subscription.ErrSubmitInFlight
		if errors.As(err, &inFlight) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error":   "Conflict",
				"message": inFlight.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal Server Error",
			"message": "Failed to process subscription",
		})
	}

	if !result.Success {
		if len(result.Errors) > 0 {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(result)
		}
		// Simulated payment failure: retryable.
		return c.Status(fiber.StatusBadGateway).JSON(result)
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

// List returns the session's completed subscriptions.
func (h *SubscriptionHandler) List(c fiber.Ctx) error {
	sessionID := middleware.GetSessionID(c)

	subs, err := h.service.List(context.Background(), sessionID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal Server Error",
			"message": "Failed to load subscriptions",
		})
	}

	return c.JSON(fiber.Map{
		"subscriptions": subs,
		"total":         len(subs),
	})
}

// Export downloads the session's subscriptions as an Excel workbook.
func (h *SubscriptionHandler) Export(c fiber.Ctx) error {
	sessionID := middleware.GetSessionID(c)

	subs, err := h.service.List(context.Background(), sessionID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal Server Error",
			"message": "Failed to load subscriptions",
		})
	}

	buf, err := h.exportService.SubscriptionsToExcel(subs)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal Server Error",
			"message": "Failed to build export",
		})
	}

	filename := fmt.Sprintf("subscriptions-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(buf.Bytes())
}
