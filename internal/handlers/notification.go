package handlers

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"github.com/resicare/resicare-api/internal/middleware"
	"github.com/resicare/resicare-api/internal/services"
)

type NotificationHandler struct {
	notificationService *services.NotificationService
}

func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// List returns the session's notifications.
func (h *NotificationHandler) List(c fiber.Ctx) error {
	sessionID := middleware.GetSessionID(c)

	notifications, err := h.notificationService.List(context.Background(), sessionID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal Server Error",
			"message": "Failed to load notifications",
		})
	}

	return c.JSON(fiber.Map{
		"notifications": notifications,
		"total":         len(notifications),
	})
}

// UnreadCount returns how many notifications are unread.
func (h *NotificationHandler) UnreadCount(c fiber.Ctx) error {
	sessionID := middleware.GetSessionID(c)

	count, err := h.notificationService.UnreadCount(context.Background(), sessionID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal Server Error",
			"message": "Failed to count notifications",
		})
	}

	return c.JSON(fiber.Map{
		"unread": count,
	})
}

// MarkAsRead flags one notification as read.
func (h *NotificationHandler) MarkAsRead(c fiber.Ctx) error {
	sessionID := middleware.GetSessionID(c)

	if err := h.notificationService.MarkAsRead(context.Background(), sessionID, c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal Server Error",
			"message": "Failed to update notification",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Notification marked as read",
	})
}
