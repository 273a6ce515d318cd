package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/resicare/resicare-api/internal/i18n"
	"github.com/resicare/resicare-api/internal/kvstore"
	"github.com/resicare/resicare-api/internal/models"
)

// notificationsKey is the per-session list of notifications.
const notificationsKey = "notifications"

// NotificationService records per-session notifications and, when SMTP is
// configured, sends the matching email. Both paths degrade silently.
type NotificationService struct {
	store        kvstore.Store
	emailService *EmailService
}

func NewNotificationService(store kvstore.Store, emailService *EmailService) *NotificationService {
	return &NotificationService{
		store:        store,
		emailService: emailService,
	}
}

// Add appends a notification to the session's list.
func (s *NotificationService) Add(ctx context.Context, sessionID, notifType, title, message string) (*models.Notification, error) {
	notification := models.Notification{
		ID:        uuid.NewString(),
		Type:      notifType,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now(),
	}

	list, err := s.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	list = append(list, notification)

	if err := s.store.Set(ctx, sessionID, notificationsKey, list); err != nil {
		return nil, fmt.Errorf("failed to save notification: %w", err)
	}
	return &notification, nil
}

// List returns the session's notifications, oldest first.
func (s *NotificationService) List(ctx context.Context, sessionID string) ([]models.Notification, error) {
	var list []models.Notification
	if _, err := s.store.Get(ctx, sessionID, notificationsKey, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.Notification{}
	}
	return list, nil
}

// MarkAsRead flags one notification as read. Unknown ids are a no-op.
func (s *NotificationService) MarkAsRead(ctx context.Context, sessionID, id string) error {
	list, err := s.List(ctx, sessionID)
	if err != nil {
		return err
	}
	for i := range list {
		if list[i].ID == id {
			list[i].IsRead = true
		}
	}
	return s.store.Set(ctx, sessionID, notificationsKey, list)
}

// UnreadCount returns how many notifications are unread.
func (s *NotificationService) UnreadCount(ctx context.Context, sessionID string) (int, error) {
	list, err := s.List(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range list {
		if !n.IsRead {
			count++
		}
	}
	return count, nil
}

// NotifySubscriptionCompleted records the in-app notification for a completed
// subscription and tries to email a confirmation. Email failure only logs.
func (s *NotificationService) NotifySubscriptionCompleted(ctx context.Context, sessionID, reference, planID, email, lang string) {
	title := fmt.Sprintf("Plan %s", planID)
	message := i18n.Translate(lang, i18n.KeySubscriptionOK)

	if _, err := s.Add(ctx, sessionID, models.NotificationTypeSubscription, title, message); err != nil {
		log.Printf("notification: failed to record subscription notification: %v", err)
	}

	if email != "" {
		body := fmt.Sprintf("<p>%s</p><p><strong>%s:</strong> %s</p>", message, "ID", reference)
		if err := s.emailService.SendEmail([]string{email}, message, body); err != nil {
			log.Printf("notification: confirmation email not sent: %v", err)
		}
	}
}
