package models

import "time"

// NotificationType constants
const (
	NotificationTypeSubscription = "subscription_completed"
	NotificationTypeForm         = "form_processed"
)

// Notification is a per-session message shown to the visitor. Notifications
// live in the session's key-value slot, not in their own table.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
