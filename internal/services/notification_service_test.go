package services

import (
	"context"
	"testing"

	"github.com/resicare/resicare-api/internal/kvstore"
	"github.com/resicare/resicare-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNotificationService() *NotificationService {
	return NewNotificationService(kvstore.NewMemoryStore(), NewEmailService())
}

func TestNotificationAddAndList(t *testing.T) {
	ctx := context.Background()
	svc := newTestNotificationService()

	added, err := svc.Add(ctx, "session-1", models.NotificationTypeSubscription, "Plan premium", "listo")
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)
	assert.False(t, added.IsRead)

	list, err := svc.List(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, added.ID, list[0].ID)

	// Other sessions see nothing
	other, err := svc.List(ctx, "session-2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestNotificationUnreadCountAndMarkAsRead(t *testing.T) {
	ctx := context.Background()
	svc := newTestNotificationService()

	first, err := svc.Add(ctx, "s", models.NotificationTypeForm, "a", "b")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "s", models.NotificationTypeForm, "c", "d")
	require.NoError(t, err)

	count, err := svc.UnreadCount(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, svc.MarkAsRead(ctx, "s", first.ID))

	count, err = svc.UnreadCount(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Unknown id is a no-op
	require.NoError(t, svc.MarkAsRead(ctx, "s", "nope"))
}

func TestNotifySubscriptionCompleted(t *testing.T) {
	ctx := context.Background()
	svc := newTestNotificationService()

	// Empty email skips the SMTP path entirely
	svc.NotifySubscriptionCompleted(ctx, "s", "SUB-123", "premium", "", "es")

	list, err := svc.List(ctx, "s")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.NotificationTypeSubscription, list[0].Type)
	assert.Contains(t, list[0].Title, "premium")
}
