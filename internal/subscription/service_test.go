package subscription

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/resicare/resicare-api/internal/kvstore"
	"github.com/resicare/resicare-api/internal/models"
	"github.com/resicare/resicare-api/internal/processing"
	"github.com/resicare/resicare-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(outcome processing.OutcomeSource) *Service {
	crypto := services.NewCryptoService("32-byte-key-for-aes-encryption!")
	return NewService(kvstore.NewMemoryStore(), nil, crypto).
		WithProcessor(&processing.Processor{
			Delay:     processing.SubscriptionDelay,
			Outcome:   outcome,
			Scheduler: processing.ImmediateScheduler{},
		})
}

func TestSubmitSuccess(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	svc := newTestService(processing.FixedOutcome(true)).
		WithClock(func() time.Time { return now })

	result, err := svc.Submit(ctx, "session-1", validForm(), "es")
	require.NoError(t, err)
	require.True(t, result.Success)
	require.NotNil(t, result.Subscription)

	sub := result.Subscription
	assert.True(t, strings.HasPrefix(sub.ID, "SUB-"))
	assert.Equal(t, "premium", sub.PlanID)
	assert.Equal(t, 24.90, sub.Price)
	assert.Equal(t, models.SubscriptionStatusActive, sub.Status)
	assert.Equal(t, now.Format(time.RFC3339), sub.StartDate)
	assert.Equal(t, now.Add(30*24*time.Hour).Format(time.RFC3339), sub.NextPayment)
	assert.Equal(t, "María García", sub.Customer.Name)

	list, err := svc.List(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, sub.ID, list[0].ID)
}

func TestSubmitAppendsToSessionList(t *testing.T) {
	ctx := context.Background()
	tick := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	svc := newTestService(processing.FixedOutcome(true)).
		WithClock(func() time.Time {
			tick = tick.Add(time.Second)
			return tick
		})

	first, err := svc.Submit(ctx, "session-1", validForm(), "es")
	require.NoError(t, err)
	second, err := svc.Submit(ctx, "session-1", validForm(), "es")
	require.NoError(t, err)

	list, err := svc.List(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.Subscription.ID, list[0].ID)
	assert.Equal(t, second.Subscription.ID, list[1].ID)

	// Another session sees nothing
	other, err := svc.List(ctx, "session-2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestSubmitValidationFailureCommitsNothing(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(processing.FixedOutcome(true))

	form := validForm()
	form.Email = "broken"

	result, err := svc.Submit(ctx, "session-1", form, "es")
	require.NoError(t, err)
	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "email", result.Errors[0].Field)
	assert.Nil(t, result.Subscription)

	list, err := svc.List(ctx, "session-1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSubmitUnknownPlan(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(processing.FixedOutcome(true))

	form := validForm()
	form.PlanID = "gold"

	result, err := svc.Submit(ctx, "session-1", form, "es")
	require.NoError(t, err)
	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "plan_id", result.Errors[0].Field)
}

func TestSubmitPaymentFailureCommitsNothing(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(processing.FixedOutcome(false))

	result, err := svc.Submit(ctx, "session-1", validForm(), "es")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Empty(t, result.Errors)
	assert.NotEmpty(t, result.Message)
	assert.Nil(t, result.Subscription)

	list, err := svc.List(ctx, "session-1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

// gateScheduler parks the scheduled resolution until released, so a test can
// observe a submit mid-processing.
type gateScheduler struct {
	started chan struct{}
	release chan struct{}
}

func newGateScheduler() *gateScheduler {
	return &gateScheduler{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (g *gateScheduler) Schedule(delay time.Duration, fn func()) {
	close(g.started)
	go func() {
		<-g.release
		fn()
	}()
}

func TestSubmitRejectsDuplicateWhileInFlight(t *testing.T) {
	ctx := context.Background()
	gate := newGateScheduler()
	crypto := services.NewCryptoService("32-byte-key-for-aes-encryption!")
	svc := NewService(kvstore.NewMemoryStore(), nil, crypto).
		WithProcessor(&processing.Processor{
			Delay:     processing.SubscriptionDelay,
			Outcome:   processing.FixedOutcome(true),
			Scheduler: gate,
		})

	type submitOutcome struct {
		result SubmitResult
		err    error
	}
	firstDone := make(chan submitOutcome, 1)
	go func() {
		result, err := svc.Submit(ctx, "session-1", validForm(), "es")
		firstDone <- submitOutcome{result, err}
	}()

	<-gate.started

	_, err := svc.Submit(ctx, "session-1", validForm(), "es")
	var inFlight ErrSubmitInFlight
	require.True(t, errors.As(err, &inFlight))
	assert.NotEmpty(t, inFlight.Error())

	close(gate.release)
	first := <-firstDone
	require.NoError(t, first.err)
	assert.True(t, first.result.Success)
}
