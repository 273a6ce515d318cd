package subscription

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/resicare/resicare-api/internal/i18n"
	"github.com/resicare/resicare-api/internal/kvstore"
	"github.com/resicare/resicare-api/internal/models"
	"github.com/resicare/resicare-api/internal/processing"
	"github.com/resicare/resicare-api/internal/rabbitmq"
	"github.com/resicare/resicare-api/internal/services"
	"github.com/uptrace/bun"
)

// subscriptionsKey is the per-session list of completed subscriptions.
const subscriptionsKey = "user_subscriptions"

// nextPaymentAfter is the billing interval for the demo.
const nextPaymentAfter = 30 * 24 * time.Hour

// SubmitResult is the terminal outcome of a subscription attempt.
type SubmitResult struct {
	Success      bool                         `json:"success"`
	Errors       []FieldError                 `json:"errors,omitempty"`
	Message      string                       `json:"message,omitempty"`
	Subscription *models.SubscriptionResponse `json:"subscription,omitempty"`
}

// Service runs the subscription pipeline: validate, simulate payment
// processing, and on success persist the subscription and publish a
// completion event. Nothing is committed on a failed attempt.
type Service struct {
	store     kvstore.Store
	db        *bun.DB // nil when the database is unavailable
	crypto    *services.CryptoService
	processor *processing.Processor
	now       func() time.Time

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewService(store kvstore.Store, db *bun.DB, crypto *services.CryptoService) *Service {
	return &Service{
		store:     store,
		db:        db,
		crypto:    crypto,
		processor: processing.NewProcessor(processing.SubscriptionDelay),
		now:       time.Now,
		inFlight:  make(map[string]bool),
	}
}

// WithProcessor replaces the payment simulation, for tests.
func (s *Service) WithProcessor(p *processing.Processor) *Service {
	s.processor = p
	return s
}

// WithClock replaces the time source, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// ErrSubmitInFlight marks a duplicate submit while one is still processing.
type ErrSubmitInFlight struct{ Lang string }

func (e ErrSubmitInFlight) Error() string {
	return i18n.Translate(e.Lang, i18n.KeySubmitInFlight)
}

// Submit runs one attempt through the state machine. A second submit for the
// same session while one is processing is rejected rather than starting a
// second attempt.
func (s *Service) Submit(ctx context.Context, sessionID string, form FormData, lang string) (SubmitResult, error) {
	s.mu.Lock()
	if s.inFlight[sessionID] {
		s.mu.Unlock()
		return SubmitResult{}, ErrSubmitInFlight{Lang: lang}
	}
	s.inFlight[sessionID] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inFlight, sessionID)
		s.mu.Unlock()
	}()

	task := s.processor.Start()

	if errs := Validate(form, lang); len(errs) > 0 {
		task.FailValidation()
		<-task.Done()
		return SubmitResult{Success: false, Errors: errs}, nil
	}

	plan, ok := models.GetPlan(form.PlanID)
	if !ok {
		task.FailValidation()
		<-task.Done()
		return SubmitResult{
			Success: false,
			Errors:  []FieldError{{Field: "plan_id", Message: i18n.Translate(lang, i18n.KeyPlanInvalid)}},
		}, nil
	}

	s.processor.Process(task)
	result := <-task.Done()

	if !result.Succeeded {
		return SubmitResult{
			Success: false,
			Message: i18n.Translate(lang, i18n.KeyPaymentFailed),
		}, nil
	}

	sub, err := s.commit(ctx, sessionID, form, plan)
	if err != nil {
		return SubmitResult{}, err
	}

	if err := rabbitmq.PublishSubscriptionCompleted(rabbitmq.SubscriptionEvent{
		SessionID: sessionID,
		Reference: sub.ID,
		PlanID:    sub.PlanID,
		Price:     sub.Price,
		Name:      sub.Customer.Name,
		Email:     sub.Customer.Email,
		Language:  lang,
	}); err != nil {
		log.Printf("subscription: completion event not published: %v", err)
	}

	return SubmitResult{
		Success:      true,
		Message:      i18n.Translate(lang, i18n.KeySubscriptionOK),
		Subscription: sub,
	}, nil
}

// commit builds the subscription record, appends it to the session's list and
// writes the encrypted row to the database when one is available. The row
// write is best effort; the session list is the source the API serves from.
func (s *Service) commit(ctx context.Context, sessionID string, form FormData, plan models.Plan) (*models.SubscriptionResponse, error) {
	now := s.now()
	resp := &models.SubscriptionResponse{
		ID:       fmt.Sprintf("SUB-%d", now.UnixMilli()),
		PlanID:   plan.ID,
		PlanName: plan.ID,
		Price:    plan.Price,
		Customer: models.CustomerData{
			Name:      form.Name,
			Email:     form.Email,
			Phone:     form.Phone,
			Document:  form.Document,
			BirthDate: form.BirthDate,
		},
		Status:      models.SubscriptionStatusActive,
		StartDate:   now.Format(time.RFC3339),
		NextPayment: now.Add(nextPaymentAfter).Format(time.RFC3339),
	}

	list, err := s.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	list = append(list, *resp)
	if err := s.store.Set(ctx, sessionID, subscriptionsKey, list); err != nil {
		return nil, fmt.Errorf("failed to save subscription: %w", err)
	}

	if s.db != nil {
		if err := s.insertRow(ctx, sessionID, form, plan, resp, now); err != nil {
			log.Printf("subscription: row not persisted for %s: %v", resp.ID, err)
		}
	}

	return resp, nil
}

func (s *Service) insertRow(ctx context.Context, sessionID string, form FormData, plan models.Plan, resp *models.SubscriptionResponse, now time.Time) error {
	phoneEnc, err := s.crypto.Encrypt(form.Phone)
	if err != nil {
		return err
	}
	docEnc, err := s.crypto.Encrypt(form.Document)
	if err != nil {
		return err
	}

	row := &models.Subscription{
		Reference:         resp.ID,
		SessionID:         sessionID,
		PlanID:            plan.ID,
		Price:             plan.Price,
		CustomerName:      form.Name,
		CustomerEmail:     form.Email,
		PhoneEncrypted:    phoneEnc,
		DocumentEncrypted: docEnc,
		CustomerBirthDate: form.BirthDate,
		MarketingOptIn:    form.Marketing,
		Status:            models.SubscriptionStatusActive,
		StartDate:         now,
		NextPayment:       now.Add(nextPaymentAfter),
	}

	_, err = s.db.NewInsert().Model(row).Exec(ctx)
	return err
}

// List returns the session's completed subscriptions, oldest first.
func (s *Service) List(ctx context.Context, sessionID string) ([]models.SubscriptionResponse, error) {
	var list []models.SubscriptionResponse
	if _, err := s.store.Get(ctx, sessionID, subscriptionsKey, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.SubscriptionResponse{}
	}
	return list, nil
}
