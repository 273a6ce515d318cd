package models

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Subscription statuses
const (
	SubscriptionStatusActive = "active"
)

type Subscription struct {
	bun.BaseModel `bun:"table:subscriptions,alias:s"`

	ID   int64     `bun:"id,pk,autoincrement" json:"-"`
	UUID uuid.UUID `bun:"uuid,notnull,unique,default:gen_random_uuid()" json:"-"`

	// Display id shown to the customer, e.g. SUB-1724918400000
	Reference string `bun:"reference,notnull,unique" json:"id"`

	// Visitor session that created the subscription
	SessionID string `bun:"session_id,notnull" json:"-"`

	PlanID string  `bun:"plan_id,notnull" json:"plan_id"`
	Price  float64 `bun:"price,notnull" json:"price"`

	// Customer data. Document and phone are stored encrypted.
	CustomerName      string `bun:"customer_name,notnull" json:"-"`
	CustomerEmail     string `bun:"customer_email,notnull" json:"-"`
	PhoneEncrypted    string `bun:"phone_encrypted,notnull" json:"-"`
	DocumentEncrypted string `bun:"document_encrypted,notnull" json:"-"`
	CustomerBirthDate string `bun:"customer_birth_date,notnull" json:"-"`
	MarketingOptIn    bool   `bun:"marketing_opt_in,default:false" json:"-"`

	Status      string    `bun:"status,default:'active'" json:"status"`
	StartDate   time.Time `bun:"start_date,notnull" json:"start_date"`
	NextPayment time.Time `bun:"next_payment,notnull" json:"next_payment"`

	CreatedAt time.Time  `bun:"created_at,nullzero,default:now()" json:"-"`
	DeletedAt *time.Time `bun:"deleted_at,soft_delete" json:"-"`
}

// CustomerData is the decrypted customer view used in API responses.
type CustomerData struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Document  string `json:"document"`
	BirthDate string `json:"birthdate"`
}

// SubscriptionResponse for API output
type SubscriptionResponse struct {
	ID          string       `json:"id"`
	PlanID      string       `json:"plan_id"`
	PlanName    string       `json:"plan_name"`
	Price       float64      `json:"price"`
	Customer    CustomerData `json:"customer"`
	Status      string       `json:"status"`
	StartDate   string       `json:"start_date"`
	NextPayment string       `json:"next_payment"`
}

// BeforeInsert hook
var _ bun.BeforeInsertHook = (*Subscription)(nil)

func (s *Subscription) BeforeInsert(ctx context.Context, query *bun.InsertQuery) error {
	s.CreatedAt = time.Now()
	if s.UUID == uuid.Nil {
		s.UUID = uuid.New()
	}
	return nil
}
