package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/resicare/resicare-api/internal/i18n"
	"github.com/resicare/resicare-api/internal/kvstore"
	"github.com/resicare/resicare-api/internal/processing"
	"golang.org/x/crypto/bcrypt"
)

const (
	accountScope       = "auth_accounts"
	minPasswordLength  = 4
	registerMinPasword = 8
)

// ErrInvalidCredentials is returned for any login the demo rules reject.
var ErrInvalidCredentials = errors.New("invalid credentials")

// DemoUser is the authenticated visitor. Everything here is simulated; the
// only persisted state is the optional registered demo account.
type DemoUser struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	JoinDate string `json:"join_date"`
	IsDemo   bool   `json:"is_demo"`
}

// demoAccount is a registered demo account with a bcrypt password hash.
type demoAccount struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"password_hash"`
	CreatedAt    string `json:"created_at"`
}

// AuthService implements the demo login flow: a registered account wins,
// otherwise any well-formed email with a password of 4+ characters signs in.
// The artificial delay mimics a backend round trip.
type AuthService struct {
	jwtService *JWTService
	store      kvstore.Store
	processor  *processing.Processor
	now        func() time.Time
}

func NewAuthService(jwtService *JWTService, store kvstore.Store) *AuthService {
	p := processing.NewProcessor(processing.LoginDelay)
	// Login outcome is deterministic; only the delay is simulated.
	p.Outcome = processing.FixedOutcome(true)
	return &AuthService{
		jwtService: jwtService,
		store:      store,
		processor:  p,
		now:        time.Now,
	}
}

// WithProcessor replaces the simulated-latency processor, for tests.
func (a *AuthService) WithProcessor(p *processing.Processor) *AuthService {
	a.processor = p
	return a
}

// Register creates a demo account with a bcrypt-hashed password. Existing
// emails are rejected.
func (a *AuthService) Register(ctx context.Context, email, password, name string) (*DemoUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !wellFormedEmail(email) {
		return nil, ErrInvalidCredentials
	}
	if len(password) < registerMinPasword {
		return nil, ErrInvalidCredentials
	}

	var existing demoAccount
	if found, _ := a.store.Get(ctx, accountScope, email, &existing); found {
		return nil, errors.New("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	if name == "" {
		name = displayNameFromEmail(email)
	}
	account := demoAccount{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    a.now().Format(time.RFC3339),
	}
	if err := a.store.Set(ctx, accountScope, email, account); err != nil {
		return nil, err
	}

	return a.userFor(email, name), nil
}

// Login authenticates a demo user after the simulated delay. A registered
// account must match its stored hash; anyone else gets the permissive demo
// rule: well-formed email plus a password of at least 4 characters.
func (a *AuthService) Login(ctx context.Context, email, password string) (*DemoUser, error) {
	task := a.processor.Start()
	a.processor.Process(task)
	<-task.Done()

	email = strings.ToLower(strings.TrimSpace(email))

	var account demoAccount
	if found, _ := a.store.Get(ctx, accountScope, email, &account); found {
		if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
			return nil, ErrInvalidCredentials
		}
		return a.userFor(account.Email, account.Name), nil
	}

	if !wellFormedEmail(email) || len(password) < minPasswordLength {
		return nil, ErrInvalidCredentials
	}
	return a.userFor(email, displayNameFromEmail(email)), nil
}

// GenerateToken issues a session JWT for a demo user.
func (a *AuthService) GenerateToken(user *DemoUser) (string, error) {
	return a.jwtService.GenerateToken(user.ID, user.Email, user.Name)
}

// ValidateToken validates a session JWT and returns its claims.
func (a *AuthService) ValidateToken(token string) (*JWTClaims, error) {
	return a.jwtService.ValidateToken(token)
}

// LoginErrorMessage is the localized message for a rejected login.
func LoginErrorMessage(lang string) string {
	return i18n.Translate(lang, i18n.KeyLoginInvalid)
}

func (a *AuthService) userFor(email, name string) *DemoUser {
	return &DemoUser{
		ID:       a.now().UnixMilli(),
		Email:    email,
		Name:     name,
		JoinDate: a.now().Format(time.RFC3339),
		IsDemo:   true,
	}
}

func wellFormedEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

// displayNameFromEmail capitalizes the local part of the address, the same
// friendly fallback the site showed in its header.
func displayNameFromEmail(email string) string {
	local := email
	if at := strings.Index(email, "@"); at > 0 {
		local = email[:at]
	}
	if local == "" {
		return email
	}
	return strings.ToUpper(local[:1]) + local[1:]
}
