package simulator

import (
	"context"
	"log"
	"time"

	"github.com/resicare/resicare-api/internal/kvstore"
)

// StorageKey is the single slot holding a session's last calculation.
const StorageKey = "simulator_data"

// MaxAge is how long a saved calculation stays loadable.
const MaxAge = 24 * time.Hour

// SavedCalculation is a calculation plus its capture time.
type SavedCalculation struct {
	PremiumCalculation
	Timestamp int64 `json:"timestamp"` // unix milliseconds
}

// CalculationStore persists the last calculation per visitor session.
// Storage failures degrade to "no persistence this session": Save and Reset
// log a warning and move on, Load reports absent.
type CalculationStore struct {
	store kvstore.Store
	now   func() time.Time
}

func NewCalculationStore(store kvstore.Store) *CalculationStore {
	return &CalculationStore{store: store, now: time.Now}
}

// WithClock replaces the time source, for tests.
func (s *CalculationStore) WithClock(now func() time.Time) *CalculationStore {
	s.now = now
	return s
}

// Save overwrites the session's slot with the calculation and the current
// capture timestamp.
func (s *CalculationStore) Save(ctx context.Context, sessionID string, calc PremiumCalculation) {
	saved := SavedCalculation{
		PremiumCalculation: calc,
		Timestamp:          s.now().UnixMilli(),
	}
	if err := s.store.Set(ctx, sessionID, StorageKey, saved); err != nil {
		log.Printf("simulator: failed to save calculation for session %s: %v", sessionID, err)
	}
}

// Load returns the saved calculation if it is younger than MaxAge. An expired
// slot is treated as absent but not deleted; only Reset removes it.
func (s *CalculationStore) Load(ctx context.Context, sessionID string) (*SavedCalculation, bool) {
	var saved SavedCalculation
	found, err := s.store.Get(ctx, sessionID, StorageKey, &saved)
	if err != nil {
		log.Printf("simulator: failed to load calculation for session %s: %v", sessionID, err)
		return nil, false
	}
	if !found {
		return nil, false
	}
	if s.now().UnixMilli()-saved.Timestamp >= MaxAge.Milliseconds() {
		return nil, false
	}
	return &saved, true
}

// Reset clears the session's slot.
func (s *CalculationStore) Reset(ctx context.Context, sessionID string) {
	if err := s.store.Remove(ctx, sessionID, StorageKey); err != nil {
		log.Printf("simulator: failed to reset calculation for session %s: %v", sessionID, err)
	}
}
