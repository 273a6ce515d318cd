// Package processing models the simulated backend call used throughout the
// demo: an artificial delay followed by a randomized outcome. The delay and
// the outcome source are injectable so tests run on virtual time with forced
// results.
package processing

import (
	"math/rand"
	"sync"
	"time"
)

// State of a processing attempt.
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateProcessing State = "processing"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// Artificial delays standing in for network latency.
const (
	SubscriptionDelay = 2500 * time.Millisecond
	FormDelay         = 1500 * time.Millisecond
	LoginDelay        = 800 * time.Millisecond
)

// DemoSuccessRate is the probability a simulated backend call succeeds.
const DemoSuccessRate = 0.9

// OutcomeSource decides whether a processing attempt succeeds.
type OutcomeSource interface {
	Succeeds() bool
}

// RandomOutcome succeeds with a fixed probability.
type RandomOutcome struct {
	Rate float64
	rng  *rand.Rand
	mu   sync.Mutex
}

func NewRandomOutcome(rate float64) *RandomOutcome {
	return &RandomOutcome{
		Rate: rate,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewSeededOutcome is like NewRandomOutcome with a fixed seed, for tests.
func NewSeededOutcome(rate float64, seed int64) *RandomOutcome {
	return &RandomOutcome{
		Rate: rate,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (r *RandomOutcome) Succeeds() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64() < r.Rate
}

// FixedOutcome always resolves the same way.
type FixedOutcome bool

func (f FixedOutcome) Succeeds() bool { return bool(f) }

// Scheduler defers a function by a delay. The real one uses a timer; tests
// substitute an immediate scheduler.
type Scheduler interface {
	Schedule(delay time.Duration, fn func())
}

// TimerScheduler fires fn on a timer goroutine after delay.
type TimerScheduler struct{}

func (TimerScheduler) Schedule(delay time.Duration, fn func()) {
	time.AfterFunc(delay, fn)
}

// ImmediateScheduler runs fn synchronously, collapsing virtual time.
type ImmediateScheduler struct{}

func (ImmediateScheduler) Schedule(delay time.Duration, fn func()) {
	fn()
}
