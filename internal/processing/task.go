package processing

import (
	"sync"
	"time"
)

// Result is the terminal outcome of a processing attempt.
type Result struct {
	Succeeded bool
}

// Task is one pass through the processing state machine:
//
//	Idle -> Validating -> Processing -> {Succeeded, Failed}
//
// Once Processing begins the task always resolves; there is no cancellation
// and no timeout beyond the artificial delay itself.
type Task struct {
	mu    sync.Mutex
	state State
	done  chan Result
}

// Processor runs simulated attempts with a fixed delay and outcome source.
type Processor struct {
	Delay     time.Duration
	Outcome   OutcomeSource
	Scheduler Scheduler
}

// NewProcessor builds a processor with the real timer scheduler and a
// random outcome at the demo success rate.
func NewProcessor(delay time.Duration) *Processor {
	return &Processor{
		Delay:     delay,
		Outcome:   NewRandomOutcome(DemoSuccessRate),
		Scheduler: TimerScheduler{},
	}
}

// Start begins an attempt in the Validating state. The caller runs its
// validation and then either fails the task or lets it proceed to the
// asynchronous Processing phase.
func (p *Processor) Start() *Task {
	return &Task{
		state: StateValidating,
		done:  make(chan Result, 1),
	}
}

// FailValidation ends the attempt before any processing happens.
func (t *Task) FailValidation() {
	t.mu.Lock()
	t.state = StateFailed
	t.mu.Unlock()
	t.done <- Result{Succeeded: false}
}

// Process moves the task into Processing and schedules its resolution.
// The call returns immediately; the result arrives on Done.
func (p *Processor) Process(t *Task) {
	t.mu.Lock()
	t.state = StateProcessing
	t.mu.Unlock()

	p.Scheduler.Schedule(p.Delay, func() {
		ok := p.Outcome.Succeeds()
		t.mu.Lock()
		if ok {
			t.state = StateSucceeded
		} else {
			t.state = StateFailed
		}
		t.mu.Unlock()
		t.done <- Result{Succeeded: ok}
	})
}

// State returns the task's current state.
func (t *Task) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Done delivers the terminal result exactly once.
func (t *Task) Done() <-chan Result {
	return t.done
}
