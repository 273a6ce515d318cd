package processing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func immediateProcessor(outcome OutcomeSource) *Processor {
	return &Processor{
		Delay:     SubscriptionDelay,
		Outcome:   outcome,
		Scheduler: ImmediateScheduler{},
	}
}

func TestTaskStartsValidating(t *testing.T) {
	task := immediateProcessor(FixedOutcome(true)).Start()
	assert.Equal(t, StateValidating, task.State())
}

func TestFailValidationResolvesFailed(t *testing.T) {
	task := immediateProcessor(FixedOutcome(true)).Start()
	task.FailValidation()

	result := <-task.Done()
	assert.False(t, result.Succeeded)
	assert.Equal(t, StateFailed, task.State())
}

func TestProcessSucceeds(t *testing.T) {
	p := immediateProcessor(FixedOutcome(true))
	task := p.Start()
	p.Process(task)

	result := <-task.Done()
	assert.True(t, result.Succeeded)
	assert.Equal(t, StateSucceeded, task.State())
}

func TestProcessFails(t *testing.T) {
	p := immediateProcessor(FixedOutcome(false))
	task := p.Start()
	p.Process(task)

	result := <-task.Done()
	assert.False(t, result.Succeeded)
	assert.Equal(t, StateFailed, task.State())
}

func TestEachTaskResolvesIndependently(t *testing.T) {
	p := immediateProcessor(FixedOutcome(true))

	first := p.Start()
	second := p.Start()
	p.Process(first)
	p.Process(second)

	assert.True(t, (<-first.Done()).Succeeded)
	assert.True(t, (<-second.Done()).Succeeded)
}

func TestTimerSchedulerFires(t *testing.T) {
	p := &Processor{
		Delay:     time.Millisecond,
		Outcome:   FixedOutcome(true),
		Scheduler: TimerScheduler{},
	}
	task := p.Start()
	p.Process(task)

	select {
	case result := <-task.Done():
		assert.True(t, result.Succeeded)
	case <-time.After(time.Second):
		t.Fatal("task never resolved")
	}
}

func TestFixedOutcome(t *testing.T) {
	assert.True(t, FixedOutcome(true).Succeeds())
	assert.False(t, FixedOutcome(false).Succeeds())
}

func TestRandomOutcomeRespectsRate(t *testing.T) {
	always := NewSeededOutcome(1.0, 42)
	never := NewSeededOutcome(0.0, 42)
	for i := 0; i < 100; i++ {
		assert.True(t, always.Succeeds())
		assert.False(t, never.Succeeds())
	}
}

func TestRandomOutcomeConvergesOnRate(t *testing.T) {
	outcome := NewSeededOutcome(DemoSuccessRate, 1)

	const trials = 10000
	successes := 0
	for i := 0; i < trials; i++ {
		if outcome.Succeeds() {
			successes++
		}
	}

	rate := float64(successes) / trials
	require.InDelta(t, DemoSuccessRate, rate, 0.02)
}
