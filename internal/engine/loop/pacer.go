package loop

import (
	"fmt"
	"time"
)

// DefaultInterval caps the loop at roughly 60 frames per second.
const DefaultInterval = 17 * time.Millisecond

// Pacer bounds how fast the loop spins.
type Pacer interface {
	Wait()
}

// SleepPacer sleeps a fixed duration every frame regardless of how long the
// frame took.
type SleepPacer struct {
	Interval time.Duration
	sleep    func(time.Duration)
}

// NewSleepPacer creates a fixed-sleep pacer.
func NewSleepPacer(interval time.Duration) *SleepPacer {
	return &SleepPacer{Interval: interval, sleep: time.Sleep}
}

// Wait implements Pacer.
func (p *SleepPacer) Wait() {
	p.sleep(p.Interval)
}

// BudgetPacer sleeps only for what is left of the frame budget, measured on
// the monotonic clock from the previous Wait.
type BudgetPacer struct {
	Interval time.Duration
	last     time.Time
	now      func() time.Time
	sleep    func(time.Duration)
}

// NewBudgetPacer creates a frame-budget pacer.
func NewBudgetPacer(interval time.Duration) *BudgetPacer {
	return &BudgetPacer{Interval: interval, now: time.Now, sleep: time.Sleep}
}

// Wait implements Pacer.
func (p *BudgetPacer) Wait() {
	now := p.now()
	if p.last.IsZero() {
		p.last = now
	}
	deadline := p.last.Add(p.Interval)
	if remaining := deadline.Sub(now); remaining > 0 {
		p.sleep(remaining)
		p.last = deadline
		return
	}
	// Over budget: start the next frame's budget from now instead of catching up
	p.last = now
}

// NewPacer returns the pacer for a pacing mode name ("sleep" or "budget").
func NewPacer(mode string, interval time.Duration) (Pacer, error) {
	switch mode {
	case "", "sleep":
		return NewSleepPacer(interval), nil
	case "budget":
		return NewBudgetPacer(interval), nil
	default:
		return nil, fmt.Errorf("unknown pacing mode %q", mode)
	}
}
