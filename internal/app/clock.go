package app

import (
	"sync"
	"time"
)

// CancelFunc stops a pending timer. It reports whether the timer was stopped
// before its callback ran.
type CancelFunc func() bool

// Clock abstracts wall time so match timers can be driven deterministically
// in tests.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) CancelFunc
}

type realClock struct{}

// NewClock returns a Clock backed by the time package.
func NewClock() Clock { return realClock{} }

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, fn func()) CancelFunc {
	return time.AfterFunc(d, fn).Stop
}

// ManualClock is a test-only Clock advanced explicitly by the caller.
type ManualClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*manualTimer
}

type manualTimer struct {
	at      time.Time
	fn      func()
	stopped bool
}

// NewManualClock returns a ManualClock positioned at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *ManualClock) AfterFunc(d time.Duration, fn func()) CancelFunc {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{at: c.now.Add(d), fn: fn}
	c.timers = append(c.timers, t)
	return func() bool {
		c.mu.Lock()
		defer c.mu.Unlock()
		if t.stopped {
			return false
		}
		t.stopped = true
		return true
	}
}

// Advance moves the clock forward by d, firing due timers in chronological
// order. Timers armed by fired callbacks also run if they fall within the
// window. Callbacks execute on the caller's goroutine with no clock lock
// held, so they may arm or cancel timers freely.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	for {
		t := c.nextDueLocked(target)
		if t == nil {
			break
		}
		if t.at.After(c.now) {
			c.now = t.at
		}
		t.stopped = true
		c.mu.Unlock()
		t.fn()
		c.mu.Lock()
	}
	c.now = target
	c.mu.Unlock()
}

func (c *ManualClock) nextDueLocked(target time.Time) *manualTimer {
	var best *manualTimer
	for _, t := range c.timers {
		if t.stopped || t.at.After(target) {
			continue
		}
		if best == nil || t.at.Before(best.at) {
			best = t
		}
	}
	return best
}
