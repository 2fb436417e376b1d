package app

import (
	"testing"
	"time"
)

func TestTimerRegistryFires(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	reg := newTimerRegistry(clock)

	fired := 0
	reg.arm(slotQuestion, 10*time.Second, func() { fired++ })

	clock.Advance(9 * time.Second)
	if fired != 0 {
		t.Fatalf("timer fired early")
	}
	clock.Advance(time.Second)
	if fired != 1 {
		t.Fatalf("expected timer to fire once, got %d", fired)
	}
	if reg.armedCount() != 0 {
		t.Fatalf("expected no armed timers after firing, got %d", reg.armedCount())
	}
}

func TestTimerRegistryCancelThenArm(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	reg := newTimerRegistry(clock)

	var stale, fresh int
	reg.arm(slotSecondResponder, 5*time.Second, func() { stale++ })
	reg.arm(slotSecondResponder, 5*time.Second, func() { fresh++ })

	if reg.armedCount() != 1 {
		t.Fatalf("expected one armed timer in the slot, got %d", reg.armedCount())
	}
	clock.Advance(time.Minute)
	if stale != 0 {
		t.Fatalf("superseded timer must never run, ran %d times", stale)
	}
	if fresh != 1 {
		t.Fatalf("expected replacement timer to run once, got %d", fresh)
	}
}

func TestTimerRegistryCancel(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	reg := newTimerRegistry(clock)

	fired := false
	reg.arm(slotQuestion, time.Second, func() { fired = true })
	reg.cancel(slotQuestion)

	clock.Advance(time.Minute)
	if fired {
		t.Fatalf("cancelled timer fired")
	}
	if reg.isArmed(slotQuestion) {
		t.Fatalf("slot still armed after cancel")
	}
}

func TestTimerRegistryCancelAll(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	reg := newTimerRegistry(clock)

	fired := 0
	reg.arm(slotCountdown, time.Second, func() { fired++ })
	reg.arm(slotQuestion, time.Second, func() { fired++ })
	reg.arm(slotSecondResponder, time.Second, func() { fired++ })
	reg.cancelAll()

	clock.Advance(time.Minute)
	if fired != 0 {
		t.Fatalf("expected no timers to fire after cancelAll, got %d", fired)
	}
	if reg.armedCount() != 0 {
		t.Fatalf("expected zero armed timers, got %d", reg.armedCount())
	}
}

// Timers armed from inside a firing callback must run when they fall inside
// the same Advance window; the countdown sequence depends on this.
func TestManualClockChainedTimers(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	reg := newTimerRegistry(clock)

	var order []int
	reg.arm(slotCountdown, time.Second, func() {
		order = append(order, 1)
		reg.arm(slotCountdown, time.Second, func() {
			order = append(order, 2)
		})
	})

	clock.Advance(2 * time.Second)
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("expected chained timers [1 2], got %v", order)
	}
}
