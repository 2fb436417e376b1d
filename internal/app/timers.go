package app

import (
	"sync"
	"time"
)

type timerSlot int

const (
	slotCountdown timerSlot = iota
	slotQuestion
	slotSecondResponder
)

// timerRegistry owns the cancellable timers of a single match. Each logical
// timer lives in a slot; arming a slot cancels whatever was there first, and
// a superseded or cancelled timer never runs its callback even if the
// underlying clock already fired it.
type timerRegistry struct {
	clock Clock

	mu    sync.Mutex
	seq   uint64
	armed map[timerSlot]*timerHandle
}

type timerHandle struct {
	seq    uint64
	cancel CancelFunc
}

func newTimerRegistry(clock Clock) *timerRegistry {
	return &timerRegistry{clock: clock, armed: make(map[timerSlot]*timerHandle)}
}

// arm schedules fn to run after d, replacing any live timer in the slot.
func (r *timerRegistry) arm(slot timerSlot, d time.Duration, fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	seq := r.seq
	if h, ok := r.armed[slot]; ok {
		h.cancel()
	}
	h := &timerHandle{seq: seq}
	h.cancel = r.clock.AfterFunc(d, func() {
		r.mu.Lock()
		cur, ok := r.armed[slot]
		if !ok || cur.seq != seq {
			// Superseded between firing and running.
			r.mu.Unlock()
			return
		}
		delete(r.armed, slot)
		r.mu.Unlock()
		fn()
	})
	r.armed[slot] = h
}

func (r *timerRegistry) cancel(slot timerSlot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if h, ok := r.armed[slot]; ok {
		h.cancel()
		delete(r.armed, slot)
	}
}

func (r *timerRegistry) cancelAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for slot, h := range r.armed {
		h.cancel()
		delete(r.armed, slot)
	}
}

func (r *timerRegistry) isArmed(slot timerSlot) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.armed[slot]
	return ok
}

func (r *timerRegistry) armedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.armed)
}
