package redis

import (
	"context"
	"strconv"
	"sync"
	"time"

	"trivia-duel-service/internal/app"

	"github.com/redis/go-redis/v9"
)

// MatchDirectory is a Redis-aware implementation of app.MatchDirectory.
// Notes:
//   - Live matches stay in a local in-memory map; match state is driven by
//     in-process timers and cannot usefully live off-box.
//   - Redis marks match liveness so operators (and future cross-instance
//     routing) can see which matches a process owns.
type MatchDirectory struct {
	client *redis.Client
	ttl    time.Duration

	mu      sync.RWMutex
	matches map[int64]*app.Match
}

func NewMatchDirectory(client *redis.Client, ttl time.Duration) *MatchDirectory {
	return &MatchDirectory{
		client:  client,
		ttl:     ttl,
		matches: make(map[int64]*app.Match),
	}
}

func (d *MatchDirectory) Put(m *app.Match) {
	d.mu.Lock()
	d.matches[m.ID] = m
	d.mu.Unlock()
	// best-effort liveness marker
	_ = d.client.Set(context.Background(), d.key(m.ID), "1", d.ttl).Err()
}

func (d *MatchDirectory) Get(id int64) (*app.Match, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	m, ok := d.matches[id]
	return m, ok
}

func (d *MatchDirectory) All() []*app.Match {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]*app.Match, 0, len(d.matches))
	for _, m := range d.matches {
		out = append(out, m)
	}
	return out
}

func (d *MatchDirectory) Remove(id int64) {
	d.mu.Lock()
	delete(d.matches, id)
	d.mu.Unlock()
	_ = d.client.Del(context.Background(), d.key(id)).Err()
}

func (d *MatchDirectory) key(id int64) string {
	return "match:live:" + strconv.FormatInt(id, 10)
}
