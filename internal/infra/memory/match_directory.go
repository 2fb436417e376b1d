package memory

import (
	"sync"

	"trivia-duel-service/internal/app"
)

// MatchDirectory is an in-memory implementation of app.MatchDirectory.
type MatchDirectory struct {
	mu      sync.RWMutex
	matches map[int64]*app.Match
}

func NewMatchDirectory() *MatchDirectory {
	return &MatchDirectory{matches: make(map[int64]*app.Match)}
}

func (d *MatchDirectory) Put(m *app.Match) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.matches[m.ID] = m
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
	defer d.mu.Unlock()
	delete(d.matches, id)
}
