package app_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"trivia-duel-service/internal/app"
	"trivia-duel-service/internal/domain"
)

type capturedEvent struct {
	name    string
	payload any
}

// fakeConn records everything sent to it.
type fakeConn struct {
	id string

	mu     sync.Mutex
	events []capturedEvent
}

func newFakeConn(id string) *fakeConn {
	return &fakeConn{id: id}
}

func (c *fakeConn) ID() string { return c.id }

func (c *fakeConn) Send(event string, payload any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, capturedEvent{name: event, payload: payload})
}

func (c *fakeConn) count(event string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, e := range c.events {
		if e.name == event {
			n++
		}
	}
	return n
}

func (c *fakeConn) last(event string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := len(c.events) - 1; i >= 0; i-- {
		if c.events[i].name == event {
			return c.events[i].payload, true
		}
	}
	return nil, false
}

func (c *fakeConn) names() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.events))
	for i, e := range c.events {
		out[i] = e.name
	}
	return out
}

// fakeReporter records reported results and returns a canned ack.
type fakeReporter struct {
	mu      sync.Mutex
	results []domain.MatchResult
	ack     domain.ReportAck
	err     error
}

func (r *fakeReporter) Report(_ context.Context, result domain.MatchResult) (domain.ReportAck, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, result)
	if r.err != nil {
		return nil, r.err
	}
	return r.ack, nil
}

func (r *fakeReporter) reported() []domain.MatchResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.MatchResult, len(r.results))
	copy(out, r.results)
	return out
}

// failingStore rejects match creation, for abort-path tests.
type failingStore struct{}

func (failingStore) CreateMatch(context.Context, string, string, string) (int64, error) {
	return 0, fmt.Errorf("store unavailable")
}

func (failingStore) CompleteMatch(context.Context, int64, string, int, int) error {
	return nil
}

func gameOverPayload(t *testing.T, c *fakeConn) domain.GameOverPayload {
	t.Helper()
	raw, ok := c.last(domain.EventGameOver)
	if !ok {
		t.Fatalf("conn %s: no game_over event, saw %v", c.id, c.names())
	}
	payload, ok := raw.(domain.GameOverPayload)
	if !ok {
		t.Fatalf("conn %s: game_over payload has type %T", c.id, raw)
	}
	return payload
}

var _ app.Conn = (*fakeConn)(nil)
