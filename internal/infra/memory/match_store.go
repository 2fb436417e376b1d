package memory

import (
	"context"
	"sync"
)

// MatchRecord is the in-memory mirror of a match row.
type MatchRecord struct {
	ID           int64
	Player1ID    string
	Player2ID    string
	TopicID      string
	Status       string
	WinnerID     string
	Player1Score int
	Player2Score int
}

// MatchStore is an in-memory implementation of app.MatchStore, useful when
// no Postgres is configured and in tests.
type MatchStore struct {
	mu      sync.Mutex
	nextID  int64
	records map[int64]*MatchRecord
}

func NewMatchStore() *MatchStore {
	return &MatchStore{records: make(map[int64]*MatchRecord)}
}

func (s *MatchStore) CreateMatch(_ context.Context, player1ID, player2ID, topicID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.records[s.nextID] = &MatchRecord{
		ID:        s.nextID,
		Player1ID: player1ID,
		Player2ID: player2ID,
		TopicID:   topicID,
		Status:    "in_progress",
	}
	return s.nextID, nil
}

func (s *MatchStore) CompleteMatch(_ context.Context, matchID int64, winnerID string, player1Score, player2Score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[matchID]
	if !ok {
		return nil
	}
	rec.Status = "completed"
	rec.WinnerID = winnerID
	rec.Player1Score = player1Score
	rec.Player2Score = player2Score
	return nil
}

// Record returns a copy of the stored row, for tests.
func (s *MatchStore) Record(matchID int64) (MatchRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[matchID]
	if !ok {
		return MatchRecord{}, false
	}
	return *rec, true
}
