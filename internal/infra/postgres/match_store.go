package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"
)

// MatchStore persists match rows in Postgres.
type MatchStore struct {
	pool *pgxpool.Pool
}

func NewMatchStore(pool *pgxpool.Pool) *MatchStore {
	return &MatchStore{pool: pool}
}

func (s *MatchStore) CreateMatch(ctx context.Context, player1ID, player2ID, topicID string) (int64, error) {
	var id int64
	err := s.pool.QueryRow(ctx, `
		INSERT INTO matches (player1_id, player2_id, topic_id, status)
		VALUES ($1, $2, $3, 'in_progress')
		RETURNING id`, player1ID, player2ID, topicID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create match: %w", err)
	}
	return id, nil
}

func (s *MatchStore) CompleteMatch(ctx context.Context, matchID int64, winnerID string, player1Score, player2Score int) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE matches
		SET status = 'completed',
		    winner_id = NULLIF($2, ''),
		    player1_score = $3,
		    player2_score = $4,
		    updated_at = now()
		WHERE id = $1`, matchID, winnerID, player1Score, player2Score)
	if err != nil {
		return fmt.Errorf("complete match: %w", err)
	}
	return nil
}
