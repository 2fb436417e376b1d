package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"trivia-duel-service/internal/domain"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// QuestionBank serves random questions straight from Postgres.
type QuestionBank struct {
	pool *pgxpool.Pool
}

func NewQuestionBank(pool *pgxpool.Pool) *QuestionBank {
	return &QuestionBank{pool: pool}
}

func (b *QuestionBank) Questions(ctx context.Context, topicID string, n int) ([]domain.Question, error) {
	rows, err := b.pool.Query(ctx, `
		SELECT id, question_text, options, correct_index, unit_id
		FROM questions
		WHERE topic_id = $1
		ORDER BY random()
		LIMIT $2`, topicID, n)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	questions, err := scanQuestions(rows)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, domain.ErrNoQuestions
	}
	return questions, nil
}

func (b *QuestionBank) OneQuestion(ctx context.Context, topicID string, exclude []int64) (domain.Question, error) {
	if exclude == nil {
		exclude = []int64{}
	}
	row := b.pool.QueryRow(ctx, `
		SELECT id, question_text, options, correct_index, unit_id
		FROM questions
		WHERE topic_id = $1 AND NOT (id = ANY($2))
		ORDER BY random()
		LIMIT 1`, topicID, exclude)

	q, err := scanQuestion(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Question{}, domain.ErrNoQuestions
		}
		return domain.Question{}, fmt.Errorf("query tiebreaker question: %w", err)
	}
	return q, nil
}

// LoadPool returns a topic's full pool, satisfying the redis cache's loader
// interface.
func (b *QuestionBank) LoadPool(ctx context.Context, topicID string) ([]domain.Question, error) {
	rows, err := b.pool.Query(ctx, `
		SELECT id, question_text, options, correct_index, unit_id
		FROM questions
		WHERE topic_id = $1`, topicID)
	if err != nil {
		return nil, fmt.Errorf("load question pool: %w", err)
	}
	defer rows.Close()

	questions, err := scanQuestions(rows)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, domain.ErrNoQuestions
	}
	return questions, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanQuestion(row rowScanner) (domain.Question, error) {
	var (
		q       domain.Question
		rawOpts []byte
	)
	if err := row.Scan(&q.ID, &q.Text, &rawOpts, &q.CorrectIndex, &q.UnitID); err != nil {
		return domain.Question{}, err
	}
	var texts []string
	if err := json.Unmarshal(rawOpts, &texts); err != nil {
		return domain.Question{}, fmt.Errorf("unmarshal options: %w", err)
	}
	q.Options = make([]domain.Option, len(texts))
	for i, text := range texts {
		q.Options[i] = domain.Option{ID: i, Text: text}
	}
	return q, nil
}

func scanQuestions(rows pgx.Rows) ([]domain.Question, error) {
	var questions []domain.Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}
