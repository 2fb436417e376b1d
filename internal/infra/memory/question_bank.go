package memory

import (
	"context"

	"trivia-duel-service/internal/domain"
)

// QuestionBank serves questions from an in-memory map, keyed by topic. It
// returns questions in their stored order, which keeps demos and tests
// deterministic; the production bank randomizes in SQL instead.
type QuestionBank struct {
	topics map[string][]domain.Question
}

func NewQuestionBank(topics map[string][]domain.Question) *QuestionBank {
	return &QuestionBank{topics: topics}
}

func (b *QuestionBank) Questions(_ context.Context, topicID string, n int) ([]domain.Question, error) {
	pool := b.topics[topicID]
	if len(pool) == 0 {
		return nil, domain.ErrNoQuestions
	}
	if n > len(pool) {
		n = len(pool)
	}
	out := make([]domain.Question, n)
	copy(out, pool[:n])
	return out, nil
}

func (b *QuestionBank) OneQuestion(_ context.Context, topicID string, exclude []int64) (domain.Question, error) {
	used := make(map[int64]bool, len(exclude))
	for _, id := range exclude {
		used[id] = true
	}
	for _, q := range b.topics[topicID] {
		if !used[q.ID] {
			return q, nil
		}
	}
	return domain.Question{}, domain.ErrNoQuestions
}

// LoadPool returns the full topic pool, satisfying the redis cache's loader
// interface.
func (b *QuestionBank) LoadPool(_ context.Context, topicID string) ([]domain.Question, error) {
	pool := b.topics[topicID]
	if len(pool) == 0 {
		return nil, domain.ErrNoQuestions
	}
	out := make([]domain.Question, len(pool))
	copy(out, pool)
	return out, nil
}
