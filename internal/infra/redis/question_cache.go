package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"trivia-duel-service/internal/domain"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// PoolLoader fetches a topic's full question pool from a backing store.
type PoolLoader interface {
	LoadPool(ctx context.Context, topicID string) ([]domain.Question, error)
}

// QuestionCache keeps each topic's question pool in Redis (JSON per topic)
// and samples random questions from it, falling back to the loader on a
// cache miss. Cache fills are deduplicated with singleflight.
type QuestionCache struct {
	client *redis.Client
	loader PoolLoader
	ttl    time.Duration
	sf     singleflight.Group
}

func NewQuestionCache(client *redis.Client, loader PoolLoader, ttl time.Duration) *QuestionCache {
	return &QuestionCache{client: client, loader: loader, ttl: ttl}
}

func (c *QuestionCache) Questions(ctx context.Context, topicID string, n int) ([]domain.Question, error) {
	pool, err := c.pool(ctx, topicID)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, domain.ErrNoQuestions
	}
	rand.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if n > len(pool) {
		n = len(pool)
	}
	return pool[:n], nil
}

func (c *QuestionCache) OneQuestion(ctx context.Context, topicID string, exclude []int64) (domain.Question, error) {
	pool, err := c.pool(ctx, topicID)
	if err != nil {
		return domain.Question{}, err
	}
	used := make(map[int64]bool, len(exclude))
	for _, id := range exclude {
		used[id] = true
	}
	fresh := pool[:0]
	for _, q := range pool {
		if !used[q.ID] {
			fresh = append(fresh, q)
		}
	}
	if len(fresh) == 0 {
		return domain.Question{}, domain.ErrNoQuestions
	}
	return fresh[rand.Intn(len(fresh))], nil
}

func (c *QuestionCache) pool(ctx context.Context, topicID string) ([]domain.Question, error) {
	key := c.key(topicID)

	if pool, ok := c.cached(ctx, key); ok {
		return pool, nil
	}

	result, err, _ := c.sf.Do(topicID, func() (interface{}, error) {
		// Re-check in case another goroutine filled it.
		if pool, ok := c.cached(ctx, key); ok {
			return pool, nil
		}

		pool, err := c.loader.LoadPool(ctx, topicID)
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(pool)
		if err != nil {
			return nil, err
		}
		_ = c.client.Set(ctx, key, data, c.ttlWithJitter()).Err()
		return pool, nil
	})
	if err != nil {
		return nil, err
	}
	pool := result.([]domain.Question)
	out := make([]domain.Question, len(pool))
	copy(out, pool)
	return out, nil
}

func (c *QuestionCache) cached(ctx context.Context, key string) ([]domain.Question, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil || len(data) == 0 {
		return nil, false
	}
	var pool []domain.Question
	if err := json.Unmarshal(data, &pool); err != nil {
		return nil, false
	}
	return pool, true
}

func (c *QuestionCache) key(topicID string) string {
	return "topic:" + topicID + ":questions"
}

func (c *QuestionCache) ttlWithJitter() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	// up to 10% jitter to spread expirations
	jitterMax := int64(c.ttl) / 10
	return c.ttl + time.Duration(rand.Int63n(jitterMax+1))
}
