package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/talenttrek/backend/internal/application/questions"
)

// Ensure implementations satisfy the application interface
var (
	_ questions.QuestionCache = (*RedisQuestionCache)(nil)
	_ questions.QuestionCache = (*InMemoryQuestionCache)(nil)
)

// RedisQuestionCache implements QuestionCache using Redis. Question sets
// are stored as JSON under a normalized-title key.
type RedisQuestionCache struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisQuestionCache creates a question cache backed by the given Redis client
func NewRedisQuestionCache(client *redis.Client) *RedisQuestionCache {
	return &RedisQuestionCache{
		client:    client,
		keyPrefix: "questions:title:",
	}
}

// Get returns the cached question set for the key, if present
func (c *RedisQuestionCache) Get(ctx context.Context, key string) ([]questions.Question, bool, error) {
	raw, err := c.client.Get(ctx, c.keyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read question cache: %w", err)
	}

	var qs []questions.Question
	if err := json.Unmarshal(raw, &qs); err != nil {
		// Corrupt entry, treat as a miss so it gets overwritten
		return nil, false, nil
	}
	return qs, true, nil
}

// Set stores the question set under the key with a TTL
func (c *RedisQuestionCache) Set(ctx context.Context, key string, qs []questions.Question, ttl time.Duration) error {
	raw, err := json.Marshal(qs)
	if err != nil {
		return fmt.Errorf("failed to encode question cache entry: %w", err)
	}

	if err := c.client.Set(ctx, c.keyPrefix+key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write question cache: %w", err)
	}
	return nil
}
