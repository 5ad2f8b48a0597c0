package cache

import (
	"context"
	"sync"
	"time"

	"github.com/talenttrek/backend/internal/application/questions"
)

// InMemoryQuestionCache is a process-local QuestionCache for tests and
// single-instance development setups.
type InMemoryQuestionCache struct {
	mu      sync.RWMutex
	entries map[string]inMemoryQuestionEntry
}

type inMemoryQuestionEntry struct {
	questions []questions.Question
	expiresAt time.Time
}

// NewInMemoryQuestionCache creates a new in-memory question cache
func NewInMemoryQuestionCache() *InMemoryQuestionCache {
	return &InMemoryQuestionCache{
		entries: make(map[string]inMemoryQuestionEntry),
	}
}

// Get returns the cached question set for the key, if present and unexpired
func (c *InMemoryQuestionCache) Get(_ context.Context, key string) ([]questions.Question, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	if time.Now().After(entry.expiresAt) {
		delete(c.entries, key)
		return nil, false, nil
	}
	return entry.questions, true, nil
}

// Set stores the question set under the key with a TTL
func (c *InMemoryQuestionCache) Set(_ context.Context, key string, qs []questions.Question, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = inMemoryQuestionEntry{
		questions: qs,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}
