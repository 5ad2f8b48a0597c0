package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talenttrek/backend/internal/application/questions"
)

func TestInMemoryQuestionCache_SetAndGet(t *testing.T) {
	c := NewInMemoryQuestionCache()
	ctx := context.Background()

	qs := []questions.Question{
		{ID: 1, Question: "Tell me about yourself."},
	}

	_, ok, err := c.Get(ctx, "software engineer")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "software engineer", qs, time.Minute))

	cached, ok, err := c.Get(ctx, "software engineer")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, qs, cached)
}

func TestInMemoryQuestionCache_Expiration(t *testing.T) {
	c := NewInMemoryQuestionCache()
	ctx := context.Background()

	qs := []questions.Question{{ID: 1, Question: "Why this role?"}}
	require.NoError(t, c.Set(ctx, "designer", qs, -time.Second))

	_, ok, err := c.Get(ctx, "designer")
	require.NoError(t, err)
	assert.False(t, ok)
}
