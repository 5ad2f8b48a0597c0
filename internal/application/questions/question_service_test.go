package questions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/talenttrek/backend/internal/domain/shared"
)

// MockGenerator is a mock implementation of Generator
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, jobTitle string) ([]Question, error) {
	args := m.Called(ctx, jobTitle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Question), args.Error(1)
}

// MockQuestionCache is a mock implementation of QuestionCache
type MockQuestionCache struct {
	mock.Mock
}

func (m *MockQuestionCache) Get(ctx context.Context, key string) ([]Question, bool, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]Question), args.Bool(1), args.Error(2)
}

func (m *MockQuestionCache) Set(ctx context.Context, key string, questions []Question, ttl time.Duration) error {
	args := m.Called(ctx, key, questions, ttl)
	return args.Error(0)
}

func sampleQuestions() []Question {
	return []Question{
		{ID: 1, Question: "Tell me about yourself."},
		{ID: 2, Question: "Why do you want this role?"},
	}
}

func TestQuestionService_Generate(t *testing.T) {
	t.Run("generates and caches on miss", func(t *testing.T) {
		generator := new(MockGenerator)
		cache := new(MockQuestionCache)
		svc := NewQuestionService(generator, cache, time.Hour, nil)

		cache.On("Get", mock.Anything, "software engineer").Return(nil, false, nil)
		generator.On("Generate", mock.Anything, "Software Engineer").Return(sampleQuestions(), nil)
		cache.On("Set", mock.Anything, "software engineer", sampleQuestions(), time.Hour).Return(nil)

		result, err := svc.Generate(context.Background(), "Software Engineer")

		require.NoError(t, err)
		assert.Len(t, result, 2)
		generator.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("returns cached questions without calling generator", func(t *testing.T) {
		generator := new(MockGenerator)
		cache := new(MockQuestionCache)
		svc := NewQuestionService(generator, cache, time.Hour, nil)

		cache.On("Get", mock.Anything, "software engineer").Return(sampleQuestions(), true, nil)

		result, err := svc.Generate(context.Background(), "  Software   Engineer  ")

		require.NoError(t, err)
		assert.Len(t, result, 2)
		generator.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	})

	t.Run("cache read failure falls through to generator", func(t *testing.T) {
		generator := new(MockGenerator)
		cache := new(MockQuestionCache)
		svc := NewQuestionService(generator, cache, time.Hour, nil)

		cache.On("Get", mock.Anything, mock.Anything).Return(nil, false, assert.AnError)
		generator.On("Generate", mock.Anything, "Designer").Return(sampleQuestions(), nil)
		cache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		result, err := svc.Generate(context.Background(), "Designer")

		require.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("generator failure maps to upstream error", func(t *testing.T) {
		generator := new(MockGenerator)
		cache := new(MockQuestionCache)
		svc := NewQuestionService(generator, cache, time.Hour, nil)

		cache.On("Get", mock.Anything, mock.Anything).Return(nil, false, nil)
		generator.On("Generate", mock.Anything, mock.Anything).Return(nil, assert.AnError)

		_, err := svc.Generate(context.Background(), "Designer")

		assert.ErrorIs(t, err, ErrUpstream)
	})

	t.Run("empty generation result maps to upstream error", func(t *testing.T) {
		generator := new(MockGenerator)
		cache := new(MockQuestionCache)
		svc := NewQuestionService(generator, cache, time.Hour, nil)

		cache.On("Get", mock.Anything, mock.Anything).Return(nil, false, nil)
		generator.On("Generate", mock.Anything, mock.Anything).Return([]Question{}, nil)

		_, err := svc.Generate(context.Background(), "Designer")

		assert.ErrorIs(t, err, ErrUpstream)
	})

	t.Run("rejects blank job title", func(t *testing.T) {
		generator := new(MockGenerator)
		svc := NewQuestionService(generator, nil, time.Hour, nil)

		_, err := svc.Generate(context.Background(), "   ")

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_JOB_TITLE", domainErr.Code)
		generator.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	})

	t.Run("works without a cache", func(t *testing.T) {
		generator := new(MockGenerator)
		svc := NewQuestionService(generator, nil, time.Hour, nil)

		generator.On("Generate", mock.Anything, "Designer").Return(sampleQuestions(), nil)

		result, err := svc.Generate(context.Background(), "Designer")

		require.NoError(t, err)
		assert.Len(t, result, 2)
	})
}

func TestNormalizeTitle(t *testing.T) {
	assert.Equal(t, "software engineer", NormalizeTitle("  Software   ENGINEER "))
	assert.Equal(t, "designer", NormalizeTitle("Designer"))
}
