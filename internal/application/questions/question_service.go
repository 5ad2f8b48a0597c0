package questions

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/talenttrek/backend/internal/domain/shared"
)

// Question is a single generated interview question
type Question struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
}

// Generator produces interview questions for a job title. Implemented by
// the infrastructure layer against an external LLM API.
type Generator interface {
	Generate(ctx context.Context, jobTitle string) ([]Question, error)
}

// QuestionCache caches generated question sets keyed by normalized job
// title so repeated requests skip the upstream call.
type QuestionCache interface {
	Get(ctx context.Context, key string) ([]Question, bool, error)
	Set(ctx context.Context, key string, questions []Question, ttl time.Duration) error
}

// ErrUpstream indicates the external generation service failed
var ErrUpstream = shared.NewDomainError("UPSTREAM_ERROR", "Question generation service is unavailable")

// QuestionService generates interview preparation questions for students
type QuestionService struct {
	generator Generator
	cache     QuestionCache
	cacheTTL  time.Duration
	logger    *zap.Logger
}

// NewQuestionService creates a new QuestionService
func NewQuestionService(generator Generator, cache QuestionCache, cacheTTL time.Duration, logger *zap.Logger) *QuestionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cacheTTL <= 0 {
		cacheTTL = time.Hour
	}
	return &QuestionService{
		generator: generator,
		cache:     cache,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// Generate returns interview questions for the given job title. Results
// are cached per normalized title; a cache failure never blocks the
// request.
func (s *QuestionService) Generate(ctx context.Context, jobTitle string) ([]Question, error) {
	title := strings.TrimSpace(jobTitle)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_JOB_TITLE", "Job title is required")
	}

	key := NormalizeTitle(title)

	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.Warn("question cache read failed", zap.Error(err))
		} else if ok {
			return cached, nil
		}
	}

	generated, err := s.generator.Generate(ctx, title)
	if err != nil {
		s.logger.Error("question generation failed",
			zap.String("job_title", title),
			zap.Error(err))
		return nil, ErrUpstream
	}
	if len(generated) == 0 {
		return nil, ErrUpstream
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, generated, s.cacheTTL); err != nil {
			s.logger.Warn("question cache write failed", zap.Error(err))
		}
	}

	return generated, nil
}

// NormalizeTitle collapses whitespace and lowercases a job title so that
// "Software  Engineer" and "software engineer" share a cache entry.
func NormalizeTitle(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), " ")
}
