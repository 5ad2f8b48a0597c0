// Package questiongen calls an OpenAI-compatible chat completions API to
// generate interview questions for a job title.
package questiongen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/talenttrek/backend/internal/application/questions"
	"github.com/talenttrek/backend/internal/infrastructure/config"
)

const defaultModel = "gpt-4o-mini"

const systemPrompt = `You are an interview preparation assistant.
Given a job title, produce exactly 5 interview questions a candidate for
that role should practice. Return ONLY a JSON array of strings, no
markdown, no numbering, no extra text.`

// Ensure Client implements Generator
var _ questions.Generator = (*Client)(nil)

// Client is an HTTP client for an OpenAI-compatible chat completions endpoint
type Client struct {
	apiURL     string
	apiKey     string
	model      string
	httpClient *http.Client
	logger     *zap.Logger
}

// Option is a functional option for configuring Client
type Option func(*Client)

// WithLogger sets a custom logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithModel overrides the chat model
func WithModel(model string) Option {
	return func(c *Client) {
		c.model = model
	}
}

// WithHTTPClient replaces the underlying HTTP client (used in tests)
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new question generation client from configuration
func NewClient(cfg config.QuestionsConfig, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	c := &Client{
		apiURL:     strings.TrimSuffix(cfg.APIURL, "/"),
		apiKey:     cfg.APIKey,
		model:      defaultModel,
		httpClient: &http.Client{Timeout: timeout},
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Generate produces interview questions for the given job title
func (c *Client) Generate(ctx context.Context, jobTitle string) ([]questions.Question, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: "Job title: " + jobTitle},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build chat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chat completion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		c.logger.Warn("question generation upstream returned error",
			zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("chat completion returned HTTP %d", resp.StatusCode)
	}

	var cr chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return nil, fmt.Errorf("failed to decode chat response: %w", err)
	}
	if len(cr.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}

	return parseQuestions(cr.Choices[0].Message.Content)
}

// parseQuestions extracts the question list from the model output. The
// prompt asks for a JSON array of strings; models occasionally wrap it
// in a markdown fence or fall back to one question per line.
func parseQuestions(content string) ([]questions.Question, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var items []string
	if err := json.Unmarshal([]byte(content), &items); err != nil {
		// Fall back to line splitting
		for _, line := range strings.Split(content, "\n") {
			line = strings.TrimSpace(strings.TrimLeft(line, "-*0123456789. "))
			if line != "" {
				items = append(items, line)
			}
		}
	}

	result := make([]questions.Question, 0, len(items))
	for i, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		result = append(result, questions.Question{ID: i + 1, Question: item})
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("chat completion returned no usable questions")
	}
	return result, nil
}
