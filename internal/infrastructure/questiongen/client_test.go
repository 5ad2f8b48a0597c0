package questiongen

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talenttrek/backend/internal/infrastructure/config"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(config.QuestionsConfig{
		APIURL:  server.URL,
		APIKey:  "test-key",
		Timeout: 5 * time.Second,
	})
	return server, client
}

func chatReply(content string) map[string]any {
	return map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	}
}

func TestClient_Generate(t *testing.T) {
	t.Run("parses JSON array response", func(t *testing.T) {
		_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			var req chatRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Len(t, req.Messages, 2)
			assert.Contains(t, req.Messages[1].Content, "Software Engineer")

			_ = json.NewEncoder(w).Encode(chatReply(`["Q one?", "Q two?"]`))
		})

		result, err := client.Generate(context.Background(), "Software Engineer")

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, 1, result[0].ID)
		assert.Equal(t, "Q one?", result[0].Question)
		assert.Equal(t, 2, result[1].ID)
	})

	t.Run("strips markdown fences", func(t *testing.T) {
		_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(chatReply("```json\n[\"Fenced?\"]\n```"))
		})

		result, err := client.Generate(context.Background(), "Designer")

		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "Fenced?", result[0].Question)
	})

	t.Run("falls back to line splitting", func(t *testing.T) {
		_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(chatReply("1. First question?\n2. Second question?"))
		})

		result, err := client.Generate(context.Background(), "Designer")

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "First question?", result[0].Question)
	})

	t.Run("upstream HTTP error", func(t *testing.T) {
		_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		})

		_, err := client.Generate(context.Background(), "Designer")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 429")
	})

	t.Run("empty choices", func(t *testing.T) {
		_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
		})

		_, err := client.Generate(context.Background(), "Designer")

		assert.Error(t, err)
	})

	t.Run("context cancellation", func(t *testing.T) {
		_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_ = json.NewEncoder(w).Encode(chatReply(`["Late?"]`))
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.Generate(ctx, "Designer")

		assert.Error(t, err)
	})
}

func TestParseQuestions_Empty(t *testing.T) {
	_, err := parseQuestions("   ")
	assert.Error(t, err)
}
