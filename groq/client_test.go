package groq

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careercopilot/backend/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		GroqBaseURL:       server.URL,
		GroqModel:         "llama-3.3-70b-versatile",
		LLMTimeoutSeconds: 5,
	}
	return NewClient(cfg)
}

func TestCompleteSuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "/chat/completions", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": [{"message": {"content": "{\"ok\": true}"}}]}`))
	})

	result := client.Complete(context.Background(), "test-key", "system", "user")
	require.Equal(t, OutcomeSuccess, result.Outcome, "unexpected error: %v", result.Err)
	assert.Equal(t, `{"ok": true}`, result.Text)
}

func TestComplete429IsThrottled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	result := client.Complete(context.Background(), "k", "s", "u")
	assert.Equal(t, OutcomeThrottled, result.Outcome)
	assert.Error(t, result.Err)
}

func TestCompleteRateLimitBodyIsThrottled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error": {"message": "rate_limit_exceeded for model", "type": "tokens"}}`))
	})

	result := client.Complete(context.Background(), "k", "s", "u")
	assert.Equal(t, OutcomeThrottled, result.Outcome)
}

func TestCompleteClientErrorIsFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"message": "invalid model", "type": "invalid_request_error"}}`))
	})

	result := client.Complete(context.Background(), "k", "s", "u")
	assert.Equal(t, OutcomeFailed, result.Outcome)
	assert.Contains(t, result.Err.Error(), "400")
}

func TestCompleteEmptyChoicesIsFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	})

	result := client.Complete(context.Background(), "k", "s", "u")
	assert.Equal(t, OutcomeFailed, result.Outcome)
}

func TestCompleteTimeoutIsFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})
	client.httpClient.Timeout = 50 * time.Millisecond

	result := client.Complete(context.Background(), "k", "s", "u")
	assert.Equal(t, OutcomeFailed, result.Outcome, "timeouts are non-throttling failures")
}
