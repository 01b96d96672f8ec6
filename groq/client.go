// Package groq talks to the Groq chat-completions API (OpenAI wire format)
// and layers key rotation on top of a shared key pool, so several users can
// run analyses concurrently against a small set of free-tier keys.
package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/careercopilot/backend/config"
	"github.com/careercopilot/backend/utils"
)

// Outcome classifies one upstream call attempt.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeThrottled
	OutcomeFailed
)

// CallResult is the tagged result of a single attempt with a single key.
// The executor's rotation loop switches on Outcome instead of sniffing
// error strings.
type CallResult struct {
	Outcome Outcome
	Text    string
	Err     error
}

// CompletionClient is the single capability the executor needs from the
// upstream binding: one credential, one payload, one classified result.
type CompletionClient interface {
	Complete(ctx context.Context, apiKey, systemPrompt, userPrompt string) CallResult
}

// Client calls the Groq chat-completions endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	model      string
}

// NewClient creates a Groq client. The HTTP client timeout is the ceiling on
// a single upstream round trip; a hung request fails the attempt rather than
// hanging the caller's request.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient: utils.NewHTTPClient(time.Duration(cfg.LLMTimeoutSeconds) * time.Second),
		baseURL:    cfg.GroqBaseURL,
		model:      cfg.GroqModel,
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

// Complete performs one chat completion with the given key and classifies the
// result. HTTP 429 maps to OutcomeThrottled; other failures are terminal for
// the attempt.
func (c *Client) Complete(ctx context.Context, apiKey, systemPrompt, userPrompt string) CallResult {
	messages := []chatMessage{}
	if systemPrompt != "" {
		messages = append(messages, chatMessage{Role: "system", Content: systemPrompt})
	}
	messages = append(messages, chatMessage{Role: "user", Content: userPrompt})

	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: 0.7,
		MaxTokens:   2048,
	})
	if err != nil {
		return CallResult{Outcome: OutcomeFailed, Err: fmt.Errorf("failed to marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return CallResult{Outcome: OutcomeFailed, Err: fmt.Errorf("failed to build request: %w", err)}
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Timeouts and transport errors are non-throttling failures.
		return CallResult{Outcome: OutcomeFailed, Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return CallResult{Outcome: OutcomeThrottled, Err: fmt.Errorf("rate limited: HTTP 429")}
	}

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return CallResult{Outcome: OutcomeFailed, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		callErr := fmt.Errorf("HTTP %d: %s", resp.StatusCode, snippet(payload))
		// Last resort when the status gives no structured signal: some
		// providers tunnel throttling through error bodies.
		if looksThrottled(string(payload)) {
			return CallResult{Outcome: OutcomeThrottled, Err: callErr}
		}
		return CallResult{Outcome: OutcomeFailed, Err: callErr}
	}

	var parsed chatResponse
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return CallResult{Outcome: OutcomeFailed, Err: fmt.Errorf("failed to parse response: %w", err)}
	}
	if parsed.Error != nil {
		callErr := fmt.Errorf("upstream error: %s", parsed.Error.Message)
		if parsed.Error.Type == "rate_limit_exceeded" || looksThrottled(parsed.Error.Message) {
			return CallResult{Outcome: OutcomeThrottled, Err: callErr}
		}
		return CallResult{Outcome: OutcomeFailed, Err: callErr}
	}
	if len(parsed.Choices) == 0 {
		return CallResult{Outcome: OutcomeFailed, Err: fmt.Errorf("no choices in response")}
	}

	return CallResult{Outcome: OutcomeSuccess, Text: parsed.Choices[0].Message.Content}
}

func looksThrottled(msg string) bool {
	msg = strings.ToLower(msg)
	return strings.Contains(msg, "rate_limit") || strings.Contains(msg, "rate limit") || strings.Contains(msg, "429")
}

func snippet(b []byte) string {
	const max = 512
	if len(b) > max {
		b = b[:max]
	}
	return string(b)
}
