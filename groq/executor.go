package groq

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/careercopilot/backend/keypool"
)

// Executor performs one logical upstream operation with pool-aware key
// rotation. It is stateless across calls; the pool is the only shared state.
type Executor struct {
	pool     *keypool.Pool
	client   CompletionClient
	cooldown time.Duration
}

// NewExecutor creates an executor over the given pool and client. cooldown is
// how long a key sits out after a throttled attempt.
func NewExecutor(pool *keypool.Pool, client CompletionClient, cooldown time.Duration) *Executor {
	if cooldown <= 0 {
		cooldown = 60 * time.Second
	}
	return &Executor{
		pool:     pool,
		client:   client,
		cooldown: cooldown,
	}
}

// Execute runs the prompt against the upstream, rotating keys on throttling.
// At most TotalCount attempts are made (one per key, and at least one so an
// unconfigured pool surfaces ErrNoCredentials instead of a silent no-op).
// Non-throttling failures propagate immediately: a malformed request fails
// the same way on every key.
func (e *Executor) Execute(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	attempts := e.pool.TotalCount()
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		key, ok := e.pool.Acquire()
		if !ok {
			if e.pool.TotalCount() == 0 {
				return "", ErrNoCredentials
			}
			if lastErr != nil {
				return "", fmt.Errorf("%w: %v", ErrPoolExhausted, lastErr)
			}
			return "", ErrPoolExhausted
		}

		result := e.client.Complete(ctx, key, systemPrompt, userPrompt)
		switch result.Outcome {
		case OutcomeSuccess:
			e.pool.ReleaseSuccess(key)
			return result.Text, nil

		case OutcomeThrottled:
			e.pool.ReleaseThrottled(key, e.cooldown)
			lastErr = result.Err
			log.Printf("[Executor] Key rate-limited, trying next key (attempt %d/%d)", attempt+1, attempts)

		default:
			return "", fmt.Errorf("%w: %v", ErrUpstream, result.Err)
		}
	}

	return "", fmt.Errorf("%w: last error: %v", ErrRetriesExhausted, lastErr)
}
