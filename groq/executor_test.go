package groq

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careercopilot/backend/keypool"
)

// scriptedClient returns canned results in order, recording which keys were
// used for each attempt.
type scriptedClient struct {
	results []CallResult
	keys    []string
}

func (c *scriptedClient) Complete(_ context.Context, apiKey, _, _ string) CallResult {
	c.keys = append(c.keys, apiKey)
	if len(c.results) == 0 {
		return CallResult{Outcome: OutcomeFailed, Err: errors.New("script exhausted")}
	}
	result := c.results[0]
	c.results = c.results[1:]
	return result
}

func throttled() CallResult {
	return CallResult{Outcome: OutcomeThrottled, Err: errors.New("rate limited: HTTP 429")}
}

func success(text string) CallResult {
	return CallResult{Outcome: OutcomeSuccess, Text: text}
}

func failed(msg string) CallResult {
	return CallResult{Outcome: OutcomeFailed, Err: errors.New(msg)}
}

func TestExecuteSuccessFirstAttempt(t *testing.T) {
	pool := keypool.NewPool([]string{"k1", "k2"})
	client := &scriptedClient{results: []CallResult{success("hello")}}
	exec := NewExecutor(pool, client, time.Minute)

	text, err := exec.Execute(context.Background(), "sys", "prompt")
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
	assert.Len(t, client.keys, 1)
	assert.Equal(t, 2, pool.AvailableCount())
}

func TestExecuteRotatesOnThrottle(t *testing.T) {
	pool := keypool.NewPool([]string{"a", "b"})
	client := &scriptedClient{results: []CallResult{throttled(), success("from b")}}
	exec := NewExecutor(pool, client, time.Minute)

	text, err := exec.Execute(context.Background(), "sys", "prompt")
	require.NoError(t, err)
	assert.Equal(t, "from b", text)

	// Two attempts with two distinct keys; the throttled one is cooling down.
	require.Len(t, client.keys, 2)
	assert.NotEqual(t, client.keys[0], client.keys[1])
	assert.Equal(t, 1, pool.AvailableCount())
	assert.Equal(t, 2, pool.Stats().TotalCalls)
}

func TestExecuteRetriesExhausted(t *testing.T) {
	const n = 3
	keys := make([]string, n)
	results := make([]CallResult, n)
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%d", i)
		results[i] = throttled()
	}

	pool := keypool.NewPool(keys)
	client := &scriptedClient{results: results}
	exec := NewExecutor(pool, client, time.Minute)

	_, err := exec.Execute(context.Background(), "sys", "prompt")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRetriesExhausted)
	assert.Len(t, client.keys, n, "exactly one attempt per key")
	assert.Equal(t, 0, pool.AvailableCount(), "every key must be on cooldown")
}

func TestExecuteUpstreamErrorNoRotation(t *testing.T) {
	pool := keypool.NewPool([]string{"a", "b", "c"})
	client := &scriptedClient{results: []CallResult{failed("HTTP 400: bad request")}}
	exec := NewExecutor(pool, client, time.Minute)

	_, err := exec.Execute(context.Background(), "sys", "prompt")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstream)
	assert.Len(t, client.keys, 1, "non-throttling failures must not be retried")
}

func TestExecuteNoCredentials(t *testing.T) {
	pool := keypool.NewPool(nil)
	client := &scriptedClient{}
	exec := NewExecutor(pool, client, time.Minute)

	_, err := exec.Execute(context.Background(), "sys", "prompt")
	assert.ErrorIs(t, err, ErrNoCredentials)
	assert.Empty(t, client.keys, "no call without a credential")
}

func TestExecutePoolExhausted(t *testing.T) {
	pool := keypool.NewPool([]string{"a"})
	// Put the only key on a long cooldown before executing.
	pool.ReleaseThrottled("a", time.Hour)

	client := &scriptedClient{}
	exec := NewExecutor(pool, client, time.Minute)

	_, err := exec.Execute(context.Background(), "sys", "prompt")
	assert.ErrorIs(t, err, ErrPoolExhausted)
	assert.Empty(t, client.keys)
}
