package groq

import "errors"

var (
	// ErrNoCredentials means the pool was constructed with zero API keys.
	ErrNoCredentials = errors.New("no Groq API keys configured")

	// ErrPoolExhausted means every key is cooling down with no near-term relief.
	ErrPoolExhausted = errors.New("all API keys rate-limited")

	// ErrRetriesExhausted means every key was tried and every attempt throttled.
	ErrRetriesExhausted = errors.New("all API keys exhausted")

	// ErrUpstream marks a non-throttling upstream failure (bad request, auth,
	// server fault). Never retried: a different key cannot fix it.
	ErrUpstream = errors.New("upstream call failed")

	// ErrDecode means the response text is not valid JSON after fence stripping.
	ErrDecode = errors.New("response is not valid JSON")
)
