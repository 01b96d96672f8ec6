package utils

import (
	"crypto/tls"
	"net/http"
	"time"
)

// NewHTTPClient builds the client used for upstream LLM API calls. The pool
// is sized for a single upstream host hit by many concurrent analyses; the
// timeout is the per-attempt ceiling, retries are driven by the caller.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			TLSClientConfig:     &tls.Config{MinVersion: tls.VersionTLS12},
			MaxIdleConns:        50,
			MaxIdleConnsPerHost: 20,
			IdleConnTimeout:     2 * time.Minute,
			ForceAttemptHTTP2:   true,
		},
	}
}
