// Package ratelimit provides a per-client sliding window limiter for the
// expensive LLM endpoints.
package ratelimit

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Limiter tracks request timestamps per client IP.
type Limiter struct {
	mu       sync.Mutex
	history  map[string][]time.Time
	requests int
	window   time.Duration

	now func() time.Time
}

// NewLimiter allows `requests` per client within `window`.
func NewLimiter(requests int, window time.Duration) *Limiter {
	return &Limiter{
		history:  make(map[string][]time.Time),
		requests: requests,
		window:   window,
		now:      time.Now,
	}
}

// Allow reports whether a request from ip may proceed. When denied it also
// returns how long the client should wait.
func (l *Limiter) Allow(ip string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	recent := l.history[ip][:0]
	for _, t := range l.history[ip] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}

	if len(recent) >= l.requests {
		l.history[ip] = recent
		wait := l.window - now.Sub(recent[0])
		return false, wait
	}

	l.history[ip] = append(recent, now)
	return true, 0
}

// clientIP prefers the X-Forwarded-For header set by the hosting proxy.
func clientIP(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}
	return c.ClientIP()
}

// Middleware rejects requests over the limit with 429 and a wait hint.
func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, wait := l.Allow(clientIP(c))
		if !ok {
			seconds := int(wait.Seconds())
			if seconds < 1 {
				seconds = 1
			}
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":        "Too many requests",
				"message":      "Please slow down. You can try again in a moment.",
				"wait_seconds": seconds,
			})
			return
		}
		c.Next()
	}
}
