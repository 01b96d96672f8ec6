package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowWithinLimit(t *testing.T) {
	l := NewLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		ok, _ := l.Allow("1.2.3.4")
		assert.True(t, ok, "request %d should pass", i+1)
	}

	ok, wait := l.Allow("1.2.3.4")
	assert.False(t, ok)
	assert.Greater(t, wait, time.Duration(0))
}

func TestAllowPerClientIsolation(t *testing.T) {
	l := NewLimiter(1, time.Minute)

	ok, _ := l.Allow("1.1.1.1")
	assert.True(t, ok)
	ok, _ = l.Allow("2.2.2.2")
	assert.True(t, ok)
	ok, _ = l.Allow("1.1.1.1")
	assert.False(t, ok)
}

func TestAllowWindowSlides(t *testing.T) {
	l := NewLimiter(2, time.Minute)
	now := time.Now()
	l.now = func() time.Time { return now }

	ok, _ := l.Allow("1.2.3.4")
	require.True(t, ok)
	ok, _ = l.Allow("1.2.3.4")
	require.True(t, ok)
	ok, _ = l.Allow("1.2.3.4")
	require.False(t, ok)

	now = now.Add(61 * time.Second)
	ok, _ = l.Allow("1.2.3.4")
	assert.True(t, ok)
}

func newLimitedRouter(l *Limiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/limited", l.Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestMiddlewareReturns429(t *testing.T) {
	r := newLimitedRouter(NewLimiter(1, time.Minute))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/limited", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "wait_seconds")
}

func TestMiddlewareUsesForwardedFor(t *testing.T) {
	r := newLimitedRouter(NewLimiter(1, time.Minute))

	first := httptest.NewRequest(http.MethodGet, "/limited", nil)
	first.Header.Set("X-Forwarded-For", "9.9.9.9, 10.0.0.1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, first)
	assert.Equal(t, http.StatusOK, w.Code)

	// Same forwarded client is limited even if the direct peer differs.
	second := httptest.NewRequest(http.MethodGet, "/limited", nil)
	second.Header.Set("X-Forwarded-For", "9.9.9.9")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, second)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// A different forwarded client is not.
	third := httptest.NewRequest(http.MethodGet, "/limited", nil)
	third.Header.Set("X-Forwarded-For", "8.8.8.8")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, third)
	assert.Equal(t, http.StatusOK, w.Code)
}
