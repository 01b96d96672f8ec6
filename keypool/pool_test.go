package keypool

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock drives the pool through simulated time so cooldown tests do not
// depend on the wall clock.
type fakeClock struct {
	mu  sync.Mutex
	cur time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{cur: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cur
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.cur = c.cur.Add(d)
	c.mu.Unlock()
}

// Sleep advances simulated time instead of blocking.
func (c *fakeClock) Sleep(d time.Duration) {
	c.Advance(d)
}

func newTestPool(t *testing.T, keys ...string) (*Pool, *fakeClock) {
	t.Helper()
	p := NewPool(keys)
	clock := newFakeClock()
	p.now = clock.Now
	p.sleep = clock.Sleep
	return p, clock
}

func TestAcquireRoundRobinFairness(t *testing.T) {
	for _, n := range []int{1, 3, 5} {
		t.Run(fmt.Sprintf("%d_keys", n), func(t *testing.T) {
			keys := make([]string, n)
			for i := range keys {
				keys[i] = fmt.Sprintf("key-%d", i)
			}
			pool, _ := newTestPool(t, keys...)

			// N acquisitions with no failures must hand out N distinct keys.
			got := make(map[string]bool)
			for i := 0; i < n; i++ {
				key, ok := pool.Acquire()
				require.True(t, ok)
				assert.False(t, got[key], "key %s handed out twice in first round", key)
				got[key] = true
			}
			assert.Len(t, got, n)
		})
	}
}

func TestAcquireStableTieBreak(t *testing.T) {
	pool, _ := newTestPool(t, "a", "b", "c")

	// All usage counts equal, so iteration order decides.
	key, ok := pool.Acquire()
	require.True(t, ok)
	assert.Equal(t, "a", key)

	key, ok = pool.Acquire()
	require.True(t, ok)
	assert.Equal(t, "b", key)
}

func TestAcquireEmptyPool(t *testing.T) {
	pool, _ := newTestPool(t)

	start := time.Now()
	key, ok := pool.Acquire()
	assert.False(t, ok)
	assert.Empty(t, key)
	assert.Less(t, time.Since(start), time.Second, "empty pool must not block")
	assert.Equal(t, 0, pool.TotalCount())
	assert.Equal(t, 0, pool.AvailableCount())
}

func TestThrottledKeyUnavailableUntilCooldownExpires(t *testing.T) {
	pool, clock := newTestPool(t, "only")

	pool.ReleaseThrottled("only", 60*time.Second)
	assert.Equal(t, 0, pool.AvailableCount())

	// 54s in: still cooling down, 6s of relief is beyond the 5s horizon.
	clock.Advance(54 * time.Second)
	_, ok := pool.Acquire()
	assert.False(t, ok)

	clock.Advance(6 * time.Second)
	key, ok := pool.Acquire()
	require.True(t, ok)
	assert.Equal(t, "only", key)
}

func TestAcquireWaitsOutShortCooldown(t *testing.T) {
	pool, clock := newTestPool(t, "only")

	pool.ReleaseThrottled("only", 60*time.Second)
	clock.Advance(57 * time.Second)

	// 3s remaining is within the wait horizon; the fake sleep advances the
	// clock, so the bounded retry succeeds.
	key, ok := pool.Acquire()
	require.True(t, ok)
	assert.Equal(t, "only", key)
}

func TestReleaseSuccessClearsPendingCooldown(t *testing.T) {
	pool, _ := newTestPool(t, "a", "b")

	pool.ReleaseThrottled("a", 60*time.Second)
	assert.Equal(t, 1, pool.AvailableCount())

	pool.ReleaseSuccess("a")
	assert.Equal(t, 2, pool.AvailableCount())

	// Idempotent: a second call changes nothing.
	pool.ReleaseSuccess("a")
	assert.Equal(t, 2, pool.AvailableCount())
}

func TestReleaseThrottledLastWriteWins(t *testing.T) {
	pool, clock := newTestPool(t, "only")

	pool.ReleaseThrottled("only", 120*time.Second)
	// A shorter cooldown reported later shortens the sentence.
	pool.ReleaseThrottled("only", 10*time.Second)

	clock.Advance(11 * time.Second)
	_, ok := pool.Acquire()
	assert.True(t, ok)
}

func TestAcquirePrefersLeastUsed(t *testing.T) {
	pool, _ := newTestPool(t, "a", "b")

	first, _ := pool.Acquire()
	second, _ := pool.Acquire()
	assert.NotEqual(t, first, second)

	// "a" throttled, "b" keeps absorbing traffic; once "a" recovers it has
	// the lower usage count and must be preferred.
	pool.ReleaseThrottled("a", 60*time.Second)
	for i := 0; i < 3; i++ {
		key, ok := pool.Acquire()
		require.True(t, ok)
		assert.Equal(t, "b", key)
	}

	pool.ReleaseSuccess("a")
	key, ok := pool.Acquire()
	require.True(t, ok)
	assert.Equal(t, "a", key)
}

func TestNewPoolDeduplicates(t *testing.T) {
	pool, _ := newTestPool(t, "a", "b", "a", "", "b")
	assert.Equal(t, 2, pool.TotalCount())
}

func TestStats(t *testing.T) {
	pool, _ := newTestPool(t, "a", "b", "c")

	pool.Acquire()
	pool.Acquire()
	pool.ReleaseThrottled("c", 60*time.Second)

	stats := pool.Stats()
	assert.Equal(t, 3, stats.TotalKeys)
	assert.Equal(t, 2, stats.AvailableKeys)
	assert.Equal(t, 1, stats.RateLimited)
	assert.Equal(t, 2, stats.TotalCalls)
}

func TestConcurrentAcquire(t *testing.T) {
	pool := NewPool([]string{"a", "b", "c", "d"})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				key, ok := pool.Acquire()
				if !ok {
					continue
				}
				if j%5 == 0 {
					pool.ReleaseThrottled(key, time.Millisecond)
				} else {
					pool.ReleaseSuccess(key)
				}
			}
		}()
	}
	wg.Wait()

	stats := pool.Stats()
	assert.Equal(t, 4, stats.TotalKeys)
	assert.Greater(t, stats.TotalCalls, 0)
}
