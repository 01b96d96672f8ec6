// Package keypool mediates access to a fixed set of upstream API keys shared
// by concurrent callers. Keys that get rate-limited are put on a cooldown and
// skipped until the cooldown expires; acquisition prefers the least-used key
// so load spreads evenly across the pool.
package keypool

import (
	"log"
	"sync"
	"time"
)

// waitHorizon is the longest upcoming cooldown Acquire is willing to sleep out
// instead of reporting the pool as exhausted.
const waitHorizon = 5 * time.Second

// Pool manages a fixed set of API keys with per-key cooldown and usage state.
// The key set is fixed at construction; only cooldown and usage counters
// mutate afterwards, always under the mutex.
type Pool struct {
	mu        sync.Mutex
	keys      []string
	cooldowns map[string]time.Time
	usage     map[string]int

	// injectable for simulated-time tests
	now   func() time.Time
	sleep func(time.Duration)
}

// Stats is a point-in-time snapshot of pool state for observability.
type Stats struct {
	TotalKeys     int `json:"total_keys"`
	AvailableKeys int `json:"available_keys"`
	RateLimited   int `json:"rate_limited"`
	TotalCalls    int `json:"total_calls"`
}

// NewPool creates a pool over the given keys. Order is preserved and
// duplicates are dropped. An empty key list yields a pool whose Acquire
// always reports exhaustion without blocking.
func NewPool(keys []string) *Pool {
	p := &Pool{
		cooldowns: make(map[string]time.Time),
		usage:     make(map[string]int),
		now:       time.Now,
		sleep:     time.Sleep,
	}

	seen := make(map[string]bool)
	for _, key := range keys {
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		p.keys = append(p.keys, key)
		p.usage[key] = 0
	}

	log.Printf("[KeyPool] Loaded %d API key(s)", len(p.keys))
	return p
}

// Acquire returns the available key with the lowest usage count, ties broken
// by key order, and records the acquisition. When every key is cooling down
// but the soonest cooldown is within the wait horizon, Acquire sleeps until
// it expires and tries once more. Returns ("", false) when no key can be had.
func (p *Pool) Acquire() (string, bool) {
	// Bounded wait-then-retry: at most one sleep, never recursion.
	for retry := 0; ; retry++ {
		key, ok, wait := p.tryAcquire()
		if ok {
			return key, true
		}
		if wait <= 0 || retry >= 1 {
			return "", false
		}
		// The sleep happens with the lock released; the retry re-inspects
		// state from scratch since another caller may have taken the key.
		p.sleep(wait + 100*time.Millisecond)
	}
}

// tryAcquire performs one locked acquisition attempt. When nothing is
// available it reports how long until the soonest cooldown expires, or zero
// if that is beyond the wait horizon (or the pool is empty).
func (p *Pool) tryAcquire() (string, bool, time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()

	best := ""
	for _, key := range p.keys {
		if p.cooldowns[key].After(now) {
			continue
		}
		if best == "" || p.usage[key] < p.usage[best] {
			best = key
		}
	}

	if best != "" {
		p.usage[best]++
		return best, true, 0
	}

	var soonest time.Time
	for _, key := range p.keys {
		if cd := p.cooldowns[key]; cd.After(now) {
			if soonest.IsZero() || cd.Before(soonest) {
				soonest = cd
			}
		}
	}

	if !soonest.IsZero() && soonest.Sub(now) <= waitHorizon {
		return "", false, soonest.Sub(now)
	}
	return "", false, 0
}

// ReleaseSuccess records a successful call with the key. A future cooldown is
// cleared, treating the success as proof the throttle lifted early. Idempotent.
func (p *Pool) ReleaseSuccess(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if cd, ok := p.cooldowns[key]; ok && cd.After(p.now()) {
		delete(p.cooldowns, key)
	}
}

// ReleaseThrottled puts the key on cooldown for the given duration. A later
// call overwrites the previous cooldown in either direction (last write wins).
func (p *Pool) ReleaseThrottled(key string, cooldown time.Duration) {
	p.mu.Lock()
	p.cooldowns[key] = p.now().Add(cooldown)
	remaining := p.availableLocked()
	total := len(p.keys)
	p.mu.Unlock()

	log.Printf("[KeyPool] Key %s rate-limited for %s. %d/%d keys available.",
		redact(key), cooldown, remaining, total)
}

// AvailableCount returns the number of keys not currently on cooldown.
func (p *Pool) AvailableCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.availableLocked()
}

// TotalCount returns the size of the fixed key set.
func (p *Pool) TotalCount() int {
	return len(p.keys)
}

// Stats returns a snapshot of pool state.
func (p *Pool) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()

	available := p.availableLocked()
	calls := 0
	for _, n := range p.usage {
		calls += n
	}

	return Stats{
		TotalKeys:     len(p.keys),
		AvailableKeys: available,
		RateLimited:   len(p.keys) - available,
		TotalCalls:    calls,
	}
}

func (p *Pool) availableLocked() int {
	now := p.now()
	n := 0
	for _, key := range p.keys {
		if !p.cooldowns[key].After(now) {
			n++
		}
	}
	return n
}

// redact keeps key material out of logs.
func redact(key string) string {
	if len(key) <= 6 {
		return "..."
	}
	return "..." + key[len(key)-6:]
}
