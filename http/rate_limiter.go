package http

import (
	"sync"
	"time"
)

// RateLimiter admits up to limit requests per client in each fixed window.
// Windows are aligned to multiples of the window length, so every client
// rolls over at the same instant and stale counters can be swept then.
type RateLimiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	start  time.Time
	counts map[string]int
	now    func() time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return newRateLimiter(limit, window, time.Now)
}

func newRateLimiter(limit int, window time.Duration, now func() time.Time) *RateLimiter {
	return &RateLimiter{
		limit:  limit,
		window: window,
		counts: make(map[string]int),
		now:    now,
	}
}

// Allow records a request from client. When the client is over its limit it
// reports false and how long until the current window closes.
func (r *RateLimiter) Allow(client string) (bool, time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if start := now.Truncate(r.window); !start.Equal(r.start) {
		r.start = start
		clear(r.counts)
	}

	if r.counts[client] >= r.limit {
		return false, r.start.Add(r.window).Sub(now)
	}
	r.counts[client]++
	return true, 0
}

// Limit is the number of requests a client may make per window.
func (r *RateLimiter) Limit() int { return r.limit }
