// Package ratelimit implements sliding-window admission control keyed by
// caller identity. State is process-local and not persisted; a multi-node
// deployment rate limits per instance.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter admits at most limit requests per key in any trailing window.
// The window boundary moves continuously with now, so this is a sliding
// window rather than fixed buckets. A single mutex guards the whole map:
// admission checks are serialized process-wide, which is acceptable at
// moderate request rates.
type Limiter struct {
	mu       sync.Mutex
	requests map[string][]time.Time
	limit    int
	window   time.Duration
}

// New creates a limiter allowing limit admissions per key per window.
func New(limit int, window time.Duration) *Limiter {
	if limit < 1 {
		limit = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &Limiter{
		requests: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
	}
}

// Admit reports whether a request for key may proceed at time now.
// Timestamps older than now-window are dropped first; a rejected request
// is not recorded and does not consume budget.
func (l *Limiter) Admit(key string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	windowStart := now.Add(-l.window)
	kept := l.requests[key][:0]
	for _, t := range l.requests[key] {
		if !t.Before(windowStart) {
			kept = append(kept, t)
		}
	}

	if len(kept) >= l.limit {
		l.requests[key] = kept
		return false
	}

	l.requests[key] = append(kept, now)
	return true
}

// Sweep evicts keys whose every admission has fallen out of the window as
// of now. Without it a key that stops sending traffic would pin its entry
// forever.
func (l *Limiter) Sweep(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	windowStart := now.Add(-l.window)
	evicted := 0
	for key, times := range l.requests {
		stale := true
		for _, t := range times {
			if !t.Before(windowStart) {
				stale = false
				break
			}
		}
		if stale {
			delete(l.requests, key)
			evicted++
		}
	}
	return evicted
}

// Len returns the number of tracked keys.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.requests)
}
