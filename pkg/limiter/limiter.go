package limiter

import (
	"sync"
	"time"
)

// MemoryLimiter is a process-local sliding-window counter keyed by an
// arbitrary string (usually the client IP).
type MemoryLimiter struct {
	mu      sync.Mutex
	history map[string][]time.Time
	window  time.Duration
	max     int
	now     func() time.Time
}

func NewMemoryLimiter(window time.Duration, max int) *MemoryLimiter {
	return &MemoryLimiter{
		history: make(map[string][]time.Time),
		window:  window,
		max:     max,
		now:     time.Now,
	}
}

// TooMany reports whether key already used up its allowance for the window.
func (r *MemoryLimiter) TooMany(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.prune(key, r.now())) >= r.max
}

// Hit records one occurrence for key.
func (r *MemoryLimiter) Hit(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.history[key] = append(r.history[key], r.now())
}

// Allow records a hit and reports true when key is still within its
// allowance. Rejected attempts are not recorded.
func (r *MemoryLimiter) Allow(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	hits := r.prune(key, now)

	if len(hits) >= r.max {
		return false
	}

	r.history[key] = append(hits, now)

	return true
}

// prune must be called with mu held.
func (r *MemoryLimiter) prune(key string, now time.Time) []time.Time {
	slice := r.history[key]
	pruned := slice[:0]

	for _, t := range slice {
		if now.Sub(t) <= r.window {
			pruned = append(pruned, t)
		}
	}

	if len(pruned) == 0 {
		delete(r.history, key)
		return nil
	}

	r.history[key] = pruned

	return pruned
}
