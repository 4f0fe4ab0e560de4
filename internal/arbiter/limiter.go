package arbiter

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// Limiter implements per-provider rate limiting. Keys are provider
// names; each provider gets its own token bucket so a slow free tier
// never starves a paid one.
type Limiter struct {
	limiters     map[string]*rate.Limiter
	mu           sync.RWMutex
	rates        map[string]rate.Limit
	defaultRate  rate.Limit
	defaultBurst int
}

// NewLimiter creates a new rate limiter. A zero requestsPerSecond means
// unlimited.
func NewLimiter(requestsPerSecond float64, burst int) *Limiter {
	if burst <= 0 {
		burst = 5
	}

	defaultRate := rate.Limit(requestsPerSecond)
	if requestsPerSecond <= 0 {
		defaultRate = rate.Inf
	}

	return &Limiter{
		limiters:     make(map[string]*rate.Limiter),
		rates:        make(map[string]rate.Limit),
		defaultRate:  defaultRate,
		defaultBurst: burst,
	}
}

// Wait waits for rate limit clearance for the given provider
func (l *Limiter) Wait(ctx context.Context, provider string) error {
	return l.getLimiter(provider).Wait(ctx)
}

// Allow checks if a request is allowed without waiting
func (l *Limiter) Allow(provider string) bool {
	return l.getLimiter(provider).Allow()
}

// SetProviderRate sets a custom rate limit for a specific provider
func (l *Limiter) SetProviderRate(provider string, requestsPerSecond float64, burst int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if burst <= 0 {
		burst = l.defaultBurst
	}

	limit := rate.Limit(requestsPerSecond)
	if requestsPerSecond <= 0 {
		limit = rate.Inf
	}

	l.rates[provider] = limit
	l.limiters[provider] = rate.NewLimiter(limit, burst)
}

// getLimiter returns the rate limiter for a provider
func (l *Limiter) getLimiter(provider string) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.limiters[provider]
	l.mu.RUnlock()

	if exists {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Double-check after acquiring write lock
	if limiter, exists := l.limiters[provider]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(l.defaultRate, l.defaultBurst)
	l.limiters[provider] = limiter

	return limiter
}
