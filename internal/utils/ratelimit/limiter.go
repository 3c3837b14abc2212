// Package ratelimit provides rate limiting for the authentication endpoints.
// It implements the token bucket algorithm with configurable rates and
// capacities, one bucket per client identity.
package ratelimit

import (
	"sync"
	"time"
)

// Rate controls how many requests per second are allowed.
type Rate struct {
	// RequestsPerSecond defines how many tokens are added per second
	RequestsPerSecond float64

	// Burst defines the maximum size of the token bucket
	Burst int
}

// Limiter represents a rate limiter for a specific client identity.
// Tokens are added at a fixed rate and each request consumes one token.
type Limiter struct {
	tokens   float64
	lastTime time.Time
	lastSeen time.Time
	rate     float64
	capacity float64

	mu sync.Mutex
}

// NewLimiter creates a new rate limiter with the specified rate and burst capacity.
func NewLimiter(rate float64, burst int) *Limiter {
	now := time.Now()
	return &Limiter{
		tokens:   float64(burst),
		lastTime: now,
		lastSeen: now,
		rate:     rate,
		capacity: float64(burst),
	}
}

// Allow checks if a request should be allowed based on the rate limit.
func (l *Limiter) Allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(l.lastTime).Seconds()
	l.lastTime = now
	l.lastSeen = now

	l.tokens += elapsed * l.rate
	if l.tokens > l.capacity {
		l.tokens = l.capacity
	}

	if l.tokens < 1 {
		return false
	}

	l.tokens--
	return true
}

// LastSeen reports when the limiter last processed a request.
func (l *Limiter) LastSeen() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastSeen
}

// ResetTokens refills the bucket to capacity. Useful for tests.
func (l *Limiter) ResetTokens() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tokens = l.capacity
	l.lastTime = time.Now()
}
