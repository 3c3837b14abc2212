package ratelimit

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/plateahq/Platea_Backend/internal/utils"
)

// staleAfter is how long an inactive limiter is kept before eviction.
const staleAfter = 10 * time.Minute

// Store manages rate limiters for multiple clients. Eviction of stale
// limiters happens lazily on access, no background timers.
type Store struct {
	// limiters maps client identifiers to their rate limiters
	limiters map[string]*Limiter

	// rates defines different rate limits for different endpoint categories
	rates map[string]Rate

	// mu protects concurrent access to the limiters map
	mu sync.Mutex

	// evictThreshold is the map size above which stale limiters are swept
	evictThreshold int
}

// NewStore creates a new store for managing rate limiters.
func NewStore(defaultRate Rate) *Store {
	store := &Store{
		limiters:       make(map[string]*Limiter),
		rates:          make(map[string]Rate),
		evictThreshold: 1024,
	}
	store.rates["default"] = defaultRate
	return store
}

// SetRate sets a rate limit for a specific category.
func (s *Store) SetRate(category string, rate Rate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rates[category] = rate
}

// GetLimiter returns a rate limiter for the specified client, creating one
// if it doesn't exist yet.
func (s *Store) GetLimiter(clientID string, category string) *Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := category + ":" + clientID
	if limiter, exists := s.limiters[key]; exists {
		return limiter
	}

	if len(s.limiters) >= s.evictThreshold {
		s.evictStale()
	}

	rate, exists := s.rates[category]
	if !exists {
		rate = s.rates["default"]
	}

	limiter := NewLimiter(rate.RequestsPerSecond, rate.Burst)
	s.limiters[key] = limiter
	return limiter
}

// evictStale removes limiters that have been idle past the staleness window.
// Callers must hold s.mu.
func (s *Store) evictStale() {
	cutoff := time.Now().Add(-staleAfter)
	for key, limiter := range s.limiters {
		if limiter.LastSeen().Before(cutoff) {
			delete(s.limiters, key)
		}
	}
}

// Len reports the number of tracked limiters.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.limiters)
}

// Middleware returns an HTTP middleware that applies the store's rate limit
// for the given category, keyed by client IP.
func Middleware(store *Store, category string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientIP := r.RemoteAddr
			if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
				clientIP = host
			}

			if !store.GetLimiter(clientIP, category).Allow() {
				utils.TooManyRequests(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
