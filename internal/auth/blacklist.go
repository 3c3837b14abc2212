package auth

import (
	"sync"
	"time"
)

// TokenBlacklist records tokens that must be treated as invalid before their
// natural expiry, making "logout now" possible on top of otherwise stateless
// bearer tokens.
//
// Entries expire lazily: each lookup and insert compares stored deadlines
// against the injected clock instead of scheduling per-entry timers. A token
// whose blacklist entry has lapsed is moot anyway, because signature
// verification independently rejects it as expired.
//
// The store is safe for concurrent use. Growth is bounded by the number of
// distinct live tokens ever revoked; a multi-process deployment would need a
// shared cache behind the same interface.
type TokenBlacklist struct {
	mu      sync.Mutex
	entries map[string]time.Time
	now     func() time.Time
}

// NewTokenBlacklist creates an empty blacklist using the wall clock.
func NewTokenBlacklist() *TokenBlacklist {
	return NewTokenBlacklistWithClock(time.Now)
}

// NewTokenBlacklistWithClock creates an empty blacklist with an explicit clock.
func NewTokenBlacklistWithClock(now func() time.Time) *TokenBlacklist {
	if now == nil {
		now = time.Now
	}
	return &TokenBlacklist{
		entries: make(map[string]time.Time),
		now:     now,
	}
}

// Revoke records a token as revoked for the given remaining lifetime.
// Revoking an already-revoked token is a no-op that still succeeds. A
// non-positive ttl is ignored: an expired token needs no revocation
// bookkeeping.
func (b *TokenBlacklist) Revoke(token string, ttl time.Duration) {
	if token == "" || ttl <= 0 {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.purgeExpiredLocked()

	if _, exists := b.entries[token]; exists {
		return
	}
	b.entries[token] = b.now().Add(ttl)
}

// IsRevoked reports whether a token is currently revoked. Entries past their
// deadline are dropped on the way out.
func (b *TokenBlacklist) IsRevoked(token string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	deadline, exists := b.entries[token]
	if !exists {
		return false
	}

	if !deadline.After(b.now()) {
		delete(b.entries, token)
		return false
	}

	return true
}

// Len reports the number of live revocation entries, after purging lapsed
// ones.
func (b *TokenBlacklist) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.purgeExpiredLocked()
	return len(b.entries)
}

// purgeExpiredLocked removes lapsed entries. Callers must hold b.mu.
func (b *TokenBlacklist) purgeExpiredLocked() {
	now := b.now()
	for token, deadline := range b.entries {
		if !deadline.After(now) {
			delete(b.entries, token)
		}
	}
}
