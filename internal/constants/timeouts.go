package constants

import "time"

// Server Timeouts
const (
	DefaultReadTimeout     = 5 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
	DefaultIdleTimeout     = 120 * time.Second
)

// Authentication Timeouts
const (
	// DefaultJWTExpiry is the fixed lifetime of issued auth tokens. Revocation
	// entries never outlive this window.
	DefaultJWTExpiry = 2 * time.Hour
)
