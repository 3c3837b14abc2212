// Package auth provides authentication primitives for the Platea API:
// token issuance and verification, password hashing, the token revocation
// store and the request authentication middleware.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/plateahq/Platea_Backend/internal/config"
	"github.com/plateahq/Platea_Backend/internal/utils"
)

// JWT errors
var (
	ErrMissingSecret        = errors.New("jwt signing secret is not configured")
	ErrInvalidSigningMethod = errors.New("invalid signing method")
)

// CustomClaims represents the claims in an auth token
type CustomClaims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// JWTService signs and verifies the bearer tokens issued at login. All
// timestamp decisions go through the injected clock so expiry boundaries can
// be tested deterministically.
type JWTService struct {
	config *config.JWTSettings
	now    func() time.Time
}

// NewJWTService creates a new JWTService instance. A missing signing secret
// is a fatal precondition: the constructor fails rather than issuing
// unsigned-in-effect tokens later.
func NewJWTService(cfg *config.JWTSettings) (*JWTService, error) {
	return NewJWTServiceWithClock(cfg, time.Now)
}

// NewJWTServiceWithClock creates a JWTService with an explicit clock.
func NewJWTServiceWithClock(cfg *config.JWTSettings, now func() time.Time) (*JWTService, error) {
	if cfg == nil || cfg.Secret == "" {
		return nil, ErrMissingSecret
	}
	if now == nil {
		now = time.Now
	}
	return &JWTService{
		config: cfg,
		now:    now,
	}, nil
}

// Expiry returns the fixed lifetime of issued tokens.
func (s *JWTService) Expiry() time.Duration {
	return s.config.Expiry
}

// GenerateToken issues a new signed token for a user. The expiry is always
// issued-at plus the configured fixed lifetime.
func (s *JWTService) GenerateToken(userID int64, email string) (string, error) {
	now := s.now()
	claims := CustomClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			Subject:   fmt.Sprintf("%d", userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Expiry)),
			NotBefore: jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken verifies a token's signature and expiry and returns its
// claims if valid. Expired and tampered tokens produce distinct errors so
// callers can react differently: expiry is an expected lifecycle event,
// a bad signature is not.
//
// Claim time checks run against the injected clock, not the library's, so
// the library's own claims validation is disabled during parsing.
func (s *JWTService) ValidateToken(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSigningMethod
		}
		return []byte(s.config.Secret), nil
	}, jwt.WithoutClaimsValidation())

	if err != nil || !token.Valid {
		return nil, utils.NewInvalidTokenError()
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok {
		return nil, utils.NewInvalidTokenError()
	}

	now := s.now()
	if claims.ExpiresAt == nil {
		return nil, utils.NewInvalidTokenError()
	}
	if !claims.ExpiresAt.After(now) {
		return nil, utils.NewExpiredTokenError()
	}
	if claims.NotBefore != nil && now.Before(claims.NotBefore.Time) {
		return nil, utils.NewInvalidTokenError()
	}

	return claims, nil
}

// RemainingLifetime reports how long a token has until its natural expiry,
// without verifying the signature. Logout uses this to size the revocation
// entry: revocation bookkeeping must never outlive the token it protects.
// Unparseable or already-expired tokens report zero.
func (s *JWTService) RemainingLifetime(tokenString string) time.Duration {
	var claims CustomClaims
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, &claims); err != nil {
		return 0
	}
	if claims.ExpiresAt == nil {
		return 0
	}

	remaining := claims.ExpiresAt.Sub(s.now())
	if remaining < 0 {
		return 0
	}
	return remaining
}
