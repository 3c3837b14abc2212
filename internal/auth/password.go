package auth

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher wraps bcrypt hashing and verification. bcrypt embeds a
// random per-call salt, so hashing the same password twice yields different
// hashes.
type PasswordHasher struct {
	cost  int
	decoy string
}

// NewPasswordHasher creates a PasswordHasher with the given cost factor.
// Out-of-range costs fall back to bcrypt's default.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	h := &PasswordHasher{cost: cost}

	// A fixed decoy hash lets login spend a real bcrypt comparison on the
	// account-not-found path, so response timing does not reveal whether an
	// email is registered.
	if decoy, err := h.Hash(uuid.NewString()); err == nil {
		h.decoy = decoy
	}

	return h
}

// Cost returns the configured bcrypt cost factor.
func (h *PasswordHasher) Cost() int {
	return h.cost
}

// Hash generates a salted bcrypt hash of the provided password.
func (h *PasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify compares a password with a stored hash. bcrypt's comparison does not
// short-circuit on the first mismatching byte. A malformed hash yields false,
// never an error.
func (h *PasswordHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// VerifyDecoy performs a comparison against the fixed decoy hash. It always
// returns false; its only purpose is to equalize the cost of the
// account-not-found login path with the password-mismatch path.
func (h *PasswordHasher) VerifyDecoy(password string) bool {
	return h.Verify(password, h.decoy)
}
