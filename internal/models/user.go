package models

import (
	"strings"
	"time"
)

// User represents a registered account of the Platea application.
// It contains authentication information and core account attributes.
type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	RestaurantName string    `json:"restaurant_name"`
	Role           string    `json:"role"`
	Phone          string    `json:"phone,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewUser creates a new User instance. The password hash is populated later
// during the registration process, and the ID is assigned by the store.
func NewUser(email, firstName, lastName, restaurantName, role, phone string) *User {
	return &User{
		Email:          NormalizeEmail(email),
		FirstName:      firstName,
		LastName:       lastName,
		RestaurantName: restaurantName,
		Role:           role,
		Phone:          phone,
		CreatedAt:      time.Now(),
	}
}

// NormalizeEmail lowercases and trims an email address. Emails are stored
// and compared exclusively in this form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Sanitize removes sensitive information from the User object when sending to
// clients. The password hash must never be exposed to any caller.
func (u *User) Sanitize() *User {
	sanitized := *u
	sanitized.PasswordHash = ""
	return &sanitized
}

// RegistrationRequest represents the data required for account registration.
// Struct tags cover field presence and role membership; the detailed shape
// and strength rules are enforced by the service in a fixed order.
type RegistrationRequest struct {
	FirstName      string `json:"firstName" validate:"required"`
	LastName       string `json:"lastName" validate:"required"`
	Email          string `json:"email" validate:"required"`
	Password       string `json:"password" validate:"required"`
	RestaurantName string `json:"restaurantName" validate:"required"`
	Role           string `json:"role" validate:"required,oneof=owner manager staff"`
	Phone          string `json:"phone,omitempty" validate:"omitempty"`
}

// LoginRequest represents the login credentials provided by a user.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}
