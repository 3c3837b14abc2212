package constants

// Context Key Names
const (
	UserIDContextKey    = "user_id"
	EmailContextKey     = "email"
	UserContextKey      = "user"
	RequestIDContextKey = "request_id"
)

// Cookie Names
const (
	// AuthTokenCookie carries the bearer token between requests. It is set
	// HttpOnly so it is never script-accessible.
	AuthTokenCookie = "auth_token"
)

// Validation Limits define the boundaries enforced by the input validators.
const (
	MinPasswordLength = 8
	MaxEmailLength    = 254
	MinNameLength     = 2
	MaxNameLength     = 50
	MinPhoneLength    = 7
	MaxPhoneLength    = 20

	// MaxSanitizedLength is the length sanitized strings are truncated to
	// before persistence.
	MaxSanitizedLength = 255
)

// PasswordSymbolSet is the fixed set of characters that count as the symbol
// requirement in password strength validation.
const PasswordSymbolSet = "!@#$%^&*()_+=-[]{}|;:,.<>?/"

// Rate Limit Categories name the endpoint groups with their own limits.
const (
	// RateCategoryAuth covers the signup, login and logout endpoints.
	RateCategoryAuth = "auth"
)

// Account Roles define the closed set of roles a registered account may hold.
const (
	RoleOwner   = "owner"
	RoleManager = "manager"
	RoleStaff   = "staff"
)
