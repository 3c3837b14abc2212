package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/plateahq/Platea_Backend/internal/constants"
	"github.com/plateahq/Platea_Backend/internal/models"
	"github.com/plateahq/Platea_Backend/internal/utils"
)

// ContextKey is a custom type for context keys to prevent collisions.
type ContextKey string

// Context keys for storing authenticated user information and request metadata.
const (
	// UserContextKey is the context key for the authenticated user record.
	UserContextKey ContextKey = constants.UserContextKey

	// RequestIDContextKey is the context key for storing the unique request ID.
	RequestIDContextKey ContextKey = constants.RequestIDContextKey
)

// Authenticator resolves a bearer token to the account it belongs to. It is
// implemented by the auth service; the middleware depends only on this
// interface.
type Authenticator interface {
	AuthenticateToken(ctx context.Context, token string) (*models.User, error)
}

// ExtractToken pulls the bearer token from a request: the Authorization
// header takes precedence, with the auth cookie as fallback. Returns the
// empty string when no credential is present.
func ExtractToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, constants.BearerTokenPrefix) {
		return strings.TrimPrefix(header, constants.BearerTokenPrefix)
	}

	if cookie, err := r.Cookie(constants.AuthTokenCookie); err == nil {
		return cookie.Value
	}

	return ""
}

// RequireAuth returns a middleware that authenticates every request through
// the given Authenticator. Requests without a credential are rejected with a
// not-authenticated error; revoked, expired and tampered tokens each surface
// their own distinct error code.
func RequireAuth(authenticator Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractToken(r)
			if token == "" {
				utils.ErrorFromAppError(w, utils.NewMissingTokenError())
				return
			}

			user, err := authenticator.AuthenticateToken(r.Context(), token)
			if err != nil {
				utils.ErrorFromAppError(w, utils.ParseError(err))
				return
			}

			ctx := context.WithValue(r.Context(), UserContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestID returns a middleware that assigns each request a unique ID,
// stored in the context and echoed in the X-Request-ID response header.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = uuid.New().String()
			}

			w.Header().Set("X-Request-ID", requestID)
			ctx := context.WithValue(r.Context(), RequestIDContextKey, requestID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUser returns the authenticated user stored in the request context by
// RequireAuth.
func GetUser(r *http.Request) (*models.User, bool) {
	user, ok := r.Context().Value(UserContextKey).(*models.User)
	return user, ok
}

// GetRequestID returns the request ID stored in the request context.
func GetRequestID(r *http.Request) (string, bool) {
	requestID, ok := r.Context().Value(RequestIDContextKey).(string)
	return requestID, ok
}
