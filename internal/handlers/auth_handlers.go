// Package handlers implements the HTTP layer of the Platea API. Handlers
// decode and validate requests, delegate to the service layer and translate
// its results into the standard response envelope. No business rules live
// here.
package handlers

import (
	"net/http"
	"time"

	"github.com/plateahq/Platea_Backend/internal/auth"
	"github.com/plateahq/Platea_Backend/internal/constants"
	"github.com/plateahq/Platea_Backend/internal/models"
	"github.com/plateahq/Platea_Backend/internal/utils"
)

// AuthHandler handles authentication endpoints: signup, login, logout and the
// current-user lookup.
type AuthHandler struct {
	authService AuthManager
	tokenExpiry time.Duration
}

// NewAuthHandler creates a new AuthHandler. tokenExpiry drives the lifetime
// of the auth cookie and the expires_in field of login responses; it must
// match the lifetime of the tokens the service issues.
func NewAuthHandler(authService AuthManager, tokenExpiry time.Duration) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		tokenExpiry: tokenExpiry,
	}
}

// Register handles POST /api/auth/signup.
// It creates a new account and returns its identity. The new user is not
// logged in by this call; clients follow up with a login request.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegistrationRequest
	// Decode only: the service runs the field rules itself, in a fixed
	// order, so the reported violation is deterministic.
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	user, err := h.authService.RegisterUser(r.Context(), &req)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusCreated, map[string]interface{}{
		"id":    user.ID,
		"email": user.Email,
	})
}

// Login handles POST /api/auth/login.
// On success the bearer token travels in an HttpOnly cookie rather than the
// response body, keeping it out of reach of page scripts.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	user, token, err := h.authService.LoginUser(r.Context(), req.Email, req.Password)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	h.setAuthCookie(w, token, h.tokenExpiry)

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"user":       user,
		"token_type": "Bearer",
		"expires_in": int(h.tokenExpiry.Seconds()),
	})
}

// GetCurrentUser handles GET /api/users/me.
// The route is wrapped in auth.RequireAuth, so the user is already resolved
// and stored in the request context by the time this runs.
func (h *AuthHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.GetUser(r)
	if !ok {
		utils.Unauthorized(w, "")
		return
	}

	utils.JSON(w, http.StatusOK, user)
}

// Logout handles POST /api/auth/logout.
// The presented token is revoked for the remainder of its lifetime and the
// auth cookie is cleared. Logout is idempotent: repeating it, or calling it
// without a usable token, still reports success.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := auth.ExtractToken(r)

	if err := h.authService.Logout(r.Context(), token); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	h.clearAuthCookie(w)

	utils.JSON(w, http.StatusOK, map[string]string{
		"message": constants.MsgLogoutSuccess,
	})
}

// setAuthCookie attaches the bearer token to the response as a hardened
// session cookie.
func (h *AuthHandler) setAuthCookie(w http.ResponseWriter, token string, expiry time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     constants.AuthTokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(expiry.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}

// clearAuthCookie expires the auth cookie immediately.
func (h *AuthHandler) clearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     constants.AuthTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}
