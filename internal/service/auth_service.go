// Package service implements the business logic of the Platea API.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/plateahq/Platea_Backend/internal/auth"
	"github.com/plateahq/Platea_Backend/internal/constants"
	"github.com/plateahq/Platea_Backend/internal/models"
	"github.com/plateahq/Platea_Backend/internal/repository"
	"github.com/plateahq/Platea_Backend/internal/utils"
)

// TokenRevoker is the revocation store contract the service depends on.
// The in-memory TokenBlacklist satisfies it; a shared cache could too.
type TokenRevoker interface {
	Revoke(token string, ttl time.Duration)
	IsRevoked(token string) bool
}

// AuthService orchestrates registration, login, token authentication and
// logout over the user store, the password hasher, the token codec and the
// revocation store.
type AuthService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	hasher     *auth.PasswordHasher
	revoked    TokenRevoker
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	userRepo repository.UserRepository,
	jwtService *auth.JWTService,
	hasher *auth.PasswordHasher,
	revoked TokenRevoker,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		hasher:     hasher,
		revoked:    revoked,
	}
}

// RegisterUser creates a new account. Validation runs in a fixed order and
// short-circuits on the first violated rule: email shape, password strength,
// first name, last name, restaurant name, phone, role. Phone is validated on
// the raw input so injection attempts are rejected outright rather than
// silently neutralized by sanitization.
func (s *AuthService) RegisterUser(ctx context.Context, reg *models.RegistrationRequest) (*models.User, error) {
	if result := utils.ValidateEmail(models.NormalizeEmail(reg.Email)); !result.Valid {
		return nil, utils.NewValidationError("email", result.Reason)
	}
	if result := utils.ValidatePassword(reg.Password); !result.Valid {
		return nil, utils.NewValidationError("password", result.Reason)
	}
	if result := utils.ValidateName(reg.FirstName); !result.Valid {
		return nil, utils.NewValidationError("firstName", result.Reason)
	}
	if result := utils.ValidateName(reg.LastName); !result.Valid {
		return nil, utils.NewValidationError("lastName", result.Reason)
	}
	if result := utils.ValidateName(reg.RestaurantName); !result.Valid {
		return nil, utils.NewValidationError("restaurantName", result.Reason)
	}
	if result := utils.ValidatePhone(reg.Phone); !result.Valid {
		return nil, utils.NewValidationError("phone", result.Reason)
	}
	if !isValidRole(reg.Role) {
		return nil, utils.NewValidationError("role", fmt.Sprintf("Role must be one of: %s, %s, %s",
			constants.RoleOwner, constants.RoleManager, constants.RoleStaff))
	}

	email := models.NormalizeEmail(reg.Email)

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, utils.NewInternalServerErrorWithMessage(constants.MsgRegistrationFailed, err)
	}
	if exists {
		// Generic conflict only: which attribute collided is not disclosed.
		return nil, utils.NewDuplicateError(constants.MsgAccountConflict)
	}

	passwordHash, err := s.hasher.Hash(reg.Password)
	if err != nil {
		return nil, utils.NewInternalServerErrorWithMessage(constants.MsgRegistrationFailed, err)
	}

	user := models.NewUser(
		email,
		utils.SanitizeString(reg.FirstName),
		utils.SanitizeString(reg.LastName),
		utils.SanitizeString(reg.RestaurantName),
		reg.Role,
		utils.SanitizeString(reg.Phone),
	)
	user.PasswordHash = passwordHash

	if err := s.userRepo.Create(ctx, user); err != nil {
		if utils.IsDuplicateError(err) {
			// Lost a race against a concurrent registration for the same email.
			return nil, utils.NewDuplicateError(constants.MsgAccountConflict)
		}
		return nil, utils.NewInternalServerErrorWithMessage(constants.MsgRegistrationFailed, err)
	}

	utils.LogAuth(constants.LogEventRegister, fmt.Sprintf("%d", user.ID), user.Email, true, "")

	return user.Sanitize(), nil
}

// LoginUser verifies credentials and issues a bearer token. Every failure —
// malformed email, unknown account, wrong password — returns the identical
// error value so callers cannot distinguish them. The unknown-account path
// still performs a bcrypt comparison (against a decoy hash) so its timing
// matches the wrong-password path.
func (s *AuthService) LoginUser(ctx context.Context, email, password string) (*models.User, string, error) {
	normalized := models.NormalizeEmail(email)

	if result := utils.ValidateEmail(normalized); !result.Valid {
		return nil, "", utils.NewInvalidCredentialsError(constants.MsgInvalidCredentials)
	}

	user, err := s.userRepo.GetByEmail(ctx, normalized)
	if err != nil {
		if utils.IsNotFoundError(err) {
			s.hasher.VerifyDecoy(password)
			utils.LogAuth(constants.LogEventLogin, "0", normalized, false, "user not found")
			return nil, "", utils.NewInvalidCredentialsError(constants.MsgInvalidCredentials)
		}
		return nil, "", utils.NewInternalServerErrorWithMessage(constants.MsgLoginFailed, err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		utils.LogAuth(constants.LogEventLogin, fmt.Sprintf("%d", user.ID), user.Email, false, "invalid password")
		return nil, "", utils.NewInvalidCredentialsError(constants.MsgInvalidCredentials)
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", utils.NewInternalServerErrorWithMessage(constants.MsgLoginFailed, err)
	}

	utils.LogAuth(constants.LogEventLogin, fmt.Sprintf("%d", user.ID), user.Email, true, "")

	return user.Sanitize(), token, nil
}

// AuthenticateToken resolves a bearer token to its account. The revocation
// check runs first: it is the cheapest rejection and must win even for
// tokens whose signature would still verify. A token whose account has since
// been deleted fails distinctly from an invalid token.
func (s *AuthService) AuthenticateToken(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, utils.NewMissingTokenError()
	}

	if s.revoked.IsRevoked(token) {
		return nil, utils.NewRevokedTokenError()
	}

	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if utils.IsNotFoundError(err) {
			return nil, utils.NewNotFoundError("User", claims.UserID)
		}
		return nil, utils.NewInternalServerError(err)
	}

	return user.Sanitize(), nil
}

// Logout revokes a token for the remainder of its own lifetime. It is
// idempotent and always succeeds, even for tokens that are already invalid,
// expired or revoked — there is nothing useful to report to the caller in
// those cases.
func (s *AuthService) Logout(_ context.Context, token string) error {
	if token == "" {
		return nil
	}

	ttl := s.jwtService.RemainingLifetime(token)
	s.revoked.Revoke(token, ttl)

	utils.LogAuth(constants.LogEventLogout, "", "", true, "")
	return nil
}

func isValidRole(role string) bool {
	switch role {
	case constants.RoleOwner, constants.RoleManager, constants.RoleStaff:
		return true
	}
	return false
}
