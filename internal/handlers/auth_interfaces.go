package handlers

import (
	"context"

	"github.com/plateahq/Platea_Backend/internal/models"
)

// AuthManager defines the authentication operations the handlers depend on.
// It is implemented by service.AuthService and mocked in tests.
type AuthManager interface {
	RegisterUser(ctx context.Context, reg *models.RegistrationRequest) (*models.User, error)
	LoginUser(ctx context.Context, email, password string) (*models.User, string, error)
	AuthenticateToken(ctx context.Context, token string) (*models.User, error)
	Logout(ctx context.Context, token string) error
}
