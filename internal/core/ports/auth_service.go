package ports

import (
	"context"

	"github.com/bazaarly/marketplace-system/internal/core/domain"
)

// AuthService verifies credentials and manages session token lifecycle.
type AuthService interface {
	// Login returns a signed session token and the account on success.
	// Unknown email and wrong password fail with the same
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Logout revokes the given session token until it would have expired.
	Logout(ctx context.Context, token string) error
	// VerifyEmail consumes a verification token and flags the account.
	VerifyEmail(ctx context.Context, token string) error
}
