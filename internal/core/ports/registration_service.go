package ports

import (
	"context"

	"github.com/bazaarly/marketplace-system/internal/core/domain"
)

// RegisterResult is the outcome of a successful account provisioning.
// It deliberately carries neither the secret nor its digest.
type RegisterResult struct {
	UserID string
	Role   domain.Role
}

// RegistrationService provisions new accounts: validation, normalization,
// duplicate check, hashing and persistence, in that order.
type RegistrationService interface {
	Register(ctx context.Context, reg domain.Registration) (*RegisterResult, error)
}
