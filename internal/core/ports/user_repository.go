package ports

import (
	"context"

	"github.com/bazaarly/marketplace-system/internal/core/domain"
)

// UserRepository defines the persistence contract for account records.
// The store enforces uniqueness of the normalized email; Insert must return
// domain.ErrEmailTaken when that constraint is violated.
type UserRepository interface {
	Insert(ctx context.Context, user *domain.User) (string, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	MarkEmailVerified(ctx context.Context, id string) error
	UpdateAvailability(ctx context.Context, id string, available bool, location *domain.Coordinates) error
}
