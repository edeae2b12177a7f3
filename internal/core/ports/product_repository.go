package ports

import (
	"context"

	"github.com/bazaarly/marketplace-system/internal/core/domain"
)

// ProductRepository defines the persistence contract for catalog entries.
type ProductRepository interface {
	Insert(ctx context.Context, product *domain.Product) (string, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Product, error)
	ListByVendor(ctx context.Context, vendorID string) ([]domain.Product, error)
	ListPublished(ctx context.Context) ([]domain.Product, error)
}
