package ports

import (
	"context"

	"github.com/bazaarly/marketplace-system/internal/core/domain"
)

// CreateProductInput is the service DTO for adding a catalog entry.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Quantity    int
	SKU         string
	VendorID    string
	Publish     bool
}

// ProductService manages the vendor-owned catalog.
type ProductService interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	ListPublished(ctx context.Context) ([]domain.Product, error)
	ListByVendor(ctx context.Context, vendorID string) ([]domain.Product, error)
}
