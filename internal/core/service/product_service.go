package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/bazaarly/marketplace-system/internal/core/domain"
	"github.com/bazaarly/marketplace-system/internal/core/ports"
)

// ProductService manages the vendor-owned catalog.
type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

// Create adds a catalog entry owned by the calling vendor. The slug is
// derived from the name; the unique index on slug rejects collisions.
func (p *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	slug := domain.Slugify(input.Name)

	if _, err := p.repo.FindBySlug(ctx, slug); err == nil {
		return nil, domain.ErrDuplicateSlug
	} else if !errors.Is(err, domain.ErrProductNotFound) {
		return nil, err
	}

	status := domain.ProductDraft
	if input.Publish {
		status = domain.ProductPublished
	}

	now := time.Now().UTC()
	product := &domain.Product{
		Name:        input.Name,
		Slug:        slug,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Quantity:    input.Quantity,
		SKU:         input.SKU,
		VendorID:    input.VendorID,
		Status:      status,
		Rating:      0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err := p.repo.Insert(ctx, product)
	if err != nil {
		p.logger.Error().Err(err).Str("slug", slug).Msg("failed to create product")
		return nil, err
	}
	product.ID = id

	p.logger.Info().Str("product_id", id).Str("vendor_id", input.VendorID).Msg("product created")
	return product, nil
}

func (p *ProductService) ListPublished(ctx context.Context) ([]domain.Product, error) {
	return p.repo.ListPublished(ctx)
}

func (p *ProductService) ListByVendor(ctx context.Context, vendorID string) ([]domain.Product, error) {
	return p.repo.ListByVendor(ctx, vendorID)
}
