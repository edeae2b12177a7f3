package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bazaarly/marketplace-system/internal/core/domain"
	"github.com/bazaarly/marketplace-system/internal/core/ports"
)

type memProductRepo struct {
	products map[string]*domain.Product // by slug
	nextID   int
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[string]*domain.Product)}
}

func (r *memProductRepo) Insert(_ context.Context, product *domain.Product) (string, error) {
	if _, exists := r.products[product.Slug]; exists {
		return "", domain.ErrDuplicateSlug
	}
	r.nextID++
	clone := *product
	clone.ID = fmt.Sprintf("prod_%d", r.nextID)
	r.products[clone.Slug] = &clone
	return clone.ID, nil
}

func (r *memProductRepo) FindBySlug(_ context.Context, slug string) (*domain.Product, error) {
	if p, ok := r.products[slug]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, domain.ErrProductNotFound
}

func (r *memProductRepo) ListByVendor(_ context.Context, vendorID string) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range r.products {
		if p.VendorID == vendorID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memProductRepo) ListPublished(_ context.Context) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range r.products {
		if p.Status == domain.ProductPublished {
			out = append(out, *p)
		}
	}
	return out, nil
}

func TestProductCreate(t *testing.T) {
	repo := newMemProductRepo()
	svc := NewProductService(repo, zerolog.Nop())

	product, err := svc.Create(context.Background(), ports.CreateProductInput{
		Name:        "Blue Mug",
		Description: "A sturdy ceramic mug.",
		Price:       9.5,
		Category:    "kitchen",
		Quantity:    10,
		SKU:         "MUG-001",
		VendorID:    "vendor_1",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if product.Slug != "blue-mug" {
		t.Fatalf("expected derived slug, got %q", product.Slug)
	}
	if product.Status != domain.ProductDraft {
		t.Fatalf("expected draft status by default, got %s", product.Status)
	}
	if product.ID == "" {
		t.Fatalf("expected generated id")
	}
}

func TestProductCreate_DuplicateSlug(t *testing.T) {
	repo := newMemProductRepo()
	svc := NewProductService(repo, zerolog.Nop())

	input := ports.CreateProductInput{
		Name:        "Blue Mug",
		Description: "A sturdy ceramic mug.",
		Price:       9.5,
		Category:    "kitchen",
		SKU:         "MUG-001",
		VendorID:    "vendor_1",
	}
	if _, err := svc.Create(context.Background(), input); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), input); err != domain.ErrDuplicateSlug {
		t.Fatalf("expected ErrDuplicateSlug, got %v", err)
	}
}

func TestProductListing_SplitsByStatusAndOwner(t *testing.T) {
	repo := newMemProductRepo()
	svc := NewProductService(repo, zerolog.Nop())

	mk := func(name, vendorID string, publish bool) {
		t.Helper()
		_, err := svc.Create(context.Background(), ports.CreateProductInput{
			Name:        name,
			Description: "Ten characters or more.",
			Price:       1,
			Category:    "misc",
			SKU:         name,
			VendorID:    vendorID,
			Publish:     publish,
		})
		if err != nil {
			t.Fatalf("create %s failed: %v", name, err)
		}
	}

	mk("Mug", "vendor_1", true)
	mk("Plate", "vendor_1", false)
	mk("Spoon", "vendor_2", true)

	published, err := svc.ListPublished(context.Background())
	if err != nil {
		t.Fatalf("list published failed: %v", err)
	}
	if len(published) != 2 {
		t.Fatalf("expected 2 published products, got %d", len(published))
	}

	mine, err := svc.ListByVendor(context.Background(), "vendor_1")
	if err != nil {
		t.Fatalf("list by vendor failed: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 products for vendor_1, got %d", len(mine))
	}
}
