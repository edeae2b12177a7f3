package domain

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// ProductStatus represents the publication state of a catalog entry.
type ProductStatus string

const (
	ProductDraft     ProductStatus = "draft"
	ProductPublished ProductStatus = "published"
	ProductArchived  ProductStatus = "archived"
)

var ErrProductNotFound = errors.New("product not found")
var ErrDuplicateSlug = errors.New("product slug already exists")

// Product is a catalog entry owned by a single vendor account.
type Product struct {
	ID          string        `json:"id" bson:"_id,omitempty"`
	Name        string        `json:"name" bson:"name"`
	Slug        string        `json:"slug" bson:"slug"`
	Description string        `json:"description" bson:"description"`
	Price       float64       `json:"price" bson:"price"`
	Category    string        `json:"category" bson:"category"`
	Quantity    int           `json:"quantity" bson:"quantity"`
	SKU         string        `json:"sku" bson:"sku"`
	VendorID    string        `json:"vendor_id" bson:"vendor_id"`
	Status      ProductStatus `json:"status" bson:"status"`
	Rating      float64       `json:"rating" bson:"rating"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at"`
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe slug from a product name.
func Slugify(name string) string {
	s := nonSlugChars.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(s, "-")
}
