package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bazaarly/marketplace-system/internal/core/domain"
)

const productsCollection = "products"

// ProductRepository persists catalog entries.
type ProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{coll: db.Collection(productsCollection)}
}

func (r *ProductRepository) Insert(ctx context.Context, product *domain.Product) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := *product
	doc.ID = ""

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", domain.ErrDuplicateSlug
		}
		return "", fmt.Errorf("insert product: %w", err)
	}

	id, err := insertedHex(res.InsertedID)
	if err != nil {
		return "", fmt.Errorf("insert product: %w", err)
	}
	return id, nil
}

func (r *ProductRepository) FindBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Product
	if err := r.coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return &p, nil
}

func (r *ProductRepository) ListByVendor(ctx context.Context, vendorID string) ([]domain.Product, error) {
	return r.list(ctx, bson.M{"vendor_id": vendorID})
}

func (r *ProductRepository) ListPublished(ctx context.Context) ([]domain.Product, error) {
	return r.list(ctx, bson.M{"status": string(domain.ProductPublished)})
}

func (r *ProductRepository) list(ctx context.Context, filter bson.M) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cur.Close(ctx)

	var products []domain.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

// EnsureIndexes creates the indexes required by the catalog.
func (r *ProductRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("slug_unique"),
		},
		{Keys: bson.D{{Key: "vendor_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
