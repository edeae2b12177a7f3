package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bazaarly/marketplace-system/internal/core/domain"
)

const usersCollection = "users"

// UserRepository persists account records in the users collection. The
// unique index on email (created by EnsureIndexes) is the authoritative
// guard against duplicate handles under concurrent registration.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

// mongoUser is the persisted shape. The variant payloads are embedded
// documents; exactly one is set per record, matching the role tag.
type mongoUser struct {
	ID            primitive.ObjectID      `bson:"_id,omitempty"`
	Name          string                  `bson:"name"`
	Email         string                  `bson:"email"`
	PasswordHash  string                  `bson:"password_hash"`
	Role          string                  `bson:"role"`
	Phone         string                  `bson:"phone,omitempty"`
	Address       string                  `bson:"address,omitempty"`
	Avatar        string                  `bson:"avatar,omitempty"`
	EmailVerified bool                    `bson:"email_verified"`
	CreatedAt     time.Time               `bson:"created_at"`
	UpdatedAt     time.Time               `bson:"updated_at"`
	Customer      *domain.CustomerProfile `bson:"customer,omitempty"`
	Admin         *domain.AdminProfile    `bson:"admin,omitempty"`
	Vendor        *domain.VendorProfile   `bson:"vendor,omitempty"`
	Delivery      *domain.DeliveryProfile `bson:"delivery,omitempty"`
}

func toDoc(u *domain.User) mongoUser {
	return mongoUser{
		Name:          u.Name,
		Email:         u.Email,
		PasswordHash:  u.PasswordHash,
		Role:          string(u.Role),
		Phone:         u.Phone,
		Address:       u.Address,
		Avatar:        u.Avatar,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
		Customer:      u.Customer,
		Admin:         u.Admin,
		Vendor:        u.Vendor,
		Delivery:      u.Delivery,
	}
}

func toDomain(mu mongoUser) domain.User {
	return domain.User{
		ID:            mu.ID.Hex(),
		Name:          mu.Name,
		Email:         mu.Email,
		PasswordHash:  mu.PasswordHash,
		Role:          domain.Role(mu.Role),
		Phone:         mu.Phone,
		Address:       mu.Address,
		Avatar:        mu.Avatar,
		EmailVerified: mu.EmailVerified,
		CreatedAt:     mu.CreatedAt.UTC(),
		UpdatedAt:     mu.UpdatedAt.UTC(),
		Customer:      mu.Customer,
		Admin:         mu.Admin,
		Vendor:        mu.Vendor,
		Delivery:      mu.Delivery,
	}
}

// Insert persists a new account and returns the generated identifier. A
// duplicate-key rejection on the email index maps to domain.ErrEmailTaken so
// the race between pre-check and write surfaces as an ordinary duplicate.
func (r *UserRepository) Insert(ctx context.Context, user *domain.User) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, toDoc(user))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", domain.ErrEmailTaken
		}
		return "", fmt.Errorf("insert user: %w", err)
	}

	id, err := insertedHex(res.InsertedID)
	if err != nil {
		return "", fmt.Errorf("insert user: %w", err)
	}
	return id, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	u := toDomain(mu)
	return &u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}

	u := toDomain(mu)
	return &u, nil
}

// List returns every account with the credential hash projected out at the
// store level, so it never crosses the wire.
func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"password_hash": 0})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoUser
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	users := make([]domain.User, len(docs))
	for i, mu := range docs {
		users[i] = toDomain(mu)
	}
	return users, nil
}

func (r *UserRepository) MarkEmailVerified(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{"email_verified": true, "updated_at": time.Now().UTC()},
	})
	if err != nil {
		return fmt.Errorf("mark email verified: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// UpdateAvailability sets the delivery agent's availability flag and,
// when provided, the current location.
func (r *UserRepository) UpdateAvailability(ctx context.Context, id string, available bool, location *domain.Coordinates) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}

	set := bson.M{
		"delivery.is_available": available,
		"updated_at":            time.Now().UTC(),
	}
	if location != nil {
		set["delivery.current_location"] = location
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid, "role": string(domain.RoleDelivery)}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update availability: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// EnsureIndexes creates the uniqueness index on the normalized email. This
// runs at startup before the server accepts traffic; registration
// correctness under concurrency depends on it.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("email_unique"),
		},
		{Keys: bson.D{{Key: "created_at", Value: 1}}},
		{Keys: bson.D{{Key: "role", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
