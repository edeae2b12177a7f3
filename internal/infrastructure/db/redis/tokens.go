package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bazaarly/marketplace-system/internal/core/domain"
)

// VerificationStore holds one-time email-verification tokens.
// Key format: verify:<token> → user ID, bounded by the caller's TTL.
type VerificationStore struct {
	client *redis.Client
}

func NewVerificationStore(client *redis.Client) *VerificationStore {
	return &VerificationStore{client: client}
}

func (v *VerificationStore) Put(ctx context.Context, token, userID string, ttl time.Duration) error {
	return v.client.Set(ctx, "verify:"+token, userID, ttl).Err()
}

// Consume returns the user ID for a token and deletes it in one round trip,
// so a token can never be redeemed twice.
func (v *VerificationStore) Consume(ctx context.Context, token string) (string, error) {
	userID, err := v.client.GetDel(ctx, "verify:"+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrTokenInvalid
		}
		return "", fmt.Errorf("consume verification token: %w", err)
	}
	return userID, nil
}

// RevocationList records revoked session token IDs until their natural
// expiry. Key format: revoked:<jti>.
type RevocationList struct {
	client *redis.Client
}

func NewRevocationList(client *redis.Client) *RevocationList {
	return &RevocationList{client: client}
}

func (r *RevocationList) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		// Already expired; nothing to record.
		return nil
	}
	return r.client.Set(ctx, "revoked:"+tokenID, "1", ttl).Err()
}

func (r *RevocationList) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, "revoked:"+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}
