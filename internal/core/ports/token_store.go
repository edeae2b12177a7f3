package ports

import (
	"context"
	"time"
)

// VerificationStore holds short-lived email-verification tokens.
type VerificationStore interface {
	Put(ctx context.Context, token, userID string, ttl time.Duration) error
	// Consume returns the user ID for a token and deletes it atomically.
	// An unknown or expired token fails with domain.ErrTokenInvalid.
	Consume(ctx context.Context, token string) (string, error)
}

// RevocationList records session token IDs that must no longer be honoured.
type RevocationList interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
