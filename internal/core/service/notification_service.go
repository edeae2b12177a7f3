package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bazaarly/marketplace-system/internal/core/ports"
)

const verificationTTL = 24 * time.Hour

// NotificationService issues email-verification tokens for freshly
// provisioned accounts. Actual mail delivery is owned by an external relay
// watching the log stream; this service mints and stores the token.
type NotificationService struct {
	store  ports.VerificationStore
	logger zerolog.Logger
}

func NewNotificationService(store ports.VerificationStore, logger zerolog.Logger) *NotificationService {
	return &NotificationService{store: store, logger: logger}
}

// Notify generates a one-time verification token for the account and records
// it with a 24h TTL.
func (s *NotificationService) Notify(ctx context.Context, event ports.AccountEvent) error {
	token := randomHex(24)

	if err := s.store.Put(ctx, token, event.UserID, verificationTTL); err != nil {
		return fmt.Errorf("store verification token: %w", err)
	}

	s.logger.Info().
		Str("user_id", event.UserID).
		Str("email", event.Email).
		Str("verify_path", "/auth/verify?token="+token).
		Msg("verification email queued")

	return nil
}
