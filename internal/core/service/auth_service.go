package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bazaarly/marketplace-system/internal/core/domain"
	"github.com/bazaarly/marketplace-system/internal/core/ports"
)

// AuthService implements credential verification and session token lifecycle.
type AuthService struct {
	repo          ports.UserRepository
	verifications ports.VerificationStore
	revocations   ports.RevocationList
	jwtSecret     string
	tokenTTL      time.Duration
	logger        zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, verifications ports.VerificationStore, revocations ports.RevocationList, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		repo:          repo,
		verifications: verifications,
		revocations:   revocations,
		jwtSecret:     jwtSecret,
		tokenTTL:      tokenTTL,
		logger:        logger,
	}
}

// Login verifies the credential pair and signs a session token carrying the
// claim set {sub, role, avatar, jti, exp}. Not-found and wrong-password are
// indistinguishable to prevent account enumeration.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("login succeeded")
	return token, user, nil
}

// Logout revokes the token's jti until its natural expiry. The signature is
// verified first so an attacker cannot poison the revocation list.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.parseClaims(token)
	if err != nil {
		return domain.ErrTokenInvalid
	}

	jti, _ := claims["jti"].(string)
	if jti == "" {
		return domain.ErrTokenInvalid
	}

	until := time.Now().Add(s.tokenTTL)
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		until = exp.Time
	}

	return s.revocations.Revoke(ctx, jti, until)
}

// VerifyEmail consumes a verification token and flags the account. Tokens
// are one-time and there is no reissue endpoint, so a failed store update
// must put the consumed token back for a retry.
func (s *AuthService) VerifyEmail(ctx context.Context, token string) error {
	userID, err := s.verifications.Consume(ctx, token)
	if err != nil {
		return err
	}

	if err := s.repo.MarkEmailVerified(ctx, userID); err != nil {
		if putErr := s.verifications.Put(ctx, token, userID, verificationTTL); putErr != nil {
			s.logger.Error().
				Err(putErr).
				Str("user_id", userID).
				Msg("verification token restore failed")
		}
		return err
	}
	return nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":    user.ID,
		"role":   string(user.Role),
		"avatar": user.Avatar,
		"jti":    randomHex(16),
		"exp":    time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func (s *AuthService) parseClaims(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}

// randomHex returns n bytes from the system CSPRNG, hex-encoded.
// crypto/rand.Read never fails.
func randomHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
