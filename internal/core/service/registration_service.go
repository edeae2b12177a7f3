package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bazaarly/marketplace-system/internal/core/domain"
	"github.com/bazaarly/marketplace-system/internal/core/ports"
)

// bcryptCost is tuned for interactive login latency.
const bcryptCost = 12

// RegistrationService provisions heterogeneous account variants.
type RegistrationService struct {
	repo     ports.UserRepository
	notifier ports.Notifier
	logger   zerolog.Logger
}

func NewRegistrationService(repo ports.UserRepository, notifier ports.Notifier, logger zerolog.Logger) *RegistrationService {
	return &RegistrationService{repo: repo, notifier: notifier, logger: logger}
}

// Register validates, normalizes, checks for duplicates, hashes the secret
// and persists the account. Validation always completes before the store is
// touched; no partial record survives a failure path.
func (s *RegistrationService) Register(ctx context.Context, reg domain.Registration) (*ports.RegisterResult, error) {
	if msgs := domain.ValidateRegistration(reg); len(msgs) > 0 {
		return nil, &domain.ValidationError{Messages: msgs}
	}

	reg = normalize(reg)

	// Pre-write duplicate check. The unique index on the users collection is
	// the authoritative guard; this read only gives the common case a
	// friendlier path.
	_, err := s.repo.FindByEmail(ctx, reg.Email)
	if err == nil {
		return nil, domain.ErrEmailTaken
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := newUser(reg, string(hash), time.Now().UTC())

	id, err := s.repo.Insert(ctx, user)
	if err != nil {
		// A concurrent writer may win between the read above and this
		// insert; the repository maps that constraint violation to
		// ErrEmailTaken so both paths look identical to the caller.
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.Enqueue(ports.AccountEvent{UserID: id, Email: user.Email, Name: user.Name})
	}

	s.logger.Info().
		Str("user_id", id).
		Str("role", string(user.Role)).
		Msg("account provisioned")

	return &ports.RegisterResult{UserID: id, Role: user.Role}, nil
}

// normalize lower-cases and trims the identifying handle and trims the
// free-text fields. Run after validation so messages reflect the raw input.
func normalize(reg domain.Registration) domain.Registration {
	reg.Email = strings.ToLower(strings.TrimSpace(reg.Email))
	reg.Name = strings.TrimSpace(reg.Name)
	reg.Phone = strings.TrimSpace(reg.Phone)
	reg.Address = strings.TrimSpace(reg.Address)
	reg.ShopName = strings.TrimSpace(reg.ShopName)
	reg.ShopAddress = strings.TrimSpace(reg.ShopAddress)
	reg.BusinessType = strings.TrimSpace(reg.BusinessType)
	reg.VehicleType = strings.TrimSpace(reg.VehicleType)
	return reg
}

// newUser builds the full variant record with role-specific defaults.
func newUser(reg domain.Registration, hash string, now time.Time) *domain.User {
	user := &domain.User{
		Name:          reg.Name,
		Email:         reg.Email,
		PasswordHash:  hash,
		Role:          reg.Role,
		Phone:         reg.Phone,
		Address:       reg.Address,
		Avatar:        reg.Avatar,
		EmailVerified: false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	switch reg.Role {
	case domain.RoleCustomer:
		user.Customer = &domain.CustomerProfile{
			Orders:   []string{},
			Wishlist: []string{},
		}
	case domain.RoleAdmin:
		user.Admin = &domain.AdminProfile{
			Permissions: []string{},
		}
	case domain.RoleVendor:
		user.Vendor = &domain.VendorProfile{
			ShopName:     reg.ShopName,
			ShopAddress:  reg.ShopAddress,
			BusinessType: reg.BusinessType,
			Products:     []string{},
			Orders:       []string{},
			Rating:       0,
			IsVerified:   false,
		}
	case domain.RoleDelivery:
		zone := reg.DeliveryZone
		if zone == nil {
			zone = []string{}
		}
		user.Delivery = &domain.DeliveryProfile{
			VehicleType:  reg.VehicleType,
			DeliveryZone: zone,
			IsAvailable:  true,
			Deliveries:   []string{},
			Rating:       0,
			IsVerified:   false,
		}
	}

	return user
}
