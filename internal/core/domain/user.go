package domain

import (
	"errors"
	"strings"
	"time"
)

// Role discriminates the four account variants.
type Role string

const (
	RoleCustomer Role = "USER"
	RoleAdmin    Role = "ADMIN"
	RoleVendor   Role = "VENDOR"
	RoleDelivery Role = "DELIVERY_MAN"
)

// Roles lists every known role in declaration order.
var Roles = []Role{RoleCustomer, RoleAdmin, RoleVendor, RoleDelivery}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleAdmin, RoleVendor, RoleDelivery:
		return true
	}
	return false
}

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrForbidden          = errors.New("access forbidden")
	ErrTokenInvalid       = errors.New("token invalid or expired")
)

// ValidationError carries the ordered list of registration failures.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

// Coordinates represents a geographic point.
type Coordinates struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// CustomerProfile holds the fields specific to storefront customers.
type CustomerProfile struct {
	Orders   []string `json:"orders" bson:"orders"`
	Wishlist []string `json:"wishlist" bson:"wishlist"`
}

// AdminProfile holds the fields specific to administrators.
type AdminProfile struct {
	Permissions []string `json:"permissions" bson:"permissions"`
}

// VendorProfile holds the fields specific to shop owners.
type VendorProfile struct {
	ShopName     string   `json:"shop_name" bson:"shop_name"`
	ShopAddress  string   `json:"shop_address" bson:"shop_address"`
	BusinessType string   `json:"business_type" bson:"business_type"`
	Products     []string `json:"products" bson:"products"`
	Orders       []string `json:"orders" bson:"orders"`
	Rating       float64  `json:"rating" bson:"rating"`
	IsVerified   bool     `json:"is_verified" bson:"is_verified"`
}

// DeliveryProfile holds the fields specific to delivery agents.
type DeliveryProfile struct {
	VehicleType     string       `json:"vehicle_type" bson:"vehicle_type"`
	DeliveryZone    []string     `json:"delivery_zone" bson:"delivery_zone"`
	CurrentLocation *Coordinates `json:"current_location,omitempty" bson:"current_location,omitempty"`
	IsAvailable     bool         `json:"is_available" bson:"is_available"`
	Deliveries      []string     `json:"deliveries" bson:"deliveries"`
	Rating          float64      `json:"rating" bson:"rating"`
	IsVerified      bool         `json:"is_verified" bson:"is_verified"`
}

// User is the account aggregate: a shared base plus exactly one variant
// payload selected by Role. The role is fixed at creation time and decides
// which variant pointer is non-nil.
type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Role          Role      `json:"role"`
	Phone         string    `json:"phone,omitempty"`
	Address       string    `json:"address,omitempty"`
	Avatar        string    `json:"avatar,omitempty"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Customer *CustomerProfile `json:"customer,omitempty"`
	Admin    *AdminProfile    `json:"admin,omitempty"`
	Vendor   *VendorProfile   `json:"vendor,omitempty"`
	Delivery *DeliveryProfile `json:"delivery,omitempty"`
}
