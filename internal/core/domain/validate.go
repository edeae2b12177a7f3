package domain

import (
	"regexp"
	"unicode/utf8"
)

const (
	minNameLength     = 2
	maxNameLength     = 60
	minPasswordLength = 6
)

var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// Registration is the candidate account payload submitted at sign-up, prior
// to normalization. Role-conditional fields are always present and ignored
// for roles that do not declare them.
type Registration struct {
	Name     string
	Email    string
	Password string
	Role     Role
	Phone    string
	Address  string
	Avatar   string

	// Vendor fields.
	ShopName     string
	ShopAddress  string
	BusinessType string

	// Delivery agent fields.
	VehicleType  string
	DeliveryZone []string
}

// ValidateRegistration checks a candidate payload against the base rules and
// the role-specific extensions. It returns every violation in a fixed order
// rather than stopping at the first; an empty slice means the payload is
// valid. The function is pure: same input, same output, no side effects.
func ValidateRegistration(r Registration) []string {
	var errs []string

	// Length limits count characters, not bytes.
	if r.Name == "" {
		errs = append(errs, "Name is required")
	} else if utf8.RuneCountInString(r.Name) < minNameLength {
		errs = append(errs, "Name must be at least 2 characters")
	} else if utf8.RuneCountInString(r.Name) > maxNameLength {
		errs = append(errs, "Name cannot be more than 60 characters")
	}

	if r.Email == "" {
		errs = append(errs, "Email is required")
	} else if !emailPattern.MatchString(r.Email) {
		errs = append(errs, "Please provide a valid email")
	}

	if r.Password == "" {
		errs = append(errs, "Password is required")
	} else if len(r.Password) < minPasswordLength {
		errs = append(errs, "Password must be at least 6 characters")
	}

	if r.Role == "" {
		errs = append(errs, "Role is required")
	} else if !r.Role.Valid() {
		errs = append(errs, "Invalid role specified")
	}

	if r.Role == RoleVendor {
		if r.ShopName == "" {
			errs = append(errs, "Shop name is required for vendors")
		}
		if r.ShopAddress == "" {
			errs = append(errs, "Shop address is required for vendors")
		}
		if r.BusinessType == "" {
			errs = append(errs, "Business type is required for vendors")
		}
	}

	if r.Role == RoleDelivery {
		if r.VehicleType == "" {
			errs = append(errs, "Vehicle type is required for delivery personnel")
		}
		if r.Phone == "" {
			errs = append(errs, "Phone number is required for delivery personnel")
		}
	}

	return errs
}
