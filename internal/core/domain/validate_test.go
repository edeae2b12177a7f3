package domain

import (
	"reflect"
	"strings"
	"testing"
)

func validCustomer() Registration {
	return Registration{
		Name:     "Jo Smith",
		Email:    "jo@example.com",
		Password: "secret1",
		Role:     RoleCustomer,
	}
}

func TestValidateRegistration_ValidCustomer(t *testing.T) {
	if msgs := ValidateRegistration(validCustomer()); len(msgs) != 0 {
		t.Fatalf("expected no violations, got %v", msgs)
	}
}

func TestValidateRegistration_BaseFields(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Registration)
		message string
	}{
		{"missing name", func(r *Registration) { r.Name = "" }, "Name is required"},
		{"short name", func(r *Registration) { r.Name = "A" }, "Name must be at least 2 characters"},
		{"long name", func(r *Registration) { r.Name = strings.Repeat("x", 61) }, "Name cannot be more than 60 characters"},
		{"missing email", func(r *Registration) { r.Email = "" }, "Email is required"},
		{"bad email", func(r *Registration) { r.Email = "bad-email" }, "Please provide a valid email"},
		{"bad email no tld", func(r *Registration) { r.Email = "jo@example" }, "Please provide a valid email"},
		{"missing password", func(r *Registration) { r.Password = "" }, "Password is required"},
		{"short password", func(r *Registration) { r.Password = "123" }, "Password must be at least 6 characters"},
		{"missing role", func(r *Registration) { r.Role = "" }, "Role is required"},
		{"unknown role", func(r *Registration) { r.Role = "SUPERUSER" }, "Invalid role specified"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reg := validCustomer()
			tc.mutate(&reg)
			msgs := ValidateRegistration(reg)
			if len(msgs) == 0 {
				t.Fatalf("expected violations, got none")
			}
			if !contains(msgs, tc.message) {
				t.Fatalf("expected %q in %v", tc.message, msgs)
			}
		})
	}
}

func TestValidateRegistration_NameLengthCountsCharacters(t *testing.T) {
	// 30 three-byte characters must not trip the 60-character ceiling.
	reg := validCustomer()
	reg.Name = strings.Repeat("田", 30)
	if msgs := ValidateRegistration(reg); len(msgs) != 0 {
		t.Fatalf("expected no violations for a 30-character name, got %v", msgs)
	}

	reg.Name = strings.Repeat("田", 61)
	if msgs := ValidateRegistration(reg); !contains(msgs, "Name cannot be more than 60 characters") {
		t.Fatalf("expected length violation for a 61-character name, got %v", msgs)
	}

	reg.Name = "é"
	if msgs := ValidateRegistration(reg); !contains(msgs, "Name must be at least 2 characters") {
		t.Fatalf("expected minimum-length violation for a 1-character name, got %v", msgs)
	}
}

func TestValidateRegistration_CollectsAllViolations(t *testing.T) {
	msgs := ValidateRegistration(Registration{
		Name:     "A",
		Email:    "bad-email",
		Password: "123",
		Role:     RoleCustomer,
	})

	want := []string{
		"Name must be at least 2 characters",
		"Please provide a valid email",
		"Password must be at least 6 characters",
	}
	if !reflect.DeepEqual(msgs, want) {
		t.Fatalf("expected %v, got %v", want, msgs)
	}
}

func TestValidateRegistration_VendorFields(t *testing.T) {
	vendor := validCustomer()
	vendor.Role = RoleVendor
	vendor.ShopName = "Jo Shop"
	vendor.ShopAddress = "1 Main St"
	vendor.BusinessType = "Retail"

	if msgs := ValidateRegistration(vendor); len(msgs) != 0 {
		t.Fatalf("expected valid vendor, got %v", msgs)
	}

	cases := []struct {
		name    string
		mutate  func(*Registration)
		message string
	}{
		{"missing shop name", func(r *Registration) { r.ShopName = "" }, "Shop name is required for vendors"},
		{"missing shop address", func(r *Registration) { r.ShopAddress = "" }, "Shop address is required for vendors"},
		{"missing business type", func(r *Registration) { r.BusinessType = "" }, "Business type is required for vendors"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reg := vendor
			tc.mutate(&reg)
			if msgs := ValidateRegistration(reg); !contains(msgs, tc.message) {
				t.Fatalf("expected %q in %v", tc.message, msgs)
			}
		})
	}
}

func TestValidateRegistration_VendorFieldsIndependentOfBase(t *testing.T) {
	// Role-specific violations must be reported even when base fields are
	// broken too.
	msgs := ValidateRegistration(Registration{Role: RoleVendor})
	for _, want := range []string{
		"Name is required",
		"Email is required",
		"Password is required",
		"Shop name is required for vendors",
		"Shop address is required for vendors",
		"Business type is required for vendors",
	} {
		if !contains(msgs, want) {
			t.Fatalf("expected %q in %v", want, msgs)
		}
	}
}

func TestValidateRegistration_DeliveryFields(t *testing.T) {
	agent := validCustomer()
	agent.Role = RoleDelivery
	agent.VehicleType = "bike"
	agent.Phone = "555-0101"

	if msgs := ValidateRegistration(agent); len(msgs) != 0 {
		t.Fatalf("expected valid delivery agent, got %v", msgs)
	}

	agent.VehicleType = ""
	agent.Phone = ""
	msgs := ValidateRegistration(agent)
	if !contains(msgs, "Vehicle type is required for delivery personnel") {
		t.Fatalf("expected vehicle type violation in %v", msgs)
	}
	if !contains(msgs, "Phone number is required for delivery personnel") {
		t.Fatalf("expected phone violation in %v", msgs)
	}
}

func TestValidateRegistration_Idempotent(t *testing.T) {
	reg := Registration{Name: "A", Email: "bad", Password: "1", Role: "NOPE"}
	first := ValidateRegistration(reg)
	second := ValidateRegistration(reg)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical output, got %v then %v", first, second)
	}
}

func contains(msgs []string, want string) bool {
	for _, m := range msgs {
		if m == want {
			return true
		}
	}
	return false
}
