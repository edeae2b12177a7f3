package domain

// MenuItem is a single navigation entry exposed to a role.
type MenuItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// roleMenus is the fixed role → navigation mapping. Boundaries resolve it by
// exact role match; there is no inheritance between roles.
var roleMenus = map[Role][]MenuItem{
	RoleCustomer: {
		{Label: "My Orders", Path: "/dashboard/orders"},
		{Label: "My Wishlist", Path: "/dashboard/wishlist"},
		{Label: "My Reviews", Path: "/dashboard/reviews"},
		{Label: "Payment Methods", Path: "/dashboard/payments"},
		{Label: "Addresses", Path: "/dashboard/addresses"},
	},
	RoleAdmin: {
		{Label: "Dashboard", Path: "/admin"},
		{Label: "Users Management", Path: "/admin/users"},
		{Label: "Orders Management", Path: "/admin/orders"},
		{Label: "Products Management", Path: "/admin/products"},
		{Label: "Vendors Management", Path: "/admin/vendors"},
		{Label: "Delivery Management", Path: "/admin/delivery"},
	},
	RoleVendor: {
		{Label: "Vendor Dashboard", Path: "/vendor"},
		{Label: "My Products", Path: "/vendor/products"},
		{Label: "Orders", Path: "/vendor/orders"},
		{Label: "Store Analytics", Path: "/vendor/analytics"},
		{Label: "Store Settings", Path: "/vendor/settings"},
	},
	RoleDelivery: {
		{Label: "Deliveries", Path: "/delivery"},
		{Label: "Delivery Zones", Path: "/delivery/zones"},
		{Label: "Availability", Path: "/delivery/availability"},
		{Label: "Earnings", Path: "/delivery/earnings"},
	},
}

// MenuFor returns the navigation entries for a role, or nil for an unknown role.
func MenuFor(role Role) []MenuItem {
	return roleMenus[role]
}
