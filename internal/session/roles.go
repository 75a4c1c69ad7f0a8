package session

const (
	RoleAdmin           = "Admin"
	RoleVendor          = "Vendor"
	RoleShippingCompany = "ShippingCompany"
)

// DashboardRoles are the backend roles allowed to sign in to the dashboard.
var DashboardRoles = []string{RoleAdmin, RoleVendor, RoleShippingCompany}

func IsDashboardRole(role string) bool {
	for _, r := range DashboardRoles {
		if r == role {
			return true
		}
	}
	return false
}
