package handlers

import (
	"github.com/sooquk/sooquk-dashboard/internal/services"
	"github.com/sooquk/sooquk-dashboard/internal/session"
)

// TableAction is a row or page action and the roles that may see it. No roles means everyone.
type TableAction struct {
	Name  string
	Roles []string
}

// Table describes how a resource is rendered: its columns, the filters its list accepts and
// the actions offered to each role.
type Table struct {
	Resource string
	Columns  []string
	Filters  []string
	Actions  []TableAction
}

func (t Table) ActionsFor(role string) []string {
	out := make([]string, 0, len(t.Actions))
	for _, a := range t.Actions {
		if len(a.Roles) == 0 {
			out = append(out, a.Name)
			continue
		}
		for _, r := range a.Roles {
			if r == role {
				out = append(out, a.Name)
				break
			}
		}
	}
	return out
}

var (
	adminOnly        = []string{session.RoleAdmin}
	adminAndVendor   = []string{session.RoleAdmin, session.RoleVendor}
	adminAndShipper  = []string{session.RoleAdmin, session.RoleShippingCompany}
	vendorAndShipper = []string{session.RoleVendor, session.RoleShippingCompany}
)

func crud(roles []string) []TableAction {
	return []TableAction{
		{Name: services.ActionCreate, Roles: roles},
		{Name: services.ActionUpdate, Roles: roles},
		{Name: services.ActionDelete, Roles: roles},
	}
}

var (
	CitiesTable = Table{
		Resource: services.ResourceCities,
		Columns:  []string{"id", "name_en", "name_ar", "is_active", "created_at"},
		Filters:  []string{"is_active"},
		Actions:  crud(adminOnly),
	}
	DistrictsTable = Table{
		Resource: services.ResourceDistricts,
		Columns:  []string{"id", "name_en", "name_ar", "city_name_en", "city_name_ar", "shipping_fee", "is_active"},
		Filters:  []string{"city_id", "is_active"},
		Actions:  crud(adminOnly),
	}
	CategoriesTable = Table{
		Resource: services.ResourceCategories,
		Columns:  []string{"id", "name_en", "name_ar", "image_url", "sort_order", "is_active"},
		Filters:  []string{"is_active"},
		Actions:  crud(adminOnly),
	}
	SubCategoriesTable = Table{
		Resource: services.ResourceSubCategories,
		Columns:  []string{"id", "name_en", "name_ar", "category_name_en", "category_name_ar", "is_active"},
		Filters:  []string{"category_id", "is_active"},
		Actions:  crud(adminOnly),
	}
	TagsTable = Table{
		Resource: services.ResourceTags,
		Columns:  []string{"id", "name_en", "name_ar", "created_at"},
		Actions:  crud(adminOnly),
	}
	ColorsTable = Table{
		Resource: services.ResourceColors,
		Columns:  []string{"id", "name_en", "name_ar", "hex_code"},
		Actions:  crud(adminOnly),
	}
	SizesTable = Table{
		Resource: services.ResourceSizes,
		Columns:  []string{"id", "name", "sort_order"},
		Actions:  crud(adminOnly),
	}
	OrdersTable = Table{
		Resource: services.ResourceOrders,
		Columns:  []string{"order_number", "customer_name", "vendor_name", "shipping_company_name", "status", "payment_status", "total", "created_at"},
		Filters:  []string{"status", "payment_status", "vendor_id", "shipping_company_id", "date_from", "date_to"},
		Actions: []TableAction{
			{Name: "view"},
			{Name: services.ActionUpdateStatus, Roles: adminAndShipper},
			{Name: services.ActionAssignShipping, Roles: adminOnly},
		},
	}
	CouponsTable = Table{
		Resource: services.ResourceCoupons,
		Columns:  []string{"code", "discount_type", "discount_value", "min_order_value", "used_count", "max_uses", "starts_at", "expires_at", "is_active"},
		Filters:  []string{"is_active", "discount_type"},
		Actions:  crud(adminAndVendor),
	}
	PlansTable = Table{
		Resource: services.ResourceSubscriptions,
		Columns:  []string{"id", "name_en", "name_ar", "price", "currency", "duration_days", "max_products", "is_active"},
		Filters:  []string{"is_active"},
		Actions: append(crud(adminOnly),
			TableAction{Name: services.ActionSubscribe, Roles: []string{session.RoleVendor}}),
	}
	VendorSubscriptionsTable = Table{
		Resource: services.ResourceVendorSubscriptions,
		Columns:  []string{"id", "vendor_name", "plan_name_en", "plan_name_ar", "status", "starts_at", "ends_at", "created_at"},
		Filters:  []string{"status", "vendor_id", "plan_id"},
		Actions: []TableAction{
			{Name: services.ActionSubscribe, Roles: []string{session.RoleVendor}},
			{Name: services.ActionApprove, Roles: adminOnly},
			{Name: services.ActionReject, Roles: adminOnly},
		},
	}
	HeroSlidersTable = Table{
		Resource: services.ResourceHeroSliders,
		Columns:  []string{"id", "title_en", "title_ar", "image_url", "sort_order", "is_active"},
		Filters:  []string{"is_active"},
		Actions:  crud(adminOnly),
	}
	FAQsTable = Table{
		Resource: services.ResourceFAQs,
		Columns:  []string{"id", "question_en", "question_ar", "sort_order", "is_active"},
		Filters:  []string{"is_active"},
		Actions:  crud(adminOnly),
	}
	TicketsTable = Table{
		Resource: services.ResourceTickets,
		Columns:  []string{"id", "subject", "priority", "status", "user_name", "user_role", "created_at"},
		Filters:  []string{"status", "priority"},
		Actions: []TableAction{
			{Name: "view"},
			{Name: services.ActionCreate, Roles: vendorAndShipper},
			{Name: services.ActionReply},
			{Name: services.ActionClose, Roles: adminOnly},
		},
	}
	ErrorLogsTable = Table{
		Resource: services.ResourceErrorLogs,
		Columns:  []string{"id", "level", "message", "method", "path", "status_code", "created_at"},
		Filters:  []string{"level", "status_code"},
		Actions: []TableAction{
			{Name: "view"},
			{Name: services.ActionDelete, Roles: adminOnly},
			{Name: services.ActionClear, Roles: adminOnly},
		},
	}
	ActivityTable = Table{
		Resource: services.ResourceActivity,
		Columns:  []string{"created_at", "user_name", "role", "action", "resource", "resource_id"},
		Filters:  []string{"resource"},
	}
)
