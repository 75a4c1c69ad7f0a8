package entities

import "time"

type SubscriptionPlan struct {
	ID            int64     `json:"id"`
	NameEn        string    `json:"name_en"`
	NameAr        string    `json:"name_ar"`
	DescriptionEn string    `json:"description_en,omitempty"`
	DescriptionAr string    `json:"description_ar,omitempty"`
	Price         float64   `json:"price"`
	Currency      string    `json:"currency"`
	DurationDays  int       `json:"duration_days"`
	MaxProducts   int       `json:"max_products"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type VendorSubscriptionStatus string

const (
	VendorSubscriptionPending   VendorSubscriptionStatus = "pending"
	VendorSubscriptionActive    VendorSubscriptionStatus = "active"
	VendorSubscriptionRejected  VendorSubscriptionStatus = "rejected"
	VendorSubscriptionExpired   VendorSubscriptionStatus = "expired"
	VendorSubscriptionCancelled VendorSubscriptionStatus = "cancelled"
)

type VendorSubscription struct {
	ID           int64                    `json:"id"`
	VendorID     int64                    `json:"vendor_id"`
	VendorName   string                   `json:"vendor_name"`
	PlanID       int64                    `json:"plan_id"`
	PlanNameEn   string                   `json:"plan_name_en"`
	PlanNameAr   string                   `json:"plan_name_ar"`
	Status       VendorSubscriptionStatus `json:"status"`
	RejectReason string                   `json:"reject_reason,omitempty"`
	StartsAt     *time.Time               `json:"starts_at,omitempty"`
	EndsAt       *time.Time               `json:"ends_at,omitempty"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at"`
}
