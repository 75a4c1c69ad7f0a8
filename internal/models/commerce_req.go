package models

import "time"

type UpdateOrderStatusReq struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed processing shipped delivered cancelled returned"`
	Note   string `json:"note,omitempty" validate:"max=500"`
}

type AssignShippingReq struct {
	ShippingCompanyID int64  `json:"shipping_company_id" validate:"required,gt=0"`
	TrackingNumber    string `json:"tracking_number,omitempty" validate:"max=64"`
}

type CouponReq struct {
	Code          string    `json:"code" validate:"required,alphanum,min=3,max=32"`
	DiscountType  string    `json:"discount_type" validate:"required,oneof=percentage fixed"`
	DiscountValue float64   `json:"discount_value" validate:"required,gt=0"`
	MinOrderValue float64   `json:"min_order_value" validate:"gte=0"`
	MaxUses       int       `json:"max_uses" validate:"gte=0"`
	StartsAt      time.Time `json:"starts_at" validate:"required"`
	ExpiresAt     time.Time `json:"expires_at" validate:"required,gtfield=StartsAt"`
	IsActive      *bool     `json:"is_active,omitempty"`
}

type SubscriptionPlanReq struct {
	NameEn        string  `json:"name_en" validate:"required,max=100"`
	NameAr        string  `json:"name_ar" validate:"required,max=100"`
	DescriptionEn string  `json:"description_en,omitempty" validate:"max=1000"`
	DescriptionAr string  `json:"description_ar,omitempty" validate:"max=1000"`
	Price         float64 `json:"price" validate:"gte=0"`
	Currency      string  `json:"currency" validate:"required,len=3"`
	DurationDays  int     `json:"duration_days" validate:"required,gt=0"`
	MaxProducts   int     `json:"max_products" validate:"gte=0"`
	IsActive      *bool   `json:"is_active,omitempty"`
}

type SubscribeReq struct {
	PlanID int64 `json:"plan_id" validate:"required,gt=0"`
}

type RejectSubscriptionReq struct {
	Reason string `json:"reason" validate:"required,max=500"`
}
