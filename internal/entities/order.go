package entities

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusReturned   OrderStatus = "returned"
)

type Order struct {
	ID                  int64       `json:"id"`
	OrderNumber         string      `json:"order_number"`
	CustomerName        string      `json:"customer_name"`
	CustomerPhone       string      `json:"customer_phone"`
	VendorID            int64       `json:"vendor_id"`
	VendorName          string      `json:"vendor_name"`
	ShippingCompanyID   *int64      `json:"shipping_company_id,omitempty"`
	ShippingCompanyName string      `json:"shipping_company_name,omitempty"`
	TrackingNumber      string      `json:"tracking_number,omitempty"`
	CityNameEn          string      `json:"city_name_en"`
	CityNameAr          string      `json:"city_name_ar"`
	DistrictNameEn      string      `json:"district_name_en"`
	DistrictNameAr      string      `json:"district_name_ar"`
	Address             string      `json:"address"`
	Status              OrderStatus `json:"status"`
	PaymentMethod       string      `json:"payment_method"`
	PaymentStatus       string      `json:"payment_status"`
	Subtotal            float64     `json:"subtotal"`
	ShippingFee         float64     `json:"shipping_fee"`
	Discount            float64     `json:"discount"`
	Total               float64     `json:"total"`
	CouponCode          string      `json:"coupon_code,omitempty"`
	Items               []OrderItem `json:"items,omitempty"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID            int64   `json:"id"`
	ProductID     int64   `json:"product_id"`
	ProductNameEn string  `json:"product_name_en"`
	ProductNameAr string  `json:"product_name_ar"`
	Color         string  `json:"color,omitempty"`
	Size          string  `json:"size,omitempty"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
}
