package entities

type VendorStatistics struct {
	VendorID        int64            `json:"vendor_id"`
	TotalOrders     int              `json:"total_orders"`
	PendingOrders   int              `json:"pending_orders"`
	DeliveredOrders int              `json:"delivered_orders"`
	CancelledOrders int              `json:"cancelled_orders"`
	TotalRevenue    float64          `json:"total_revenue"`
	TotalProducts   int              `json:"total_products"`
	ActiveCoupons   int              `json:"active_coupons"`
	AverageRating   float64          `json:"average_rating"`
	MonthlyRevenue  []MonthlyRevenue `json:"monthly_revenue,omitempty"`
}

type MonthlyRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}
