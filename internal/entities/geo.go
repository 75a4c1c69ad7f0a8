package entities

import "time"

type City struct {
	ID        int64     `json:"id"`
	NameEn    string    `json:"name_en"`
	NameAr    string    `json:"name_ar"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type District struct {
	ID          int64     `json:"id"`
	CityID      int64     `json:"city_id"`
	CityNameEn  string    `json:"city_name_en,omitempty"`
	CityNameAr  string    `json:"city_name_ar,omitempty"`
	NameEn      string    `json:"name_en"`
	NameAr      string    `json:"name_ar"`
	ShippingFee float64   `json:"shipping_fee"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
