package models

type CityReq struct {
	NameEn   string `json:"name_en" validate:"required,max=100"`
	NameAr   string `json:"name_ar" validate:"required,max=100"`
	IsActive *bool  `json:"is_active,omitempty"`
}

type DistrictReq struct {
	CityID      int64   `json:"city_id" validate:"required,gt=0"`
	NameEn      string  `json:"name_en" validate:"required,max=100"`
	NameAr      string  `json:"name_ar" validate:"required,max=100"`
	ShippingFee float64 `json:"shipping_fee" validate:"gte=0"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

type CategoryReq struct {
	NameEn    string `json:"name_en" validate:"required,max=100"`
	NameAr    string `json:"name_ar" validate:"required,max=100"`
	ImageURL  string `json:"image_url,omitempty" validate:"omitempty,url"`
	SortOrder int    `json:"sort_order" validate:"gte=0"`
	IsActive  *bool  `json:"is_active,omitempty"`
}

type SubCategoryReq struct {
	CategoryID int64  `json:"category_id" validate:"required,gt=0"`
	NameEn     string `json:"name_en" validate:"required,max=100"`
	NameAr     string `json:"name_ar" validate:"required,max=100"`
	ImageURL   string `json:"image_url,omitempty" validate:"omitempty,url"`
	IsActive   *bool  `json:"is_active,omitempty"`
}

type TagReq struct {
	NameEn string `json:"name_en" validate:"required,max=60"`
	NameAr string `json:"name_ar" validate:"required,max=60"`
}

type ColorReq struct {
	NameEn  string `json:"name_en" validate:"required,max=60"`
	NameAr  string `json:"name_ar" validate:"required,max=60"`
	HexCode string `json:"hex_code" validate:"required,hexcolor"`
}

type SizeReq struct {
	Name      string `json:"name" validate:"required,max=20"`
	SortOrder int    `json:"sort_order" validate:"gte=0"`
}
