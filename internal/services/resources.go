package services

import (
	"github.com/sooquk/sooquk-dashboard/internal/entities"
	"github.com/sooquk/sooquk-dashboard/internal/models"
	apperrors "github.com/sooquk/sooquk-dashboard/internal/pkg/errors"
)

// Resource names double as cache namespaces, activity resources and i18n keys.
const (
	ResourceCities              = "cities"
	ResourceDistricts           = "districts"
	ResourceCategories          = "categories"
	ResourceSubCategories       = "sub-categories"
	ResourceTags                = "tags"
	ResourceColors              = "colors"
	ResourceSizes               = "sizes"
	ResourceOrders              = "orders"
	ResourceCoupons             = "coupons"
	ResourceSubscriptions       = "subscriptions"
	ResourceVendorSubscriptions = "vendor-subscriptions"
	ResourceVendorStatistics    = "vendor-statistics"
	ResourceHeroSliders         = "hero-sliders"
	ResourceFAQs                = "faqs"
	ResourceTickets             = "tickets"
	ResourceErrorLogs           = "error-logs"
	ResourceBroadcasts          = "broadcasts"
	ResourceActivity            = "activity"
)

// Catalog groups the plain CRUD tables.
type Catalog struct {
	Cities        *Resource[entities.City, models.CityReq]
	Districts     *Resource[entities.District, models.DistrictReq]
	Categories    *Resource[entities.Category, models.CategoryReq]
	SubCategories *Resource[entities.SubCategory, models.SubCategoryReq]
	Tags          *Resource[entities.Tag, models.TagReq]
	Colors        *Resource[entities.Color, models.ColorReq]
	Sizes         *Resource[entities.Size, models.SizeReq]
	Coupons       *Resource[entities.Coupon, models.CouponReq]
	Plans         *Resource[entities.SubscriptionPlan, models.SubscriptionPlanReq]
	HeroSliders   *Resource[entities.HeroSlider, models.HeroSliderReq]
	FAQs          *Resource[entities.FAQ, models.FAQReq]
}

func NewCatalog(deps Deps) *Catalog {
	ep := deps.Client.Endpoints()
	return &Catalog{
		Cities:        NewResource[entities.City, models.CityReq](deps, ResourceCities, ep.Cities, ResourceDistricts, ResourceOrders),
		Districts:     NewResource[entities.District, models.DistrictReq](deps, ResourceDistricts, ep.Districts, ResourceOrders),
		Categories:    NewResource[entities.Category, models.CategoryReq](deps, ResourceCategories, ep.Categories, ResourceSubCategories),
		SubCategories: NewResource[entities.SubCategory, models.SubCategoryReq](deps, ResourceSubCategories, ep.SubCategories),
		Tags:          NewResource[entities.Tag, models.TagReq](deps, ResourceTags, ep.Tags),
		Colors:        NewResource[entities.Color, models.ColorReq](deps, ResourceColors, ep.Colors),
		Sizes:         NewResource[entities.Size, models.SizeReq](deps, ResourceSizes, ep.Sizes),
		Coupons:       NewResource[entities.Coupon, models.CouponReq](deps, ResourceCoupons, ep.Coupons, ResourceVendorStatistics).WithCheck(checkCoupon),
		Plans:         NewResource[entities.SubscriptionPlan, models.SubscriptionPlanReq](deps, ResourceSubscriptions, ep.Subscriptions, ResourceVendorSubscriptions),
		HeroSliders:   NewResource[entities.HeroSlider, models.HeroSliderReq](deps, ResourceHeroSliders, ep.HeroSliders),
		FAQs:          NewResource[entities.FAQ, models.FAQReq](deps, ResourceFAQs, ep.FAQs),
	}
}

func checkCoupon(in models.CouponReq) error {
	if in.DiscountType == entities.DiscountPercentage && in.DiscountValue > 100 {
		return apperrors.FieldErrors{"discount_value": "validation.lte|100"}
	}
	return nil
}
