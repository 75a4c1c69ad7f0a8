package handlers

import (
	"github.com/sooquk/sooquk-dashboard/internal/entities"
	"github.com/sooquk/sooquk-dashboard/internal/models"
	"github.com/sooquk/sooquk-dashboard/internal/services"
	"github.com/sooquk/sooquk-dashboard/internal/session"
)

type Services struct {
	Catalog             *services.Catalog
	Orders              services.OrderService
	Tickets             services.TicketService
	VendorSubscriptions services.VendorSubscriptionService
	Statistics          services.StatisticsService
	ErrorLogs           services.ErrorLogService
	Broadcasts          services.BroadcastService
	Auth                services.AuthService
	Activity            services.ActivityService
	Cache               services.CacheService
}

type Handlers struct {
	Auth *AuthHandler
	Meta *MetaHandler

	Cities        *ResourceHandler[entities.City, models.CityReq]
	Districts     *ResourceHandler[entities.District, models.DistrictReq]
	Categories    *ResourceHandler[entities.Category, models.CategoryReq]
	SubCategories *ResourceHandler[entities.SubCategory, models.SubCategoryReq]
	Tags          *ResourceHandler[entities.Tag, models.TagReq]
	Colors        *ResourceHandler[entities.Color, models.ColorReq]
	Sizes         *ResourceHandler[entities.Size, models.SizeReq]
	Coupons       *ResourceHandler[entities.Coupon, models.CouponReq]
	Plans         *ResourceHandler[entities.SubscriptionPlan, models.SubscriptionPlanReq]
	HeroSliders   *ResourceHandler[entities.HeroSlider, models.HeroSliderReq]
	FAQs          *ResourceHandler[entities.FAQ, models.FAQReq]

	Orders              *OrderHandler
	Tickets             *TicketHandler
	VendorSubscriptions *VendorSubscriptionHandler
	Statistics          *StatisticsHandler
	ErrorLogs           *ErrorLogHandler
	Broadcasts          *BroadcastHandler
	Activity            *ActivityHandler
}

func New(api *API, svc Services, sessions *session.Store, checks map[string]HealthCheck) *Handlers {
	cat := svc.Catalog
	return &Handlers{
		Auth: NewAuthHandler(api, svc.Auth),
		Meta: NewMetaHandler(api, sessions, checks),

		Cities:        NewResourceHandler[entities.City, models.CityReq](api, cat.Cities, CitiesTable),
		Districts:     NewResourceHandler[entities.District, models.DistrictReq](api, cat.Districts, DistrictsTable),
		Categories:    NewResourceHandler[entities.Category, models.CategoryReq](api, cat.Categories, CategoriesTable),
		SubCategories: NewResourceHandler[entities.SubCategory, models.SubCategoryReq](api, cat.SubCategories, SubCategoriesTable),
		Tags:          NewResourceHandler[entities.Tag, models.TagReq](api, cat.Tags, TagsTable),
		Colors:        NewResourceHandler[entities.Color, models.ColorReq](api, cat.Colors, ColorsTable),
		Sizes:         NewResourceHandler[entities.Size, models.SizeReq](api, cat.Sizes, SizesTable),
		Coupons:       NewResourceHandler[entities.Coupon, models.CouponReq](api, cat.Coupons, CouponsTable),
		Plans:         NewResourceHandler[entities.SubscriptionPlan, models.SubscriptionPlanReq](api, cat.Plans, PlansTable),
		HeroSliders:   NewResourceHandler[entities.HeroSlider, models.HeroSliderReq](api, cat.HeroSliders, HeroSlidersTable),
		FAQs:          NewResourceHandler[entities.FAQ, models.FAQReq](api, cat.FAQs, FAQsTable),

		Orders:              NewOrderHandler(api, svc.Orders),
		Tickets:             NewTicketHandler(api, svc.Tickets),
		VendorSubscriptions: NewVendorSubscriptionHandler(api, svc.VendorSubscriptions),
		Statistics:          NewStatisticsHandler(api, svc.Statistics),
		ErrorLogs:           NewErrorLogHandler(api, svc.ErrorLogs),
		Broadcasts:          NewBroadcastHandler(api, svc.Broadcasts),
		Activity:            NewActivityHandler(api, svc.Activity, svc.Cache),
	}
}
