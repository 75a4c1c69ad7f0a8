package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/sooquk/sooquk-dashboard/internal/delivery/http/middlewares"
	"github.com/sooquk/sooquk-dashboard/internal/handlers"
	"github.com/sooquk/sooquk-dashboard/internal/i18n"
	"github.com/sooquk/sooquk-dashboard/internal/session"
)

const (
	admin    = session.RoleAdmin
	vendor   = session.RoleVendor
	shipping = session.RoleShippingCompany
)

// crudRoutes is the route shape every plain table shares.
type crudRoutes interface {
	List() echo.HandlerFunc
	Get() echo.HandlerFunc
	Create() echo.HandlerFunc
	Update() echo.HandlerFunc
	Delete() echo.HandlerFunc
}

func InitRoutes(e *echo.Echo, h *handlers.Handlers, catalog *i18n.Catalog, loginPath string) {
	roles := func(r ...string) echo.MiddlewareFunc { return middlewares.RequireRoles(catalog, r...) }

	e.GET("/healthz", h.Meta.Healthz())

	public := e.Group("/api")
	{
		public.POST("/auth/login", h.Auth.Login())
		public.GET("/i18n/:locale", h.Meta.Translations())
		public.POST("/locale", h.Meta.SetLocale())
	}

	api := e.Group("/api")
	api.Use(middlewares.RequireAuth(catalog, loginPath))
	{
		api.POST("/auth/logout", h.Auth.Logout())
		api.GET("/auth/me", h.Auth.Me())
		api.GET("/navigation", h.Meta.Navigation())
	}

	crud(api.Group("/cities"), h.Cities, roles(admin), roles(admin))
	crud(api.Group("/districts"), h.Districts, roles(admin), roles(admin))
	crud(api.Group("/categories"), h.Categories, roles(admin, vendor), roles(admin))
	crud(api.Group("/sub-categories"), h.SubCategories, roles(admin, vendor), roles(admin))
	crud(api.Group("/tags"), h.Tags, roles(admin, vendor), roles(admin))
	crud(api.Group("/colors"), h.Colors, roles(admin, vendor), roles(admin))
	crud(api.Group("/sizes"), h.Sizes, roles(admin, vendor), roles(admin))
	crud(api.Group("/coupons"), h.Coupons, roles(admin, vendor), roles(admin, vendor))
	crud(api.Group("/subscriptions"), h.Plans, roles(admin, vendor), roles(admin))
	crud(api.Group("/hero-sliders"), h.HeroSliders, roles(admin), roles(admin))
	crud(api.Group("/faqs"), h.FAQs, roles(admin), roles(admin))

	orders := api.Group("/orders")
	{
		orders.GET("", h.Orders.GetOrders(), roles(admin, vendor, shipping))
		orders.GET("/:id", h.Orders.GetOrderDetails(), roles(admin, vendor, shipping))
		orders.PATCH("/:id/status", h.Orders.UpdateOrderStatus(), roles(admin, shipping))
		orders.PATCH("/:id/shipping", h.Orders.AssignShipping(), roles(admin))
	}

	subscriptions := api.Group("/vendor-subscriptions")
	{
		subscriptions.GET("", h.VendorSubscriptions.GetSubscriptions(), roles(admin, vendor))
		subscriptions.GET("/:id", h.VendorSubscriptions.GetSubscription(), roles(admin, vendor))
		subscriptions.POST("", h.VendorSubscriptions.Subscribe(), roles(vendor))
		subscriptions.PATCH("/:id/approve", h.VendorSubscriptions.Approve(), roles(admin))
		subscriptions.PATCH("/:id/reject", h.VendorSubscriptions.Reject(), roles(admin))
	}

	tickets := api.Group("/tickets")
	{
		tickets.GET("", h.Tickets.GetTickets(), roles(admin, vendor, shipping))
		tickets.GET("/:id", h.Tickets.GetTicket(), roles(admin, vendor, shipping))
		tickets.POST("", h.Tickets.CreateTicket(), roles(vendor, shipping))
		tickets.POST("/:id/replies", h.Tickets.ReplyTicket(), roles(admin, vendor, shipping))
		tickets.PATCH("/:id/close", h.Tickets.CloseTicket(), roles(admin))
	}

	errorLogs := api.Group("/error-logs", roles(admin))
	{
		errorLogs.GET("", h.ErrorLogs.GetErrorLogs())
		errorLogs.GET("/:id", h.ErrorLogs.GetErrorLog())
		errorLogs.DELETE("/:id", h.ErrorLogs.DeleteErrorLog())
		errorLogs.DELETE("", h.ErrorLogs.ClearErrorLogs())
	}

	api.GET("/vendor-statistics", h.Statistics.GetVendorStatistics(), roles(admin, vendor))
	api.POST("/broadcasts", h.Broadcasts.SendBroadcast(), roles(admin))
	api.GET("/activity", h.Activity.GetActivity(), roles(admin))
	api.POST("/cache/reset", h.Activity.ResetCaches(), roles(admin))
}

func crud(g *echo.Group, h crudRoutes, read, write echo.MiddlewareFunc) {
	g.GET("", h.List(), read)
	g.GET("/:id", h.Get(), read)
	g.POST("", h.Create(), write)
	g.PUT("/:id", h.Update(), write)
	g.DELETE("/:id", h.Delete(), write)
}
