package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sooquk/sooquk-dashboard/internal/delivery/http/middlewares"
	"github.com/sooquk/sooquk-dashboard/internal/i18n"
	"github.com/sooquk/sooquk-dashboard/internal/models"
	apperrors "github.com/sooquk/sooquk-dashboard/internal/pkg/errors"
	"github.com/sooquk/sooquk-dashboard/internal/services"
	"github.com/sooquk/sooquk-dashboard/internal/session"
)

// navEntry is one menu item; Roles mirror the read roles of its route group.
type navEntry struct {
	Key   string
	Path  string
	Roles []string
}

var allRoles = session.DashboardRoles

var navigation = []navEntry{
	{Key: "dashboard", Path: "/", Roles: allRoles},
	{Key: services.ResourceVendorStatistics, Path: "/vendor-statistics", Roles: adminAndVendor},
	{Key: services.ResourceOrders, Path: "/orders", Roles: allRoles},
	{Key: services.ResourceCities, Path: "/cities", Roles: adminOnly},
	{Key: services.ResourceDistricts, Path: "/districts", Roles: adminOnly},
	{Key: services.ResourceCategories, Path: "/categories", Roles: adminAndVendor},
	{Key: services.ResourceSubCategories, Path: "/sub-categories", Roles: adminAndVendor},
	{Key: services.ResourceTags, Path: "/tags", Roles: adminAndVendor},
	{Key: services.ResourceColors, Path: "/colors", Roles: adminAndVendor},
	{Key: services.ResourceSizes, Path: "/sizes", Roles: adminAndVendor},
	{Key: services.ResourceCoupons, Path: "/coupons", Roles: adminAndVendor},
	{Key: services.ResourceSubscriptions, Path: "/subscriptions", Roles: adminAndVendor},
	{Key: services.ResourceVendorSubscriptions, Path: "/vendor-subscriptions", Roles: adminAndVendor},
	{Key: services.ResourceHeroSliders, Path: "/hero-sliders", Roles: adminOnly},
	{Key: services.ResourceFAQs, Path: "/faqs", Roles: adminOnly},
	{Key: services.ResourceTickets, Path: "/tickets", Roles: allRoles},
	{Key: services.ResourceErrorLogs, Path: "/error-logs", Roles: adminOnly},
	{Key: services.ResourceBroadcasts, Path: "/broadcasts", Roles: adminOnly},
	{Key: services.ResourceActivity, Path: "/activity", Roles: adminOnly},
}

// HealthCheck reports the state of one dependency.
type HealthCheck func(ctx context.Context) error

type MetaHandler struct {
	*API
	sessions *session.Store
	checks   map[string]HealthCheck
}

func NewMetaHandler(api *API, sessions *session.Store, checks map[string]HealthCheck) *MetaHandler {
	return &MetaHandler{API: api, sessions: sessions, checks: checks}
}

func (h *MetaHandler) Navigation() echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := getSessionFromContext(c)
		if err != nil {
			return h.handleError(c, err)
		}

		items := make([]models.NavItem, 0, len(navigation))
		for _, entry := range navigation {
			if !sess.HasRole(entry.Roles...) {
				continue
			}
			items = append(items, models.NavItem{
				Key:   entry.Key,
				Label: h.t(c, "resource."+entry.Key),
				Path:  entry.Path,
			})
		}

		locale := h.locale(c)
		return h.respondSuccess(c, http.StatusOK, "", echo.Map{
			"title":  h.catalog.T(locale, "app.title"),
			"locale": locale,
			"dir":    i18n.Dir(locale),
			"items":  items,
		})
	}
}

func (h *MetaHandler) Translations() echo.HandlerFunc {
	return func(c echo.Context) error {
		locale := c.Param("locale")
		messages, ok := h.catalog.Messages(locale)
		if !ok {
			return h.respondError(c, http.StatusNotFound, "error.unsupported_locale", nil)
		}
		return c.JSON(http.StatusOK, echo.Map{
			"locale":   locale,
			"dir":      i18n.Dir(locale),
			"messages": messages,
		})
	}
}

type setLocaleReq struct {
	Locale string `json:"locale"`
}

// SetLocale remembers the chosen language in a cookie and, when signed in, on the session.
func (h *MetaHandler) SetLocale() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req setLocaleReq
		if err := c.Bind(&req); err != nil {
			return h.handleError(c, apperrors.ErrInvalidRequestPayload)
		}
		if !h.catalog.Supported(req.Locale) {
			return h.respondError(c, http.StatusUnprocessableEntity, "error.unsupported_locale", nil)
		}

		c.SetCookie(&http.Cookie{
			Name:     middlewares.LocaleCookie,
			Value:    req.Locale,
			Path:     "/",
			MaxAge:   int((365 * 24 * time.Hour).Seconds()),
			SameSite: http.SameSiteLaxMode,
		})

		if sess, ok := middlewares.SessionFrom(c); ok {
			sess.Locale = req.Locale
			if err := h.sessions.UpdateLocale(c.Request().Context(), sess.ID, req.Locale); err != nil {
				h.log.WithError(err).Warn("Failed to store session locale")
			}
		}

		c.Set(middlewares.ContextKeyLocale, req.Locale)
		return h.respondSuccess(c, http.StatusOK, "toast.locale_changed", echo.Map{
			"locale": req.Locale,
			"dir":    i18n.Dir(req.Locale),
		})
	}
}

func (h *MetaHandler) Healthz() echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		results := make(map[string]string, len(h.checks))
		for name, check := range h.checks {
			if err := check(ctx); err != nil {
				h.log.WithField("dependency", name).WithError(err).Warn("Health check failed")
				results[name] = "down"
				status = http.StatusServiceUnavailable
				continue
			}
			results[name] = "up"
		}

		state := "ok"
		if status != http.StatusOK {
			state = "degraded"
		}
		return c.JSON(status, echo.Map{"status": state, "checks": results})
	}
}
