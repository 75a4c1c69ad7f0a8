package middlewares

import (
	"github.com/labstack/echo/v4"

	"github.com/sooquk/sooquk-dashboard/internal/i18n"
	"github.com/sooquk/sooquk-dashboard/internal/pkg/apiclient"
)

// Locale resolves the request language from ?lang, the lang cookie, the session, then
// Accept-Language, and forwards it to the backend through the request context.
func Locale(catalog *i18n.Catalog) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			locale := resolveLocale(c, catalog)
			c.Set(ContextKeyLocale, locale)
			c.Response().Header().Set("Content-Language", locale)

			req := c.Request()
			c.SetRequest(req.WithContext(apiclient.WithLanguage(req.Context(), locale)))
			return next(c)
		}
	}
}

func resolveLocale(c echo.Context, catalog *i18n.Catalog) string {
	if l := c.QueryParam(LocaleQuery); catalog.Supported(l) {
		return l
	}
	if cookie, err := c.Cookie(LocaleCookie); err == nil && catalog.Supported(cookie.Value) {
		return cookie.Value
	}
	if s, ok := SessionFrom(c); ok && catalog.Supported(s.Locale) {
		return s.Locale
	}
	return catalog.Match(c.Request().Header.Get("Accept-Language"))
}
