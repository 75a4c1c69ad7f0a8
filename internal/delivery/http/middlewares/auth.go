package middlewares

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sooquk/sooquk-dashboard/internal/i18n"
	"github.com/sooquk/sooquk-dashboard/internal/models"
)

// WantsHTML reports whether the caller is a browser navigation rather than an API client.
func WantsHTML(c echo.Context) bool {
	req := c.Request()
	return req.Method == http.MethodGet && strings.Contains(req.Header.Get(echo.HeaderAccept), echo.MIMETextHTML)
}

// LoginRedirect is the login URL carrying the page to come back to.
func LoginRedirect(loginPath string, c echo.Context) string {
	returnTo := c.Request().URL.RequestURI()
	if returnTo == "" || returnTo == "/" {
		return loginPath
	}
	return loginPath + "?return_to=" + url.QueryEscape(returnTo)
}

func RequireAuth(catalog *i18n.Catalog, loginPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := SessionFrom(c); ok {
				return next(c)
			}

			redirect := LoginRedirect(loginPath, c)
			if WantsHTML(c) {
				return c.Redirect(http.StatusFound, redirect)
			}

			msg := catalog.T(LocaleFrom(c), "error.authentication_required")
			return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Error:     msg,
				Toast:     &models.Toast{Kind: models.ToastWarning, Message: msg},
				Redirect:  redirect,
				RequestID: c.Response().Header().Get(echo.HeaderXRequestID),
			})
		}
	}
}

func RequireRoles(catalog *i18n.Catalog, allowedRoles ...string) echo.MiddlewareFunc {
	roleSet := make(map[string]struct{})
	for _, r := range allowedRoles {
		roleSet[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s, ok := SessionFrom(c)
			if !ok {
				msg := catalog.T(LocaleFrom(c), "error.authentication_required")
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: msg})
			}

			if _, allowed := roleSet[s.Role]; !allowed {
				msg := catalog.T(LocaleFrom(c), "error.forbidden")
				return c.JSON(http.StatusForbidden, models.ErrorResponse{
					Error:     msg,
					Toast:     &models.Toast{Kind: models.ToastError, Message: msg},
					RequestID: c.Response().Header().Get(echo.HeaderXRequestID),
				})
			}

			return next(c)
		}
	}
}
