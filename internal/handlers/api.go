package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/sooquk/sooquk-dashboard/internal/configs"
	"github.com/sooquk/sooquk-dashboard/internal/delivery/http/middlewares"
	"github.com/sooquk/sooquk-dashboard/internal/i18n"
	"github.com/sooquk/sooquk-dashboard/internal/pkg/apiclient"
	apperrors "github.com/sooquk/sooquk-dashboard/internal/pkg/errors"
	"github.com/sooquk/sooquk-dashboard/internal/session"
)

// API carries what every handler needs: translations, the session cookie settings and a logger.
type API struct {
	catalog *i18n.Catalog
	cookie  configs.SessionConfig
	log     *logrus.Logger
}

func NewAPI(catalog *i18n.Catalog, cookie configs.SessionConfig, log *logrus.Logger) *API {
	return &API{
		catalog: catalog,
		cookie:  cookie,
		log:     log,
	}
}

func (a *API) locale(c echo.Context) string {
	if l := middlewares.LocaleFrom(c); l != "" {
		return l
	}
	return a.catalog.Default()
}

func (a *API) t(c echo.Context, key string, args ...any) string {
	return a.catalog.T(a.locale(c), key, args...)
}

// entity is the localized singular name of a resource, used in toasts.
func (a *API) entity(c echo.Context, resource string) string {
	return a.t(c, "entity."+resource)
}

func (a *API) setSessionCookie(c echo.Context, s *session.Session, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     a.cookie.CookieName,
		Value:    s.ID,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   a.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (a *API) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     a.cookie.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   a.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ---- HELPERS -----

func getSessionFromContext(c echo.Context) (*session.Session, error) {
	if s, ok := middlewares.SessionFrom(c); ok {
		return s, nil
	}
	return nil, apperrors.ErrSessionExpired
}

func getIDFromPathParam(c echo.Context, key string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(key), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.ErrInvalidRequestPayload
	}
	return id, nil
}

// getListQuery reads page, limit, search and the allowed filters from the query string.
func getListQuery(c echo.Context, filters []string) apiclient.ListQuery {
	q := apiclient.ListQuery{Search: c.QueryParam("search")}
	q.Page, _ = strconv.Atoi(c.QueryParam("page"))
	q.Limit, _ = strconv.Atoi(c.QueryParam("limit"))

	for _, f := range filters {
		if v := strings.TrimSpace(c.QueryParam(f)); v != "" {
			q = q.WithFilter(f, v)
		}
	}
	return q.Normalize()
}

// safeReturnTo accepts only local absolute paths.
func safeReturnTo(raw string) string {
	if !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.Contains(raw, "\\") {
		return "/"
	}
	return raw
}
