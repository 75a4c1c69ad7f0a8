package middlewares

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/sooquk/sooquk-dashboard/internal/session"
)

// LoadSession attaches the session named by the cookie, if any. It never rejects a request;
// RequireAuth does.
func LoadSession(store *session.Store, cookieName string, log *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			req := c.Request()
			s, err := store.Load(req.Context(), cookie.Value)
			if err != nil {
				if !errors.Is(err, session.ErrNotFound) {
					log.WithError(err).Error("Failed to load session")
				}
				c.SetCookie(&http.Cookie{Name: cookieName, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})
				return next(c)
			}

			c.Set(ContextKeySession, s)
			c.SetRequest(req.WithContext(session.NewContext(req.Context(), s)))
			return next(c)
		}
	}
}
