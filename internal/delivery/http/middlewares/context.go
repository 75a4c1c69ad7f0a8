package middlewares

import (
	"github.com/labstack/echo/v4"

	"github.com/sooquk/sooquk-dashboard/internal/session"
)

const (
	ContextKeySession = "session"
	ContextKeyLocale  = "locale"

	LocaleCookie = "lang"
	LocaleQuery  = "lang"
)

func SessionFrom(c echo.Context) (*session.Session, bool) {
	s, ok := c.Get(ContextKeySession).(*session.Session)
	return s, ok && s != nil
}

func LocaleFrom(c echo.Context) string {
	locale, _ := c.Get(ContextKeyLocale).(string)
	return locale
}
