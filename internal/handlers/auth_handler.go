package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sooquk/sooquk-dashboard/internal/delivery/http/middlewares"
	"github.com/sooquk/sooquk-dashboard/internal/i18n"
	"github.com/sooquk/sooquk-dashboard/internal/models"
	apperrors "github.com/sooquk/sooquk-dashboard/internal/pkg/errors"
	"github.com/sooquk/sooquk-dashboard/internal/services"
	"github.com/sooquk/sooquk-dashboard/internal/session"
)

type AuthHandler struct {
	*API
	AuthSvc services.AuthService
}

func NewAuthHandler(api *API, authSvc services.AuthService) *AuthHandler {
	return &AuthHandler{API: api, AuthSvc: authSvc}
}

type sessionView struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Locale string `json:"locale"`
	Dir    string `json:"dir"`
}

func toSessionView(s *session.Session) sessionView {
	return sessionView{
		UserID: s.UserID,
		Name:   s.Name,
		Email:  s.Email,
		Role:   s.Role,
		Locale: s.Locale,
		Dir:    i18n.Dir(s.Locale),
	}
}

func (h *AuthHandler) Login() echo.HandlerFunc {
	return func(c echo.Context) error {
		h.log.Infof("Received login request from IP: %s", c.RealIP())

		var req models.LoginReq
		if err := c.Bind(&req); err != nil {
			return h.handleError(c, apperrors.ErrInvalidRequestPayload)
		}

		sess, err := h.AuthSvc.Login(c.Request().Context(), req, h.locale(c))
		if err != nil {
			return h.handleError(c, err)
		}

		h.setSessionCookie(c, sess, sess.ExpiresAt.Sub(sess.CreatedAt))
		c.Set(middlewares.ContextKeyLocale, sess.Locale)

		return h.respondSuccess(c, http.StatusOK, "toast.login", echo.Map{
			"user":     toSessionView(sess),
			"redirect": safeReturnTo(c.QueryParam("return_to")),
		}, sess.Name)
	}
}

func (h *AuthHandler) Logout() echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := getSessionFromContext(c)
		if err != nil {
			return h.handleError(c, err)
		}

		if err := h.AuthSvc.Logout(c.Request().Context(), sess); err != nil {
			return h.handleError(c, err)
		}

		h.clearSessionCookie(c)
		return h.respondSuccess(c, http.StatusOK, "toast.logout", echo.Map{"redirect": h.cookie.LoginPath})
	}
}

func (h *AuthHandler) Me() echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := getSessionFromContext(c)
		if err != nil {
			return h.handleError(c, err)
		}

		user, err := h.AuthSvc.Me(c.Request().Context())
		if err != nil {
			return h.handleError(c, err)
		}

		return h.respondSuccess(c, http.StatusOK, "", echo.Map{
			"session": toSessionView(sess),
			"user":    user,
		})
	}
}
