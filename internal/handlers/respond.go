package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sooquk/sooquk-dashboard/internal/delivery/http/middlewares"
	"github.com/sooquk/sooquk-dashboard/internal/i18n"
	"github.com/sooquk/sooquk-dashboard/internal/models"
	"github.com/sooquk/sooquk-dashboard/internal/pkg/apiclient"
	apperrors "github.com/sooquk/sooquk-dashboard/internal/pkg/errors"
	"github.com/sooquk/sooquk-dashboard/internal/pkg/validation"
)

// respondSuccess answers with data and, when toastKey is set, a localized success toast.
func (a *API) respondSuccess(c echo.Context, status int, toastKey string, data interface{}, args ...any) error {
	res := models.SuccessResponse{Message: "OK", Data: data}
	if toastKey != "" {
		res.Message = a.t(c, toastKey, args...)
		res.Toast = &models.Toast{Kind: models.ToastSuccess, Message: res.Message}
	}
	return c.JSON(status, res)
}

func (a *API) respondPage(c echo.Context, table Table, rows interface{}, meta *apiclient.PageMeta) error {
	locale := a.locale(c)

	columns := make([]models.Column, 0, len(table.Columns))
	for _, key := range table.Columns {
		columns = append(columns, models.Column{Key: key, Label: a.catalog.T(locale, "column."+key)})
	}

	var role string
	if s, ok := middlewares.SessionFrom(c); ok {
		role = s.Role
	}

	return c.JSON(http.StatusOK, models.PageResponse{
		Title:   a.catalog.T(locale, "resource."+table.Resource),
		Dir:     i18n.Dir(locale),
		Locale:  locale,
		Columns: columns,
		Rows:    rows,
		Meta:    meta,
		Actions: table.ActionsFor(role),
	})
}

func (a *API) respondError(c echo.Context, status int, key string, fields map[string]string) error {
	msg := a.t(c, key)
	return a.respondMessage(c, status, msg, fields)
}

func (a *API) respondMessage(c echo.Context, status int, msg string, fields map[string]string) error {
	kind := models.ToastError
	if status < http.StatusInternalServerError && status != http.StatusForbidden {
		kind = models.ToastWarning
	}
	return c.JSON(status, models.ErrorResponse{
		Error:     msg,
		Fields:    fields,
		Toast:     &models.Toast{Kind: kind, Message: msg},
		RequestID: c.Response().Header().Get(echo.HeaderXRequestID),
	})
}

// handleError maps service errors onto a status and a localized toast. An expired session
// ends in the login redirect: 302 for a browser navigation, 401 with redirect otherwise.
func (a *API) handleError(c echo.Context, err error) error {
	var fields apperrors.FieldErrors
	if errors.As(err, &fields) {
		return a.respondError(c, http.StatusUnprocessableEntity, "error.validation", validation.Localize(a.catalog, a.locale(c), fields))
	}

	switch {
	case errors.Is(err, apperrors.ErrSessionExpired),
		errors.Is(err, apperrors.ErrInvalidUserSession):
		return a.redirectToLogin(c)

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return a.respondError(c, http.StatusUnauthorized, "error.invalid_credentials", nil)

	case errors.Is(err, apperrors.ErrRoleNotAllowed):
		return a.respondError(c, http.StatusForbidden, "error.role_not_allowed", nil)

	case errors.Is(err, apperrors.ErrInvalidRequestPayload):
		return a.respondError(c, http.StatusBadRequest, "error.invalid_request", nil)

	case errors.Is(err, apperrors.ErrQueueUnavailable):
		a.log.WithError(err).Error("Broadcast queue unavailable")
		return a.respondError(c, http.StatusServiceUnavailable, "error.queue_unavailable", nil)

	case errors.Is(err, apperrors.ErrBackendUnavailable):
		a.log.WithError(err).Error("Backend unavailable")
		return a.respondError(c, http.StatusBadGateway, "error.backend_unavailable", nil)
	}

	if apiErr, ok := apperrors.AsAPIError(err); ok {
		return a.handleAPIError(c, apiErr)
	}

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return a.respondError(c, http.StatusUnprocessableEntity, "error.validation", nil)
	case errors.Is(err, apperrors.ErrUnauthorized):
		return a.respondError(c, http.StatusUnauthorized, "error.unauthorized", nil)
	case errors.Is(err, apperrors.ErrForbidden):
		return a.respondError(c, http.StatusForbidden, "error.forbidden", nil)
	case errors.Is(err, apperrors.ErrNotFound):
		return a.respondError(c, http.StatusNotFound, "error.not_found", nil)
	case errors.Is(err, apperrors.ErrConflict):
		return a.respondError(c, http.StatusConflict, "error.conflict", nil)
	default:
		a.log.WithError(err).Error("Unhandled error")
		return a.respondError(c, http.StatusInternalServerError, "error.internal", nil)
	}
}

// handleAPIError forwards backend rejections. Client errors keep the backend message, which
// is already in the caller's language; server errors get the generic one.
func (a *API) handleAPIError(c echo.Context, apiErr *apperrors.APIError) error {
	var (
		status int
		key    string
	)
	switch {
	case errors.Is(apiErr, apperrors.ErrValidation):
		status, key = http.StatusUnprocessableEntity, "error.validation"
	case errors.Is(apiErr, apperrors.ErrUnauthorized):
		status, key = http.StatusUnauthorized, "error.unauthorized"
	case errors.Is(apiErr, apperrors.ErrForbidden):
		status, key = http.StatusForbidden, "error.forbidden"
	case errors.Is(apiErr, apperrors.ErrNotFound):
		status, key = http.StatusNotFound, "error.not_found"
	case errors.Is(apiErr, apperrors.ErrConflict):
		status, key = http.StatusConflict, "error.conflict"
	default:
		a.log.WithError(apiErr).Error("Backend rejected request")
		return a.respondError(c, http.StatusInternalServerError, "error.internal", nil)
	}

	msg := a.t(c, key)
	if apiErr.Message != "" && status != http.StatusUnauthorized {
		msg = apiErr.Message
	}
	return a.respondMessage(c, status, msg, apiErr.Fields)
}

func (a *API) redirectToLogin(c echo.Context) error {
	a.clearSessionCookie(c)

	redirect := middlewares.LoginRedirect(a.cookie.LoginPath, c)
	if middlewares.WantsHTML(c) {
		return c.Redirect(http.StatusFound, redirect)
	}

	msg := a.t(c, "error.session_expired")
	return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
		Error:     msg,
		Toast:     &models.Toast{Kind: models.ToastWarning, Message: msg},
		Redirect:  redirect,
		RequestID: c.Response().Header().Get(echo.HeaderXRequestID),
	})
}
