package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sooquk/sooquk-dashboard/internal/i18n"
	"github.com/sooquk/sooquk-dashboard/internal/models"
	apperrors "github.com/sooquk/sooquk-dashboard/internal/pkg/errors"
	"github.com/sooquk/sooquk-dashboard/internal/services"
)

type ErrorLogHandler struct {
	*API
	ErrorLogSvc services.ErrorLogService
}

func NewErrorLogHandler(api *API, svc services.ErrorLogService) *ErrorLogHandler {
	return &ErrorLogHandler{API: api, ErrorLogSvc: svc}
}

func (h *ErrorLogHandler) GetErrorLogs() echo.HandlerFunc {
	return func(c echo.Context) error {
		page, err := h.ErrorLogSvc.List(c.Request().Context(), getListQuery(c, ErrorLogsTable.Filters))
		if err != nil {
			return h.handleError(c, err)
		}
		return h.respondPage(c, ErrorLogsTable, page.Items, page.Meta)
	}
}

func (h *ErrorLogHandler) GetErrorLog() echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := getIDFromPathParam(c, "id")
		if err != nil {
			return h.handleError(c, err)
		}

		entry, err := h.ErrorLogSvc.Get(c.Request().Context(), id)
		if err != nil {
			return h.handleError(c, err)
		}
		return h.respondSuccess(c, http.StatusOK, "", entry)
	}
}

func (h *ErrorLogHandler) DeleteErrorLog() echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := getIDFromPathParam(c, "id")
		if err != nil {
			return h.handleError(c, err)
		}

		if err := h.ErrorLogSvc.Delete(c.Request().Context(), id); err != nil {
			return h.handleError(c, err)
		}
		return h.respondSuccess(c, http.StatusOK, "toast.deleted", nil, h.entity(c, services.ResourceErrorLogs))
	}
}

func (h *ErrorLogHandler) ClearErrorLogs() echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := h.ErrorLogSvc.Clear(c.Request().Context()); err != nil {
			return h.handleError(c, err)
		}
		return h.respondSuccess(c, http.StatusOK, "toast.error_logs_cleared", nil)
	}
}

type StatisticsHandler struct {
	*API
	StatisticsSvc services.StatisticsService
}

func NewStatisticsHandler(api *API, svc services.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{API: api, StatisticsSvc: svc}
}

// GetVendorStatistics answers ?vendor_id= for admins; vendors always get their own figures.
func (h *StatisticsHandler) GetVendorStatistics() echo.HandlerFunc {
	return func(c echo.Context) error {
		var vendorID int64
		if raw := c.QueryParam("vendor_id"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || id <= 0 {
				return h.handleError(c, apperrors.ErrInvalidRequestPayload)
			}
			vendorID = id
		}

		stats, err := h.StatisticsSvc.VendorStatistics(c.Request().Context(), vendorID)
		if err != nil {
			return h.handleError(c, err)
		}

		locale := h.locale(c)
		return c.JSON(http.StatusOK, models.SuccessResponse{
			Message: h.catalog.T(locale, "resource."+services.ResourceVendorStatistics),
			Data: echo.Map{
				"dir":        i18n.Dir(locale),
				"statistics": stats,
			},
		})
	}
}

type BroadcastHandler struct {
	*API
	BroadcastSvc services.BroadcastService
}

func NewBroadcastHandler(api *API, svc services.BroadcastService) *BroadcastHandler {
	return &BroadcastHandler{API: api, BroadcastSvc: svc}
}

func (h *BroadcastHandler) SendBroadcast() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.BroadcastReq
		if err := c.Bind(&req); err != nil {
			return h.handleError(c, apperrors.ErrInvalidRequestPayload)
		}

		result, err := h.BroadcastSvc.Send(c.Request().Context(), req)
		if err != nil {
			return h.handleError(c, err)
		}

		if result.Queued {
			return h.respondSuccess(c, http.StatusAccepted, "toast.broadcast_queued", result)
		}
		return h.respondSuccess(c, http.StatusOK, "toast.broadcast_sent", result)
	}
}

type ActivityHandler struct {
	*API
	ActivitySvc services.ActivityService
	CacheSvc    services.CacheService
}

func NewActivityHandler(api *API, activitySvc services.ActivityService, cacheSvc services.CacheService) *ActivityHandler {
	return &ActivityHandler{API: api, ActivitySvc: activitySvc, CacheSvc: cacheSvc}
}

func (h *ActivityHandler) GetActivity() echo.HandlerFunc {
	return func(c echo.Context) error {
		page, err := h.ActivitySvc.List(c.Request().Context(), getListQuery(c, ActivityTable.Filters))
		if err != nil {
			return h.handleError(c, err)
		}
		return h.respondPage(c, ActivityTable, page.Items, page.Meta)
	}
}

func (h *ActivityHandler) ResetCaches() echo.HandlerFunc {
	return func(c echo.Context) error {
		deleted, err := h.CacheSvc.Reset(c.Request().Context())
		if err != nil {
			return h.handleError(c, err)
		}
		return h.respondSuccess(c, http.StatusOK, "toast.cache_reset", echo.Map{"deleted": deleted}, deleted)
	}
}
