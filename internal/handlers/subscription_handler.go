package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sooquk/sooquk-dashboard/internal/models"
	apperrors "github.com/sooquk/sooquk-dashboard/internal/pkg/errors"
	"github.com/sooquk/sooquk-dashboard/internal/services"
)

type VendorSubscriptionHandler struct {
	*API
	SubscriptionSvc services.VendorSubscriptionService
}

func NewVendorSubscriptionHandler(api *API, svc services.VendorSubscriptionService) *VendorSubscriptionHandler {
	return &VendorSubscriptionHandler{API: api, SubscriptionSvc: svc}
}

func (h *VendorSubscriptionHandler) GetSubscriptions() echo.HandlerFunc {
	return func(c echo.Context) error {
		page, err := h.SubscriptionSvc.List(c.Request().Context(), getListQuery(c, VendorSubscriptionsTable.Filters))
		if err != nil {
			return h.handleError(c, err)
		}
		return h.respondPage(c, VendorSubscriptionsTable, page.Items, page.Meta)
	}
}

func (h *VendorSubscriptionHandler) GetSubscription() echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := getIDFromPathParam(c, "id")
		if err != nil {
			return h.handleError(c, err)
		}

		sub, err := h.SubscriptionSvc.Get(c.Request().Context(), id)
		if err != nil {
			return h.handleError(c, err)
		}
		return h.respondSuccess(c, http.StatusOK, "", sub)
	}
}

func (h *VendorSubscriptionHandler) Subscribe() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.SubscribeReq
		if err := c.Bind(&req); err != nil {
			return h.handleError(c, apperrors.ErrInvalidRequestPayload)
		}

		sub, err := h.SubscriptionSvc.Subscribe(c.Request().Context(), req)
		if err != nil {
			return h.handleError(c, err)
		}
		return h.respondSuccess(c, http.StatusCreated, "toast.subscribed", sub)
	}
}

func (h *VendorSubscriptionHandler) Approve() echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := getIDFromPathParam(c, "id")
		if err != nil {
			return h.handleError(c, err)
		}

		sub, err := h.SubscriptionSvc.Approve(c.Request().Context(), id)
		if err != nil {
			return h.handleError(c, err)
		}
		return h.respondSuccess(c, http.StatusOK, "toast.subscription_approved", sub)
	}
}

func (h *VendorSubscriptionHandler) Reject() echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := getIDFromPathParam(c, "id")
		if err != nil {
			return h.handleError(c, err)
		}

		var req models.RejectSubscriptionReq
		if err := c.Bind(&req); err != nil {
			return h.handleError(c, apperrors.ErrInvalidRequestPayload)
		}

		sub, err := h.SubscriptionSvc.Reject(c.Request().Context(), id, req)
		if err != nil {
			return h.handleError(c, err)
		}
		return h.respondSuccess(c, http.StatusOK, "toast.subscription_rejected", sub)
	}
}
