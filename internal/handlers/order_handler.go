package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sooquk/sooquk-dashboard/internal/models"
	apperrors "github.com/sooquk/sooquk-dashboard/internal/pkg/errors"
	"github.com/sooquk/sooquk-dashboard/internal/services"
)

type OrderHandler struct {
	*API
	OrderSvc services.OrderService
}

func NewOrderHandler(api *API, orderSvc services.OrderService) *OrderHandler {
	return &OrderHandler{
		API:      api,
		OrderSvc: orderSvc,
	}
}

func (h *OrderHandler) GetOrders() echo.HandlerFunc {
	return func(c echo.Context) error {
		page, err := h.OrderSvc.List(c.Request().Context(), getListQuery(c, OrdersTable.Filters))
		if err != nil {
			h.log.WithField("error", err).Error("Error from the service when retrieving orders")
			return h.handleError(c, err)
		}
		return h.respondPage(c, OrdersTable, page.Items, page.Meta)
	}
}

func (h *OrderHandler) GetOrderDetails() echo.HandlerFunc {
	return func(c echo.Context) error {
		orderID, err := getIDFromPathParam(c, "id")
		if err != nil {
			return h.handleError(c, err)
		}

		order, err := h.OrderSvc.Get(c.Request().Context(), orderID)
		if err != nil {
			return h.handleError(c, err)
		}
		return h.respondSuccess(c, http.StatusOK, "", order)
	}
}

func (h *OrderHandler) UpdateOrderStatus() echo.HandlerFunc {
	return func(c echo.Context) error {
		orderID, err := getIDFromPathParam(c, "id")
		if err != nil {
			return h.handleError(c, err)
		}

		var req models.UpdateOrderStatusReq
		if err := c.Bind(&req); err != nil {
			return h.handleError(c, apperrors.ErrInvalidRequestPayload)
		}

		order, err := h.OrderSvc.UpdateStatus(c.Request().Context(), orderID, req)
		if err != nil {
			return h.handleError(c, err)
		}
		return h.respondSuccess(c, http.StatusOK, "toast.status_updated", order)
	}
}

func (h *OrderHandler) AssignShipping() echo.HandlerFunc {
	return func(c echo.Context) error {
		orderID, err := getIDFromPathParam(c, "id")
		if err != nil {
			return h.handleError(c, err)
		}

		var req models.AssignShippingReq
		if err := c.Bind(&req); err != nil {
			return h.handleError(c, apperrors.ErrInvalidRequestPayload)
		}

		order, err := h.OrderSvc.AssignShipping(c.Request().Context(), orderID, req)
		if err != nil {
			return h.handleError(c, err)
		}
		return h.respondSuccess(c, http.StatusOK, "toast.shipping_assigned", order)
	}
}
