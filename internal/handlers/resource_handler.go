package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/sooquk/sooquk-dashboard/internal/pkg/errors"
	"github.com/sooquk/sooquk-dashboard/internal/services"
)

// ResourceHandler serves the table page and the create/edit/delete forms of one resource.
type ResourceHandler[T any, In any] struct {
	*API
	svc   services.ResourceService[T, In]
	table Table
}

func NewResourceHandler[T any, In any](api *API, svc services.ResourceService[T, In], table Table) *ResourceHandler[T, In] {
	return &ResourceHandler[T, In]{
		API:   api,
		svc:   svc,
		table: table,
	}
}

func (h *ResourceHandler[T, In]) List() echo.HandlerFunc {
	return func(c echo.Context) error {
		page, err := h.svc.List(c.Request().Context(), getListQuery(c, h.table.Filters))
		if err != nil {
			return h.handleError(c, err)
		}
		return h.respondPage(c, h.table, page.Items, page.Meta)
	}
}

func (h *ResourceHandler[T, In]) Get() echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := getIDFromPathParam(c, "id")
		if err != nil {
			return h.handleError(c, err)
		}

		item, err := h.svc.Get(c.Request().Context(), id)
		if err != nil {
			return h.handleError(c, err)
		}
		return h.respondSuccess(c, http.StatusOK, "", item)
	}
}

func (h *ResourceHandler[T, In]) Create() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req In
		if err := c.Bind(&req); err != nil {
			return h.handleError(c, apperrors.ErrInvalidRequestPayload)
		}

		item, err := h.svc.Create(c.Request().Context(), req)
		if err != nil {
			h.log.WithField("resource", h.svc.Name()).WithError(err).Warn("Create rejected")
			return h.handleError(c, err)
		}
		return h.respondSuccess(c, http.StatusCreated, "toast.created", item, h.entity(c, h.svc.Name()))
	}
}

func (h *ResourceHandler[T, In]) Update() echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := getIDFromPathParam(c, "id")
		if err != nil {
			return h.handleError(c, err)
		}

		var req In
		if err := c.Bind(&req); err != nil {
			return h.handleError(c, apperrors.ErrInvalidRequestPayload)
		}

		item, err := h.svc.Update(c.Request().Context(), id, req)
		if err != nil {
			h.log.WithField("resource", h.svc.Name()).WithError(err).Warn("Update rejected")
			return h.handleError(c, err)
		}
		return h.respondSuccess(c, http.StatusOK, "toast.updated", item, h.entity(c, h.svc.Name()))
	}
}

func (h *ResourceHandler[T, In]) Delete() echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := getIDFromPathParam(c, "id")
		if err != nil {
			return h.handleError(c, err)
		}

		if err := h.svc.Delete(c.Request().Context(), id); err != nil {
			return h.handleError(c, err)
		}
		return h.respondSuccess(c, http.StatusOK, "toast.deleted", nil, h.entity(c, h.svc.Name()))
	}
}
