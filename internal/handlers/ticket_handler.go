package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sooquk/sooquk-dashboard/internal/models"
	apperrors "github.com/sooquk/sooquk-dashboard/internal/pkg/errors"
	"github.com/sooquk/sooquk-dashboard/internal/services"
)

type TicketHandler struct {
	*API
	TicketSvc services.TicketService
}

func NewTicketHandler(api *API, ticketSvc services.TicketService) *TicketHandler {
	return &TicketHandler{API: api, TicketSvc: ticketSvc}
}

func (h *TicketHandler) GetTickets() echo.HandlerFunc {
	return func(c echo.Context) error {
		page, err := h.TicketSvc.List(c.Request().Context(), getListQuery(c, TicketsTable.Filters))
		if err != nil {
			return h.handleError(c, err)
		}
		return h.respondPage(c, TicketsTable, page.Items, page.Meta)
	}
}

func (h *TicketHandler) GetTicket() echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := getIDFromPathParam(c, "id")
		if err != nil {
			return h.handleError(c, err)
		}

		ticket, err := h.TicketSvc.Get(c.Request().Context(), id)
		if err != nil {
			return h.handleError(c, err)
		}
		return h.respondSuccess(c, http.StatusOK, "", ticket)
	}
}

func (h *TicketHandler) CreateTicket() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.TicketReq
		if err := c.Bind(&req); err != nil {
			return h.handleError(c, apperrors.ErrInvalidRequestPayload)
		}

		ticket, err := h.TicketSvc.Create(c.Request().Context(), req)
		if err != nil {
			return h.handleError(c, err)
		}
		return h.respondSuccess(c, http.StatusCreated, "toast.created", ticket, h.entity(c, services.ResourceTickets))
	}
}

func (h *TicketHandler) ReplyTicket() echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := getIDFromPathParam(c, "id")
		if err != nil {
			return h.handleError(c, err)
		}

		var req models.TicketReplyReq
		if err := c.Bind(&req); err != nil {
			return h.handleError(c, apperrors.ErrInvalidRequestPayload)
		}

		reply, err := h.TicketSvc.Reply(c.Request().Context(), id, req)
		if err != nil {
			return h.handleError(c, err)
		}
		return h.respondSuccess(c, http.StatusCreated, "toast.reply_sent", reply)
	}
}

func (h *TicketHandler) CloseTicket() echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := getIDFromPathParam(c, "id")
		if err != nil {
			return h.handleError(c, err)
		}

		ticket, err := h.TicketSvc.Close(c.Request().Context(), id)
		if err != nil {
			return h.handleError(c, err)
		}
		return h.respondSuccess(c, http.StatusOK, "toast.ticket_closed", ticket)
	}
}
