package services

import (
	"context"
	"net/http"

	"github.com/sooquk/sooquk-dashboard/internal/entities"
	"github.com/sooquk/sooquk-dashboard/internal/models"
	"github.com/sooquk/sooquk-dashboard/internal/pkg/apiclient"
)

const (
	ActionReply = "reply"
	ActionClose = "close"
)

type TicketService interface {
	List(ctx context.Context, q apiclient.ListQuery) (*Page[entities.Ticket], error)
	Get(ctx context.Context, id int64) (*entities.Ticket, error)
	Create(ctx context.Context, req models.TicketReq) (*entities.Ticket, error)
	Reply(ctx context.Context, id int64, req models.TicketReplyReq) (*entities.TicketReply, error)
	Close(ctx context.Context, id int64) (*entities.Ticket, error)
}

type ticketServiceImpl struct {
	tickets *Resource[entities.Ticket, models.TicketReq]
	path    string
}

func NewTicketService(deps Deps) TicketService {
	path := deps.Client.Endpoints().Tickets
	return &ticketServiceImpl{
		tickets: NewResource[entities.Ticket, models.TicketReq](deps, ResourceTickets, path),
		path:    path,
	}
}

func (s *ticketServiceImpl) List(ctx context.Context, q apiclient.ListQuery) (*Page[entities.Ticket], error) {
	return s.tickets.List(ctx, q)
}

func (s *ticketServiceImpl) Get(ctx context.Context, id int64) (*entities.Ticket, error) {
	return s.tickets.Get(ctx, id)
}

func (s *ticketServiceImpl) Create(ctx context.Context, req models.TicketReq) (*entities.Ticket, error) {
	return s.tickets.Create(ctx, req)
}

func (s *ticketServiceImpl) Reply(ctx context.Context, id int64, req models.TicketReplyReq) (*entities.TicketReply, error) {
	var reply entities.TicketReply
	if err := s.tickets.Mutate(ctx, http.MethodPost, apiclient.Action(s.path, id, "replies"), req, &reply, ActionReply, id); err != nil {
		return nil, err
	}
	return &reply, nil
}

func (s *ticketServiceImpl) Close(ctx context.Context, id int64) (*entities.Ticket, error) {
	var ticket entities.Ticket
	if err := s.tickets.Mutate(ctx, http.MethodPatch, apiclient.Action(s.path, id, "close"), nil, &ticket, ActionClose, id); err != nil {
		return nil, err
	}
	return &ticket, nil
}
