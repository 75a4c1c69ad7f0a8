package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sooquk/sooquk-dashboard/internal/entities"
	"github.com/sooquk/sooquk-dashboard/internal/models"
	"github.com/sooquk/sooquk-dashboard/internal/pkg/apiclient"
	apperrors "github.com/sooquk/sooquk-dashboard/internal/pkg/errors"
	"github.com/sooquk/sooquk-dashboard/internal/session"
)

const (
	ActionUpdateStatus   = "update_status"
	ActionAssignShipping = "assign_shipping"
)

// shippingStatuses are the transitions a shipping company may report.
var shippingStatuses = map[entities.OrderStatus]struct{}{
	entities.OrderStatusShipped:   {},
	entities.OrderStatusDelivered: {},
	entities.OrderStatusReturned:  {},
}

type OrderService interface {
	List(ctx context.Context, q apiclient.ListQuery) (*Page[entities.Order], error)
	Get(ctx context.Context, id int64) (*entities.Order, error)
	UpdateStatus(ctx context.Context, id int64, req models.UpdateOrderStatusReq) (*entities.Order, error)
	AssignShipping(ctx context.Context, id int64, req models.AssignShippingReq) (*entities.Order, error)
}

type orderServiceImpl struct {
	orders *Resource[entities.Order, struct{}]
	path   string
}

func NewOrderService(deps Deps) OrderService {
	path := deps.Client.Endpoints().Orders
	return &orderServiceImpl{
		orders: NewResource[entities.Order, struct{}](deps, ResourceOrders, path, ResourceVendorStatistics),
		path:   path,
	}
}

func (s *orderServiceImpl) List(ctx context.Context, q apiclient.ListQuery) (*Page[entities.Order], error) {
	return s.orders.List(ctx, q)
}

func (s *orderServiceImpl) Get(ctx context.Context, id int64) (*entities.Order, error) {
	return s.orders.Get(ctx, id)
}

func (s *orderServiceImpl) UpdateStatus(ctx context.Context, id int64, req models.UpdateOrderStatusReq) (*entities.Order, error) {
	if sess, ok := session.FromContext(ctx); ok && sess.Role == session.RoleShippingCompany {
		if _, allowed := shippingStatuses[entities.OrderStatus(req.Status)]; !allowed {
			return nil, fmt.Errorf("%w: shipping companies cannot set status %q", apperrors.ErrForbidden, req.Status)
		}
	}

	var order entities.Order
	if err := s.orders.Mutate(ctx, http.MethodPatch, apiclient.Action(s.path, id, "status"), req, &order, ActionUpdateStatus, id); err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *orderServiceImpl) AssignShipping(ctx context.Context, id int64, req models.AssignShippingReq) (*entities.Order, error) {
	var order entities.Order
	if err := s.orders.Mutate(ctx, http.MethodPatch, apiclient.Action(s.path, id, "shipping"), req, &order, ActionAssignShipping, id); err != nil {
		return nil, err
	}
	return &order, nil
}
