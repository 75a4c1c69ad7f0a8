package services

import (
	"context"
	"net/http"

	"github.com/sooquk/sooquk-dashboard/internal/entities"
	"github.com/sooquk/sooquk-dashboard/internal/models"
	"github.com/sooquk/sooquk-dashboard/internal/pkg/apiclient"
)

const (
	ActionSubscribe = "subscribe"
	ActionApprove   = "approve"
	ActionReject    = "reject"
)

type VendorSubscriptionService interface {
	List(ctx context.Context, q apiclient.ListQuery) (*Page[entities.VendorSubscription], error)
	Get(ctx context.Context, id int64) (*entities.VendorSubscription, error)
	Subscribe(ctx context.Context, req models.SubscribeReq) (*entities.VendorSubscription, error)
	Approve(ctx context.Context, id int64) (*entities.VendorSubscription, error)
	Reject(ctx context.Context, id int64, req models.RejectSubscriptionReq) (*entities.VendorSubscription, error)
}

type vendorSubscriptionServiceImpl struct {
	subscriptions *Resource[entities.VendorSubscription, models.SubscribeReq]
	path          string
}

func NewVendorSubscriptionService(deps Deps) VendorSubscriptionService {
	path := deps.Client.Endpoints().VendorSubscriptions
	return &vendorSubscriptionServiceImpl{
		subscriptions: NewResource[entities.VendorSubscription, models.SubscribeReq](deps, ResourceVendorSubscriptions, path, ResourceVendorStatistics),
		path:          path,
	}
}

func (s *vendorSubscriptionServiceImpl) List(ctx context.Context, q apiclient.ListQuery) (*Page[entities.VendorSubscription], error) {
	return s.subscriptions.List(ctx, q)
}

func (s *vendorSubscriptionServiceImpl) Get(ctx context.Context, id int64) (*entities.VendorSubscription, error) {
	return s.subscriptions.Get(ctx, id)
}

func (s *vendorSubscriptionServiceImpl) Subscribe(ctx context.Context, req models.SubscribeReq) (*entities.VendorSubscription, error) {
	var sub entities.VendorSubscription
	if err := s.subscriptions.Mutate(ctx, http.MethodPost, s.path, req, &sub, ActionSubscribe, req.PlanID); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *vendorSubscriptionServiceImpl) Approve(ctx context.Context, id int64) (*entities.VendorSubscription, error) {
	var sub entities.VendorSubscription
	if err := s.subscriptions.Mutate(ctx, http.MethodPatch, apiclient.Action(s.path, id, "approve"), nil, &sub, ActionApprove, id); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *vendorSubscriptionServiceImpl) Reject(ctx context.Context, id int64, req models.RejectSubscriptionReq) (*entities.VendorSubscription, error) {
	var sub entities.VendorSubscription
	if err := s.subscriptions.Mutate(ctx, http.MethodPatch, apiclient.Action(s.path, id, "reject"), req, &sub, ActionReject, id); err != nil {
		return nil, err
	}
	return &sub, nil
}
