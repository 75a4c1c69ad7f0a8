package services

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sooquk/sooquk-dashboard/internal/entities"
	"github.com/sooquk/sooquk-dashboard/internal/models"
	"github.com/sooquk/sooquk-dashboard/internal/pkg/apiclient"
	apperrors "github.com/sooquk/sooquk-dashboard/internal/pkg/errors"
	"github.com/sooquk/sooquk-dashboard/internal/session"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return ts
}

func TestOrderService_UpdateStatus(t *testing.T) {
	h := newHarness(t)
	svc := NewOrderService(h.deps)

	h.backend.on(http.MethodPatch, "/orders/5/status", ok(entities.Order{ID: 5, Status: entities.OrderStatusDelivered}))
	h.backend.on(http.MethodGet, "/vendor-statistics", ok(entities.VendorStatistics{TotalOrders: 1}))

	stats := NewStatisticsService(h.deps)
	ctx := asUser("9", session.RoleShippingCompany)

	_, err := stats.VendorStatistics(asUser("9", session.RoleShippingCompany), 0)
	require.NoError(t, err)

	order, err := svc.UpdateStatus(ctx, 5, models.UpdateOrderStatusReq{Status: "delivered"})
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusDelivered, order.Status)
	assert.Equal(t, "delivered", decodeBody(t, h.backend.body(http.MethodPatch, "/orders/5/status"))["status"])

	_, err = stats.VendorStatistics(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, h.backend.count(http.MethodGet, "/vendor-statistics"), "order change should invalidate statistics")

	assert.Equal(t, []recordedActivity{{ActionUpdateStatus, ResourceOrders, "5"}}, h.recorder.all())
}

func TestOrderService_ShippingCompanyCannotCancel(t *testing.T) {
	h := newHarness(t)
	svc := NewOrderService(h.deps)

	_, err := svc.UpdateStatus(asUser("9", session.RoleShippingCompany), 5, models.UpdateOrderStatusReq{Status: "cancelled"})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	assert.Equal(t, 0, h.backend.count(http.MethodPatch, "/orders/5/status"))
}

func TestOrderService_AdminMaySetAnyStatus(t *testing.T) {
	h := newHarness(t)
	svc := NewOrderService(h.deps)
	h.backend.on(http.MethodPatch, "/orders/5/status", ok(entities.Order{ID: 5, Status: entities.OrderStatusCancelled}))

	order, err := svc.UpdateStatus(asUser("1", session.RoleAdmin), 5, models.UpdateOrderStatusReq{Status: "cancelled"})
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusCancelled, order.Status)
}

func TestOrderService_AssignShipping(t *testing.T) {
	h := newHarness(t)
	svc := NewOrderService(h.deps)
	company := int64(12)
	h.backend.on(http.MethodPatch, "/orders/5/shipping", ok(entities.Order{ID: 5, ShippingCompanyID: &company}))

	order, err := svc.AssignShipping(asUser("1", session.RoleAdmin), 5, models.AssignShippingReq{ShippingCompanyID: 12, TrackingNumber: "TRK1"})
	require.NoError(t, err)
	require.NotNil(t, order.ShippingCompanyID)
	assert.Equal(t, int64(12), *order.ShippingCompanyID)

	body := decodeBody(t, h.backend.body(http.MethodPatch, "/orders/5/shipping"))
	assert.Equal(t, float64(12), body["shipping_company_id"])
	assert.Equal(t, "TRK1", body["tracking_number"])
}

func TestTicketService_ReplyAndClose(t *testing.T) {
	h := newHarness(t)
	svc := NewTicketService(h.deps)
	ctx := asUser("1", session.RoleAdmin)

	h.backend.on(http.MethodPost, "/tickets/3/replies", ok(entities.TicketReply{ID: 30, Message: "On it"}))
	h.backend.on(http.MethodPatch, "/tickets/3/close", ok(entities.Ticket{ID: 3, Status: entities.TicketStatusClosed}))

	reply, err := svc.Reply(ctx, 3, models.TicketReplyReq{Message: "On it"})
	require.NoError(t, err)
	assert.Equal(t, int64(30), reply.ID)

	_, err = svc.Reply(ctx, 3, models.TicketReplyReq{})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	ticket, err := svc.Close(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, entities.TicketStatusClosed, ticket.Status)

	assert.Equal(t, []recordedActivity{
		{ActionReply, ResourceTickets, "3"},
		{ActionClose, ResourceTickets, "3"},
	}, h.recorder.all())
}

func TestTicketService_Create(t *testing.T) {
	h := newHarness(t)
	svc := NewTicketService(h.deps)
	h.backend.on(http.MethodPost, "/tickets", ok(entities.Ticket{ID: 8, Subject: "Payout", Status: entities.TicketStatusOpen}))

	ticket, err := svc.Create(asUser("4", session.RoleVendor), models.TicketReq{Subject: "Payout", Message: "Late", Priority: "high"})
	require.NoError(t, err)
	assert.Equal(t, int64(8), ticket.ID)

	_, err = svc.Create(asUser("4", session.RoleVendor), models.TicketReq{Subject: "Payout", Message: "Late", Priority: "urgent"})
	var fields apperrors.FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Equal(t, "validation.oneof|low medium high", fields["priority"])
}

func TestVendorSubscriptionService(t *testing.T) {
	h := newHarness(t)
	svc := NewVendorSubscriptionService(h.deps)

	h.backend.on(http.MethodPost, "/vendor-subscriptions", ok(entities.VendorSubscription{ID: 6, PlanID: 2, Status: entities.VendorSubscriptionPending}))
	h.backend.on(http.MethodPatch, "/vendor-subscriptions/6/approve", ok(entities.VendorSubscription{ID: 6, Status: entities.VendorSubscriptionActive}))
	h.backend.on(http.MethodPatch, "/vendor-subscriptions/7/reject", ok(entities.VendorSubscription{ID: 7, Status: entities.VendorSubscriptionRejected, RejectReason: "Incomplete"}))

	sub, err := svc.Subscribe(asUser("4", session.RoleVendor), models.SubscribeReq{PlanID: 2})
	require.NoError(t, err)
	assert.Equal(t, entities.VendorSubscriptionPending, sub.Status)

	admin := asUser("1", session.RoleAdmin)
	sub, err = svc.Approve(admin, 6)
	require.NoError(t, err)
	assert.Equal(t, entities.VendorSubscriptionActive, sub.Status)

	_, err = svc.Reject(admin, 7, models.RejectSubscriptionReq{})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	sub, err = svc.Reject(admin, 7, models.RejectSubscriptionReq{Reason: "Incomplete"})
	require.NoError(t, err)
	assert.Equal(t, "Incomplete", sub.RejectReason)

	assert.Equal(t, []recordedActivity{
		{ActionSubscribe, ResourceVendorSubscriptions, "2"},
		{ActionApprove, ResourceVendorSubscriptions, "6"},
		{ActionReject, ResourceVendorSubscriptions, "7"},
	}, h.recorder.all())
}

func TestStatisticsService_VendorSeesOnlyOwnFigures(t *testing.T) {
	h := newHarness(t)
	svc := NewStatisticsService(h.deps)

	h.backend.on(http.MethodGet, "/vendor-statistics", ok(entities.VendorStatistics{VendorID: 4, TotalOrders: 10}))
	h.backend.on(http.MethodGet, "/vendor-statistics/9", ok(entities.VendorStatistics{VendorID: 9, TotalOrders: 99}))

	stats, err := svc.VendorStatistics(asUser("4", session.RoleVendor), 9)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.VendorID)
	assert.Equal(t, 0, h.backend.count(http.MethodGet, "/vendor-statistics/9"))

	stats, err = svc.VendorStatistics(asUser("1", session.RoleAdmin), 9)
	require.NoError(t, err)
	assert.Equal(t, 99, stats.TotalOrders)
}

func TestErrorLogService_Clear(t *testing.T) {
	h := newHarness(t)
	svc := NewErrorLogService(h.deps)
	ctx := asUser("1", session.RoleAdmin)

	h.backend.on(http.MethodGet, "/error-logs", ok([]entities.ErrorLog{{ID: 1, Level: "error"}}))
	h.backend.on(http.MethodDelete, "/error-logs", ok(nil))

	page, err := svc.List(ctx, apiclient.ListQuery{})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 1, page.Meta.TotalPages)

	require.NoError(t, svc.Clear(ctx))

	_, err = svc.List(ctx, apiclient.ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2, h.backend.count(http.MethodGet, "/error-logs"))
	assert.Equal(t, []recordedActivity{{ActionClear, ResourceErrorLogs, ""}}, h.recorder.all())
}
