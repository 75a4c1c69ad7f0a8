package services

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/sooquk/sooquk-dashboard/internal/pkg/apiclient"
	"github.com/sooquk/sooquk-dashboard/internal/pkg/querycache"
	"github.com/sooquk/sooquk-dashboard/internal/session"
)

// ActivityRecorder receives one entry per successful mutation.
type ActivityRecorder interface {
	Record(ctx context.Context, action, resource, resourceID string)
}

// Deps is what every backend-facing service is built from.
type Deps struct {
	Client    *apiclient.Client
	Cache     *querycache.Cache
	Validator *validator.Validate
	Activity  ActivityRecorder
	Log       *logrus.Logger
}

// cacheScope keys cached data per user so role-filtered answers never cross sessions.
func cacheScope(ctx context.Context) string {
	if s, ok := session.FromContext(ctx); ok && s.UserID != "" {
		return "user-" + s.UserID
	}
	if store, ok := apiclient.TokenStoreFrom(ctx); ok {
		return "svc-" + store.Key()
	}
	return "anonymous"
}

type noopRecorder struct{}

func (noopRecorder) Record(context.Context, string, string, string) {}
