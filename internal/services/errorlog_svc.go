package services

import (
	"context"
	"net/http"

	"github.com/sooquk/sooquk-dashboard/internal/entities"
	"github.com/sooquk/sooquk-dashboard/internal/pkg/apiclient"
)

const ActionClear = "clear"

type ErrorLogService interface {
	List(ctx context.Context, q apiclient.ListQuery) (*Page[entities.ErrorLog], error)
	Get(ctx context.Context, id int64) (*entities.ErrorLog, error)
	Delete(ctx context.Context, id int64) error
	Clear(ctx context.Context) error
}

type errorLogServiceImpl struct {
	logs *Resource[entities.ErrorLog, struct{}]
	path string
}

func NewErrorLogService(deps Deps) ErrorLogService {
	path := deps.Client.Endpoints().ErrorLogs
	return &errorLogServiceImpl{
		logs: NewResource[entities.ErrorLog, struct{}](deps, ResourceErrorLogs, path),
		path: path,
	}
}

func (s *errorLogServiceImpl) List(ctx context.Context, q apiclient.ListQuery) (*Page[entities.ErrorLog], error) {
	return s.logs.List(ctx, q)
}

func (s *errorLogServiceImpl) Get(ctx context.Context, id int64) (*entities.ErrorLog, error) {
	return s.logs.Get(ctx, id)
}

func (s *errorLogServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.logs.Delete(ctx, id)
}

func (s *errorLogServiceImpl) Clear(ctx context.Context) error {
	return s.logs.Mutate(ctx, http.MethodDelete, s.path, nil, nil, ActionClear, 0)
}
