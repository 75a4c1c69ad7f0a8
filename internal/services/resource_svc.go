package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/sooquk/sooquk-dashboard/internal/pkg/apiclient"
	"github.com/sooquk/sooquk-dashboard/internal/pkg/querycache"
	"github.com/sooquk/sooquk-dashboard/internal/pkg/validation"
)

const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Page is one page of a backend collection.
type Page[T any] struct {
	Items []T                 `json:"items"`
	Meta  *apiclient.PageMeta `json:"meta,omitempty"`
}

type ResourceService[T any, In any] interface {
	Name() string
	List(ctx context.Context, q apiclient.ListQuery) (*Page[T], error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, in In) (*T, error)
	Update(ctx context.Context, id int64, in In) (*T, error)
	Delete(ctx context.Context, id int64) error
}

// Resource is the cache-aside CRUD service shared by every dashboard table. Name is both the
// cache namespace and the activity resource; dependents are invalidated with it on mutation.
type Resource[T any, In any] struct {
	deps       Deps
	name       string
	path       string
	dependents []string
	check      func(In) error
}

func NewResource[T any, In any](deps Deps, name, path string, dependents ...string) *Resource[T, In] {
	if deps.Activity == nil {
		deps.Activity = noopRecorder{}
	}
	return &Resource[T, In]{
		deps:       deps,
		name:       name,
		path:       path,
		dependents: dependents,
	}
}

// WithCheck adds a rule that struct tags cannot express; it runs after tag validation.
func (r *Resource[T, In]) WithCheck(check func(In) error) *Resource[T, In] {
	r.check = check
	return r
}

func (r *Resource[T, In]) Name() string { return r.name }

func (r *Resource[T, In]) List(ctx context.Context, q apiclient.ListQuery) (*Page[T], error) {
	q = q.Normalize()
	key := querycache.Key(cacheScope(ctx), r.name, "list?"+q.CacheKey())

	var cached Page[T]
	if r.fromCache(ctx, key, &cached) {
		return &cached, nil
	}

	var items []T
	resp, err := r.deps.Client.Do(ctx, apiclient.Request{
		Method: http.MethodGet,
		Path:   r.path,
		Query:  q.Values(),
	}, &items)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.name, err)
	}

	if items == nil {
		items = []T{}
	}
	page := &Page[T]{Items: items, Meta: resp.Meta}
	if page.Meta == nil {
		page.Meta = &apiclient.PageMeta{Page: q.Page, Limit: q.Limit, Total: len(items), TotalPages: 1}
	}

	r.toCache(ctx, key, page)
	return page, nil
}

func (r *Resource[T, In]) Get(ctx context.Context, id int64) (*T, error) {
	key := querycache.Key(cacheScope(ctx), r.name, "item/"+strconv.FormatInt(id, 10))

	var cached T
	if r.fromCache(ctx, key, &cached) {
		return &cached, nil
	}

	var item T
	if _, err := r.deps.Client.Do(ctx, apiclient.Request{
		Method: http.MethodGet,
		Path:   apiclient.Item(r.path, id),
	}, &item); err != nil {
		return nil, fmt.Errorf("get %s %d: %w", r.name, id, err)
	}

	r.toCache(ctx, key, &item)
	return &item, nil
}

func (r *Resource[T, In]) Create(ctx context.Context, in In) (*T, error) {
	if err := r.validate(in); err != nil {
		return nil, err
	}

	var created T
	if _, err := r.deps.Client.Do(ctx, apiclient.Request{
		Method: http.MethodPost,
		Path:   r.path,
		Body:   in,
	}, &created); err != nil {
		return nil, fmt.Errorf("create %s: %w", r.name, err)
	}

	r.afterMutation(ctx, ActionCreate, "")
	return &created, nil
}

func (r *Resource[T, In]) Update(ctx context.Context, id int64, in In) (*T, error) {
	if err := r.validate(in); err != nil {
		return nil, err
	}

	var updated T
	if _, err := r.deps.Client.Do(ctx, apiclient.Request{
		Method: http.MethodPut,
		Path:   apiclient.Item(r.path, id),
		Body:   in,
	}, &updated); err != nil {
		return nil, fmt.Errorf("update %s %d: %w", r.name, id, err)
	}

	r.afterMutation(ctx, ActionUpdate, strconv.FormatInt(id, 10))
	return &updated, nil
}

func (r *Resource[T, In]) Delete(ctx context.Context, id int64) error {
	if _, err := r.deps.Client.Do(ctx, apiclient.Request{
		Method: http.MethodDelete,
		Path:   apiclient.Item(r.path, id),
	}, nil); err != nil {
		return fmt.Errorf("delete %s %d: %w", r.name, id, err)
	}

	r.afterMutation(ctx, ActionDelete, strconv.FormatInt(id, 10))
	return nil
}

// Mutate runs a named action (status change, reply, approve...) with the same validation,
// invalidation and audit as the CRUD operations. body may be nil.
func (r *Resource[T, In]) Mutate(ctx context.Context, method, path string, body any, out any, action string, id int64) error {
	if body != nil {
		if err := validation.Struct(r.deps.Validator, body); err != nil {
			return err
		}
	}

	if _, err := r.deps.Client.Do(ctx, apiclient.Request{
		Method: method,
		Path:   path,
		Body:   body,
	}, out); err != nil {
		return fmt.Errorf("%s %s: %w", action, r.name, err)
	}

	resourceID := ""
	if id > 0 {
		resourceID = strconv.FormatInt(id, 10)
	}
	r.afterMutation(ctx, action, resourceID)
	return nil
}

// Fetch is a cache-aside GET of an arbitrary path under this resource's namespace.
func (r *Resource[T, In]) Fetch(ctx context.Context, path string, out any) error {
	key := querycache.Key(cacheScope(ctx), r.name, "fetch:"+path)
	if r.fromCache(ctx, key, out) {
		return nil
	}

	if _, err := r.deps.Client.Do(ctx, apiclient.Request{Method: http.MethodGet, Path: path}, out); err != nil {
		return fmt.Errorf("fetch %s: %w", r.name, err)
	}

	r.toCache(ctx, key, out)
	return nil
}

func (r *Resource[T, In]) validate(in In) error {
	if err := validation.Struct(r.deps.Validator, in); err != nil {
		return err
	}
	if r.check != nil {
		return r.check(in)
	}
	return nil
}

func (r *Resource[T, In]) afterMutation(ctx context.Context, action, resourceID string) {
	resources := append([]string{r.name}, r.dependents...)
	if _, err := r.deps.Cache.Invalidate(ctx, resources...); err != nil {
		r.deps.Log.WithFields(logrus.Fields{
			"resources": resources,
			"error":     err,
		}).Warn("Failed to invalidate query cache")
	}

	r.deps.Activity.Record(ctx, action, r.name, resourceID)
}

func (r *Resource[T, In]) fromCache(ctx context.Context, key string, dst any) bool {
	err := r.deps.Cache.Get(ctx, key, dst)
	if err == nil {
		return true
	}
	if !errors.Is(err, querycache.ErrMiss) {
		r.deps.Log.WithField("key", key).WithError(err).Warn("Query cache read failed")
	}
	return false
}

func (r *Resource[T, In]) toCache(ctx context.Context, key string, value any) {
	if err := r.deps.Cache.Set(ctx, key, value); err != nil {
		r.deps.Log.WithField("key", key).WithError(err).Warn("Query cache write failed")
	}
}
