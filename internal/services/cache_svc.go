package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/sooquk/sooquk-dashboard/internal/pkg/querycache"
)

const (
	ActionReset   = "reset"
	ResourceCache = "cache"
)

type CacheService interface {
	Reset(ctx context.Context) (int64, error)
}

type cacheServiceImpl struct {
	cache    *querycache.Cache
	activity ActivityRecorder
	log      *logrus.Logger
}

func NewCacheService(cache *querycache.Cache, activity ActivityRecorder, log *logrus.Logger) CacheService {
	if activity == nil {
		activity = noopRecorder{}
	}
	return &cacheServiceImpl{cache: cache, activity: activity, log: log}
}

func (s *cacheServiceImpl) Reset(ctx context.Context) (int64, error) {
	deleted, err := s.cache.Reset(ctx)
	if err != nil {
		s.log.WithError(err).Error("Failed to reset query cache")
		return 0, err
	}

	s.log.WithField("deleted", deleted).Info("Query cache reset")
	s.activity.Record(ctx, ActionReset, ResourceCache, "")
	return deleted, nil
}
