package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sooquk/sooquk-dashboard/internal/entities"
	"github.com/sooquk/sooquk-dashboard/internal/messaging"
	"github.com/sooquk/sooquk-dashboard/internal/pkg/apiclient"
	"github.com/sooquk/sooquk-dashboard/internal/repositories"
	"github.com/sooquk/sooquk-dashboard/internal/session"
)

type ActivityService interface {
	ActivityRecorder
	List(ctx context.Context, q apiclient.ListQuery) (*Page[entities.Activity], error)
	Store(ctx context.Context, event messaging.ActivityRecordedEvent) error
}

type activityServiceImpl struct {
	repo      repositories.ActivityRepository
	publisher messaging.EventPublisher
	log       *logrus.Logger
}

// NewActivityService records through the publisher when one is given and writes to the
// repository directly otherwise. Either may be nil.
func NewActivityService(repo repositories.ActivityRepository, publisher messaging.EventPublisher, log *logrus.Logger) ActivityService {
	return &activityServiceImpl{
		repo:      repo,
		publisher: publisher,
		log:       log,
	}
}

// Record never fails the caller; the mutation it describes has already happened.
func (s *activityServiceImpl) Record(ctx context.Context, action, resource, resourceID string) {
	event := messaging.ActivityRecordedEvent{
		ID:         uuid.New(),
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		OccurredAt: time.Now().UTC(),
	}
	if sess, ok := session.FromContext(ctx); ok {
		event.UserID = sess.UserID
		event.UserName = sess.Name
		event.Role = sess.Role
	}

	ctx = context.WithoutCancel(ctx)

	var err error
	switch {
	case s.publisher != nil:
		err = s.publisher.PublishActivityRecorded(ctx, event)
	case s.repo != nil:
		err = s.Store(ctx, event)
	default:
		return
	}
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"action":   action,
			"resource": resource,
			"error":    err,
		}).Warn("Failed to record activity")
	}
}

func (s *activityServiceImpl) Store(ctx context.Context, event messaging.ActivityRecordedEvent) error {
	return s.repo.Insert(ctx, entities.Activity{
		ID:         event.ID,
		UserID:     event.UserID,
		UserName:   event.UserName,
		Role:       event.Role,
		Action:     event.Action,
		Resource:   event.Resource,
		ResourceID: event.ResourceID,
		CreatedAt:  event.OccurredAt,
	})
}

func (s *activityServiceImpl) List(ctx context.Context, q apiclient.ListQuery) (*Page[entities.Activity], error) {
	q = q.Normalize()
	resource := q.Filters["resource"]

	items, err := s.repo.List(ctx, repositories.ActivityFilter{
		Resource: resource,
		Limit:    q.Limit,
		Offset:   (q.Page - 1) * q.Limit,
	})
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Count(ctx, resource)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(q.Limit) - 1) / int64(q.Limit))
	if totalPages == 0 {
		totalPages = 1
	}

	return &Page[entities.Activity]{
		Items: items,
		Meta: &apiclient.PageMeta{
			Page:       q.Page,
			Limit:      q.Limit,
			Total:      int(total),
			TotalPages: totalPages,
		},
	}, nil
}
