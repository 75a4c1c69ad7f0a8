package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sooquk/sooquk-dashboard/internal/messaging"
	"github.com/sooquk/sooquk-dashboard/internal/models"
	"github.com/sooquk/sooquk-dashboard/internal/pkg/apiclient"
	apperrors "github.com/sooquk/sooquk-dashboard/internal/pkg/errors"
	"github.com/sooquk/sooquk-dashboard/internal/pkg/validation"
	"github.com/sooquk/sooquk-dashboard/internal/session"
)

const ActionSend = "send"

type BroadcastResult struct {
	ID     uuid.UUID `json:"id"`
	Queued bool      `json:"queued"`
}

type BroadcastService interface {
	// Send queues the broadcast when a publisher is configured and delivers it inline otherwise.
	Send(ctx context.Context, req models.BroadcastReq) (*BroadcastResult, error)
	// Deliver hands a broadcast to the backend email or notification endpoint.
	Deliver(ctx context.Context, event messaging.BroadcastRequestedEvent) error
}

type broadcastServiceImpl struct {
	client    *apiclient.Client
	publisher messaging.EventPublisher
	validator *validator.Validate
	activity  ActivityRecorder
	log       *logrus.Logger
}

func NewBroadcastService(deps Deps, publisher messaging.EventPublisher) BroadcastService {
	activity := deps.Activity
	if activity == nil {
		activity = noopRecorder{}
	}
	return &broadcastServiceImpl{
		client:    deps.Client,
		publisher: publisher,
		validator: deps.Validator,
		activity:  activity,
		log:       deps.Log,
	}
}

func (s *broadcastServiceImpl) Send(ctx context.Context, req models.BroadcastReq) (*BroadcastResult, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}

	event := messaging.BroadcastRequestedEvent{
		ID:          uuid.New(),
		Channel:     req.Channel,
		Audience:    req.Audience,
		SubjectEn:   req.SubjectEn,
		SubjectAr:   req.SubjectAr,
		BodyEn:      req.BodyEn,
		BodyAr:      req.BodyAr,
		RequestedAt: time.Now().UTC(),
	}
	if sess, ok := session.FromContext(ctx); ok {
		event.RequestedBy = sess.UserID
	}

	result := &BroadcastResult{ID: event.ID}
	if s.publisher != nil {
		if err := s.publisher.PublishBroadcastRequested(ctx, event); err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrQueueUnavailable, err)
		}
		result.Queued = true
	} else if err := s.Deliver(ctx, event); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"broadcast_id": event.ID,
		"channel":      event.Channel,
		"audience":     event.Audience,
		"queued":       result.Queued,
	}).Info("Broadcast accepted")

	s.activity.Record(ctx, ActionSend, ResourceBroadcasts, event.ID.String())
	return result, nil
}

type broadcastPayload struct {
	Audience  string `json:"audience"`
	SubjectEn string `json:"subject_en"`
	SubjectAr string `json:"subject_ar"`
	BodyEn    string `json:"body_en"`
	BodyAr    string `json:"body_ar"`
}

func (s *broadcastServiceImpl) Deliver(ctx context.Context, event messaging.BroadcastRequestedEvent) error {
	var path string
	switch event.Channel {
	case models.BroadcastEmail:
		path = s.client.Endpoints().Emails
	case models.BroadcastNotification:
		path = s.client.Endpoints().Notifications
	default:
		return fmt.Errorf("%w: unknown broadcast channel %q", apperrors.ErrValidation, event.Channel)
	}

	_, err := s.client.Do(ctx, apiclient.Request{
		Method: http.MethodPost,
		Path:   path,
		Body: broadcastPayload{
			Audience:  event.Audience,
			SubjectEn: event.SubjectEn,
			SubjectAr: event.SubjectAr,
			BodyEn:    event.BodyEn,
			BodyAr:    event.BodyAr,
		},
	}, nil)
	if err != nil {
		return fmt.Errorf("deliver %s broadcast %s: %w", event.Channel, event.ID, err)
	}
	return nil
}
