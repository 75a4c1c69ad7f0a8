package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	gateway "github.com/sooquk/sooquk-dashboard/internal/gateways"
)

type EventPublisher interface {
	PublishActivityRecorded(ctx context.Context, event ActivityRecordedEvent) error
	PublishBroadcastRequested(ctx context.Context, event BroadcastRequestedEvent) error
}

type EventPublisherImpl struct {
	publisher gateway.Publisher
	log       *logrus.Logger
}

func NewEventPublisher(publisher gateway.Publisher, log *logrus.Logger) *EventPublisherImpl {
	return &EventPublisherImpl{
		publisher: publisher,
		log:       log,
	}
}

func (p *EventPublisherImpl) PublishActivityRecorded(ctx context.Context, event ActivityRecordedEvent) error {
	eventWithType := struct {
		Type string `json:"type"`
		ActivityRecordedEvent
	}{
		Type:                  RoutingActivityRecorded,
		ActivityRecordedEvent: event,
	}

	if err := p.publish(ctx, RoutingActivityRecorded, eventWithType); err != nil {
		p.log.Errorf("Failed to publish activity recorded event: %v", err)
		return err
	}

	p.log.Debugf("Published %s event for %s %s", RoutingActivityRecorded, event.Action, event.Resource)
	return nil
}

func (p *EventPublisherImpl) PublishBroadcastRequested(ctx context.Context, event BroadcastRequestedEvent) error {
	eventWithType := struct {
		Type string `json:"type"`
		BroadcastRequestedEvent
	}{
		Type:                    "broadcast.requested",
		BroadcastRequestedEvent: event,
	}

	if err := p.publish(ctx, event.RoutingKey(), eventWithType); err != nil {
		p.log.Errorf("Failed to publish broadcast requested event: %v", err)
		return err
	}

	p.log.Infof("Published %s event: %s", event.RoutingKey(), event.ID)
	return nil
}

func (p *EventPublisherImpl) publish(ctx context.Context, routingKey string, event any) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", routingKey, err)
	}
	return p.publisher.Publish(ctx, routingKey, body)
}
