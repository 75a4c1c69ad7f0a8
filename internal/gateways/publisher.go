package gateway

import "context"

// Publisher delivers an encoded event to the broker under a routing key.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
}
