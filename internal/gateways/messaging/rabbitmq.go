package messaging

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"

	"github.com/sooquk/sooquk-dashboard/internal/configs"
)

// Handler processes one delivery. A returned error nacks the message; it is requeued
// once and dropped on the second failure.
type Handler func(ctx context.Context, body []byte) error

// ErrDeliveriesClosed is returned by a consume round when the broker closed the channel.
var ErrDeliveriesClosed = errors.New("rabbitmq deliveries closed")

type RabbitMQ struct {
	cfg      configs.RabbitMQConfig
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	log      *logrus.Logger

	// queues are redeclared with their bindings after a reconnect.
	queues map[string][]string

	mu sync.Mutex
}

func NewRabbitMQ(cfg *configs.RabbitMQConfig, log *logrus.Logger) (*RabbitMQ, error) {
	r := &RabbitMQ{
		cfg:      *cfg,
		exchange: cfg.Exchange,
		log:      log,
		queues:   map[string][]string{},
	}
	if err := r.connect(); err != nil {
		return nil, err
	}
	return r, nil
}

// connect dials with retries and opens the channel. Callers hold mu, except NewRabbitMQ.
func (r *RabbitMQ) connect() error {
	var (
		conn *amqp.Connection
		err  error
	)
	attempts := r.cfg.MaxRetries
	if attempts < 1 {
		attempts = 1
	}
	for i := 1; i <= attempts; i++ {
		conn, err = amqp.Dial(r.cfg.URL)
		if err == nil {
			break
		}
		r.log.Warnf("RabbitMQ dial attempt %d/%d failed: %v", i, attempts, err)
		time.Sleep(r.cfg.RetryDelay)
	}
	if err != nil {
		return fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	ch, err := r.openChannel(conn)
	if err != nil {
		conn.Close()
		return err
	}

	r.conn, r.channel = conn, ch
	return nil
}

// openChannel sets up a channel on conn: qos, the exchange and every known queue.
func (r *RabbitMQ) openChannel(conn *amqp.Connection) (*amqp.Channel, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if r.cfg.PrefetchCount > 0 {
		if err := ch.Qos(r.cfg.PrefetchCount, 0, false); err != nil {
			ch.Close()
			return nil, fmt.Errorf("failed to set qos: %w", err)
		}
	}

	err = ch.ExchangeDeclare(
		r.exchange, // name
		"topic",    // type
		true,       // durable
		false,      // auto-deleted
		false,      // internal
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		ch.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", r.exchange, err)
	}

	for name, keys := range r.queues {
		if err := declareQueue(ch, r.exchange, name, keys); err != nil {
			ch.Close()
			return nil, err
		}
	}
	return ch, nil
}

// reconnect reopens the channel, redialling first when the connection itself is gone.
func (r *RabbitMQ) reconnect() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.channel != nil {
		_ = r.channel.Close()
	}

	if r.conn != nil && !r.conn.IsClosed() {
		ch, err := r.openChannel(r.conn)
		if err != nil {
			return err
		}
		r.channel = ch
		r.log.Info("RabbitMQ channel reopened")
		return nil
	}

	if err := r.connect(); err != nil {
		return err
	}
	r.log.Info("RabbitMQ connection re-established")
	return nil
}

func (r *RabbitMQ) Publish(ctx context.Context, routingKey string, body []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if r.closed() {
		if err := r.reconnect(); err != nil {
			return fmt.Errorf("failed to publish %s: %w", routingKey, err)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	err := r.channel.Publish(
		r.exchange, // exchange
		routingKey, // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    uuid.New().String(),
			Timestamp:    time.Now().UTC(),
			Body:         body,
		})
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", routingKey, err)
	}
	return nil
}

func (r *RabbitMQ) closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.conn == nil || r.conn.IsClosed()
}

// DeclareQueue declares a durable queue bound to the exchange under each binding key.
func (r *RabbitMQ) DeclareQueue(name string, bindingKeys ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := declareQueue(r.channel, r.exchange, name, bindingKeys); err != nil {
		return err
	}
	r.queues[name] = bindingKeys
	return nil
}

func declareQueue(ch *amqp.Channel, exchange, name string, bindingKeys []string) error {
	if _, err := ch.QueueDeclare(name, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", name, err)
	}
	for _, key := range bindingKeys {
		if err := ch.QueueBind(name, key, exchange, false, nil); err != nil {
			return fmt.Errorf("failed to bind queue %s to %s: %w", name, key, err)
		}
	}
	return nil
}

// Consume runs workers goroutines over the queue until ctx is cancelled. When the broker drops
// the channel it waits ReconnectDelay, reconnects and consumes again.
func (r *RabbitMQ) Consume(ctx context.Context, queue string, workers int, handler Handler) error {
	round := func(ctx context.Context) error {
		return r.consume(ctx, queue, workers, handler)
	}
	return consumeLoop(ctx, r.cfg.ReconnectDelay, r.log.WithField("queue", queue), round, r.reconnect)
}

func consumeLoop(
	ctx context.Context,
	delay time.Duration,
	log *logrus.Entry,
	round func(ctx context.Context) error,
	reconnect func() error,
) error {
	for {
		err := round(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.WithError(err).Warnf("Consumer stopped, reconnecting in %s", delay)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}

		if err := reconnect(); err != nil {
			log.WithError(err).Error("RabbitMQ reconnect failed")
		}
	}
}

// consume is one round over a single channel; it ends with ErrDeliveriesClosed when the broker
// goes away.
func (r *RabbitMQ) consume(ctx context.Context, queue string, workers int, handler Handler) error {
	r.mu.Lock()
	ch := r.channel
	r.mu.Unlock()

	deliveries, err := ch.Consume(
		queue, // queue
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("failed to consume %s: %w", queue, err)
	}

	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case d, ok := <-deliveries:
					if !ok {
						return
					}
					r.handle(ctx, worker, d, handler)
				}
			}
		}(i)
	}

	wg.Wait()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return ErrDeliveriesClosed
}

func (r *RabbitMQ) handle(ctx context.Context, worker int, d amqp.Delivery, handler Handler) {
	logger := r.log.WithFields(logrus.Fields{
		"worker":      worker,
		"routing_key": d.RoutingKey,
		"message_id":  d.MessageId,
	})

	if err := handler(ctx, d.Body); err != nil {
		requeue := !d.Redelivered
		logger.WithError(err).WithField("requeue", requeue).Error("Message handling failed")
		if nackErr := d.Nack(false, requeue); nackErr != nil {
			logger.WithError(nackErr).Warn("Failed to nack message")
		}
		return
	}

	if err := d.Ack(false); err != nil {
		logger.WithError(err).Warn("Failed to ack message")
	}
}

// Check reports whether the broker connection is still open.
func (r *RabbitMQ) Check(ctx context.Context) error {
	if r.closed() {
		return errors.New("rabbitmq connection closed")
	}
	return nil
}

func (r *RabbitMQ) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.channel != nil {
		if err := r.channel.Close(); err != nil {
			r.log.Warnf("Failed to close rabbitmq channel: %v", err)
		}
	}
	if r.conn != nil {
		if err := r.conn.Close(); err != nil {
			r.log.Warnf("Failed to close rabbitmq connection: %v", err)
		}
	}
}
