package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sooquk/sooquk-dashboard/internal/configs"
	gatewayMsg "github.com/sooquk/sooquk-dashboard/internal/gateways/messaging"
	dashboardMsg "github.com/sooquk/sooquk-dashboard/internal/messaging"
	"github.com/sooquk/sooquk-dashboard/internal/pkg/apiclient"
	apperrors "github.com/sooquk/sooquk-dashboard/internal/pkg/errors"
	"github.com/sooquk/sooquk-dashboard/internal/pkg/logger"
	"github.com/sooquk/sooquk-dashboard/internal/pkg/validation"
	"github.com/sooquk/sooquk-dashboard/internal/services"
)

const workerCount = 3

func main() {
	log := logger.NewLogger()
	log.Info("Starting broadcast worker...")

	var (
		backendCfg configs.BackendConfig
		rmqCfg     configs.RabbitMQConfig
	)
	if err := configs.LoadSections(log, &backendCfg, &rmqCfg); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if rmqCfg.URL == "" {
		log.Fatal("RABBITMQ_URL is required for the broadcast worker")
	}

	rmq, err := gatewayMsg.NewRabbitMQ(&rmqCfg, log)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer rmq.Close()

	if err := rmq.DeclareQueue(dashboardMsg.QueueBroadcasts, dashboardMsg.RoutingBroadcastPrefix+"*"); err != nil {
		log.Fatalf("Failed to setup queue: %v", err)
	}

	client := apiclient.NewClient(
		backendCfg.BaseURL,
		&http.Client{Timeout: backendCfg.Timeout},
		apiclient.DefaultEndpoints,
		log,
	)
	authService := services.NewAuthService(client, nil, nil, validation.New(), log)
	broadcastService := services.NewBroadcastService(services.Deps{
		Client:    client,
		Validator: validation.New(),
		Log:       log,
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tokens, err := authService.ServiceLogin(ctx, backendCfg.ServiceEmail, backendCfg.ServicePassword)
	if err != nil {
		log.Fatalf("Service account login failed: %v", err)
	}
	store := apiclient.NewMemoryTokenStore("broadcast-worker", tokens)
	ctx = apiclient.WithTokenStore(ctx, store)

	// Message handler
	handler := func(ctx context.Context, body []byte) error {
		var event dashboardMsg.BroadcastRequestedEvent
		if err := json.Unmarshal(body, &event); err != nil {
			return fmt.Errorf("failed to unmarshal: %w", err)
		}

		log.WithField("broadcast_id", event.ID).Infof("Delivering %s broadcast to %s", event.Channel, event.Audience)

		err := broadcastService.Deliver(ctx, event)
		if !errors.Is(err, apperrors.ErrSessionExpired) {
			return err
		}

		// The refresh token ran out as well; sign in again and retry once.
		fresh, loginErr := authService.ServiceLogin(ctx, backendCfg.ServiceEmail, backendCfg.ServicePassword)
		if loginErr != nil {
			return fmt.Errorf("service account login: %w", loginErr)
		}
		if err := store.SaveTokens(ctx, fresh); err != nil {
			return err
		}
		return broadcastService.Deliver(ctx, event)
	}

	go func() {
		if err := rmq.Consume(ctx, dashboardMsg.QueueBroadcasts, workerCount, handler); err != nil && !errors.Is(err, context.Canceled) {
			log.Errorf("Consumer error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down worker...")
	cancel()
}
