package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sooquk/sooquk-dashboard/db"
	"github.com/sooquk/sooquk-dashboard/internal/configs"
	gatewayMsg "github.com/sooquk/sooquk-dashboard/internal/gateways/messaging"
	dashboardMsg "github.com/sooquk/sooquk-dashboard/internal/messaging"
	"github.com/sooquk/sooquk-dashboard/internal/pkg/logger"
	"github.com/sooquk/sooquk-dashboard/internal/repositories"
	"github.com/sooquk/sooquk-dashboard/internal/services"
)

const workerCount = 3

func main() {
	log := logger.NewLogger()
	log.Info("Starting activity worker...")

	var (
		pgCfg        configs.PostgreConfig
		migrationCfg configs.MigrationConfig
		rmqCfg       configs.RabbitMQConfig
	)
	if err := configs.LoadSections(log, &pgCfg, &migrationCfg, &rmqCfg); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if rmqCfg.URL == "" {
		log.Fatal("RABBITMQ_URL is required for the activity worker")
	}

	connectCtx, connectCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer connectCancel()

	conn, err := db.Connect(connectCtx, &pgCfg)
	if err != nil {
		log.Fatalf("DB connection error: %v", err)
	}
	defer conn.Close()

	if err := db.Migrate(&pgCfg, &migrationCfg); err != nil {
		log.Fatalf("Migration error: %v", err)
	}

	rmq, err := gatewayMsg.NewRabbitMQ(&rmqCfg, log)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer rmq.Close()

	if err := rmq.DeclareQueue(dashboardMsg.QueueActivityLog, dashboardMsg.RoutingActivityRecorded); err != nil {
		log.Fatalf("Failed to setup queue: %v", err)
	}

	activityService := services.NewActivityService(repositories.NewActivityRepository(conn, log), nil, log)

	// Message handler
	handler := func(ctx context.Context, body []byte) error {
		var event dashboardMsg.ActivityRecordedEvent
		if err := json.Unmarshal(body, &event); err != nil {
			return fmt.Errorf("failed to unmarshal: %w", err)
		}

		log.WithField("activity_id", event.ID).Debugf("Storing %s %s by %s", event.Action, event.Resource, event.UserID)
		return activityService.Store(ctx, event)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := rmq.Consume(ctx, dashboardMsg.QueueActivityLog, workerCount, handler); err != nil && !errors.Is(err, context.Canceled) {
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
