package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/sooquk/sooquk-dashboard/db"
	"github.com/sooquk/sooquk-dashboard/internal/configs"
	customMiddleware "github.com/sooquk/sooquk-dashboard/internal/delivery/http/middlewares"
	"github.com/sooquk/sooquk-dashboard/internal/delivery/http/routes"
	gatewayMsg "github.com/sooquk/sooquk-dashboard/internal/gateways/messaging"
	"github.com/sooquk/sooquk-dashboard/internal/handlers"
	"github.com/sooquk/sooquk-dashboard/internal/i18n"
	dashboardMsg "github.com/sooquk/sooquk-dashboard/internal/messaging"
	"github.com/sooquk/sooquk-dashboard/internal/pkg/apiclient"
	"github.com/sooquk/sooquk-dashboard/internal/pkg/logger"
	"github.com/sooquk/sooquk-dashboard/internal/pkg/querycache"
	"github.com/sooquk/sooquk-dashboard/internal/pkg/redis"
	"github.com/sooquk/sooquk-dashboard/internal/pkg/tokenclaims"
	"github.com/sooquk/sooquk-dashboard/internal/pkg/validation"
	"github.com/sooquk/sooquk-dashboard/internal/repositories"
	"github.com/sooquk/sooquk-dashboard/internal/services"
	"github.com/sooquk/sooquk-dashboard/internal/session"
)

func main() {
	log := logger.NewLogger()

	cfg, err := configs.LoadConfig(log)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Postgres holds the activity log
	conn, err := db.Connect(ctx, &cfg.Postgre)
	if err != nil {
		log.Fatalf("DB connection error: %v", err)
	}
	defer conn.Close()

	if err := db.Migrate(&cfg.Postgre, &cfg.Migration); err != nil {
		log.Fatalf("Migration error: %v", err)
	}

	// Redis
	redisClient, err := redis.NewRedisClient(&cfg.Redis, log)
	if err != nil {
		log.Fatalf("Failed to create Redis client: %v", err)
	}
	defer redisClient.Close()

	catalog, err := i18n.Load(cfg.I18n.DefaultLocale)
	if err != nil {
		log.Fatalf("Failed to load translations: %v", err)
	}

	sessions := session.NewStore(redisClient.Client, cfg.Session.TTL, log)
	cache := querycache.New(redisClient.Client, cfg.Redis.QueryCacheTTL, log)
	client := apiclient.NewClient(
		cfg.Backend.BaseURL,
		&http.Client{Timeout: cfg.Backend.Timeout},
		apiclient.DefaultEndpoints,
		log,
	)

	checks := map[string]handlers.HealthCheck{
		"postgres": conn.PingContext,
		"redis": func(ctx context.Context) error {
			return redisClient.Client.Ping(ctx).Err()
		},
	}

	// RabbitMQ is optional; without it activity is written directly and broadcasts go out inline.
	var eventPublisher dashboardMsg.EventPublisher
	if cfg.RabbitMQ.URL != "" {
		rmq, err := gatewayMsg.NewRabbitMQ(&cfg.RabbitMQ, log)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer rmq.Close()

		eventPublisher = dashboardMsg.NewEventPublisher(rmq, log)
		checks["rabbitmq"] = rmq.Check
	} else {
		log.Warn("RABBITMQ_URL not set, activity and broadcasts are processed in-process.")
	}

	// Dependency Injection
	validate := validation.New()
	activityRepo := repositories.NewActivityRepository(conn, log)
	activityService := services.NewActivityService(activityRepo, eventPublisher, log)

	deps := services.Deps{
		Client:    client,
		Cache:     cache,
		Validator: validate,
		Activity:  activityService,
		Log:       log,
	}

	h := handlers.New(handlers.NewAPI(catalog, cfg.Session, log), handlers.Services{
		Catalog:             services.NewCatalog(deps),
		Orders:              services.NewOrderService(deps),
		Tickets:             services.NewTicketService(deps),
		VendorSubscriptions: services.NewVendorSubscriptionService(deps),
		Statistics:          services.NewStatisticsService(deps),
		ErrorLogs:           services.NewErrorLogService(deps),
		Broadcasts:          services.NewBroadcastService(deps, eventPublisher),
		Auth: services.NewAuthService(
			client,
			sessions,
			tokenclaims.NewParser(cfg.Server.JWTSecret, cfg.Server.Audience),
			validate,
			log,
		),
		Activity: activityService,
		Cache:    services.NewCacheService(cache, activityService, log),
	}, sessions, checks)

	// Setup Server Web
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(customMiddleware.LoggingMiddleware(log))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "Accept-Language"},
	}))
	e.Use(customMiddleware.LoadSession(sessions, cfg.Session.CookieName, log))
	e.Use(customMiddleware.Locale(catalog))

	routes.InitRoutes(e, h, catalog, cfg.Session.LoginPath)

	go func() {
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownGrace)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server shutdown failed: %v", err)
	}
}
