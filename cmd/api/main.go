package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/repair-dashboard/internal/api/http"
	"github.com/spec-kit/repair-dashboard/internal/api/http/handlers"
	"github.com/spec-kit/repair-dashboard/internal/auth"
	"github.com/spec-kit/repair-dashboard/internal/config"
	"github.com/spec-kit/repair-dashboard/internal/events"
	"github.com/spec-kit/repair-dashboard/internal/observability"
	"github.com/spec-kit/repair-dashboard/internal/service"
	"github.com/spec-kit/repair-dashboard/internal/upstream"
	"github.com/spec-kit/repair-dashboard/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	metrics := observability.NewMetrics()

	userClient := upstream.NewUserClient(cfg.Upstream, metrics)
	orderClient := upstream.NewOrderClient(cfg.Upstream, metrics)

	dispatcher := events.NewInMemoryDispatcher()

	ordersService := service.NewOrdersService(service.OrdersDependencies{
		OrderClient: orderClient,
		UserClient:  userClient,
		Dispatcher:  dispatcher,
		Logger:      logger,
	})
	usersService := service.NewUsersService(userClient, orderClient, logger)
	dashboardService := service.NewDashboardService(userClient, orderClient)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService, logger)

	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)
	gate := auth.NewGateMiddleware(tokenManager)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, userClient, orderClient)
	usersHandler := handlers.NewUsersHandler(usersService)
	ordersHandler := handlers.NewOrdersHandler(ordersService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    healthHandler,
		Users:     usersHandler,
		Orders:    ordersHandler,
		Dashboard: dashboardHandler,
		Gate:      gate,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
