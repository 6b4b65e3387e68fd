package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/grupo-salus/careflow-desk/internal/api/http"
	"github.com/grupo-salus/careflow-desk/internal/api/http/handlers"
	"github.com/grupo-salus/careflow-desk/internal/config"
	"github.com/grupo-salus/careflow-desk/internal/events"
	"github.com/grupo-salus/careflow-desk/internal/observability"
	"github.com/grupo-salus/careflow-desk/internal/service"
	"github.com/grupo-salus/careflow-desk/internal/store"
	"github.com/grupo-salus/careflow-desk/internal/worker"
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

	ticketSeed, err := store.LoadTickets(cfg.Seed.TicketsPath)
	if err != nil {
		logger.Fatal("failed to load ticket seed", zap.Error(err))
	}
	reasonSeed, err := store.LoadReasons(cfg.Seed.ReasonsPath)
	if err != nil {
		logger.Fatal("failed to load reason seed", zap.Error(err))
	}
	logger.Info("seed loaded",
		zap.Int("tickets", len(ticketSeed)),
		zap.Int("reasons", len(reasonSeed)))

	ticketStore := store.NewTicketStore(ticketSeed)
	reasonCatalog := store.NewReasonCatalog(reasonSeed)

	dispatcher := events.NewInMemoryDispatcher()
	ticketService := service.NewTicketService(service.Dependencies{
		Store:      ticketStore,
		Reasons:    reasonCatalog,
		Dispatcher: dispatcher,
	})
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)
	defer notificationService.Center().Stop()

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:        handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, ticketStore, reasonCatalog),
		Tickets:       handlers.NewTicketsHandler(ticketService, cfg.List.PageSize),
		Reasons:       handlers.NewReasonsHandler(ticketService),
		Notifications: handlers.NewNotificationsHandler(notificationService.Center()),
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
