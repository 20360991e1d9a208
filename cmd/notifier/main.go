package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finance-alerts/internal/channels"
	"finance-alerts/internal/config"
	"finance-alerts/internal/database"
	"finance-alerts/internal/handlers"
	"finance-alerts/internal/repositories"
	"finance-alerts/internal/server"
	"finance-alerts/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := config.Load()
	logger := cfg.Log.NewLogger()
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("Notifier stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Initialize(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := services.NewPrometheusMetricsWithRegistry(registry)
	eventLogger := services.NewNotificationLogger(logger)

	transactionRepo := repositories.NewTransactionRepository(db.DB)
	budgetRepo := repositories.NewBudgetRepository(db.DB)
	paymentRepo := repositories.NewScheduledPaymentRepository(db.DB)
	settingsRepo := repositories.NewNotificationSettingsRepository(db.DB)
	historyRepo := repositories.NewNotificationHistoryRepository(db.DB)

	spendingService := services.NewSpendingAnomalyService(transactionRepo, metrics, eventLogger, time.Now)
	budgetService := services.NewBudgetAlertService(budgetRepo, transactionRepo, metrics, eventLogger, time.Now)
	paymentService := services.NewPaymentReminderService(paymentRepo, metrics, eventLogger, time.Now)
	activityService := services.NewActivityService(transactionRepo, metrics, eventLogger, time.Now)
	manager := services.NewNotificationManager(spendingService, budgetService, paymentService, activityService, metrics, eventLogger, time.Now)

	var deliveryChannels []services.NotificationChannelInterface
	if cfg.TelegramConfigured() {
		sender, err := channels.NewBotSenderFromConfig(cfg.Telegram, logger)
		if err != nil {
			return err
		}
		deliveryChannels = append(deliveryChannels, channels.NewTelegramChannel(sender))
	} else {
		logger.Warn("TELEGRAM_BOT_TOKEN not set, notifications will be generated but not delivered")
	}

	breaker := services.DefaultCircuitBreakerConfig()
	breaker.MaxFailures = cfg.Notifications.BreakerThreshold
	breaker.ResetTimeout = cfg.Notifications.BreakerTimeout
	dispatcher := services.NewNotificationDispatcher(manager, settingsRepo, historyRepo, deliveryChannels,
		services.DispatcherConfig{Breaker: breaker, RecordHistory: cfg.Notifications.RecordHistory},
		metrics, eventLogger)
	settingsService := services.NewNotificationSettingsService(settingsRepo, historyRepo)

	routes := server.Handlers{
		Health:        handlers.NewHealthCheckHandler(db),
		Notifications: handlers.NewNotificationHandler(manager, dispatcher, settingsService, time.Now),
		Insights:      handlers.NewInsightsHandler(spendingService, budgetService, paymentService),
	}
	if cfg.IsDevelopment() {
		routes.Dev = handlers.NewDevHandler(repositories.NewDemoHistoryRepository(db.DB), services.NewDemoHistoryGenerator(0, time.Now))
	}

	router := server.NewRouter(ctx, server.RouterConfig{
		RateLimit: cfg.Server.RateLimit,
		RateBurst: cfg.Server.RateBurst,
		Registry:  registry,
	}, routes, logger)

	httpServer := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("HTTP server listening", "addr", httpServer.Addr, "env", cfg.Server.Environment)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if cfg.Notifications.Enabled {
		scheduler := services.NewNotificationScheduler(dispatcher, settingsRepo, metrics, eventLogger, services.SchedulerConfig{
			Interval:     cfg.Notifications.Interval,
			MaxWorkers:   cfg.Notifications.Workers,
			BatchSize:    cfg.Notifications.UserBatchSize,
			UserDeadline: cfg.Notifications.DetectionDeadline,
		}, logger)
		g.Go(func() error {
			scheduler.Start(gctx)
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
