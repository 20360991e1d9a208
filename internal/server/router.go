package server

import (
	"context"
	"log/slog"

	"finance-alerts/internal/handlers"
	"finance-alerts/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups everything the router mounts
type Handlers struct {
	Health        *handlers.HealthCheckHandler
	Notifications *handlers.NotificationHandler
	Insights      *handlers.InsightsHandler
	// Dev is mounted only when set
	Dev *handlers.DevHandler
}

// RouterConfig carries the HTTP-facing settings
type RouterConfig struct {
	RateLimit float64
	RateBurst int
	// Registry backs /metrics and receives the API error counter
	Registry *prometheus.Registry
}

// NewRouter builds the echo instance. ctx bounds the rate limiter's cleanup loop.
func NewRouter(ctx context.Context, cfg RouterConfig, h Handlers, logger *slog.Logger) *echo.Echo {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Registry == nil {
		cfg.Registry = prometheus.NewRegistry()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(logger, cfg.Registry)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(logger))
	e.Use(middleware.SecurityHeaders())

	e.GET("/health", h.Health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(cfg.Registry, promhttp.HandlerOpts{})))

	api := e.Group("/api/v1", middleware.RateLimiter(ctx, cfg.RateLimit, cfg.RateBurst))
	users := api.Group("/users/:user_id")

	users.GET("/notifications", h.Notifications.GetNotifications)
	users.POST("/notifications/send", h.Notifications.SendNotifications)
	users.GET("/notification-settings", h.Notifications.GetSettings)
	users.PUT("/notification-settings", h.Notifications.UpdateSettings)
	users.GET("/notification-history", h.Notifications.GetHistory)

	users.GET("/spending-patterns", h.Insights.GetSpendingPatterns)
	users.GET("/budgets/summary", h.Insights.GetBudgetSummary)
	users.GET("/budgets/:budget_id/forecast", h.Insights.GetBudgetForecast)
	users.GET("/payments/weekly-summary", h.Insights.GetWeeklyPayments)

	if h.Dev != nil {
		dev := api.Group("/dev/users/:user_id")
		dev.POST("/demo-history", h.Dev.GenerateDemoHistory)
		dev.DELETE("/demo-history", h.Dev.ClearDemoHistory)
	}

	return e
}
