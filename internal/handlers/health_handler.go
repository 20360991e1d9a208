package handlers

import (
	"context"
	"net/http"
	"time"

	"finance-alerts/internal/errors"

	"github.com/labstack/echo/v4"
)

// Pinger is satisfied by *sql.DB and *database.DB
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthCheckHandler struct {
	db      Pinger
	timeout time.Duration
}

func NewHealthCheckHandler(db Pinger) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, timeout: 2 * time.Second}
}

// HealthCheck reports healthy when the notification store answers a ping
//
// Method: GET /health
// Success Response: 200 OK {status, time}
// Error Responses:
//   - 503: SYSTEM_003 database unreachable
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
