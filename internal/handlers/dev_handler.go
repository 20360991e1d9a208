package handlers

import (
	"net/http"
	"strconv"

	apierrors "finance-alerts/internal/errors"
	"finance-alerts/internal/models"
	"finance-alerts/internal/repositories"
	"finance-alerts/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultDemoMonths = 3
	maxDemoMonths     = 12
	maxDemoQuietDays  = 60
)

// DevHandler handles development-only endpoints
// These endpoints should only be mounted in development environments
type DevHandler struct {
	repo      repositories.DemoHistoryRepositoryInterface
	generator services.DemoHistoryGeneratorInterface
}

func NewDevHandler(repo repositories.DemoHistoryRepositoryInterface, generator services.DemoHistoryGeneratorInterface) *DevHandler {
	return &DevHandler{repo: repo, generator: generator}
}

// GenerateDemoHistory fills a user's store with synthetic categories, transactions,
// budgets and scheduled payments
//
// Method: POST /api/v1/dev/users/:user_id/demo-history
// Environment: Development only
//
// Query parameters:
//   - months: months of history before the current one (default: 3, max: 12)
//   - spike: "true" inflates one category this month to trigger overspending
//   - quiet_days: days left empty before today (default: 0, max: 60)
//
// Success Response: 201 Created
//   - data: {categories, transactions, budgets, payments}
//
// Error Responses:
//   - 400: VALIDATION_005 invalid user_id
//   - 400: VALIDATION_004 parameter out of range
//   - 500: SYSTEM_001 store failure
func (h *DevHandler) GenerateDemoHistory(c echo.Context) error {
	userID, ok := parseUUIDParam(c, "user_id")
	if !ok {
		return SendError(c, apierrors.ValidationInvalidUserID)
	}

	months, ok := intQueryParam(c, "months", defaultDemoMonths, 1, maxDemoMonths)
	if !ok {
		return SendError(c, apierrors.ValidationOutOfRange, apierrors.WithDetails("months must be between 1 and 12"))
	}
	quietDays, ok := intQueryParam(c, "quiet_days", 0, 0, maxDemoQuietDays)
	if !ok {
		return SendError(c, apierrors.ValidationOutOfRange, apierrors.WithDetails("quiet_days must be between 0 and 60"))
	}

	history := h.generator.Generate(userID, models.DemoHistoryOptions{
		Months:    months,
		Spike:     c.QueryParam("spike") == "true",
		QuietDays: quietDays,
	})

	stats, err := h.repo.Save(c.Request().Context(), history)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    stats,
		Message: "Demo history generated",
	})
}

// ClearDemoHistory removes every category, transaction, budget and scheduled payment of the user
//
// Method: DELETE /api/v1/dev/users/:user_id/demo-history
// Environment: Development only
func (h *DevHandler) ClearDemoHistory(c echo.Context) error {
	userID, ok := parseUUIDParam(c, "user_id")
	if !ok {
		return SendError(c, apierrors.ValidationInvalidUserID)
	}

	stats, err := h.repo.Clear(c.Request().Context(), userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    stats,
		Message: "Demo history cleared",
	})
}

// intQueryParam returns def when the parameter is absent, false when it is not an int in [lo, hi]
func intQueryParam(c echo.Context, name string, def, lo, hi int) (int, bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < lo || value > hi {
		return 0, false
	}
	return value, true
}
