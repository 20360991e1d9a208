package handlers

import (
	"errors"
	"net/http"

	apierrors "finance-alerts/internal/errors"
	"finance-alerts/internal/repositories"
	"finance-alerts/internal/services"

	"github.com/labstack/echo/v4"
)

// InsightsHandler exposes the detectors' intermediate results for dashboards
type InsightsHandler struct {
	spending services.SpendingAnomalyServiceInterface
	budgets  services.BudgetAlertServiceInterface
	payments services.PaymentReminderServiceInterface
}

func NewInsightsHandler(
	spending services.SpendingAnomalyServiceInterface,
	budgets services.BudgetAlertServiceInterface,
	payments services.PaymentReminderServiceInterface,
) *InsightsHandler {
	return &InsightsHandler{spending: spending, budgets: budgets, payments: payments}
}

// GetSpendingPatterns returns per-category comparisons of this month against history
//
// Method: GET /api/v1/users/:user_id/spending-patterns
//
// Success Response: 200 OK
//   - data: [{category_id, category_name, average_monthly, current_month, ...}]
func (h *InsightsHandler) GetSpendingPatterns(c echo.Context) error {
	userID, ok := parseUUIDParam(c, "user_id")
	if !ok {
		return SendError(c, apierrors.ValidationInvalidUserID)
	}

	patterns, err := h.spending.AnalyzeSpendingPatterns(c.Request().Context(), userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: patterns})
}

// GetBudgetSummary
//
// Method: GET /api/v1/users/:user_id/budgets/summary
func (h *InsightsHandler) GetBudgetSummary(c echo.Context) error {
	userID, ok := parseUUIDParam(c, "user_id")
	if !ok {
		return SendError(c, apierrors.ValidationInvalidUserID)
	}

	summary, err := h.budgets.GetBudgetSummary(c.Request().Context(), userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: summary})
}

// GetBudgetForecast projects month-end spend for one budget at the current daily rate
//
// Method: GET /api/v1/users/:user_id/budgets/:budget_id/forecast
//
// Error Responses:
//   - 400: BUDGET_002 invalid budget_id
//   - 404: BUDGET_001 budget missing or owned by another user
func (h *InsightsHandler) GetBudgetForecast(c echo.Context) error {
	userID, ok := parseUUIDParam(c, "user_id")
	if !ok {
		return SendError(c, apierrors.ValidationInvalidUserID)
	}
	budgetID, ok := parseUUIDParam(c, "budget_id")
	if !ok {
		return SendError(c, apierrors.BudgetInvalidID)
	}

	forecast, err := h.budgets.ForecastBudget(c.Request().Context(), userID, budgetID)
	if err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return SendError(c, apierrors.BudgetNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: forecast})
}

// GetWeeklyPayments
//
// Method: GET /api/v1/users/:user_id/payments/weekly-summary
func (h *InsightsHandler) GetWeeklyPayments(c echo.Context) error {
	userID, ok := parseUUIDParam(c, "user_id")
	if !ok {
		return SendError(c, apierrors.ValidationInvalidUserID)
	}

	summary, err := h.payments.GetWeeklySummary(c.Request().Context(), userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: summary})
}
