package handlers

import (
	"errors"
	"net/http"
	"time"

	"finance-alerts/internal/dto"
	apierrors "finance-alerts/internal/errors"
	"finance-alerts/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const defaultHistoryLimit = 20

type NotificationHandler struct {
	manager    services.NotificationManagerInterface
	dispatcher services.NotificationDispatcherInterface
	settings   services.NotificationSettingsServiceInterface
	clock      services.Clock
}

func NewNotificationHandler(
	manager services.NotificationManagerInterface,
	dispatcher services.NotificationDispatcherInterface,
	settings services.NotificationSettingsServiceInterface,
	clock services.Clock,
) *NotificationHandler {
	if clock == nil {
		clock = time.Now
	}
	return &NotificationHandler{
		manager:    manager,
		dispatcher: dispatcher,
		settings:   settings,
		clock:      clock,
	}
}

// GetNotifications previews the user's notification package without delivering it
//
// Method: GET /api/v1/users/:user_id/notifications
//
// Success Response: 200 OK
//   - data: spending_alerts, activity_alerts, payment_alerts, budget_alerts,
//     summary {total, high, medium, low}, generated_at
//
// Error Responses:
//   - 400: VALIDATION_005 invalid user_id
//   - 500: NOTIFICATION_003 a detector could not read its data
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	userID, ok := parseUUIDParam(c, "user_id")
	if !ok {
		return SendError(c, apierrors.ValidationInvalidUserID)
	}

	pkg, err := h.manager.GenerateNotifications(c.Request().Context(), userID)
	if err != nil {
		return h.generationFailed(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: pkg})
}

// SendNotifications generates and delivers the user's notifications right away
//
// Method: POST /api/v1/users/:user_id/notifications/send
//
// Success Response: 200 OK
//   - data: user_id, sent, failed, channels[], summary, sent_at
//
// Delivery failures are reported in the body with status 200.
//
// Error Responses:
//   - 400: VALIDATION_005 invalid user_id
//   - 500: NOTIFICATION_003 generation or settings lookup failed
func (h *NotificationHandler) SendNotifications(c echo.Context) error {
	userID, ok := parseUUIDParam(c, "user_id")
	if !ok {
		return SendError(c, apierrors.ValidationInvalidUserID)
	}

	result, err := h.dispatcher.SendNotifications(c.Request().Context(), userID)
	if err != nil {
		return h.generationFailed(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.NewSendNotificationsResponse(result, h.clock()),
	})
}

// GetSettings returns the user's notification preferences, defaults included
//
// Method: GET /api/v1/users/:user_id/notification-settings
func (h *NotificationHandler) GetSettings(c echo.Context) error {
	userID, ok := parseUUIDParam(c, "user_id")
	if !ok {
		return SendError(c, apierrors.ValidationInvalidUserID)
	}

	settings, err := h.settings.GetSettings(c.Request().Context(), userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: settings})
}

// UpdateSettings applies a partial update to the user's notification preferences
//
// Method: PUT /api/v1/users/:user_id/notification-settings
//
// Request body: any of overspend_alerts, missing_transaction_reminders,
// upcoming_payment_reminders, budget_warnings, telegram_enabled, telegram_chat_id
//
// Error Responses:
//   - 400: VALIDATION_001 malformed body or field errors
//   - 400: NOTIFICATION_002 chat id is not numeric
//   - 422: NOTIFICATION_001 telegram enabled without chat id
func (h *NotificationHandler) UpdateSettings(c echo.Context) error {
	userID, ok := parseUUIDParam(c, "user_id")
	if !ok {
		return SendError(c, apierrors.ValidationInvalidUserID)
	}

	var req dto.UpdateNotificationSettingsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	ctx := c.Request().Context()
	current, err := h.settings.GetSettings(ctx, userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	updated, err := h.settings.UpdateSettings(ctx, req.ApplyTo(current))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTelegramChatIDRequired):
			return SendError(c, apierrors.NotificationTelegramChatRequired)
		case errors.Is(err, services.ErrInvalidTelegramChatID):
			return SendError(c, apierrors.NotificationInvalidTelegramChat)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    updated,
		Message: "Notification settings updated",
	})
}

// GetHistory lists the user's most recent delivery attempts, newest first
//
// Method: GET /api/v1/users/:user_id/notification-history?limit=20
func (h *NotificationHandler) GetHistory(c echo.Context) error {
	userID, ok := parseUUIDParam(c, "user_id")
	if !ok {
		return SendError(c, apierrors.ValidationInvalidUserID)
	}

	var params dto.HistoryParams
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &params); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("limit must be a number"))
	}
	if err := c.Validate(&params); err != nil {
		return SendError(c, apierrors.ValidationOutOfRange, apierrors.WithDetails("limit must be between 1 and 200"))
	}
	if params.Limit == 0 {
		params.Limit = defaultHistoryLimit
	}

	entries, err := h.settings.GetHistory(c.Request().Context(), userID, params.Limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: entries,
		Meta: map[string]int{"limit": params.Limit, "count": len(entries)},
	})
}

func (h *NotificationHandler) generationFailed(c echo.Context, err error) error {
	logRequestError(c, getTraceID(c), err)
	return SendError(c, apierrors.NotificationGenerationFailed)
}

func sendValidationError(c echo.Context, err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return SendError(c, apierrors.ValidationGeneral)
	}
	details := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		details = append(details, fieldErr.Field()+": failed "+fieldErr.Tag()+" validation")
	}
	return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(details...))
}
