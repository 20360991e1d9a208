package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"finance-alerts/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// NewHTTPErrorHandler formats every error escaping a handler as an ErrorResponse,
// logs it and counts it by code, route and status
func NewHTTPErrorHandler(logger *slog.Logger, registerer prometheus.Registerer) echo.HTTPErrorHandler {
	if logger == nil {
		logger = slog.Default()
	}
	apiErrors := promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifier_api_errors_total",
			Help: "Total number of API errors by code, endpoint, and status",
		},
		[]string{"code", "endpoint", "status"},
	)

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		traceID := GetTraceID(c)
		if traceID == "" {
			traceID = "unknown"
		}

		var (
			errorResponse  *errors.ErrorResponse
			httpStatus     int
			echoErr        *echo.HTTPError
			validationErrs validator.ValidationErrors
		)
		switch {
		case stderrors.As(err, &echoErr):
			errorResponse = errors.NewErrorResponse(
				mapHTTPStatusToErrorCode(echoErr.Code),
				traceID,
				errors.WithMessage(fmt.Sprintf("%v", echoErr.Message)),
			)
			httpStatus = echoErr.Code
		case stderrors.As(err, &validationErrs):
			fieldErrors := make(map[string]string, len(validationErrs))
			for _, fieldErr := range validationErrs {
				fieldErrors[fieldErr.Field()] = formatValidationError(fieldErr)
			}
			errorResponse = errors.NewValidationError(fieldErrors, traceID)
			httpStatus = http.StatusBadRequest
		default:
			errorResponse, _ = errors.WrapSystemError(err, traceID)
			httpStatus = errorResponse.GetHTTPStatus()
		}

		level := slog.LevelWarn
		if httpStatus >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c.Request().Context(), level, "HTTP error occurred",
			slog.String("trace_id", traceID),
			slog.String("error_code", errorResponse.Error.Code),
			slog.Int("status", httpStatus),
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
			slog.String("error", err.Error()),
		)

		apiErrors.WithLabelValues(errorResponse.Error.Code, c.Path(), strconv.Itoa(httpStatus)).Inc()

		if sendErr := c.JSON(httpStatus, errorResponse); sendErr != nil {
			logger.Error("failed to send error response",
				slog.String("trace_id", traceID),
				slog.String("error", sendErr.Error()),
			)
		}
	}
}

func mapHTTPStatusToErrorCode(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusMethodNotAllowed, http.StatusUnprocessableEntity:
		return errors.ValidationGeneral
	case http.StatusNotFound:
		return errors.SystemNotFound
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusInternalServerError:
		return errors.SystemInternalError
	case http.StatusServiceUnavailable:
		return errors.SystemServiceUnavailable
	default:
		return errors.SystemUnexpectedError
	}
}

func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "numeric":
		return "must be a valid number"
	case "uuid":
		return "must be a valid UUID"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "required_if":
		return "is required when " + fe.Param()
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
