package handlers

import (
	"log/slog"
	"net/http"

	"finance-alerts/internal/errors"

	"github.com/labstack/echo/v4"
)

// Handlers report client and business errors with SendError and anything coming
// out of a store or service unexpectedly with SendSystemError, which hides the
// cause from the client and logs it with the trace ID.

const TraceIDContextKey = "trace_id"

type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response carrying the request's trace ID
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	errorResponse := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, cause := errors.WrapSystemError(err, traceID)
	logRequestError(c, traceID, cause)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

func logRequestError(c echo.Context, traceID string, err error) {
	slog.ErrorContext(c.Request().Context(), "request failed",
		slog.String("trace_id", traceID),
		slog.String("path", c.Request().URL.Path),
		slog.String("error", err.Error()),
	)
}
