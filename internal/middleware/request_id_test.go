package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"finance-alerts/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type RequestIDTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *RequestIDTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestRequestIDTestSuite(t *testing.T) {
	suite.Run(t, new(RequestIDTestSuite))
}

func (s *RequestIDTestSuite) TestRequestID_GeneratesTraceID() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error {
		s.NotEmpty(GetTraceID(c))
		return c.NoContent(http.StatusOK)
	})

	s.NoError(handler(c))
	_, err := uuid.Parse(rec.Header().Get(TraceIDHeader))
	s.NoError(err)
}

func (s *RequestIDTestSuite) TestRequestID_KeepsIncomingTraceID() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceIDHeader, "upstream-trace-7")
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error {
		s.Equal("upstream-trace-7", GetTraceID(c))
		return c.NoContent(http.StatusOK)
	})

	s.NoError(handler(c))
	s.Equal("upstream-trace-7", rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestRequestID_TagsNotificationEvents() {
	var buf bytes.Buffer
	eventLogger := services.NewNotificationLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceIDHeader, "trace-for-events")
	c := s.echo.NewContext(req, httptest.NewRecorder())

	handler := RequestID()(func(c echo.Context) error {
		eventLogger.LogDeliverySkipped(c.Request().Context(), uuid.New(), "no alerts in enabled families", 0)
		return nil
	})

	s.NoError(handler(c))
	s.Contains(buf.String(), `"correlation_id":"trace-for-events"`)
}

func (s *RequestIDTestSuite) TestGetTraceID_Missing() {
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	s.Equal("", GetTraceID(c))
}
