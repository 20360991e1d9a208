package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	apierrors "finance-alerts/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

type ErrorHandlerTestSuite struct {
	suite.Suite
	echo     *echo.Echo
	registry *prometheus.Registry
	handler  echo.HTTPErrorHandler
}

func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.registry = prometheus.NewRegistry()
	s.handler = NewHTTPErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), s.registry)
}

func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) handle(err error) (*httptest.ResponseRecorder, apierrors.ErrorResponse) {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.Set(TraceIDContextKey, "test-trace-id")

	s.handler(err, c)

	var response apierrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return rec, response
}

func (s *ErrorHandlerTestSuite) TestEchoHTTPError() {
	rec, response := s.handle(echo.NewHTTPError(http.StatusNotFound, "route not found"))

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(string(apierrors.SystemNotFound), response.Error.Code)
	s.Equal("route not found", response.Error.Message)
	s.Equal("test-trace-id", response.Error.TraceID)
}

func (s *ErrorHandlerTestSuite) TestGenericErrorIsHidden() {
	rec, response := s.handle(errors.New("pq: connection refused"))

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal(string(apierrors.SystemInternalError), response.Error.Code)
	s.NotContains(rec.Body.String(), "connection refused")
}

func (s *ErrorHandlerTestSuite) TestValidationErrors() {
	type request struct {
		ChatID string `validate:"numeric"`
		Limit  int    `validate:"max=200"`
	}
	err := validator.New().Struct(request{ChatID: "abc", Limit: 500})
	s.Require().Error(err)

	rec, response := s.handle(fmt.Errorf("bind: %w", err))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(apierrors.ValidationGeneral), response.Error.Code)
	s.Equal([]string{"ChatID: must be a valid number", "Limit: must be at most 200"}, response.Error.Details)
}

func (s *ErrorHandlerTestSuite) TestCountsErrors() {
	s.handle(errors.New("first"))
	s.handle(echo.NewHTTPError(http.StatusTooManyRequests, "slow down"))

	s.Equal(2, testutil.CollectAndCount(s.registry, "notifier_api_errors_total"))
}

func (s *ErrorHandlerTestSuite) TestCommittedResponseIsLeftAlone() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	s.Require().NoError(c.String(http.StatusOK, "done"))

	s.handler(errors.New("late failure"), c)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("done", rec.Body.String())
}
