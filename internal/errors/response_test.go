package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_Defaults() {
	response := NewErrorResponse(BudgetNotFound, s.traceID)

	s.Equal("BUDGET_001", response.Error.Code)
	s.Equal("Budget not found", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
	s.Equal(http.StatusNotFound, response.GetHTTPStatus())
	s.True(response.IsClientError())
}

func (s *ResponseTestSuite) TestNewErrorResponse_Options() {
	response := NewErrorResponse(
		ValidationOutOfRange,
		s.traceID,
		WithMessage("limit is too large"),
		WithDetails("limit: must be at most 200"),
	)

	s.Equal("limit is too large", response.Error.Message)
	s.Equal([]string{"limit: must be at most 200"}, response.Error.Details)
	s.Equal("[VALIDATION_004] limit is too large (trace: "+s.traceID+")", response.String())
}

func (s *ResponseTestSuite) TestNewValidationError_SortedDetails() {
	response := NewValidationError(map[string]string{
		"telegram_chat_id": "must be a valid number",
		"budget_warnings":  "is required",
	}, s.traceID)

	s.Equal(string(ValidationGeneral), response.Error.Code)
	s.Equal([]string{
		"budget_warnings: is required",
		"telegram_chat_id: must be a valid number",
	}, response.Error.Details)
}

func (s *ResponseTestSuite) TestWrapSystemError_HidesCause() {
	cause := errors.New("pq: relation \"budgets\" does not exist")

	response, err := WrapSystemError(cause, s.traceID)

	s.Equal(cause, err)
	s.Equal(string(SystemInternalError), response.Error.Code)
	s.NotContains(response.Error.Message, "budgets")
	s.False(response.IsClientError())
}

func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		code   ErrorCode
		status int
	}{
		{ValidationInvalidUserID, http.StatusBadRequest},
		{BudgetInvalidID, http.StatusBadRequest},
		{NotificationInvalidTelegramChat, http.StatusBadRequest},
		{BudgetNotFound, http.StatusNotFound},
		{NotificationTelegramChatRequired, http.StatusUnprocessableEntity},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{NotificationGenerationFailed, http.StatusInternalServerError},
		{"UNKNOWN", http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.status, GetHTTPStatus(tc.code))
		})
	}
}

func (s *ResponseTestSuite) TestJSONShape() {
	data, err := json.Marshal(NewErrorResponse(SystemNotFound, s.traceID))
	s.Require().NoError(err)

	var decoded map[string]map[string]interface{}
	s.Require().NoError(json.Unmarshal(data, &decoded))
	s.Equal("SYSTEM_004", decoded["error"]["code"])
	s.Equal(s.traceID, decoded["error"]["trace_id"])
	s.NotContains(decoded["error"], "details")
}
