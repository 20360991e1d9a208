package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"finance-alerts/internal/models"
	"finance-alerts/internal/services"
	"finance-alerts/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

var handlerNow = time.Date(2026, 10, 18, 15, 0, 0, 0, time.UTC)

type NotificationHandlerSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockManager    *service_mocks.MockNotificationManagerInterface
	mockDispatcher *service_mocks.MockNotificationDispatcherInterface
	mockSettings   *service_mocks.MockNotificationSettingsServiceInterface
	handler        *NotificationHandler
	echo           *echo.Echo
	userID         uuid.UUID
}

func (s *NotificationHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockManager = service_mocks.NewMockNotificationManagerInterface(s.ctrl)
	s.mockDispatcher = service_mocks.NewMockNotificationDispatcherInterface(s.ctrl)
	s.mockSettings = service_mocks.NewMockNotificationSettingsServiceInterface(s.ctrl)
	s.handler = NewNotificationHandler(s.mockManager, s.mockDispatcher, s.mockSettings,
		func() time.Time { return handlerNow })

	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.userID = uuid.New()
}

func (s *NotificationHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestNotificationHandlerSuite(t *testing.T) {
	suite.Run(t, new(NotificationHandlerSuite))
}

func (s *NotificationHandlerSuite) newContext(method, target, body string, userID string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-123")
	c.SetParamNames("user_id")
	c.SetParamValues(userID)
	return c, rec
}

func (s *NotificationHandlerSuite) decodeError(rec *httptest.ResponseRecorder) ErrorResponse {
	var resp ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func (s *NotificationHandlerSuite) TestGetNotifications_Success() {
	pkg := &models.NotificationPackage{
		UserID:         s.userID,
		SpendingAlerts: []models.Alert{{Type: models.AlertTypeOverspending, Severity: models.SeverityHigh}},
		ActivityAlerts: []models.Alert{},
		PaymentAlerts:  []models.Alert{},
		BudgetAlerts:   []models.Alert{},
		Summary:        models.AlertSummary{Total: 1, High: 1},
		GeneratedAt:    handlerNow,
	}
	s.mockManager.EXPECT().GenerateNotifications(gomock.Any(), s.userID).Return(pkg, nil)

	c, rec := s.newContext(http.MethodGet, "/api/v1/users/x/notifications", "", s.userID.String())
	s.Require().NoError(s.handler.GetNotifications(c))

	s.Equal(http.StatusOK, rec.Code)
	var body struct {
		Data models.NotificationPackage `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(1, body.Data.Summary.Total)
	s.Len(body.Data.SpendingAlerts, 1)
	s.NotNil(body.Data.BudgetAlerts)
}

func (s *NotificationHandlerSuite) TestGetNotifications_InvalidUserID() {
	for _, raw := range []string{"not-a-uuid", uuid.Nil.String()} {
		c, rec := s.newContext(http.MethodGet, "/", "", raw)
		s.Require().NoError(s.handler.GetNotifications(c))

		s.Equal(http.StatusBadRequest, rec.Code, raw)
		s.Equal("VALIDATION_005", s.decodeError(rec).Error.Code)
	}
}

func (s *NotificationHandlerSuite) TestGetNotifications_GenerationFailed() {
	s.mockManager.EXPECT().GenerateNotifications(gomock.Any(), s.userID).
		Return(nil, errors.New("failed to generate notifications: db down"))

	c, rec := s.newContext(http.MethodGet, "/", "", s.userID.String())
	s.Require().NoError(s.handler.GetNotifications(c))

	s.Equal(http.StatusInternalServerError, rec.Code)
	resp := s.decodeError(rec)
	s.Equal("NOTIFICATION_003", resp.Error.Code)
	s.Equal("trace-123", resp.Error.TraceID)
	s.NotContains(rec.Body.String(), "db down")
}

func (s *NotificationHandlerSuite) TestSendNotifications_ReportsOutcome() {
	result := &models.DispatchResult{
		UserID: s.userID,
		Sent:   2,
		Failed: 1,
		Channels: []models.ChannelOutcome{
			{Channel: models.ChannelTelegram, Status: models.DeliveryStatusFailed, Sent: 2, Failed: 1, Error: "send failed"},
		},
		Package: &models.NotificationPackage{Summary: models.AlertSummary{Total: 3, High: 1, Low: 2}},
	}
	s.mockDispatcher.EXPECT().SendNotifications(gomock.Any(), s.userID).Return(result, nil)

	c, rec := s.newContext(http.MethodPost, "/", "", s.userID.String())
	s.Require().NoError(s.handler.SendNotifications(c))

	s.Equal(http.StatusOK, rec.Code)
	var body struct {
		Data struct {
			UserID   uuid.UUID               `json:"user_id"`
			Sent     int                     `json:"sent"`
			Failed   int                     `json:"failed"`
			Channels []models.ChannelOutcome `json:"channels"`
			Summary  models.AlertSummary     `json:"summary"`
			SentAt   time.Time               `json:"sent_at"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(s.userID, body.Data.UserID)
	s.Equal(2, body.Data.Sent)
	s.Equal(1, body.Data.Failed)
	s.Equal(3, body.Data.Summary.Total)
	s.True(handlerNow.Equal(body.Data.SentAt))
	s.Require().Len(body.Data.Channels, 1)
	s.Equal(models.ChannelTelegram, body.Data.Channels[0].Channel)
}

func (s *NotificationHandlerSuite) TestSendNotifications_Error() {
	s.mockDispatcher.EXPECT().SendNotifications(gomock.Any(), s.userID).Return(nil, errors.New("boom"))

	c, rec := s.newContext(http.MethodPost, "/", "", s.userID.String())
	s.Require().NoError(s.handler.SendNotifications(c))

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("NOTIFICATION_003", s.decodeError(rec).Error.Code)
}

func (s *NotificationHandlerSuite) TestGetSettings() {
	s.mockSettings.EXPECT().GetSettings(gomock.Any(), s.userID).
		Return(models.DefaultNotificationSettings(s.userID), nil)

	c, rec := s.newContext(http.MethodGet, "/", "", s.userID.String())
	s.Require().NoError(s.handler.GetSettings(c))

	s.Equal(http.StatusOK, rec.Code)
	var body struct {
		Data models.NotificationSettings `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(s.userID, body.Data.UserID)
	s.True(body.Data.OverspendAlerts)
	s.False(body.Data.TelegramEnabled)
}

func (s *NotificationHandlerSuite) TestGetSettings_StoreError() {
	s.mockSettings.EXPECT().GetSettings(gomock.Any(), s.userID).Return(nil, errors.New("db down"))

	c, rec := s.newContext(http.MethodGet, "/", "", s.userID.String())
	s.Require().NoError(s.handler.GetSettings(c))

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("SYSTEM_001", s.decodeError(rec).Error.Code)
}

func (s *NotificationHandlerSuite) TestUpdateSettings_PartialUpdate() {
	current := models.DefaultNotificationSettings(s.userID)
	s.mockSettings.EXPECT().GetSettings(gomock.Any(), s.userID).Return(current, nil)
	s.mockSettings.EXPECT().UpdateSettings(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, updated *models.NotificationSettings) (*models.NotificationSettings, error) {
			s.False(updated.BudgetWarnings)
			s.True(updated.TelegramEnabled)
			s.Equal("123456789", updated.TelegramChatID)
			s.True(updated.OverspendAlerts)
			return updated, nil
		})

	body := `{"budget_warnings":false,"telegram_enabled":true,"telegram_chat_id":"123456789"}`
	c, rec := s.newContext(http.MethodPut, "/", body, s.userID.String())
	s.Require().NoError(s.handler.UpdateSettings(c))

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Notification settings updated")
	s.True(current.BudgetWarnings, "stored settings must not be mutated in place")
}

func (s *NotificationHandlerSuite) TestUpdateSettings_Errors() {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "malformed body",
			body:       `{"telegram_enabled":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_001",
		},
		{
			name:       "non numeric chat id",
			body:       `{"telegram_chat_id":"@someone"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_001",
		},
		{
			name:       "telegram without chat",
			body:       `{"telegram_enabled":true}`,
			serviceErr: services.ErrTelegramChatIDRequired,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "NOTIFICATION_001",
		},
		{
			name:       "chat rejected by service",
			body:       `{"telegram_enabled":true,"telegram_chat_id":"-100"}`,
			serviceErr: services.ErrInvalidTelegramChatID,
			wantStatus: http.StatusBadRequest,
			wantCode:   "NOTIFICATION_002",
		},
		{
			name:       "store failure",
			body:       `{"overspend_alerts":false}`,
			serviceErr: errors.New("failed to save notification settings"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "SYSTEM_001",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			if tt.serviceErr != nil {
				s.mockSettings.EXPECT().GetSettings(gomock.Any(), s.userID).
					Return(models.DefaultNotificationSettings(s.userID), nil)
				s.mockSettings.EXPECT().UpdateSettings(gomock.Any(), gomock.Any()).Return(nil, tt.serviceErr)
			}

			c, rec := s.newContext(http.MethodPut, "/", tt.body, s.userID.String())
			s.Require().NoError(s.handler.UpdateSettings(c))

			s.Equal(tt.wantStatus, rec.Code)
			s.Equal(tt.wantCode, s.decodeError(rec).Error.Code)
		})
	}
}

func (s *NotificationHandlerSuite) TestGetHistory_DefaultLimit() {
	entries := []models.NotificationHistory{
		{ID: uuid.New(), UserID: s.userID, Channel: models.ChannelTelegram, Status: models.DeliveryStatusSent, AlertCount: 2},
	}
	s.mockSettings.EXPECT().GetHistory(gomock.Any(), s.userID, defaultHistoryLimit).Return(entries, nil)

	c, rec := s.newContext(http.MethodGet, "/notification-history", "", s.userID.String())
	s.Require().NoError(s.handler.GetHistory(c))

	s.Equal(http.StatusOK, rec.Code)
	var body struct {
		Data []models.NotificationHistory `json:"data"`
		Meta map[string]int               `json:"meta"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Len(body.Data, 1)
	s.Equal(20, body.Meta["limit"])
	s.Equal(1, body.Meta["count"])
}

func (s *NotificationHandlerSuite) TestGetHistory_ExplicitLimit() {
	s.mockSettings.EXPECT().GetHistory(gomock.Any(), s.userID, 5).Return([]models.NotificationHistory{}, nil)

	c, rec := s.newContext(http.MethodGet, "/notification-history?limit=5", "", s.userID.String())
	s.Require().NoError(s.handler.GetHistory(c))

	s.Equal(http.StatusOK, rec.Code)
}

func (s *NotificationHandlerSuite) TestGetHistory_InvalidLimit() {
	tests := []struct {
		query    string
		wantCode string
	}{
		{query: "limit=abc", wantCode: "VALIDATION_003"},
		{query: "limit=500", wantCode: "VALIDATION_004"},
		{query: "limit=-1", wantCode: "VALIDATION_004"},
	}
	for _, tt := range tests {
		c, rec := s.newContext(http.MethodGet, "/notification-history?"+tt.query, "", s.userID.String())
		s.Require().NoError(s.handler.GetHistory(c))

		s.Equal(http.StatusBadRequest, rec.Code, tt.query)
		s.Equal(tt.wantCode, s.decodeError(rec).Error.Code, tt.query)
	}
}
