package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"finance-alerts/internal/models"
	"finance-alerts/internal/repositories/repository_mocks"
	"finance-alerts/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type DevHandlerSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockRepo      *repository_mocks.MockDemoHistoryRepositoryInterface
	mockGenerator *service_mocks.MockDemoHistoryGeneratorInterface
	handler       *DevHandler
	echo          *echo.Echo
	userID        uuid.UUID
}

func (s *DevHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = repository_mocks.NewMockDemoHistoryRepositoryInterface(s.ctrl)
	s.mockGenerator = service_mocks.NewMockDemoHistoryGeneratorInterface(s.ctrl)
	s.handler = NewDevHandler(s.mockRepo, s.mockGenerator)
	s.echo = echo.New()
	s.userID = uuid.New()
}

func (s *DevHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestDevHandlerSuite(t *testing.T) {
	suite.Run(t, new(DevHandlerSuite))
}

func (s *DevHandlerSuite) newContext(method, target, userID string) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(method, target, nil), rec)
	c.SetParamNames("user_id")
	c.SetParamValues(userID)
	return c, rec
}

func (s *DevHandlerSuite) TestGenerateDemoHistory_Defaults() {
	history := &models.DemoHistory{UserID: s.userID}
	stats := models.DemoHistoryStats{Categories: 6, Transactions: 240, Budgets: 5, Payments: 4}
	s.mockGenerator.EXPECT().Generate(s.userID, models.DemoHistoryOptions{Months: 3}).Return(history)
	s.mockRepo.EXPECT().Save(gomock.Any(), history).Return(stats, nil)

	c, rec := s.newContext(http.MethodPost, "/demo-history", s.userID.String())
	s.Require().NoError(s.handler.GenerateDemoHistory(c))

	s.Equal(http.StatusCreated, rec.Code)
	var body struct {
		Data models.DemoHistoryStats `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(stats, body.Data)
}

func (s *DevHandlerSuite) TestGenerateDemoHistory_Options() {
	history := &models.DemoHistory{UserID: s.userID}
	s.mockGenerator.EXPECT().
		Generate(s.userID, models.DemoHistoryOptions{Months: 6, Spike: true, QuietDays: 9}).
		Return(history)
	s.mockRepo.EXPECT().Save(gomock.Any(), history).Return(models.DemoHistoryStats{}, nil)

	c, rec := s.newContext(http.MethodPost, "/demo-history?months=6&spike=true&quiet_days=9", s.userID.String())
	s.Require().NoError(s.handler.GenerateDemoHistory(c))

	s.Equal(http.StatusCreated, rec.Code)
}

func (s *DevHandlerSuite) TestGenerateDemoHistory_InvalidParams() {
	for _, query := range []string{"months=0", "months=13", "months=x", "quiet_days=-1", "quiet_days=61"} {
		c, rec := s.newContext(http.MethodPost, "/demo-history?"+query, s.userID.String())
		s.Require().NoError(s.handler.GenerateDemoHistory(c))

		s.Equal(http.StatusBadRequest, rec.Code, query)
		s.Contains(rec.Body.String(), "VALIDATION_004", query)
	}
}

func (s *DevHandlerSuite) TestGenerateDemoHistory_StoreError() {
	s.mockGenerator.EXPECT().Generate(s.userID, gomock.Any()).Return(&models.DemoHistory{})
	s.mockRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(models.DemoHistoryStats{}, errors.New("db down"))

	c, rec := s.newContext(http.MethodPost, "/demo-history", s.userID.String())
	s.Require().NoError(s.handler.GenerateDemoHistory(c))

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Body.String(), "db down")
}

func (s *DevHandlerSuite) TestClearDemoHistory() {
	s.mockRepo.EXPECT().Clear(gomock.Any(), s.userID).Return(models.DemoHistoryStats{Transactions: 12}, nil)

	c, rec := s.newContext(http.MethodDelete, "/demo-history", s.userID.String())
	s.Require().NoError(s.handler.ClearDemoHistory(c))

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"transactions":12`)
}

func (s *DevHandlerSuite) TestInvalidUserID() {
	c, rec := s.newContext(http.MethodDelete, "/demo-history", "nope")
	s.Require().NoError(s.handler.ClearDemoHistory(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	c, rec = s.newContext(http.MethodPost, "/demo-history", "nope")
	s.Require().NoError(s.handler.GenerateDemoHistory(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}
