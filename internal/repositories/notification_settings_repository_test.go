package repositories

import (
	"context"
	"sort"
	"testing"

	"finance-alerts/internal/database"
	"finance-alerts/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestNotificationSettingsRepository(t *testing.T) {
	suite.Run(t, new(NotificationSettingsRepositorySuite))
}

type NotificationSettingsRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo NotificationSettingsRepositoryInterface
	ctx  context.Context
}

func (s *NotificationSettingsRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewNotificationSettingsRepository(s.db.DB)
	s.ctx = context.Background()
}

func (s *NotificationSettingsRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *NotificationSettingsRepositorySuite) TestGetByUserID_NotFound() {
	_, err := s.repo.GetByUserID(s.ctx, uuid.New())
	s.ErrorIs(err, ErrSettingsNotFound)
}

func (s *NotificationSettingsRepositorySuite) TestUpsert_InsertThenUpdateKeepsFalseValues() {
	userID := uuid.New()
	settings := models.DefaultNotificationSettings(userID)
	settings.BudgetWarnings = false
	s.Require().NoError(s.repo.Upsert(s.ctx, settings))

	stored, err := s.repo.GetByUserID(s.ctx, userID)
	s.Require().NoError(err)
	s.True(stored.OverspendAlerts)
	s.False(stored.BudgetWarnings)
	s.False(stored.TelegramEnabled)

	update := &models.NotificationSettings{
		UserID:          userID,
		OverspendAlerts: false,
		BudgetWarnings:  true,
		TelegramEnabled: true,
		TelegramChatID:  "123456789",
	}
	s.Require().NoError(s.repo.Upsert(s.ctx, update))

	stored, err = s.repo.GetByUserID(s.ctx, userID)
	s.Require().NoError(err)
	s.False(stored.OverspendAlerts)
	s.False(stored.MissingTransactionReminders)
	s.True(stored.BudgetWarnings)
	s.True(stored.TelegramConfigured())
	s.Equal("123456789", stored.TelegramChatID)
}

func (s *NotificationSettingsRepositorySuite) TestUpsert_RequiresUserID() {
	err := s.repo.Upsert(s.ctx, &models.NotificationSettings{})
	s.ErrorIs(err, models.ErrMissingUserID)
}

func (s *NotificationSettingsRepositorySuite) TestListUserIDs_Pages() {
	ids := make([]uuid.UUID, 5)
	for i := range ids {
		ids[i] = uuid.New()
		s.Require().NoError(s.repo.Upsert(s.ctx, models.DefaultNotificationSettings(ids[i])))
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	first, err := s.repo.ListUserIDs(s.ctx, uuid.Nil, 3)
	s.Require().NoError(err)
	s.Equal(ids[:3], first)

	second, err := s.repo.ListUserIDs(s.ctx, first[len(first)-1], 3)
	s.Require().NoError(err)
	s.Equal(ids[3:], second)

	third, err := s.repo.ListUserIDs(s.ctx, second[len(second)-1], 3)
	s.Require().NoError(err)
	s.Empty(third)
}
