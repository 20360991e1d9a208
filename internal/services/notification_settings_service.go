package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"finance-alerts/internal/models"
	"finance-alerts/internal/repositories"

	"github.com/google/uuid"
)

const maxHistoryLimit = 200

var (
	ErrTelegramChatIDRequired = errors.New("telegram chat id is required when telegram delivery is enabled")
	ErrInvalidTelegramChatID  = errors.New("telegram chat id must be a numeric identifier")
)

type notificationSettingsService struct {
	settingsRepo repositories.NotificationSettingsRepositoryInterface
	historyRepo  repositories.NotificationHistoryRepositoryInterface
}

func NewNotificationSettingsService(
	settingsRepo repositories.NotificationSettingsRepositoryInterface,
	historyRepo repositories.NotificationHistoryRepositoryInterface,
) NotificationSettingsServiceInterface {
	return &notificationSettingsService{
		settingsRepo: settingsRepo,
		historyRepo:  historyRepo,
	}
}

func (s *notificationSettingsService) GetSettings(ctx context.Context, userID uuid.UUID) (*models.NotificationSettings, error) {
	settings, err := s.settingsRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrSettingsNotFound) {
			return models.DefaultNotificationSettings(userID), nil
		}
		return nil, err
	}
	return settings, nil
}

func (s *notificationSettingsService) UpdateSettings(ctx context.Context, settings *models.NotificationSettings) (*models.NotificationSettings, error) {
	if settings.UserID == uuid.Nil {
		return nil, models.ErrMissingUserID
	}
	if settings.TelegramChatID != "" {
		if _, err := strconv.ParseInt(settings.TelegramChatID, 10, 64); err != nil {
			return nil, ErrInvalidTelegramChatID
		}
	}
	if settings.TelegramEnabled && settings.TelegramChatID == "" {
		return nil, ErrTelegramChatIDRequired
	}

	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save notification settings: %w", err)
	}
	return s.settingsRepo.GetByUserID(ctx, settings.UserID)
}

func (s *notificationSettingsService) GetHistory(ctx context.Context, userID uuid.UUID, limit int) ([]models.NotificationHistory, error) {
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	entries, err := s.historyRepo.GetByUserID(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.NotificationHistory{}
	}
	return entries, nil
}
