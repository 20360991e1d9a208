package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"finance-alerts/internal/models"
	"finance-alerts/internal/repositories"

	"github.com/google/uuid"
)

// SchedulerConfig controls how often and how wide notification runs go
type SchedulerConfig struct {
	Interval     time.Duration
	MaxWorkers   int
	BatchSize    int
	UserDeadline time.Duration
}

// NotificationScheduler periodically runs SendNotifications for every user with a
// settings row. Runs for different users share a bounded pool of workers; the
// same user is never processed twice within one run.
type NotificationScheduler struct {
	dispatcher      NotificationDispatcherInterface
	settingsRepo    repositories.NotificationSettingsRepositoryInterface
	metrics         MetricsRecorderInterface
	eventLogger     NotificationLoggerInterface
	config          SchedulerConfig
	workerSemaphore chan struct{}
	logger          *slog.Logger
}

func NewNotificationScheduler(
	dispatcher NotificationDispatcherInterface,
	settingsRepo repositories.NotificationSettingsRepositoryInterface,
	metrics MetricsRecorderInterface,
	eventLogger NotificationLoggerInterface,
	config SchedulerConfig,
	logger *slog.Logger,
) NotificationSchedulerInterface {
	if config.MaxWorkers <= 0 {
		config.MaxWorkers = 1
	}
	if config.BatchSize <= 0 {
		config.BatchSize = 500
	}
	if config.Interval <= 0 {
		config.Interval = time.Hour
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &NotificationScheduler{
		dispatcher:      dispatcher,
		settingsRepo:    settingsRepo,
		metrics:         metrics,
		eventLogger:     eventLogger,
		config:          config,
		workerSemaphore: make(chan struct{}, config.MaxWorkers),
		logger:          logger,
	}
}

// Start runs immediately, then on every tick until ctx is cancelled
func (s *NotificationScheduler) Start(ctx context.Context) {
	s.logger.Info("starting notification scheduler",
		slog.Duration("interval", s.config.Interval),
		slog.Int("max_workers", s.config.MaxWorkers),
	)

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	s.RunOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("notification scheduler stopped")
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce pages through users and waits for every dispatch it started. A worker
// slot is taken before each dispatch goroutine starts, so the next page is only
// fetched once the current one has been handed out.
func (s *NotificationScheduler) RunOnce(ctx context.Context) models.SchedulerRunStats {
	startTime := time.Now()
	runCtx := WithCorrelationID(ctx, "run-"+uuid.NewString())

	var (
		mu    sync.Mutex
		stats models.SchedulerRunStats
		wg    sync.WaitGroup
	)
	status := "success"

	afterID := uuid.Nil
paging:
	for ctx.Err() == nil {
		userIDs, err := s.settingsRepo.ListUserIDs(runCtx, afterID, s.config.BatchSize)
		if err != nil {
			s.logger.Error("failed to list users for notifications",
				slog.String("error", err.Error()),
			)
			status = "failed"
			break
		}

		for _, userID := range userIDs {
			select {
			case s.workerSemaphore <- struct{}{}:
			case <-ctx.Done():
				status = "cancelled"
				break paging
			}

			wg.Add(1)
			go func(userID uuid.UUID) {
				defer wg.Done()
				defer func() { <-s.workerSemaphore }()
				outcome := s.processUser(runCtx, userID)

				mu.Lock()
				defer mu.Unlock()
				stats.Users++
				stats.AlertsSent += outcome.sent
				stats.AlertsFailed += outcome.failed
				if outcome.err != nil {
					stats.Failed++
				} else {
					stats.Succeeded++
				}
			}(userID)
		}

		if len(userIDs) < s.config.BatchSize {
			break
		}
		afterID = userIDs[len(userIDs)-1]
	}

	wg.Wait()

	duration := time.Since(startTime)
	s.metrics.IncrementCounter(MetricSchedulerRuns, map[string]string{"status": status})
	s.metrics.RecordProcessingTime(MetricSchedulerRunDuration, duration)
	s.metrics.RecordGauge(MetricSchedulerUsers, float64(stats.Users), nil)
	s.eventLogger.LogSchedulerRunCompleted(runCtx, stats, duration.Milliseconds())

	return stats
}

type userOutcome struct {
	sent   int
	failed int
	err    error
}

// processUser runs inside a worker slot taken by RunOnce
func (s *NotificationScheduler) processUser(ctx context.Context, userID uuid.UUID) userOutcome {
	if s.config.UserDeadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.UserDeadline)
		defer cancel()
	}

	result, err := s.dispatcher.SendNotifications(ctx, userID)
	if err != nil {
		s.logger.Error("failed to send notifications",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return userOutcome{err: err}
	}
	return userOutcome{sent: result.Sent, failed: result.Failed}
}
