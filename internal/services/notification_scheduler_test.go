package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"finance-alerts/internal/models"
	"finance-alerts/internal/repositories/repository_mocks"
	"finance-alerts/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type NotificationSchedulerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	ctx            context.Context
	mockDispatcher *service_mocks.MockNotificationDispatcherInterface
	mockSettings   *repository_mocks.MockNotificationSettingsRepositoryInterface
	mockMetrics    *service_mocks.MockMetricsRecorderInterface
	mockLogger     *service_mocks.MockNotificationLoggerInterface
	scheduler      NotificationSchedulerInterface
}

func (s *NotificationSchedulerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.mockDispatcher = service_mocks.NewMockNotificationDispatcherInterface(s.ctrl)
	s.mockSettings = repository_mocks.NewMockNotificationSettingsRepositoryInterface(s.ctrl)
	s.mockMetrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.mockLogger = service_mocks.NewMockNotificationLoggerInterface(s.ctrl)

	s.mockMetrics.EXPECT().RecordProcessingTime(MetricSchedulerRunDuration, gomock.Any()).AnyTimes()

	s.scheduler = NewNotificationScheduler(
		s.mockDispatcher,
		s.mockSettings,
		s.mockMetrics,
		s.mockLogger,
		SchedulerConfig{Interval: time.Hour, MaxWorkers: 2, BatchSize: 2, UserDeadline: time.Second},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func (s *NotificationSchedulerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestNotificationSchedulerTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationSchedulerTestSuite))
}

func (s *NotificationSchedulerTestSuite) TestRunOnce_PagesThroughUsers() {
	first, second, third := uuid.New(), uuid.New(), uuid.New()

	gomock.InOrder(
		s.mockSettings.EXPECT().ListUserIDs(gomock.Any(), uuid.Nil, 2).Return([]uuid.UUID{first, second}, nil),
		s.mockSettings.EXPECT().ListUserIDs(gomock.Any(), second, 2).Return([]uuid.UUID{third}, nil),
	)
	s.mockDispatcher.EXPECT().SendNotifications(gomock.Any(), first).Return(&models.DispatchResult{UserID: first, Sent: 3}, nil)
	s.mockDispatcher.EXPECT().SendNotifications(gomock.Any(), second).Return(&models.DispatchResult{UserID: second, Sent: 1, Failed: 2}, nil)
	s.mockDispatcher.EXPECT().SendNotifications(gomock.Any(), third).Return(nil, errors.New("failed to generate notifications: timeout"))

	s.mockMetrics.EXPECT().IncrementCounter(MetricSchedulerRuns, map[string]string{"status": "success"})
	s.mockMetrics.EXPECT().RecordGauge(MetricSchedulerUsers, 3.0, gomock.Any())
	s.mockLogger.EXPECT().LogSchedulerRunCompleted(gomock.Any(), gomock.Any(), gomock.Any())

	stats := s.scheduler.RunOnce(s.ctx)

	s.Equal(models.SchedulerRunStats{
		Users:        3,
		Succeeded:    2,
		Failed:       1,
		AlertsSent:   4,
		AlertsFailed: 2,
	}, stats)
}

func (s *NotificationSchedulerTestSuite) TestRunOnce_TagsRunWithCorrelationID() {
	userID := uuid.New()
	s.mockSettings.EXPECT().ListUserIDs(gomock.Any(), uuid.Nil, 2).Return([]uuid.UUID{userID}, nil)
	s.mockDispatcher.EXPECT().SendNotifications(gomock.Any(), userID).
		DoAndReturn(func(ctx context.Context, _ uuid.UUID) (*models.DispatchResult, error) {
			s.Contains(CorrelationIDFromContext(ctx), "run-")
			_, hasDeadline := ctx.Deadline()
			s.True(hasDeadline)
			return &models.DispatchResult{UserID: userID}, nil
		})
	s.mockMetrics.EXPECT().IncrementCounter(MetricSchedulerRuns, gomock.Any())
	s.mockMetrics.EXPECT().RecordGauge(MetricSchedulerUsers, 1.0, gomock.Any())
	s.mockLogger.EXPECT().LogSchedulerRunCompleted(gomock.Any(), models.SchedulerRunStats{Users: 1, Succeeded: 1}, gomock.Any())

	s.scheduler.RunOnce(s.ctx)
}

func (s *NotificationSchedulerTestSuite) TestRunOnce_ListFailureMarksRunFailed() {
	s.mockSettings.EXPECT().ListUserIDs(gomock.Any(), uuid.Nil, 2).Return(nil, errors.New("connection refused"))
	s.mockMetrics.EXPECT().IncrementCounter(MetricSchedulerRuns, map[string]string{"status": "failed"})
	s.mockMetrics.EXPECT().RecordGauge(MetricSchedulerUsers, 0.0, gomock.Any())
	s.mockLogger.EXPECT().LogSchedulerRunCompleted(gomock.Any(), models.SchedulerRunStats{}, gomock.Any())

	stats := s.scheduler.RunOnce(s.ctx)

	s.Zero(stats.Users)
}

func (s *NotificationSchedulerTestSuite) TestStart_StopsOnCancel() {
	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()

	s.mockSettings.EXPECT().ListUserIDs(gomock.Any(), uuid.Nil, 2).
		DoAndReturn(func(context.Context, uuid.UUID, int) ([]uuid.UUID, error) {
			cancel()
			return []uuid.UUID{}, nil
		})
	s.mockMetrics.EXPECT().IncrementCounter(MetricSchedulerRuns, gomock.Any())
	s.mockMetrics.EXPECT().RecordGauge(MetricSchedulerUsers, 0.0, gomock.Any())
	s.mockLogger.EXPECT().LogSchedulerRunCompleted(gomock.Any(), gomock.Any(), gomock.Any())

	done := make(chan struct{})
	go func() {
		s.scheduler.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		s.Fail("scheduler did not stop after cancellation")
	}
}

func (s *NotificationSchedulerTestSuite) newScheduler(workers, batch int) NotificationSchedulerInterface {
	return NewNotificationScheduler(
		s.mockDispatcher,
		s.mockSettings,
		s.mockMetrics,
		s.mockLogger,
		SchedulerConfig{Interval: time.Hour, MaxWorkers: workers, BatchSize: batch},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func (s *NotificationSchedulerTestSuite) TestRunOnce_WorkerSlotsBoundDispatchesAndPaging() {
	scheduler := s.newScheduler(2, 5)
	userIDs := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New()}

	var inFlight, peak, completed int32
	s.mockDispatcher.EXPECT().SendNotifications(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, userID uuid.UUID) (*models.DispatchResult, error) {
			n := atomic.AddInt32(&inFlight, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			atomic.AddInt32(&completed, 1)
			atomic.AddInt32(&inFlight, -1)
			return &models.DispatchResult{UserID: userID, Sent: 1}, nil
		}).Times(len(userIDs))

	gomock.InOrder(
		s.mockSettings.EXPECT().ListUserIDs(gomock.Any(), uuid.Nil, 5).Return(userIDs, nil),
		s.mockSettings.EXPECT().ListUserIDs(gomock.Any(), userIDs[4], 5).
			DoAndReturn(func(context.Context, uuid.UUID, int) ([]uuid.UUID, error) {
				// the last user of the page needed a free slot before the next fetch
				s.GreaterOrEqual(atomic.LoadInt32(&completed), int32(len(userIDs)-2))
				return []uuid.UUID{}, nil
			}),
	)
	s.mockMetrics.EXPECT().IncrementCounter(MetricSchedulerRuns, map[string]string{"status": "success"})
	s.mockMetrics.EXPECT().RecordGauge(MetricSchedulerUsers, 5.0, gomock.Any())
	s.mockLogger.EXPECT().LogSchedulerRunCompleted(gomock.Any(), gomock.Any(), gomock.Any())

	stats := scheduler.RunOnce(s.ctx)

	s.Equal(5, stats.Users)
	s.Equal(5, stats.AlertsSent)
	s.LessOrEqual(atomic.LoadInt32(&peak), int32(2))
}

func (s *NotificationSchedulerTestSuite) TestRunOnce_CancelWhileWaitingForSlot() {
	scheduler := s.newScheduler(1, 5)
	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()
	first := uuid.New()

	s.mockSettings.EXPECT().ListUserIDs(gomock.Any(), uuid.Nil, 5).
		Return([]uuid.UUID{first, uuid.New(), uuid.New()}, nil)
	s.mockDispatcher.EXPECT().SendNotifications(gomock.Any(), first).
		DoAndReturn(func(_ context.Context, userID uuid.UUID) (*models.DispatchResult, error) {
			cancel()
			time.Sleep(20 * time.Millisecond)
			return &models.DispatchResult{UserID: userID}, nil
		})
	s.mockMetrics.EXPECT().IncrementCounter(MetricSchedulerRuns, map[string]string{"status": "cancelled"})
	s.mockMetrics.EXPECT().RecordGauge(MetricSchedulerUsers, 1.0, gomock.Any())
	s.mockLogger.EXPECT().LogSchedulerRunCompleted(gomock.Any(), gomock.Any(), gomock.Any())

	stats := scheduler.RunOnce(ctx)

	s.Equal(1, stats.Users)
}
