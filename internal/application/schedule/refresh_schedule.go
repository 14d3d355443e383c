package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"go-weather/internal/domain/usecase/weather"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/redis"
)

// Locker guards a run against other replicas. *redis.Lock implements it.
type Locker interface {
	TryLock(ctx context.Context) error
	Unlock(ctx context.Context) error
}

var _ Locker = (*redis.Lock)(nil)

// RefreshSchedulerConfig holds configuration for the refresh scheduler
type RefreshSchedulerConfig struct {
	CronExpression string
	Timeout        time.Duration
}

// RefreshScheduler periodically enqueues every saved lookup for a refresh.
type RefreshScheduler struct {
	cron    *cron.Cron
	useCase weather.UseCase
	locker  Locker
	config  RefreshSchedulerConfig
}

// NewRefreshScheduler creates the scheduler. A nil locker runs every tick on this replica.
func NewRefreshScheduler(useCase weather.UseCase, locker Locker, config RefreshSchedulerConfig) *RefreshScheduler {
	if config.Timeout <= 0 {
		config.Timeout = 5 * time.Minute
	}
	return &RefreshScheduler{
		cron:    cron.New(),
		useCase: useCase,
		locker:  locker,
		config:  config,
	}
}

// InitRefreshScheduleTasks registers the cron entry and starts the scheduler
func (s *RefreshScheduler) InitRefreshScheduleTasks() error {
	if _, err := s.cron.AddFunc(s.config.CronExpression, s.ExecuteScheduledTask); err != nil {
		return err
	}
	s.cron.Start()
	log.Info(msg.GetMessage("refresh.scheduler-started"), zap.String("cron", s.config.CronExpression))
	return nil
}

// ExecuteScheduledTask runs one enqueue pass if this replica wins the lock.
func (s *RefreshScheduler) ExecuteScheduledTask() {
	requestID := uuid.New().String()
	ctx, cancel := context.WithTimeout(context.Background(), s.config.Timeout)
	defer cancel()

	if s.locker != nil {
		if err := s.locker.TryLock(ctx); err != nil {
			if errors.Is(err, redis.ErrLockHeld) {
				log.Debug(msg.GetMessage("refresh.lock-held"), zap.String("request_id", requestID))
			} else {
				log.Error(msg.GetMessage("refresh.lock-failed"), zap.String("request_id", requestID), zap.Error(err))
			}
			return
		}
		defer func() {
			if err := s.locker.Unlock(context.WithoutCancel(ctx)); err != nil {
				log.Warn(msg.GetMessage("refresh.unlock-failed"), zap.String("request_id", requestID), zap.Error(err))
			}
		}()
	}

	if err := s.useCase.EnqueueAllForRefresh(ctx, requestID); err != nil {
		log.Error(msg.GetMessage("refresh.failed"), zap.String("request_id", requestID), zap.Error(err))
	}
}

// Stop gracefully stops the scheduler
func (s *RefreshScheduler) Stop() {
	<-s.cron.Stop().Done()
}
