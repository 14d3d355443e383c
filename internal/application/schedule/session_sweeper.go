package schedule

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"

	"go-weather/pkg/log"
	"go-weather/pkg/msg"
)

// Sweepable drops entries idle for longer than the given duration. *session.Store implements it.
type Sweepable interface {
	Sweep(idle time.Duration) int
}

// SessionSweeper evicts idle lookup machines and panel boards.
type SessionSweeper struct {
	scheduler gocron.Scheduler
	stores    map[string]Sweepable
	interval  time.Duration
	idle      time.Duration
}

func NewSessionSweeper(stores map[string]Sweepable, interval, idle time.Duration) (*SessionSweeper, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create session sweeper: %w", err)
	}
	return &SessionSweeper{scheduler: scheduler, stores: stores, interval: interval, idle: idle}, nil
}

// Start schedules the sweep every interval
func (s *SessionSweeper) Start() error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(func() { s.Sweep() }),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule session sweep: %w", err)
	}
	s.scheduler.Start()
	return nil
}

// Sweep evicts idle sessions from every store and returns how many were dropped.
func (s *SessionSweeper) Sweep() int {
	total := 0
	for name, store := range s.stores {
		if n := store.Sweep(s.idle); n > 0 {
			log.Debug(msg.GetMessage("session.swept", n, name), zap.String("store", name))
			total += n
		}
	}
	return total
}

func (s *SessionSweeper) Stop() error {
	return s.scheduler.Shutdown()
}
