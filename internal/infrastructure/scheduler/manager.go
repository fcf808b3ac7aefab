// Package scheduler provides unified scheduler management using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"unibot/internal/shared/biztime"
	"unibot/internal/shared/logger"
)

// BatchJob defines the interface for a scheduled batch processing job.
// Each Execute call processes a batch and returns the number of items processed.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

// SchedulerManager manages all scheduled jobs using gocron v2 with a single
// scheduler instance.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

// NewSchedulerManager creates a new SchedulerManager instance.
// It initializes gocron with the business timezone for cron expressions.
func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(biztime.Location()),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// RegisterBroadcastJob registers the pending notification dispatcher. The
// job is singleton so overlapping runs never double-send a notification.
func (m *SchedulerManager) RegisterBroadcastJob(dispatchJob BatchJob, interval time.Duration) error {
	_, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
			defer cancel()
			m.processBroadcast(ctx, dispatchJob)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("notification", "broadcast"),
		gocron.WithName("notification-dispatcher"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered broadcast job", "interval", interval)
	return nil
}

func (m *SchedulerManager) processBroadcast(ctx context.Context, dispatchJob BatchJob) {
	startTime := biztime.NowUTC()

	sentCount, err := dispatchJob.Execute(ctx)
	if err != nil {
		m.logger.Errorw("failed to dispatch pending notifications",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if sentCount > 0 {
		m.logger.Infow("pending notifications dispatched",
			"count", sentCount,
			"duration", time.Since(startTime),
		)
	} else {
		m.logger.Debugw("no pending notifications to dispatch",
			"duration", time.Since(startTime),
		)
	}
}

// Start starts the scheduler. Safe to call once.
func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler started")
}

// Stop gracefully shuts down the scheduler, waiting for running jobs.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	if err := m.scheduler.Shutdown(); err != nil {
		return err
	}

	m.started = false
	m.logger.Infow("scheduler stopped")
	return nil
}
