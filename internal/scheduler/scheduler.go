package scheduler

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/fightpicks/fightpicks/internal/worker"
)

// Log messages
const (
	LogMsgJobDisabled  = "Scheduled job disabled"
	LogMsgJobScheduled = "Scheduled job registered"
	LogMsgJobSkipped   = "Worker queue full, skipping scheduled run"
)

// Scheduler hands jobs to the worker pool on a fixed interval
type Scheduler struct {
	cron       gocron.Scheduler // owns the tick goroutines
	workerPool *worker.Pool
}

// New creates a new scheduler
func New(pool *worker.Pool) (*Scheduler, error) {
	cron, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}
	return &Scheduler{cron: cron, workerPool: pool}, nil
}

// Schedule registers job to run every interval, starting immediately.
// A zero or negative interval disables the job.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) error {
	if interval <= 0 {
		slog.Info(LogMsgJobDisabled, "job", job.Name())
		return nil
	}

	_, err := s.cron.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			// Never block the scheduler on a busy pool; the next tick retries
			if !s.workerPool.TryEnqueue(job) {
				slog.Warn(LogMsgJobSkipped, "job", job.Name())
			}
		}),
		gocron.WithName(job.Name()),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		// A slow run never overlaps the next tick
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("schedule %s: %w", job.Name(), err)
	}
	slog.Info(LogMsgJobScheduled, "job", job.Name(), "interval", interval)
	return nil
}

// Start starts the scheduler
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops all scheduled jobs. Jobs already handed to the pool keep running.
func (s *Scheduler) Stop() error {
	return s.cron.Shutdown()
}
