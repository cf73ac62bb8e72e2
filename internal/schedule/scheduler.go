package schedule

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// Scheduler runs a Task forever at a fixed interval. A cycle still in
// progress is never overlapped: the next run is rescheduled instead.
type Scheduler struct {
	task     Task
	interval time.Duration
	// -----
	sched gocron.Scheduler
}

func NewScheduler(task Task, interval time.Duration) *Scheduler {
	return &Scheduler{task: task, interval: interval}
}

func (s *Scheduler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	s.sched = scheduler

	job := func(jobCtx context.Context) {
		if runErr := s.task.Run(jobCtx); runErr != nil {
			// Cycle failures are logged and absorbed; the next tick retries.
			slog.Error("task run failed", "task", s.task.Name(), "error", runErr)
		}
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return err
	}

	scheduler.Start()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			slog.Error("scheduler shutdown error", "error", sdErr)
		}
	}()
	return nil
}

func (s *Scheduler) Shutdown() error {
	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}
