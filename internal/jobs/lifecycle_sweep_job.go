package jobs

import (
	"context"
	"log/slog"
	"time"

	"freight/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// LifecycleSweepJob periodically advances orders through their lifecycle:
// departed shipments start, arrived shipments complete and release their
// resources, canceled in-flight shipments free their vehicle, and orders
// still waiting for resources get another assignment attempt.
type LifecycleSweepJob struct {
	handler  commands.RunLifecycleSweepCommandHandler
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewLifecycleSweepJob creates a sweep job on the given cron schedule.
// The schedule uses six fields (with seconds), e.g. "0 * * * * *" for once a
// minute.
func NewLifecycleSweepJob(
	handler commands.RunLifecycleSweepCommandHandler,
	schedule string,
	logger *slog.Logger,
) *LifecycleSweepJob {
	return &LifecycleSweepJob{
		handler:  handler,
		cron:     cron.New(cron.WithSeconds()),
		schedule: schedule,
		logger:   logger.With("component", "lifecycle_sweep_job"),
	}
}

// Start begins running the sweep on its schedule.
func (j *LifecycleSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.runSweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Lifecycle sweep job started", "schedule", j.schedule)
	return nil
}

// Stop stops the sweep job.
func (j *LifecycleSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Lifecycle sweep job stopped")
}

func (j *LifecycleSweepJob) runSweep() {
	ctx := context.Background()

	cmd, err := commands.NewRunLifecycleSweepCommand(time.Now().UTC())
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to build sweep command", "error", err)
		return
	}

	result, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Lifecycle sweep failed", "error", err)
		return
	}

	if result != (commands.SweepResult{}) {
		j.logger.InfoContext(ctx, "Lifecycle sweep completed",
			"started", result.Started,
			"completed", result.Completed,
			"released", result.Released,
			"assigned", result.Assigned)
	}
}
