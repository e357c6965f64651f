package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"fastroute/internal/core/application/simulation"
)

// AutoStartJob sweeps assigned orders every second and launches simulation
// runs for any that are not simulating yet. Orders assigned while their bot
// was mid-delivery get picked up here without an explicit start call.
type AutoStartJob struct {
	engine *simulation.Engine
	cron   *cron.Cron
	logger *slog.Logger
}

// NewAutoStartJob creates a job that keeps the engine sweeping.
func NewAutoStartJob(engine *simulation.Engine, logger *slog.Logger) *AutoStartJob {
	return &AutoStartJob{
		engine: engine,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "auto_start_job"),
	}
}

// Start begins the sweep running every second.
func (j *AutoStartJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()

		started, err := j.engine.AutoStart(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Auto-start sweep failed", "error", err)
			return
		}
		if len(started) > 0 {
			j.logger.InfoContext(ctx, "Auto-started simulation runs", "count", len(started))
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Auto-start job started (running every second)")
	return nil
}

// Stop stops the sweep schedule.
func (j *AutoStartJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Auto-start job stopped")
}
