package jobs

import (
	"fmt"
	"log/slog"

	"fastroute/internal/core/application/simulation"
	"fastroute/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	snapshotBroadcastJob *SnapshotBroadcastJob
	autoStartJob         *AutoStartJob
}

// NewJobManager creates a job manager wiring both jobs. With autoStart false
// the sweep job is omitted and simulation starts stay explicit.
func NewJobManager(
	fleet ports.FleetReader,
	broadcaster *SnapshotBroadcaster,
	engine *simulation.Engine,
	autoStart bool,
	logger *slog.Logger,
) *JobManager {
	manager := &JobManager{
		snapshotBroadcastJob: NewSnapshotBroadcastJob(fleet, broadcaster, logger),
	}
	if autoStart {
		manager.autoStartJob = NewAutoStartJob(engine, logger)
	}
	return manager
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.snapshotBroadcastJob.Start(); err != nil {
		return fmt.Errorf("failed to start snapshot broadcast job: %w", err)
	}

	if jm.autoStartJob != nil {
		if err := jm.autoStartJob.Start(); err != nil {
			// Stop already started jobs if this one fails
			jm.snapshotBroadcastJob.Stop()
			return fmt.Errorf("failed to start auto-start job: %w", err)
		}
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.autoStartJob != nil {
		jm.autoStartJob.Stop()
	}
	jm.snapshotBroadcastJob.Stop()
}
