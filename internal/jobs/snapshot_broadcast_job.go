package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"fastroute/internal/core/ports"
)

// SnapshotBroadcastJob publishes a fleet snapshot to the broadcaster on a
// fixed two second cadence. Keeping the read here means one consistent
// snapshot per tick no matter how many stream clients are connected.
type SnapshotBroadcastJob struct {
	fleet       ports.FleetReader
	broadcaster *SnapshotBroadcaster
	cron        *cron.Cron
	logger      *slog.Logger
}

// NewSnapshotBroadcastJob creates a job that feeds the broadcaster from the
// fleet reader.
func NewSnapshotBroadcastJob(
	fleet ports.FleetReader,
	broadcaster *SnapshotBroadcaster,
	logger *slog.Logger,
) *SnapshotBroadcastJob {
	return &SnapshotBroadcastJob{
		fleet:       fleet,
		broadcaster: broadcaster,
		cron:        cron.New(cron.WithSeconds()),
		logger:      logger.With("component", "snapshot_broadcast_job"),
	}
}

// Start begins broadcasting every two seconds.
func (j *SnapshotBroadcastJob) Start() error {
	_, err := j.cron.AddFunc("*/2 * * * * *", func() {
		j.runOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Snapshot broadcast job started (running every 2 seconds)")
	return nil
}

// Stop stops the broadcast schedule.
func (j *SnapshotBroadcastJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Snapshot broadcast job stopped")
}

func (j *SnapshotBroadcastJob) runOnce(ctx context.Context) {
	snapshot, err := j.fleet.Snapshot(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Fleet snapshot failed", "error", err)
		return
	}

	j.broadcaster.Publish(snapshot)
}
