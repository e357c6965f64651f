// Package jobs provides scheduled background tasks for the dispatch system.
//
// Jobs are cron-driven via github.com/robfig/cron/v3 with second-level
// schedules:
//
//  1. SnapshotBroadcastJob reads a consistent fleet snapshot every two
//     seconds and publishes it to subscribers (the SSE stream).
//  2. AutoStartJob sweeps assigned orders every second and launches
//     simulation runs for any that are not simulating yet.
//
// JobManager wires both and offers StartAll/StopAll; a failed start stops
// the jobs that already came up.
package jobs
