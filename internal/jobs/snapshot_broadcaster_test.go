package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fastroute/internal/core/domain/model/bot"
	"fastroute/internal/core/domain/model/kernel"
	"fastroute/internal/core/ports"
)

type fleetReaderFunc func(ctx context.Context) (ports.FleetSnapshot, error)

func (f fleetReaderFunc) Snapshot(ctx context.Context) (ports.FleetSnapshot, error) {
	return f(ctx)
}

func fleetWithOneBot(t *testing.T) ports.FleetSnapshot {
	t.Helper()
	location, err := kernel.NewLocation(4, 4)
	require.NoError(t, err)
	b, err := bot.NewBot(1, "Bot-1", location)
	require.NoError(t, err)

	return ports.FleetSnapshot{Bots: []*bot.Bot{b}}
}

func TestSnapshotBroadcaster(t *testing.T) {
	t.Run("delivers published snapshots to subscribers", func(t *testing.T) {
		broadcaster := NewSnapshotBroadcaster()
		events, unsubscribe := broadcaster.Subscribe()
		defer unsubscribe()

		broadcaster.Publish(fleetWithOneBot(t))

		snapshot := <-events
		require.Len(t, snapshot.Bots, 1)
		assert.Equal(t, "Bot-1", snapshot.Bots[0].Name())
	})

	t.Run("late subscriber gets the cached snapshot", func(t *testing.T) {
		broadcaster := NewSnapshotBroadcaster()
		broadcaster.Publish(fleetWithOneBot(t))

		events, unsubscribe := broadcaster.Subscribe()
		defer unsubscribe()

		select {
		case snapshot := <-events:
			assert.Len(t, snapshot.Bots, 1)
		default:
			t.Fatal("expected the cached snapshot to be buffered")
		}
	})

	t.Run("slow subscriber keeps the oldest undrained snapshot", func(t *testing.T) {
		broadcaster := NewSnapshotBroadcaster()
		events, unsubscribe := broadcaster.Subscribe()
		defer unsubscribe()

		broadcaster.Publish(ports.FleetSnapshot{})
		broadcaster.Publish(fleetWithOneBot(t))

		snapshot := <-events
		assert.Empty(t, snapshot.Bots)

		select {
		case <-events:
			t.Fatal("second publish should have been dropped")
		default:
		}
	})

	t.Run("unsubscribe removes the subscriber", func(t *testing.T) {
		broadcaster := NewSnapshotBroadcaster()
		_, unsubscribe := broadcaster.Subscribe()
		require.Equal(t, 1, broadcaster.SubscriberCount())

		unsubscribe()

		assert.Equal(t, 0, broadcaster.SubscriberCount())
	})
}

func TestSnapshotBroadcastJob_RunOnce(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("publishes the fleet snapshot", func(t *testing.T) {
		snapshot := fleetWithOneBot(t)
		fleet := fleetReaderFunc(func(context.Context) (ports.FleetSnapshot, error) {
			return snapshot, nil
		})

		broadcaster := NewSnapshotBroadcaster()
		job := NewSnapshotBroadcastJob(fleet, broadcaster, logger)
		events, unsubscribe := broadcaster.Subscribe()
		defer unsubscribe()

		job.runOnce(t.Context())

		received := <-events
		assert.Len(t, received.Bots, 1)
	})

	t.Run("publishes nothing when the read fails", func(t *testing.T) {
		fleet := fleetReaderFunc(func(context.Context) (ports.FleetSnapshot, error) {
			return ports.FleetSnapshot{}, errors.New("storage down")
		})

		broadcaster := NewSnapshotBroadcaster()
		job := NewSnapshotBroadcastJob(fleet, broadcaster, logger)
		events, unsubscribe := broadcaster.Subscribe()
		defer unsubscribe()

		job.runOnce(t.Context())

		select {
		case <-events:
			t.Fatal("failed reads must not be published")
		default:
		}
	})
}
