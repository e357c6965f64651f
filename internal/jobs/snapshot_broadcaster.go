package jobs

import (
	"sync"

	"fastroute/internal/core/ports"
)

// SnapshotBroadcaster fans one fleet snapshot out to any number of
// subscribers. The latest snapshot is cached so a new subscriber gets the
// current state immediately instead of waiting a full broadcast interval.
type SnapshotBroadcaster struct {
	mu   sync.Mutex
	subs map[chan ports.FleetSnapshot]struct{}
	last *ports.FleetSnapshot
}

// NewSnapshotBroadcaster creates an empty broadcaster.
func NewSnapshotBroadcaster() *SnapshotBroadcaster {
	return &SnapshotBroadcaster{
		subs: make(map[chan ports.FleetSnapshot]struct{}),
	}
}

// Publish delivers the snapshot to every subscriber and caches it for
// future subscribers. A subscriber that has not drained its previous
// snapshot is skipped; the next publish supersedes anything it missed.
func (b *SnapshotBroadcaster) Publish(snapshot ports.FleetSnapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.last = &snapshot
	for ch := range b.subs {
		select {
		case ch <- snapshot:
		default:
		}
	}
}

// Subscribe registers a new subscriber and returns its channel together
// with an unsubscribe function. The channel is buffered with the latest
// published snapshot when one exists.
func (b *SnapshotBroadcaster) Subscribe() (<-chan ports.FleetSnapshot, func()) {
	ch := make(chan ports.FleetSnapshot, 1)

	b.mu.Lock()
	if b.last != nil {
		ch <- *b.last
	}
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	unsubscribe := func() {
		b.mu.Lock()
		delete(b.subs, ch)
		b.mu.Unlock()
	}

	return ch, unsubscribe
}

// SubscriberCount reports the number of live subscribers.
func (b *SnapshotBroadcaster) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
