package ports

import (
	"context"

	"fastroute/internal/core/domain/model/bot"
	"fastroute/internal/core/domain/model/order"
	"fastroute/internal/core/domain/model/restaurant"
)

// FleetSnapshot is a point-in-time view of the whole fleet state.
// Bots are ordered by id, orders newest first.
type FleetSnapshot struct {
	Bots         []*bot.Bot
	ActiveOrders []*order.Order
	Restaurants  []*restaurant.Restaurant
}

// FleetReader provides a consistent read of the fleet state in a single
// call. Unlike composing individual repository reads, the snapshot is taken
// under one read lock (or one transaction), so a simulation tick can never
// be observed half-applied by the streaming layer.
type FleetReader interface {
	Snapshot(ctx context.Context) (FleetSnapshot, error)
}
