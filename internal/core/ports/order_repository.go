package ports

import (
	"context"
	"time"

	"fastroute/internal/core/domain/model/kernel"
	"fastroute/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and assignment state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves all orders, newest first.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllInStatus retrieves all orders in the given status.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetAllActive retrieves all orders assigned to a bot and in flight:
	// assigned, picking_up, picked_up, or delivering.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// CountByRestaurantSince counts orders placed at the restaurant with
	// a creation time at or after the cutoff. Used by the per-restaurant
	// rate limit; the count includes cancelled orders.
	CountByRestaurantSince(ctx context.Context, restaurantID kernel.UUID, cutoff time.Time) (int, error)

	// Delete removes an order from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
