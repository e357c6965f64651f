package ports

import (
	"context"

	"fastroute/internal/core/domain/model/kernel"
	"fastroute/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurants.
type RestaurantRepository interface {
	// Add persists a new restaurant to storage.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Update persists changes to an existing restaurant.
	Update(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Get retrieves a restaurant by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)

	// GetAll retrieves all restaurants.
	GetAll(ctx context.Context) ([]*restaurant.Restaurant, error)

	// GetAllByType retrieves all restaurants of the given cuisine type.
	GetAllByType(ctx context.Context, kind restaurant.Type) ([]*restaurant.Restaurant, error)
}
