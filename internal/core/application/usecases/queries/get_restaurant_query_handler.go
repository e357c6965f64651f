package queries

import (
	"context"

	"fastroute/internal/core/ports"
)

// GetRestaurantQueryHandler serves single-restaurant lookups.
type GetRestaurantQueryHandler struct {
	restaurants ports.RestaurantRepository
}

// NewGetRestaurantQueryHandler creates a handler for single-restaurant queries.
func NewGetRestaurantQueryHandler(restaurants ports.RestaurantRepository) GetRestaurantQueryHandler {
	return GetRestaurantQueryHandler{restaurants: restaurants}
}

// Handle returns the restaurant read model or an object-not-found error.
func (h GetRestaurantQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantQuery,
) (RestaurantResponse, error) {
	if err := query.Validate(); err != nil {
		return RestaurantResponse{}, err
	}

	r, err := h.restaurants.Get(ctx, query.RestaurantID())
	if err != nil {
		return RestaurantResponse{}, err
	}

	return restaurantResponseFrom(r)
}
