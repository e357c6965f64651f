package queries

import (
	"context"

	"fastroute/internal/core/domain/model/restaurant"
	"fastroute/internal/core/ports"
)

// GetRestaurantsQueryHandler serves restaurant listings.
// Inactive restaurants are excluded; they are not taking orders and do not
// belong on the map.
type GetRestaurantsQueryHandler struct {
	restaurants ports.RestaurantRepository
}

// NewGetRestaurantsQueryHandler creates a handler for restaurant listings.
func NewGetRestaurantsQueryHandler(restaurants ports.RestaurantRepository) GetRestaurantsQueryHandler {
	return GetRestaurantsQueryHandler{restaurants: restaurants}
}

// Handle returns active restaurants, ordered by node id.
func (h GetRestaurantsQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantsQuery,
) ([]RestaurantResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		aggregates []*restaurant.Restaurant
		err        error
	)

	if kind := query.Kind(); kind != nil {
		aggregates, err = h.restaurants.GetAllByType(ctx, *kind)
	} else {
		aggregates, err = h.restaurants.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]RestaurantResponse, 0, len(aggregates))
	for _, r := range aggregates {
		if !r.IsActive() {
			continue
		}

		response, err := restaurantResponseFrom(r)
		if err != nil {
			return nil, err
		}
		responses = append(responses, response)
	}

	return responses, nil
}
