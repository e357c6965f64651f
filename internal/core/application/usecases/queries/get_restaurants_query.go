package queries

import (
	"errors"

	"fastroute/internal/core/domain/model/kernel"
	"fastroute/internal/core/domain/model/restaurant"
	"fastroute/internal/pkg/guard"
)

var ErrGetRestaurantsQueryIsNotConstructed = errors.New(
	"GetRestaurantsQuery must be created via NewGetRestaurantsQuery constructor",
)

// GetRestaurantsQuery retrieves restaurants, optionally narrowed to one
// cuisine type.
type GetRestaurantsQuery struct {
	kind *restaurant.Type

	guard guard.ConstructorGuard
}

// NewGetRestaurantsQuery creates a query for all restaurants.
func NewGetRestaurantsQuery() GetRestaurantsQuery {
	return GetRestaurantsQuery{guard: guard.NewConstructorGuard()}
}

// NewGetRestaurantsByTypeQuery creates a query for restaurants of one
// cuisine type.
func NewGetRestaurantsByTypeQuery(kind restaurant.Type) (GetRestaurantsQuery, error) {
	if err := kind.Validate(); err != nil {
		return GetRestaurantsQuery{}, err
	}

	return GetRestaurantsQuery{
		kind:  &kind,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantsQueryIsNotConstructed)
}

// Kind returns the cuisine type filter, or nil when all types are wanted.
func (q GetRestaurantsQuery) Kind() *restaurant.Type {
	return q.kind
}

// RestaurantResponse is the read model for a single restaurant.
// Location carries the grid coordinates of the restaurant's node.
type RestaurantResponse struct {
	ID       kernel.UUID
	Name     string
	Type     restaurant.Type
	NodeID   kernel.NodeID
	Location kernel.Location
	IsActive bool
}

func restaurantResponseFrom(r *restaurant.Restaurant) (RestaurantResponse, error) {
	location, err := kernel.LocationFromNodeID(r.NodeID())
	if err != nil {
		return RestaurantResponse{}, err
	}

	return RestaurantResponse{
		ID:       r.ID(),
		Name:     r.Name(),
		Type:     r.Type(),
		NodeID:   r.NodeID(),
		Location: location,
		IsActive: r.IsActive(),
	}, nil
}
