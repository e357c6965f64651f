package queries

import (
	"errors"

	"fastroute/internal/core/domain/model/kernel"
	"fastroute/internal/core/domain/model/restaurant"
	"fastroute/internal/pkg/guard"
)

var ErrGetMapDataQueryIsNotConstructed = errors.New(
	"GetMapDataQuery must be created via NewGetMapDataQuery constructor",
)

// GetMapDataQuery retrieves the full map view: every grid node with its
// flags, the blocked paths, the active restaurants, and the fleet.
type GetMapDataQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMapDataQuery creates a query for the full map view.
func NewGetMapDataQuery() GetMapDataQuery {
	return GetMapDataQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMapDataQuery) Validate() error {
	return q.guard.Validate(ErrGetMapDataQueryIsNotConstructed)
}

// NodeResponse is the read model for one grid node.
// RestaurantType is nil for nodes without a restaurant.
type NodeResponse struct {
	ID              kernel.NodeID
	X               kernel.Coordinate
	Y               kernel.Coordinate
	IsDeliveryPoint bool
	IsRestaurant    bool
	RestaurantType  *restaurant.Type
}

// BlockedPathResponse is the read model for one blocked edge.
type BlockedPathResponse struct {
	FromID kernel.NodeID
	ToID   kernel.NodeID
}

// MapDataResponse aggregates everything a map client needs in one call.
type MapDataResponse struct {
	GridSize     int
	Nodes        []NodeResponse
	BlockedPaths []BlockedPathResponse
	Restaurants  []RestaurantResponse
	Bots         []BotResponse
}
