package queries

import (
	"errors"

	"fastroute/internal/core/domain/model/kernel"
	"fastroute/internal/pkg/guard"
)

var ErrCalculateRouteQueryIsNotConstructed = errors.New(
	"CalculateRouteQuery must be created via NewCalculateRouteQuery constructor",
)

// CalculateRouteQuery requests the shortest path between two grid points.
type CalculateRouteQuery struct {
	from kernel.Location
	to   kernel.Location

	guard guard.ConstructorGuard
}

// NewCalculateRouteQuery creates a route query from raw coordinates.
// Coordinate range validation happens here so the handler only ever sees
// points that exist on the grid.
func NewCalculateRouteQuery(startX, startY, endX, endY kernel.Coordinate) (CalculateRouteQuery, error) {
	from, err := kernel.NewLocation(startX, startY)
	if err != nil {
		return CalculateRouteQuery{}, err
	}

	to, err := kernel.NewLocation(endX, endY)
	if err != nil {
		return CalculateRouteQuery{}, err
	}

	return CalculateRouteQuery{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CalculateRouteQuery) Validate() error {
	return q.guard.Validate(ErrCalculateRouteQueryIsNotConstructed)
}

// From returns the start of the requested route.
func (q CalculateRouteQuery) From() kernel.Location {
	return q.from
}

// To returns the destination of the requested route.
func (q CalculateRouteQuery) To() kernel.Location {
	return q.to
}

// RoutePointResponse is one cell on a calculated path.
type RoutePointResponse struct {
	X kernel.Coordinate
	Y kernel.Coordinate
}

// CalculateRouteResponse carries a calculated path. Distance is the number
// of moves; at one cell per second the travel time in seconds equals it.
type CalculateRouteResponse struct {
	Path          []RoutePointResponse
	Distance      int
	EstimatedTime int
}
