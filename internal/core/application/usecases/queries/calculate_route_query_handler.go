package queries

import (
	"context"

	"fastroute/internal/core/domain/services"
	"fastroute/internal/core/ports"
)

// CalculateRouteQueryHandler runs the route planner against the stored grid.
type CalculateRouteQueryHandler struct {
	grids   ports.GridRepository
	planner services.RoutePlanner
}

// NewCalculateRouteQueryHandler creates a handler for route queries.
func NewCalculateRouteQueryHandler(
	grids ports.GridRepository,
	planner services.RoutePlanner,
) CalculateRouteQueryHandler {
	return CalculateRouteQueryHandler{grids: grids, planner: planner}
}

// Handle finds the shortest path for the query. Returns
// services.ErrNoRouteFound when the destination is unreachable.
func (h CalculateRouteQueryHandler) Handle(
	ctx context.Context,
	query CalculateRouteQuery,
) (CalculateRouteResponse, error) {
	if err := query.Validate(); err != nil {
		return CalculateRouteResponse{}, err
	}

	g, err := h.grids.Get(ctx)
	if err != nil {
		return CalculateRouteResponse{}, err
	}

	route, err := h.planner.FindRoute(g, query.From(), query.To())
	if err != nil {
		return CalculateRouteResponse{}, err
	}

	path := make([]RoutePointResponse, 0, len(route.Path))
	for _, cell := range route.Path {
		path = append(path, RoutePointResponse{X: cell.X(), Y: cell.Y()})
	}

	return CalculateRouteResponse{
		Path:          path,
		Distance:      route.Distance,
		EstimatedTime: route.Distance,
	}, nil
}
