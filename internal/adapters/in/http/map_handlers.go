package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"fastroute/internal/core/application/usecases/queries"
	"fastroute/internal/core/domain/model/kernel"
	"fastroute/internal/pkg/errs"
)

func (s *Server) mapData(ctx echo.Context) (queries.MapDataResponse, error) {
	return s.deps.GetMapData.Handle(ctx.Request().Context(), queries.NewGetMapDataQuery())
}

func (s *Server) getMapNodes(ctx echo.Context) error {
	data, err := s.mapData(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	nodes := make([]NodeJSON, len(data.Nodes))
	for i, n := range data.Nodes {
		nodes[i] = nodeJSONFrom(n)
	}

	return ctx.JSON(http.StatusOK, nodes)
}

func (s *Server) getBlockedPaths(ctx echo.Context) error {
	data, err := s.mapData(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	blocked := make([]BlockedPathJSON, len(data.BlockedPaths))
	for i, b := range data.BlockedPaths {
		blocked[i] = BlockedPathJSON{FromID: int(b.FromID), ToID: int(b.ToID)}
	}

	return ctx.JSON(http.StatusOK, blocked)
}

func (s *Server) getMapData(ctx echo.Context) error {
	data, err := s.mapData(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, mapDataJSONFrom(data))
}

func (s *Server) getStats(ctx echo.Context) error {
	stats, err := s.deps.GetStats.Handle(ctx.Request().Context(), queries.NewGetStatsQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StatsJSON{
		TotalOrders:         stats.TotalOrders,
		PendingOrders:       stats.PendingOrders,
		ActiveDeliveries:    stats.ActiveDeliveries,
		CompletedDeliveries: stats.CompletedDeliveries,
		AvailableBots:       stats.AvailableBots,
		BusyBots:            stats.BusyBots,
	})
}

// coordinateQueryParam parses one required coordinate query parameter.
func coordinateQueryParam(ctx echo.Context, name string) (kernel.Coordinate, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return 0, errs.NewValueIsRequiredError(name)
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	if value < 0 || value >= kernel.GridSize {
		return 0, errs.NewValueIsOutOfRangeError(name, value, 0, kernel.GridSize-1)
	}

	return kernel.Coordinate(value), nil
}

func (s *Server) calculateRoute(ctx echo.Context) error {
	startX, err := coordinateQueryParam(ctx, "start_x")
	if err != nil {
		return s.writeError(ctx, err)
	}
	startY, err := coordinateQueryParam(ctx, "start_y")
	if err != nil {
		return s.writeError(ctx, err)
	}
	endX, err := coordinateQueryParam(ctx, "end_x")
	if err != nil {
		return s.writeError(ctx, err)
	}
	endY, err := coordinateQueryParam(ctx, "end_y")
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewCalculateRouteQuery(startX, startY, endX, endY)
	if err != nil {
		return s.writeError(ctx, err)
	}

	route, err := s.deps.CalculateRoute.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, routeJSONFrom(route))
}
