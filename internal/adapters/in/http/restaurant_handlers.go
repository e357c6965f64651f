package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"fastroute/internal/core/application/usecases/queries"
	"fastroute/internal/core/domain/model/kernel"
	"fastroute/internal/core/domain/model/restaurant"
	"fastroute/internal/pkg/errs"
)

// restaurantIDFromPath parses the :id path parameter as a restaurant UUID.
func restaurantIDFromPath(ctx echo.Context) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("restaurantId", err)
	}
	return id, nil
}

func (s *Server) getAllRestaurants(ctx echo.Context) error {
	query := queries.NewGetRestaurantsQuery()

	restaurants, err := s.deps.GetRestaurants.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, restaurantListJSONFrom(restaurants))
}

func (s *Server) getRestaurantsByType(ctx echo.Context) error {
	// Cuisine tokens are stored uppercase; accept any casing on the wire.
	kind, err := restaurant.ParseType(strings.ToUpper(ctx.Param("type")))
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetRestaurantsByTypeQuery(kind)
	if err != nil {
		return s.writeError(ctx, err)
	}

	restaurants, err := s.deps.GetRestaurants.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, restaurantListJSONFrom(restaurants))
}

func (s *Server) getRestaurant(ctx echo.Context) error {
	restaurantID, err := restaurantIDFromPath(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetRestaurantQuery(restaurantID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.deps.GetRestaurant.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, restaurantJSONFrom(result))
}

// RestaurantLocationResponse pins a restaurant to its grid coordinates.
type RestaurantLocationResponse struct {
	Restaurant string `json:"restaurant"`
	NodeID     int    `json:"node_id"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
}

func (s *Server) getRestaurantLocation(ctx echo.Context) error {
	restaurantID, err := restaurantIDFromPath(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetRestaurantQuery(restaurantID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.deps.GetRestaurant.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RestaurantLocationResponse{
		Restaurant: result.Name,
		NodeID:     int(result.NodeID),
		X:          int(result.Location.X()),
		Y:          int(result.Location.Y()),
	})
}
