package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// SimulationStartedResponse acknowledges a started run.
type SimulationStartedResponse struct {
	Message string `json:"message"`
	OrderID string `json:"order_id"`
}

// SimulationStatusResponse lists the orders currently being simulated.
type SimulationStatusResponse struct {
	ActiveSimulations []string `json:"active_simulations"`
	Count             int      `json:"count"`
}

// AutoStartResponse reports the runs launched by an auto-start sweep.
type AutoStartResponse struct {
	Message  string   `json:"message"`
	OrderIDs []string `json:"order_ids"`
}

func (s *Server) startSimulation(ctx echo.Context) error {
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.deps.Engine.Start(ctx.Request().Context(), orderID); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, SimulationStartedResponse{
		Message: fmt.Sprintf("Simulation started for order %s", orderID),
		OrderID: orderID.String(),
	})
}

func (s *Server) stopSimulation(ctx echo.Context) error {
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if !s.deps.Engine.Stop(orderID) {
		return ctx.JSON(http.StatusOK, MessageResponse{
			Message: "No active simulation found",
		})
	}

	return ctx.JSON(http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Simulation stopped for order %s", orderID),
	})
}

func (s *Server) simulationStatus(ctx echo.Context) error {
	active := s.deps.Engine.ActiveOrders()

	ids := make([]string, len(active))
	for i, id := range active {
		ids[i] = id.String()
	}

	return ctx.JSON(http.StatusOK, SimulationStatusResponse{
		ActiveSimulations: ids,
		Count:             len(ids),
	})
}

func (s *Server) autoStartSimulations(ctx echo.Context) error {
	started, err := s.deps.Engine.AutoStart(ctx.Request().Context())
	if err != nil {
		return s.writeError(ctx, err)
	}

	ids := make([]string, len(started))
	for i, id := range started {
		ids[i] = id.String()
	}

	return ctx.JSON(http.StatusOK, AutoStartResponse{
		Message:  fmt.Sprintf("Started %d simulations", len(ids)),
		OrderIDs: ids,
	})
}
