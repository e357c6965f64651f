package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"fastroute/internal/core/application/usecases/commands"
	"fastroute/internal/core/application/usecases/queries"
	"fastroute/internal/core/domain/model/bot"
	"fastroute/internal/core/domain/model/kernel"
	"fastroute/internal/pkg/errs"
)

// botIDFromPath parses the :id path parameter as a bot id.
func botIDFromPath(ctx echo.Context) (bot.ID, error) {
	raw, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("botId", err)
	}

	id := bot.ID(raw)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Server) getAllBots(ctx echo.Context) error {
	return s.listBots(ctx, false)
}

func (s *Server) getAvailableBots(ctx echo.Context) error {
	return s.listBots(ctx, true)
}

func (s *Server) listBots(ctx echo.Context, availableOnly bool) error {
	query := queries.NewGetBotsQuery(availableOnly)

	bots, err := s.deps.GetBots.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, botListJSONFrom(bots))
}

func (s *Server) getBot(ctx echo.Context) error {
	botID, err := botIDFromPath(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetBotQuery(botID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.deps.GetBot.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, botJSONFrom(result))
}

// UpdateBotPositionRequest is the body of PUT /api/bots/:id/position.
type UpdateBotPositionRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (s *Server) updateBotPosition(ctx echo.Context) error {
	botID, err := botIDFromPath(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req UpdateBotPositionRequest
	if err := ctx.Bind(&req); err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("requestBody", err))
	}

	if req.X < 0 || req.X >= kernel.GridSize || req.Y < 0 || req.Y >= kernel.GridSize {
		return s.writeError(ctx, errs.NewValueIsOutOfRangeError(
			"position", fmt.Sprintf("(%d, %d)", req.X, req.Y), 0, kernel.GridSize-1,
		))
	}

	cmd, err := commands.NewUpdateBotPositionCommand(
		botID, kernel.Coordinate(req.X), kernel.Coordinate(req.Y),
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.deps.UpdateBotPosition.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Bot %d moved to (%d, %d)", botID, req.X, req.Y),
	})
}

func (s *Server) updateBotStatus(ctx echo.Context) error {
	botID, err := botIDFromPath(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	status, err := bot.ParseStatus(ctx.Param("status"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateBotStatusCommand(botID, status)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.deps.UpdateBotStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Bot %d status updated to %s", botID, status),
	})
}
