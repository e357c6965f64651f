package commands

import (
	"context"
)

// UpdateBotPositionCommandHandler teleports a bot to a grid cell.
// Intended for operator tooling and for resetting the fleet; normal
// movement happens one cell at a time inside the simulation engine.
type UpdateBotPositionCommandHandler struct {
	uowFactory BotUoWFactory
}

// NewUpdateBotPositionCommandHandler creates a handler for bot repositioning.
func NewUpdateBotPositionCommandHandler(uowFactory BotUoWFactory) UpdateBotPositionCommandHandler {
	return UpdateBotPositionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reposition command.
func (h *UpdateBotPositionCommandHandler) Handle(ctx context.Context, cmd UpdateBotPositionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	botRepo := uow.BotRepository()
	b, err := botRepo.Get(ctx, cmd.BotID())
	if err != nil {
		return err
	}

	if err = b.MoveTo(cmd.Position()); err != nil {
		return err
	}

	if err = botRepo.Update(ctx, b); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
