package commands

import (
	"context"
)

// UpdateBotStatusCommandHandler changes a bot's operational status.
type UpdateBotStatusCommandHandler struct {
	uowFactory BotUoWFactory
}

// NewUpdateBotStatusCommandHandler creates a handler for bot status changes.
func NewUpdateBotStatusCommandHandler(uowFactory BotUoWFactory) UpdateBotStatusCommandHandler {
	return UpdateBotStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
func (h *UpdateBotStatusCommandHandler) Handle(ctx context.Context, cmd UpdateBotStatusCommand) error {
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

	if err = b.SetStatus(cmd.Status()); err != nil {
		return err
	}

	if err = botRepo.Update(ctx, b); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
