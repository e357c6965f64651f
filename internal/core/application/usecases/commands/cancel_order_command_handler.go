package commands

import (
	"context"
)

// CancelOrderCommandHandler cancels an order and releases its bot.
//
// Cancellation is allowed from any non-terminal status. The released bot
// keeps its other orders; its load just drops by one, and it becomes
// available again when the load reaches zero.
type CancelOrderCommandHandler struct {
	uowFactory OrderBotUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderBotUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	botID := o.BotID()

	if err = o.Cancel(); err != nil {
		return err
	}

	if botID != nil {
		botRepo := uow.BotRepository()
		b, err := botRepo.Get(ctx, *botID)
		if err != nil {
			return err
		}
		if err = b.ReleaseOrder(); err != nil {
			return err
		}
		if err = botRepo.Update(ctx, b); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
