package commands

import (
	"context"
	"fmt"

	"fastroute/internal/core/domain/model/order"
	"fastroute/internal/pkg/errs"
)

// DeleteOrderCommandHandler removes a pending order from storage.
//
// Only pending orders can be deleted; anything further along the pipeline
// must be cancelled instead so the assigned bot is released properly.
// Pending orders never hold a bot, so no fleet state changes here.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	if o.Status() != order.StatusPending {
		return errs.NewIllegalTransitionError("status",
			fmt.Sprintf("only pending orders can be deleted, order is %s", o.Status()))
	}

	if err = orderRepo.Delete(ctx, o.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
