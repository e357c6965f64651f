package commands

import (
	"context"
	"fmt"
	"time"

	"fastroute/internal/core/domain/model/order"
	"fastroute/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler moves an order along its lifecycle and
// keeps the assigned bot's load in sync with terminal transitions.
//
// Delivering an order via this handler counts a delivery on the bot;
// cancelling releases the bot without counting one. The pending and
// assigned statuses cannot be targeted here: orders are born pending and
// only the dispatcher assigns bots.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderBotUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status updates.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderBotUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update command.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	switch cmd.Status() {
	case order.StatusPickingUp:
		err = o.StartPickup()
	case order.StatusPickedUp:
		err = o.PickUp()
	case order.StatusDelivering:
		err = o.StartDelivery()
	case order.StatusDelivered:
		err = o.Deliver(time.Now().UTC())
	case order.StatusCancelled:
		err = o.Cancel()
	default:
		err = errs.NewIllegalTransitionError("status",
			fmt.Sprintf("status %s cannot be set directly", cmd.Status()))
	}
	if err != nil {
		return err
	}

	if botID != nil && (cmd.Status() == order.StatusDelivered || cmd.Status() == order.StatusCancelled) {
		botRepo := uow.BotRepository()
		b, err := botRepo.Get(ctx, *botID)
		if err != nil {
			return err
		}

		if cmd.Status() == order.StatusDelivered {
			err = b.CompleteDelivery()
		} else {
			err = b.ReleaseOrder()
		}
		if err != nil {
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
