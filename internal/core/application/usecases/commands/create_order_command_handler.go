package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fastroute/internal/core/domain/model/order"
	"fastroute/internal/core/domain/services"
	"fastroute/internal/pkg/errs"
)

const (
	// RestaurantOrderLimit is the maximum number of orders a single
	// restaurant accepts within RestaurantOrderWindow.
	RestaurantOrderLimit = 3
	// RestaurantOrderWindow is the sliding window of the per-restaurant
	// rate limit.
	RestaurantOrderWindow = 30 * time.Second
)

// CreateOrderResult reports the outcome of a successful order creation.
// AssignedBotName is nil when every bot was at capacity and the order
// stayed pending.
type CreateOrderResult struct {
	OrderID         string
	CustomerAddress string
	AssignedBotName *string
}

// CreateOrderCommandHandler handles the business logic for order creation.
//
// The workflow: verify the restaurant exists and is active, enforce the
// per-restaurant rate limit over a sliding window, persist the order in
// pending status, then try to dispatch it to the least loaded bot. Dispatch
// is best effort; a fully loaded fleet is not an error.
type CreateOrderCommandHandler struct {
	uowFactory DispatchUoWFactory
	dispatcher services.BotDispatcher
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory DispatchUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewBotDispatcher(),
	}
}

// Handle processes the order creation command.
// The whole workflow runs in one transaction so the rate limit count, the
// order insert, and the bot assignment are observed atomically.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rest, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return CreateOrderResult{}, err
	}
	if !rest.IsActive() {
		return CreateOrderResult{}, errs.NewValueIsInvalidErrorWithCause(
			"restaurantId is invalid",
			fmt.Errorf("restaurant %s is not accepting orders", rest.Name()),
		)
	}

	orderRepo := uow.OrderRepository()
	recent, err := orderRepo.CountByRestaurantSince(ctx, rest.ID(), now.Add(-RestaurantOrderWindow))
	if err != nil {
		return CreateOrderResult{}, err
	}
	if recent >= RestaurantOrderLimit {
		return CreateOrderResult{}, errs.NewRateLimitExceededError(
			"restaurant", RestaurantOrderLimit, RestaurantOrderWindow)
	}

	deliveryNodeID, err := cmd.Delivery().NodeID()
	if err != nil {
		return CreateOrderResult{}, err
	}

	address := FormatAddress(cmd.Delivery(), cmd.CustomerAddress())

	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.CustomerName(), address,
		rest.NodeID(), deliveryNodeID, rest.ID(), now)
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return CreateOrderResult{}, err
	}

	result := CreateOrderResult{
		OrderID:         newOrder.ID().String(),
		CustomerAddress: address,
	}

	botRepo := uow.BotRepository()
	fleet, err := botRepo.GetAll(ctx)
	if err != nil {
		return CreateOrderResult{}, err
	}

	assigned, err := h.dispatcher.Dispatch(newOrder, fleet, now)
	switch {
	case errors.Is(err, services.ErrBotNotFound):
		// Fleet at capacity: the order stays pending.
	case err != nil:
		return CreateOrderResult{}, err
	default:
		if err = orderRepo.Update(ctx, newOrder); err != nil {
			return CreateOrderResult{}, err
		}
		if err = botRepo.Update(ctx, assigned); err != nil {
			return CreateOrderResult{}, err
		}
		name := assigned.Name()
		result.AssignedBotName = &name
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return result, nil
}
