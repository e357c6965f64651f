package queries

import (
	"context"

	"fastroute/internal/core/domain/model/order"
	"fastroute/internal/core/ports"
)

// GetOrdersQueryHandler serves filtered order listings.
type GetOrdersQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
func NewGetOrdersQueryHandler(orders ports.OrderRepository) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{orders: orders}
}

// Handle returns the requested order subset, newest first.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		aggregates []*order.Order
		err        error
	)

	switch query.Filter() {
	case FilterPending:
		aggregates, err = h.orders.GetAllInStatus(ctx, order.StatusPending)
	case FilterActive:
		aggregates, err = h.orders.GetAllActive(ctx)
	case FilterAll:
		aggregates, err = h.orders.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(aggregates))
	for _, o := range aggregates {
		responses = append(responses, orderResponseFrom(o))
	}

	return responses, nil
}
