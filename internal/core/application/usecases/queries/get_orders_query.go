package queries

import (
	"errors"
	"time"

	"fastroute/internal/core/domain/model/bot"
	"fastroute/internal/core/domain/model/kernel"
	"fastroute/internal/core/domain/model/order"
	"fastroute/internal/pkg/errs"
	"fastroute/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// OrderFilter selects which subset of orders a listing returns.
type OrderFilter int

const (
	// FilterAll returns every order regardless of status.
	FilterAll OrderFilter = iota
	// FilterPending returns orders waiting for a bot.
	FilterPending
	// FilterActive returns assigned orders that are still in flight.
	FilterActive
)

// GetOrdersQuery retrieves a filtered list of orders, newest first.
type GetOrdersQuery struct {
	filter OrderFilter

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for a filtered order listing.
func NewGetOrdersQuery(filter OrderFilter) (GetOrdersQuery, error) {
	if filter < FilterAll || filter > FilterActive {
		return GetOrdersQuery{}, errs.NewValueIsInvalidError("filter")
	}

	return GetOrdersQuery{
		filter: filter,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Filter returns the requested order subset.
func (q GetOrdersQuery) Filter() OrderFilter {
	return q.filter
}

// OrderResponse is the read model for a single order.
type OrderResponse struct {
	ID              kernel.UUID
	CustomerName    string
	CustomerAddress string
	PickupNodeID    kernel.NodeID
	DeliveryNodeID  kernel.NodeID
	RestaurantID    kernel.UUID
	BotID           *bot.ID
	Status          order.Status
	EstimatedTime   *int
	RouteDistance   *int
	CreatedAt       time.Time
	AssignedAt      *time.Time
	DeliveredAt     *time.Time
}

func orderResponseFrom(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:              o.ID(),
		CustomerName:    o.CustomerName(),
		CustomerAddress: o.CustomerAddress(),
		PickupNodeID:    o.PickupNodeID(),
		DeliveryNodeID:  o.DeliveryNodeID(),
		RestaurantID:    o.RestaurantID(),
		BotID:           o.BotID(),
		Status:          o.Status(),
		EstimatedTime:   o.EstimatedTime(),
		RouteDistance:   o.RouteDistance(),
		CreatedAt:       o.CreatedAt(),
		AssignedAt:      o.AssignedAt(),
		DeliveredAt:     o.DeliveredAt(),
	}
}
