package queries

import (
	"context"

	"fastroute/internal/core/domain/model/bot"
	"fastroute/internal/core/domain/model/order"
	"fastroute/internal/core/ports"
)

// GetStatsQueryHandler computes the dashboard counters from the order log
// and the fleet.
type GetStatsQueryHandler struct {
	orders ports.OrderRepository
	bots   ports.BotRepository
}

// NewGetStatsQueryHandler creates a handler for statistics queries.
func NewGetStatsQueryHandler(orders ports.OrderRepository, bots ports.BotRepository) GetStatsQueryHandler {
	return GetStatsQueryHandler{orders: orders, bots: bots}
}

// Handle counts orders by lifecycle stage and bots by status.
func (h GetStatsQueryHandler) Handle(
	ctx context.Context,
	query GetStatsQuery,
) (StatsResponse, error) {
	if err := query.Validate(); err != nil {
		return StatsResponse{}, err
	}

	allOrders, err := h.orders.GetAll(ctx)
	if err != nil {
		return StatsResponse{}, err
	}

	stats := StatsResponse{TotalOrders: len(allOrders)}
	for _, o := range allOrders {
		switch {
		case o.Status() == order.StatusPending:
			stats.PendingOrders++
		case o.Status() == order.StatusDelivered:
			stats.CompletedDeliveries++
		case o.Status().IsActive():
			stats.ActiveDeliveries++
		}
	}

	fleet, err := h.bots.GetAll(ctx)
	if err != nil {
		return StatsResponse{}, err
	}

	for _, b := range fleet {
		switch b.Status() {
		case bot.StatusAvailable:
			stats.AvailableBots++
		case bot.StatusBusy:
			stats.BusyBots++
		case bot.StatusReturning, bot.StatusOffline, bot.StatusUnknown:
		}
	}

	return stats, nil
}
