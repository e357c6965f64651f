package queries

import (
	"errors"

	"fastroute/internal/pkg/guard"
)

var ErrGetStatsQueryIsNotConstructed = errors.New(
	"GetStatsQuery must be created via NewGetStatsQuery constructor",
)

// GetStatsQuery retrieves aggregate counts over orders and the fleet.
type GetStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStatsQuery creates a query for system-wide statistics.
func NewGetStatsQuery() GetStatsQuery {
	return GetStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetStatsQueryIsNotConstructed)
}

// StatsResponse carries the dashboard counters.
type StatsResponse struct {
	TotalOrders         int
	PendingOrders       int
	ActiveDeliveries    int
	CompletedDeliveries int
	AvailableBots       int
	BusyBots            int
}
