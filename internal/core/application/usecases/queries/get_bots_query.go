package queries

import (
	"errors"

	"fastroute/internal/core/domain/model/bot"
	"fastroute/internal/core/domain/model/kernel"
	"fastroute/internal/pkg/guard"
)

var ErrGetBotsQueryIsNotConstructed = errors.New(
	"GetBotsQuery must be created via NewGetBotsQuery constructor",
)

// GetBotsQuery retrieves the fleet, optionally narrowed to bots that can
// take another order.
type GetBotsQuery struct {
	availableOnly bool

	guard guard.ConstructorGuard
}

// NewGetBotsQuery creates a query for the bot fleet.
func NewGetBotsQuery(availableOnly bool) GetBotsQuery {
	return GetBotsQuery{
		availableOnly: availableOnly,
		guard:         guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetBotsQuery) Validate() error {
	return q.guard.Validate(ErrGetBotsQueryIsNotConstructed)
}

// AvailableOnly reports whether the listing excludes full and offline bots.
func (q GetBotsQuery) AvailableOnly() bool {
	return q.availableOnly
}

// BotResponse is the read model for a single bot.
type BotResponse struct {
	ID              bot.ID
	Name            string
	Status          bot.Status
	Location        kernel.Location
	ActiveOrders    int
	TotalDeliveries int
}

func botResponseFrom(b *bot.Bot) BotResponse {
	return BotResponse{
		ID:              b.ID(),
		Name:            b.Name(),
		Status:          b.Status(),
		Location:        b.Location(),
		ActiveOrders:    b.ActiveOrders(),
		TotalDeliveries: b.TotalDeliveries(),
	}
}
