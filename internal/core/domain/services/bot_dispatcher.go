package services

import (
	"errors"
	"time"

	"fastroute/internal/core/domain/model/bot"
	"fastroute/internal/core/domain/model/order"
)

// ErrBotNotFound is returned when no bot in the fleet can take the order.
// This occurs when the fleet is empty or every bot is offline or at capacity.
// Callers creating orders treat this as a soft failure: the order simply
// stays pending until a bot frees up.
var ErrBotNotFound = errors.New("bot not found")

// BotDispatcher is a domain service that assigns pending orders to the
// least loaded bot in the fleet.
//
// Selection rules:
//   - Offline bots and bots at full capacity are skipped
//   - Among the candidates, the one with the fewest active orders wins
//   - Ties are broken by the lowest bot id, keeping dispatch deterministic
//
// The dispatch is atomic over the aggregates: the order is assigned and the
// bot's load is incremented in one operation, or neither changes.
type BotDispatcher struct{}

// NewBotDispatcher creates a new BotDispatcher instance.
func NewBotDispatcher() BotDispatcher {
	return BotDispatcher{}
}

// Dispatch assigns the order to the best available bot.
//
// Returns ErrBotNotFound if no bot can take the order. The order must
// be pending; a non-pending order fails the assignment transition.
func (d BotDispatcher) Dispatch(o *order.Order, fleet []*bot.Bot, at time.Time) (*bot.Bot, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	best, err := d.findBestBot(fleet)
	if err != nil {
		return nil, err
	}

	if err := o.Assign(best.ID(), at); err != nil {
		return nil, err
	}
	if err := best.TakeOrder(); err != nil {
		return nil, err
	}

	return best, nil
}

func (d BotDispatcher) findBestBot(fleet []*bot.Bot) (*bot.Bot, error) {
	var best *bot.Bot

	for _, b := range fleet {
		if err := b.Validate(); err != nil {
			return nil, err
		}
		if !b.CanTakeOrder() {
			continue
		}

		if best == nil ||
			b.ActiveOrders() < best.ActiveOrders() ||
			(b.ActiveOrders() == best.ActiveOrders() && b.ID() < best.ID()) {
			best = b
		}
	}

	if best == nil {
		return nil, ErrBotNotFound
	}
	return best, nil
}
