package ports

import (
	"context"

	"fastroute/internal/core/domain/model/bot"
)

// BotRepository defines the persistence contract for bot aggregates.
// The fleet is small and fixed, so listing operations return the full set.
type BotRepository interface {
	// Add persists a new bot aggregate to storage.
	Add(ctx context.Context, aggregate *bot.Bot) error

	// Update persists changes to an existing bot aggregate.
	Update(ctx context.Context, aggregate *bot.Bot) error

	// Get retrieves a bot aggregate by its identifier.
	Get(ctx context.Context, id bot.ID) (*bot.Bot, error)

	// GetAll retrieves the whole fleet ordered by bot id.
	GetAll(ctx context.Context) ([]*bot.Bot, error)

	// GetAllAvailable retrieves bots that are not offline and are under
	// the per-bot load cap, ordered by bot id. This is the listing
	// contract only; dispatch eligibility ignores status.
	GetAllAvailable(ctx context.Context) ([]*bot.Bot, error)
}
