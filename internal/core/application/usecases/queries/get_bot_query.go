package queries

import (
	"errors"

	"fastroute/internal/core/domain/model/bot"
	"fastroute/internal/pkg/guard"
)

var ErrGetBotQueryIsNotConstructed = errors.New(
	"GetBotQuery must be created via NewGetBotQuery constructor",
)

// GetBotQuery retrieves a single bot by its identifier.
type GetBotQuery struct {
	botID bot.ID

	guard guard.ConstructorGuard
}

// NewGetBotQuery creates a query for one bot.
func NewGetBotQuery(botID bot.ID) (GetBotQuery, error) {
	if err := botID.Validate(); err != nil {
		return GetBotQuery{}, err
	}

	return GetBotQuery{
		botID: botID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBotQuery) Validate() error {
	return q.guard.Validate(ErrGetBotQueryIsNotConstructed)
}

// BotID returns the identifier of the requested bot.
func (q GetBotQuery) BotID() bot.ID {
	return q.botID
}
