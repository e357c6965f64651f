package queries

import (
	"context"

	"fastroute/internal/core/ports"
)

// GetBotQueryHandler serves single-bot lookups.
type GetBotQueryHandler struct {
	bots ports.BotRepository
}

// NewGetBotQueryHandler creates a handler for single-bot queries.
func NewGetBotQueryHandler(bots ports.BotRepository) GetBotQueryHandler {
	return GetBotQueryHandler{bots: bots}
}

// Handle returns the bot read model or an object-not-found error.
func (h GetBotQueryHandler) Handle(
	ctx context.Context,
	query GetBotQuery,
) (BotResponse, error) {
	if err := query.Validate(); err != nil {
		return BotResponse{}, err
	}

	b, err := h.bots.Get(ctx, query.BotID())
	if err != nil {
		return BotResponse{}, err
	}

	return botResponseFrom(b), nil
}
