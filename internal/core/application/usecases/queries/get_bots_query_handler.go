package queries

import (
	"context"

	"fastroute/internal/core/ports"
)

// GetBotsQueryHandler serves fleet listings.
type GetBotsQueryHandler struct {
	bots ports.BotRepository
}

// NewGetBotsQueryHandler creates a handler for fleet listing queries.
func NewGetBotsQueryHandler(bots ports.BotRepository) GetBotsQueryHandler {
	return GetBotsQueryHandler{bots: bots}
}

// Handle returns the fleet ordered by bot id.
func (h GetBotsQueryHandler) Handle(
	ctx context.Context,
	query GetBotsQuery,
) ([]BotResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	list := h.bots.GetAll
	if query.AvailableOnly() {
		list = h.bots.GetAllAvailable
	}

	aggregates, err := list(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]BotResponse, 0, len(aggregates))
	for _, b := range aggregates {
		responses = append(responses, botResponseFrom(b))
	}

	return responses, nil
}
