package queries

import (
	"context"

	"fastroute/internal/core/domain/model/kernel"
	"fastroute/internal/core/domain/model/restaurant"
	"fastroute/internal/core/ports"
)

// GetMapDataQueryHandler composes the map view from the stored grid, the
// restaurant registry, and the fleet. Delivery-point nodes are fixed city
// data and are injected at construction.
type GetMapDataQueryHandler struct {
	grids          ports.GridRepository
	restaurants    ports.RestaurantRepository
	bots           ports.BotRepository
	deliveryPoints map[kernel.NodeID]bool
}

// NewGetMapDataQueryHandler creates a handler for map view queries.
func NewGetMapDataQueryHandler(
	grids ports.GridRepository,
	restaurants ports.RestaurantRepository,
	bots ports.BotRepository,
	deliveryPoints []kernel.NodeID,
) GetMapDataQueryHandler {
	points := make(map[kernel.NodeID]bool, len(deliveryPoints))
	for _, id := range deliveryPoints {
		points[id] = true
	}

	return GetMapDataQueryHandler{
		grids:          grids,
		restaurants:    restaurants,
		bots:           bots,
		deliveryPoints: points,
	}
}

// Handle builds the full map view.
func (h GetMapDataQueryHandler) Handle(
	ctx context.Context,
	query GetMapDataQuery,
) (MapDataResponse, error) {
	if err := query.Validate(); err != nil {
		return MapDataResponse{}, err
	}

	g, err := h.grids.Get(ctx)
	if err != nil {
		return MapDataResponse{}, err
	}

	allRestaurants, err := h.restaurants.GetAll(ctx)
	if err != nil {
		return MapDataResponse{}, err
	}

	restaurantTypes := make(map[kernel.NodeID]restaurant.Type, len(allRestaurants))
	activeRestaurants := make([]RestaurantResponse, 0, len(allRestaurants))
	for _, r := range allRestaurants {
		restaurantTypes[r.NodeID()] = r.Type()

		if !r.IsActive() {
			continue
		}
		response, respErr := restaurantResponseFrom(r)
		if respErr != nil {
			return MapDataResponse{}, respErr
		}
		activeRestaurants = append(activeRestaurants, response)
	}

	nodes := make([]NodeResponse, 0, kernel.NodeCount)
	for id := kernel.NodeID(0); id < kernel.NodeCount; id++ {
		location, locErr := kernel.LocationFromNodeID(id)
		if locErr != nil {
			return MapDataResponse{}, locErr
		}

		node := NodeResponse{
			ID:              id,
			X:               location.X(),
			Y:               location.Y(),
			IsDeliveryPoint: h.deliveryPoints[id],
		}
		if kind, ok := restaurantTypes[id]; ok {
			node.IsRestaurant = true
			node.RestaurantType = &kind
		}
		nodes = append(nodes, node)
	}

	edges := g.BlockedEdges()
	blocked := make([]BlockedPathResponse, 0, len(edges))
	for _, edge := range edges {
		blocked = append(blocked, BlockedPathResponse{FromID: edge.A(), ToID: edge.B()})
	}

	fleet, err := h.bots.GetAll(ctx)
	if err != nil {
		return MapDataResponse{}, err
	}

	botResponses := make([]BotResponse, 0, len(fleet))
	for _, b := range fleet {
		botResponses = append(botResponses, botResponseFrom(b))
	}

	return MapDataResponse{
		GridSize:     kernel.GridSize,
		Nodes:        nodes,
		BlockedPaths: blocked,
		Restaurants:  activeRestaurants,
		Bots:         botResponses,
	}, nil
}
