package http

import (
	"time"

	"fastroute/internal/core/application/usecases/queries"
)

// Wire representations. Field names follow the snake_case contract the
// frontend already speaks; the query read models stay transport-agnostic.

// MessageResponse is the generic acknowledgement body for mutations.
type MessageResponse struct {
	Message string `json:"message"`
}

// OrderJSON is the wire form of a single order.
type OrderJSON struct {
	ID              string     `json:"id"`
	CustomerName    string     `json:"customer_name"`
	CustomerAddress string     `json:"customer_address"`
	PickupNodeID    int        `json:"pickup_node_id"`
	DeliveryNodeID  int        `json:"delivery_node_id"`
	RestaurantID    string     `json:"restaurant_id"`
	BotID           *int       `json:"bot_id"`
	Status          string     `json:"status"`
	EstimatedTime   *int       `json:"estimated_time"`
	RouteDistance   *int       `json:"route_distance"`
	CreatedAt       time.Time  `json:"created_at"`
	AssignedAt      *time.Time `json:"assigned_at"`
	DeliveredAt     *time.Time `json:"delivered_at"`
}

func orderJSONFrom(o queries.OrderResponse) OrderJSON {
	var botID *int
	if o.BotID != nil {
		id := int(*o.BotID)
		botID = &id
	}

	return OrderJSON{
		ID:              o.ID.String(),
		CustomerName:    o.CustomerName,
		CustomerAddress: o.CustomerAddress,
		PickupNodeID:    int(o.PickupNodeID),
		DeliveryNodeID:  int(o.DeliveryNodeID),
		RestaurantID:    o.RestaurantID.String(),
		BotID:           botID,
		Status:          o.Status.String(),
		EstimatedTime:   o.EstimatedTime,
		RouteDistance:   o.RouteDistance,
		CreatedAt:       o.CreatedAt,
		AssignedAt:      o.AssignedAt,
		DeliveredAt:     o.DeliveredAt,
	}
}

func orderListJSONFrom(orders []queries.OrderResponse) []OrderJSON {
	result := make([]OrderJSON, len(orders))
	for i, o := range orders {
		result[i] = orderJSONFrom(o)
	}
	return result
}

// BotJSON is the wire form of a single bot.
type BotJSON struct {
	ID                 int    `json:"id"`
	Name               string `json:"name"`
	Status             string `json:"status"`
	CurrentX           int    `json:"current_x"`
	CurrentY           int    `json:"current_y"`
	CurrentOrdersCount int    `json:"current_orders_count"`
	TotalDeliveries    int    `json:"total_deliveries"`
}

func botJSONFrom(b queries.BotResponse) BotJSON {
	return BotJSON{
		ID:                 int(b.ID),
		Name:               b.Name,
		Status:             b.Status.String(),
		CurrentX:           int(b.Location.X()),
		CurrentY:           int(b.Location.Y()),
		CurrentOrdersCount: b.ActiveOrders,
		TotalDeliveries:    b.TotalDeliveries,
	}
}

func botListJSONFrom(bots []queries.BotResponse) []BotJSON {
	result := make([]BotJSON, len(bots))
	for i, b := range bots {
		result[i] = botJSONFrom(b)
	}
	return result
}

// RestaurantJSON is the wire form of a single restaurant.
type RestaurantJSON struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	RestaurantType string `json:"restaurant_type"`
	NodeID         int    `json:"node_id"`
	X              int    `json:"x"`
	Y              int    `json:"y"`
	IsActive       bool   `json:"is_active"`
}

func restaurantJSONFrom(r queries.RestaurantResponse) RestaurantJSON {
	return RestaurantJSON{
		ID:             r.ID.String(),
		Name:           r.Name,
		RestaurantType: r.Type.String(),
		NodeID:         int(r.NodeID),
		X:              int(r.Location.X()),
		Y:              int(r.Location.Y()),
		IsActive:       r.IsActive,
	}
}

func restaurantListJSONFrom(restaurants []queries.RestaurantResponse) []RestaurantJSON {
	result := make([]RestaurantJSON, len(restaurants))
	for i, r := range restaurants {
		result[i] = restaurantJSONFrom(r)
	}
	return result
}

// NodeJSON is the wire form of one grid node.
type NodeJSON struct {
	ID              int     `json:"id"`
	X               int     `json:"x"`
	Y               int     `json:"y"`
	IsDeliveryPoint bool    `json:"is_delivery_point"`
	IsRestaurant    bool    `json:"is_restaurant"`
	RestaurantType  *string `json:"restaurant_type"`
}

func nodeJSONFrom(n queries.NodeResponse) NodeJSON {
	var restaurantType *string
	if n.RestaurantType != nil {
		t := n.RestaurantType.String()
		restaurantType = &t
	}

	return NodeJSON{
		ID:              int(n.ID),
		X:               int(n.X),
		Y:               int(n.Y),
		IsDeliveryPoint: n.IsDeliveryPoint,
		IsRestaurant:    n.IsRestaurant,
		RestaurantType:  restaurantType,
	}
}

// BlockedPathJSON is the wire form of one blocked edge.
type BlockedPathJSON struct {
	FromID int `json:"from_id"`
	ToID   int `json:"to_id"`
}

// MapDataJSON aggregates everything the map view needs in one payload.
type MapDataJSON struct {
	GridSize     int               `json:"grid_size"`
	Nodes        []NodeJSON        `json:"nodes"`
	BlockedPaths []BlockedPathJSON `json:"blocked_paths"`
	Restaurants  []RestaurantJSON  `json:"restaurants"`
	Bots         []BotJSON         `json:"bots"`
}

func mapDataJSONFrom(data queries.MapDataResponse) MapDataJSON {
	nodes := make([]NodeJSON, len(data.Nodes))
	for i, n := range data.Nodes {
		nodes[i] = nodeJSONFrom(n)
	}

	blocked := make([]BlockedPathJSON, len(data.BlockedPaths))
	for i, b := range data.BlockedPaths {
		blocked[i] = BlockedPathJSON{FromID: int(b.FromID), ToID: int(b.ToID)}
	}

	return MapDataJSON{
		GridSize:     data.GridSize,
		Nodes:        nodes,
		BlockedPaths: blocked,
		Restaurants:  restaurantListJSONFrom(data.Restaurants),
		Bots:         botListJSONFrom(data.Bots),
	}
}

// StatsJSON carries the dashboard counters.
type StatsJSON struct {
	TotalOrders         int `json:"total_orders"`
	PendingOrders       int `json:"pending_orders"`
	ActiveDeliveries    int `json:"active_deliveries"`
	CompletedDeliveries int `json:"completed_deliveries"`
	AvailableBots       int `json:"available_bots"`
	BusyBots            int `json:"busy_bots"`
}

// RoutePointJSON is one cell on a calculated path.
type RoutePointJSON struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// RouteJSON is the wire form of a calculated route.
type RouteJSON struct {
	Path          []RoutePointJSON `json:"path"`
	Distance      int              `json:"distance"`
	EstimatedTime int              `json:"estimated_time"`
}

func routeJSONFrom(route queries.CalculateRouteResponse) RouteJSON {
	path := make([]RoutePointJSON, len(route.Path))
	for i, p := range route.Path {
		path[i] = RoutePointJSON{X: int(p.X), Y: int(p.Y)}
	}

	return RouteJSON{
		Path:          path,
		Distance:      route.Distance,
		EstimatedTime: route.EstimatedTime,
	}
}
