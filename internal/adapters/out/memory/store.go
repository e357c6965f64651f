// Package memory implements the outbound persistence ports on top of an
// in-process store. It is the default adapter: the whole fleet state fits
// in a few maps, and a single RWMutex gives the snapshot and transaction
// guarantees the engine needs without an external database.
//
// Aggregates are never stored directly. Every write flattens the aggregate
// into a plain record and every read rebuilds it through the domain Restore
// constructors, so repository callers can never alias each other's state.
package memory

import (
	"sync"
	"time"

	"fastroute/internal/core/domain/model/bot"
	"fastroute/internal/core/domain/model/grid"
	"fastroute/internal/core/domain/model/kernel"
	"fastroute/internal/core/domain/model/order"
	"fastroute/internal/core/domain/model/restaurant"
)

type botRecord struct {
	id              bot.ID
	name            string
	status          bot.Status
	x, y            kernel.Coordinate
	activeOrders    int
	totalDeliveries int
}

type orderRecord struct {
	id              string
	customerName    string
	customerAddress string
	pickupNodeID    kernel.NodeID
	deliveryNodeID  kernel.NodeID
	restaurantID    string
	botID           *bot.ID
	status          order.Status
	estimatedTime   *int
	routeDistance   *int
	createdAt       time.Time
	assignedAt      *time.Time
	deliveredAt     *time.Time
	seq             uint64
}

type restaurantRecord struct {
	id       string
	name     string
	kind     restaurant.Type
	nodeID   kernel.NodeID
	isActive bool
}

// state is the full mutable content of the store. Transactions copy it,
// mutate the copy, and swap it back on commit.
type state struct {
	bots        map[bot.ID]botRecord
	orders      map[string]orderRecord
	restaurants map[string]restaurantRecord
	gridEdges   []grid.BlockedEdge
	hasGrid     bool
	orderSeq    uint64
}

func newState() *state {
	return &state{
		bots:        make(map[bot.ID]botRecord),
		orders:      make(map[string]orderRecord),
		restaurants: make(map[string]restaurantRecord),
	}
}

// clone makes a deep copy of the state. Records are plain values, so
// copying the maps is enough; pointer fields are re-pointed to fresh copies.
func (s *state) clone() *state {
	c := &state{
		bots:        make(map[bot.ID]botRecord, len(s.bots)),
		orders:      make(map[string]orderRecord, len(s.orders)),
		restaurants: make(map[string]restaurantRecord, len(s.restaurants)),
		gridEdges:   append([]grid.BlockedEdge(nil), s.gridEdges...),
		hasGrid:     s.hasGrid,
		orderSeq:    s.orderSeq,
	}
	for id, r := range s.bots {
		c.bots[id] = r
	}
	for id, r := range s.orders {
		c.orders[id] = cloneOrderRecord(r)
	}
	for id, r := range s.restaurants {
		c.restaurants[id] = r
	}
	return c
}

func cloneOrderRecord(r orderRecord) orderRecord {
	if r.botID != nil {
		id := *r.botID
		r.botID = &id
	}
	if r.estimatedTime != nil {
		v := *r.estimatedTime
		r.estimatedTime = &v
	}
	if r.routeDistance != nil {
		v := *r.routeDistance
		r.routeDistance = &v
	}
	if r.assignedAt != nil {
		t := *r.assignedAt
		r.assignedAt = &t
	}
	if r.deliveredAt != nil {
		t := *r.deliveredAt
		r.deliveredAt = &t
	}
	return r
}

// Store holds the fleet state behind a single RWMutex.
// Direct repository calls lock per operation; transactions created via
// NewUnitOfWork hold the write lock from Begin to Commit/Rollback.
type Store struct {
	mu    sync.RWMutex
	state *state
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		state: newState(),
	}
}

func recordFromBot(b *bot.Bot) botRecord {
	return botRecord{
		id:              b.ID(),
		name:            b.Name(),
		status:          b.Status(),
		x:               b.Location().X(),
		y:               b.Location().Y(),
		activeOrders:    b.ActiveOrders(),
		totalDeliveries: b.TotalDeliveries(),
	}
}

func botFromRecord(r botRecord) (*bot.Bot, error) {
	location, err := kernel.NewLocation(r.x, r.y)
	if err != nil {
		return nil, err
	}
	return bot.RestoreBot(r.id, r.name, r.status, location, r.activeOrders, r.totalDeliveries)
}

func recordFromOrder(o *order.Order, seq uint64) orderRecord {
	return orderRecord{
		id:              o.ID().String(),
		customerName:    o.CustomerName(),
		customerAddress: o.CustomerAddress(),
		pickupNodeID:    o.PickupNodeID(),
		deliveryNodeID:  o.DeliveryNodeID(),
		restaurantID:    o.RestaurantID().String(),
		botID:           o.BotID(),
		status:          o.Status(),
		estimatedTime:   o.EstimatedTime(),
		routeDistance:   o.RouteDistance(),
		createdAt:       o.CreatedAt(),
		assignedAt:      o.AssignedAt(),
		deliveredAt:     o.DeliveredAt(),
		seq:             seq,
	}
}

func orderFromRecord(r orderRecord) (*order.Order, error) {
	id, err := kernel.UUIDFromString(r.id)
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromString(r.restaurantID)
	if err != nil {
		return nil, err
	}
	return order.RestoreOrder(
		id, r.customerName, r.customerAddress,
		r.pickupNodeID, r.deliveryNodeID, restaurantID,
		r.botID, r.status, r.estimatedTime, r.routeDistance,
		r.createdAt, r.assignedAt, r.deliveredAt)
}

func recordFromRestaurant(r *restaurant.Restaurant) restaurantRecord {
	return restaurantRecord{
		id:       r.ID().String(),
		name:     r.Name(),
		kind:     r.Type(),
		nodeID:   r.NodeID(),
		isActive: r.IsActive(),
	}
}

func restaurantFromRecord(r restaurantRecord) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromString(r.id)
	if err != nil {
		return nil, err
	}
	return restaurant.RestoreRestaurant(id, r.name, r.kind, r.nodeID, r.isActive)
}
