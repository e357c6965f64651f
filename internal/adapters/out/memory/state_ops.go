package memory

import (
	"fmt"
	"sort"
	"time"

	"fastroute/internal/core/domain/model/bot"
	"fastroute/internal/core/domain/model/grid"
	"fastroute/internal/core/domain/model/kernel"
	"fastroute/internal/core/domain/model/order"
	"fastroute/internal/core/domain/model/restaurant"
	"fastroute/internal/pkg/errs"
)

// The state operations below implement the repository semantics on a raw
// state value. Callers are responsible for locking: direct repositories
// lock per call, transactional repositories run under the transaction's
// exclusive lock.

func (s *state) addBot(b *bot.Bot) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if _, exists := s.bots[b.ID()]; exists {
		return errs.NewValueIsInvalidErrorWithCause(
			"botId is invalid", fmt.Errorf("bot %d already exists", b.ID()))
	}
	s.bots[b.ID()] = recordFromBot(b)
	return nil
}

func (s *state) updateBot(b *bot.Bot) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if _, exists := s.bots[b.ID()]; !exists {
		return errs.NewObjectNotFoundError("botId", b.ID())
	}
	s.bots[b.ID()] = recordFromBot(b)
	return nil
}

func (s *state) getBot(id bot.ID) (*bot.Bot, error) {
	r, exists := s.bots[id]
	if !exists {
		return nil, errs.NewObjectNotFoundError("botId", id)
	}
	return botFromRecord(r)
}

func (s *state) allBots() ([]*bot.Bot, error) {
	ids := make([]bot.ID, 0, len(s.bots))
	for id := range s.bots {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*bot.Bot, 0, len(ids))
	for _, id := range ids {
		b, err := botFromRecord(s.bots[id])
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func (s *state) availableBots() ([]*bot.Bot, error) {
	all, err := s.allBots()
	if err != nil {
		return nil, err
	}
	out := make([]*bot.Bot, 0, len(all))
	for _, b := range all {
		if b.Status() != bot.StatusOffline && b.CanTakeOrder() {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *state) addOrder(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	id := o.ID().String()
	if _, exists := s.orders[id]; exists {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderId is invalid", fmt.Errorf("order %s already exists", id))
	}
	s.orderSeq++
	s.orders[id] = recordFromOrder(o, s.orderSeq)
	return nil
}

func (s *state) updateOrder(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	id := o.ID().String()
	existing, exists := s.orders[id]
	if !exists {
		return errs.NewObjectNotFoundError("orderId", id)
	}
	s.orders[id] = recordFromOrder(o, existing.seq)
	return nil
}

func (s *state) getOrder(id kernel.UUID) (*order.Order, error) {
	r, exists := s.orders[id.String()]
	if !exists {
		return nil, errs.NewObjectNotFoundError("orderId", id.String())
	}
	return orderFromRecord(r)
}

func (s *state) deleteOrder(id kernel.UUID) error {
	if _, exists := s.orders[id.String()]; !exists {
		return errs.NewObjectNotFoundError("orderId", id.String())
	}
	delete(s.orders, id.String())
	return nil
}

// orderRecordsDesc returns the order records newest first.
func (s *state) orderRecordsDesc() []orderRecord {
	records := make([]orderRecord, 0, len(s.orders))
	for _, r := range s.orders {
		records = append(records, r)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].seq > records[j].seq })
	return records
}

func (s *state) allOrders(keep func(orderRecord) bool) ([]*order.Order, error) {
	records := s.orderRecordsDesc()
	out := make([]*order.Order, 0, len(records))
	for _, r := range records {
		if keep != nil && !keep(r) {
			continue
		}
		o, err := orderFromRecord(r)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

func (s *state) countOrdersByRestaurantSince(restaurantID kernel.UUID, cutoff time.Time) int {
	id := restaurantID.String()
	count := 0
	for _, r := range s.orders {
		if r.restaurantID == id && !r.createdAt.Before(cutoff) {
			count++
		}
	}
	return count
}

func (s *state) addRestaurant(r *restaurant.Restaurant) error {
	if err := r.Validate(); err != nil {
		return err
	}
	id := r.ID().String()
	if _, exists := s.restaurants[id]; exists {
		return errs.NewValueIsInvalidErrorWithCause(
			"restaurantId is invalid", fmt.Errorf("restaurant %s already exists", id))
	}
	s.restaurants[id] = recordFromRestaurant(r)
	return nil
}

func (s *state) updateRestaurant(r *restaurant.Restaurant) error {
	if err := r.Validate(); err != nil {
		return err
	}
	id := r.ID().String()
	if _, exists := s.restaurants[id]; !exists {
		return errs.NewObjectNotFoundError("restaurantId", id)
	}
	s.restaurants[id] = recordFromRestaurant(r)
	return nil
}

func (s *state) getRestaurant(id kernel.UUID) (*restaurant.Restaurant, error) {
	r, exists := s.restaurants[id.String()]
	if !exists {
		return nil, errs.NewObjectNotFoundError("restaurantId", id.String())
	}
	return restaurantFromRecord(r)
}

func (s *state) allRestaurants(keep func(restaurantRecord) bool) ([]*restaurant.Restaurant, error) {
	records := make([]restaurantRecord, 0, len(s.restaurants))
	for _, r := range s.restaurants {
		if keep != nil && !keep(r) {
			continue
		}
		records = append(records, r)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].nodeID < records[j].nodeID })

	out := make([]*restaurant.Restaurant, 0, len(records))
	for _, r := range records {
		rest, err := restaurantFromRecord(r)
		if err != nil {
			return nil, err
		}
		out = append(out, rest)
	}
	return out, nil
}

func (s *state) saveGrid(g *grid.Grid) error {
	if err := g.Validate(); err != nil {
		return err
	}
	s.gridEdges = g.BlockedEdges()
	s.hasGrid = true
	return nil
}

func (s *state) getGrid() (*grid.Grid, error) {
	if !s.hasGrid {
		return nil, errs.NewObjectNotFoundError("grid", "city grid")
	}
	return grid.NewGrid(s.gridEdges)
}
