package memory

import (
	"context"
	"time"

	"fastroute/internal/core/domain/model/bot"
	"fastroute/internal/core/domain/model/grid"
	"fastroute/internal/core/domain/model/kernel"
	"fastroute/internal/core/domain/model/order"
	"fastroute/internal/core/domain/model/restaurant"
	"fastroute/internal/core/ports"
)

// Direct repositories lock the store per call. They give auto-commit
// semantics and are what query handlers use; command handlers go through
// the unit of work instead.

// BotRepository returns a ports.BotRepository backed by the store.
func (s *Store) BotRepository() ports.BotRepository {
	return &botRepository{store: s}
}

// OrderRepository returns a ports.OrderRepository backed by the store.
func (s *Store) OrderRepository() ports.OrderRepository {
	return &orderRepository{store: s}
}

// RestaurantRepository returns a ports.RestaurantRepository backed by the store.
func (s *Store) RestaurantRepository() ports.RestaurantRepository {
	return &restaurantRepository{store: s}
}

// GridRepository returns a ports.GridRepository backed by the store.
func (s *Store) GridRepository() ports.GridRepository {
	return &gridRepository{store: s}
}

type botRepository struct {
	store *Store
}

func (r *botRepository) Add(_ context.Context, aggregate *bot.Bot) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.state.addBot(aggregate)
}

func (r *botRepository) Update(_ context.Context, aggregate *bot.Bot) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.state.updateBot(aggregate)
}

func (r *botRepository) Get(_ context.Context, id bot.ID) (*bot.Bot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.state.getBot(id)
}

func (r *botRepository) GetAll(_ context.Context) ([]*bot.Bot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.state.allBots()
}

func (r *botRepository) GetAllAvailable(_ context.Context) ([]*bot.Bot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.state.availableBots()
}

type orderRepository struct {
	store *Store
}

func (r *orderRepository) Add(_ context.Context, aggregate *order.Order) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.state.addOrder(aggregate)
}

func (r *orderRepository) Update(_ context.Context, aggregate *order.Order) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.state.updateOrder(aggregate)
}

func (r *orderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.state.getOrder(id)
}

func (r *orderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.state.allOrders(nil)
}

func (r *orderRepository) GetAllInStatus(_ context.Context, status order.Status) ([]*order.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.state.allOrders(func(rec orderRecord) bool {
		return rec.status == status
	})
}

func (r *orderRepository) GetAllActive(_ context.Context) ([]*order.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.state.allOrders(func(rec orderRecord) bool {
		return rec.status.IsActive()
	})
}

func (r *orderRepository) CountByRestaurantSince(_ context.Context, restaurantID kernel.UUID, cutoff time.Time) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.state.countOrdersByRestaurantSince(restaurantID, cutoff), nil
}

func (r *orderRepository) Delete(_ context.Context, id kernel.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.state.deleteOrder(id)
}

type restaurantRepository struct {
	store *Store
}

func (r *restaurantRepository) Add(_ context.Context, aggregate *restaurant.Restaurant) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.state.addRestaurant(aggregate)
}

func (r *restaurantRepository) Update(_ context.Context, aggregate *restaurant.Restaurant) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.state.updateRestaurant(aggregate)
}

func (r *restaurantRepository) Get(_ context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.state.getRestaurant(id)
}

func (r *restaurantRepository) GetAll(_ context.Context) ([]*restaurant.Restaurant, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.state.allRestaurants(nil)
}

func (r *restaurantRepository) GetAllByType(_ context.Context, kind restaurant.Type) ([]*restaurant.Restaurant, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.state.allRestaurants(func(rec restaurantRecord) bool {
		return rec.kind == kind
	})
}

type gridRepository struct {
	store *Store
}

func (r *gridRepository) Save(_ context.Context, aggregate *grid.Grid) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.state.saveGrid(aggregate)
}

func (r *gridRepository) Get(_ context.Context) (*grid.Grid, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.state.getGrid()
}
