package memory

import (
	"context"
	"errors"
	"time"

	"fastroute/internal/core/domain/model/bot"
	"fastroute/internal/core/domain/model/grid"
	"fastroute/internal/core/domain/model/kernel"
	"fastroute/internal/core/domain/model/order"
	"fastroute/internal/core/domain/model/restaurant"
	"fastroute/internal/core/ports"
)

// Transaction lifecycle errors.
var (
	ErrTransactionAlreadyStarted = errors.New("transaction already started")
	ErrNoActiveTransaction       = errors.New("no active transaction")
)

// UnitOfWorkFactory creates memory-backed units of work for a store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory bound to the store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create returns a fresh unit of work. Each command gets its own instance.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork is a copy-on-write transaction over the store.
//
// Begin takes the store's exclusive lock and clones the state; repositories
// bound to the transaction mutate the clone. Commit swaps the clone in and
// releases the lock; Rollback drops the clone. Holding the lock for the
// whole transaction serializes writers, which is exactly the isolation the
// simulation ticks rely on, and transactions are short (no handler sleeps
// inside one).
type UnitOfWork struct {
	store  *Store
	staged *state
	active bool
	done   bool
}

// Begin starts the transaction by locking the store and cloning its state.
func (u *UnitOfWork) Begin(_ context.Context) error {
	if u.active || u.done {
		return ErrTransactionAlreadyStarted
	}

	u.store.mu.Lock()
	u.staged = u.store.state.clone()
	u.active = true
	return nil
}

// Commit publishes the staged state and releases the lock.
func (u *UnitOfWork) Commit(_ context.Context) error {
	if !u.active {
		return ErrNoActiveTransaction
	}

	u.store.state = u.staged
	u.finish()
	return nil
}

// Rollback discards the staged state and releases the lock.
// Rolling back after Commit is a no-op, so callers can defer it.
func (u *UnitOfWork) Rollback(_ context.Context) error {
	if !u.active {
		return nil
	}

	u.finish()
	return nil
}

func (u *UnitOfWork) finish() {
	u.staged = nil
	u.active = false
	u.done = true
	u.store.mu.Unlock()
}

// BotRepository returns a BotRepository bound to the transaction.
func (u *UnitOfWork) BotRepository() ports.BotRepository {
	return &txBotRepository{uow: u}
}

// OrderRepository returns an OrderRepository bound to the transaction.
func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &txOrderRepository{uow: u}
}

// RestaurantRepository returns a RestaurantRepository bound to the transaction.
func (u *UnitOfWork) RestaurantRepository() ports.RestaurantRepository {
	return &txRestaurantRepository{uow: u}
}

// GridRepository returns a GridRepository bound to the transaction.
func (u *UnitOfWork) GridRepository() ports.GridRepository {
	return &txGridRepository{uow: u}
}

func (u *UnitOfWork) txState() (*state, error) {
	if !u.active {
		return nil, ErrNoActiveTransaction
	}
	return u.staged, nil
}

type txBotRepository struct {
	uow *UnitOfWork
}

func (r *txBotRepository) Add(_ context.Context, aggregate *bot.Bot) error {
	s, err := r.uow.txState()
	if err != nil {
		return err
	}
	return s.addBot(aggregate)
}

func (r *txBotRepository) Update(_ context.Context, aggregate *bot.Bot) error {
	s, err := r.uow.txState()
	if err != nil {
		return err
	}
	return s.updateBot(aggregate)
}

func (r *txBotRepository) Get(_ context.Context, id bot.ID) (*bot.Bot, error) {
	s, err := r.uow.txState()
	if err != nil {
		return nil, err
	}
	return s.getBot(id)
}

func (r *txBotRepository) GetAll(_ context.Context) ([]*bot.Bot, error) {
	s, err := r.uow.txState()
	if err != nil {
		return nil, err
	}
	return s.allBots()
}

func (r *txBotRepository) GetAllAvailable(_ context.Context) ([]*bot.Bot, error) {
	s, err := r.uow.txState()
	if err != nil {
		return nil, err
	}
	return s.availableBots()
}

type txOrderRepository struct {
	uow *UnitOfWork
}

func (r *txOrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	s, err := r.uow.txState()
	if err != nil {
		return err
	}
	return s.addOrder(aggregate)
}

func (r *txOrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	s, err := r.uow.txState()
	if err != nil {
		return err
	}
	return s.updateOrder(aggregate)
}

func (r *txOrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	s, err := r.uow.txState()
	if err != nil {
		return nil, err
	}
	return s.getOrder(id)
}

func (r *txOrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	s, err := r.uow.txState()
	if err != nil {
		return nil, err
	}
	return s.allOrders(nil)
}

func (r *txOrderRepository) GetAllInStatus(_ context.Context, status order.Status) ([]*order.Order, error) {
	s, err := r.uow.txState()
	if err != nil {
		return nil, err
	}
	return s.allOrders(func(rec orderRecord) bool {
		return rec.status == status
	})
}

func (r *txOrderRepository) GetAllActive(_ context.Context) ([]*order.Order, error) {
	s, err := r.uow.txState()
	if err != nil {
		return nil, err
	}
	return s.allOrders(func(rec orderRecord) bool {
		return rec.status.IsActive()
	})
}

func (r *txOrderRepository) CountByRestaurantSince(_ context.Context, restaurantID kernel.UUID, cutoff time.Time) (int, error) {
	s, err := r.uow.txState()
	if err != nil {
		return 0, err
	}
	return s.countOrdersByRestaurantSince(restaurantID, cutoff), nil
}

func (r *txOrderRepository) Delete(_ context.Context, id kernel.UUID) error {
	s, err := r.uow.txState()
	if err != nil {
		return err
	}
	return s.deleteOrder(id)
}

type txRestaurantRepository struct {
	uow *UnitOfWork
}

func (r *txRestaurantRepository) Add(_ context.Context, aggregate *restaurant.Restaurant) error {
	s, err := r.uow.txState()
	if err != nil {
		return err
	}
	return s.addRestaurant(aggregate)
}

func (r *txRestaurantRepository) Update(_ context.Context, aggregate *restaurant.Restaurant) error {
	s, err := r.uow.txState()
	if err != nil {
		return err
	}
	return s.updateRestaurant(aggregate)
}

func (r *txRestaurantRepository) Get(_ context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	s, err := r.uow.txState()
	if err != nil {
		return nil, err
	}
	return s.getRestaurant(id)
}

func (r *txRestaurantRepository) GetAll(_ context.Context) ([]*restaurant.Restaurant, error) {
	s, err := r.uow.txState()
	if err != nil {
		return nil, err
	}
	return s.allRestaurants(nil)
}

func (r *txRestaurantRepository) GetAllByType(_ context.Context, kind restaurant.Type) ([]*restaurant.Restaurant, error) {
	s, err := r.uow.txState()
	if err != nil {
		return nil, err
	}
	return s.allRestaurants(func(rec restaurantRecord) bool {
		return rec.kind == kind
	})
}

type txGridRepository struct {
	uow *UnitOfWork
}

func (r *txGridRepository) Save(_ context.Context, aggregate *grid.Grid) error {
	s, err := r.uow.txState()
	if err != nil {
		return err
	}
	return s.saveGrid(aggregate)
}

func (r *txGridRepository) Get(_ context.Context) (*grid.Grid, error) {
	s, err := r.uow.txState()
	if err != nil {
		return nil, err
	}
	return s.getGrid()
}
