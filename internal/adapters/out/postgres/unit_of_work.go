// Package postgres implements the outbound persistence ports on PostgreSQL
// through GORM. Each aggregate has its own repository package; the unit of
// work wraps them in a database transaction and tracks the aggregates a
// business operation touched.
package postgres

import (
	"context"

	"gorm.io/gorm"

	"fastroute/internal/adapters/out/postgres/botrepo"
	"fastroute/internal/adapters/out/postgres/gridrepo"
	"fastroute/internal/adapters/out/postgres/orderrepo"
	"fastroute/internal/adapters/out/postgres/restaurantrepo"
	"fastroute/internal/core/ports"
)

// trackedAggregate records one aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        any
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based units of work.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a fresh UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction across the aggregate
// repositories. Repositories obtained before Begin run against the bare
// connection; after Begin they run inside the transaction.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	committed         bool
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling Begin again on an instance with a
// live transaction is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	uow.committed = false
	return nil
}

// Commit finalizes the transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	uow.committed = err == nil
	return err
}

// Rollback discards the transaction. Rolling back after a successful commit
// is a no-op, so callers can defer it unconditionally.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		if uow.committed {
			return nil
		}
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// BotRepository returns a bot repository bound to the current transaction.
func (uow *GormUnitOfWork) BotRepository() ports.BotRepository {
	return botrepo.NewGormBotRepository(uow.conn(), uow)
}

// OrderRepository returns an order repository bound to the current transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// RestaurantRepository returns a restaurant repository bound to the current
// transaction.
func (uow *GormUnitOfWork) RestaurantRepository() ports.RestaurantRepository {
	return restaurantrepo.NewGormRestaurantRepository(uow.conn(), uow)
}

// GridRepository returns a grid repository bound to the current transaction.
func (uow *GormUnitOfWork) GridRepository() ports.GridRepository {
	return gridrepo.NewGormGridRepository(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Called by the repositories on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id any, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
