package postgres

import (
	"context"

	"gorm.io/gorm"

	"fastroute/internal/adapters/out/postgres/botrepo"
	"fastroute/internal/adapters/out/postgres/orderrepo"
	"fastroute/internal/adapters/out/postgres/restaurantrepo"
	"fastroute/internal/core/ports"
)

// nopTracker satisfies the repositories' tracker dependency for read paths.
type nopTracker struct{}

func (nopTracker) TrackAggregate(any, any) {}

// GormFleetReader implements ports.FleetReader. The whole snapshot is read
// inside one transaction so the streaming layer never sees a simulation
// tick half-applied.
type GormFleetReader struct {
	db *gorm.DB
}

// NewGormFleetReader creates a fleet reader over the given connection.
func NewGormFleetReader(db *gorm.DB) *GormFleetReader {
	return &GormFleetReader{db: db}
}

// Snapshot reads bots, in-flight orders, and restaurants in one transaction.
func (r *GormFleetReader) Snapshot(ctx context.Context) (ports.FleetSnapshot, error) {
	var snapshot ports.FleetSnapshot

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		bots, err := botrepo.NewGormBotRepository(tx, nopTracker{}).GetAll(ctx)
		if err != nil {
			return err
		}

		orders, err := orderrepo.NewGormOrderRepository(tx, nopTracker{}).GetAllActive(ctx)
		if err != nil {
			return err
		}

		restaurants, err := restaurantrepo.NewGormRestaurantRepository(tx, nopTracker{}).GetAll(ctx)
		if err != nil {
			return err
		}

		snapshot = ports.FleetSnapshot{
			Bots:         bots,
			ActiveOrders: orders,
			Restaurants:  restaurants,
		}
		return nil
	})
	if err != nil {
		return ports.FleetSnapshot{}, err
	}

	return snapshot, nil
}
