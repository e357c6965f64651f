package postgres

import (
	"gorm.io/gorm"

	"fastroute/internal/adapters/out/postgres/botrepo"
	"fastroute/internal/adapters/out/postgres/gridrepo"
	"fastroute/internal/adapters/out/postgres/orderrepo"
	"fastroute/internal/adapters/out/postgres/restaurantrepo"
	"fastroute/internal/core/ports"
)

// ReadRepositories bundles repositories bound to the raw connection for
// the query side. Reads run in autocommit mode and track nothing.
type ReadRepositories struct {
	Orders      ports.OrderRepository
	Bots        ports.BotRepository
	Restaurants ports.RestaurantRepository
	Grids       ports.GridRepository
}

// NewReadRepositories creates the query-side repository set.
func NewReadRepositories(db *gorm.DB) ReadRepositories {
	tracker := nopTracker{}
	return ReadRepositories{
		Orders:      orderrepo.NewGormOrderRepository(db, tracker),
		Bots:        botrepo.NewGormBotRepository(db, tracker),
		Restaurants: restaurantrepo.NewGormRestaurantRepository(db, tracker),
		Grids:       gridrepo.NewGormGridRepository(db),
	}
}
