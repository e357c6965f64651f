package postgres

import (
	"gorm.io/gorm"

	"fastroute/internal/adapters/out/postgres/botrepo"
	"fastroute/internal/adapters/out/postgres/gridrepo"
	"fastroute/internal/adapters/out/postgres/orderrepo"
	"fastroute/internal/adapters/out/postgres/restaurantrepo"
)

// Migrate creates or updates the schema for every aggregate table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&botrepo.BotDTO{},
		&restaurantrepo.RestaurantDTO{},
		&orderrepo.OrderDTO{},
		&gridrepo.GridDTO{},
		&gridrepo.BlockedPathDTO{},
	)
}
