// Package restaurantrepo persists restaurant aggregates with GORM.
package restaurantrepo

import (
	"github.com/google/uuid"

	"fastroute/internal/core/domain/model/kernel"
	"fastroute/internal/core/domain/model/restaurant"
)

// RestaurantDTO represents the database structure for persisting restaurants.
type RestaurantDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"type:varchar(255);not null"`
	Type     string    `gorm:"type:varchar(32);not null;index"`
	NodeID   int       `gorm:"type:int;not null"`
	IsActive bool      `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "restaurants".
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

func fromDomain(r *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:       r.ID().Bytes(),
		Name:     r.Name(),
		Type:     r.Type().String(),
		NodeID:   int(r.NodeID()),
		IsActive: r.IsActive(),
	}
}

func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	kind, err := restaurant.ParseType(dto.Type)
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreRestaurant(
		id,
		dto.Name,
		kind,
		kernel.NodeID(dto.NodeID),
		dto.IsActive,
	)
}
