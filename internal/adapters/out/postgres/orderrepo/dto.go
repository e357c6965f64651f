// Package orderrepo persists order aggregates with GORM.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"fastroute/internal/core/domain/model/bot"
	"fastroute/internal/core/domain/model/kernel"
	"fastroute/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored as its lowercase token so the rows read naturally in psql.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerName    string     `gorm:"type:varchar(255);not null"`
	CustomerAddress string     `gorm:"type:varchar(255);not null"`
	PickupNodeID    int        `gorm:"type:int;not null"`
	DeliveryNodeID  int        `gorm:"type:int;not null"`
	RestaurantID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	BotID           *int       `gorm:"type:int;index"`
	Status          string     `gorm:"type:varchar(32);not null;index"`
	EstimatedTime   *int       `gorm:"type:int"`
	RouteDistance   *int       `gorm:"type:int"`
	CreatedAt       time.Time  `gorm:"not null;index"`
	AssignedAt      *time.Time `gorm:""`
	DeliveredAt     *time.Time `gorm:""`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	var botID *int
	if o.BotID() != nil {
		raw := int(*o.BotID())
		botID = &raw
	}

	return OrderDTO{
		ID:              o.ID().Bytes(),
		CustomerName:    o.CustomerName(),
		CustomerAddress: o.CustomerAddress(),
		PickupNodeID:    int(o.PickupNodeID()),
		DeliveryNodeID:  int(o.DeliveryNodeID()),
		RestaurantID:    o.RestaurantID().Bytes(),
		BotID:           botID,
		Status:          o.Status().String(),
		EstimatedTime:   o.EstimatedTime(),
		RouteDistance:   o.RouteDistance(),
		CreatedAt:       o.CreatedAt(),
		AssignedAt:      o.AssignedAt(),
		DeliveredAt:     o.DeliveredAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var botID *bot.ID
	if dto.BotID != nil {
		raw := bot.ID(*dto.BotID)
		botID = &raw
	}

	return order.RestoreOrder(
		id,
		dto.CustomerName,
		dto.CustomerAddress,
		kernel.NodeID(dto.PickupNodeID),
		kernel.NodeID(dto.DeliveryNodeID),
		restaurantID,
		botID,
		status,
		dto.EstimatedTime,
		dto.RouteDistance,
		dto.CreatedAt,
		dto.AssignedAt,
		dto.DeliveredAt,
	)
}
