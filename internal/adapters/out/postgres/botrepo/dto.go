// Package botrepo persists bot aggregates with GORM. DTOs map the aggregate
// onto the bots table; restore constructors rebuild the aggregate on read so
// invalid rows never reach the domain.
package botrepo

import (
	"fastroute/internal/core/domain/model/bot"
	"fastroute/internal/core/domain/model/kernel"
)

// BotDTO represents the database structure for persisting bot aggregates.
type BotDTO struct {
	ID              int         `gorm:"primaryKey"`
	Name            string      `gorm:"type:varchar(255);not null"`
	Status          string      `gorm:"type:varchar(32);not null;index"`
	Location        LocationDTO `gorm:"embedded;embeddedPrefix:current_"`
	ActiveOrders    int         `gorm:"type:int;not null"`
	TotalDeliveries int         `gorm:"type:int;not null"`
}

// TableName overrides GORM's default naming to use "bots".
func (BotDTO) TableName() string {
	return "bots"
}

// LocationDTO represents the embedded grid position within the bots table.
type LocationDTO struct {
	X kernel.Coordinate `gorm:"type:smallint"`
	Y kernel.Coordinate `gorm:"type:smallint"`
}

func fromDomain(b *bot.Bot) BotDTO {
	return BotDTO{
		ID:     int(b.ID()),
		Name:   b.Name(),
		Status: b.Status().String(),
		Location: LocationDTO{
			X: b.Location().X(),
			Y: b.Location().Y(),
		},
		ActiveOrders:    b.ActiveOrders(),
		TotalDeliveries: b.TotalDeliveries(),
	}
}

func toDomain(dto BotDTO) (*bot.Bot, error) {
	status, err := bot.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewLocation(dto.Location.X, dto.Location.Y)
	if err != nil {
		return nil, err
	}

	return bot.RestoreBot(
		bot.ID(dto.ID),
		dto.Name,
		status,
		location,
		dto.ActiveOrders,
		dto.TotalDeliveries,
	)
}
