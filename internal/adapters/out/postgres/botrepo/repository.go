package botrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fastroute/internal/core/domain/model/bot"
	"fastroute/internal/pkg/errs"
)

// aggregateTracker registers aggregates modified within the enclosing unit
// of work.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// GormBotRepository implements ports.BotRepository using GORM.
type GormBotRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormBotRepository creates a new GORM bot repository.
func NewGormBotRepository(db *gorm.DB, tracker aggregateTracker) *GormBotRepository {
	return &GormBotRepository{db: db, tracker: tracker}
}

// Add saves a new bot to the database.
func (r *GormBotRepository) Add(ctx context.Context, aggregate *bot.Bot) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing bot to the database.
func (r *GormBotRepository) Update(ctx context.Context, aggregate *bot.Bot) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("bot", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a bot by id.
func (r *GormBotRepository) Get(ctx context.Context, id bot.ID) (*bot.Bot, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BotDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", int(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("bot", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves the whole fleet ordered by id.
func (r *GormBotRepository) GetAll(ctx context.Context) ([]*bot.Bot, error) {
	var dtos []BotDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllAvailable retrieves bots that can take another order: not offline
// and under the per-bot load cap.
func (r *GormBotRepository) GetAllAvailable(ctx context.Context) ([]*bot.Bot, error) {
	var dtos []BotDTO
	if err := r.db.WithContext(ctx).
		Where("status <> ?", bot.StatusOffline.String()).
		Where("active_orders < ?", bot.MaxActiveOrders).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []BotDTO) ([]*bot.Bot, error) {
	bots := make([]*bot.Bot, 0, len(dtos))
	for _, dto := range dtos {
		b, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		bots = append(bots, b)
	}
	return bots, nil
}
