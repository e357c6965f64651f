package gridrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fastroute/internal/core/domain/model/grid"
	"fastroute/internal/pkg/errs"
)

// GormGridRepository implements ports.GridRepository using GORM.
type GormGridRepository struct {
	db *gorm.DB
}

// NewGormGridRepository creates a new GORM grid repository.
func NewGormGridRepository(db *gorm.DB) *GormGridRepository {
	return &GormGridRepository{db: db}
}

// Save persists the grid, replacing any previously stored edge set.
func (r *GormGridRepository) Save(ctx context.Context, aggregate *grid.Grid) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)

	marker := GridDTO{ID: gridID}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&marker).Error; err != nil {
		return err
	}

	if err := db.Where("grid_id = ?", gridID).Delete(&BlockedPathDTO{}).Error; err != nil {
		return err
	}

	dtos := fromDomain(aggregate)
	if len(dtos) == 0 {
		return nil
	}
	return db.Create(&dtos).Error
}

// Get retrieves the stored grid.
func (r *GormGridRepository) Get(ctx context.Context) (*grid.Grid, error) {
	db := r.db.WithContext(ctx)

	var marker GridDTO
	if err := db.First(&marker, "id = ?", gridID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("grid", gridID)
		}
		return nil, err
	}

	var dtos []BlockedPathDTO
	if err := db.Where("grid_id = ?", gridID).Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomain(dtos)
}
