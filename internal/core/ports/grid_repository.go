package ports

import (
	"context"

	"fastroute/internal/core/domain/model/grid"
)

// GridRepository defines the persistence contract for the city grid.
// The grid is effectively static: it is written once during seeding and
// read on every route calculation.
type GridRepository interface {
	// Save persists the grid, replacing any previously stored one.
	Save(ctx context.Context, aggregate *grid.Grid) error

	// Get retrieves the stored grid.
	Get(ctx context.Context) (*grid.Grid, error)
}
