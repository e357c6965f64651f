// Package gridrepo persists the city grid with GORM. The grid itself is a
// single marker row; blocked paths hang off it so an empty edge set is
// distinguishable from a grid that was never seeded.
package gridrepo

import (
	"fastroute/internal/core/domain/model/grid"
	"fastroute/internal/core/domain/model/kernel"
)

// The application manages exactly one grid.
const gridID = 1

// GridDTO is the marker row recording that a grid has been saved.
type GridDTO struct {
	ID int `gorm:"primaryKey"`
}

// TableName overrides GORM's default naming to use "grids".
func (GridDTO) TableName() string {
	return "grids"
}

// BlockedPathDTO represents one blocked edge of the saved grid.
type BlockedPathDTO struct {
	GridID     int `gorm:"primaryKey;autoIncrement:false"`
	FromNodeID int `gorm:"primaryKey;autoIncrement:false"`
	ToNodeID   int `gorm:"primaryKey;autoIncrement:false"`
}

// TableName overrides GORM's default naming to use "blocked_paths".
func (BlockedPathDTO) TableName() string {
	return "blocked_paths"
}

func fromDomain(g *grid.Grid) []BlockedPathDTO {
	edges := g.BlockedEdges()
	dtos := make([]BlockedPathDTO, 0, len(edges))
	for _, edge := range edges {
		dtos = append(dtos, BlockedPathDTO{
			GridID:     gridID,
			FromNodeID: int(edge.A()),
			ToNodeID:   int(edge.B()),
		})
	}
	return dtos
}

func toDomain(dtos []BlockedPathDTO) (*grid.Grid, error) {
	edges := make([]grid.BlockedEdge, 0, len(dtos))
	for _, dto := range dtos {
		edge, err := grid.NewBlockedEdge(
			kernel.NodeID(dto.FromNodeID),
			kernel.NodeID(dto.ToNodeID),
		)
		if err != nil {
			return nil, err
		}
		edges = append(edges, edge)
	}
	return grid.NewGrid(edges)
}
