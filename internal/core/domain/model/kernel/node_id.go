package kernel

import "fastroute/internal/pkg/errs"

// NodeID identifies a grid cell by its row-major index: id = y*GridSize + x.
// Valid ids range from 0 to NodeCount-1.
type NodeID int

// NodeCount is the total number of cells on the grid.
const NodeCount = GridSize * GridSize

// NodeID returns the row-major index of the location on the grid.
func (l Location) NodeID() (NodeID, error) {
	if err := l.Validate(); err != nil {
		return 0, err
	}

	return NodeID(int(l.y)*GridSize + int(l.x)), nil
}

// LocationFromNodeID converts a row-major node index back into a Location.
// The conversion is the exact inverse of Location.NodeID for all valid ids.
func LocationFromNodeID(id NodeID) (Location, error) {
	if id < 0 || id >= NodeCount {
		return Location{}, errs.NewValueIsOutOfRangeError("nodeId", id, 0, NodeCount-1)
	}

	return NewLocation(Coordinate(int(id)%GridSize), Coordinate(int(id)/GridSize))
}
