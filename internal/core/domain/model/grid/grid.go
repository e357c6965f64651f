// Package grid implements the city street model the dispatch engine routes on.
// The city is a fixed 9x9 lattice of nodes connected by cardinal edges, some of
// which are blocked. The Grid aggregate owns the blocked edge set and answers
// adjacency queries for the route planner.
package grid

import (
	"errors"

	"fastroute/internal/core/domain/model/kernel"
	"fastroute/internal/pkg/errs"
	"fastroute/internal/pkg/guard"
)

// ErrGridIsNotConstructed is returned when using an improperly initialized Grid.
var ErrGridIsNotConstructed = errors.New("Grid must be created via NewGrid constructor")

// BlockedEdge marks the connection between two grid nodes as impassable.
// Blocking is symmetric: a blocked edge stops traversal in both directions
// regardless of the order the endpoints were given in. Endpoints are only
// validated for range, not adjacency, so stale city data with far-apart
// endpoints loads without error and simply never matches a traversal step.
type BlockedEdge struct {
	a kernel.NodeID
	b kernel.NodeID
}

// NewBlockedEdge creates a blocked edge between two nodes.
// Both node ids must be within the grid.
func NewBlockedEdge(a, b kernel.NodeID) (BlockedEdge, error) {
	if a < 0 || a >= kernel.NodeCount {
		return BlockedEdge{}, errs.NewValueIsOutOfRangeError("a", a, 0, kernel.NodeCount-1)
	}
	if b < 0 || b >= kernel.NodeCount {
		return BlockedEdge{}, errs.NewValueIsOutOfRangeError("b", b, 0, kernel.NodeCount-1)
	}

	return BlockedEdge{a: a, b: b}, nil
}

// A returns the first endpoint of the edge as it was recorded.
func (e BlockedEdge) A() kernel.NodeID {
	return e.a
}

// B returns the second endpoint of the edge as it was recorded.
func (e BlockedEdge) B() kernel.NodeID {
	return e.b
}

// key normalizes the endpoints so lookups match in either direction.
func (e BlockedEdge) key() [2]kernel.NodeID {
	if e.a <= e.b {
		return [2]kernel.NodeID{e.a, e.b}
	}
	return [2]kernel.NodeID{e.b, e.a}
}

// Grid is the aggregate root for the city street model.
// It is immutable after construction and safe for concurrent reads.
type Grid struct {
	edges   []BlockedEdge
	blocked map[[2]kernel.NodeID]struct{}
	guard   guard.ConstructorGuard
}

// NewGrid creates a Grid with the given blocked edges.
// Duplicate edges (in either endpoint order) are collapsed into one entry
// of the lookup set but preserved in the recorded edge list.
func NewGrid(edges []BlockedEdge) (*Grid, error) {
	g := &Grid{
		edges:   make([]BlockedEdge, 0, len(edges)),
		blocked: make(map[[2]kernel.NodeID]struct{}, len(edges)),
		guard:   guard.NewConstructorGuard(),
	}

	for _, e := range edges {
		if _, err := NewBlockedEdge(e.a, e.b); err != nil {
			return nil, err
		}
		g.edges = append(g.edges, e)
		g.blocked[e.key()] = struct{}{}
	}

	return g, nil
}

// Validate checks if the Grid was properly constructed.
func (g *Grid) Validate() error {
	return g.guard.Validate(ErrGridIsNotConstructed)
}

// BlockedEdges returns the recorded blocked edges in insertion order.
func (g *Grid) BlockedEdges() []BlockedEdge {
	out := make([]BlockedEdge, len(g.edges))
	copy(out, g.edges)
	return out
}

// IsBlocked reports whether the connection between two nodes is blocked,
// in either direction.
func (g *Grid) IsBlocked(a, b kernel.NodeID) bool {
	_, ok := g.blocked[BlockedEdge{a: a, b: b}.key()]
	return ok
}

// Neighbors returns the traversable cardinal neighbors of a node in
// ascending node id order: up, left, right, down. Neighbors across grid
// boundaries and across blocked edges are excluded. An out-of-range node
// has no neighbors.
func (g *Grid) Neighbors(id kernel.NodeID) []kernel.NodeID {
	loc, err := kernel.LocationFromNodeID(id)
	if err != nil {
		return nil
	}

	out := make([]kernel.NodeID, 0, 4)
	appendIfOpen := func(n kernel.NodeID) {
		if !g.IsBlocked(id, n) {
			out = append(out, n)
		}
	}

	if loc.Y() > kernel.CoordinateMin {
		appendIfOpen(id - kernel.GridSize)
	}
	if loc.X() > kernel.CoordinateMin {
		appendIfOpen(id - 1)
	}
	if loc.X() < kernel.CoordinateMax {
		appendIfOpen(id + 1)
	}
	if loc.Y() < kernel.CoordinateMax {
		appendIfOpen(id + kernel.GridSize)
	}

	return out
}
