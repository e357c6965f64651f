package services

import (
	"container/heap"
	"errors"

	"fastroute/internal/core/domain/model/grid"
	"fastroute/internal/core/domain/model/kernel"
)

// ErrNoRouteFound is returned when the goal is unreachable from the start,
// for example when blocked edges wall off a part of the grid.
var ErrNoRouteFound = errors.New("no route found")

// Route is the result of a successful path search.
// Path holds every visited cell from start to goal inclusive, and Distance
// is the number of steps, i.e. len(Path)-1.
type Route struct {
	Path     []kernel.Location
	Distance int
}

// NodeIDs returns the path as row-major node ids.
func (r Route) NodeIDs() []kernel.NodeID {
	out := make([]kernel.NodeID, len(r.Path))
	for i, loc := range r.Path {
		id, _ := loc.NodeID()
		out[i] = id
	}
	return out
}

// RoutePlanner is a domain service that finds shortest paths on the grid
// using A* search with the Manhattan distance heuristic.
//
// The heuristic is admissible and consistent on a cardinal-movement grid,
// so the first time the goal is popped from the open set the path is
// optimal. Ties in the f-score are broken by the smaller node id, which
// makes the returned route fully deterministic: equal inputs always yield
// the identical path, not merely an equally short one.
type RoutePlanner struct{}

// NewRoutePlanner creates a new RoutePlanner instance.
func NewRoutePlanner() RoutePlanner {
	return RoutePlanner{}
}

// FindRoute searches for the shortest path between two grid cells.
//
// Returns ErrNoRouteFound when the goal is unreachable. A search from a
// cell to itself succeeds with a single-cell path and zero distance.
func (p RoutePlanner) FindRoute(g *grid.Grid, from, to kernel.Location) (Route, error) {
	if err := g.Validate(); err != nil {
		return Route{}, err
	}
	if err := errors.Join(from.Validate(), to.Validate()); err != nil {
		return Route{}, err
	}

	start, _ := from.NodeID()
	goal, _ := to.NodeID()

	if start == goal {
		return Route{Path: []kernel.Location{from}, Distance: 0}, nil
	}

	gScore := map[kernel.NodeID]int{start: 0}
	cameFrom := map[kernel.NodeID]kernel.NodeID{}
	closed := map[kernel.NodeID]bool{}

	open := &openSet{}
	heap.Init(open)
	heap.Push(open, openNode{id: start, f: p.heuristic(start, goal)})

	for open.Len() > 0 {
		current := heap.Pop(open).(openNode)
		if current.id == goal {
			return p.reconstruct(cameFrom, goal)
		}
		if closed[current.id] {
			continue
		}
		closed[current.id] = true

		for _, neighbor := range g.Neighbors(current.id) {
			if closed[neighbor] {
				continue
			}

			tentative := gScore[current.id] + 1
			if known, seen := gScore[neighbor]; seen && tentative >= known {
				continue
			}

			gScore[neighbor] = tentative
			cameFrom[neighbor] = current.id
			heap.Push(open, openNode{id: neighbor, f: tentative + p.heuristic(neighbor, goal)})
		}
	}

	return Route{}, ErrNoRouteFound
}

// heuristic is the Manhattan distance between two nodes.
func (p RoutePlanner) heuristic(a, b kernel.NodeID) int {
	locA, _ := kernel.LocationFromNodeID(a)
	locB, _ := kernel.LocationFromNodeID(b)
	d, _ := locA.Distance(locB)
	return d
}

// reconstruct walks the cameFrom chain back from the goal and returns the
// route in start-to-goal order.
func (p RoutePlanner) reconstruct(cameFrom map[kernel.NodeID]kernel.NodeID, goal kernel.NodeID) (Route, error) {
	ids := []kernel.NodeID{goal}
	for {
		prev, ok := cameFrom[ids[len(ids)-1]]
		if !ok {
			break
		}
		ids = append(ids, prev)
	}

	path := make([]kernel.Location, len(ids))
	for i, id := range ids {
		loc, err := kernel.LocationFromNodeID(id)
		if err != nil {
			return Route{}, err
		}
		path[len(ids)-1-i] = loc
	}

	return Route{Path: path, Distance: len(path) - 1}, nil
}

// openNode is an entry of the A* open set.
type openNode struct {
	id kernel.NodeID
	f  int
}

// openSet is a min-heap of open nodes ordered by (f, node id).
type openSet []openNode

func (s openSet) Len() int { return len(s) }

func (s openSet) Less(i, j int) bool {
	if s[i].f != s[j].f {
		return s[i].f < s[j].f
	}
	return s[i].id < s[j].id
}

func (s openSet) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

func (s *openSet) Push(x any) {
	*s = append(*s, x.(openNode))
}

func (s *openSet) Pop() any {
	old := *s
	n := len(old)
	item := old[n-1]
	*s = old[:n-1]
	return item
}
