package memory

import (
	"context"

	"fastroute/internal/core/ports"
)

// Snapshot implements ports.FleetReader. The whole view is assembled under
// one read lock, so a committed transaction is either fully visible or not
// visible at all.
func (s *Store) Snapshot(_ context.Context) (ports.FleetSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bots, err := s.state.allBots()
	if err != nil {
		return ports.FleetSnapshot{}, err
	}

	active, err := s.state.allOrders(func(rec orderRecord) bool {
		return rec.status.IsActive()
	})
	if err != nil {
		return ports.FleetSnapshot{}, err
	}

	restaurants, err := s.state.allRestaurants(nil)
	if err != nil {
		return ports.FleetSnapshot{}, err
	}

	return ports.FleetSnapshot{
		Bots:         bots,
		ActiveOrders: active,
		Restaurants:  restaurants,
	}, nil
}
