// Package seed loads the initial city data: the 9x9 street grid with its
// blocked paths, the restaurants, and the bot fleet. Seeding is idempotent;
// a store that already holds a grid is left untouched.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fastroute/internal/core/domain/model/bot"
	"fastroute/internal/core/domain/model/grid"
	"fastroute/internal/core/domain/model/kernel"
	"fastroute/internal/core/domain/model/restaurant"
	"fastroute/internal/core/ports"
	"fastroute/internal/pkg/errs"
)

// BlockedPaths are the impassable street segments, by node id pair.
// Loaded from the city survey; the (4, 12) pair is not a lattice edge and
// is kept verbatim since blocking tolerates non-adjacent endpoints.
var BlockedPaths = [][2]kernel.NodeID{
	{4, 12}, {6, 14}, {8, 16}, {9, 17}, {10, 18},
	{17, 18}, {23, 24}, {26, 27}, {27, 28}, {35, 36},
	{38, 39}, {43, 44}, {49, 50}, {50, 51}, {54, 55},
	{55, 56}, {52, 61}, {54, 63}, {72, 73},
}

// RestaurantSeed describes one restaurant to create.
type RestaurantSeed struct {
	NodeID kernel.NodeID
	Type   restaurant.Type
	Name   string
}

// Restaurants is the fixed restaurant roster.
var Restaurants = []RestaurantSeed{
	{NodeID: 10, Type: restaurant.TypeRamen, Name: "Ramen Ichiban"},
	{NodeID: 21, Type: restaurant.TypeCurry, Name: "Curry Palace"},
	{NodeID: 44, Type: restaurant.TypePizza, Name: "Pizza Italia"},
	{NodeID: 40, Type: restaurant.TypeSushi, Name: "Sushi Master"},
	{NodeID: 61, Type: restaurant.TypeSushi, Name: "Ocean Sushi"},
	{NodeID: 74, Type: restaurant.TypePizza, Name: "Napoli Express"},
}

// DeliveryPoints are the house nodes shown on the map.
var DeliveryPoints = []kernel.NodeID{0, 1, 5, 8, 18, 25, 57, 63, 71}

// BotNames fixes the fleet size and naming.
var BotNames = []string{"Bot 1", "Bot 2", "Bot 3", "Bot 4", "Bot 5"}

// Seeder populates the initial city data through a unit of work.
type Seeder struct {
	uowFactory ports.UnitOfWorkFactory
	logger     *slog.Logger
}

// NewSeeder creates a seeder over the given unit of work factory.
func NewSeeder(uowFactory ports.UnitOfWorkFactory, logger *slog.Logger) *Seeder {
	return &Seeder{
		uowFactory: uowFactory,
		logger:     logger.With("component", "seeder"),
	}
}

// Run seeds the store in one transaction. A store that already has a grid
// is considered seeded and is not modified.
func (s *Seeder) Run(ctx context.Context) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	_, err := uow.GridRepository().Get(ctx)
	if err == nil {
		s.logger.InfoContext(ctx, "Store already seeded, skipping")
		return nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if err := s.seedGrid(ctx, uow); err != nil {
		return err
	}
	if err := s.seedRestaurants(ctx, uow); err != nil {
		return err
	}
	if err := s.seedBots(ctx, uow); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "Store seeded",
		"blocked_paths", len(BlockedPaths),
		"restaurants", len(Restaurants),
		"bots", len(BotNames),
	)
	return nil
}

func (s *Seeder) seedGrid(ctx context.Context, uow ports.UnitOfWork) error {
	edges := make([]grid.BlockedEdge, 0, len(BlockedPaths))
	for _, pair := range BlockedPaths {
		edge, err := grid.NewBlockedEdge(pair[0], pair[1])
		if err != nil {
			return fmt.Errorf("blocked path (%d, %d): %w", pair[0], pair[1], err)
		}
		edges = append(edges, edge)
	}

	g, err := grid.NewGrid(edges)
	if err != nil {
		return err
	}

	return uow.GridRepository().Save(ctx, g)
}

func (s *Seeder) seedRestaurants(ctx context.Context, uow ports.UnitOfWork) error {
	for _, def := range Restaurants {
		r, err := restaurant.NewRestaurant(kernel.NewUUID(), def.Name, def.Type, def.NodeID)
		if err != nil {
			return fmt.Errorf("restaurant %q: %w", def.Name, err)
		}
		if err := uow.RestaurantRepository().Add(ctx, r); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedBots(ctx context.Context, uow ports.UnitOfWork) error {
	center, err := kernel.NewLocation(4, 4)
	if err != nil {
		return err
	}

	for i, name := range BotNames {
		b, err := bot.NewBot(bot.ID(i+1), name, center)
		if err != nil {
			return fmt.Errorf("bot %q: %w", name, err)
		}
		if err := uow.BotRepository().Add(ctx, b); err != nil {
			return err
		}
	}
	return nil
}
