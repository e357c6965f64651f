package seed_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fastroute/internal/adapters/out/memory"
	"fastroute/internal/core/domain/model/bot"
	"fastroute/internal/seed"
)

func newSeeder(store *memory.Store) *seed.Seeder {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return seed.NewSeeder(memory.NewUnitOfWorkFactory(store), logger)
}

func TestSeeder_Run(t *testing.T) {
	t.Run("seeds the city data", func(t *testing.T) {
		ctx := t.Context()
		store := memory.NewStore()

		require.NoError(t, newSeeder(store).Run(ctx))

		g, err := store.GridRepository().Get(ctx)
		require.NoError(t, err)
		assert.Len(t, g.BlockedEdges(), 19)
		assert.True(t, g.IsBlocked(6, 14))
		assert.True(t, g.IsBlocked(14, 6))

		restaurants, err := store.RestaurantRepository().GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, restaurants, 6)
		for _, r := range restaurants {
			assert.True(t, r.IsActive())
		}

		bots, err := store.BotRepository().GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, bots, 5)
		assert.Equal(t, "Bot 1", bots[0].Name())
		assert.Equal(t, bot.StatusAvailable, bots[0].Status())
		assert.EqualValues(t, 4, bots[0].Location().X())
		assert.EqualValues(t, 4, bots[0].Location().Y())
	})

	t.Run("is idempotent", func(t *testing.T) {
		ctx := t.Context()
		store := memory.NewStore()
		seeder := newSeeder(store)

		require.NoError(t, seeder.Run(ctx))

		first, err := store.RestaurantRepository().GetAll(ctx)
		require.NoError(t, err)

		require.NoError(t, seeder.Run(ctx))

		second, err := store.RestaurantRepository().GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, second, len(first))
		for i := range first {
			assert.Equal(t, first[i].ID(), second[i].ID())
		}

		bots, err := store.BotRepository().GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, bots, 5)
	})
}
