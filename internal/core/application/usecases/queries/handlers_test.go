package queries_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fastroute/internal/adapters/out/memory"
	"fastroute/internal/core/application/usecases/queries"
	"fastroute/internal/core/domain/model/bot"
	"fastroute/internal/core/domain/model/grid"
	"fastroute/internal/core/domain/model/kernel"
	"fastroute/internal/core/domain/model/order"
	"fastroute/internal/core/domain/model/restaurant"
	"fastroute/internal/core/domain/services"
	"fastroute/internal/pkg/errs"
)

type fixture struct {
	store *memory.Store

	ramen *restaurant.Restaurant
	sushi *restaurant.Restaurant
}

// newFixture populates the store with a small city: two restaurants, two
// bots, a grid with one blocked edge, and three orders in different states.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := t.Context()
	store := memory.NewStore()

	edge, err := grid.NewBlockedEdge(3, 4)
	require.NoError(t, err)
	g, err := grid.NewGrid([]grid.BlockedEdge{edge})
	require.NoError(t, err)
	require.NoError(t, store.GridRepository().Save(ctx, g))

	ramen, err := restaurant.NewRestaurant(kernel.NewUUID(), "Ramen Ichiban", restaurant.TypeRamen, 10)
	require.NoError(t, err)
	sushi, err := restaurant.NewRestaurant(kernel.NewUUID(), "Sushi Master", restaurant.TypeSushi, 40)
	require.NoError(t, err)
	require.NoError(t, store.RestaurantRepository().Add(ctx, ramen))
	require.NoError(t, store.RestaurantRepository().Add(ctx, sushi))

	location, err := kernel.NewLocation(4, 4)
	require.NoError(t, err)
	for i := 1; i <= 2; i++ {
		b, botErr := bot.NewBot(bot.ID(i), "Bot", location)
		require.NoError(t, botErr)
		require.NoError(t, store.BotRepository().Add(ctx, b))
	}

	f := &fixture{store: store, ramen: ramen, sushi: sushi}

	now := time.Now().UTC()
	f.addOrder(t, now, order.StatusPending, nil)
	assigned := bot.ID(1)
	f.addOrder(t, now, order.StatusDelivering, &assigned)
	f.addOrder(t, now, order.StatusDelivered, &assigned)

	return f
}

func (f *fixture) addOrder(t *testing.T, createdAt time.Time, status order.Status, botID *bot.ID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "Alice", "L88", f.ramen.NodeID(), 80, f.ramen.ID(), createdAt)
	require.NoError(t, err)

	if botID != nil {
		require.NoError(t, o.Assign(*botID, createdAt))
		b, botErr := f.store.BotRepository().Get(t.Context(), *botID)
		require.NoError(t, botErr)
		require.NoError(t, b.TakeOrder())
		require.NoError(t, f.store.BotRepository().Update(t.Context(), b))
	}

	for o.Status() != status {
		switch o.Status() {
		case order.StatusAssigned:
			require.NoError(t, o.StartPickup())
		case order.StatusPickingUp:
			require.NoError(t, o.PickUp())
		case order.StatusPickedUp:
			require.NoError(t, o.StartDelivery())
		case order.StatusDelivering:
			require.NoError(t, o.Deliver(createdAt))
		default:
			t.Fatalf("cannot reach status %s from %s", status, o.Status())
		}
	}

	require.NoError(t, f.store.OrderRepository().Add(t.Context(), o))
	return o
}

func TestGetOrdersQueryHandler(t *testing.T) {
	f := newFixture(t)
	handler := queries.NewGetOrdersQueryHandler(f.store.OrderRepository())

	t.Run("all orders", func(t *testing.T) {
		query, err := queries.NewGetOrdersQuery(queries.FilterAll)
		require.NoError(t, err)

		orders, err := handler.Handle(t.Context(), query)
		require.NoError(t, err)
		assert.Len(t, orders, 3)
	})

	t.Run("pending only", func(t *testing.T) {
		query, err := queries.NewGetOrdersQuery(queries.FilterPending)
		require.NoError(t, err)

		orders, err := handler.Handle(t.Context(), query)
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, order.StatusPending, orders[0].Status)
		assert.Nil(t, orders[0].BotID)
	})

	t.Run("active only", func(t *testing.T) {
		query, err := queries.NewGetOrdersQuery(queries.FilterActive)
		require.NoError(t, err)

		orders, err := handler.Handle(t.Context(), query)
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, order.StatusDelivering, orders[0].Status)
		require.NotNil(t, orders[0].BotID)
		assert.Equal(t, bot.ID(1), *orders[0].BotID)
	})

	t.Run("invalid filter", func(t *testing.T) {
		_, err := queries.NewGetOrdersQuery(queries.OrderFilter(42))
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestGetOrderQueryHandler(t *testing.T) {
	f := newFixture(t)
	handler := queries.NewGetOrderQueryHandler(f.store.OrderRepository())

	t.Run("existing order", func(t *testing.T) {
		o := f.addOrder(t, time.Now().UTC(), order.StatusPending, nil)

		query, err := queries.NewGetOrderQuery(o.ID())
		require.NoError(t, err)

		response, err := handler.Handle(t.Context(), query)
		require.NoError(t, err)
		assert.True(t, response.ID.IsEqual(o.ID()))
		assert.Equal(t, "Alice", response.CustomerName)
		assert.Equal(t, "L88", response.CustomerAddress)
	})

	t.Run("unknown order", func(t *testing.T) {
		query, err := queries.NewGetOrderQuery(kernel.NewUUID())
		require.NoError(t, err)

		_, err = handler.Handle(t.Context(), query)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestGetBotsQueryHandler(t *testing.T) {
	f := newFixture(t)
	handler := queries.NewGetBotsQueryHandler(f.store.BotRepository())

	t.Run("whole fleet", func(t *testing.T) {
		bots, err := handler.Handle(t.Context(), queries.NewGetBotsQuery(false))
		require.NoError(t, err)
		require.Len(t, bots, 2)
		assert.Equal(t, bot.ID(1), bots[0].ID)
		assert.Equal(t, 2, bots[0].ActiveOrders)
	})

	t.Run("available only excludes nothing while under capacity", func(t *testing.T) {
		bots, err := handler.Handle(t.Context(), queries.NewGetBotsQuery(true))
		require.NoError(t, err)
		assert.Len(t, bots, 2)
	})

	t.Run("available only excludes offline bots", func(t *testing.T) {
		ctx := t.Context()
		b, err := f.store.BotRepository().Get(ctx, 2)
		require.NoError(t, err)
		require.NoError(t, b.SetStatus(bot.StatusOffline))
		require.NoError(t, f.store.BotRepository().Update(ctx, b))

		bots, err := handler.Handle(ctx, queries.NewGetBotsQuery(true))
		require.NoError(t, err)
		require.Len(t, bots, 1)
		assert.Equal(t, bot.ID(1), bots[0].ID)
	})
}

func TestGetBotQueryHandler(t *testing.T) {
	f := newFixture(t)
	handler := queries.NewGetBotQueryHandler(f.store.BotRepository())

	t.Run("existing bot", func(t *testing.T) {
		query, err := queries.NewGetBotQuery(1)
		require.NoError(t, err)

		response, err := handler.Handle(t.Context(), query)
		require.NoError(t, err)
		assert.Equal(t, bot.ID(1), response.ID)
		assert.Equal(t, bot.StatusBusy, response.Status)
	})

	t.Run("unknown bot", func(t *testing.T) {
		query, err := queries.NewGetBotQuery(42)
		require.NoError(t, err)

		_, err = handler.Handle(t.Context(), query)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestGetRestaurantsQueryHandler(t *testing.T) {
	f := newFixture(t)
	handler := queries.NewGetRestaurantsQueryHandler(f.store.RestaurantRepository())

	t.Run("all active restaurants", func(t *testing.T) {
		restaurants, err := handler.Handle(t.Context(), queries.NewGetRestaurantsQuery())
		require.NoError(t, err)
		require.Len(t, restaurants, 2)
		assert.Equal(t, "Ramen Ichiban", restaurants[0].Name)
		assert.Equal(t, kernel.Coordinate(1), restaurants[0].Location.X())
		assert.Equal(t, kernel.Coordinate(1), restaurants[0].Location.Y())
	})

	t.Run("filtered by type", func(t *testing.T) {
		query, err := queries.NewGetRestaurantsByTypeQuery(restaurant.TypeSushi)
		require.NoError(t, err)

		restaurants, err := handler.Handle(t.Context(), query)
		require.NoError(t, err)
		require.Len(t, restaurants, 1)
		assert.Equal(t, "Sushi Master", restaurants[0].Name)
	})

	t.Run("inactive restaurants are hidden", func(t *testing.T) {
		ctx := t.Context()
		require.NoError(t, f.sushi.SetActive(false))
		require.NoError(t, f.store.RestaurantRepository().Update(ctx, f.sushi))

		restaurants, err := handler.Handle(ctx, queries.NewGetRestaurantsQuery())
		require.NoError(t, err)
		require.Len(t, restaurants, 1)
		assert.Equal(t, "Ramen Ichiban", restaurants[0].Name)
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		_, err := queries.NewGetRestaurantsByTypeQuery(restaurant.Type("TACO"))
		assert.Error(t, err)
	})
}

func TestGetStatsQueryHandler(t *testing.T) {
	f := newFixture(t)
	handler := queries.NewGetStatsQueryHandler(f.store.OrderRepository(), f.store.BotRepository())

	stats, err := handler.Handle(t.Context(), queries.NewGetStatsQuery())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalOrders)
	assert.Equal(t, 1, stats.PendingOrders)
	assert.Equal(t, 1, stats.ActiveDeliveries)
	assert.Equal(t, 1, stats.CompletedDeliveries)
	assert.Equal(t, 1, stats.BusyBots)
	assert.Equal(t, 1, stats.AvailableBots)
}

func TestGetMapDataQueryHandler(t *testing.T) {
	f := newFixture(t)
	deliveryPoints := []kernel.NodeID{0, 80}
	handler := queries.NewGetMapDataQueryHandler(
		f.store.GridRepository(),
		f.store.RestaurantRepository(),
		f.store.BotRepository(),
		deliveryPoints,
	)

	data, err := handler.Handle(t.Context(), queries.NewGetMapDataQuery())
	require.NoError(t, err)

	assert.Equal(t, kernel.GridSize, data.GridSize)
	require.Len(t, data.Nodes, kernel.NodeCount)

	// Node ids enumerate row by row.
	assert.Equal(t, kernel.NodeID(10), data.Nodes[10].ID)
	assert.Equal(t, kernel.Coordinate(1), data.Nodes[10].X)
	assert.Equal(t, kernel.Coordinate(1), data.Nodes[10].Y)

	assert.True(t, data.Nodes[0].IsDeliveryPoint)
	assert.True(t, data.Nodes[80].IsDeliveryPoint)
	assert.False(t, data.Nodes[1].IsDeliveryPoint)

	require.True(t, data.Nodes[10].IsRestaurant)
	require.NotNil(t, data.Nodes[10].RestaurantType)
	assert.Equal(t, restaurant.TypeRamen, *data.Nodes[10].RestaurantType)
	assert.False(t, data.Nodes[11].IsRestaurant)

	require.Len(t, data.BlockedPaths, 1)
	assert.Equal(t, kernel.NodeID(3), data.BlockedPaths[0].FromID)
	assert.Equal(t, kernel.NodeID(4), data.BlockedPaths[0].ToID)

	assert.Len(t, data.Restaurants, 2)
	assert.Len(t, data.Bots, 2)
}

func TestCalculateRouteQueryHandler(t *testing.T) {
	f := newFixture(t)
	handler := queries.NewCalculateRouteQueryHandler(f.store.GridRepository(), services.NewRoutePlanner())

	t.Run("straight line", func(t *testing.T) {
		query, err := queries.NewCalculateRouteQuery(0, 0, 0, 4)
		require.NoError(t, err)

		route, err := handler.Handle(t.Context(), query)
		require.NoError(t, err)
		assert.Equal(t, 4, route.Distance)
		assert.Equal(t, 4, route.EstimatedTime)
		require.Len(t, route.Path, 5)
		assert.Equal(t, queries.RoutePointResponse{X: 0, Y: 0}, route.Path[0])
		assert.Equal(t, queries.RoutePointResponse{X: 0, Y: 4}, route.Path[4])
	})

	t.Run("routes around the blocked edge", func(t *testing.T) {
		// (3,0) to (4,0) is blocked, so the direct 1-move hop costs 3.
		query, err := queries.NewCalculateRouteQuery(3, 0, 4, 0)
		require.NoError(t, err)

		route, err := handler.Handle(t.Context(), query)
		require.NoError(t, err)
		assert.Equal(t, 3, route.Distance)
	})

	t.Run("out of range coordinates are rejected", func(t *testing.T) {
		_, err := queries.NewCalculateRouteQuery(0, 0, 9, 0)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
