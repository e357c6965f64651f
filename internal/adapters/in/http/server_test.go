package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "fastroute/internal/adapters/in/http"
	"fastroute/internal/adapters/out/memory"
	"fastroute/internal/core/application/simulation"
	"fastroute/internal/core/application/usecases/commands"
	"fastroute/internal/core/application/usecases/queries"
	"fastroute/internal/core/domain/model/bot"
	"fastroute/internal/core/domain/model/grid"
	"fastroute/internal/core/domain/model/kernel"
	"fastroute/internal/core/domain/model/restaurant"
	"fastroute/internal/core/domain/services"
	"fastroute/internal/jobs"
)

// Func factories bridge the memory unit of work to the narrow interfaces
// the command handlers declare, mirroring the composition root.
type (
	dispatchUoWFactory func() commands.DispatchUoW
	orderBotUoWFactory func() commands.OrderBotUoW
	orderUoWFactory    func() commands.OrderUoW
	botUoWFactory      func() commands.BotUoW
)

func (f dispatchUoWFactory) Create() commands.DispatchUoW { return f() }
func (f orderBotUoWFactory) Create() commands.OrderBotUoW { return f() }
func (f orderUoWFactory) Create() commands.OrderUoW       { return f() }
func (f botUoWFactory) Create() commands.BotUoW           { return f() }

type fixture struct {
	echo        *echo.Echo
	store       *memory.Store
	engine      *simulation.Engine
	broadcaster *jobs.SnapshotBroadcaster
	restaurant  *restaurant.Restaurant
}

// newFixture wires a full server over the in-memory adapter: two bots at
// (4, 4), one active ramen restaurant at node 10, an empty grid, and a
// fast-ticking engine.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := t.Context()
	store := memory.NewStore()
	factory := memory.NewUnitOfWorkFactory(store)

	g, err := grid.NewGrid(nil)
	require.NoError(t, err)
	require.NoError(t, store.GridRepository().Save(ctx, g))

	location, err := kernel.NewLocation(4, 4)
	require.NoError(t, err)
	for i := 1; i <= 2; i++ {
		b, err := bot.NewBot(bot.ID(i), fmt.Sprintf("Bot-%d", i), location)
		require.NoError(t, err)
		require.NoError(t, store.BotRepository().Add(ctx, b))
	}

	rest, err := restaurant.NewRestaurant(kernel.NewUUID(), "Ramen Ichiban", restaurant.TypeRamen, 10)
	require.NoError(t, err)
	require.NoError(t, store.RestaurantRepository().Add(ctx, rest))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	planner := services.NewRoutePlanner()

	engine := simulation.NewEngine(
		factory,
		store.OrderRepository(),
		store.BotRepository(),
		store.GridRepository(),
		planner,
		nil,
		logger,
		time.Millisecond,
	)
	t.Cleanup(func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = engine.Shutdown(shutdownCtx)
	})

	deliveryPoints := []kernel.NodeID{0, 18, 71}
	broadcaster := jobs.NewSnapshotBroadcaster()

	server := httpadapter.NewServer(httpadapter.Dependencies{
		CreateOrder: commands.NewCreateOrderCommandHandler(
			dispatchUoWFactory(func() commands.DispatchUoW { return factory.Create() }),
		),
		UpdateOrderStatus: commands.NewUpdateOrderStatusCommandHandler(
			orderBotUoWFactory(func() commands.OrderBotUoW { return factory.Create() }),
		),
		CancelOrder: commands.NewCancelOrderCommandHandler(
			orderBotUoWFactory(func() commands.OrderBotUoW { return factory.Create() }),
		),
		DeleteOrder: commands.NewDeleteOrderCommandHandler(
			orderUoWFactory(func() commands.OrderUoW { return factory.Create() }),
		),
		UpdateBotPosition: commands.NewUpdateBotPositionCommandHandler(
			botUoWFactory(func() commands.BotUoW { return factory.Create() }),
		),
		UpdateBotStatus: commands.NewUpdateBotStatusCommandHandler(
			botUoWFactory(func() commands.BotUoW { return factory.Create() }),
		),
		GetOrders:      queries.NewGetOrdersQueryHandler(store.OrderRepository()),
		GetOrder:       queries.NewGetOrderQueryHandler(store.OrderRepository()),
		GetBots:        queries.NewGetBotsQueryHandler(store.BotRepository()),
		GetBot:         queries.NewGetBotQueryHandler(store.BotRepository()),
		GetRestaurants: queries.NewGetRestaurantsQueryHandler(store.RestaurantRepository()),
		GetRestaurant:  queries.NewGetRestaurantQueryHandler(store.RestaurantRepository()),
		GetMapData: queries.NewGetMapDataQueryHandler(
			store.GridRepository(),
			store.RestaurantRepository(),
			store.BotRepository(),
			deliveryPoints,
		),
		GetStats: queries.NewGetStatsQueryHandler(
			store.OrderRepository(),
			store.BotRepository(),
		),
		CalculateRoute: queries.NewCalculateRouteQueryHandler(store.GridRepository(), planner),
		Engine:         engine,
		Snapshots:      broadcaster,
		Logger:         logger,
	})

	e := echo.New()
	server.RegisterRoutes(e)

	return &fixture{echo: e, store: store, engine: engine, broadcaster: broadcaster, restaurant: rest}
}

func (f *fixture) do(method, target string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = strings.NewReader(string(payload))
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var value T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &value))
	return value
}

func (f *fixture) placeOrder(t *testing.T) string {
	t.Helper()
	rec := f.do(http.MethodPost, "/api/orders", httpadapter.CreateOrderRequest{
		CustomerName:    "Alice",
		CustomerAddress: "Oak street",
		RestaurantID:    f.restaurant.ID().String(),
		DeliveryX:       8,
		DeliveryY:       8,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	return decodeJSON[httpadapter.OrderCreatedResponse](t, rec).OrderID
}

// fillFleet loads every bot to capacity so new orders stay pending.
func (f *fixture) fillFleet(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	all, err := f.store.BotRepository().GetAll(ctx)
	require.NoError(t, err)
	for _, b := range all {
		loaded, err := bot.RestoreBot(
			b.ID(), b.Name(), bot.StatusBusy, b.Location(),
			bot.MaxActiveOrders, b.TotalDeliveries(),
		)
		require.NoError(t, err)
		require.NoError(t, f.store.BotRepository().Update(ctx, loaded))
	}
}

func TestServer_Basics(t *testing.T) {
	f := newFixture(t)

	t.Run("health check", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/health", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeJSON[map[string]string](t, rec)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("service info", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		info := decodeJSON[httpadapter.ServiceInfoResponse](t, rec)
		assert.Equal(t, "1.0.0", info.Version)
		assert.Equal(t, "/api/orders", info.Endpoints["orders"])
	})
}

func TestServer_CreateOrder(t *testing.T) {
	t.Run("creates and dispatches the order", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/api/orders", httpadapter.CreateOrderRequest{
			CustomerName:    "Alice",
			CustomerAddress: "Oak street",
			RestaurantID:    f.restaurant.ID().String(),
			DeliveryX:       8,
			DeliveryY:       0,
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		body := decodeJSON[httpadapter.OrderCreatedResponse](t, rec)
		assert.Equal(t, "Order created!", body.Message)
		assert.Equal(t, "L08 - Oak street", body.Address)
		require.NotNil(t, body.BotAssigned)
		assert.Equal(t, "Bot-1", *body.BotAssigned)
	})

	t.Run("rejects a malformed restaurant id", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/api/orders", httpadapter.CreateOrderRequest{
			CustomerName: "Alice",
			RestaurantID: "not-a-uuid",
			DeliveryX:    1,
			DeliveryY:    1,
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects an unknown restaurant", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/api/orders", httpadapter.CreateOrderRequest{
			CustomerName: "Alice",
			RestaurantID: kernel.NewUUID().String(),
			DeliveryX:    1,
			DeliveryY:    1,
		})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("rejects an out of range delivery location", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/api/orders", httpadapter.CreateOrderRequest{
			CustomerName: "Alice",
			RestaurantID: f.restaurant.ID().String(),
			DeliveryX:    9,
			DeliveryY:    0,
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("throttles the fourth order in the window", func(t *testing.T) {
		f := newFixture(t)

		for range 3 {
			f.placeOrder(t)
		}
		rec := f.do(http.MethodPost, "/api/orders", httpadapter.CreateOrderRequest{
			CustomerName: "Dave",
			RestaurantID: f.restaurant.ID().String(),
			DeliveryX:    1,
			DeliveryY:    1,
		})

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})
}

func TestServer_OrderLifecycle(t *testing.T) {
	f := newFixture(t)
	orderID := f.placeOrder(t)

	t.Run("listed in all and active but not pending", func(t *testing.T) {
		all := decodeJSON[[]httpadapter.OrderJSON](t, f.do(http.MethodGet, "/api/orders", nil))
		require.Len(t, all, 1)
		assert.Equal(t, orderID, all[0].ID)
		assert.Equal(t, "assigned", all[0].Status)

		active := decodeJSON[[]httpadapter.OrderJSON](t, f.do(http.MethodGet, "/api/orders/active", nil))
		assert.Len(t, active, 1)

		pending := decodeJSON[[]httpadapter.OrderJSON](t, f.do(http.MethodGet, "/api/orders/pending", nil))
		assert.Empty(t, pending)
	})

	t.Run("fetched by id", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/api/orders/"+orderID, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		o := decodeJSON[httpadapter.OrderJSON](t, rec)
		assert.Equal(t, "Alice", o.CustomerName)
		assert.Equal(t, 10, o.PickupNodeID)
		assert.Equal(t, 80, o.DeliveryNodeID)
		require.NotNil(t, o.BotID)
		assert.Equal(t, 1, *o.BotID)
	})

	t.Run("status moves along the pipeline", func(t *testing.T) {
		rec := f.do(http.MethodPut, "/api/orders/"+orderID+"/status/picking_up", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		o := decodeJSON[httpadapter.OrderJSON](t, f.do(http.MethodGet, "/api/orders/"+orderID, nil))
		assert.Equal(t, "picking_up", o.Status)
	})

	t.Run("skipping a step is a conflict", func(t *testing.T) {
		rec := f.do(http.MethodPut, "/api/orders/"+orderID+"/status/delivered", nil)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unknown status token is rejected", func(t *testing.T) {
		rec := f.do(http.MethodPut, "/api/orders/"+orderID+"/status/teleported", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("cancel releases the order", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/api/orders/"+orderID+"/cancel", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		o := decodeJSON[httpadapter.OrderJSON](t, f.do(http.MethodGet, "/api/orders/"+orderID, nil))
		assert.Equal(t, "cancelled", o.Status)
		assert.Nil(t, o.BotID)
	})

	t.Run("cancelling twice is a conflict", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/api/orders/"+orderID+"/cancel", nil)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unknown order is not found", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/api/orders/"+kernel.NewUUID().String(), nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed order id is rejected", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/api/orders/abc", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_DeleteOrder(t *testing.T) {
	t.Run("assigned order cannot be deleted", func(t *testing.T) {
		f := newFixture(t)
		orderID := f.placeOrder(t)

		rec := f.do(http.MethodDelete, "/api/orders/"+orderID, nil)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("pending order can be deleted", func(t *testing.T) {
		f := newFixture(t)
		f.fillFleet(t)

		rec := f.do(http.MethodPost, "/api/orders", httpadapter.CreateOrderRequest{
			CustomerName: "Bob",
			RestaurantID: f.restaurant.ID().String(),
			DeliveryX:    3,
			DeliveryY:    3,
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		created := decodeJSON[httpadapter.OrderCreatedResponse](t, rec)
		require.Nil(t, created.BotAssigned)

		require.Equal(t, http.StatusOK, f.do(http.MethodDelete, "/api/orders/"+created.OrderID, nil).Code)
		assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/api/orders/"+created.OrderID, nil).Code)
	})
}

func TestServer_Bots(t *testing.T) {
	f := newFixture(t)

	t.Run("lists the fleet", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/api/bots", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		bots := decodeJSON[[]httpadapter.BotJSON](t, rec)
		require.Len(t, bots, 2)
		assert.Equal(t, "Bot-1", bots[0].Name)
		assert.Equal(t, 4, bots[0].CurrentX)
		assert.Equal(t, "available", bots[0].Status)
	})

	t.Run("moves a bot", func(t *testing.T) {
		rec := f.do(http.MethodPut, "/api/bots/1/position", httpadapter.UpdateBotPositionRequest{X: 2, Y: 7})
		require.Equal(t, http.StatusOK, rec.Code)

		b := decodeJSON[httpadapter.BotJSON](t, f.do(http.MethodGet, "/api/bots/1", nil))
		assert.Equal(t, 2, b.CurrentX)
		assert.Equal(t, 7, b.CurrentY)
	})

	t.Run("rejects an out of range position", func(t *testing.T) {
		rec := f.do(http.MethodPut, "/api/bots/1/position", httpadapter.UpdateBotPositionRequest{X: 9, Y: 0})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("updates bot status and filters available", func(t *testing.T) {
		rec := f.do(http.MethodPut, "/api/bots/2/status/offline", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		available := decodeJSON[[]httpadapter.BotJSON](t, f.do(http.MethodGet, "/api/bots/available", nil))
		require.Len(t, available, 1)
		assert.Equal(t, 1, available[0].ID)
	})

	t.Run("rejects an unknown status token", func(t *testing.T) {
		rec := f.do(http.MethodPut, "/api/bots/1/status/sleeping", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown bot is not found", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/api/bots/99", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed bot id is rejected", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/api/bots/first", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_Restaurants(t *testing.T) {
	f := newFixture(t)

	t.Run("lists active restaurants", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/api/restaurants", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		restaurants := decodeJSON[[]httpadapter.RestaurantJSON](t, rec)
		require.Len(t, restaurants, 1)
		assert.Equal(t, "Ramen Ichiban", restaurants[0].Name)
		assert.Equal(t, "RAMEN", restaurants[0].RestaurantType)
		assert.Equal(t, 10, restaurants[0].NodeID)
	})

	t.Run("filters by type in any casing", func(t *testing.T) {
		restaurants := decodeJSON[[]httpadapter.RestaurantJSON](t, f.do(http.MethodGet, "/api/restaurants/type/ramen", nil))
		assert.Len(t, restaurants, 1)

		empty := decodeJSON[[]httpadapter.RestaurantJSON](t, f.do(http.MethodGet, "/api/restaurants/type/SUSHI", nil))
		assert.Empty(t, empty)
	})

	t.Run("rejects an unknown cuisine", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/api/restaurants/type/fusion", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("resolves the restaurant location", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/api/restaurants/"+f.restaurant.ID().String()+"/location", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		loc := decodeJSON[httpadapter.RestaurantLocationResponse](t, rec)
		assert.Equal(t, "Ramen Ichiban", loc.Restaurant)
		assert.Equal(t, 10, loc.NodeID)
		assert.Equal(t, 1, loc.X)
		assert.Equal(t, 1, loc.Y)
	})

	t.Run("unknown restaurant is not found", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/api/restaurants/"+kernel.NewUUID().String(), nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_Map(t *testing.T) {
	f := newFixture(t)

	t.Run("full map data", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/api/map/data", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		data := decodeJSON[httpadapter.MapDataJSON](t, rec)
		assert.Equal(t, 9, data.GridSize)
		require.Len(t, data.Nodes, 81)
		assert.Empty(t, data.BlockedPaths)
		assert.Len(t, data.Restaurants, 1)
		assert.Len(t, data.Bots, 2)

		node := data.Nodes[10]
		assert.True(t, node.IsRestaurant)
		require.NotNil(t, node.RestaurantType)
		assert.Equal(t, "RAMEN", *node.RestaurantType)
		assert.True(t, data.Nodes[18].IsDeliveryPoint)
	})

	t.Run("nodes endpoint", func(t *testing.T) {
		nodes := decodeJSON[[]httpadapter.NodeJSON](t, f.do(http.MethodGet, "/api/map/nodes", nil))
		require.Len(t, nodes, 81)
		assert.Equal(t, 8, nodes[80].X)
		assert.Equal(t, 8, nodes[80].Y)
	})

	t.Run("stats reflect the fleet", func(t *testing.T) {
		f.placeOrder(t)

		stats := decodeJSON[httpadapter.StatsJSON](t, f.do(http.MethodGet, "/api/map/stats", nil))
		assert.Equal(t, 1, stats.TotalOrders)
		assert.Equal(t, 1, stats.ActiveDeliveries)
		assert.Equal(t, 0, stats.PendingOrders)
		assert.Equal(t, 1, stats.BusyBots)
		assert.Equal(t, 1, stats.AvailableBots)
	})

	t.Run("calculates a route", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/api/map/route?start_x=0&start_y=0&end_x=3&end_y=0", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		route := decodeJSON[httpadapter.RouteJSON](t, rec)
		assert.Equal(t, 3, route.Distance)
		assert.Equal(t, 3, route.EstimatedTime)
		require.Len(t, route.Path, 4)
		assert.Equal(t, httpadapter.RoutePointJSON{X: 0, Y: 0}, route.Path[0])
		assert.Equal(t, httpadapter.RoutePointJSON{X: 3, Y: 0}, route.Path[3])
	})

	t.Run("route requires all coordinates", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/api/map/route?start_x=0&start_y=0&end_x=3", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("route rejects out of range coordinates", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/api/map/route?start_x=0&start_y=0&end_x=9&end_y=0", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_Simulation(t *testing.T) {
	t.Run("runs an order to delivery", func(t *testing.T) {
		f := newFixture(t)
		orderID := f.placeOrder(t)

		rec := f.do(http.MethodPost, "/api/simulation/start/"+orderID, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeJSON[httpadapter.SimulationStartedResponse](t, rec)
		assert.Equal(t, orderID, body.OrderID)

		assert.Eventually(t, func() bool {
			o := decodeJSON[httpadapter.OrderJSON](t, f.do(http.MethodGet, "/api/orders/"+orderID, nil))
			return o.Status == "delivered"
		}, 5*time.Second, 10*time.Millisecond)
	})

	t.Run("starting twice is a conflict", func(t *testing.T) {
		f := newFixture(t)
		orderID := f.placeOrder(t)

		require.Equal(t, http.StatusOK, f.do(http.MethodPost, "/api/simulation/start/"+orderID, nil).Code)

		status := decodeJSON[httpadapter.SimulationStatusResponse](t, f.do(http.MethodGet, "/api/simulation/status", nil))
		if status.Count == 0 {
			// The run already finished; nothing left to conflict with.
			t.Skip("run completed before the second start")
		}

		rec := f.do(http.MethodPost, "/api/simulation/start/"+orderID, nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unknown order is not found", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/api/simulation/start/"+kernel.NewUUID().String(), nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("stop without a run reports nothing to stop", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/api/simulation/stop/"+kernel.NewUUID().String(), nil)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeJSON[map[string]string](t, rec)
		assert.Equal(t, "No active simulation found", body["message"])
	})

	t.Run("auto-start sweeps assigned orders", func(t *testing.T) {
		f := newFixture(t)
		first := f.placeOrder(t)
		second := f.placeOrder(t)

		rec := f.do(http.MethodPost, "/api/simulation/auto-start", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeJSON[httpadapter.AutoStartResponse](t, rec)
		assert.Equal(t, "Started 2 simulations", body.Message)
		assert.ElementsMatch(t, []string{first, second}, body.OrderIDs)
	})
}

func TestServer_Stream(t *testing.T) {
	f := newFixture(t)
	f.placeOrder(t)

	// Publish the current fleet state the way the broadcast job would.
	snapshot, err := f.store.Snapshot(t.Context())
	require.NoError(t, err)
	f.broadcaster.Publish(snapshot)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	req := httptest.NewRequest(http.MethodGet, "/api/stream/orders", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get(echo.HeaderContentType))

	body := rec.Body.String()
	require.True(t, strings.HasPrefix(body, "data: "), "expected an SSE data frame, got %q", body)

	var event httpadapter.StreamEventJSON
	payload := strings.TrimPrefix(strings.SplitN(body, "\n\n", 2)[0], "data: ")
	require.NoError(t, json.Unmarshal([]byte(payload), &event))

	assert.Equal(t, "update", event.Type)
	require.Len(t, event.Orders, 1)
	assert.Equal(t, "Alice", event.Orders[0].CustomerName)
	require.Len(t, event.Bots, 2)
	assert.Equal(t, 4, event.Bots[0].CurrentX)
}
