package cmd

import (
	"log/slog"

	"gorm.io/gorm"

	httpadapter "fastroute/internal/adapters/in/http"
	"fastroute/internal/adapters/out/memory"
	"fastroute/internal/adapters/out/postgres"
	"fastroute/internal/core/application/simulation"
	"fastroute/internal/core/application/usecases/commands"
	"fastroute/internal/core/application/usecases/queries"
	"fastroute/internal/core/domain/services"
	"fastroute/internal/core/ports"
	"fastroute/internal/jobs"
	"fastroute/internal/metrics"
	"fastroute/internal/seed"
)

// CompositionRoot wires the adapters and application services together.
// A nil gormDB selects the in-memory store; otherwise everything runs on
// postgres.
type CompositionRoot struct {
	uowFactory  ports.UnitOfWorkFactory
	orders      ports.OrderRepository
	bots        ports.BotRepository
	restaurants ports.RestaurantRepository
	grids       ports.GridRepository
	fleet       ports.FleetReader

	planner     services.RoutePlanner
	simMetrics  *metrics.SimulationMetrics
	engine      *simulation.Engine
	broadcaster *jobs.SnapshotBroadcaster
	jobManager  *jobs.JobManager
	logger      *slog.Logger
}

// NewCompositionRoot builds the object graph for the configured storage.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	root := &CompositionRoot{
		planner:    services.NewRoutePlanner(),
		simMetrics: metrics.NewSimulationMetrics(),
		logger:     logger,
	}

	if gormDB != nil {
		reads := postgres.NewReadRepositories(gormDB)
		root.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB)
		root.orders = reads.Orders
		root.bots = reads.Bots
		root.restaurants = reads.Restaurants
		root.grids = reads.Grids
		root.fleet = postgres.NewGormFleetReader(gormDB)
	} else {
		store := memory.NewStore()
		root.uowFactory = memory.NewUnitOfWorkFactory(store)
		root.orders = store.OrderRepository()
		root.bots = store.BotRepository()
		root.restaurants = store.RestaurantRepository()
		root.grids = store.GridRepository()
		root.fleet = store
	}

	root.engine = simulation.NewEngine(
		root.uowFactory,
		root.orders,
		root.bots,
		root.grids,
		root.planner,
		root.simMetrics,
		logger,
		configs.SimTickInterval,
	)
	root.broadcaster = jobs.NewSnapshotBroadcaster()
	root.jobManager = jobs.NewJobManager(
		root.fleet,
		root.broadcaster,
		root.engine,
		configs.SimAutoStart,
		logger,
	)

	return root
}

// Engine exposes the simulation engine for shutdown handling.
func (c *CompositionRoot) Engine() *simulation.Engine {
	return c.engine
}

// JobManager exposes the background job manager.
func (c *CompositionRoot) JobManager() *jobs.JobManager {
	return c.jobManager
}

// CreateSeeder builds the initial data seeder.
func (c *CompositionRoot) CreateSeeder() *seed.Seeder {
	return seed.NewSeeder(c.uowFactory, c.logger)
}

// CreateHTTPServer assembles the inbound HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Dependencies{
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		UpdateOrderStatus: c.CreateUpdateOrderStatusCommandHandler(),
		CancelOrder:       c.CreateCancelOrderCommandHandler(),
		DeleteOrder:       c.CreateDeleteOrderCommandHandler(),
		UpdateBotPosition: c.CreateUpdateBotPositionCommandHandler(),
		UpdateBotStatus:   c.CreateUpdateBotStatusCommandHandler(),
		GetOrders:         c.CreateGetOrdersQueryHandler(),
		GetOrder:          c.CreateGetOrderQueryHandler(),
		GetBots:           c.CreateGetBotsQueryHandler(),
		GetBot:            c.CreateGetBotQueryHandler(),
		GetRestaurants:    c.CreateGetRestaurantsQueryHandler(),
		GetRestaurant:     c.CreateGetRestaurantQueryHandler(),
		GetMapData:        c.CreateGetMapDataQueryHandler(),
		GetStats:          c.CreateGetStatsQueryHandler(),
		CalculateRoute:    c.CreateCalculateRouteQueryHandler(),
		Engine:            c.engine,
		Snapshots:         c.broadcaster,
		Registry:          c.simMetrics.Registry(),
		Logger:            c.logger,
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderBotUoWFactory = FuncOrderBotUoWFactory(func() commands.OrderBotUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderBotUoWFactory = FuncOrderBotUoWFactory(func() commands.OrderBotUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateBotPositionCommandHandler() commands.UpdateBotPositionCommandHandler {
	var f commands.BotUoWFactory = FuncBotUoWFactory(func() commands.BotUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateBotPositionCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateBotStatusCommandHandler() commands.UpdateBotStatusCommandHandler {
	var f commands.BotUoWFactory = FuncBotUoWFactory(func() commands.BotUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateBotStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetBotsQueryHandler() queries.GetBotsQueryHandler {
	return queries.NewGetBotsQueryHandler(c.bots)
}

func (c *CompositionRoot) CreateGetBotQueryHandler() queries.GetBotQueryHandler {
	return queries.NewGetBotQueryHandler(c.bots)
}

func (c *CompositionRoot) CreateGetRestaurantsQueryHandler() queries.GetRestaurantsQueryHandler {
	return queries.NewGetRestaurantsQueryHandler(c.restaurants)
}

func (c *CompositionRoot) CreateGetRestaurantQueryHandler() queries.GetRestaurantQueryHandler {
	return queries.NewGetRestaurantQueryHandler(c.restaurants)
}

func (c *CompositionRoot) CreateGetMapDataQueryHandler() queries.GetMapDataQueryHandler {
	return queries.NewGetMapDataQueryHandler(c.grids, c.restaurants, c.bots, seed.DeliveryPoints)
}

func (c *CompositionRoot) CreateGetStatsQueryHandler() queries.GetStatsQueryHandler {
	return queries.NewGetStatsQueryHandler(c.orders, c.bots)
}

func (c *CompositionRoot) CreateCalculateRouteQueryHandler() queries.CalculateRouteQueryHandler {
	return queries.NewCalculateRouteQueryHandler(c.grids, c.planner)
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

type FuncOrderBotUoWFactory func() commands.OrderBotUoW

func (f FuncOrderBotUoWFactory) Create() commands.OrderBotUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncBotUoWFactory func() commands.BotUoW

func (f FuncBotUoWFactory) Create() commands.BotUoW {
	return f()
}
