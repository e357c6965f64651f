package http

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fastroute/internal/core/application/simulation"
	"fastroute/internal/core/application/usecases/commands"
	"fastroute/internal/core/application/usecases/queries"
)

// Dependencies carries everything the server needs. All handler fields are
// required; Registry may be nil to disable the /metrics endpoint.
type Dependencies struct {
	CreateOrder       commands.CreateOrderCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler
	CancelOrder       commands.CancelOrderCommandHandler
	DeleteOrder       commands.DeleteOrderCommandHandler
	UpdateBotPosition commands.UpdateBotPositionCommandHandler
	UpdateBotStatus   commands.UpdateBotStatusCommandHandler

	GetOrders      queries.GetOrdersQueryHandler
	GetOrder       queries.GetOrderQueryHandler
	GetBots        queries.GetBotsQueryHandler
	GetBot         queries.GetBotQueryHandler
	GetRestaurants queries.GetRestaurantsQueryHandler
	GetRestaurant  queries.GetRestaurantQueryHandler
	GetMapData     queries.GetMapDataQueryHandler
	GetStats       queries.GetStatsQueryHandler
	CalculateRoute queries.CalculateRouteQueryHandler

	Engine    *simulation.Engine
	Snapshots SnapshotSource

	Registry *prometheus.Registry
	Logger   *slog.Logger
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	deps   Dependencies
	logger *slog.Logger
}

// NewServer creates an HTTP server over the given application handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		deps:   deps,
		logger: deps.Logger.With("component", "http_server"),
	}
}

// RegisterRoutes mounts every endpoint on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.GET("/", s.home)
	e.GET("/health", s.health)

	orders := e.Group("/api/orders")
	orders.GET("", s.getAllOrders)
	orders.GET("/pending", s.getPendingOrders)
	orders.GET("/active", s.getActiveOrders)
	orders.GET("/:id", s.getOrder)
	orders.POST("", s.createOrder)
	orders.PUT("/:id/status/:status", s.updateOrderStatus)
	orders.POST("/:id/cancel", s.cancelOrder)
	orders.DELETE("/:id", s.deleteOrder)

	bots := e.Group("/api/bots")
	bots.GET("", s.getAllBots)
	bots.GET("/available", s.getAvailableBots)
	bots.GET("/:id", s.getBot)
	bots.PUT("/:id/position", s.updateBotPosition)
	bots.PUT("/:id/status/:status", s.updateBotStatus)

	restaurants := e.Group("/api/restaurants")
	restaurants.GET("", s.getAllRestaurants)
	restaurants.GET("/type/:type", s.getRestaurantsByType)
	restaurants.GET("/:id", s.getRestaurant)
	restaurants.GET("/:id/location", s.getRestaurantLocation)

	mapGroup := e.Group("/api/map")
	mapGroup.GET("/nodes", s.getMapNodes)
	mapGroup.GET("/blocked-paths", s.getBlockedPaths)
	mapGroup.GET("/data", s.getMapData)
	mapGroup.GET("/stats", s.getStats)
	mapGroup.GET("/route", s.calculateRoute)

	sim := e.Group("/api/simulation")
	sim.POST("/start/:id", s.startSimulation)
	sim.POST("/stop/:id", s.stopSimulation)
	sim.GET("/status", s.simulationStatus)
	sim.POST("/auto-start", s.autoStartSimulations)

	e.GET("/api/stream/orders", s.streamOrders)

	if s.deps.Registry != nil {
		e.GET("/metrics", echo.WrapHandler(
			promhttp.HandlerFor(s.deps.Registry, promhttp.HandlerOpts{}),
		))
	}
}

// ServiceInfoResponse describes the API for the root endpoint.
type ServiceInfoResponse struct {
	Name      string            `json:"name"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

func (s *Server) home(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, ServiceInfoResponse{
		Name:    "FastRoute Delivery Bot System",
		Version: "1.0.0",
		Endpoints: map[string]string{
			"orders":      "/api/orders",
			"bots":        "/api/bots",
			"restaurants": "/api/restaurants",
			"map":         "/api/map",
			"simulation":  "/api/simulation",
			"stream":      "/api/stream/orders",
		},
	})
}

func (s *Server) health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}
