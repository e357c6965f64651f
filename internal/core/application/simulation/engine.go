package simulation

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"fastroute/internal/core/domain/model/bot"
	"fastroute/internal/core/domain/model/grid"
	"fastroute/internal/core/domain/model/kernel"
	"fastroute/internal/core/domain/model/order"
	"fastroute/internal/core/domain/services"
	"fastroute/internal/core/ports"
	"fastroute/internal/pkg/errs"
)

var (
	// ErrSimulationAlreadyRunning is returned by Start when the order
	// already has a live run. Maps to HTTP 409 at the transport boundary.
	ErrSimulationAlreadyRunning = errors.New("simulation is already running for this order")

	// errRunAbandoned signals that the order left the expected state
	// while the run was in flight, usually because it was cancelled
	// through the API. The run stops without touching anything else.
	errRunAbandoned = errors.New("order left the expected state")
)

// DefaultTickInterval is the time a bot spends moving one cell.
const DefaultTickInterval = time.Second

type run struct {
	orderID kernel.UUID
	cancel  context.CancelFunc
	done    chan struct{}
}

// Engine owns the set of live simulation runs. Every mutation a run makes
// goes through a short unit of work, so the streaming layer never observes
// a half-applied tick; the tick sleep always happens outside a transaction.
type Engine struct {
	uowFactory ports.UnitOfWorkFactory
	orders     ports.OrderRepository
	bots       ports.BotRepository
	grids      ports.GridRepository
	planner    services.RoutePlanner
	metrics    MetricsSink
	logger     *slog.Logger
	tick       time.Duration

	mu   sync.Mutex
	runs map[string]*run
	wg   sync.WaitGroup
}

// NewEngine creates a simulation engine. A zero or negative tick falls back
// to DefaultTickInterval; tests pass a short tick to run in real time.
func NewEngine(
	uowFactory ports.UnitOfWorkFactory,
	orders ports.OrderRepository,
	bots ports.BotRepository,
	grids ports.GridRepository,
	planner services.RoutePlanner,
	metrics MetricsSink,
	logger *slog.Logger,
	tick time.Duration,
) *Engine {
	if tick <= 0 {
		tick = DefaultTickInterval
	}
	if metrics == nil {
		metrics = NopMetrics{}
	}

	return &Engine{
		uowFactory: uowFactory,
		orders:     orders,
		bots:       bots,
		grids:      grids,
		planner:    planner,
		metrics:    metrics,
		logger:     logger.With("component", "simulation_engine"),
		tick:       tick,
		runs:       make(map[string]*run),
	}
}

// Start validates the order and launches its run. The order must exist,
// must not be in a terminal state, must have a bot assigned, and must not
// already be simulating.
func (e *Engine) Start(ctx context.Context, orderID kernel.UUID) error {
	o, err := e.orders.Get(ctx, orderID)
	if err != nil {
		return err
	}

	if o.Status().IsTerminal() {
		return errs.NewIllegalTransitionError(
			"order", "order is already completed or cancelled",
		)
	}

	if o.BotID() == nil {
		return errs.NewIllegalTransitionError(
			"order", "order has no bot assigned",
		)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	key := orderID.String()
	if _, running := e.runs[key]; running {
		return ErrSimulationAlreadyRunning
	}

	runCtx, cancel := context.WithCancel(context.Background())
	r := &run{
		orderID: orderID,
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	e.runs[key] = r

	e.metrics.RunStarted()
	e.wg.Add(1)
	go e.runOrder(runCtx, r)

	e.logger.InfoContext(ctx, "Simulation started", "order_id", key)
	return nil
}

// Stop cancels the run for the order. Returns false when no run was live.
// The goroutine exits at its next tick boundary.
func (e *Engine) Stop(orderID kernel.UUID) bool {
	e.mu.Lock()
	r, ok := e.runs[orderID.String()]
	e.mu.Unlock()

	if !ok {
		return false
	}

	r.cancel()
	return true
}

// ActiveOrders returns the ids of all orders with a live run, sorted.
func (e *Engine) ActiveOrders() []kernel.UUID {
	e.mu.Lock()
	defer e.mu.Unlock()

	ids := make([]kernel.UUID, 0, len(e.runs))
	for _, r := range e.runs {
		ids = append(ids, r.orderID)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})
	return ids
}

// AutoStart launches runs for every assigned order that is not already
// simulating. Returns the ids of the orders it started.
func (e *Engine) AutoStart(ctx context.Context) ([]kernel.UUID, error) {
	assigned, err := e.orders.GetAllInStatus(ctx, order.StatusAssigned)
	if err != nil {
		return nil, err
	}

	started := make([]kernel.UUID, 0, len(assigned))
	for _, o := range assigned {
		err := e.Start(ctx, o.ID())
		if errors.Is(err, ErrSimulationAlreadyRunning) {
			continue
		}
		if err != nil {
			return started, err
		}
		started = append(started, o.ID())
	}

	return started, nil
}

// Shutdown cancels every run and waits for the goroutines to drain, or
// gives up when the context expires.
func (e *Engine) Shutdown(ctx context.Context) error {
	e.mu.Lock()
	for _, r := range e.runs {
		r.cancel()
	}
	e.mu.Unlock()

	drained := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(drained)
	}()

	select {
	case <-drained:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Wait blocks until the run for the order finishes. Returns false when no
// run was live. Intended for tests and graceful shutdown paths.
func (e *Engine) Wait(orderID kernel.UUID) bool {
	e.mu.Lock()
	r, ok := e.runs[orderID.String()]
	e.mu.Unlock()

	if !ok {
		return false
	}

	<-r.done
	return true
}

func (e *Engine) runOrder(ctx context.Context, r *run) {
	outcome := OutcomeFailed

	defer func() {
		e.mu.Lock()
		delete(e.runs, r.orderID.String())
		e.mu.Unlock()

		e.metrics.RunFinished(outcome)
		close(r.done)
		e.wg.Done()
	}()

	err := e.deliver(ctx, r.orderID)
	switch {
	case err == nil:
		outcome = OutcomeDelivered
	case errors.Is(err, context.Canceled):
		outcome = OutcomeStopped
		e.logger.Info("Simulation stopped", "order_id", r.orderID.String())
	case errors.Is(err, errRunAbandoned):
		outcome = OutcomeStopped
		e.logger.Info("Simulation abandoned, order left the pipeline",
			"order_id", r.orderID.String())
	default:
		e.logger.Error("Simulation run failed",
			"order_id", r.orderID.String(), "error", err)
	}
}

// deliver walks the order through its remaining lifecycle phases. An order
// resumed mid-flight (after a stop or restart) picks up where it left off.
func (e *Engine) deliver(ctx context.Context, orderID kernel.UUID) error {
	g, err := e.grids.Get(ctx)
	if err != nil {
		return err
	}

	status, err := e.currentStatus(ctx, orderID)
	if err != nil {
		return err
	}

	if status == order.StatusAssigned {
		if err := e.transition(ctx, orderID, (*order.Order).StartPickup); err != nil {
			return err
		}
	}

	if status, statusErr := e.currentStatus(ctx, orderID); statusErr != nil {
		return statusErr
	} else if status == order.StatusPickingUp {
		if err := e.walkPhase(ctx, g, orderID, pickupTarget); err != nil {
			return err
		}
		if err := e.transition(ctx, orderID, (*order.Order).PickUp); err != nil {
			return err
		}
		// The bot spends one tick collecting the order at the counter.
		if err := e.sleepTick(ctx); err != nil {
			return err
		}
	}

	if status, statusErr := e.currentStatus(ctx, orderID); statusErr != nil {
		return statusErr
	} else if status == order.StatusPickedUp {
		if err := e.transition(ctx, orderID, (*order.Order).StartDelivery); err != nil {
			return err
		}
	}

	if status, statusErr := e.currentStatus(ctx, orderID); statusErr != nil {
		return statusErr
	} else if status == order.StatusDelivering {
		if err := e.walkPhase(ctx, g, orderID, deliveryTarget); err != nil {
			return err
		}
		return e.complete(ctx, orderID)
	}

	return errRunAbandoned
}

func pickupTarget(o *order.Order) kernel.NodeID   { return o.PickupNodeID() }
func deliveryTarget(o *order.Order) kernel.NodeID { return o.DeliveryNodeID() }

// walkPhase moves the order's bot to the target node one cell per tick.
// The route is planned once from the bot's current position; each step is
// committed in its own transaction with the sleep taken outside it.
func (e *Engine) walkPhase(
	ctx context.Context,
	g *grid.Grid,
	orderID kernel.UUID,
	target func(*order.Order) kernel.NodeID,
) error {
	o, err := e.orders.Get(ctx, orderID)
	if err != nil {
		return err
	}
	if o.BotID() == nil {
		return errRunAbandoned
	}
	botID := *o.BotID()

	b, err := e.bots.Get(ctx, botID)
	if err != nil {
		return err
	}

	to, err := kernel.LocationFromNodeID(target(o))
	if err != nil {
		return err
	}

	route, err := e.planner.FindRoute(g, b.Location(), to)
	if err != nil {
		return err
	}

	if err := e.recordRoute(ctx, g, orderID, o, b.Location(), route); err != nil {
		return err
	}

	for _, cell := range route.Path[1:] {
		if err := e.sleepTick(ctx); err != nil {
			return err
		}
		if err := e.step(ctx, orderID, botID, cell); err != nil {
			return err
		}
		e.metrics.TickRecorded()
	}

	return nil
}

// recordRoute fills the order's route metadata the first time a route is
// planned for it: the full trip is the leg to the restaurant plus the leg
// from the restaurant to the customer.
func (e *Engine) recordRoute(
	ctx context.Context,
	g *grid.Grid,
	orderID kernel.UUID,
	o *order.Order,
	botAt kernel.Location,
	leg services.Route,
) error {
	if o.RouteDistance() != nil {
		return nil
	}

	total := leg.Distance
	if o.Status() == order.StatusPickingUp {
		pickupAt, err := kernel.LocationFromNodeID(o.PickupNodeID())
		if err != nil {
			return err
		}
		deliveryAt, err := kernel.LocationFromNodeID(o.DeliveryNodeID())
		if err != nil {
			return err
		}

		deliveryLeg, err := e.planner.FindRoute(g, pickupAt, deliveryAt)
		if err != nil {
			return err
		}
		total += deliveryLeg.Distance
	}

	return e.inTx(ctx, func(uow ports.UnitOfWork) error {
		current, err := uow.OrderRepository().Get(ctx, orderID)
		if err != nil {
			return err
		}
		if err := current.SetRoute(total, total); err != nil {
			return err
		}
		return uow.OrderRepository().Update(ctx, current)
	})
}

// step commits one cell of movement. The order is re-read inside the
// transaction so a run whose order was cancelled externally stops at the
// next boundary instead of dragging the bot around.
func (e *Engine) step(ctx context.Context, orderID kernel.UUID, botID bot.ID, cell kernel.Location) error {
	return e.inTx(ctx, func(uow ports.UnitOfWork) error {
		o, err := uow.OrderRepository().Get(ctx, orderID)
		if err != nil {
			return err
		}
		if o.Status().IsTerminal() {
			return errRunAbandoned
		}

		b, err := uow.BotRepository().Get(ctx, botID)
		if err != nil {
			return err
		}
		if err := b.MoveTo(cell); err != nil {
			return err
		}
		return uow.BotRepository().Update(ctx, b)
	})
}

// transition applies one order state change in its own transaction.
func (e *Engine) transition(
	ctx context.Context,
	orderID kernel.UUID,
	apply func(*order.Order) error,
) error {
	return e.inTx(ctx, func(uow ports.UnitOfWork) error {
		o, err := uow.OrderRepository().Get(ctx, orderID)
		if err != nil {
			return err
		}
		if err := apply(o); err != nil {
			return err
		}
		return uow.OrderRepository().Update(ctx, o)
	})
}

// complete marks the order delivered and settles the bot in one
// transaction: active load drops, the delivery counter grows, and the bot
// becomes available again when nothing else is on board.
func (e *Engine) complete(ctx context.Context, orderID kernel.UUID) error {
	return e.inTx(ctx, func(uow ports.UnitOfWork) error {
		o, err := uow.OrderRepository().Get(ctx, orderID)
		if err != nil {
			return err
		}
		if o.Status() != order.StatusDelivering || o.BotID() == nil {
			return errRunAbandoned
		}
		botID := *o.BotID()

		if err := o.Deliver(time.Now().UTC()); err != nil {
			return err
		}
		if err := uow.OrderRepository().Update(ctx, o); err != nil {
			return err
		}

		b, err := uow.BotRepository().Get(ctx, botID)
		if err != nil {
			return err
		}
		if err := b.CompleteDelivery(); err != nil {
			return err
		}
		return uow.BotRepository().Update(ctx, b)
	})
}

func (e *Engine) currentStatus(ctx context.Context, orderID kernel.UUID) (order.Status, error) {
	o, err := e.orders.Get(ctx, orderID)
	if err != nil {
		return order.StatusUnknown, err
	}
	return o.Status(), nil
}

func (e *Engine) sleepTick(ctx context.Context) error {
	timer := time.NewTimer(e.tick)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (e *Engine) inTx(ctx context.Context, fn func(uow ports.UnitOfWork) error) error {
	uow := e.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	if err := fn(uow); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
