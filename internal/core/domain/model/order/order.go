package order

import (
	"errors"
	"fmt"
	"time"

	"fastroute/internal/core/domain/model/bot"
	"fastroute/internal/core/domain/model/kernel"
	"fastroute/internal/pkg/errs"
	"fastroute/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrCustomerNameIsRequired is returned when attempting to create an order without a customer name.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customerName")
	// ErrCustomerAddressIsRequired is returned when attempting to create an order without a customer address.
	ErrCustomerAddressIsRequired = errs.NewValueIsRequiredError("customerAddress")
	// ErrCreatedAtIsRequired is returned when attempting to create an order without a creation time.
	ErrCreatedAtIsRequired = errs.NewValueIsRequiredError("createdAt")
	// ErrOrderIsNotConstructed is returned when using an improperly initialized Order.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructors")
)

// Order represents a customer delivery order.
// It is the aggregate root of the order lifecycle: a state machine that walks
// the order from pending through assignment, pickup, and delivery to a
// terminal state. All transitions go through the named methods, which keep
// the bot assignment, the timestamps, and the status consistent.
//
// Invariant: an order has a bot exactly while its status is one of the
// assigned, picking_up, picked_up, delivering, or delivered states.
// Cancellation releases the bot.
type Order struct {
	id              kernel.UUID
	customerName    string
	customerAddress string
	pickupNodeID    kernel.NodeID
	deliveryNodeID  kernel.NodeID
	restaurantID    kernel.UUID
	botID           *bot.ID
	status          Status
	estimatedTime   *int
	routeDistance   *int
	createdAt       time.Time
	assignedAt      *time.Time
	deliveredAt     *time.Time
	guard           guard.ConstructorGuard
}

// NewOrder creates a pending Order.
// The customer address must already be formatted; createdAt is taken as a
// parameter rather than read from the clock so the rate limit window can be
// exercised deterministically.
func NewOrder(
	id kernel.UUID,
	customerName string,
	customerAddress string,
	pickupNodeID kernel.NodeID,
	deliveryNodeID kernel.NodeID,
	restaurantID kernel.UUID,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerName(customerName),
		o.setCustomerAddress(customerAddress),
		o.setPickupNodeID(pickupNodeID),
		o.setDeliveryNodeID(deliveryNodeID),
		o.setRestaurantID(restaurantID),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	o.status = StatusPending
	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// validating the consistency between the status and the bot assignment.
func RestoreOrder(
	id kernel.UUID,
	customerName string,
	customerAddress string,
	pickupNodeID kernel.NodeID,
	deliveryNodeID kernel.NodeID,
	restaurantID kernel.UUID,
	botID *bot.ID,
	status Status,
	estimatedTime *int,
	routeDistance *int,
	createdAt time.Time,
	assignedAt *time.Time,
	deliveredAt *time.Time,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerName(customerName),
		o.setCustomerAddress(customerAddress),
		o.setPickupNodeID(pickupNodeID),
		o.setDeliveryNodeID(deliveryNodeID),
		o.setRestaurantID(restaurantID),
		o.setCreatedAt(createdAt),
		status.Validate(),
		validateBotAssignment(status, botID),
	); err != nil {
		return nil, err
	}

	if botID != nil {
		id := *botID
		if err := id.Validate(); err != nil {
			return nil, err
		}
		o.botID = &id
	}

	o.status = status
	o.estimatedTime = estimatedTime
	o.routeDistance = routeDistance
	o.assignedAt = assignedAt
	o.deliveredAt = deliveredAt
	return o, nil
}

// validateBotAssignment enforces the status/bot consistency invariant.
func validateBotAssignment(status Status, botID *bot.ID) error {
	hasBot := botID != nil

	if hasBot && !status.IsActive() && status != StatusDelivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"botId is invalid",
			fmt.Errorf("%s is not a valid status to have a bot", status),
		)
	}
	if !hasBot && (status.IsActive() || status == StatusDelivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"botId is invalid",
			fmt.Errorf("%s is not a valid status to have no bot", status),
		)
	}
	return nil
}

// Validate checks if the Order was properly constructed.
func (o *Order) Validate() error {
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order's identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerName returns the name of the customer.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerAddress returns the formatted delivery address.
func (o *Order) CustomerAddress() string {
	return o.customerAddress
}

// PickupNodeID returns the grid node of the restaurant.
func (o *Order) PickupNodeID() kernel.NodeID {
	return o.pickupNodeID
}

// DeliveryNodeID returns the grid node of the customer.
func (o *Order) DeliveryNodeID() kernel.NodeID {
	return o.deliveryNodeID
}

// RestaurantID returns the identifier of the restaurant the order was placed at.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// BotID returns the id of the assigned bot, or nil while the order is
// pending or after cancellation.
func (o *Order) BotID() *bot.ID {
	if o.botID == nil {
		return nil
	}
	id := *o.botID
	return &id
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// EstimatedTime returns the estimated delivery time in seconds, or nil if
// no route has been planned yet.
func (o *Order) EstimatedTime() *int {
	return o.estimatedTime
}

// RouteDistance returns the planned route length in grid steps, or nil if
// no route has been planned yet.
func (o *Order) RouteDistance() *int {
	return o.routeDistance
}

// CreatedAt returns the creation time of the order.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AssignedAt returns the time the order was assigned to a bot, or nil.
func (o *Order) AssignedAt() *time.Time {
	return o.assignedAt
}

// DeliveredAt returns the time the order was delivered, or nil.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// Assign attaches a bot to a pending order and moves it to the assigned status.
func (o *Order) Assign(botID bot.ID, at time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := botID.Validate(); err != nil {
		return err
	}

	next, err := o.status.TransitionTo(StatusAssigned)
	if err != nil {
		return err
	}

	o.status = next
	o.botID = &botID
	o.assignedAt = &at
	return nil
}

// StartPickup moves an assigned order to the picking_up status.
func (o *Order) StartPickup() error {
	return o.transition(StatusPickingUp)
}

// PickUp marks the order as collected at the restaurant.
func (o *Order) PickUp() error {
	return o.transition(StatusPickedUp)
}

// StartDelivery moves a picked up order to the delivering status.
func (o *Order) StartDelivery() error {
	return o.transition(StatusDelivering)
}

// Deliver marks the order as delivered to the customer. Final state.
func (o *Order) Deliver(at time.Time) error {
	if err := o.transition(StatusDelivered); err != nil {
		return err
	}
	o.deliveredAt = &at
	return nil
}

// Cancel moves the order to the cancelled status and releases the bot.
// Cancellation is allowed from any non-terminal state.
func (o *Order) Cancel() error {
	if err := o.transition(StatusCancelled); err != nil {
		return err
	}
	o.botID = nil
	return nil
}

// SetRoute records the planned route metadata on the order.
func (o *Order) SetRoute(distance int, estimatedTime int) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if distance < 0 {
		return errs.NewValueIsInvalidError("routeDistance")
	}
	if estimatedTime < 0 {
		return errs.NewValueIsInvalidError("estimatedTime")
	}

	o.routeDistance = &distance
	o.estimatedTime = &estimatedTime
	return nil
}

func (o *Order) transition(target Status) error {
	if err := o.Validate(); err != nil {
		return err
	}

	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = next
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}
	o.customerName = name
	return nil
}

func (o *Order) setCustomerAddress(address string) error {
	if address == "" {
		return ErrCustomerAddressIsRequired
	}
	o.customerAddress = address
	return nil
}

func (o *Order) setPickupNodeID(nodeID kernel.NodeID) error {
	if _, err := kernel.LocationFromNodeID(nodeID); err != nil {
		return err
	}
	o.pickupNodeID = nodeID
	return nil
}

func (o *Order) setDeliveryNodeID(nodeID kernel.NodeID) error {
	if _, err := kernel.LocationFromNodeID(nodeID); err != nil {
		return err
	}
	o.deliveryNodeID = nodeID
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return ErrCreatedAtIsRequired
	}
	o.createdAt = createdAt
	return nil
}
