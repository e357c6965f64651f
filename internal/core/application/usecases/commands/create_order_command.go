package commands

import (
	"errors"

	"fastroute/internal/core/domain/model/kernel"
	"fastroute/internal/pkg/errs"
	"fastroute/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerNameIsRequired = errors.New("customer name is required")
)

// CreateOrderCommand represents a request to place a new delivery order at
// a restaurant. The delivery destination is given as raw grid coordinates;
// range validation happens in the constructor so a malformed request never
// reaches the handler.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerName    string
	customerAddress string
	restaurantID    kernel.UUID
	delivery        kernel.Location

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// The customer address is optional free text appended to the generated
// grid address; deliveryX and deliveryY must be valid grid coordinates.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerName string,
	customerAddress string,
	restaurantID kernel.UUID,
	deliveryX kernel.Coordinate,
	deliveryY kernel.Coordinate,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerName(customerName),
		cmd.setRestaurantID(restaurantID),
		cmd.setDelivery(deliveryX, deliveryY),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.customerAddress = customerAddress
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerName returns the name of the ordering customer.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerAddress returns the optional free-text address note.
func (c CreateOrderCommand) CustomerAddress() string {
	return c.customerAddress
}

// RestaurantID returns the identifier of the restaurant the order is placed at.
func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Delivery returns the validated delivery destination.
func (c CreateOrderCommand) Delivery() kernel.Location {
	return c.delivery
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = name
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantId", err)
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setDelivery(x, y kernel.Coordinate) error {
	location, err := kernel.NewLocation(x, y)
	if err != nil {
		return err
	}

	c.delivery = location
	return nil
}
