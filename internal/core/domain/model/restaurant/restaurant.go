// Package restaurant contains the Restaurant entity of the dispatch domain.
// Restaurants are the pickup endpoints of every order: each one sits on a
// fixed grid node and serves a single cuisine type.
package restaurant

import (
	"errors"
	"fmt"

	"fastroute/internal/core/domain/model/kernel"
	"fastroute/internal/pkg/errs"
	"fastroute/internal/pkg/guard"
)

// Domain errors for restaurant operations.
var (
	// ErrNameIsRequired is returned when attempting to create a restaurant without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrRestaurantIsNotConstructed is returned when using an improperly initialized Restaurant.
	ErrRestaurantIsNotConstructed = errors.New(
		"Restaurant must be created via NewRestaurant or RestoreRestaurant constructors")
)

// Type is the cuisine category of a restaurant.
// The string forms are the uppercase tokens used on the wire and in storage.
type Type string

const (
	TypeRamen Type = "RAMEN"
	TypeCurry Type = "CURRY"
	TypePizza Type = "PIZZA"
	TypeSushi Type = "SUSHI"
)

// ParseType converts an uppercase cuisine token into a Type value.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// Validate checks if the Type value is one of the known cuisines.
func (t Type) Validate() error {
	switch t {
	case TypeRamen, TypeCurry, TypePizza, TypeSushi:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"restaurantType is invalid",
			fmt.Errorf("%q is not a valid restaurant type", string(t)),
		)
	}
}

// String returns the uppercase token of the type.
func (t Type) String() string {
	return string(t)
}

// Restaurant is a pickup point fixed to a grid node.
// Inactive restaurants remain on the map but do not accept new orders.
type Restaurant struct {
	id       kernel.UUID
	name     string
	kind     Type
	nodeID   kernel.NodeID
	isActive bool
	guard    guard.ConstructorGuard
}

// NewRestaurant creates an active Restaurant at the given grid node.
func NewRestaurant(id kernel.UUID, name string, kind Type, nodeID kernel.NodeID) (*Restaurant, error) {
	r := &Restaurant{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setType(kind),
		r.setNodeID(nodeID),
	); err != nil {
		return nil, err
	}

	r.isActive = true
	return r, nil
}

// RestoreRestaurant reconstructs a Restaurant from persistent storage,
// including its activity flag.
func RestoreRestaurant(
	id kernel.UUID,
	name string,
	kind Type,
	nodeID kernel.NodeID,
	isActive bool,
) (*Restaurant, error) {
	r, err := NewRestaurant(id, name, kind, nodeID)
	if err != nil {
		return nil, err
	}

	r.isActive = isActive
	return r, nil
}

// Validate checks if the Restaurant was properly constructed.
func (r *Restaurant) Validate() error {
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

// ID returns the restaurant's identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// Name returns the restaurant's display name.
func (r *Restaurant) Name() string {
	return r.name
}

// Type returns the restaurant's cuisine type.
func (r *Restaurant) Type() Type {
	return r.kind
}

// NodeID returns the grid node the restaurant sits on.
func (r *Restaurant) NodeID() kernel.NodeID {
	return r.nodeID
}

// IsActive reports whether the restaurant currently accepts orders.
func (r *Restaurant) IsActive() bool {
	return r.isActive
}

// SetActive toggles whether the restaurant accepts new orders.
func (r *Restaurant) SetActive(active bool) error {
	if err := r.Validate(); err != nil {
		return err
	}
	r.isActive = active
	return nil
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	r.name = name
	return nil
}

func (r *Restaurant) setType(kind Type) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	r.kind = kind
	return nil
}

func (r *Restaurant) setNodeID(nodeID kernel.NodeID) error {
	if _, err := kernel.LocationFromNodeID(nodeID); err != nil {
		return err
	}
	r.nodeID = nodeID
	return nil
}
