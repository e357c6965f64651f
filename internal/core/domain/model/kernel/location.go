package kernel

import (
	"errors"
	"fmt"

	"fastroute/internal/pkg/errs"
	"fastroute/internal/pkg/guard"
)

// Coordinate represents a position value on the delivery grid.
// Valid coordinates range from CoordinateMin to CoordinateMax inclusive.
type Coordinate int8

const (
	// CoordinateMin is the minimum valid coordinate on either grid axis.
	CoordinateMin Coordinate = 0
	// CoordinateMax is the maximum valid coordinate on either grid axis.
	CoordinateMax Coordinate = 8
	// GridSize is the number of cells along each grid axis.
	GridSize = 9
)

// ErrLocationIsNotConstructed is returned when attempting to use an improperly
// initialized Location. Locations must be created via NewLocation or
// LocationFromNodeID to ensure validity.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation or LocationFromNodeID constructors")

// Location represents a cell on the 9x9 delivery grid with validated coordinates.
// Location is an immutable value object; the zero value is invalid and will fail
// validation - use the constructors to create instances.
type Location struct { //nolint:recvcheck //using for validation
	x     Coordinate
	y     Coordinate
	guard guard.ConstructorGuard
}

// NewLocation creates a new Location with the specified coordinates.
// Both x and y must be within [CoordinateMin..CoordinateMax] or an
// out-of-range error is returned.
func NewLocation(x Coordinate, y Coordinate) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setX(x), loc.setY(y)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate checks if the Location was properly constructed using a constructor.
// The zero value of Location is invalid and will fail this validation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// X returns the X coordinate of the location.
func (l Location) X() Coordinate {
	return l.x
}

// Y returns the Y coordinate of the location.
func (l Location) Y() Coordinate {
	return l.y
}

// String returns a human-readable representation in the format "Location(x,y)".
func (l Location) String() string {
	return fmt.Sprintf("Location(%d,%d)", l.x, l.y)
}

// IsEqual compares two locations for equality by coordinates.
// Both locations must be properly constructed for the comparison to succeed.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l == other, nil
}

// Distance calculates the Manhattan distance between two locations:
// |x1-x2| + |y1-y2|. This is the exact shortest-path length on an
// unobstructed grid restricted to horizontal and vertical steps, which is
// what makes it an admissible and consistent A* heuristic for this grid.
func (l Location) Distance(other Location) (int, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	dx := abs(l.x - other.x)
	dy := abs(l.y - other.y)
	return int(dx + dy), nil
}

// setX sets the x coordinate with validation.
// Pointer receiver is used intentionally for self-encapsulated validation
// during construction, while all public methods use value receivers.
func (l *Location) setX(x Coordinate) error {
	if x < CoordinateMin || x > CoordinateMax {
		return errs.NewValueIsOutOfRangeError("x", x, CoordinateMin, CoordinateMax)
	}

	l.x = x
	return nil
}

// setY sets the y coordinate with validation.
func (l *Location) setY(y Coordinate) error {
	if y < CoordinateMin || y > CoordinateMax {
		return errs.NewValueIsOutOfRangeError("y", y, CoordinateMin, CoordinateMax)
	}

	l.y = y
	return nil
}

func abs(x Coordinate) Coordinate {
	if x < 0 {
		return -x
	}
	return x
}
