package bot

import (
	"fmt"

	"fastroute/internal/pkg/errs"
)

// Status represents the operational state of a delivery bot.
// The string forms are the lowercase tokens used on the wire and in storage.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusAvailable means the bot is idle and can take new orders.
	StatusAvailable

	// StatusBusy means the bot is carrying at least one active order.
	StatusBusy

	// StatusReturning means the bot is heading back after its deliveries.
	StatusReturning

	// StatusOffline means the bot is out of service.
	StatusOffline
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusAvailable: "available",
		StatusBusy:      "busy",
		StatusReturning: "returning",
		StatusOffline:   "offline",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusAvailable: "available",
		StatusBusy:      "busy",
		StatusReturning: "returning",
		StatusOffline:   "offline",
	}
}

// ParseStatus converts a lowercase status token into a Status value.
// Returns an error for unrecognized tokens.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid bot status", s),
	)
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid bot status", s),
		)
	}
	return nil
}

// String returns the lowercase token of the status.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
