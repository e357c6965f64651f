package commands

import (
	"fmt"

	"fastroute/internal/core/domain/model/kernel"
)

// FormatAddress builds the canonical customer address for a delivery cell.
// The grid part is "L" followed by the y then x coordinate, e.g. "L80" for
// the cell (0,8). A non-empty free-text note is appended after " - ".
func FormatAddress(delivery kernel.Location, note string) string {
	address := fmt.Sprintf("L%d%d", delivery.Y(), delivery.X())
	if note != "" {
		address = fmt.Sprintf("%s - %s", address, note)
	}
	return address
}
