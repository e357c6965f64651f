// Package bot contains the Bot aggregate of the fleet domain.
//
// A Bot is an autonomous delivery robot that moves one grid cell per
// simulation tick and carries up to three orders at a time. Its load
// drives the available/busy status transitions, while the returning and
// offline statuses are operator-controlled. The aggregate enforces the
// capacity invariant and keeps the delivery counter consistent with the
// order lifecycle.
package bot
