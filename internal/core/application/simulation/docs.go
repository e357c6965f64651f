// Package simulation drives assigned orders to completion. The engine runs
// one goroutine per order: the bot walks the shortest path to the pickup
// node one cell per tick, collects the order, dwells one tick, walks to the
// delivery node, and completes the delivery. Runs are registered in the
// engine so each order simulates at most once at a time and all runs can be
// stopped cooperatively.
package simulation
