// Package order contains the Order aggregate and its lifecycle state machine.
//
// An order walks a fixed pipeline from pending through assignment, pickup,
// and delivery, with cancellation possible from any non-terminal state.
// The aggregate keeps the bot assignment, the route metadata, and the
// lifecycle timestamps consistent with the status at every step. All status
// changes go through transition methods; there is no way to set an arbitrary
// status on a constructed order.
package order
