// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// and persistence.
package commands

import (
	"context"

	"fastroute/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// BotRepoFactory provides access to the bot repository within a transaction.
	BotRepoFactory interface {
		BotRepository() ports.BotRepository
	}

	// RestaurantRepoFactory provides access to the restaurant repository within a transaction.
	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// BotUoW manages transactions for bot-only operations.
	BotUoW interface {
		TxManager
		BotRepoFactory
	}

	// BotUoWFactory creates new bot unit of work instances.
	BotUoWFactory interface {
		Create() BotUoW
	}

	// OrderBotUoW manages transactions that touch orders and bots together,
	// such as cancellation releasing the assigned bot.
	OrderBotUoW interface {
		TxManager
		OrderRepoFactory
		BotRepoFactory
	}

	// OrderBotUoWFactory creates new order/bot unit of work instances.
	OrderBotUoWFactory interface {
		Create() OrderBotUoW
	}

	// DispatchUoW manages transactions for order creation, which reads the
	// restaurant, writes the order, and updates the dispatched bot.
	DispatchUoW interface {
		TxManager
		OrderRepoFactory
		BotRepoFactory
		RestaurantRepoFactory
	}

	// DispatchUoWFactory creates new dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}
)
