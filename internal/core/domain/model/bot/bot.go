package bot

import (
	"errors"
	"fmt"

	"fastroute/internal/core/domain/model/kernel"
	"fastroute/internal/pkg/errs"
	"fastroute/internal/pkg/guard"
)

// MaxActiveOrders is the carrying capacity of every bot.
const MaxActiveOrders = 3

// Domain errors for bot operations.
var (
	// ErrNameIsRequired is returned when attempting to create a bot without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrBotIsNotConstructed is returned when using an improperly initialized Bot.
	ErrBotIsNotConstructed = errors.New("Bot must be created via NewBot or RestoreBot constructors")
)

// ID identifies a bot in the fleet. Bots use small sequential integer ids
// rather than UUIDs; the fleet is tiny and fixed, and the ids double as
// stable display names.
type ID int

// Validate checks that the id is positive.
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidError("botId")
	}
	return nil
}

// Bot represents an autonomous delivery robot.
// It is an aggregate root that manages the bot's position on the grid and
// its active order load. A bot can carry at most MaxActiveOrders orders
// concurrently. Load changes drive the available/busy status automatically;
// returning and offline are set explicitly by operators.
type Bot struct {
	id              ID
	name            string
	status          Status
	location        kernel.Location
	activeOrders    int
	totalDeliveries int
	guard           guard.ConstructorGuard
}

// NewBot creates a new idle Bot at the given location.
func NewBot(id ID, name string, location kernel.Location) (*Bot, error) {
	b := &Bot{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setName(name),
		b.setLocation(location),
	); err != nil {
		return nil, err
	}

	b.status = StatusAvailable
	return b, nil
}

// RestoreBot reconstructs a Bot aggregate from persistent storage.
// Unlike NewBot it accepts the full persisted state, including the active
// order count and the delivery total, and validates consistency between
// the load and the capacity.
func RestoreBot(
	id ID,
	name string,
	status Status,
	location kernel.Location,
	activeOrders int,
	totalDeliveries int,
) (*Bot, error) {
	b := &Bot{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setName(name),
		b.setStatus(status),
		b.setLocation(location),
		b.setActiveOrders(activeOrders),
		b.setTotalDeliveries(totalDeliveries),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// Validate checks if the Bot was properly constructed.
func (b *Bot) Validate() error {
	return b.guard.Validate(ErrBotIsNotConstructed)
}

// ID returns the bot's identifier.
func (b *Bot) ID() ID {
	return b.id
}

// Name returns the bot's display name.
func (b *Bot) Name() string {
	return b.name
}

// Status returns the bot's current operational status.
func (b *Bot) Status() Status {
	return b.status
}

// Location returns the bot's current position on the grid.
func (b *Bot) Location() kernel.Location {
	return b.location
}

// ActiveOrders returns the number of orders the bot is currently carrying.
func (b *Bot) ActiveOrders() int {
	return b.activeOrders
}

// TotalDeliveries returns the number of orders the bot has delivered.
func (b *Bot) TotalDeliveries() int {
	return b.totalDeliveries
}

// CanTakeOrder reports whether the bot can accept another order.
// Eligibility depends on load alone; status does not gate assignment,
// so an offline bot with spare capacity is pressed back into service.
func (b *Bot) CanTakeOrder() bool {
	return b.activeOrders < MaxActiveOrders
}

// TakeOrder increments the bot's load and marks it busy.
// Returns an error if the bot is already at capacity.
func (b *Bot) TakeOrder() error {
	if err := b.Validate(); err != nil {
		return err
	}
	if !b.CanTakeOrder() {
		return errs.NewIllegalTransitionError("botId",
			fmt.Sprintf("bot %d cannot take an order: load is %d of %d",
				b.id, b.activeOrders, MaxActiveOrders))
	}

	b.activeOrders++
	b.status = StatusBusy
	return nil
}

// ReleaseOrder decrements the bot's load without counting a delivery.
// Used when an assigned order is cancelled. The bot becomes available
// again when its load reaches zero.
func (b *Bot) ReleaseOrder() error {
	if err := b.Validate(); err != nil {
		return err
	}
	if b.activeOrders == 0 {
		return errs.NewIllegalTransitionError("botId",
			fmt.Sprintf("bot %d has no active orders to release", b.id))
	}

	b.activeOrders--
	if b.activeOrders == 0 && b.status == StatusBusy {
		b.status = StatusAvailable
	}
	return nil
}

// CompleteDelivery decrements the bot's load and records a finished delivery.
// The bot becomes available again when its load reaches zero.
func (b *Bot) CompleteDelivery() error {
	if err := b.Validate(); err != nil {
		return err
	}
	if b.activeOrders == 0 {
		return errs.NewIllegalTransitionError("botId",
			fmt.Sprintf("bot %d has no active orders to complete", b.id))
	}

	b.activeOrders--
	b.totalDeliveries++
	if b.activeOrders == 0 && b.status == StatusBusy {
		b.status = StatusAvailable
	}
	return nil
}

// MoveTo places the bot at a new grid location.
func (b *Bot) MoveTo(location kernel.Location) error {
	if err := b.Validate(); err != nil {
		return err
	}
	return b.setLocation(location)
}

// SetStatus sets the bot's operational status explicitly.
// Used by operator endpoints to take bots offline or mark them returning.
func (b *Bot) SetStatus(status Status) error {
	if err := b.Validate(); err != nil {
		return err
	}
	return b.setStatus(status)
}

func (b *Bot) setID(id ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Bot) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	b.name = name
	return nil
}

func (b *Bot) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	b.status = status
	return nil
}

func (b *Bot) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	b.location = location
	return nil
}

func (b *Bot) setActiveOrders(n int) error {
	if n < 0 || n > MaxActiveOrders {
		return errs.NewValueIsOutOfRangeError("activeOrders", n, 0, MaxActiveOrders)
	}
	b.activeOrders = n
	return nil
}

func (b *Bot) setTotalDeliveries(n int) error {
	if n < 0 {
		return errs.NewValueIsInvalidError("totalDeliveries")
	}
	b.totalDeliveries = n
	return nil
}
