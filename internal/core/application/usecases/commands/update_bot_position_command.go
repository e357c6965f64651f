package commands

import (
	"errors"

	"fastroute/internal/core/domain/model/bot"
	"fastroute/internal/core/domain/model/kernel"
	"fastroute/internal/pkg/guard"
)

var ErrUpdateBotPositionCommandIsNotConstructed = errors.New(
	"UpdateBotPositionCommand must be created via NewUpdateBotPositionCommand constructor",
)

// UpdateBotPositionCommand represents an operator request to place a bot
// at a specific grid cell.
type UpdateBotPositionCommand struct { //nolint:recvcheck //using for validation
	botID    bot.ID
	position kernel.Location

	guard guard.ConstructorGuard
}

// NewUpdateBotPositionCommand creates a command to reposition a bot.
func NewUpdateBotPositionCommand(botID bot.ID, x, y kernel.Coordinate) (UpdateBotPositionCommand, error) {
	cmd := UpdateBotPositionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBotID(botID),
		cmd.setPosition(x, y),
	); err != nil {
		return UpdateBotPositionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateBotPositionCommand) Validate() error {
	return c.guard.Validate(ErrUpdateBotPositionCommandIsNotConstructed)
}

// BotID returns the identifier of the bot to move.
func (c UpdateBotPositionCommand) BotID() bot.ID {
	return c.botID
}

// Position returns the validated target cell.
func (c UpdateBotPositionCommand) Position() kernel.Location {
	return c.position
}

func (c *UpdateBotPositionCommand) setBotID(botID bot.ID) error {
	if err := botID.Validate(); err != nil {
		return err
	}

	c.botID = botID
	return nil
}

func (c *UpdateBotPositionCommand) setPosition(x, y kernel.Coordinate) error {
	location, err := kernel.NewLocation(x, y)
	if err != nil {
		return err
	}

	c.position = location
	return nil
}
