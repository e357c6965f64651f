package commands

import (
	"errors"

	"fastroute/internal/core/domain/model/bot"
	"fastroute/internal/pkg/guard"
)

var ErrUpdateBotStatusCommandIsNotConstructed = errors.New(
	"UpdateBotStatusCommand must be created via NewUpdateBotStatusCommand constructor",
)

// UpdateBotStatusCommand represents an operator request to change a bot's
// operational status, for example taking it offline for maintenance.
type UpdateBotStatusCommand struct { //nolint:recvcheck //using for validation
	botID  bot.ID
	status bot.Status

	guard guard.ConstructorGuard
}

// NewUpdateBotStatusCommand creates a command to change a bot's status.
func NewUpdateBotStatusCommand(botID bot.ID, status bot.Status) (UpdateBotStatusCommand, error) {
	cmd := UpdateBotStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBotID(botID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateBotStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateBotStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateBotStatusCommandIsNotConstructed)
}

// BotID returns the identifier of the bot to update.
func (c UpdateBotStatusCommand) BotID() bot.ID {
	return c.botID
}

// Status returns the target operational status.
func (c UpdateBotStatusCommand) Status() bot.Status {
	return c.status
}

func (c *UpdateBotStatusCommand) setBotID(botID bot.ID) error {
	if err := botID.Validate(); err != nil {
		return err
	}

	c.botID = botID
	return nil
}

func (c *UpdateBotStatusCommand) setStatus(status bot.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
