package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrRemoveBoxCommandIsNotConstructed = errors.New(
		"RemoveBoxCommand must be created via NewRemoveBoxCommand constructor",
	)
)

// RemoveBoxCommand represents a request to delete a box that is still being
// assembled. Sealed and shipped boxes are immutable history and cannot be
// deleted.
type RemoveBoxCommand struct { //nolint:recvcheck //using for validation
	boxID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveBoxCommand creates a command to delete a box.
func NewRemoveBoxCommand(boxID kernel.UUID) (RemoveBoxCommand, error) {
	cmd := RemoveBoxCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setBoxID(boxID); err != nil {
		return RemoveBoxCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveBoxCommand) Validate() error {
	return c.guard.Validate(ErrRemoveBoxCommandIsNotConstructed)
}

// BoxID returns the identifier of the box to delete.
func (c RemoveBoxCommand) BoxID() kernel.UUID {
	return c.boxID
}

func (c *RemoveBoxCommand) setBoxID(boxID kernel.UUID) error {
	if err := boxID.Validate(); err != nil {
		return err
	}

	c.boxID = boxID
	return nil
}
