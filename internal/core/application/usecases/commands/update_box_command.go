package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/box"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrUpdateBoxCommandIsNotConstructed = errors.New(
		"UpdateBoxCommand must be created via NewUpdateBoxCommand constructor",
	)
)

// BoxPatch describes a partial update of a box. Fields left nil are not
// touched. These are the only fields reachable through update: membership is
// never patched, only changed through the dedicated membership operations.
type BoxPatch struct {
	Label  *string
	Status *box.Status
}

// UpdateBoxCommand represents a request to change a box's label and/or status.
// A requested status change is validated against the lifecycle state machine
// before any write; requesting the current status is a no-op.
type UpdateBoxCommand struct { //nolint:recvcheck //using for validation
	boxID kernel.UUID
	patch BoxPatch

	guard guard.ConstructorGuard
}

// NewUpdateBoxCommand creates a command to patch a box.
func NewUpdateBoxCommand(boxID kernel.UUID, patch BoxPatch) (UpdateBoxCommand, error) {
	cmd := UpdateBoxCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setBoxID(boxID); err != nil {
		return UpdateBoxCommand{}, err
	}

	if patch.Status != nil {
		if err := patch.Status.Validate(); err != nil {
			return UpdateBoxCommand{}, err
		}
	}

	cmd.patch = patch
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateBoxCommand) Validate() error {
	return c.guard.Validate(ErrUpdateBoxCommandIsNotConstructed)
}

// BoxID returns the target box identifier.
func (c UpdateBoxCommand) BoxID() kernel.UUID {
	return c.boxID
}

// Patch returns the requested field changes.
func (c UpdateBoxCommand) Patch() BoxPatch {
	return c.patch
}

func (c *UpdateBoxCommand) setBoxID(boxID kernel.UUID) error {
	if err := boxID.Validate(); err != nil {
		return err
	}

	c.boxID = boxID
	return nil
}
