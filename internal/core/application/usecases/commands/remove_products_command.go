package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrRemoveProductsCommandIsNotConstructed = errors.New(
		"RemoveProductsCommand must be created via NewRemoveProductsCommand constructor",
	)
)

// RemoveProductsCommand represents a request to detach products from a box
// that is still being assembled. Ids are processed sequentially in the given
// order; a duplicate id fails on its second occurrence as no longer being in
// the box.
type RemoveProductsCommand struct { //nolint:recvcheck //using for validation
	boxID      kernel.UUID
	productIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveProductsCommand creates a command to detach products from a box.
func NewRemoveProductsCommand(boxID kernel.UUID, productIDs []kernel.UUID) (RemoveProductsCommand, error) {
	cmd := RemoveProductsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBoxID(boxID),
		cmd.setProductIDs(productIDs),
	); err != nil {
		return RemoveProductsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveProductsCommand) Validate() error {
	return c.guard.Validate(ErrRemoveProductsCommandIsNotConstructed)
}

// BoxID returns the target box identifier.
func (c RemoveProductsCommand) BoxID() kernel.UUID {
	return c.boxID
}

// ProductIDs returns the products to detach, in caller-supplied order.
func (c RemoveProductsCommand) ProductIDs() []kernel.UUID {
	return c.productIDs
}

func (c *RemoveProductsCommand) setBoxID(boxID kernel.UUID) error {
	if err := boxID.Validate(); err != nil {
		return err
	}

	c.boxID = boxID
	return nil
}

func (c *RemoveProductsCommand) setProductIDs(productIDs []kernel.UUID) error {
	for _, id := range productIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.productIDs = productIDs
	return nil
}
