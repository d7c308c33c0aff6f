package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrRemoveProductCommandIsNotConstructed = errors.New(
		"RemoveProductCommand must be created via NewRemoveProductCommand constructor",
	)
)

// RemoveProductCommand represents a request to delete a product.
type RemoveProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveProductCommand creates a command to delete a product.
func NewRemoveProductCommand(productID kernel.UUID) (RemoveProductCommand, error) {
	cmd := RemoveProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setProductID(productID); err != nil {
		return RemoveProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveProductCommand) Validate() error {
	return c.guard.Validate(ErrRemoveProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to delete.
func (c RemoveProductCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c *RemoveProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
