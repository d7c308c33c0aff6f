package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrAddProductsCommandIsNotConstructed = errors.New(
		"AddProductsCommand must be created via NewAddProductsCommand constructor",
	)
)

// AddProductsCommand represents a request to assign products to a box that is
// still being assembled. Duplicate ids are not rejected up front: ids are
// processed sequentially in the given order, so a duplicate fails on its
// second occurrence as an already-owned product.
type AddProductsCommand struct { //nolint:recvcheck //using for validation
	boxID      kernel.UUID
	productIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddProductsCommand creates a command to assign products to a box.
func NewAddProductsCommand(boxID kernel.UUID, productIDs []kernel.UUID) (AddProductsCommand, error) {
	cmd := AddProductsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBoxID(boxID),
		cmd.setProductIDs(productIDs),
	); err != nil {
		return AddProductsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddProductsCommand) Validate() error {
	return c.guard.Validate(ErrAddProductsCommandIsNotConstructed)
}

// BoxID returns the target box identifier.
func (c AddProductsCommand) BoxID() kernel.UUID {
	return c.boxID
}

// ProductIDs returns the products to assign, in caller-supplied order.
func (c AddProductsCommand) ProductIDs() []kernel.UUID {
	return c.productIDs
}

func (c *AddProductsCommand) setBoxID(boxID kernel.UUID) error {
	if err := boxID.Validate(); err != nil {
		return err
	}

	c.boxID = boxID
	return nil
}

func (c *AddProductsCommand) setProductIDs(productIDs []kernel.UUID) error {
	for _, id := range productIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.productIDs = productIDs
	return nil
}
