package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/pkg/guard"
)

var (
	ErrUpdateProductCommandIsNotConstructed = errors.New(
		"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
	)
)

// UpdateProductCommand represents a request to patch a product's details.
// The patch type has no box reference field, so ownership can never be
// changed through this path.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	patch     product.Patch

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to patch a product.
func NewUpdateProductCommand(productID kernel.UUID, patch product.Patch) (UpdateProductCommand, error) {
	cmd := UpdateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setProductID(productID); err != nil {
		return UpdateProductCommand{}, err
	}

	cmd.patch = patch
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the target product identifier.
func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Patch returns the requested field changes.
func (c UpdateProductCommand) Patch() product.Patch {
	return c.patch
}

func (c *UpdateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
