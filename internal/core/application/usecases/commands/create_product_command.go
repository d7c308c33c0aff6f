package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrNameIsRequired    = errors.New("name is required")
	ErrBarcodeIsRequired = errors.New("barcode is required")
)

// CreateProductCommand represents a request to register a new, unassigned
// product. Products join boxes only through the box membership operations.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	name      string
	barcode   string

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to register a new product.
// Length limits are enforced by the aggregate.
func NewCreateProductCommand(productID kernel.UUID, name string, barcode string) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setName(name),
		cmd.setBarcode(barcode),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the identifier for the new product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the product name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Barcode returns the product barcode.
func (c CreateProductCommand) Barcode() string {
	return c.barcode
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setBarcode(barcode string) error {
	if barcode == "" {
		return ErrBarcodeIsRequired
	}

	c.barcode = barcode
	return nil
}
