package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/box"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrCreateBoxCommandIsNotConstructed = errors.New(
		"CreateBoxCommand must be created via NewCreateBoxCommand constructor",
	)
	ErrLabelIsRequired = errors.New("label is required")
)

// CreateBoxCommand represents a request to register a new box, optionally
// with an initial set of products. Product ids are processed in the given
// order; the first violation aborts the whole operation.
//
// Example:
//
//	boxID := kernel.NewUUID()
//	cmd, err := NewCreateBoxCommand(boxID, "BOX-001", box.Created, productIDs)
//	if err != nil {
//	    return fmt.Errorf("invalid box data: %w", err)
//	}
//
//	handler := NewCreateBoxCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateBoxCommand struct { //nolint:recvcheck //using for validation
	boxID      kernel.UUID
	label      string
	status     box.Status
	productIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateBoxCommand creates a command to register a new box.
// A zero status defaults to Created. An explicit later status is accepted;
// it bypasses transition validation at creation time only (administrative
// seeding escape hatch). Label pattern enforcement happens in the aggregate.
func NewCreateBoxCommand(
	boxID kernel.UUID,
	label string,
	status box.Status,
	productIDs []kernel.UUID,
) (CreateBoxCommand, error) {
	cmd := CreateBoxCommand{
		guard: guard.NewConstructorGuard(),
	}

	if status == box.Unknown {
		status = box.Created
	}

	if err := errors.Join(
		cmd.setBoxID(boxID),
		cmd.setLabel(label),
		cmd.setStatus(status),
		cmd.setProductIDs(productIDs),
	); err != nil {
		return CreateBoxCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBoxCommand) Validate() error {
	return c.guard.Validate(ErrCreateBoxCommandIsNotConstructed)
}

// BoxID returns the identifier for the new box.
func (c CreateBoxCommand) BoxID() kernel.UUID {
	return c.boxID
}

// Label returns the requested box label.
func (c CreateBoxCommand) Label() string {
	return c.label
}

// Status returns the initial box status.
func (c CreateBoxCommand) Status() box.Status {
	return c.status
}

// ProductIDs returns the initial product set, in caller-supplied order.
func (c CreateBoxCommand) ProductIDs() []kernel.UUID {
	return c.productIDs
}

func (c *CreateBoxCommand) setBoxID(boxID kernel.UUID) error {
	if err := boxID.Validate(); err != nil {
		return err
	}

	c.boxID = boxID
	return nil
}

func (c *CreateBoxCommand) setLabel(label string) error {
	if label == "" {
		return ErrLabelIsRequired
	}

	c.label = label
	return nil
}

func (c *CreateBoxCommand) setStatus(status box.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *CreateBoxCommand) setProductIDs(productIDs []kernel.UUID) error {
	for _, id := range productIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.productIDs = productIDs
	return nil
}
