package box

import (
	"errors"
	"fmt"
	"regexp"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/pkg/errs"
)

var (
	// ErrBoxIsNotConstructed is returned when a Box instance was not created
	// through the NewBox or RestoreBox factory methods.
	ErrBoxIsNotConstructed = errors.New("Box must be created via NewBox or RestoreBox constructor")
)

// labelPattern constrains box labels to short warehouse codes.
var labelPattern = regexp.MustCompile(`^[A-Z0-9-_]{3,32}$`)

// Box is the aggregate root for an inventory container. It owns the lifecycle
// status state machine and guards membership changes of its products.
//
// Invariants:
//   - id and label are valid; label matches [A-Z0-9-_]{3,32}
//   - status only advances forward through Created -> Sealed -> Shipped
//   - membership changes and deletion are allowed only while status is Created
//   - a product joins this box only if it is not owned by any box
type Box struct {
	// id is the unique identifier for the box
	id kernel.UUID

	// label is the unique short code identifying the box to operators
	label string

	// status is the current state in the box lifecycle
	status Status

	// products is the set of products currently assigned to this box.
	// Derived state: the source of truth is each product's box reference.
	products []*product.Product

	// isConstructed ensures the box was created via a factory method
	isConstructed bool
}

// NewBox creates a new Box with validation. The status is usually Created;
// an explicit later status is accepted as an administrative seeding escape
// hatch and bypasses transition validation at creation time only.
func NewBox(id kernel.UUID, label string, status Status) (*Box, error) {
	b := &Box{
		isConstructed: true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setLabel(label),
		b.setStatus(status),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBox reconstructs a Box from persistence, including its current
// product set. No transition validation is performed; the stored status is
// trusted but still checked for being a valid enum value.
func RestoreBox(id kernel.UUID, label string, status Status, products []*product.Product) (*Box, error) {
	b := &Box{
		products:      products,
		isConstructed: true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setLabel(label),
		b.setStatus(status),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// Validate ensures the Box instance was properly constructed through a factory.
func (b *Box) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBoxIsNotConstructed
	}

	return nil
}

// IsEqual compares two boxes by their unique identifiers.
func (b *Box) IsEqual(other *Box) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the box's unique identifier.
func (b *Box) ID() kernel.UUID {
	return b.id
}

// Label returns the box's unique label.
func (b *Box) Label() string {
	return b.label
}

// Status returns the current status of the box.
func (b *Box) Status() Status {
	return b.status
}

// Products returns the products currently assigned to this box.
func (b *Box) Products() []*product.Product {
	return b.products
}

// ChangeLabel replaces the box's label after pattern validation.
func (b *Box) ChangeLabel(label string) error {
	return b.setLabel(label)
}

// ChangeStatus advances the box along the lifecycle state machine.
// Requesting the current status is a no-op. Any transition outside
// Created -> Sealed -> Shipped fails with an InvalidStatusTransitionError.
func (b *Box) ChangeStatus(requested Status) error {
	if err := b.status.ValidateTransition(requested); err != nil {
		return err
	}

	b.status = requested
	return nil
}

// AddProduct assigns a product to this box. The box must still be in Created
// status and the product must not belong to any box, including this one.
func (b *Box) AddProduct(p *product.Product) error {
	if err := b.ValidateMembershipChange(); err != nil {
		return err
	}

	if err := p.AssignToBox(b.id); err != nil {
		return err
	}

	b.products = append(b.products, p)
	return nil
}

// RemoveProduct detaches a product from this box. The box must still be in
// Created status and the product must currently belong to exactly this box.
func (b *Box) RemoveProduct(p *product.Product) error {
	if err := b.ValidateMembershipChange(); err != nil {
		return err
	}

	if err := p.RemoveFromBox(b.id); err != nil {
		return err
	}

	for i, member := range b.products {
		if member.ID().IsEqual(p.ID()) {
			b.products = append(b.products[:i], b.products[i+1:]...)
			break
		}
	}

	return nil
}

// ValidateDelete checks that the box may be deleted. Sealed and shipped boxes
// are immutable history and must be kept.
func (b *Box) ValidateDelete() error {
	if b.status != Created {
		return errs.NewBusinessRuleViolationError(
			fmt.Sprintf("cannot delete box in status %s", b.status))
	}
	return nil
}

// ValidateMembershipChange enforces that products move in or out only while
// the box is still being assembled.
func (b *Box) ValidateMembershipChange() error {
	if b.status != Created {
		return errs.NewBusinessRuleViolationError(
			fmt.Sprintf("cannot modify products of box in status %s", b.status))
	}
	return nil
}

func (b *Box) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Box) setLabel(label string) error {
	if label == "" {
		return errs.NewValueIsRequiredError("label")
	}
	if !labelPattern.MatchString(label) {
		return errs.NewValueIsInvalidErrorWithCause("label",
			fmt.Errorf("%q does not match pattern [A-Z0-9-_]{3,32}", label))
	}
	b.label = label
	return nil
}

func (b *Box) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	b.status = status
	return nil
}
