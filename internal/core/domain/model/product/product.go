package product

import (
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through the NewProduct or RestoreProduct factory methods.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")
)

const (
	maxNameLength    = 100
	maxBarcodeLength = 32
)

// Product represents an inventory item optionally owned by exactly one box.
//
// Invariants:
//   - name is 1-100 characters, barcode is 1-32 characters
//   - the box reference is either nil (unassigned) or set to a single box
//   - the box reference changes only through AssignToBox/RemoveFromBox,
//     which are invoked by the Box aggregate's membership operations
type Product struct {
	// id is the unique identifier for the product
	id kernel.UUID

	// name is the human-readable product name
	name string

	// barcode is the unique scan code
	barcode string

	// boxID references the owning box (nil if unassigned)
	boxID *kernel.UUID

	// isConstructed ensures the product was created via a factory method
	isConstructed bool
}

// Patch describes a partial update of product details. Fields left nil are
// not touched. The box reference is deliberately absent: ownership changes
// only through box membership operations, never through a detail update.
type Patch struct {
	Name    *string
	Barcode *string
}

// NewProduct creates a new unassigned Product with validation.
func NewProduct(id kernel.UUID, name string, barcode string) (*Product, error) {
	p := &Product{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setBarcode(barcode),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persistence, including its
// current box assignment.
func RestoreProduct(id kernel.UUID, name string, barcode string, boxID *kernel.UUID) (*Product, error) {
	p := &Product{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setBarcode(barcode),
	); err != nil {
		return nil, err
	}

	if boxID != nil {
		if err := boxID.Validate(); err != nil {
			return nil, err
		}
		owned := *boxID
		p.boxID = &owned
	}

	return p, nil
}

// Validate ensures the Product was properly constructed through a factory.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}

	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's name.
func (p *Product) Name() string {
	return p.name
}

// Barcode returns the product's unique barcode.
func (p *Product) Barcode() string {
	return p.barcode
}

// BoxID returns the owning box's ID, or nil if the product is unassigned.
func (p *Product) BoxID() *kernel.UUID {
	return p.boxID
}

// AssignToBox sets the owning box. Any existing assignment is rejected,
// including re-assignment to the same box; exclusivity means at most one
// owner at any instant and no silent overwrite.
func (p *Product) AssignToBox(boxID kernel.UUID) error {
	if err := boxID.Validate(); err != nil {
		return err
	}

	if p.boxID != nil {
		return errs.NewBusinessRuleViolationError(
			fmt.Sprintf("product %s is already in another box", p.id))
	}

	p.boxID = &boxID
	return nil
}

// RemoveFromBox clears the owning box. The product must currently belong to
// exactly the given box.
func (p *Product) RemoveFromBox(boxID kernel.UUID) error {
	if err := boxID.Validate(); err != nil {
		return err
	}

	if p.boxID == nil || !p.boxID.IsEqual(boxID) {
		return errs.NewBusinessRuleViolationError(
			fmt.Sprintf("product %s is not in this box", p.id))
	}

	p.boxID = nil
	return nil
}

// ApplyPatch updates product details by named field assignment. Only fields
// present in the patch are validated and applied.
func (p *Product) ApplyPatch(patch Patch) error {
	if patch.Name != nil {
		if err := p.setName(*patch.Name); err != nil {
			return err
		}
	}

	if patch.Barcode != nil {
		if err := p.setBarcode(*patch.Barcode); err != nil {
			return err
		}
	}

	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len(name) > maxNameLength {
		return errs.NewValueIsInvalidErrorWithCause("name",
			fmt.Errorf("length %d exceeds maximum of %d", len(name), maxNameLength))
	}
	p.name = name
	return nil
}

func (p *Product) setBarcode(barcode string) error {
	if barcode == "" {
		return errs.NewValueIsRequiredError("barcode")
	}
	if len(barcode) > maxBarcodeLength {
		return errs.NewValueIsInvalidErrorWithCause("barcode",
			fmt.Errorf("length %d exceeds maximum of %d", len(barcode), maxBarcodeLength))
	}
	p.barcode = barcode
	return nil
}
