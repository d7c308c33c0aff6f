package queries

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/box"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrGetBoxQueryIsNotConstructed = errors.New(
		"GetBoxQuery must be created via NewGetBoxQuery constructor",
	)
)

// GetBoxQuery retrieves a single box with its full product set.
type GetBoxQuery struct {
	boxID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBoxQuery creates a query for one box by its identifier.
func NewGetBoxQuery(boxID kernel.UUID) (GetBoxQuery, error) {
	if err := boxID.Validate(); err != nil {
		return GetBoxQuery{}, err
	}

	return GetBoxQuery{
		boxID: boxID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBoxQuery) Validate() error {
	return q.guard.Validate(ErrGetBoxQueryIsNotConstructed)
}

// BoxID returns the requested box identifier.
func (q GetBoxQuery) BoxID() kernel.UUID {
	return q.boxID
}

// GetBoxQueryResponse represents one box with its member products in the read
// model.
type GetBoxQueryResponse struct {
	ID        kernel.UUID
	Label     string
	Status    box.Status
	Products  []ProductSummary
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProductSummary represents one product row in the read model.
type ProductSummary struct {
	ID        kernel.UUID
	Name      string
	Barcode   string
	BoxID     *kernel.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}
