package ports

import (
	"context"

	"warehouse/internal/core/domain/model/box"
	"warehouse/internal/core/domain/model/kernel"
)

// BoxRepository defines the persistence contract for box aggregates.
// Carries no business rules; invariants are enforced by the aggregates and
// the command handlers orchestrating them.
type BoxRepository interface {
	// Add persists a new box aggregate to storage.
	Add(ctx context.Context, aggregate *box.Box) error

	// Update persists changes to an existing box aggregate.
	// Returns an ObjectNotFoundError if the row vanished between load and write.
	Update(ctx context.Context, aggregate *box.Box) error

	// Get retrieves a box by its unique identifier, with its current product
	// set resolved. Returns an ObjectNotFoundError if the box does not exist.
	Get(ctx context.Context, id kernel.UUID) (*box.Box, error)

	// Delete removes the box row. Products still assigned get their box
	// reference cleared by the store's on-delete-set-null policy, not by
	// explicit repository logic.
	Delete(ctx context.Context, id kernel.UUID) error
}
