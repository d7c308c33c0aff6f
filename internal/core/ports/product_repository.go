package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate, including its
	// box assignment. Returns an ObjectNotFoundError if the row vanished
	// between load and write.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	// Returns an ObjectNotFoundError if the product does not exist.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// Delete removes the product row.
	Delete(ctx context.Context, id kernel.UUID) error
}
