package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per operation.
// This ensures proper isolation between concurrent membership operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Every engine
// operation that touches more than one row runs its repository calls through
// a single UnitOfWork so the whole mutation commits or rolls back as one.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns an error if no transaction is active or the rollback fails.
	Rollback(ctx context.Context) error

	// BoxRepository returns a BoxRepository bound to the current transaction.
	BoxRepository() BoxRepository

	// ProductRepository returns a ProductRepository bound to the current transaction.
	ProductRepository() ProductRepository
}
