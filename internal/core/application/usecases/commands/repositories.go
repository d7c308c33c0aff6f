// Package commands contains the business operations that mutate warehouse
// state. Every handler follows the same discipline: validate the command,
// open a unit of work, perform repository calls, and commit — any failure
// aborts the whole transaction, so multi-row membership changes are
// all-or-nothing and no compensating writes are ever needed.
package commands

import (
	"context"

	"warehouse/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// They are defined on the consumer side and narrowed per handler, so each
// handler declares exactly the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// BoxRepoFactory provides access to the box repository within a transaction.
	BoxRepoFactory interface {
		BoxRepository() ports.BoxRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// BoxUoW manages transactions for box-only operations.
	BoxUoW interface {
		TxManager
		BoxRepoFactory
	}

	// BoxUoWFactory creates new box unit of work instances.
	BoxUoWFactory interface {
		Create() BoxUoW
	}

	// ProductUoW manages transactions for product-only operations.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// UoW manages transactions spanning both boxes and products.
	// Used by membership operations, which must atomically update the box row
	// and many product rows.
	UoW interface {
		TxManager
		BoxRepoFactory
		ProductRepoFactory
	}

	// UoWFactory creates new unit of work instances for membership operations.
	UoWFactory interface {
		Create() UoW
	}
)
