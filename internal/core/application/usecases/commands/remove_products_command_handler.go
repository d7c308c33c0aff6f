package commands

import (
	"context"

	"warehouse/internal/core/domain/model/box"
)

// RemoveProductsCommandHandler detaches products from a box inside one
// transaction. Every listed product must currently belong to exactly this
// box; the first violation aborts all removals in the call.
type RemoveProductsCommandHandler struct {
	uowFactory UoWFactory
}

// NewRemoveProductsCommandHandler creates a handler for product removal operations.
func NewRemoveProductsCommandHandler(uowFactory UoWFactory) RemoveProductsCommandHandler {
	return RemoveProductsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command and returns the box reloaded with its
// current product set.
func (h *RemoveProductsCommandHandler) Handle(ctx context.Context, cmd RemoveProductsCommand) (*box.Box, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	boxRepo := uow.BoxRepository()
	b, err := boxRepo.Get(ctx, cmd.BoxID())
	if err != nil {
		return nil, err
	}

	if err = b.ValidateMembershipChange(); err != nil {
		return nil, err
	}

	productRepo := uow.ProductRepository()
	for _, productID := range cmd.ProductIDs() {
		p, getErr := productRepo.Get(ctx, productID)
		if getErr != nil {
			return nil, getErr
		}

		if removeErr := b.RemoveProduct(p); removeErr != nil {
			return nil, removeErr
		}

		if updateErr := productRepo.Update(ctx, p); updateErr != nil {
			return nil, updateErr
		}
	}

	updated, err := boxRepo.Get(ctx, cmd.BoxID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
