package commands

import (
	"context"

	"warehouse/internal/core/domain/model/box"
)

// AddProductsCommandHandler assigns products to a box inside one transaction.
// Membership may change only while the box is in Created status; the first
// missing or already-owned product aborts every assignment in the call.
//
// Example:
//
//	handler := NewAddProductsCommandHandler(uowFactory)
//	cmd, _ := NewAddProductsCommand(boxID, productIDs)
//
//	updated, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to add products: %w", err)
//	}
type AddProductsCommandHandler struct {
	uowFactory UoWFactory
}

// NewAddProductsCommandHandler creates a handler for product assignment operations.
func NewAddProductsCommandHandler(uowFactory UoWFactory) AddProductsCommandHandler {
	return AddProductsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command and returns the box reloaded with
// its current product set.
func (h *AddProductsCommandHandler) Handle(ctx context.Context, cmd AddProductsCommand) (*box.Box, error) {
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

		if addErr := b.AddProduct(p); addErr != nil {
			return nil, addErr
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
