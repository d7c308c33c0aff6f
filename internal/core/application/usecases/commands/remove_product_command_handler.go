package commands

import (
	"context"
)

// RemoveProductCommandHandler deletes a product. Deletion is independent of
// box lifecycle: an assigned product simply disappears from its box.
type RemoveProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewRemoveProductCommandHandler creates a handler for product deletion.
func NewRemoveProductCommandHandler(uowFactory ProductUoWFactory) RemoveProductCommandHandler {
	return RemoveProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
func (h *RemoveProductCommandHandler) Handle(ctx context.Context, cmd RemoveProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	p, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if err = productRepo.Delete(ctx, p.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
