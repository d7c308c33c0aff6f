package commands

import (
	"context"
)

// RemoveBoxCommandHandler deletes a box that is still in Created status.
// Products still assigned get their box reference cleared by the store's
// on-delete-set-null policy; no explicit compensating writes happen here.
type RemoveBoxCommandHandler struct {
	uowFactory BoxUoWFactory
}

// NewRemoveBoxCommandHandler creates a handler for box deletion operations.
func NewRemoveBoxCommandHandler(uowFactory BoxUoWFactory) RemoveBoxCommandHandler {
	return RemoveBoxCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
func (h *RemoveBoxCommandHandler) Handle(ctx context.Context, cmd RemoveBoxCommand) error {
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

	boxRepo := uow.BoxRepository()
	b, err := boxRepo.Get(ctx, cmd.BoxID())
	if err != nil {
		return err
	}

	if err = b.ValidateDelete(); err != nil {
		return err
	}

	if err = boxRepo.Delete(ctx, b.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
