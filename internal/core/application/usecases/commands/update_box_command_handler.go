package commands

import (
	"context"

	"warehouse/internal/core/domain/model/box"
)

// UpdateBoxCommandHandler applies a box patch. Status changes run through the
// lifecycle state machine before the write; the patch is persisted with a
// single repository update so a box that vanished between load and write
// surfaces as not found rather than as a silent no-op.
type UpdateBoxCommandHandler struct {
	uowFactory BoxUoWFactory
}

// NewUpdateBoxCommandHandler creates a handler for box update operations.
func NewUpdateBoxCommandHandler(uowFactory BoxUoWFactory) UpdateBoxCommandHandler {
	return UpdateBoxCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command and returns the patched box.
func (h *UpdateBoxCommandHandler) Handle(ctx context.Context, cmd UpdateBoxCommand) (*box.Box, error) {
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

	patch := cmd.Patch()
	if patch.Status != nil {
		if err = b.ChangeStatus(*patch.Status); err != nil {
			return nil, err
		}
	}

	if patch.Label != nil {
		if err = b.ChangeLabel(*patch.Label); err != nil {
			return nil, err
		}
	}

	if err = boxRepo.Update(ctx, b); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return b, nil
}
