package commands

import (
	"context"

	"warehouse/internal/core/domain/model/box"
)

// CreateBoxCommandHandler handles box creation, optionally assigning an
// initial product set in the same transaction. If any product is missing or
// already owned, the box row and every prior assignment roll back together.
type CreateBoxCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateBoxCommandHandler creates a handler for box creation operations.
func NewCreateBoxCommandHandler(uowFactory UoWFactory) CreateBoxCommandHandler {
	return CreateBoxCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the box creation command and returns the created box with
// its resolved product set.
//
// Products are assigned in caller-supplied order. Assignment at creation time
// skips the Created-status gate so an administratively seeded box can carry
// products, but exclusivity still holds: a product already in any box fails
// the whole call.
func (h *CreateBoxCommandHandler) Handle(ctx context.Context, cmd CreateBoxCommand) (*box.Box, error) {
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

	b, err := box.NewBox(cmd.BoxID(), cmd.Label(), cmd.Status())
	if err != nil {
		return nil, err
	}

	boxRepo := uow.BoxRepository()
	if err = boxRepo.Add(ctx, b); err != nil {
		return nil, err
	}

	productRepo := uow.ProductRepository()
	for _, productID := range cmd.ProductIDs() {
		p, getErr := productRepo.Get(ctx, productID)
		if getErr != nil {
			return nil, getErr
		}

		if assignErr := p.AssignToBox(b.ID()); assignErr != nil {
			return nil, assignErr
		}

		if updateErr := productRepo.Update(ctx, p); updateErr != nil {
			return nil, updateErr
		}
	}

	created, err := boxRepo.Get(ctx, b.ID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
