package commands_test

import (
	"context"
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/box"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBoxUoW struct{ mock.Mock }

func (m *MockBoxUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockBoxUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockBoxUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockBoxUoW) BoxRepository() ports.BoxRepository {
	args := m.Called()
	return args.Get(0).(ports.BoxRepository)
}

type MockBoxUoWFactory struct{ mock.Mock }

func (m *MockBoxUoWFactory) Create() commands.BoxUoW {
	args := m.Called()
	return args.Get(0).(commands.BoxUoW)
}

func TestUpdateBoxCommandHandler_Handle_ChangeLabel(t *testing.T) {
	ctx := t.Context()
	boxID := kernel.NewUUID()
	label := "BOX-002"
	cmd, _ := commands.NewUpdateBoxCommand(boxID, commands.BoxPatch{Label: &label})

	b, _ := box.NewBox(boxID, "BOX-001", box.Created)

	boxRepo := new(MockBoxRepository)
	uow := new(MockBoxUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BoxRepository").Return(boxRepo).Once(),
		boxRepo.On("Get", mock.Anything, boxID).Return(b, nil).Once(),
		boxRepo.On("Update", mock.Anything, b).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBoxUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateBoxCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, "BOX-002", updated.Label())
	boxRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateBoxCommandHandler_Handle_SealBox(t *testing.T) {
	ctx := t.Context()
	boxID := kernel.NewUUID()
	sealed := box.Sealed
	cmd, _ := commands.NewUpdateBoxCommand(boxID, commands.BoxPatch{Status: &sealed})

	b, _ := box.NewBox(boxID, "BOX-001", box.Created)

	boxRepo := new(MockBoxRepository)
	uow := new(MockBoxUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BoxRepository").Return(boxRepo).Once(),
		boxRepo.On("Get", mock.Anything, boxID).Return(b, nil).Once(),
		boxRepo.On("Update", mock.Anything, b).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBoxUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateBoxCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, box.Sealed, updated.Status())
	boxRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateBoxCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	boxID := kernel.NewUUID()
	shipped := box.Shipped
	cmd, _ := commands.NewUpdateBoxCommand(boxID, commands.BoxPatch{Status: &shipped})

	b, _ := box.NewBox(boxID, "BOX-001", box.Created)

	boxRepo := new(MockBoxRepository)
	uow := new(MockBoxUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BoxRepository").Return(boxRepo).Once(),
		boxRepo.On("Get", mock.Anything, boxID).Return(b, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBoxUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateBoxCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidStatusTransition)
	boxRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestUpdateBoxCommandHandler_Handle_SameStatusNoOp(t *testing.T) {
	ctx := t.Context()
	boxID := kernel.NewUUID()
	created := box.Created
	cmd, _ := commands.NewUpdateBoxCommand(boxID, commands.BoxPatch{Status: &created})

	b, _ := box.NewBox(boxID, "BOX-001", box.Created)

	boxRepo := new(MockBoxRepository)
	uow := new(MockBoxUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BoxRepository").Return(boxRepo).Once(),
		boxRepo.On("Get", mock.Anything, boxID).Return(b, nil).Once(),
		boxRepo.On("Update", mock.Anything, b).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBoxUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateBoxCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, box.Created, updated.Status())
	uow.AssertExpectations(t)
}

func TestUpdateBoxCommandHandler_Handle_BoxNotFound(t *testing.T) {
	ctx := t.Context()
	boxID := kernel.NewUUID()
	label := "BOX-002"
	cmd, _ := commands.NewUpdateBoxCommand(boxID, commands.BoxPatch{Label: &label})

	boxRepo := new(MockBoxRepository)
	uow := new(MockBoxUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BoxRepository").Return(boxRepo).Once(),
		boxRepo.On("Get", mock.Anything, boxID).
			Return(nil, errs.NewObjectNotFoundError("box_id", boxID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBoxUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateBoxCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}
