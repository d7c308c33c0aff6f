package commands_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateProductCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	name := "Gadget"
	cmd, err := commands.NewUpdateProductCommand(id, product.Patch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, id, cmd.ProductID())
	assert.Equal(t, &name, cmd.Patch().Name)
	assert.Nil(t, cmd.Patch().Barcode)
}

func TestNewUpdateProductCommand_InvalidProductID(t *testing.T) {
	_, err := commands.NewUpdateProductCommand(kernel.UUID{}, product.Patch{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
