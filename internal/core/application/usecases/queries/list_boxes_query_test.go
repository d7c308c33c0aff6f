package queries_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/box"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListBoxesQuery_Defaults(t *testing.T) {
	q, err := queries.NewListBoxesQuery("", nil, "", "", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "created_at", q.SortBy())
	assert.Equal(t, queries.SortDescending, q.Direction())
	assert.Equal(t, 20, q.Limit())
	assert.Equal(t, 0, q.Offset())
	assert.Nil(t, q.Status())
}

func TestNewListBoxesQuery_ExplicitValues(t *testing.T) {
	sealed := box.Sealed
	q, err := queries.NewListBoxesQuery("BOX", &sealed, "label", queries.SortAscending, 50, 10)
	require.NoError(t, err)
	assert.Equal(t, "BOX", q.Search())
	assert.Equal(t, &sealed, q.Status())
	assert.Equal(t, "label", q.SortBy())
	assert.Equal(t, queries.SortAscending, q.Direction())
	assert.Equal(t, 50, q.Limit())
	assert.Equal(t, 10, q.Offset())
}

func TestNewListBoxesQuery_CapsLimit(t *testing.T) {
	q, err := queries.NewListBoxesQuery("", nil, "", "", 500, 0)
	require.NoError(t, err)
	assert.Equal(t, 100, q.Limit())
}

func TestNewListBoxesQuery_NegativeOffset(t *testing.T) {
	q, err := queries.NewListBoxesQuery("", nil, "", "", 0, -5)
	require.NoError(t, err)
	assert.Equal(t, 0, q.Offset())
}

func TestNewListBoxesQuery_RejectsUnknownSortColumn(t *testing.T) {
	_, err := queries.NewListBoxesQuery("", nil, "id; DROP TABLE boxes", "", 0, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewListBoxesQuery_RejectsUnknownDirection(t *testing.T) {
	_, err := queries.NewListBoxesQuery("", nil, "label", "sideways", 0, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewListBoxesQuery_RejectsInvalidStatus(t *testing.T) {
	unknown := box.Unknown
	_, err := queries.NewListBoxesQuery("", &unknown, "", "", 0, 0)
	require.Error(t, err)
}

func TestListBoxesQuery_NotConstructed(t *testing.T) {
	q := queries.ListBoxesQuery{}
	require.ErrorIs(t, q.Validate(), queries.ErrListBoxesQueryIsNotConstructed)
}

func TestNewListProductsQuery_Defaults(t *testing.T) {
	q, err := queries.NewListProductsQuery("", false, "", "", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "created_at", q.SortBy())
	assert.Equal(t, queries.SortDescending, q.Direction())
	assert.Equal(t, 20, q.Limit())
	assert.False(t, q.UnassignedOnly())
}

func TestNewListProductsQuery_RejectsBoxSortColumn(t *testing.T) {
	_, err := queries.NewListProductsQuery("", false, "label", "", 0, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
