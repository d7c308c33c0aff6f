package queries

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

var (
	ErrListProductsQueryIsNotConstructed = errors.New(
		"ListProductsQuery must be created via NewListProductsQuery constructor",
	)
)

var productSortColumns = []string{"name", "barcode", "created_at", "updated_at"}

// ListProductsQuery retrieves a page of products. The search term matches
// either the name or the barcode; unassigned-only narrows the page to
// products not currently in any box, which is what operators filling a new
// box want to see.
type ListProductsQuery struct {
	search         string
	unassignedOnly bool
	sortBy         string
	direction      string
	limit          int
	offset         int

	guard guard.ConstructorGuard
}

// NewListProductsQuery creates a query for a page of products. Empty sortBy
// defaults to created_at, empty direction to descending, non-positive limit
// to 20; limit is capped at 100.
func NewListProductsQuery(
	search string,
	unassignedOnly bool,
	sortBy string,
	direction string,
	limit int,
	offset int,
) (ListProductsQuery, error) {
	sortBy, direction, err := normalizeSort(sortBy, direction, productSortColumns, "created_at")
	if err != nil {
		return ListProductsQuery{}, err
	}

	return ListProductsQuery{
		search:         search,
		unassignedOnly: unassignedOnly,
		sortBy:         sortBy,
		direction:      direction,
		limit:          normalizeLimit(limit),
		offset:         max(offset, 0),
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

// Search returns the name/barcode substring filter, empty for no filtering.
func (q ListProductsQuery) Search() string { return q.search }

// UnassignedOnly reports whether only products outside any box are wanted.
func (q ListProductsQuery) UnassignedOnly() bool { return q.unassignedOnly }

// SortBy returns the validated sort column.
func (q ListProductsQuery) SortBy() string { return q.sortBy }

// Direction returns the validated sort direction.
func (q ListProductsQuery) Direction() string { return q.direction }

// Limit returns the page size.
func (q ListProductsQuery) Limit() int { return q.limit }

// Offset returns the number of rows to skip.
func (q ListProductsQuery) Offset() int { return q.offset }

// ListProductsQueryResponse carries one page of products together with the
// total number of rows matching the filters.
type ListProductsQueryResponse struct {
	Items []ProductSummary
	Total int64
}
