// Package queries contains read operations for retrieving warehouse state.
// Implements the Query pattern for read operations in the CQRS architecture:
// handlers bypass the aggregates and read optimized models straight from the
// database.
package queries

import (
	"errors"
	"slices"
	"time"

	"warehouse/internal/core/domain/model/box"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var (
	ErrListBoxesQueryIsNotConstructed = errors.New(
		"ListBoxesQuery must be created via NewListBoxesQuery constructor",
	)
)

const (
	defaultPageSize = 20
	maxPageSize     = 100

	// SortAscending and SortDescending are the accepted sort directions.
	SortAscending  = "asc"
	SortDescending = "desc"
)

var boxSortColumns = []string{"label", "status", "created_at", "updated_at"}

// ListBoxesQuery retrieves a page of boxes with optional label search and
// status filtering. Sort column and direction are validated against a
// whitelist at construction time so they can be spliced into SQL safely.
type ListBoxesQuery struct {
	search    string
	status    *box.Status
	sortBy    string
	direction string
	limit     int
	offset    int

	guard guard.ConstructorGuard
}

// NewListBoxesQuery creates a query for a page of boxes. Empty sortBy
// defaults to created_at, empty direction to descending, non-positive limit
// to 20; limit is capped at 100.
func NewListBoxesQuery(
	search string,
	status *box.Status,
	sortBy string,
	direction string,
	limit int,
	offset int,
) (ListBoxesQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListBoxesQuery{}, err
		}
	}

	sortBy, direction, err := normalizeSort(sortBy, direction, boxSortColumns, "created_at")
	if err != nil {
		return ListBoxesQuery{}, err
	}

	return ListBoxesQuery{
		search:    search,
		status:    status,
		sortBy:    sortBy,
		direction: direction,
		limit:     normalizeLimit(limit),
		offset:    max(offset, 0),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListBoxesQuery) Validate() error {
	return q.guard.Validate(ErrListBoxesQueryIsNotConstructed)
}

// Search returns the label substring filter, empty for no filtering.
func (q ListBoxesQuery) Search() string { return q.search }

// Status returns the status filter, nil for all statuses.
func (q ListBoxesQuery) Status() *box.Status { return q.status }

// SortBy returns the validated sort column.
func (q ListBoxesQuery) SortBy() string { return q.sortBy }

// Direction returns the validated sort direction.
func (q ListBoxesQuery) Direction() string { return q.direction }

// Limit returns the page size.
func (q ListBoxesQuery) Limit() int { return q.limit }

// Offset returns the number of rows to skip.
func (q ListBoxesQuery) Offset() int { return q.offset }

// BoxSummary represents one box row in the list read model.
type BoxSummary struct {
	ID           kernel.UUID
	Label        string
	Status       box.Status
	ProductCount int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ListBoxesQueryResponse carries one page of boxes together with the total
// number of rows matching the filters, for pagination controls.
type ListBoxesQueryResponse struct {
	Items []BoxSummary
	Total int64
}

// normalizeSort applies defaults and validates the sort column and direction
// against the whitelist for the queried table.
func normalizeSort(sortBy, direction string, columns []string, defaultColumn string) (string, string, error) {
	if sortBy == "" {
		sortBy = defaultColumn
	}
	if !slices.Contains(columns, sortBy) {
		return "", "", errs.NewValueIsInvalidError("sort_by")
	}

	if direction == "" {
		direction = SortDescending
	}
	if direction != SortAscending && direction != SortDescending {
		return "", "", errs.NewValueIsInvalidError("direction")
	}

	return sortBy, direction, nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultPageSize
	}
	return min(limit, maxPageSize)
}
