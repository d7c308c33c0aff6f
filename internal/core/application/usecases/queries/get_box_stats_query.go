package queries

import (
	"errors"

	"warehouse/internal/core/domain/model/box"
	"warehouse/internal/pkg/guard"
)

var (
	ErrGetBoxStatsQueryIsNotConstructed = errors.New(
		"GetBoxStatsQuery must be created via NewGetBoxStatsQuery constructor",
	)
)

// GetBoxStatsQuery retrieves aggregate inventory counts: boxes and their
// product totals grouped by lifecycle status, plus the number of products not
// assigned to any box. Feeds the periodic inventory report and monitoring
// endpoints.
type GetBoxStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetBoxStatsQuery creates a parameterless query for inventory statistics.
func NewGetBoxStatsQuery() GetBoxStatsQuery {
	return GetBoxStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetBoxStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetBoxStatsQueryIsNotConstructed)
}

// StatusCount holds the box and product totals for one lifecycle status.
type StatusCount struct {
	Status   box.Status
	Boxes    int64
	Products int64
}

// GetBoxStatsQueryResponse represents the inventory statistics read model.
// Statuses with no boxes are omitted.
type GetBoxStatsQueryResponse struct {
	Statuses           []StatusCount
	UnassignedProducts int64
}
