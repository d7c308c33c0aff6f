package queries

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/box"
	"warehouse/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListBoxesQueryHandler retrieves pages of boxes from the database.
// Uses direct SQL over the boxes table for read performance; the per-box
// product count comes from a correlated subquery instead of loading rows.
type ListBoxesQueryHandler struct {
	db *gorm.DB
}

// NewListBoxesQueryHandler creates a handler for box list queries.
func NewListBoxesQueryHandler(db *gorm.DB) ListBoxesQueryHandler {
	return ListBoxesQueryHandler{db: db}
}

type boxRow struct {
	ID           uuid.UUID
	Label        string
	Status       string
	ProductCount int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Handle executes the query and returns one page of boxes plus the total
// match count.
func (h ListBoxesQueryHandler) Handle(ctx context.Context, query ListBoxesQuery) (ListBoxesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListBoxesQueryResponse{}, err
	}

	var total int64
	if err := h.filtered(ctx, query).Count(&total).Error; err != nil {
		return ListBoxesQueryResponse{}, err
	}

	var rows []boxRow
	err := h.filtered(ctx, query).
		Select(`boxes.id, boxes.label, boxes.status, boxes.created_at, boxes.updated_at,
			(SELECT count(*) FROM products WHERE products.box_id = boxes.id) AS product_count`).
		Order(query.SortBy() + " " + query.Direction()).
		Limit(query.Limit()).
		Offset(query.Offset()).
		Scan(&rows).Error
	if err != nil {
		return ListBoxesQueryResponse{}, err
	}

	items := make([]BoxSummary, 0, len(rows))
	for _, row := range rows {
		summary, rowErr := toBoxSummary(row)
		if rowErr != nil {
			return ListBoxesQueryResponse{}, rowErr
		}
		items = append(items, summary)
	}

	return ListBoxesQueryResponse{Items: items, Total: total}, nil
}

// filtered builds the shared WHERE clause so the count and the page query
// always agree on what matches.
func (h ListBoxesQueryHandler) filtered(ctx context.Context, query ListBoxesQuery) *gorm.DB {
	q := h.db.WithContext(ctx).Table("boxes")

	if query.Search() != "" {
		q = q.Where("label ILIKE ?", "%"+query.Search()+"%")
	}
	if query.Status() != nil {
		q = q.Where("status = ?", query.Status().String())
	}

	return q
}

func toBoxSummary(row boxRow) (BoxSummary, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return BoxSummary{}, err
	}

	status, err := box.StatusFromString(row.Status)
	if err != nil {
		return BoxSummary{}, err
	}

	return BoxSummary{
		ID:           id,
		Label:        row.Label,
		Status:       status,
		ProductCount: row.ProductCount,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}, nil
}
