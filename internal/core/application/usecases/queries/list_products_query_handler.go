package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListProductsQueryHandler retrieves pages of products from the database.
type ListProductsQueryHandler struct {
	db *gorm.DB
}

// NewListProductsQueryHandler creates a handler for product list queries.
func NewListProductsQueryHandler(db *gorm.DB) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db}
}

// Handle executes the query and returns one page of products plus the total
// match count.
func (h ListProductsQueryHandler) Handle(
	ctx context.Context,
	query ListProductsQuery,
) (ListProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListProductsQueryResponse{}, err
	}

	var total int64
	if err := h.filtered(ctx, query).Count(&total).Error; err != nil {
		return ListProductsQueryResponse{}, err
	}

	var rows []productRow
	err := h.filtered(ctx, query).
		Select("id, name, barcode, box_id, created_at, updated_at").
		Order(query.SortBy() + " " + query.Direction()).
		Limit(query.Limit()).
		Offset(query.Offset()).
		Scan(&rows).Error
	if err != nil {
		return ListProductsQueryResponse{}, err
	}

	items := make([]ProductSummary, 0, len(rows))
	for _, row := range rows {
		summary, rowErr := toProductSummary(row)
		if rowErr != nil {
			return ListProductsQueryResponse{}, rowErr
		}
		items = append(items, summary)
	}

	return ListProductsQueryResponse{Items: items, Total: total}, nil
}

// filtered builds the shared WHERE clause so the count and the page query
// always agree on what matches.
func (h ListProductsQueryHandler) filtered(ctx context.Context, query ListProductsQuery) *gorm.DB {
	q := h.db.WithContext(ctx).Table("products")

	if query.Search() != "" {
		pattern := "%" + query.Search() + "%"
		q = q.Where("name ILIKE ? OR barcode ILIKE ?", pattern, pattern)
	}
	if query.UnassignedOnly() {
		q = q.Where("box_id IS NULL")
	}

	return q
}
