package queries

import (
	"context"
	"errors"

	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetProductQueryHandler retrieves one product from the database.
type GetProductQueryHandler struct {
	db *gorm.DB
}

// NewGetProductQueryHandler creates a handler for single-product queries.
func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError if the product
// does not exist.
func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (ProductSummary, error) {
	if err := query.Validate(); err != nil {
		return ProductSummary{}, err
	}

	var row productRow
	err := h.db.WithContext(ctx).Table("products").
		Select("id, name, barcode, box_id, created_at, updated_at").
		Where("id = ?", query.ProductID().Bytes()).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProductSummary{}, errs.NewObjectNotFoundError("product", query.ProductID().String())
		}
		return ProductSummary{}, err
	}

	return toProductSummary(row)
}
