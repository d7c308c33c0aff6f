package queries

import (
	"context"
	"errors"
	"time"

	"warehouse/internal/core/domain/model/box"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBoxQueryHandler retrieves one box and its member products from the
// database.
type GetBoxQueryHandler struct {
	db *gorm.DB
}

// NewGetBoxQueryHandler creates a handler for single-box queries.
func NewGetBoxQueryHandler(db *gorm.DB) GetBoxQueryHandler {
	return GetBoxQueryHandler{db: db}
}

type productRow struct {
	ID        uuid.UUID
	Name      string
	Barcode   string
	BoxID     *uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Handle executes the query. Returns an ObjectNotFoundError if the box does
// not exist.
func (h GetBoxQueryHandler) Handle(ctx context.Context, query GetBoxQuery) (GetBoxQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBoxQueryResponse{}, err
	}

	var row boxRow
	err := h.db.WithContext(ctx).Table("boxes").
		Select("id, label, status, created_at, updated_at").
		Where("id = ?", query.BoxID().Bytes()).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return GetBoxQueryResponse{}, errs.NewObjectNotFoundError("box", query.BoxID().String())
		}
		return GetBoxQueryResponse{}, err
	}

	var productRows []productRow
	err = h.db.WithContext(ctx).Table("products").
		Select("id, name, barcode, box_id, created_at, updated_at").
		Where("box_id = ?", query.BoxID().Bytes()).
		Order("name").
		Scan(&productRows).Error
	if err != nil {
		return GetBoxQueryResponse{}, err
	}

	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return GetBoxQueryResponse{}, err
	}

	status, err := box.StatusFromString(row.Status)
	if err != nil {
		return GetBoxQueryResponse{}, err
	}

	products := make([]ProductSummary, 0, len(productRows))
	for _, pRow := range productRows {
		summary, rowErr := toProductSummary(pRow)
		if rowErr != nil {
			return GetBoxQueryResponse{}, rowErr
		}
		products = append(products, summary)
	}

	return GetBoxQueryResponse{
		ID:        id,
		Label:     row.Label,
		Status:    status,
		Products:  products,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func toProductSummary(row productRow) (ProductSummary, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return ProductSummary{}, err
	}

	var boxID *kernel.UUID
	if row.BoxID != nil {
		bID, boxErr := kernel.UUIDFromBytes((*row.BoxID)[:])
		if boxErr != nil {
			return ProductSummary{}, boxErr
		}
		boxID = &bID
	}

	return ProductSummary{
		ID:        id,
		Name:      row.Name,
		Barcode:   row.Barcode,
		BoxID:     boxID,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}
