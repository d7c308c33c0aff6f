package queries

import (
	"context"

	"warehouse/internal/core/domain/model/box"

	"gorm.io/gorm"
)

// GetBoxStatsQueryHandler computes inventory statistics with a single grouped
// query over the boxes and products tables.
type GetBoxStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetBoxStatsQueryHandler creates a handler for inventory statistics queries.
func NewGetBoxStatsQueryHandler(db *gorm.DB) GetBoxStatsQueryHandler {
	return GetBoxStatsQueryHandler{db: db}
}

// Handle executes the statistics query.
func (h GetBoxStatsQueryHandler) Handle(
	ctx context.Context,
	query GetBoxStatsQuery,
) (GetBoxStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBoxStatsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			boxes.status,
			COUNT(DISTINCT boxes.id) AS boxes,
			COUNT(products.id) AS products
		FROM boxes
		LEFT JOIN products ON products.box_id = boxes.id
		GROUP BY boxes.status
		ORDER BY boxes.status
	`).Rows()
	if err != nil {
		return GetBoxStatsQueryResponse{}, err
	}
	defer rows.Close()

	var response GetBoxStatsQueryResponse
	for rows.Next() {
		var statusName string
		var count StatusCount

		if err = rows.Scan(&statusName, &count.Boxes, &count.Products); err != nil {
			return GetBoxStatsQueryResponse{}, err
		}

		status, statusErr := box.StatusFromString(statusName)
		if statusErr != nil {
			return GetBoxStatsQueryResponse{}, statusErr
		}
		count.Status = status

		response.Statuses = append(response.Statuses, count)
	}

	if err = rows.Err(); err != nil {
		return GetBoxStatsQueryResponse{}, err
	}

	err = h.db.WithContext(ctx).Table("products").
		Where("box_id IS NULL").
		Count(&response.UnassignedProducts).Error
	if err != nil {
		return GetBoxStatsQueryResponse{}, err
	}

	return response, nil
}
