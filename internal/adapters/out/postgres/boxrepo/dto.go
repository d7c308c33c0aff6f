// Package boxrepo provides data transfer objects and mapping functions for box
// persistence. It implements the repository pattern for the box domain
// aggregate, converting between domain entities and database rows.
package boxrepo

import (
	"time"

	"warehouse/internal/adapters/out/postgres/productrepo"
	"warehouse/internal/core/domain/model/box"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// BoxDTO represents the database structure for persisting box aggregates.
// Status is stored as its string form so the rows read naturally in SQL.
// The product association carries ON DELETE SET NULL: removing a box releases
// its products rather than deleting them.
type BoxDTO struct {
	ID        uuid.UUID                `gorm:"type:uuid;primaryKey"`
	Label     string                   `gorm:"type:varchar(32);not null;uniqueIndex"`
	Status    string                   `gorm:"type:varchar(16);not null;index"`
	Products  []productrepo.ProductDTO `gorm:"foreignKey:BoxID;constraint:OnDelete:SET NULL"`
	CreatedAt time.Time                `gorm:"autoCreateTime"`
	UpdatedAt time.Time                `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for box entities.
func (BoxDTO) TableName() string {
	return "boxes"
}

// fromDomain converts a box domain aggregate to its database representation.
// The product association is deliberately left empty: product rows are owned
// by the product repository, and membership lives on the product side.
func fromDomain(b *box.Box) BoxDTO {
	return BoxDTO{
		ID:     b.ID().Bytes(),
		Label:  b.Label(),
		Status: b.Status().String(),
	}
}

// toDomain converts a database DTO to a box domain aggregate, including its
// preloaded product set.
func toDomain(dto BoxDTO) (*box.Box, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := box.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(dto.Products))
	for _, pDto := range dto.Products {
		p, pErr := productrepo.ToDomain(pDto)
		if pErr != nil {
			return nil, pErr
		}
		products = append(products, p)
	}

	return box.RestoreBox(id, dto.Label, status, products)
}
