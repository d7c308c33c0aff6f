// Package productrepo provides data transfer objects and mapping functions for
// product persistence. It implements the repository pattern for the product
// domain aggregate, converting between domain entities and database rows.
package productrepo

import (
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting product
// aggregates. The box reference is a nullable foreign key with ON DELETE SET
// NULL, so deleting a box releases its products instead of orphaning them.
type ProductDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name      string     `gorm:"type:varchar(100);not null"`
	Barcode   string     `gorm:"type:varchar(32);not null;uniqueIndex"`
	BoxID     *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// FromDomain converts a product domain aggregate to its database
// representation. Exported because the box repository persists the same rows
// when resolving a box's product set.
func FromDomain(p *product.Product) ProductDTO {
	var boxID *uuid.UUID
	if id := p.BoxID(); id != nil {
		raw := id.Bytes()
		boxID = &raw
	}

	return ProductDTO{
		ID:      p.ID().Bytes(),
		Name:    p.Name(),
		Barcode: p.Barcode(),
		BoxID:   boxID,
	}
}

// ToDomain converts a database DTO to a product domain aggregate, including
// its current box assignment.
func ToDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var boxID *kernel.UUID
	if dto.BoxID != nil {
		bID, boxErr := kernel.UUIDFromBytes((*dto.BoxID)[:])
		if boxErr != nil {
			return nil, boxErr
		}

		boxID = &bID
	}

	return product.RestoreProduct(id, dto.Name, dto.Barcode, boxID)
}
