package boxrepo

import (
	"context"
	"errors"

	"warehouse/internal/core/domain/model/box"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBoxRepository implements BoxRepository using GORM.
type GormBoxRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBoxRepository creates a new GORM box repository.
func NewGormBoxRepository(db *gorm.DB, tracker aggregateTracker) *GormBoxRepository {
	return &GormBoxRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new box to the database. Associations are omitted: product rows
// belong to the product repository and membership lives on the product side.
func (r *GormBoxRepository) Add(ctx context.Context, aggregate *box.Box) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return translateError("add box", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing box to the database.
func (r *GormBoxRepository) Update(ctx context.Context, aggregate *box.Box) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&BoxDTO{}).
		Where("id = ?", dto.ID).
		Omit(clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return translateError("update box", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("box", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a box by ID with its current product set resolved. The box
// row stays locked until the surrounding transaction ends, so membership
// changes and status updates on the same box serialize.
func (r *GormBoxRepository) Get(ctx context.Context, id kernel.UUID) (*box.Box, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BoxDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Products").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("box", id.String())
		}
		return nil, translateError("get box", err)
	}

	return toDomain(dto)
}

// Delete removes a box by ID. Member products keep their rows; the ON DELETE
// SET NULL constraint clears their box reference in the same statement.
func (r *GormBoxRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&BoxDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return translateError("delete box", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("box", id.String())
	}

	return nil
}

// translateError maps database failures to the error taxonomy. Unique
// constraint violations (duplicate labels) surface as business rule
// violations, everything else as a store failure.
func translateError(operation string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return errs.NewBusinessRuleViolationErrorWithCause("label is already in use", err)
	}

	return errs.NewStoreFailureError(operation, err)
}
