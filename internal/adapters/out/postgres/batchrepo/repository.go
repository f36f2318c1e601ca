package batchrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/batch"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBatchRepository implements BatchRepository using GORM.
type GormBatchRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBatchRepository creates a new GORM shipment batch repository.
func NewGormBatchRepository(db *gorm.DB, tracker aggregateTracker) *GormBatchRepository {
	return &GormBatchRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment batch to the database.
func (r *GormBatchRepository) Add(ctx context.Context, aggregate *batch.ShipmentBatch) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStoreUnavailableError("add shipment batch", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing shipment batch to the database.
func (r *GormBatchRepository) Update(ctx context.Context, aggregate *batch.ShipmentBatch) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return errs.NewStoreUnavailableError("update shipment batch", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipmentBatch", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a shipment batch by ID.
func (r *GormBatchRepository) Get(ctx context.Context, id kernel.UUID) (*batch.ShipmentBatch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BatchDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipmentBatch", id.String())
		}
		return nil, errs.NewStoreUnavailableError("get shipment batch", err)
	}

	return toDomain(dto)
}

// GetOpenByOperator retrieves the open batch created by the given operator,
// if any. At most one open batch per operator exists at a time.
func (r *GormBatchRepository) GetOpenByOperator(ctx context.Context, operatorID kernel.UUID) (*batch.ShipmentBatch, error) {
	if err := operatorID.Validate(); err != nil {
		return nil, err
	}

	var dto BatchDTO
	err := r.db.WithContext(ctx).
		Where("created_by = ? AND status = ?", operatorID.Bytes(), int(batch.Open)).
		Order("created_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("openBatch", operatorID.String())
		}
		return nil, errs.NewStoreUnavailableError("get open batch", err)
	}

	return toDomain(dto)
}

// GetAllInStatus retrieves all shipment batches in the given status.
func (r *GormBatchRepository) GetAllInStatus(ctx context.Context, status batch.Status) ([]*batch.ShipmentBatch, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []BatchDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status = ?", int(status)).Error; err != nil {
		return nil, errs.NewStoreUnavailableError("get shipment batches in status", err)
	}

	batches := make([]*batch.ShipmentBatch, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		batches = append(batches, aggregate)
	}

	return batches, nil
}
