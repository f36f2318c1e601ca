package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/batch"
	"fulfillment/internal/core/domain/model/kernel"
)

// BatchRepository defines the persistence contract for shipment batch aggregates.
type BatchRepository interface {
	// Add persists a new batch aggregate to storage.
	Add(ctx context.Context, aggregate *batch.ShipmentBatch) error

	// Update persists changes to an existing batch aggregate.
	Update(ctx context.Context, aggregate *batch.ShipmentBatch) error

	// Get retrieves a batch aggregate by its unique identifier.
	// Returns an error wrapping errs.ErrObjectNotFound when no batch exists.
	Get(ctx context.Context, id kernel.UUID) (*batch.ShipmentBatch, error)

	// GetOpenByOperator retrieves the Open batch created by the given operator,
	// if one exists. Used to resume an interrupted assembly session.
	// Returns an error wrapping errs.ErrObjectNotFound when the operator has
	// no open batch.
	GetOpenByOperator(ctx context.Context, operatorID kernel.UUID) (*batch.ShipmentBatch, error)

	// GetAllInStatus retrieves all batches currently in the given status.
	GetAllInStatus(ctx context.Context, status batch.Status) ([]*batch.ShipmentBatch, error)
}
