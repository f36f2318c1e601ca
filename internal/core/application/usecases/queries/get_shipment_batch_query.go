package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetShipmentBatchQueryIsNotConstructed = errors.New(
	"GetShipmentBatchQuery must be created via NewGetShipmentBatchQuery constructor",
)

// GetShipmentBatchQuery retrieves one shipment batch with the current status
// of every member order, backing the batch detail view used during
// administrative verification.
type GetShipmentBatchQuery struct {
	batchID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentBatchQuery creates a query for one batch.
func NewGetShipmentBatchQuery(batchID kernel.UUID) (GetShipmentBatchQuery, error) {
	if err := batchID.Validate(); err != nil {
		return GetShipmentBatchQuery{}, err
	}

	return GetShipmentBatchQuery{
		batchID: batchID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentBatchQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentBatchQueryIsNotConstructed)
}

// BatchID returns the batch to load.
func (q GetShipmentBatchQuery) BatchID() kernel.UUID {
	return q.batchID
}

// GetShipmentBatchQueryResponse is the batch detail projection.
type GetShipmentBatchQueryResponse struct {
	ID            kernel.UUID
	Courier       string
	Status        string
	GroupPhotoRef string
	ShippedAt     *time.Time
	Members       []BatchMemberResponse
}

// BatchMemberResponse is one member order within the batch detail.
type BatchMemberResponse struct {
	OrderID     kernel.UUID
	PackageCode string
	Status      string
}
