// Package batchrepo provides data transfer objects and mapping functions for
// shipment batch persistence. Member order keys travel with the batch row as a
// text array so an interrupted assembly session can be restored from a single
// read.
package batchrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/batch"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// BatchDTO represents the database structure for persisting shipment batches.
type BatchDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Courier       string
	CreatedBy     uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt     time.Time
	Status        int            `gorm:"index"`
	OrderKeys     pq.StringArray `gorm:"type:text[]"`
	GroupPhotoRef string
	ShippedAt     *time.Time
}

// TableName overrides GORM's default naming convention to use "shipment_batches".
func (BatchDTO) TableName() string {
	return "shipment_batches"
}

func fromDomain(aggregate *batch.ShipmentBatch) BatchDTO {
	keys := aggregate.OrderKeys()
	orderKeys := make([]string, 0, len(keys))
	for _, key := range keys {
		orderKeys = append(orderKeys, key.String())
	}

	return BatchDTO{
		ID:            aggregate.ID().Bytes(),
		Courier:       aggregate.Courier(),
		CreatedBy:     aggregate.CreatedBy().Bytes(),
		CreatedAt:     aggregate.CreatedAt(),
		Status:        int(aggregate.Status()),
		OrderKeys:     pq.StringArray(orderKeys),
		GroupPhotoRef: aggregate.GroupPhotoRef(),
		ShippedAt:     aggregate.ShippedAt(),
	}
}

func toDomain(dto BatchDTO) (*batch.ShipmentBatch, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	orderKeys := make(map[kernel.UUID]bool, len(dto.OrderKeys))
	for _, raw := range dto.OrderKeys {
		key, keyErr := kernel.UUIDFromString(raw)
		if keyErr != nil {
			return nil, keyErr
		}
		orderKeys[key] = true
	}

	return batch.RestoreShipmentBatch(
		id,
		dto.Courier,
		createdBy,
		dto.CreatedAt,
		batch.Status(dto.Status),
		orderKeys,
		dto.GroupPhotoRef,
		dto.ShippedAt,
	)
}
