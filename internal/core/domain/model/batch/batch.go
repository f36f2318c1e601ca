package batch

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrShipmentBatchIsNotConstructed is returned when a ShipmentBatch instance
	// was not created through the NewShipmentBatch or RestoreShipmentBatch
	// factory functions.
	ErrShipmentBatchIsNotConstructed = errors.New(
		"ShipmentBatch must be created via NewShipmentBatch or RestoreShipmentBatch constructor")
)

// ShipmentBatch groups orders handed to a single courier in one pickup.
//
// ShipmentBatch follows these invariants:
//   - the courier is set at creation and never changes
//   - member orders can only be added or removed while the batch is Open
//   - a batch cannot be finalized without at least one member and a group photo
//   - a member key is never removed by finalization elsewhere; when an order is
//     finalized into a later batch, this batch keeps the key so the order can
//     still be traced from either side
//   - can only be created through NewShipmentBatch or RestoreShipmentBatch
type ShipmentBatch struct {
	id        kernel.UUID
	courier   string
	createdBy kernel.UUID
	createdAt time.Time

	status        Status
	orderKeys     map[kernel.UUID]bool
	groupPhotoRef string
	shippedAt     *time.Time

	isConstructed bool
}

// NewShipmentBatch creates an empty Open batch for the given courier.
func NewShipmentBatch(id kernel.UUID, courier string, createdBy kernel.UUID, now time.Time) (*ShipmentBatch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if courier == "" {
		return nil, errs.NewValueIsRequiredError("courier")
	}
	if err := createdBy.Validate(); err != nil {
		return nil, err
	}

	return &ShipmentBatch{
		id:            id,
		courier:       courier,
		createdBy:     createdBy,
		createdAt:     now,
		status:        Open,
		orderKeys:     make(map[kernel.UUID]bool),
		isConstructed: true,
	}, nil
}

// RestoreShipmentBatch reconstructs a ShipmentBatch from persistence.
func RestoreShipmentBatch(
	id kernel.UUID,
	courier string,
	createdBy kernel.UUID,
	createdAt time.Time,
	status Status,
	orderKeys map[kernel.UUID]bool,
	groupPhotoRef string,
	shippedAt *time.Time,
) (*ShipmentBatch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if courier == "" {
		return nil, errs.NewValueIsRequiredError("courier")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	restored := make(map[kernel.UUID]bool, len(orderKeys))
	for key := range orderKeys {
		restored[key] = true
	}

	return &ShipmentBatch{
		id:            id,
		courier:       courier,
		createdBy:     createdBy,
		createdAt:     createdAt,
		status:        status,
		orderKeys:     restored,
		groupPhotoRef: groupPhotoRef,
		shippedAt:     shippedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the ShipmentBatch instance was properly constructed.
func (b *ShipmentBatch) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrShipmentBatchIsNotConstructed
	}
	return nil
}

// IsEqual compares two batches by their unique identifiers.
func (b *ShipmentBatch) IsEqual(other *ShipmentBatch) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the batch's unique key.
func (b *ShipmentBatch) ID() kernel.UUID { return b.id }

// Courier returns the courier chosen when the batch was opened.
func (b *ShipmentBatch) Courier() string { return b.courier }

// CreatedBy returns the id of the operator who opened the batch.
func (b *ShipmentBatch) CreatedBy() kernel.UUID { return b.createdBy }

// CreatedAt returns the creation time.
func (b *ShipmentBatch) CreatedAt() time.Time { return b.createdAt }

// Status returns the current lifecycle status.
func (b *ShipmentBatch) Status() Status { return b.status }

// GroupPhotoRef returns the handover photo reference, empty until finalization.
func (b *ShipmentBatch) GroupPhotoRef() string { return b.groupPhotoRef }

// ShippedAt returns the finalization time, or nil while the batch is Open.
func (b *ShipmentBatch) ShippedAt() *time.Time { return b.shippedAt }

// OrderKeys returns a copy of the member order keys.
func (b *ShipmentBatch) OrderKeys() []kernel.UUID {
	keys := make([]kernel.UUID, 0, len(b.orderKeys))
	for key := range b.orderKeys {
		keys = append(keys, key)
	}
	return keys
}

// Contains reports whether the order is a member of the batch.
func (b *ShipmentBatch) Contains(orderID kernel.UUID) bool {
	return b.orderKeys[orderID]
}

// IsEmpty reports whether the batch has no members.
func (b *ShipmentBatch) IsEmpty() bool { return len(b.orderKeys) == 0 }

// AddOrder adds an order key to an open batch. Adding a key that is already a
// member is a no-op.
func (b *ShipmentBatch) AddOrder(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if b.status != Open {
		return errs.NewValueIsInvalidError("orders can only be added while the batch is Open")
	}

	b.orderKeys[orderID] = true
	return nil
}

// RemoveOrder removes an order key from an open batch.
func (b *ShipmentBatch) RemoveOrder(orderID kernel.UUID) error {
	if b.status != Open {
		return errs.NewValueIsInvalidError("orders can only be removed while the batch is Open")
	}
	if !b.orderKeys[orderID] {
		return errs.NewObjectNotFoundError("orderId", orderID.String())
	}

	delete(b.orderKeys, orderID)
	return nil
}

// Finalize closes the batch for courier pickup: it records the group photo and
// the shipment time and moves the batch to ShippedPendingVerification. The
// batch must have at least one member and a photo reference.
//
// Finalizing an already finalized batch is a no-op success, so a retry after a
// partial downstream write does not fail on the batch record itself.
func (b *ShipmentBatch) Finalize(groupPhotoRef string, shippedAt time.Time) error {
	if b.status == ShippedPendingVerification {
		return nil
	}
	if groupPhotoRef == "" {
		return errs.NewValueIsRequiredError("groupPhotoRef")
	}
	if len(b.orderKeys) == 0 {
		return errs.NewValueIsRequiredError("orderKeys")
	}

	newStatus, err := b.status.Finalize()
	if err != nil {
		return err
	}

	b.status = newStatus
	b.groupPhotoRef = groupPhotoRef
	b.shippedAt = &shippedAt
	return nil
}
