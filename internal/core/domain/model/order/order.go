package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a trackable package moving through the fulfillment pipeline.
// It is the aggregate root that manages the lifecycle from item assembly through
// packing, supervisor review, shipment, and final verification.
//
// Order follows these invariants:
//   - status is always a member of the fixed Status enum
//   - item quantities are always greater than zero
//   - an order with zero items cannot progress past item assembly
//   - status transitions follow the transition table in Status, except through
//     the explicitly audited Override operation
//   - can only be created through NewOrder or RestoreOrder
type Order struct {
	id              kernel.UUID
	packageCode     string
	platform        string
	platformOrderID string
	notes           string
	dueDate         time.Time
	createdBy       kernel.UUID
	createdAt       time.Time
	lastUpdatedAt   time.Time

	items  map[kernel.UUID]Item
	status Status

	packingInfo   *PackingInfo
	packCheck     *PackCheck
	shipmentInfo  *ShipmentInfo
	isConstructed bool
}

// NewOrder creates a new Order in AddingItems status with an empty item set.
//
// packageCode and dueDate are required. When platform is empty it is detected
// from the package code (see DetectPlatform). createdBy is the id of the
// administrator or supervisor creating the order.
func NewOrder(
	id kernel.UUID,
	packageCode string,
	platform string,
	platformOrderID string,
	dueDate time.Time,
	notes string,
	createdBy kernel.UUID,
	now time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if packageCode == "" {
		return nil, errs.NewValueIsRequiredError("packageCode")
	}
	if dueDate.IsZero() {
		return nil, errs.NewValueIsRequiredError("dueDate")
	}
	if err := createdBy.Validate(); err != nil {
		return nil, err
	}

	if platform == "" {
		platform = DetectPlatform(packageCode)
	}

	return &Order{
		id:              id,
		packageCode:     packageCode,
		platform:        platform,
		platformOrderID: platformOrderID,
		notes:           notes,
		dueDate:         dueDate,
		createdBy:       createdBy,
		createdAt:       now,
		lastUpdatedAt:   now,
		items:           make(map[kernel.UUID]Item),
		status:          AddingItems,
		isConstructed:   true,
	}, nil
}

// RestoreOrder reconstructs an Order from persistence with all fields as stored.
// The status must be a valid enum member; items are copied.
func RestoreOrder(
	id kernel.UUID,
	packageCode string,
	platform string,
	platformOrderID string,
	notes string,
	dueDate time.Time,
	createdBy kernel.UUID,
	createdAt time.Time,
	lastUpdatedAt time.Time,
	items map[kernel.UUID]Item,
	status Status,
	packingInfo *PackingInfo,
	packCheck *PackCheck,
	shipmentInfo *ShipmentInfo,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if packageCode == "" {
		return nil, errs.NewValueIsRequiredError("packageCode")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	restored := make(map[kernel.UUID]Item, len(items))
	for itemID, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		restored[itemID] = item
	}

	return &Order{
		id:              id,
		packageCode:     packageCode,
		platform:        platform,
		platformOrderID: platformOrderID,
		notes:           notes,
		dueDate:         dueDate,
		createdBy:       createdBy,
		createdAt:       createdAt,
		lastUpdatedAt:   lastUpdatedAt,
		items:           restored,
		status:          status,
		packingInfo:     packingInfo,
		packCheck:       packCheck,
		shipmentInfo:    shipmentInfo,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique key.
func (o *Order) ID() kernel.UUID { return o.id }

// PackageCode returns the carrier-facing package label.
func (o *Order) PackageCode() string { return o.packageCode }

// Platform returns the selling platform tag.
func (o *Order) Platform() string { return o.platform }

// PlatformOrderID returns the optional platform-side order id.
func (o *Order) PlatformOrderID() string { return o.platformOrderID }

// Notes returns the optional free-form notes.
func (o *Order) Notes() string { return o.notes }

// DueDate returns the fulfillment due date.
func (o *Order) DueDate() time.Time { return o.dueDate }

// CreatedBy returns the id of the actor who created the order.
func (o *Order) CreatedBy() kernel.UUID { return o.createdBy }

// CreatedAt returns the creation time.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// LastUpdatedAt returns the time of the last mutation.
func (o *Order) LastUpdatedAt() time.Time { return o.lastUpdatedAt }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// Items returns a copy of the order's item lines keyed by item id.
func (o *Order) Items() map[kernel.UUID]Item {
	items := make(map[kernel.UUID]Item, len(o.items))
	for id, item := range o.items {
		items[id] = item
	}
	return items
}

// PackingInfo returns the recorded packing evidence, or nil before submission.
func (o *Order) PackingInfo() *PackingInfo { return o.packingInfo }

// PackCheck returns the recorded supervisor review, or nil before review.
func (o *Order) PackCheck() *PackCheck { return o.packCheck }

// ShipmentInfo returns the shipment record, or nil before shipping.
func (o *Order) ShipmentInfo() *ShipmentInfo { return o.shipmentInfo }

// AddItem adds a product line while the order is still assembling items.
func (o *Order) AddItem(itemID kernel.UUID, item Item) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	if err := item.Validate(); err != nil {
		return err
	}
	if o.status != AddingItems {
		return errs.NewValueIsInvalidError("items can only be added while the order is in AddingItems")
	}

	o.items[itemID] = item
	return nil
}

// RemoveItem removes a product line while the order is still assembling items.
func (o *Order) RemoveItem(itemID kernel.UUID) error {
	if o.status != AddingItems {
		return errs.NewValueIsInvalidError("items can only be removed while the order is in AddingItems")
	}
	if _, ok := o.items[itemID]; !ok {
		return errs.NewObjectNotFoundError("itemId", itemID.String())
	}

	delete(o.items, itemID)
	return nil
}

// ConfirmItems closes item assembly and moves the order to ReadyToPack.
// Fails when the item set is empty, regardless of who asks.
func (o *Order) ConfirmItems(notes string, now time.Time) error {
	if len(o.items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	newStatus, err := o.status.ConfirmItems()
	if err != nil {
		return err
	}

	o.status = newStatus
	if notes != "" {
		o.notes = notes
	}
	o.touch(now)
	return nil
}

// SubmitPackingEvidence records packing evidence and moves the order to
// PendingPackCheck. Valid from ReadyToPack and from PackRejected
// (re-submission after a failed check). At least one evidence photo
// reference is required.
func (o *Order) SubmitPackingEvidence(packedBy kernel.UUID, evidencePhotoRefs []string, operatorNotes string, now time.Time) error {
	info, err := NewPackingInfo(packedBy, now, evidencePhotoRefs, operatorNotes)
	if err != nil {
		return err
	}

	newStatus, err := o.status.SubmitPacking()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.packingInfo = &info
	o.touch(now)
	return nil
}

// RecordPackCheck records the supervisor's review of packing evidence and
// moves the order to ReadyForShipment (approved) or PackRejected.
func (o *Order) RecordPackCheck(checkedBy kernel.UUID, approved bool, notes string, now time.Time) error {
	check, err := NewPackCheck(checkedBy, now, approved, notes)
	if err != nil {
		return err
	}

	newStatus, err := o.status.RecordPackCheck(approved)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.packCheck = &check
	o.touch(now)
	return nil
}

// MarkShipped records that the order left the warehouse with the given batch.
// Called by batch finalization and by the reconciliation pass, never directly
// by an actor.
//
// Idempotency: marking an already shipped order with the same batch id is a
// no-op. Marking it with a different batch id re-targets shipmentInfo.batchId
// (last finalize wins); the earlier batch keeps the key in its own member set
// so the order never disappears from every batch.
func (o *Order) MarkShipped(batchID kernel.UUID, shippedAt time.Time) error {
	if o.status == Shipped && o.shipmentInfo != nil {
		if o.shipmentInfo.BatchID().IsEqual(batchID) {
			return nil
		}

		info, err := NewShipmentInfo(batchID, shippedAt)
		if err != nil {
			return err
		}
		o.shipmentInfo = &info
		o.touch(shippedAt)
		return nil
	}

	newStatus, err := o.status.MarkShipped()
	if err != nil {
		return err
	}

	info, err := NewShipmentInfo(batchID, shippedAt)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.shipmentInfo = &info
	o.touch(shippedAt)
	return nil
}

// VerifyShipment records the final administrative confirmation.
// Idempotent: verifying an already approved order is a no-op success.
func (o *Order) VerifyShipment(verifiedBy kernel.UUID, now time.Time) error {
	if err := verifiedBy.Validate(); err != nil {
		return err
	}

	if o.status == ShipmentApproved {
		return nil
	}

	newStatus, err := o.status.VerifyShipment()
	if err != nil {
		return err
	}
	if o.shipmentInfo == nil {
		return errs.NewValueIsRequiredError("shipmentInfo")
	}

	o.status = newStatus
	o.shipmentInfo.recordVerification(verifiedBy, now)
	o.touch(now)
	return nil
}

// Override directly sets status, package code, and/or due date, bypassing the
// transition table. This is the administrative escape hatch; callers must gate
// it on OpOverrideOrder and audit it. A zero-valued field is left unchanged;
// at least one field must be supplied. The new status must still be a member
// of the fixed enum.
func (o *Order) Override(newStatus Status, packageCode string, dueDate time.Time, now time.Time) error {
	if newStatus == StatusUnknown && packageCode == "" && dueDate.IsZero() {
		return errs.NewValueIsRequiredError("override fields")
	}

	if newStatus != StatusUnknown {
		if err := newStatus.Validate(); err != nil {
			return err
		}
		o.status = newStatus
	}
	if packageCode != "" {
		o.packageCode = packageCode
	}
	if !dueDate.IsZero() {
		o.dueDate = dueDate
	}

	o.touch(now)
	return nil
}

func (o *Order) touch(now time.Time) {
	o.lastUpdatedAt = now
}
