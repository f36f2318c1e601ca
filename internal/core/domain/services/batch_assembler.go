package services

import (
	"fmt"

	"fulfillment/internal/core/domain/model/batch"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// ErrOrderNotEligible is returned when an order cannot join a shipment batch
// because it has not passed the supervisor pack check, or has already moved
// past ReadyForShipment. A scan that resolves to an ineligible order is the
// same class of failure as one that resolves to nothing: the operator retries
// with a different label, so the error unwraps to ErrObjectNotFound.
var ErrOrderNotEligible = fmt.Errorf("%w: order is not eligible for shipment", errs.ErrObjectNotFound)

// AssemblySession is the working state of one operator assembling one batch.
// It is an explicit value that callers hold and pass around; there is no
// shared or ambient session. Members maps each order key to its package code
// so scanning UIs can show what is already in the batch.
type AssemblySession struct {
	BatchID    kernel.UUID
	OperatorID kernel.UUID
	Courier    string
	Members    map[kernel.UUID]string
}

// NewAssemblySession builds a session snapshot from a batch and the resolved
// package codes of its members. Keys without a resolved code are included with
// an empty code so the member count always matches the batch.
func NewAssemblySession(b *batch.ShipmentBatch, packageCodes map[kernel.UUID]string) (AssemblySession, error) {
	if err := b.Validate(); err != nil {
		return AssemblySession{}, err
	}

	members := make(map[kernel.UUID]string)
	for _, key := range b.OrderKeys() {
		members[key] = packageCodes[key]
	}

	return AssemblySession{
		BatchID:    b.ID(),
		OperatorID: b.CreatedBy(),
		Courier:    b.Courier(),
		Members:    members,
	}, nil
}

// BatchAssembler is a domain service that adds orders to and removes orders
// from an open shipment batch.
//
// Business rules:
//   - only orders in ReadyForShipment may join a batch
//   - adding an order that is already a member is a no-op, reported to the
//     caller so it can inform the operator instead of failing the scan
//   - membership only changes while the batch is Open
type BatchAssembler struct{}

// NewBatchAssembler creates a new BatchAssembler instance.
func NewBatchAssembler() BatchAssembler {
	return BatchAssembler{}
}

// AddOrder adds the order to the batch. It returns false with a nil error when
// the order is already a member, and ErrOrderNotEligible when the order has
// not passed the pack check.
func (a BatchAssembler) AddOrder(b *batch.ShipmentBatch, o *order.Order) (bool, error) {
	if err := b.Validate(); err != nil {
		return false, err
	}
	if err := o.Validate(); err != nil {
		return false, err
	}

	if b.Contains(o.ID()) {
		return false, nil
	}

	if !o.Status().IsEligibleForBatch() {
		return false, ErrOrderNotEligible
	}

	if err := b.AddOrder(o.ID()); err != nil {
		return false, err
	}
	return true, nil
}

// RemoveOrder removes the order key from the batch.
func (a BatchAssembler) RemoveOrder(b *batch.ShipmentBatch, orderID kernel.UUID) error {
	if err := b.Validate(); err != nil {
		return err
	}
	return b.RemoveOrder(orderID)
}
