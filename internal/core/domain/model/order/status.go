package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	AddingItems ──> ReadyToPack ──> PendingPackCheck ──┬──> ReadyForShipment ──> Shipped ──> ShipmentApproved
//	                                      ^            │
//	                                      │            └──> PackRejected
//	                                      └──────────────────────┘
//	                              (re-submission after rejection)
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// AddingItems is the initial status while the order's item list is assembled.
	AddingItems

	// ReadyToPack indicates the item list is confirmed and packing can begin.
	ReadyToPack

	// PendingPackCheck indicates packing evidence was submitted and awaits
	// supervisor review.
	PendingPackCheck

	// ReadyForShipment indicates the pack check was approved; the order is
	// eligible for batch assembly.
	ReadyForShipment

	// PackRejected indicates the pack check failed; the operator must
	// re-submit packing evidence.
	PackRejected

	// Shipped indicates the order left the warehouse as part of a finalized
	// shipment batch.
	Shipped

	// ShipmentApproved indicates final administrative confirmation.
	// This is a terminal state with no further transitions allowed.
	ShipmentApproved
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "Unknown",
		AddingItems:      "AddingItems",
		ReadyToPack:      "ReadyToPack",
		PendingPackCheck: "PendingPackCheck",
		ReadyForShipment: "ReadyForShipment",
		PackRejected:     "PackRejected",
		Shipped:          "Shipped",
		ShipmentApproved: "ShipmentApproved",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		AddingItems:      "AddingItems",
		ReadyToPack:      "ReadyToPack",
		PendingPackCheck: "PendingPackCheck",
		ReadyForShipment: "ReadyForShipment",
		PackRejected:     "PackRejected",
		Shipped:          "Shipped",
		ShipmentApproved: "ShipmentApproved",
	}
}

// StatusFromString maps a persisted status label back to a Status.
// Returns StatusUnknown for unrecognized labels.
func StatusFromString(s string) Status {
	for status, label := range getValidStatusStrings() {
		if label == s {
			return status
		}
	}
	return StatusUnknown
}

// Validate checks if the Status value is a member of the fixed enum.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer; safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == ShipmentApproved
}

// IsEligibleForBatch reports whether an order in this status may be added
// to a shipment batch.
func (s Status) IsEligibleForBatch() bool {
	return s == ReadyForShipment
}

// ConfirmItems transitions the status to ReadyToPack.
//
// Valid transitions:
//   - AddingItems -> ReadyToPack
func (s Status) ConfirmItems() (Status, error) {
	if s != AddingItems {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to confirm items", s.String()),
		)
	}

	return ReadyToPack, nil
}

// SubmitPacking transitions the status to PendingPackCheck.
//
// Valid transitions:
//   - ReadyToPack -> PendingPackCheck (first submission)
//   - PackRejected -> PendingPackCheck (re-submission after rejection)
func (s Status) SubmitPacking() (Status, error) {
	if s != ReadyToPack && s != PackRejected {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to submit packing evidence", s.String()),
		)
	}

	return PendingPackCheck, nil
}

// RecordPackCheck transitions the status based on the supervisor's decision.
//
// Valid transitions:
//   - PendingPackCheck -> ReadyForShipment (approved)
//   - PendingPackCheck -> PackRejected (rejected)
func (s Status) RecordPackCheck(approved bool) (Status, error) {
	if s != PendingPackCheck {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to record a pack check", s.String()),
		)
	}

	if approved {
		return ReadyForShipment, nil
	}
	return PackRejected, nil
}

// MarkShipped transitions the status to Shipped.
//
// Valid transitions:
//   - ReadyForShipment -> Shipped
//
// Idempotent re-application for an already Shipped order is handled by the
// aggregate, which also knows the batch the order shipped with.
func (s Status) MarkShipped() (Status, error) {
	if s != ReadyForShipment {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to mark shipped", s.String()),
		)
	}

	return Shipped, nil
}

// VerifyShipment transitions the status to ShipmentApproved.
//
// Valid transitions:
//   - Shipped -> ShipmentApproved
//
// The aggregate treats a repeat verification of an already approved order
// as a no-op success rather than calling this again.
func (s Status) VerifyShipment() (Status, error) {
	if s != Shipped {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to verify shipment", s.String()),
		)
	}

	return ShipmentApproved, nil
}
