package order

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// PackingInfo records who packed an order, when, and the photographic
// evidence captured while doing so. The photo references are ordered blob
// locators produced by the blob store.
type PackingInfo struct {
	packedBy          kernel.UUID
	packedAt          time.Time
	evidencePhotoRefs []string
	operatorNotes     string
}

// NewPackingInfo creates a PackingInfo. At least one evidence reference
// is required.
func NewPackingInfo(packedBy kernel.UUID, packedAt time.Time, evidencePhotoRefs []string, operatorNotes string) (PackingInfo, error) {
	if err := packedBy.Validate(); err != nil {
		return PackingInfo{}, err
	}
	if len(evidencePhotoRefs) == 0 {
		return PackingInfo{}, errs.NewValueIsRequiredError("evidencePhotoRefs")
	}

	refs := make([]string, len(evidencePhotoRefs))
	copy(refs, evidencePhotoRefs)

	return PackingInfo{
		packedBy:          packedBy,
		packedAt:          packedAt,
		evidencePhotoRefs: refs,
		operatorNotes:     operatorNotes,
	}, nil
}

// PackedBy returns the id of the actor who packed the order.
func (p PackingInfo) PackedBy() kernel.UUID { return p.packedBy }

// PackedAt returns when the evidence was submitted.
func (p PackingInfo) PackedAt() time.Time { return p.packedAt }

// EvidencePhotoRefs returns the ordered evidence photo references.
func (p PackingInfo) EvidencePhotoRefs() []string {
	refs := make([]string, len(p.evidencePhotoRefs))
	copy(refs, p.evidencePhotoRefs)
	return refs
}

// OperatorNotes returns the optional notes left by the packer.
func (p PackingInfo) OperatorNotes() string { return p.operatorNotes }

// PackCheck records a supervisor's review of packing evidence.
type PackCheck struct {
	checkedBy  kernel.UUID
	checkedAt  time.Time
	isApproved bool
	notes      string
}

// NewPackCheck creates a PackCheck.
func NewPackCheck(checkedBy kernel.UUID, checkedAt time.Time, isApproved bool, notes string) (PackCheck, error) {
	if err := checkedBy.Validate(); err != nil {
		return PackCheck{}, err
	}

	return PackCheck{
		checkedBy:  checkedBy,
		checkedAt:  checkedAt,
		isApproved: isApproved,
		notes:      notes,
	}, nil
}

// CheckedBy returns the id of the reviewing supervisor.
func (c PackCheck) CheckedBy() kernel.UUID { return c.checkedBy }

// CheckedAt returns when the review happened.
func (c PackCheck) CheckedAt() time.Time { return c.checkedAt }

// IsApproved reports the review outcome.
func (c PackCheck) IsApproved() bool { return c.isApproved }

// Notes returns the optional review notes.
func (c PackCheck) Notes() string { return c.notes }

// ShipmentInfo records the batch an order shipped with and, once verified,
// the final administrative confirmation.
type ShipmentInfo struct {
	batchID         kernel.UUID
	shippedAt       time.Time
	adminVerifiedBy *kernel.UUID
	adminVerifiedAt *time.Time
}

// NewShipmentInfo creates a ShipmentInfo at ship time, before verification.
func NewShipmentInfo(batchID kernel.UUID, shippedAt time.Time) (ShipmentInfo, error) {
	if err := batchID.Validate(); err != nil {
		return ShipmentInfo{}, err
	}

	return ShipmentInfo{
		batchID:   batchID,
		shippedAt: shippedAt,
	}, nil
}

// RestoreShipmentInfo reconstructs a ShipmentInfo from persistence,
// including an already recorded verification.
func RestoreShipmentInfo(batchID kernel.UUID, shippedAt time.Time, verifiedBy *kernel.UUID, verifiedAt *time.Time) (ShipmentInfo, error) {
	info, err := NewShipmentInfo(batchID, shippedAt)
	if err != nil {
		return ShipmentInfo{}, err
	}
	info.adminVerifiedBy = verifiedBy
	info.adminVerifiedAt = verifiedAt
	return info, nil
}

// BatchID returns the id of the batch the order shipped with.
func (s ShipmentInfo) BatchID() kernel.UUID { return s.batchID }

// ShippedAt returns when the batch was finalized.
func (s ShipmentInfo) ShippedAt() time.Time { return s.shippedAt }

// AdminVerifiedBy returns the verifying actor's id, or nil before verification.
func (s ShipmentInfo) AdminVerifiedBy() *kernel.UUID { return s.adminVerifiedBy }

// AdminVerifiedAt returns the verification time, or nil before verification.
func (s ShipmentInfo) AdminVerifiedAt() *time.Time { return s.adminVerifiedAt }

func (s *ShipmentInfo) recordVerification(verifiedBy kernel.UUID, verifiedAt time.Time) {
	s.adminVerifiedBy = &verifiedBy
	s.adminVerifiedAt = &verifiedAt
}
