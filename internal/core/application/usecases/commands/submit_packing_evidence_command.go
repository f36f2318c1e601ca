package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrSubmitPackingEvidenceCommandIsNotConstructed = errors.New(
	"SubmitPackingEvidenceCommand must be created via NewSubmitPackingEvidenceCommand constructor",
)

// EvidencePhoto carries the raw bytes of one packing photo before upload.
type EvidencePhoto struct {
	Data        []byte
	ContentType string
}

// SubmitPackingEvidenceCommand represents an operator submitting packing
// evidence for supervisor review. At least one photo is required; photos are
// uploaded to the blob store before the order is touched.
type SubmitPackingEvidenceCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	photos        []EvidencePhoto
	operatorNotes string
	requestedBy   actor.Actor

	guard guard.ConstructorGuard
}

// NewSubmitPackingEvidenceCommand creates a command to submit packing evidence.
func NewSubmitPackingEvidenceCommand(
	orderID kernel.UUID,
	photos []EvidencePhoto,
	operatorNotes string,
	requestedBy actor.Actor,
) (SubmitPackingEvidenceCommand, error) {
	cmd := SubmitPackingEvidenceCommand{
		operatorNotes: operatorNotes,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPhotos(photos),
		cmd.setRequestedBy(requestedBy),
	); err != nil {
		return SubmitPackingEvidenceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitPackingEvidenceCommand) Validate() error {
	return c.guard.Validate(ErrSubmitPackingEvidenceCommandIsNotConstructed)
}

// OrderID returns the target order key.
func (c SubmitPackingEvidenceCommand) OrderID() kernel.UUID { return c.orderID }

// Photos returns the evidence photos to upload.
func (c SubmitPackingEvidenceCommand) Photos() []EvidencePhoto { return c.photos }

// OperatorNotes returns the optional notes from the packing operator.
func (c SubmitPackingEvidenceCommand) OperatorNotes() string { return c.operatorNotes }

// RequestedBy returns the actor issuing the command.
func (c SubmitPackingEvidenceCommand) RequestedBy() actor.Actor { return c.requestedBy }

func (c *SubmitPackingEvidenceCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitPackingEvidenceCommand) setPhotos(photos []EvidencePhoto) error {
	if len(photos) == 0 {
		return errs.NewValueIsRequiredError("photos")
	}
	for _, photo := range photos {
		if len(photo.Data) == 0 {
			return errs.NewValueIsRequiredError("photo data")
		}
	}

	c.photos = photos
	return nil
}

func (c *SubmitPackingEvidenceCommand) setRequestedBy(requestedBy actor.Actor) error {
	if err := requestedBy.Validate(); err != nil {
		return err
	}

	c.requestedBy = requestedBy
	return nil
}
