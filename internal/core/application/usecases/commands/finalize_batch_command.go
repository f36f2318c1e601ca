package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrFinalizeBatchCommandIsNotConstructed = errors.New(
	"FinalizeBatchCommand must be created via NewFinalizeBatchCommand constructor",
)

// FinalizeBatchCommand represents an operator handing a batch over to the
// courier, with a group photo of the stacked parcels.
type FinalizeBatchCommand struct { //nolint:recvcheck //using for validation
	batchID     kernel.UUID
	groupPhoto  EvidencePhoto
	requestedBy actor.Actor

	guard guard.ConstructorGuard
}

// NewFinalizeBatchCommand creates a command to finalize a batch.
func NewFinalizeBatchCommand(
	batchID kernel.UUID,
	groupPhoto EvidencePhoto,
	requestedBy actor.Actor,
) (FinalizeBatchCommand, error) {
	cmd := FinalizeBatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBatchID(batchID),
		cmd.setGroupPhoto(groupPhoto),
		cmd.setRequestedBy(requestedBy),
	); err != nil {
		return FinalizeBatchCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FinalizeBatchCommand) Validate() error {
	return c.guard.Validate(ErrFinalizeBatchCommandIsNotConstructed)
}

// BatchID returns the target batch key.
func (c FinalizeBatchCommand) BatchID() kernel.UUID { return c.batchID }

// GroupPhoto returns the handover photo to upload.
func (c FinalizeBatchCommand) GroupPhoto() EvidencePhoto { return c.groupPhoto }

// RequestedBy returns the actor issuing the command.
func (c FinalizeBatchCommand) RequestedBy() actor.Actor { return c.requestedBy }

func (c *FinalizeBatchCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}

	c.batchID = batchID
	return nil
}

func (c *FinalizeBatchCommand) setGroupPhoto(groupPhoto EvidencePhoto) error {
	if len(groupPhoto.Data) == 0 {
		return errs.NewValueIsRequiredError("groupPhoto")
	}

	c.groupPhoto = groupPhoto
	return nil
}

func (c *FinalizeBatchCommand) setRequestedBy(requestedBy actor.Actor) error {
	if err := requestedBy.Validate(); err != nil {
		return err
	}

	c.requestedBy = requestedBy
	return nil
}
