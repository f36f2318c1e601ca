package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrResumeOrCreateBatchCommandIsNotConstructed = errors.New(
	"ResumeOrCreateBatchCommand must be created via NewResumeOrCreateBatchCommand constructor",
)

// ResumeOrCreateBatchCommand represents an operator starting a shipment
// assembly session. When the operator already has an Open batch it is resumed
// with its original courier, regardless of the courier requested here; the
// batch id is only used when a new batch has to be created.
type ResumeOrCreateBatchCommand struct { //nolint:recvcheck //using for validation
	batchID     kernel.UUID
	courier     string
	requestedBy actor.Actor

	guard guard.ConstructorGuard
}

// NewResumeOrCreateBatchCommand creates a command to resume or open a batch.
func NewResumeOrCreateBatchCommand(
	batchID kernel.UUID,
	courier string,
	requestedBy actor.Actor,
) (ResumeOrCreateBatchCommand, error) {
	cmd := ResumeOrCreateBatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBatchID(batchID),
		cmd.setCourier(courier),
		cmd.setRequestedBy(requestedBy),
	); err != nil {
		return ResumeOrCreateBatchCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResumeOrCreateBatchCommand) Validate() error {
	return c.guard.Validate(ErrResumeOrCreateBatchCommandIsNotConstructed)
}

// BatchID returns the id to assign when a new batch is created.
func (c ResumeOrCreateBatchCommand) BatchID() kernel.UUID { return c.batchID }

// Courier returns the courier requested for a new batch.
func (c ResumeOrCreateBatchCommand) Courier() string { return c.courier }

// RequestedBy returns the actor issuing the command.
func (c ResumeOrCreateBatchCommand) RequestedBy() actor.Actor { return c.requestedBy }

func (c *ResumeOrCreateBatchCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}

	c.batchID = batchID
	return nil
}

func (c *ResumeOrCreateBatchCommand) setCourier(courier string) error {
	if courier == "" {
		return errs.NewValueIsRequiredError("courier")
	}

	c.courier = courier
	return nil
}

func (c *ResumeOrCreateBatchCommand) setRequestedBy(requestedBy actor.Actor) error {
	if err := requestedBy.Validate(); err != nil {
		return err
	}

	c.requestedBy = requestedBy
	return nil
}
