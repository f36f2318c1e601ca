package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrRemoveOrderFromBatchCommandIsNotConstructed = errors.New(
	"RemoveOrderFromBatchCommand must be created via NewRemoveOrderFromBatchCommand constructor",
)

// RemoveOrderFromBatchCommand represents an operator taking a package back out
// of an open batch.
type RemoveOrderFromBatchCommand struct { //nolint:recvcheck //using for validation
	batchID     kernel.UUID
	orderID     kernel.UUID
	requestedBy actor.Actor

	guard guard.ConstructorGuard
}

// NewRemoveOrderFromBatchCommand creates a command to remove a batch member.
func NewRemoveOrderFromBatchCommand(
	batchID kernel.UUID,
	orderID kernel.UUID,
	requestedBy actor.Actor,
) (RemoveOrderFromBatchCommand, error) {
	cmd := RemoveOrderFromBatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBatchID(batchID),
		cmd.setOrderID(orderID),
		cmd.setRequestedBy(requestedBy),
	); err != nil {
		return RemoveOrderFromBatchCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderFromBatchCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderFromBatchCommandIsNotConstructed)
}

// BatchID returns the target batch key.
func (c RemoveOrderFromBatchCommand) BatchID() kernel.UUID { return c.batchID }

// OrderID returns the member order key to remove.
func (c RemoveOrderFromBatchCommand) OrderID() kernel.UUID { return c.orderID }

// RequestedBy returns the actor issuing the command.
func (c RemoveOrderFromBatchCommand) RequestedBy() actor.Actor { return c.requestedBy }

func (c *RemoveOrderFromBatchCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}

	c.batchID = batchID
	return nil
}

func (c *RemoveOrderFromBatchCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RemoveOrderFromBatchCommand) setRequestedBy(requestedBy actor.Actor) error {
	if err := requestedBy.Validate(); err != nil {
		return err
	}

	c.requestedBy = requestedBy
	return nil
}
