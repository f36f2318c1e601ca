package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrConfirmItemsCommandIsNotConstructed = errors.New(
	"ConfirmItemsCommand must be created via NewConfirmItemsCommand constructor",
)

// ConfirmItemsCommand represents a request to close item assembly and hand the
// order to the packing floor.
type ConfirmItemsCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	notes       string
	requestedBy actor.Actor

	guard guard.ConstructorGuard
}

// NewConfirmItemsCommand creates a command to confirm an order's item set.
func NewConfirmItemsCommand(orderID kernel.UUID, notes string, requestedBy actor.Actor) (ConfirmItemsCommand, error) {
	cmd := ConfirmItemsCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRequestedBy(requestedBy),
	); err != nil {
		return ConfirmItemsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmItemsCommand) Validate() error {
	return c.guard.Validate(ErrConfirmItemsCommandIsNotConstructed)
}

// OrderID returns the target order key.
func (c ConfirmItemsCommand) OrderID() kernel.UUID { return c.orderID }

// Notes returns the optional notes recorded at confirmation.
func (c ConfirmItemsCommand) Notes() string { return c.notes }

// RequestedBy returns the actor issuing the command.
func (c ConfirmItemsCommand) RequestedBy() actor.Actor { return c.requestedBy }

func (c *ConfirmItemsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmItemsCommand) setRequestedBy(requestedBy actor.Actor) error {
	if err := requestedBy.Validate(); err != nil {
		return err
	}

	c.requestedBy = requestedBy
	return nil
}
