package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrVerifyShipmentCommandIsNotConstructed = errors.New(
	"VerifyShipmentCommand must be created via NewVerifyShipmentCommand constructor",
)

// VerifyShipmentCommand represents the final administrative confirmation of a
// single shipped order.
type VerifyShipmentCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	requestedBy actor.Actor

	guard guard.ConstructorGuard
}

// NewVerifyShipmentCommand creates a command to verify one shipped order.
func NewVerifyShipmentCommand(orderID kernel.UUID, requestedBy actor.Actor) (VerifyShipmentCommand, error) {
	cmd := VerifyShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRequestedBy(requestedBy),
	); err != nil {
		return VerifyShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyShipmentCommand) Validate() error {
	return c.guard.Validate(ErrVerifyShipmentCommandIsNotConstructed)
}

// OrderID returns the target order key.
func (c VerifyShipmentCommand) OrderID() kernel.UUID { return c.orderID }

// RequestedBy returns the actor issuing the command.
func (c VerifyShipmentCommand) RequestedBy() actor.Actor { return c.requestedBy }

func (c *VerifyShipmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *VerifyShipmentCommand) setRequestedBy(requestedBy actor.Actor) error {
	if err := requestedBy.Validate(); err != nil {
		return err
	}

	c.requestedBy = requestedBy
	return nil
}
