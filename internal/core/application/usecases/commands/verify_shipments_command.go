package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrVerifyShipmentsCommandIsNotConstructed = errors.New(
	"VerifyShipmentsCommand must be created via NewVerifyShipmentsCommand constructor",
)

// VerifyShipmentsCommand represents a bulk administrative confirmation over
// multiple shipped orders, typically a whole batch at once.
type VerifyShipmentsCommand struct { //nolint:recvcheck //using for validation
	orderIDs    []kernel.UUID
	requestedBy actor.Actor

	guard guard.ConstructorGuard
}

// NewVerifyShipmentsCommand creates a command to verify several shipped orders.
func NewVerifyShipmentsCommand(orderIDs []kernel.UUID, requestedBy actor.Actor) (VerifyShipmentsCommand, error) {
	cmd := VerifyShipmentsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderIDs(orderIDs),
		cmd.setRequestedBy(requestedBy),
	); err != nil {
		return VerifyShipmentsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyShipmentsCommand) Validate() error {
	return c.guard.Validate(ErrVerifyShipmentsCommandIsNotConstructed)
}

// OrderIDs returns the target order keys.
func (c VerifyShipmentsCommand) OrderIDs() []kernel.UUID { return c.orderIDs }

// RequestedBy returns the actor issuing the command.
func (c VerifyShipmentsCommand) RequestedBy() actor.Actor { return c.requestedBy }

func (c *VerifyShipmentsCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	if len(orderIDs) == 0 {
		return errs.NewValueIsRequiredError("orderIds")
	}
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.orderIDs = orderIDs
	return nil
}

func (c *VerifyShipmentsCommand) setRequestedBy(requestedBy actor.Actor) error {
	if err := requestedBy.Validate(); err != nil {
		return err
	}

	c.requestedBy = requestedBy
	return nil
}
