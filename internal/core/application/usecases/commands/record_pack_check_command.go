package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrRecordPackCheckCommandIsNotConstructed = errors.New(
	"RecordPackCheckCommand must be created via NewRecordPackCheckCommand constructor",
)

// RecordPackCheckCommand represents a supervisor's verdict on submitted
// packing evidence.
type RecordPackCheckCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	approved    bool
	notes       string
	requestedBy actor.Actor

	guard guard.ConstructorGuard
}

// NewRecordPackCheckCommand creates a command to record a pack check verdict.
func NewRecordPackCheckCommand(
	orderID kernel.UUID,
	approved bool,
	notes string,
	requestedBy actor.Actor,
) (RecordPackCheckCommand, error) {
	cmd := RecordPackCheckCommand{
		approved: approved,
		notes:    notes,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRequestedBy(requestedBy),
	); err != nil {
		return RecordPackCheckCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPackCheckCommand) Validate() error {
	return c.guard.Validate(ErrRecordPackCheckCommandIsNotConstructed)
}

// OrderID returns the target order key.
func (c RecordPackCheckCommand) OrderID() kernel.UUID { return c.orderID }

// Approved reports the verdict.
func (c RecordPackCheckCommand) Approved() bool { return c.approved }

// Notes returns the optional reviewer notes, typically a rejection reason.
func (c RecordPackCheckCommand) Notes() string { return c.notes }

// RequestedBy returns the actor issuing the command.
func (c RecordPackCheckCommand) RequestedBy() actor.Actor { return c.requestedBy }

func (c *RecordPackCheckCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RecordPackCheckCommand) setRequestedBy(requestedBy actor.Actor) error {
	if err := requestedBy.Validate(); err != nil {
		return err
	}

	c.requestedBy = requestedBy
	return nil
}
