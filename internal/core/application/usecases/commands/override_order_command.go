package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrOverrideOrderCommandIsNotConstructed = errors.New(
	"OverrideOrderCommand must be created via NewOverrideOrderCommand constructor",
)

// OverrideOrderCommand represents an administrative override of an order's
// status, package code, or due date. This bypasses the transition table and is
// always audited; zero-valued fields are left unchanged.
type OverrideOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	newStatus   order.Status
	packageCode string
	dueDate     time.Time
	requestedBy actor.Actor

	guard guard.ConstructorGuard
}

// NewOverrideOrderCommand creates an override command. At least one of
// newStatus, packageCode, or dueDate must be supplied; a supplied status must
// be a member of the fixed enum.
func NewOverrideOrderCommand(
	orderID kernel.UUID,
	newStatus order.Status,
	packageCode string,
	dueDate time.Time,
	requestedBy actor.Actor,
) (OverrideOrderCommand, error) {
	cmd := OverrideOrderCommand{
		packageCode: packageCode,
		dueDate:     dueDate,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setNewStatus(newStatus),
		cmd.setRequestedBy(requestedBy),
	); err != nil {
		return OverrideOrderCommand{}, err
	}

	if newStatus == order.StatusUnknown && packageCode == "" && dueDate.IsZero() {
		return OverrideOrderCommand{}, errs.NewValueIsRequiredError("override fields")
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OverrideOrderCommand) Validate() error {
	return c.guard.Validate(ErrOverrideOrderCommandIsNotConstructed)
}

// OrderID returns the target order key.
func (c OverrideOrderCommand) OrderID() kernel.UUID { return c.orderID }

// NewStatus returns the status to force, or StatusUnknown to leave it alone.
func (c OverrideOrderCommand) NewStatus() order.Status { return c.newStatus }

// PackageCode returns the replacement package code, or empty to leave it alone.
func (c OverrideOrderCommand) PackageCode() string { return c.packageCode }

// DueDate returns the replacement due date, or zero to leave it alone.
func (c OverrideOrderCommand) DueDate() time.Time { return c.dueDate }

// RequestedBy returns the actor issuing the command.
func (c OverrideOrderCommand) RequestedBy() actor.Actor { return c.requestedBy }

func (c *OverrideOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *OverrideOrderCommand) setNewStatus(newStatus order.Status) error {
	if newStatus != order.StatusUnknown {
		if err := newStatus.Validate(); err != nil {
			return err
		}
	}

	c.newStatus = newStatus
	return nil
}

func (c *OverrideOrderCommand) setRequestedBy(requestedBy actor.Actor) error {
	if err := requestedBy.Validate(); err != nil {
		return err
	}

	c.requestedBy = requestedBy
	return nil
}
