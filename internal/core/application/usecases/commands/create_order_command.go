package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new order for
// fulfillment. The package code is required; the platform is optional and is
// detected from the package code when empty.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	packageCode     string
	platform        string
	platformOrderID string
	dueDate         time.Time
	notes           string
	requestedBy     actor.Actor

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	packageCode string,
	platform string,
	platformOrderID string,
	dueDate time.Time,
	notes string,
	requestedBy actor.Actor,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		platform:        platform,
		platformOrderID: platformOrderID,
		notes:           notes,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPackageCode(packageCode),
		cmd.setDueDate(dueDate),
		cmd.setRequestedBy(requestedBy),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// PackageCode returns the carrier-facing package label.
func (c CreateOrderCommand) PackageCode() string { return c.packageCode }

// Platform returns the optional selling platform tag.
func (c CreateOrderCommand) Platform() string { return c.platform }

// PlatformOrderID returns the optional platform-side order id.
func (c CreateOrderCommand) PlatformOrderID() string { return c.platformOrderID }

// DueDate returns the fulfillment due date.
func (c CreateOrderCommand) DueDate() time.Time { return c.dueDate }

// Notes returns the optional free-form notes.
func (c CreateOrderCommand) Notes() string { return c.notes }

// RequestedBy returns the actor issuing the command.
func (c CreateOrderCommand) RequestedBy() actor.Actor { return c.requestedBy }

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setPackageCode(packageCode string) error {
	if packageCode == "" {
		return errs.NewValueIsRequiredError("packageCode")
	}

	c.packageCode = packageCode
	return nil
}

func (c *CreateOrderCommand) setDueDate(dueDate time.Time) error {
	if dueDate.IsZero() {
		return errs.NewValueIsRequiredError("dueDate")
	}

	c.dueDate = dueDate
	return nil
}

func (c *CreateOrderCommand) setRequestedBy(requestedBy actor.Actor) error {
	if err := requestedBy.Validate(); err != nil {
		return err
	}

	c.requestedBy = requestedBy
	return nil
}
