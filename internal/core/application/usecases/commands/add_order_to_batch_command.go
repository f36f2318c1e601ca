package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrAddOrderToBatchCommandIsNotConstructed = errors.New(
	"AddOrderToBatchCommand must be created via NewAddOrderToBatchCommand constructor",
)

// AddOrderToBatchCommand represents an operator scanning a package into an
// open batch. The order is resolved by its package code, exactly as printed on
// the label.
type AddOrderToBatchCommand struct { //nolint:recvcheck //using for validation
	batchID     kernel.UUID
	packageCode string
	requestedBy actor.Actor

	guard guard.ConstructorGuard
}

// NewAddOrderToBatchCommand creates a command to add a scanned package to a batch.
func NewAddOrderToBatchCommand(
	batchID kernel.UUID,
	packageCode string,
	requestedBy actor.Actor,
) (AddOrderToBatchCommand, error) {
	cmd := AddOrderToBatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBatchID(batchID),
		cmd.setPackageCode(packageCode),
		cmd.setRequestedBy(requestedBy),
	); err != nil {
		return AddOrderToBatchCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderToBatchCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderToBatchCommandIsNotConstructed)
}

// BatchID returns the target batch key.
func (c AddOrderToBatchCommand) BatchID() kernel.UUID { return c.batchID }

// PackageCode returns the scanned package label.
func (c AddOrderToBatchCommand) PackageCode() string { return c.packageCode }

// RequestedBy returns the actor issuing the command.
func (c AddOrderToBatchCommand) RequestedBy() actor.Actor { return c.requestedBy }

func (c *AddOrderToBatchCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}

	c.batchID = batchID
	return nil
}

func (c *AddOrderToBatchCommand) setPackageCode(packageCode string) error {
	if packageCode == "" {
		return errs.NewValueIsRequiredError("packageCode")
	}

	c.packageCode = packageCode
	return nil
}

func (c *AddOrderToBatchCommand) setRequestedBy(requestedBy actor.Actor) error {
	if err := requestedBy.Validate(); err != nil {
		return err
	}

	c.requestedBy = requestedBy
	return nil
}
