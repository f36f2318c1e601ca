package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrReconcileShipmentsCommandIsNotConstructed = errors.New(
	"ReconcileShipmentsCommand must be created via NewReconcileShipmentsCommand constructor",
)

// ReconcileShipmentsCommand triggers a repair pass over finalized batches
// whose member orders were left behind by a partial finalize. Issued by the
// scheduler, not by an actor.
type ReconcileShipmentsCommand struct {
	guard guard.ConstructorGuard
}

// NewReconcileShipmentsCommand creates a reconciliation command.
func NewReconcileShipmentsCommand() ReconcileShipmentsCommand {
	return ReconcileShipmentsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ReconcileShipmentsCommand) Validate() error {
	return c.guard.Validate(ErrReconcileShipmentsCommandIsNotConstructed)
}
