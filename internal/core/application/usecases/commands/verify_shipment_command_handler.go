package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/actor"
)

// VerifyShipmentCommandHandler handles the final administrative confirmation
// of a shipped order. Verifying an already approved order succeeds without
// changing anything.
type VerifyShipmentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewVerifyShipmentCommandHandler creates a handler for shipment verification.
func NewVerifyShipmentCommandHandler(uowFactory OrderUoWFactory) VerifyShipmentCommandHandler {
	return VerifyShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle moves the order from Shipped to ShipmentApproved.
func (h *VerifyShipmentCommandHandler) Handle(ctx context.Context, cmd VerifyShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.RequestedBy().Authorize(actor.OpVerifyShipment); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	target, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = target.VerifyShipment(cmd.RequestedBy().ID(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
