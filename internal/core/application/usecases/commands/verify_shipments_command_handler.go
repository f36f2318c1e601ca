package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// VerifyShipmentsCommandHandler handles bulk shipment verification.
// Each order is verified in its own unit of work, best effort; a failure on
// one key does not undo the others. When any key fails the caller gets a
// PartialWriteError listing applied and failed keys. The whole command is
// repeat-safe because single verification is idempotent.
type VerifyShipmentsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewVerifyShipmentsCommandHandler creates a handler for bulk verification.
func NewVerifyShipmentsCommandHandler(uowFactory OrderUoWFactory) VerifyShipmentsCommandHandler {
	return VerifyShipmentsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies each order in turn.
func (h *VerifyShipmentsCommandHandler) Handle(ctx context.Context, cmd VerifyShipmentsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.RequestedBy().Authorize(actor.OpVerifyShipment); err != nil {
		return err
	}

	applied := make([]string, 0, len(cmd.OrderIDs()))
	failed := make([]string, 0)
	var firstFailure error

	for _, orderID := range cmd.OrderIDs() {
		if err := h.verifyOne(ctx, orderID, cmd.RequestedBy().ID()); err != nil {
			failed = append(failed, orderID.String())
			if firstFailure == nil {
				firstFailure = err
			}
			continue
		}
		applied = append(applied, orderID.String())
	}

	if len(failed) > 0 {
		return errs.NewPartialWriteError("verify shipments", applied, failed, firstFailure)
	}

	return nil
}

func (h *VerifyShipmentsCommandHandler) verifyOne(ctx context.Context, orderID, verifiedBy kernel.UUID) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	target, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	if err = target.VerifyShipment(verifiedBy, time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
