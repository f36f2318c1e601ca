package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/actor"
)

// RecordPackCheckCommandHandler handles supervisor pack check verdicts.
type RecordPackCheckCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRecordPackCheckCommandHandler creates a handler for pack check verdicts.
func NewRecordPackCheckCommandHandler(uowFactory OrderUoWFactory) RecordPackCheckCommandHandler {
	return RecordPackCheckCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle records the verdict, moving the order to ReadyForShipment when
// approved or PackRejected otherwise.
func (h *RecordPackCheckCommandHandler) Handle(ctx context.Context, cmd RecordPackCheckCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.RequestedBy().Authorize(actor.OpRecordPackCheck); err != nil {
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

	if err = target.RecordPackCheck(cmd.RequestedBy().ID(), cmd.Approved(), cmd.Notes(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
