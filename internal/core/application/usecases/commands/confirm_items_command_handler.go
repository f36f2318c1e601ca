package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/actor"
)

// ConfirmItemsCommandHandler handles item confirmation. The order must have at
// least one item line; an empty order cannot be confirmed by anyone.
type ConfirmItemsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmItemsCommandHandler creates a handler for item confirmation.
func NewConfirmItemsCommandHandler(uowFactory OrderUoWFactory) ConfirmItemsCommandHandler {
	return ConfirmItemsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation command, moving the order to ReadyToPack.
func (h *ConfirmItemsCommandHandler) Handle(ctx context.Context, cmd ConfirmItemsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.RequestedBy().Authorize(actor.OpConfirmItems); err != nil {
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

	if err = target.ConfirmItems(cmd.Notes(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
