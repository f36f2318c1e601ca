package commands

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/actor"
)

// OverrideOrderCommandHandler handles administrative overrides. Every applied
// override is logged with the actor, the order, and the fields that changed.
type OverrideOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewOverrideOrderCommandHandler creates a handler for administrative overrides.
func NewOverrideOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) OverrideOrderCommandHandler {
	return OverrideOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "override_order"),
	}
}

// Handle applies the override and writes the audit record.
func (h *OverrideOrderCommandHandler) Handle(ctx context.Context, cmd OverrideOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.RequestedBy().Authorize(actor.OpOverrideOrder); err != nil {
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

	previousStatus := target.Status()

	if err = target.Override(cmd.NewStatus(), cmd.PackageCode(), cmd.DueDate(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.Warn("administrative override applied",
		"orderId", cmd.OrderID().String(),
		"actorId", cmd.RequestedBy().ID().String(),
		"previousStatus", previousStatus.String(),
		"newStatus", target.Status().String(),
		"packageCode", cmd.PackageCode(),
		"dueDate", cmd.DueDate())
	return nil
}
