package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/services"
)

// AddOrderToBatchCommandHandler handles scanning a package into an open batch.
type AddOrderToBatchCommandHandler struct {
	uowFactory UoWFactory
	assembler  services.BatchAssembler
}

// NewAddOrderToBatchCommandHandler creates a handler for batch membership additions.
func NewAddOrderToBatchCommandHandler(uowFactory UoWFactory) AddOrderToBatchCommandHandler {
	return AddOrderToBatchCommandHandler{
		uowFactory: uowFactory,
		assembler:  services.NewBatchAssembler(),
	}
}

// Handle resolves the scanned package code and adds the order to the batch.
// It returns false with a nil error when the order was already a member, so
// callers can tell the operator the scan was a duplicate rather than a
// failure. Orders that have not passed the pack check are rejected with
// services.ErrOrderNotEligible.
func (h *AddOrderToBatchCommandHandler) Handle(ctx context.Context, cmd AddOrderToBatchCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}
	if err := cmd.RequestedBy().Authorize(actor.OpAssembleBatch); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	targetBatch, err := uow.BatchRepository().Get(ctx, cmd.BatchID())
	if err != nil {
		return false, err
	}

	targetOrder, err := uow.OrderRepository().GetByPackageCode(ctx, cmd.PackageCode())
	if err != nil {
		return false, err
	}

	added, err := h.assembler.AddOrder(targetBatch, targetOrder)
	if err != nil {
		return false, err
	}
	if !added {
		return false, uow.Commit(ctx)
	}

	if err = uow.BatchRepository().Update(ctx, targetBatch); err != nil {
		return false, err
	}

	return true, uow.Commit(ctx)
}
