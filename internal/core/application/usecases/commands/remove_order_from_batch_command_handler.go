package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/services"
)

// RemoveOrderFromBatchCommandHandler handles removing a member from an open batch.
type RemoveOrderFromBatchCommandHandler struct {
	uowFactory BatchUoWFactory
	assembler  services.BatchAssembler
}

// NewRemoveOrderFromBatchCommandHandler creates a handler for batch membership removals.
func NewRemoveOrderFromBatchCommandHandler(uowFactory BatchUoWFactory) RemoveOrderFromBatchCommandHandler {
	return RemoveOrderFromBatchCommandHandler{
		uowFactory: uowFactory,
		assembler:  services.NewBatchAssembler(),
	}
}

// Handle removes the order key from the batch.
func (h *RemoveOrderFromBatchCommandHandler) Handle(ctx context.Context, cmd RemoveOrderFromBatchCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.RequestedBy().Authorize(actor.OpAssembleBatch); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	batchRepo := uow.BatchRepository()
	targetBatch, err := batchRepo.Get(ctx, cmd.BatchID())
	if err != nil {
		return err
	}

	if err = h.assembler.RemoveOrder(targetBatch, cmd.OrderID()); err != nil {
		return err
	}

	if err = batchRepo.Update(ctx, targetBatch); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
