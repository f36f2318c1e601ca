package commands

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// FinalizeBatchCommandHandler handles batch finalization.
//
// Finalization is deliberately not one transaction. The batch record is
// committed first in its own unit of work; each member order is then flipped
// to Shipped in its own unit of work, best effort. When some member writes
// fail the batch stays finalized, the successes stay applied, and the caller
// gets a PartialWriteError listing both sides. The reconciliation job picks
// up the stragglers later; flipping an order is idempotent, so repeating the
// command or the repair pass never double-applies.
type FinalizeBatchCommandHandler struct {
	batchUoWFactory BatchUoWFactory
	orderUoWFactory OrderUoWFactory
	blobStore       ports.BlobStore
	logger          *slog.Logger
}

// NewFinalizeBatchCommandHandler creates a handler for batch finalization.
func NewFinalizeBatchCommandHandler(
	batchUoWFactory BatchUoWFactory,
	orderUoWFactory OrderUoWFactory,
	blobStore ports.BlobStore,
	logger *slog.Logger,
) FinalizeBatchCommandHandler {
	return FinalizeBatchCommandHandler{
		batchUoWFactory: batchUoWFactory,
		orderUoWFactory: orderUoWFactory,
		blobStore:       blobStore,
		logger:          logger.With("component", "finalize_batch"),
	}
}

// Handle uploads the group photo, finalizes the batch record, then marks each
// member order as shipped.
func (h *FinalizeBatchCommandHandler) Handle(ctx context.Context, cmd FinalizeBatchCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.RequestedBy().Authorize(actor.OpFinalizeBatch); err != nil {
		return err
	}

	photoRef, err := h.blobStore.Upload(ctx, cmd.GroupPhoto().Data, cmd.GroupPhoto().ContentType)
	if err != nil {
		return err
	}

	shippedAt := time.Now()

	orderKeys, err := h.finalizeBatchRecord(ctx, cmd.BatchID(), photoRef, shippedAt)
	if err != nil {
		return err
	}

	applied := make([]string, 0, len(orderKeys))
	failed := make([]string, 0)
	var firstFailure error

	for _, key := range orderKeys {
		if err = h.markOrderShipped(ctx, key, cmd.BatchID(), shippedAt); err != nil {
			h.logger.Error("member order not flipped to shipped",
				"batchId", cmd.BatchID().String(),
				"orderId", key.String(),
				"error", err)
			failed = append(failed, key.String())
			if firstFailure == nil {
				firstFailure = err
			}
			continue
		}
		applied = append(applied, key.String())
	}

	if len(failed) > 0 {
		return errs.NewPartialWriteError("finalize batch", applied, failed, firstFailure)
	}

	h.logger.Info("batch finalized",
		"batchId", cmd.BatchID().String(),
		"orders", len(applied))
	return nil
}

func (h *FinalizeBatchCommandHandler) finalizeBatchRecord(
	ctx context.Context,
	batchID kernel.UUID,
	photoRef string,
	shippedAt time.Time,
) ([]kernel.UUID, error) {
	uow := h.batchUoWFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	batchRepo := uow.BatchRepository()
	target, err := batchRepo.Get(ctx, batchID)
	if err != nil {
		return nil, err
	}

	if err = target.Finalize(photoRef, shippedAt); err != nil {
		return nil, err
	}

	if err = batchRepo.Update(ctx, target); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return target.OrderKeys(), nil
}

func (h *FinalizeBatchCommandHandler) markOrderShipped(
	ctx context.Context,
	orderID kernel.UUID,
	batchID kernel.UUID,
	shippedAt time.Time,
) error {
	uow := h.orderUoWFactory.Create()
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

	if target.Status() == order.Shipped && target.ShipmentInfo() != nil &&
		!target.ShipmentInfo().BatchID().IsEqual(batchID) {
		h.logger.Warn("order re-targeted to a later batch",
			"orderId", orderID.String(),
			"previousBatchId", target.ShipmentInfo().BatchID().String(),
			"batchId", batchID.String())
	}

	if err = target.MarkShipped(batchID, shippedAt); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
