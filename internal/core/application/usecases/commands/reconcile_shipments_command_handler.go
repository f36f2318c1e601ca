package commands

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/domain/model/batch"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// ReconcileShipmentsCommandHandler repairs the aftermath of partial batch
// finalizations. It walks every finalized batch still awaiting verification
// and flips member orders that are stuck in ReadyForShipment. Orders whose
// batch id points at a different batch were legitimately re-targeted by a
// later finalize and are logged, not changed.
type ReconcileShipmentsCommandHandler struct {
	batchUoWFactory BatchUoWFactory
	orderUoWFactory OrderUoWFactory
	logger          *slog.Logger
}

// NewReconcileShipmentsCommandHandler creates a handler for the repair pass.
func NewReconcileShipmentsCommandHandler(
	batchUoWFactory BatchUoWFactory,
	orderUoWFactory OrderUoWFactory,
	logger *slog.Logger,
) ReconcileShipmentsCommandHandler {
	return ReconcileShipmentsCommandHandler{
		batchUoWFactory: batchUoWFactory,
		orderUoWFactory: orderUoWFactory,
		logger:          logger.With("component", "reconcile_shipments"),
	}
}

// Handle runs one repair pass. Individual order failures are logged and
// skipped; the pass itself only fails when the batch listing cannot be read.
func (h *ReconcileShipmentsCommandHandler) Handle(ctx context.Context, cmd ReconcileShipmentsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	batches, err := h.loadFinalizedBatches(ctx)
	if err != nil {
		return err
	}

	var repaired int
	for _, b := range batches {
		for _, key := range b.OrderKeys() {
			ok, repairErr := h.repairOrder(ctx, key, b)
			if repairErr != nil {
				h.logger.Error("order repair failed",
					"batchId", b.ID().String(),
					"orderId", key.String(),
					"error", repairErr)
				continue
			}
			if ok {
				repaired++
			}
		}
	}

	if repaired > 0 {
		h.logger.Info("reconciliation pass repaired orders", "repaired", repaired)
	}
	return nil
}

func (h *ReconcileShipmentsCommandHandler) loadFinalizedBatches(ctx context.Context) ([]*batch.ShipmentBatch, error) {
	uow := h.batchUoWFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	batches, err := uow.BatchRepository().GetAllInStatus(ctx, batch.ShippedPendingVerification)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return batches, nil
}

// repairOrder flips one straggler to Shipped. Returns true when a repair was
// applied, false when the order needed no change.
func (h *ReconcileShipmentsCommandHandler) repairOrder(
	ctx context.Context,
	orderID kernel.UUID,
	b *batch.ShipmentBatch,
) (bool, error) {
	uow := h.orderUoWFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	target, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			h.logger.Warn("batch member order no longer exists",
				"batchId", b.ID().String(),
				"orderId", orderID.String())
			return false, nil
		}
		return false, err
	}

	if target.Status() != order.ReadyForShipment {
		if target.ShipmentInfo() != nil && !target.ShipmentInfo().BatchID().IsEqual(b.ID()) {
			h.logger.Info("order belongs to a later batch",
				"batchId", b.ID().String(),
				"orderId", orderID.String(),
				"currentBatchId", target.ShipmentInfo().BatchID().String())
		}
		return false, nil
	}

	shippedAt := b.CreatedAt()
	if b.ShippedAt() != nil {
		shippedAt = *b.ShippedAt()
	}

	if err = target.MarkShipped(b.ID(), shippedAt); err != nil {
		return false, err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	h.logger.Info("straggler order flipped to shipped",
		"batchId", b.ID().String(),
		"orderId", orderID.String())
	return true, nil
}
