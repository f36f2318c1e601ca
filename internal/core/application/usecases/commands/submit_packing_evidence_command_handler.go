package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/ports"
)

// SubmitPackingEvidenceCommandHandler handles packing evidence submission.
// Photo uploads happen before the order transaction, so a failed upload
// leaves the order untouched; an orphaned blob is harmless.
type SubmitPackingEvidenceCommandHandler struct {
	uowFactory OrderUoWFactory
	blobStore  ports.BlobStore
}

// NewSubmitPackingEvidenceCommandHandler creates a handler for evidence submission.
func NewSubmitPackingEvidenceCommandHandler(
	uowFactory OrderUoWFactory,
	blobStore ports.BlobStore,
) SubmitPackingEvidenceCommandHandler {
	return SubmitPackingEvidenceCommandHandler{
		uowFactory: uowFactory,
		blobStore:  blobStore,
	}
}

// Handle uploads the evidence photos and moves the order to PendingPackCheck.
func (h *SubmitPackingEvidenceCommandHandler) Handle(ctx context.Context, cmd SubmitPackingEvidenceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.RequestedBy().Authorize(actor.OpSubmitPackingEvidence); err != nil {
		return err
	}

	refs := make([]string, 0, len(cmd.Photos()))
	for _, photo := range cmd.Photos() {
		ref, err := h.blobStore.Upload(ctx, photo.Data, photo.ContentType)
		if err != nil {
			return err
		}
		refs = append(refs, ref)
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

	if err = target.SubmitPackingEvidence(cmd.RequestedBy().ID(), refs, cmd.OperatorNotes(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
