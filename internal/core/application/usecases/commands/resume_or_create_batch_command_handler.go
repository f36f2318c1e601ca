package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/batch"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// ResumeOrCreateBatchCommandHandler opens a shipment assembly session for an
// operator. Running the command twice is safe: the second call resumes the
// batch the first one created.
type ResumeOrCreateBatchCommandHandler struct {
	uowFactory UoWFactory
}

// NewResumeOrCreateBatchCommandHandler creates a handler for assembly sessions.
func NewResumeOrCreateBatchCommandHandler(uowFactory UoWFactory) ResumeOrCreateBatchCommandHandler {
	return ResumeOrCreateBatchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resumes the operator's Open batch or creates a new one, and returns
// the assembly session snapshot with member package codes resolved.
func (h *ResumeOrCreateBatchCommandHandler) Handle(
	ctx context.Context,
	cmd ResumeOrCreateBatchCommand,
) (services.AssemblySession, error) {
	if err := cmd.Validate(); err != nil {
		return services.AssemblySession{}, err
	}
	if err := cmd.RequestedBy().Authorize(actor.OpAssembleBatch); err != nil {
		return services.AssemblySession{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.AssemblySession{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	batchRepo := uow.BatchRepository()

	target, err := batchRepo.GetOpenByOperator(ctx, cmd.RequestedBy().ID())
	switch {
	case err == nil:
		// Resume: the courier chosen at creation stays in force.
	case errors.Is(err, errs.ErrObjectNotFound):
		target, err = batch.NewShipmentBatch(cmd.BatchID(), cmd.Courier(), cmd.RequestedBy().ID(), time.Now())
		if err != nil {
			return services.AssemblySession{}, err
		}
		if err = batchRepo.Add(ctx, target); err != nil {
			return services.AssemblySession{}, err
		}
	default:
		return services.AssemblySession{}, err
	}

	packageCodes, err := h.resolvePackageCodes(ctx, uow, target.OrderKeys())
	if err != nil {
		return services.AssemblySession{}, err
	}

	session, err := services.NewAssemblySession(target, packageCodes)
	if err != nil {
		return services.AssemblySession{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.AssemblySession{}, err
	}

	return session, nil
}

func (h *ResumeOrCreateBatchCommandHandler) resolvePackageCodes(
	ctx context.Context,
	uow UoW,
	orderKeys []kernel.UUID,
) (map[kernel.UUID]string, error) {
	orderRepo := uow.OrderRepository()

	packageCodes := make(map[kernel.UUID]string, len(orderKeys))
	for _, key := range orderKeys {
		member, err := orderRepo.Get(ctx, key)
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				continue
			}
			return nil, err
		}
		packageCodes[key] = member.PackageCode()
	}

	return packageCodes, nil
}
