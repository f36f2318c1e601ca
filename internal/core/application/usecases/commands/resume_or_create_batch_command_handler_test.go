package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/batch"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResumeOrCreateBatchCommandHandler_Handle_CreatesWhenNoneOpen(t *testing.T) {
	ctx := t.Context()
	operator := testActor(t, actor.Operator)
	batchID := kernel.NewUUID()
	cmd, err := commands.NewResumeOrCreateBatchCommand(batchID, "Flash Express", operator)
	require.NoError(t, err)

	batchRepo := new(MockBatchRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("BatchRepository").Return(batchRepo)
	uow.On("OrderRepository").Return(orderRepo)
	batchRepo.On("GetOpenByOperator", ctx, operator.ID()).
		Return(nil, errs.NewObjectNotFoundError("operatorId", operator.ID().String()))
	batchRepo.On("Add", ctx, mock.AnythingOfType("*batch.ShipmentBatch")).Return(nil)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)

	handler := commands.NewResumeOrCreateBatchCommandHandler(factory)
	session, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, session.BatchID.IsEqual(batchID))
	assert.Equal(t, "Flash Express", session.Courier)
	assert.True(t, session.OperatorID.IsEqual(operator.ID()))
	assert.Empty(t, session.Members)
}

func TestResumeOrCreateBatchCommandHandler_Handle_ResumesWithOriginalCourier(t *testing.T) {
	ctx := t.Context()
	operator := testActor(t, actor.Operator)

	existing, err := batch.NewShipmentBatch(kernel.NewUUID(), "Kerry Express", operator.ID(), time.Now())
	require.NoError(t, err)
	member := orderReadyForShipment(t, "TH012345678901")
	require.NoError(t, existing.AddOrder(member.ID()))

	// The operator asks for a different courier; the original one sticks.
	cmd, err := commands.NewResumeOrCreateBatchCommand(kernel.NewUUID(), "Flash Express", operator)
	require.NoError(t, err)

	batchRepo := new(MockBatchRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("BatchRepository").Return(batchRepo)
	uow.On("OrderRepository").Return(orderRepo)
	batchRepo.On("GetOpenByOperator", ctx, operator.ID()).Return(existing, nil)
	orderRepo.On("Get", ctx, member.ID()).Return(member, nil)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)

	handler := commands.NewResumeOrCreateBatchCommandHandler(factory)
	session, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, session.BatchID.IsEqual(existing.ID()))
	assert.Equal(t, "Kerry Express", session.Courier)
	assert.Equal(t, member.PackageCode(), session.Members[member.ID()])
	batchRepo.AssertNotCalled(t, "Add", ctx, mock.Anything)
}
