package commands_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/batch"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func openBatchWith(t *testing.T, orders ...*order.Order) *batch.ShipmentBatch {
	t.Helper()
	b, err := batch.NewShipmentBatch(kernel.NewUUID(), "Flash Express", kernel.NewUUID(), time.Now())
	require.NoError(t, err)
	for _, o := range orders {
		require.NoError(t, b.AddOrder(o.ID()))
	}
	return b
}

func finalizeCmd(t *testing.T, batchID kernel.UUID) commands.FinalizeBatchCommand {
	t.Helper()
	operator := testActor(t, actor.Operator)
	cmd, err := commands.NewFinalizeBatchCommand(
		batchID, commands.EvidencePhoto{Data: []byte{0xFF, 0xD8}, ContentType: "image/jpeg"}, operator)
	require.NoError(t, err)
	return cmd
}

func TestFinalizeBatchCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	member := orderReadyForShipment(t, "TH012345678901")
	openBatch := openBatchWith(t, member)
	cmd := finalizeCmd(t, openBatch.ID())

	blobStore := new(MockBlobStore)
	blobStore.On("Upload", ctx, mock.Anything, "image/jpeg").Return("blobs/group", nil).Once()

	batchRepo := new(MockBatchRepository)
	batchUoW := new(MockUoW)
	mock.InOrder(
		batchUoW.On("Begin", ctx).Return(nil).Once(),
		batchRepo.On("Get", ctx, openBatch.ID()).Return(openBatch, nil).Once(),
		batchRepo.On("Update", ctx, mock.AnythingOfType("*batch.ShipmentBatch")).Return(nil).Once(),
		batchUoW.On("Commit", ctx).Return(nil).Once(),
		batchUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	batchUoW.On("BatchRepository").Return(batchRepo)

	orderRepo := new(MockOrderRepository)
	orderUoW := new(MockUoW)
	mock.InOrder(
		orderUoW.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, member.ID()).Return(member, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		orderUoW.On("Commit", ctx).Return(nil).Once(),
		orderUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	orderUoW.On("OrderRepository").Return(orderRepo)

	batchFactory := new(MockBatchUoWFactory)
	batchFactory.On("Create").Return(batchUoW).Once()
	orderFactory := new(MockOrderUoWFactory)
	orderFactory.On("Create").Return(orderUoW).Once()

	handler := commands.NewFinalizeBatchCommandHandler(batchFactory, orderFactory, blobStore, discardLogger())
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, batch.ShippedPendingVerification, openBatch.Status())
	assert.Equal(t, order.Shipped, member.Status())
	require.NotNil(t, member.ShipmentInfo())
	assert.True(t, member.ShipmentInfo().BatchID().IsEqual(openBatch.ID()))
	blobStore.AssertExpectations(t)
	batchRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestFinalizeBatchCommandHandler_Handle_PartialWrite(t *testing.T) {
	ctx := t.Context()

	flipped := orderReadyForShipment(t, "TH012345678901")
	stuck := orderReadyForShipment(t, "LAZ99887766")
	openBatch := openBatchWith(t, flipped, stuck)
	cmd := finalizeCmd(t, openBatch.ID())

	blobStore := new(MockBlobStore)
	blobStore.On("Upload", ctx, mock.Anything, "image/jpeg").Return("blobs/group", nil).Once()

	batchRepo := new(MockBatchRepository)
	batchUoW := new(MockUoW)
	batchUoW.On("Begin", ctx).Return(nil)
	batchUoW.On("Commit", ctx).Return(nil)
	batchUoW.On("Rollback", ctx).Return(nil)
	batchUoW.On("BatchRepository").Return(batchRepo)
	batchRepo.On("Get", ctx, openBatch.ID()).Return(openBatch, nil)
	batchRepo.On("Update", ctx, mock.AnythingOfType("*batch.ShipmentBatch")).Return(nil)

	orderRepo := new(MockOrderRepository)
	orderUoW := new(MockUoW)
	orderUoW.On("Begin", ctx).Return(nil)
	orderUoW.On("Commit", ctx).Return(nil)
	orderUoW.On("Rollback", ctx).Return(nil)
	orderUoW.On("OrderRepository").Return(orderRepo)
	orderRepo.On("Get", ctx, flipped.ID()).Return(flipped, nil)
	orderRepo.On("Get", ctx, stuck.ID()).Return(nil, errors.New("connection reset"))
	orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil)

	batchFactory := new(MockBatchUoWFactory)
	batchFactory.On("Create").Return(batchUoW)
	orderFactory := new(MockOrderUoWFactory)
	orderFactory.On("Create").Return(orderUoW)

	handler := commands.NewFinalizeBatchCommandHandler(batchFactory, orderFactory, blobStore, discardLogger())
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrPartialWrite)

	var partial *errs.PartialWriteError
	require.ErrorAs(t, err, &partial)
	assert.Len(t, partial.Applied, 1)
	assert.Len(t, partial.Failed, 1)
	assert.Contains(t, partial.Failed, stuck.ID().String())

	// The batch record stays finalized even though a member write failed.
	assert.Equal(t, batch.ShippedPendingVerification, openBatch.Status())
	assert.Equal(t, order.Shipped, flipped.Status())
	assert.Equal(t, order.ReadyForShipment, stuck.Status())
}

func TestFinalizeBatchCommandHandler_Handle_EmptyBatch(t *testing.T) {
	ctx := t.Context()

	openBatch := openBatchWith(t)
	cmd := finalizeCmd(t, openBatch.ID())

	blobStore := new(MockBlobStore)
	blobStore.On("Upload", ctx, mock.Anything, "image/jpeg").Return("blobs/group", nil).Once()

	batchRepo := new(MockBatchRepository)
	batchUoW := new(MockUoW)
	batchUoW.On("Begin", ctx).Return(nil)
	batchUoW.On("Rollback", ctx).Return(nil)
	batchUoW.On("BatchRepository").Return(batchRepo)
	batchRepo.On("Get", ctx, openBatch.ID()).Return(openBatch, nil)

	batchFactory := new(MockBatchUoWFactory)
	batchFactory.On("Create").Return(batchUoW)
	orderFactory := new(MockOrderUoWFactory)

	handler := commands.NewFinalizeBatchCommandHandler(batchFactory, orderFactory, blobStore, discardLogger())
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Equal(t, batch.Open, openBatch.Status())
	orderFactory.AssertNotCalled(t, "Create")
}

func TestFinalizeBatchCommandHandler_Handle_UploadErrorLeavesNoState(t *testing.T) {
	ctx := t.Context()

	openBatch := openBatchWith(t, orderReadyForShipment(t, "TH012345678901"))
	cmd := finalizeCmd(t, openBatch.ID())

	blobStore := new(MockBlobStore)
	blobStore.On("Upload", ctx, mock.Anything, "image/jpeg").Return("", errors.New("store unavailable")).Once()

	batchFactory := new(MockBatchUoWFactory)
	orderFactory := new(MockOrderUoWFactory)

	handler := commands.NewFinalizeBatchCommandHandler(batchFactory, orderFactory, blobStore, discardLogger())
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Equal(t, batch.Open, openBatch.Status())
	batchFactory.AssertNotCalled(t, "Create")
	orderFactory.AssertNotCalled(t, "Create")
}

func TestFinalizeBatchCommandHandler_Handle_UnknownRoleDenied(t *testing.T) {
	ctx := t.Context()
	stranger := testActor(t, actor.Unknown)
	cmd, err := commands.NewFinalizeBatchCommand(
		kernel.NewUUID(), commands.EvidencePhoto{Data: []byte{1}, ContentType: "image/jpeg"}, stranger)
	require.NoError(t, err)

	handler := commands.NewFinalizeBatchCommandHandler(
		new(MockBatchUoWFactory), new(MockOrderUoWFactory), new(MockBlobStore), discardLogger())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrUnauthorized)
}
