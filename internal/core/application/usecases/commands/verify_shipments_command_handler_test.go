package commands_test

import (
	"errors"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestVerifyShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	supervisor := testActor(t, actor.Supervisor)

	shipped := orderShippedIn(t, kernel.NewUUID())
	cmd, err := commands.NewVerifyShipmentCommand(shipped.ID(), supervisor)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, shipped.ID()).Return(shipped, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewVerifyShipmentCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, order.ShipmentApproved, shipped.Status())
	require.NotNil(t, shipped.ShipmentInfo().AdminVerifiedBy())
	assert.True(t, shipped.ShipmentInfo().AdminVerifiedBy().IsEqual(supervisor.ID()))
}

func TestVerifyShipmentCommandHandler_Handle_OperatorDenied(t *testing.T) {
	ctx := t.Context()
	operator := testActor(t, actor.Operator)
	cmd, err := commands.NewVerifyShipmentCommand(kernel.NewUUID(), operator)
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	handler := commands.NewVerifyShipmentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrUnauthorized)
	factory.AssertNotCalled(t, "Create")
}

func TestVerifyShipmentsCommandHandler_Handle_AllApplied(t *testing.T) {
	ctx := t.Context()
	admin := testActor(t, actor.Administrator)

	first := orderShippedIn(t, kernel.NewUUID())
	second := orderShippedIn(t, kernel.NewUUID())
	cmd, err := commands.NewVerifyShipmentsCommand([]kernel.UUID{first.ID(), second.ID()}, admin)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	orderRepo.On("Get", ctx, first.ID()).Return(first, nil)
	orderRepo.On("Get", ctx, second.ID()).Return(second, nil)
	orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	handler := commands.NewVerifyShipmentsCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, order.ShipmentApproved, first.Status())
	assert.Equal(t, order.ShipmentApproved, second.Status())
}

func TestVerifyShipmentsCommandHandler_Handle_PartialWrite(t *testing.T) {
	ctx := t.Context()
	admin := testActor(t, actor.Administrator)

	verified := orderShippedIn(t, kernel.NewUUID())
	missingID := kernel.NewUUID()
	cmd, err := commands.NewVerifyShipmentsCommand([]kernel.UUID{verified.ID(), missingID}, admin)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	orderRepo.On("Get", ctx, verified.ID()).Return(verified, nil)
	orderRepo.On("Get", ctx, missingID).Return(nil, errors.New("database error"))
	orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	handler := commands.NewVerifyShipmentsCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrPartialWrite)

	var partial *errs.PartialWriteError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, []string{verified.ID().String()}, partial.Applied)
	assert.Equal(t, []string{missingID.String()}, partial.Failed)
	assert.Equal(t, order.ShipmentApproved, verified.Status())
}

func TestVerifyShipmentsCommandHandler_Handle_RepeatIsIdempotent(t *testing.T) {
	ctx := t.Context()
	admin := testActor(t, actor.Administrator)

	verified := orderShippedIn(t, kernel.NewUUID())
	cmd, err := commands.NewVerifyShipmentsCommand([]kernel.UUID{verified.ID()}, admin)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	orderRepo.On("Get", ctx, verified.ID()).Return(verified, nil)
	orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	handler := commands.NewVerifyShipmentsCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, order.ShipmentApproved, verified.Status())
}
