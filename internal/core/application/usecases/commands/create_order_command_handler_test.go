package commands_test

import (
	"context"
	"testing"
	"time"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/order"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func newCreateOrderCommand(t *testing.T, trackingNumber string) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		trackingNumber,
		kernel.NewUUID(),
		time.Now().UTC().Add(48*time.Hour),
		kernel.NewUUID(),
		kernel.NewUUID(),
		order.PriorityExpress,
		decimal.NewFromFloat(2.5),
		"30x20x10",
		decimal.NewFromFloat(150.00),
	)
	require.NoError(t, err)
	return cmd
}

func TestNewCreateOrderCommand_Validation(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.UUID{},
		"TRK-1",
		kernel.NewUUID(),
		time.Now().UTC(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		order.PriorityNormal,
		decimal.NewFromInt(1),
		"",
		decimal.NewFromInt(1),
	)
	assert.Error(t, err)

	_, err = commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		"",
		kernel.NewUUID(),
		time.Now().UTC(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		order.PriorityNormal,
		decimal.NewFromInt(1),
		"",
		decimal.NewFromInt(1),
	)
	assert.Error(t, err)

	cmd := commands.CreateOrderCommand{}
	assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t, "TRK-0100")

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByTrackingNumber", ctx, "TRK-0100").
			Return(nil, errs.NewObjectNotFoundError("order", "TRK-0100")).Once(),
		orderRepo.On("Save", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_TrackingNumberTaken(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t, "TRK-0101")
	existing := newPendingOrder(t)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByTrackingNumber", ctx, "TRK-0101").Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrTrackingNumberTaken)
	orderRepo.AssertNotCalled(t, "Save")
}

func TestUpdateOrderCommandHandler_Handle_MarkDelivered(t *testing.T) {
	ctx := t.Context()
	testOrder := newPendingOrder(t)
	status := order.StatusDelivered
	cmd, err := commands.NewUpdateOrderCommand(testOrder.ID(), &status, nil, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Save", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusDelivered, testOrder.Status())
	assert.NotNil(t, testOrder.DeliveredAt())
}

func TestUpdateOrderCommandHandler_Handle_CancelDeliveredOrderKeepsStatus(t *testing.T) {
	ctx := t.Context()
	testOrder := newPendingOrder(t)
	testOrder.MarkDelivered()
	status := order.StatusCancelled
	cmd, err := commands.NewUpdateOrderCommand(testOrder.ID(), &status, nil, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Save", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusDelivered, testOrder.Status())
}

func TestDeleteOrderCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	testOrder := newPendingOrder(t)
	cmd, err := commands.NewDeleteOrderCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Delete", ctx, testOrder.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteOrderCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))
	orderRepo.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewDeleteOrderCommand(orderID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).
			Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	orderRepo.AssertNotCalled(t, "Delete")
}
