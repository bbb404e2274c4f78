package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/carrier"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/order"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*order.Order, error) {
	args := m.Called(ctx, trackingNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByClient(ctx context.Context, clientID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByCarrier(ctx context.Context, carrierID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, carrierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllPending(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInTransit(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCarrierRepository struct{ mock.Mock }

func (m *MockCarrierRepository) Save(ctx context.Context, c *carrier.Carrier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCarrierRepository) Get(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*carrier.Carrier), args.Error(1)
}

func (m *MockCarrierRepository) GetAllAvailable(ctx context.Context) ([]*carrier.Carrier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*carrier.Carrier), args.Error(1)
}

func (m *MockCarrierRepository) GetByZone(ctx context.Context, zoneID kernel.UUID) ([]*carrier.Carrier, error) {
	args := m.Called(ctx, zoneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*carrier.Carrier), args.Error(1)
}

func (m *MockCarrierRepository) GetByVehicleType(ctx context.Context, vehicleType carrier.VehicleType) ([]*carrier.Carrier, error) {
	args := m.Called(ctx, vehicleType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*carrier.Carrier), args.Error(1)
}

func (m *MockCarrierRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CarrierRepository() ports.CarrierRepository {
	args := m.Called()
	return args.Get(0).(ports.CarrierRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		"TRK-5000",
		kernel.NewUUID(),
		time.Now().UTC().Add(48*time.Hour),
		kernel.NewUUID(),
		kernel.NewUUID(),
		order.PriorityNormal,
		decimal.NewFromInt(5),
		"30x20x10",
		decimal.NewFromInt(100),
	)
	require.NoError(t, err)
	return o
}

func newAvailableCarrier(t *testing.T) *carrier.Carrier {
	t.Helper()
	c, err := carrier.NewCarrier(kernel.NewUUID(), kernel.NewUUID(), "Pedro", "",
		"1234-ABC", carrier.VehicleCar, decimal.NewFromInt(50))
	require.NoError(t, err)
	return c
}

func TestAssignCarrierCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testOrder := newPendingOrder(t)
	testCarrier := newAvailableCarrier(t)
	cmd, err := commands.NewAssignCarrierCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	carrierRepo := new(MockCarrierRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("CarrierRepository").Return(carrierRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		carrierRepo.On("GetAllAvailable", ctx).Return([]*carrier.Carrier{testCarrier}, nil).Once(),
		orderRepo.On("Save", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		carrierRepo.On("Save", ctx, mock.AnythingOfType("*carrier.Carrier")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignCarrierCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.StatusProcessing, testOrder.Status())
	require.NotNil(t, testOrder.CarrierID())
	require.True(t, testCarrier.ID().IsEqual(*testOrder.CarrierID()))
	require.Equal(t, carrier.StatusInTransit, testCarrier.Status())
	orderRepo.AssertExpectations(t)
	carrierRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAssignCarrierCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AssignCarrierCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := commands.NewAssignCarrierCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrAssignCarrierCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestAssignCarrierCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewAssignCarrierCommand(orderID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	carrierRepo := new(MockCarrierRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("CarrierRepository").Return(carrierRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("order", orderID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignCarrierCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAssignCarrierCommandHandler_Handle_NoAvailableCarriers(t *testing.T) {
	ctx := t.Context()
	testOrder := newPendingOrder(t)
	cmd, err := commands.NewAssignCarrierCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	carrierRepo := new(MockCarrierRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("CarrierRepository").Return(carrierRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		carrierRepo.On("GetAllAvailable", ctx).Return([]*carrier.Carrier{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignCarrierCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrNoAvailableCarriers)
	require.Equal(t, order.StatusPending, testOrder.Status())
}

func TestAssignCarrierCommandHandler_Handle_OrderNotAssignable(t *testing.T) {
	ctx := t.Context()
	testOrder := newPendingOrder(t)
	testOrder.MarkDelivered()
	cmd, err := commands.NewAssignCarrierCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	carrierRepo := new(MockCarrierRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("CarrierRepository").Return(carrierRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		carrierRepo.On("GetAllAvailable", ctx).Return([]*carrier.Carrier{newAvailableCarrier(t)}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignCarrierCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrOrderNotAssignable)
}

func TestAssignCarrierCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAssignCarrierCommand(kernel.NewUUID())
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewAssignCarrierCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
}
