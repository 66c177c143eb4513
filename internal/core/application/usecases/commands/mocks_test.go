package commands_test

import (
	"context"
	"testing"
	"time"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/core/domain/model/voucher"
	"sales/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
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

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetDraftsCreatedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockVoucherRepository struct{ mock.Mock }

func (m *MockVoucherRepository) Add(ctx context.Context, v *voucher.Voucher) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVoucherRepository) GetByCode(ctx context.Context, code string) (*voucher.Voucher, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*voucher.Voucher), args.Error(1)
}

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

type MockUoW struct{ MockOrderUoW }

func (m *MockUoW) VoucherRepository() ports.VoucherRepository {
	args := m.Called()
	return args.Get(0).(ports.VoucherRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type orderUoWMocks struct {
	repo    *MockOrderRepository
	uow     *MockOrderUoW
	factory *MockOrderUoWFactory
}

func newOrderUoWMocks() orderUoWMocks {
	m := orderUoWMocks{
		repo:    new(MockOrderRepository),
		uow:     new(MockOrderUoW),
		factory: new(MockOrderUoWFactory),
	}
	m.factory.On("Create").Return(m.uow).Once()
	return m
}

func (m orderUoWMocks) assertExpectations(t *testing.T) {
	t.Helper()
	m.repo.AssertExpectations(t)
	m.uow.AssertExpectations(t)
	m.factory.AssertExpectations(t)
}

func draftWith(t *testing.T, items ...*order.Item) *order.Order {
	t.Helper()
	o, err := order.NewDraftOrder(kernel.NewUUID())
	require.NoError(t, err)
	for _, item := range items {
		o.AddItem(item)
	}
	return o
}

var fixedNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

type uowMocks struct {
	orders   *MockOrderRepository
	vouchers *MockVoucherRepository
	uow      *MockUoW
	factory  *MockUoWFactory
}

func newUoWMocks() uowMocks {
	m := uowMocks{
		orders:   new(MockOrderRepository),
		vouchers: new(MockVoucherRepository),
		uow:      new(MockUoW),
		factory:  new(MockUoWFactory),
	}
	m.factory.On("Create").Return(m.uow).Once()
	return m
}

func (m uowMocks) assertExpectations(t *testing.T) {
	t.Helper()
	m.orders.AssertExpectations(t)
	m.vouchers.AssertExpectations(t)
	m.uow.AssertExpectations(t)
	m.factory.AssertExpectations(t)
}
