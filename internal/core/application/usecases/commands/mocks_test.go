package commands_test

import (
	"context"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
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

func (m *MockOrderRepository) GetIDsInStates(ctx context.Context, states ...order.State) ([]kernel.UUID, error) {
	args := m.Called(ctx, states)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

type MockStatusLabelRepository struct{ mock.Mock }

func (m *MockStatusLabelRepository) GetDefaultLabels(ctx context.Context) (order.StatusLabels, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(order.StatusLabels), args.Error(1)
}

func (m *MockStatusLabelRepository) EnsureDefaults(ctx context.Context, labels order.StatusLabels) error {
	args := m.Called(ctx, labels)
	return args.Error(0)
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

func (m *MockOrderUoW) StatusLabelRepository() ports.StatusLabelRepository {
	args := m.Called()
	return args.Get(0).(ports.StatusLabelRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockTransitionObserver struct{ mock.Mock }

func (m *MockTransitionObserver) ObserveTransition(from, to order.State) {
	m.Called(from, to)
}

// updateMocks wires the mocks for one successful load-mutate-update cycle.
type updateMocks struct {
	factory  *MockOrderUoWFactory
	uow      *MockOrderUoW
	orders   *MockOrderRepository
	labels   *MockStatusLabelRepository
	observer *MockTransitionObserver
}

func newUpdateMocks() updateMocks {
	return updateMocks{
		factory:  new(MockOrderUoWFactory),
		uow:      new(MockOrderUoW),
		orders:   new(MockOrderRepository),
		labels:   new(MockStatusLabelRepository),
		observer: new(MockTransitionObserver),
	}
}

func (m updateMocks) expectLoad(ctx context.Context, o *order.Order) {
	m.expectLoadWithLabels(ctx, o, order.DefaultStatusLabels())
}

func (m updateMocks) expectLoadWithLabels(ctx context.Context, o *order.Order, labels order.StatusLabels) {
	mock.InOrder(
		m.factory.On("Create").Return(m.uow).Once(),
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.uow.On("StatusLabelRepository").Return(m.labels).Once(),
		m.labels.On("GetDefaultLabels", ctx).Return(labels, nil).Once(),
		m.uow.On("OrderRepository").Return(m.orders).Once(),
		m.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
	)
	m.uow.On("Rollback", ctx).Return(nil).Once()
}

// expectBatch wires the listing and the per-order load of a reclassify run.
// Each order gets its own unit of work; the mocks stand in for all of them.
func (m updateMocks) expectBatch(ctx context.Context, ids ...kernel.UUID) {
	m.factory.On("Create").Return(m.uow)
	m.uow.On("Begin", ctx).Return(nil)
	m.uow.On("Rollback", ctx).Return(nil)
	m.uow.On("OrderRepository").Return(m.orders)
	m.uow.On("StatusLabelRepository").Return(m.labels)
	m.labels.On("GetDefaultLabels", ctx).Return(order.DefaultStatusLabels(), nil)
	m.orders.On("GetIDsInStates", ctx, []order.State{order.StateNew, order.StateProcessing, order.StateComplete}).
		Return(ids, nil).Once()
}

func (m updateMocks) expectSave(ctx context.Context) {
	mock.InOrder(
		m.orders.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		m.uow.On("Commit", ctx).Return(nil).Once(),
	)
}

func (m updateMocks) assertExpectations(t mock.TestingT) {
	m.factory.AssertExpectations(t)
	m.uow.AssertExpectations(t)
	m.orders.AssertExpectations(t)
	m.labels.AssertExpectations(t)
	m.observer.AssertExpectations(t)
}

func simpleItem(qty order.ItemQuantities) *order.Item {
	item, err := order.RestoreItem(kernel.NewUUID(), "MUG-01", order.ProductTypeSimple, decimal.NewFromInt(10), qty)
	if err != nil {
		panic(err)
	}
	return item
}

func virtualItem(qty order.ItemQuantities) *order.Item {
	item, err := order.RestoreItem(kernel.NewUUID(), "EBOOK-01", order.ProductTypeVirtual, decimal.NewFromInt(10), qty)
	if err != nil {
		panic(err)
	}
	return item
}

func restoreOrder(
	state order.State,
	items []*order.Item,
	invoices []*order.Invoice,
	payments order.Payments,
) *order.Order {
	status, err := order.DefaultStatusLabels().DefaultStatus(state)
	if err != nil {
		panic(err)
	}

	o, err := order.RestoreOrder(kernel.NewUUID(), state, status, items, invoices, payments, order.Hold{})
	if err != nil {
		panic(err)
	}
	return o
}

func paidInvoice(total int64) *order.Invoice {
	invoice, err := order.RestoreInvoice(kernel.NewUUID(), order.InvoiceStatePaid, decimal.NewFromInt(total))
	if err != nil {
		panic(err)
	}
	return invoice
}

func openInvoice(total int64) *order.Invoice {
	invoice, err := order.RestoreInvoice(kernel.NewUUID(), order.InvoiceStateOpen, decimal.NewFromInt(total))
	if err != nil {
		panic(err)
	}
	return invoice
}
