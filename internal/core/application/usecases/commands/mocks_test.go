package commands_test

import (
	"context"
	"testing"
	"time"

	"tastyfood/internal/core/application/usecases/commands"
	"tastyfood/internal/core/domain/model/driver"
	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/core/domain/model/order"
	"tastyfood/internal/core/domain/model/pricing"
	"tastyfood/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock implementations for testing.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, orderNumber kernel.OrderNumber) (*order.Order, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllFinished(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) NextOrderNumber(ctx context.Context) (kernel.OrderNumber, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.OrderNumber), args.Error(1)
}

type MockDriverRepository struct {
	mock.Mock
}

func (m *MockDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetAll(ctx context.Context) ([]*driver.Driver, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetAllActive(ctx context.Context) ([]*driver.Driver, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) ExistsWithName(ctx context.Context, firstName, lastName string) (bool, error) {
	args := m.Called(ctx, firstName, lastName)
	return args.Bool(0), args.Error(1)
}

type MockOrderUoW struct {
	mock.Mock
}

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

type MockOrderUoWFactory struct {
	mock.Mock
}

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockDriverUoW struct {
	mock.Mock
}

func (m *MockDriverUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDriverUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDriverUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDriverUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

type MockDriverUoWFactory struct {
	mock.Mock
}

func (m *MockDriverUoWFactory) Create() commands.DriverUoW {
	args := m.Called()
	return args.Get(0).(commands.DriverUoW)
}

type MockUoW struct {
	mock.Mock
}

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

func (m *MockUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

type MockUoWFactory struct {
	mock.Mock
}

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockCatalogClient struct {
	mock.Mock
}

func (m *MockCatalogClient) ListAvailableItems(ctx context.Context) ([]ports.MenuItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.MenuItem), args.Error(1)
}

func (m *MockCatalogClient) ListAvailableItemsStrict(ctx context.Context) ([]ports.MenuItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.MenuItem), args.Error(1)
}

// Shared fixtures.

func menuFixture(t *testing.T) []ports.MenuItem {
	t.Helper()
	price := func(s string) kernel.Money {
		m, err := kernel.MoneyFromString(s)
		require.NoError(t, err)
		return m
	}
	return []ports.MenuItem{
		{ID: 1, Name: "Margherita Pizza", Price: price("12.50"), Category: "Pizza", Available: true},
		{ID: 2, Name: "Fries", Price: price("5.00"), Category: "Sides", Available: true},
		{ID: 3, Name: "Seasonal Special", Price: price("9.00"), Category: "Specials", Available: false},
	}
}

func pendingOrderFixture(t *testing.T, sequence int) *order.Order {
	t.Helper()

	unitPrice, err := kernel.MoneyFromString("12.50")
	require.NoError(t, err)
	line, err := order.NewLine(1, "Margherita Pizza", unitPrice, 2)
	require.NoError(t, err)

	cartLine, err := pricing.NewCartLine(1, "Margherita Pizza", unitPrice, 2)
	require.NoError(t, err)
	breakdown, err := pricing.Compute(
		pricing.NewCart([]pricing.CartLine{cartLine}), false, pricing.DefaultTipSelection())
	require.NoError(t, err)

	address, err := kernel.NewAddress("100 Congress Ave", "", "Austin", "TX", "78701")
	require.NoError(t, err)

	number, err := kernel.NewOrderNumber(sequence)
	require.NoError(t, err)

	o, err := order.NewOrder(number, []order.Line{line}, breakdown, address, 30, time.Now())
	require.NoError(t, err)
	return o
}

func driverFixture(t *testing.T, firstName, lastName string) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(kernel.NewUUID(), firstName, lastName, firstName+lastName)
	require.NoError(t, err)
	return d
}
