package queries_test

import (
	"context"
	"errors"
	"testing"

	"tastyfood/internal/core/application/usecases/queries"
	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/core/ports"
	"tastyfood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

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

func catalogFixture() []ports.MenuItem {
	return []ports.MenuItem{
		{
			ID:          1,
			Name:        "Margherita Pizza",
			Description: "Tomato, mozzarella, basil",
			Price:       kernel.NewMoneyFromFloat(12.50),
			Category:    "Mains",
			ImageURL:    "https://cdn.example.com/margherita.jpg",
			Available:   true,
		},
		{
			ID:        2,
			Name:      "Fries",
			Price:     kernel.NewMoneyFromFloat(5.00),
			Category:  "Sides",
			Available: true,
		},
		{
			ID:        3,
			Name:      "Seasonal Special",
			Price:     kernel.NewMoneyFromFloat(9.00),
			Category:  "Mains",
			Available: false,
		},
	}
}

func TestGetMenuQueryHandler_Handle_FiltersUnavailableItems(t *testing.T) {
	// Arrange
	ctx := t.Context()
	mockCatalog := new(MockCatalogClient)
	mockCatalog.On("ListAvailableItems", ctx).Return(catalogFixture(), nil).Once()

	handler := queries.NewGetMenuQueryHandler(mockCatalog)

	// Act
	menu, err := handler.Handle(ctx, queries.NewGetMenuQuery())

	// Assert
	require.NoError(t, err)
	require.Len(t, menu, 2)
	assert.Equal(t, 1, menu[0].ItemID)
	assert.Equal(t, "Margherita Pizza", menu[0].Name)
	assert.Equal(t, "12.5", menu[0].Price.String())
	assert.Equal(t, "Fries", menu[1].Name)
	mockCatalog.AssertExpectations(t)
}

func TestGetMenuQueryHandler_Handle_UpstreamUnavailable(t *testing.T) {
	// Arrange
	ctx := t.Context()
	upstreamErr := errs.NewUpstreamUnavailableError("menu catalog", errors.New("connection refused"))
	mockCatalog := new(MockCatalogClient)
	mockCatalog.On("ListAvailableItems", ctx).Return(nil, upstreamErr).Once()

	handler := queries.NewGetMenuQueryHandler(mockCatalog)

	// Act
	menu, err := handler.Handle(ctx, queries.NewGetMenuQuery())

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUpstreamUnavailable)
	assert.Nil(t, menu)
	mockCatalog.AssertExpectations(t)
}

func TestGetMenuQueryHandler_Handle_InvalidQuery(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidQuery queries.GetMenuQuery // zero value query

	mockCatalog := new(MockCatalogClient)
	handler := queries.NewGetMenuQueryHandler(mockCatalog)

	// Act
	_, err := handler.Handle(ctx, invalidQuery)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetMenuQueryIsNotConstructed)
	mockCatalog.AssertExpectations(t)
}

func TestNewGetMenuQuery(t *testing.T) {
	assert.NoError(t, queries.NewGetMenuQuery().Validate())
}
