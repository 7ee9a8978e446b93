package queries_test

import (
	"context"
	"testing"

	"tastyfood/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/suite"
)

type GetActiveOrdersQueryHandlerTestSuite struct {
	queryIntegrationSuite
	handler queries.GetActiveOrdersQueryHandler
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) SetupSuite() {
	suite.queryIntegrationSuite.SetupSuite()
	suite.handler = queries.NewGetActiveOrdersQueryHandler(suite.db)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetActiveOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_ReturnsPendingOrdersOldestFirst() {
	second := suite.seedOrder(2)
	first := suite.seedOrder(1)
	onDuty := suite.seedDriver("Maria", "Santos", "msantos")

	// Assign a driver to the second order only.
	err := second.AssignDriver(onDuty.ID(), onDuty.FirstName(), onDuty.LastName())
	suite.Require().NoError(err)
	err = suite.orders.Update(context.Background(), second)
	suite.Require().NoError(err)

	query := queries.NewGetActiveOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal("FD0001", result[0].OrderNumber.String())
	suite.Equal("Pending", result[0].Status)
	suite.Nil(result[0].DriverID)
	suite.Empty(result[0].DriverName)
	suite.True(first.Pricing().GrandTotal().IsEqual(result[0].GrandTotal))
	suite.Equal("Austin", result[0].Address.City())
	suite.Equal(30, result[0].DeliveryETA)

	suite.Require().Len(result[0].Items, 2)
	suite.Equal("Margherita Pizza", result[0].Items[0].Name)
	suite.Equal(2, result[0].Items[0].Quantity)
	suite.Equal("25", result[0].Items[0].Total.String())
	suite.Equal("Fries", result[0].Items[1].Name)

	suite.Equal("FD0002", result[1].OrderNumber.String())
	suite.Require().NotNil(result[1].DriverID)
	suite.True(result[1].DriverID.IsEqual(onDuty.ID()))
	suite.Equal("Maria Santos", result[1].DriverName)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_ExcludesSettledOrders() {
	settled := suite.seedOrder(1)
	suite.seedOrder(2)
	onDuty := suite.seedDriver("Maria", "Santos", "msantos")
	suite.completeOrder(settled, onDuty)

	query := queries.NewGetActiveOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("FD0002", result[0].OrderNumber.String())
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetActiveOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, queries.ErrGetActiveOrdersQueryIsNotConstructed)
}

func TestGetActiveOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetActiveOrdersQueryHandlerTestSuite))
}
