package queries_test

import (
	"context"
	"testing"

	"tastyfood/internal/core/application/usecases/queries"
	"tastyfood/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
)

type GetAssignableDriversQueryHandlerTestSuite struct {
	queryIntegrationSuite
	handler queries.GetAssignableDriversQueryHandler
}

func (suite *GetAssignableDriversQueryHandlerTestSuite) SetupSuite() {
	suite.queryIntegrationSuite.SetupSuite()
	suite.handler = queries.NewGetAssignableDriversQueryHandler(suite.db)
}

func (suite *GetAssignableDriversQueryHandlerTestSuite) TestHandle_ExcludesBusyAndInactiveDrivers() {
	target := suite.seedOrder(1)
	other := suite.seedOrder(2)

	free := suite.seedDriver("Alice", "Kim", "akim")
	busy := suite.seedDriver("Bob", "Lopez", "blopez")

	inactive := suite.seedDriver("Charlie", "Nguyen", "cnguyen")
	inactive.Deactivate()
	err := suite.drivers.Update(context.Background(), inactive)
	suite.Require().NoError(err)

	// Bob is out on the other pending order.
	err = other.AssignDriver(busy.ID(), busy.FirstName(), busy.LastName())
	suite.Require().NoError(err)
	err = suite.orders.Update(context.Background(), other)
	suite.Require().NoError(err)

	query, err := queries.NewGetAssignableDriversQuery(target.OrderNumber())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(free.ID()))
	suite.Equal("Alice", result[0].FirstName)
	suite.Equal("Kim", result[0].LastName)
}

func (suite *GetAssignableDriversQueryHandlerTestSuite) TestHandle_KeepsOwnDriverSelectable() {
	target := suite.seedOrder(1)
	onDuty := suite.seedDriver("Maria", "Santos", "msantos")

	err := target.AssignDriver(onDuty.ID(), onDuty.FirstName(), onDuty.LastName())
	suite.Require().NoError(err)
	err = suite.orders.Update(context.Background(), target)
	suite.Require().NoError(err)

	query, err := queries.NewGetAssignableDriversQuery(target.OrderNumber())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(onDuty.ID()))
}

func (suite *GetAssignableDriversQueryHandlerTestSuite) TestHandle_SettledOrdersFreeTheirDrivers() {
	settled := suite.seedOrder(1)
	target := suite.seedOrder(2)
	onDuty := suite.seedDriver("Maria", "Santos", "msantos")

	suite.completeOrder(settled, onDuty)

	query, err := queries.NewGetAssignableDriversQuery(target.OrderNumber())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(onDuty.ID()))
}

func (suite *GetAssignableDriversQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetAssignableDriversQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, queries.ErrGetAssignableDriversQueryIsNotConstructed)
}

// The query itself is an input too: an order that does not exist simply has
// no busy exclusions, so every free active driver is assignable.
func (suite *GetAssignableDriversQueryHandlerTestSuite) TestHandle_UnknownOrderListsAllFreeDrivers() {
	suite.seedDriver("Alice", "Kim", "akim")

	query, err := queries.NewGetAssignableDriversQuery(kernel.FirstOrderNumber())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 1)
}

func TestGetAssignableDriversQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAssignableDriversQueryHandlerTestSuite))
}
