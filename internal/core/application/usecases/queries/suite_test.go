package queries_test

import (
	"context"
	"time"

	"tastyfood/internal/adapters/out/postgres/driverrepo"
	"tastyfood/internal/adapters/out/postgres/orderrepo"
	"tastyfood/internal/core/domain/model/driver"
	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/core/domain/model/order"
	"tastyfood/internal/core/domain/model/pricing"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopTracker satisfies the repositories' tracker dependency; query tests do
// not care about aggregate tracking.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ string, _ any) {}

// queryIntegrationSuite carries the shared PostgreSQL container setup for the
// SQL-backed query handler suites.
type queryIntegrationSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	orders    *orderrepo.GormOrderRepository
	drivers   *driverrepo.GormDriverRepository
}

func (suite *queryIntegrationSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}, &driverrepo.DriverDTO{})
	suite.Require().NoError(err)

	suite.orders = orderrepo.NewGormOrderRepository(db, noopTracker{})
	suite.drivers = driverrepo.NewGormDriverRepository(db, noopTracker{})
}

func (suite *queryIntegrationSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items, drivers").Error
	suite.Require().NoError(err)
}

func (suite *queryIntegrationSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// seedOrder persists a pending order with a fixed two-line cart.
func (suite *queryIntegrationSuite) seedOrder(sequence int) *order.Order {
	pizza, err := pricing.NewCartLine(1, "Margherita Pizza", kernel.NewMoneyFromFloat(12.50), 2)
	suite.Require().NoError(err)
	fries, err := pricing.NewCartLine(2, "Fries", kernel.NewMoneyFromFloat(5.00), 1)
	suite.Require().NoError(err)
	cart := pricing.NewCart([]pricing.CartLine{pizza, fries})

	breakdown, err := pricing.Compute(cart, false, pricing.DefaultTipSelection())
	suite.Require().NoError(err)
	lines, err := order.LinesFromCart(cart)
	suite.Require().NoError(err)
	number, err := kernel.NewOrderNumber(sequence)
	suite.Require().NoError(err)
	address, err := kernel.NewAddress("100 Congress Ave", "", "Austin", "TX", "78701")
	suite.Require().NoError(err)

	o, err := order.NewOrder(number, lines, breakdown, address, 30, time.Now().UTC())
	suite.Require().NoError(err)

	err = suite.orders.Add(context.Background(), o)
	suite.Require().NoError(err)
	return o
}

// seedDriver persists an active driver.
func (suite *queryIntegrationSuite) seedDriver(firstName, lastName, username string) *driver.Driver {
	d, err := driver.NewDriver(kernel.NewUUID(), firstName, lastName, username)
	suite.Require().NoError(err)

	err = suite.drivers.Add(context.Background(), d)
	suite.Require().NoError(err)
	return d
}

// completeOrder assigns a driver and completes the order in place,
// persisting the change.
func (suite *queryIntegrationSuite) completeOrder(o *order.Order, d *driver.Driver) {
	err := o.AssignDriver(d.ID(), d.FirstName(), d.LastName())
	suite.Require().NoError(err)

	deliveryTime, err := kernel.ParseClockTime12("6:10 PM")
	suite.Require().NoError(err)
	err = o.Complete(time.Now().UTC(), deliveryTime)
	suite.Require().NoError(err)

	err = suite.orders.Update(context.Background(), o)
	suite.Require().NoError(err)
}
