package postgres_test

import (
	"context"
	"testing"
	"time"

	postgresadapter "tradelink/internal/adapters/out/postgres"
	"tradelink/internal/adapters/out/postgres/orderrepo"
	"tradelink/internal/adapters/out/postgres/triprepo"
	"tradelink/internal/core/domain/model/kernel"
	"tradelink/internal/core/domain/model/order"
	"tradelink/internal/core/domain/model/trip"
	"tradelink/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transactional behavior of the
// GORM-based unit of work against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &triprepo.TripDTO{})
	suite.Require().NoError(err)

	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, trips").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesIsolatedInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.TripRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsCrossAggregateWrites() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(1)
	testTrip := suite.createTestTrip()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.TripRepository().Add(ctx, testTrip))
	suite.Require().NoError(uow.Commit(ctx))

	loadedOrder, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(loadedOrder.IsEqual(testOrder))

	loadedTrip, err := suite.factory.Create().TripRepository().Get(ctx, testTrip.ID())
	suite.Require().NoError(err)
	suite.True(loadedTrip.IsEqual(testTrip))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsCrossAggregateWrites() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(1)
	testTrip := suite.createTestTrip()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.TripRepository().Add(ctx, testTrip))
	suite.Require().NoError(uow.Rollback(ctx))

	var orderCount, tripCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&orderCount).Error)
	suite.Require().NoError(suite.db.Model(&triprepo.TripDTO{}).Count(&tripCount).Error)
	suite.Zero(orderCount)
	suite.Zero(tripCount)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestAssignmentFlow_KeepsAggregatesInLockstep() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(1)
	testTrip := suite.createTestTrip()

	setup := suite.factory.Create()
	suite.Require().NoError(setup.Begin(ctx))
	suite.Require().NoError(setup.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(setup.TripRepository().Add(ctx, testTrip))
	suite.Require().NoError(setup.Commit(ctx))

	// assign inside one transaction, the way the command handlers do
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(testTrip.AttachOrder(testOrder.ID(), testOrder.TotalAmount()))
	suite.Require().NoError(testOrder.AssignToTrip(testTrip.ID()))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, testOrder))
	suite.Require().NoError(uow.TripRepository().Update(ctx, testTrip))
	suite.Require().NoError(uow.Commit(ctx))

	loadedOrder, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Dispatched, loadedOrder.Status())

	loadedTrip, err := suite.factory.Create().TripRepository().Get(ctx, testTrip.ID())
	suite.Require().NoError(err)
	suite.Equal(1, loadedTrip.TotalOrders())
	suite.Equal(testOrder.TotalAmount(), loadedTrip.TotalAmount())
	suite.True(loadedTrip.ContainsOrder(testOrder.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_Fails() {
	ctx := context.Background()

	uow := suite.factory.Create()

	err := uow.Commit(ctx)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_AfterCommit_IsInvalid() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))

	err := uow.Rollback(ctx)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBegin_IsIdempotent() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder(seq int) *order.Order {
	date, err := kernel.ParseDeliveryDate("2026-01-15")
	suite.Require().NoError(err)

	rate, err := kernel.NewMoneyFromCents(1000)
	suite.Require().NoError(err)
	item, err := order.NewItem("prod-1", "Wai Wai Carton", 2, rate, 0, "")
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(kernel.NewOrderID(date, seq),
		"cust-1", "Gupta Stores", "sp-1", "Ramesh",
		date, []order.Item{item}, 0, "credit", false, "27.7,85.3")
	suite.Require().NoError(err)

	return testOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestTrip() *trip.Trip {
	date, err := kernel.ParseDeliveryDate("2026-01-15")
	suite.Require().NoError(err)

	testTrip, err := trip.NewTrip(kernel.NewTripID(), date,
		"dp-1", "Suresh", "veh-1", "Ba 2 Kha 1234")
	suite.Require().NoError(err)

	return testTrip
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
