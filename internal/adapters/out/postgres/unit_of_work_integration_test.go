package postgres_test

import (
	"context"
	"testing"

	postgresadapter "grabngo/internal/adapters/out/postgres"
	"grabngo/internal/adapters/out/postgres/itemrepo"
	"grabngo/internal/adapters/out/postgres/orderrepo"
	"grabngo/internal/core/domain/model/item"
	"grabngo/internal/core/domain/model/kernel"
	"grabngo/internal/core/domain/model/order"
	"grabngo/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM-based unit of work
// against a real PostgreSQL database.
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
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &itemrepo.ItemDTO{})
	suite.Require().NoError(err)

	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, items").Error
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
	suite.NotNil(uow1.ItemRepository())
	suite.NotNil(uow2.OrderRepository())
	suite.NotNil(uow2.ItemRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Repeated Begin on an active transaction is a no-op
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBeginFails() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().Error(uow.Commit(ctx))
	suite.Require().Error(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCheckoutWorkflow_CommitsItemAndOrderTogether() {
	ctx := context.Background()
	uow := suite.factory.Create()

	burger := createTestItem()
	pending := createTestOrder()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ItemRepository().Add(ctx, burger)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, pending)
	suite.Require().NoError(err)

	// Both are visible inside the transaction
	_, err = uow.ItemRepository().Get(ctx, burger.ID())
	suite.Require().NoError(err)
	_, err = uow.OrderRepository().Get(ctx, pending.ID())
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	storedOrder, err := newUow.OrderRepository().Get(ctx, pending.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusPending, storedOrder.Status())
	suite.InDelta(pending.TotalAmount(), storedOrder.TotalAmount(), 0.001)

	storedItem, err := newUow.ItemRepository().Get(ctx, burger.ID())
	suite.Require().NoError(err)
	suite.True(storedItem.ID().IsEqual(burger.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	burger := createTestItem()
	pending := createTestOrder()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ItemRepository().Add(ctx, burger)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, pending)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, pending.ID())
	suite.Require().Error(err)
	_, err = newUow.ItemRepository().Get(ctx, burger.ID())
	suite.Require().Error(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	order1 := createTestOrder()
	order2 := createTestOrder()

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	suite.Require().NoError(uow1.OrderRepository().Add(ctx, order1))
	suite.Require().NoError(uow2.OrderRepository().Add(ctx, order2))

	_, err := uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "uncommitted rows must not leak between transactions")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err)
	_, err = newUow.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestWithoutTransaction_AutoCommits() {
	ctx := context.Background()
	uow := suite.factory.Create()

	pending := createTestOrder()
	err := uow.OrderRepository().Add(ctx, pending)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	stored, err := newUow.OrderRepository().Get(ctx, pending.ID())
	suite.Require().NoError(err)
	suite.True(stored.ID().IsEqual(pending.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestAcceptWorkflow_ConditionalWriteInsideTransaction() {
	ctx := context.Background()

	pending := createTestOrder()
	setupUow := suite.factory.Create()
	suite.Require().NoError(setupUow.OrderRepository().Add(ctx, pending))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	claimed, err := uow.OrderRepository().Get(ctx, pending.ID())
	suite.Require().NoError(err)

	location, err := kernel.NewGeoPoint(40.758, -73.9855)
	suite.Require().NoError(err)
	suite.Require().NoError(claimed.Assign("driver@grabngo.com", "Alex Driver", location, 5))

	err = uow.OrderRepository().UpdateWhereStatus(ctx, claimed, order.StatusPending)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Commit(ctx))

	newUow := suite.factory.Create()
	stored, err := newUow.OrderRepository().Get(ctx, pending.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusAccepted, stored.Status())
	suite.Equal("driver@grabngo.com", stored.DriverEmail())
}

func createTestOrder() *order.Order {
	line, _ := order.NewLine(kernel.NewUUID(), "Classic Cheeseburger", 10.99, 2)
	pending, _ := order.NewOrder(
		kernel.NewUUID(),
		"customer@grabngo.com",
		"Jane Customer",
		"350 5th Ave",
		nil,
		[]order.Line{line},
		"Burger House, 21 Spring St",
		nil,
	)
	return pending
}

func createTestItem() *item.Item {
	burger, _ := item.NewItem(
		kernel.NewUUID(),
		"Classic Cheeseburger",
		"Juicy beef patty with cheese, lettuce, and tomato",
		10.99,
		item.CategoryFood,
		"https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=400",
		"Burger House",
		12,
		4.7,
	)
	return burger
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
