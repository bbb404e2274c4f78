package postgres_test

import (
	"context"
	"testing"
	"time"

	postgresadapter "courier/internal/adapters/out/postgres"
	"courier/internal/adapters/out/postgres/carrierrepo"
	"courier/internal/adapters/out/postgres/orderrepo"
	"courier/internal/adapters/out/postgres/userrepo"
	"courier/internal/core/domain/model/carrier"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/order"
	"courier/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction coordination across the
// order, user and carrier repositories against a real PostgreSQL container.
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&userrepo.UserDTO{},
		&carrierrepo.CarrierDTO{},
	))

	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, users, carriers").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder(trackingNumber string) *order.Order {
	o, err := order.NewOrder(
		kernel.NewUUID(),
		trackingNumber,
		kernel.NewUUID(),
		time.Now().UTC().Add(48*time.Hour),
		kernel.NewUUID(),
		kernel.NewUUID(),
		order.PriorityNormal,
		decimal.NewFromFloat(2.5),
		"30x20x10",
		decimal.NewFromFloat(150.00),
	)
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestCarrier(name string) *carrier.Carrier {
	c, err := carrier.NewCarrier(kernel.NewUUID(), kernel.NewUUID(), name,
		"+34600111222", "1234-ABC", carrier.VehicleMotorcycle, decimal.NewFromInt(20))
	suite.Require().NoError(err)
	return c
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesIsolatedInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.UserRepository())
	suite.NotNil(uow1.CarrierRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	// a second Begin must not open a nested transaction
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitAndRollbackRequireActiveTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder("TRK-UOW-0001")
	testCarrier := suite.createTestCarrier("Pedro")

	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.OrderRepository().Save(ctx, testOrder))
	suite.Require().NoError(uow.CarrierRepository().Save(ctx, testCarrier))

	suite.Require().NoError(testOrder.AssignCarrier(testCarrier.ID()))
	testCarrier.MarkInTransit()

	suite.Require().NoError(uow.OrderRepository().Save(ctx, testOrder))
	suite.Require().NoError(uow.CarrierRepository().Save(ctx, testCarrier))

	suite.Require().NoError(uow.Commit(ctx))

	newUow := suite.factory.Create()

	loadedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(loadedOrder.CarrierID())
	suite.True(testCarrier.ID().IsEqual(*loadedOrder.CarrierID()))
	suite.Equal(order.StatusProcessing, loadedOrder.Status())

	loadedCarrier, err := newUow.CarrierRepository().Get(ctx, testCarrier.ID())
	suite.Require().NoError(err)
	suite.Equal(carrier.StatusInTransit, loadedCarrier.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder("TRK-UOW-0002")
	testCarrier := suite.createTestCarrier("Lucia")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Save(ctx, testOrder))
	suite.Require().NoError(uow.CarrierRepository().Save(ctx, testCarrier))

	// visible inside the transaction
	_, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Rollback(ctx))

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Error(err)
	_, err = newUow.CarrierRepository().Get(ctx, testCarrier.ID())
	suite.Error(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	order1 := suite.createTestOrder("TRK-UOW-0003")
	order2 := suite.createTestOrder("TRK-UOW-0004")

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	suite.Require().NoError(uow1.OrderRepository().Save(ctx, order1))
	suite.Require().NoError(uow2.OrderRepository().Save(ctx, order2))

	_, err := uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Error(err, "uncommitted rows of another transaction must stay invisible")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, order1.ID())
	suite.NoError(err)
	_, err = newUow.OrderRepository().Get(ctx, order2.ID())
	suite.Error(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositoriesWorkWithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder("TRK-UOW-0005")
	suite.Require().NoError(uow.OrderRepository().Save(ctx, testOrder))

	newUow := suite.factory.Create()
	loaded, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(testOrder.IsEqual(loaded))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
