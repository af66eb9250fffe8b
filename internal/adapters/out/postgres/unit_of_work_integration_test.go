package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "trustpoints/internal/adapters/out/postgres"
	"trustpoints/internal/adapters/out/postgres/accountrepo"
	"trustpoints/internal/adapters/out/postgres/orderrepo"
	"trustpoints/internal/adapters/out/postgres/payoutrepo"
	"trustpoints/internal/core/domain/model/account"
	"trustpoints/internal/core/domain/model/kernel"
	"trustpoints/internal/core/domain/model/order"
	"trustpoints/internal/core/domain/model/payout"
	"trustpoints/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &accountrepo.AccountDTO{}, &payoutrepo.RewardPayoutDTO{})
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, accounts, reward_payouts").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.AccountRepository())
	suite.NotNil(uow1.PayoutRepository())
	suite.NotNil(uow2.OrderRepository())
	suite.NotNil(uow2.AccountRepository())
	suite.NotNil(uow2.PayoutRepository())
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	// Multiple begin calls must be safe
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_CreateOrderWorkflow verifies the posting workflow: the sender
// is debited and the order inserted atomically within one transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CreateOrderWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	sender := suite.addFundedAccount(200)
	testOrder := createTestOrder(sender.ID())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	balance, err := uow.AccountRepository().Debit(ctx, sender.ID(), testOrder.PointsCost())
	suite.Require().NoError(err)
	suite.Equal(200-testOrder.PointsCost(), balance)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify both effects persisted using a new unit of work
	newUow := suite.factory.Create()

	persistedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Pending, persistedOrder.Status())

	persistedSender, err := newUow.AccountRepository().Get(ctx, sender.ID())
	suite.Require().NoError(err)
	suite.Equal(200-testOrder.PointsCost(), persistedSender.Points())
}

// TestUnitOfWork_CreateOrderRollback verifies rollback restores the sender's
// balance and discards the order.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CreateOrderRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	sender := suite.addFundedAccount(200)
	testOrder := createTestOrder(sender.ID())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	_, err = uow.AccountRepository().Debit(ctx, sender.ID(), testOrder.PointsCost())
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")

	persistedSender, err := newUow.AccountRepository().Get(ctx, sender.ID())
	suite.Require().NoError(err)
	suite.Equal(200, persistedSender.Points(), "Debit should be undone by rollback")
}

// TestUnitOfWork_PayoutWorkflow verifies recording and settling a pending
// reward payout across repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PayoutWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	hunter := suite.addFundedAccount(0)
	pendingPayout, err := payout.NewRewardPayout(kernel.NewUUID(), order.NewID(), hunter.ID(), 75)
	suite.Require().NoError(err)

	err = uow.PayoutRepository().Add(ctx, pendingPayout)
	suite.Require().NoError(err)

	pending, err := uow.PayoutRepository().GetAllPending(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)

	// Settlement: credit the hunter and mark the payout settled in one transaction.
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	balance, err := uow.AccountRepository().Credit(ctx, hunter.ID(), pending[0].Amount())
	suite.Require().NoError(err)
	suite.Equal(75, balance)

	suite.Require().NoError(pending[0].MarkSettled())
	err = uow.PayoutRepository().Update(ctx, pending[0])
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	stillPending, err := newUow.PayoutRepository().GetAllPending(ctx)
	suite.Require().NoError(err)
	suite.Empty(stillPending)
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	order1 := createTestOrder(kernel.NewUUID())
	order2 := createTestOrder(kernel.NewUUID())

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.OrderRepository().Add(ctx, order1)
	suite.Require().NoError(err)

	err = uow2.OrderRepository().Add(ctx, order2)
	suite.Require().NoError(err)

	// Each transaction should only see its own changes
	_, err = uow1.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "UOW1 should see order1")

	_, err = uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")

	_, err = uow2.OrderRepository().Get(ctx, order2.ID())
	suite.Require().NoError(err, "UOW2 should see order2")

	_, err = uow2.OrderRepository().Get(ctx, order1.ID())
	suite.Require().Error(err, "UOW2 should not see order1")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")

	_, err = newUow.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder(kernel.NewUUID())

	// Add order without beginning transaction (auto-commit)
	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrievedOrder.ID().IsEqual(testOrder.ID()))
}

// createTestOrder creates a valid pending order for testing purposes.
func createTestOrder(senderID kernel.UUID) *order.Order {
	pickupPoint, _ := kernel.NewGeoPoint(106.8456, -6.2088)
	destPoint, _ := kernel.NewGeoPoint(106.9000, -6.2500)
	pickup, _ := order.NewWaypoint("Jl. Sudirman 1, Jakarta", pickupPoint)
	destination, _ := order.NewWaypoint("Jl. Gatot Subroto 12, Jakarta", destPoint)
	route, _ := order.NewRoute(pickup, destination, 5)
	item, _ := order.NewItem("Paket dokumen", order.CategoryDocument, 0.3, false, "", "")
	testOrder, _ := order.NewOrder(order.NewID(), senderID, item, route, "")
	return testOrder
}

// addFundedAccount persists an account with the given balance outside any transaction.
func (suite *UnitOfWorkIntegrationTestSuite) addFundedAccount(points int) *account.Account {
	ctx := context.Background()
	now := time.Now().UTC()

	funded, err := account.RestoreAccount(
		kernel.NewUUID(), "Budi Santoso", kernel.NewUUID().String()+"@example.com",
		points, now, now,
	)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.AccountRepository().Add(ctx, funded))
	return funded
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
