package accountrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"trustpoints/internal/adapters/out/postgres/accountrepo"
	"trustpoints/internal/core/domain/model/account"
	"trustpoints/internal/core/domain/model/kernel"
	"trustpoints/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id string, aggregate interface{}) {
	m.Called(id, aggregate)
}

// AccountRepositoryIntegrationTestSuite provides integration tests for
// AccountRepository using PostgreSQL containers, with emphasis on the atomic
// ledger operations under concurrency.
type AccountRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *accountrepo.GormAccountRepository
	tracker    *MockAggregateTracker
}

func (suite *AccountRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&accountrepo.AccountDTO{}))
}

func (suite *AccountRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE accounts").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = accountrepo.NewGormAccountRepository(suite.db, suite.tracker)
}

func (suite *AccountRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *AccountRepositoryIntegrationTestSuite) TestAdd_ValidAccount_Success() {
	ctx := context.Background()

	testAccount := suite.createTestAccount("budi@example.com")

	suite.tracker.On("TrackAggregate", testAccount.ID().String(), testAccount).Once()

	err := suite.repository.Add(ctx, testAccount)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, testAccount.ID())
	suite.Require().NoError(err)
	suite.Equal("budi@example.com", retrieved.Email())
	suite.Equal(0, retrieved.Points())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *AccountRepositoryIntegrationTestSuite) TestAdd_DuplicateEmail_Fails() {
	ctx := context.Background()

	first := suite.createTestAccount("shared@example.com")
	second := suite.createTestAccount("shared@example.com")

	suite.tracker.On("TrackAggregate", first.ID().String(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	err := suite.repository.Add(ctx, second)
	suite.Require().Error(err)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *AccountRepositoryIntegrationTestSuite) TestGetByEmail() {
	ctx := context.Background()

	testAccount := suite.createTestAccount("siti@example.com")
	suite.tracker.On("TrackAggregate", testAccount.ID().String(), testAccount).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testAccount))

	retrieved, err := suite.repository.GetByEmail(ctx, "siti@example.com")
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(testAccount.ID()))

	_, err = suite.repository.GetByEmail(ctx, "nobody@example.com")
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *AccountRepositoryIntegrationTestSuite) TestCreditAndDebit() {
	ctx := context.Background()

	testAccount := suite.addFundedAccount(100)

	balance, err := suite.repository.Credit(ctx, testAccount.ID(), 50)
	suite.Require().NoError(err)
	suite.Equal(150, balance)

	balance, err = suite.repository.Debit(ctx, testAccount.ID(), 150)
	suite.Require().NoError(err)
	suite.Equal(0, balance)
}

func (suite *AccountRepositoryIntegrationTestSuite) TestDebit_Overdraw_ReturnsInsufficientPoints() {
	ctx := context.Background()

	testAccount := suite.addFundedAccount(40)

	balance, err := suite.repository.Debit(ctx, testAccount.ID(), 41)
	suite.Require().ErrorIs(err, account.ErrInsufficientPoints)
	suite.Equal(40, balance, "failed debit must not touch the balance")

	retrieved, getErr := suite.repository.Get(ctx, testAccount.ID())
	suite.Require().NoError(getErr)
	suite.Equal(40, retrieved.Points())
}

func (suite *AccountRepositoryIntegrationTestSuite) TestDebit_MissingAccount_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Debit(ctx, kernel.NewUUID(), 10)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *AccountRepositoryIntegrationTestSuite) TestDebit_ConcurrentDebits_NeverOverdraw() {
	ctx := context.Background()

	// Balance 100, two concurrent debits of 60: exactly one can apply.
	testAccount := suite.addFundedAccount(100)

	var wg sync.WaitGroup
	outcomes := make(chan error, 2)

	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := suite.repository.Debit(ctx, testAccount.ID(), 60)
			outcomes <- err
		}()
	}

	wg.Wait()
	close(outcomes)

	wins := 0
	for err := range outcomes {
		if err == nil {
			wins++
		} else {
			suite.Require().ErrorIs(err, account.ErrInsufficientPoints)
		}
	}
	suite.Equal(1, wins)

	retrieved, err := suite.repository.Get(ctx, testAccount.ID())
	suite.Require().NoError(err)
	suite.Equal(40, retrieved.Points())
}

func (suite *AccountRepositoryIntegrationTestSuite) createTestAccount(email string) *account.Account {
	testAccount, err := account.NewAccount(kernel.NewUUID(), "Budi Santoso", email)
	suite.Require().NoError(err)
	return testAccount
}

// addFundedAccount persists an account restored with the given balance.
func (suite *AccountRepositoryIntegrationTestSuite) addFundedAccount(points int) *account.Account {
	ctx := context.Background()
	now := time.Now().UTC()

	testAccount, err := account.RestoreAccount(
		kernel.NewUUID(), "Budi Santoso", kernel.NewUUID().String()+"@example.com",
		points, now, now,
	)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", testAccount.ID().String(), testAccount).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testAccount))
	return testAccount
}

func TestAccountRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(AccountRepositoryIntegrationTestSuite))
}
