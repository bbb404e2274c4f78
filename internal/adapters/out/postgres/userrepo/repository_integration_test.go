package userrepo_test

import (
	"context"
	"testing"
	"time"

	"courier/internal/adapters/out/postgres/userrepo"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/user"
	"courier/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// UserRepositoryIntegrationTestSuite verifies user persistence behavior
// against a real PostgreSQL container.
type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *userrepo.GormUserRepository
	tracker    *MockAggregateTracker
}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&userrepo.UserDTO{}))
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE users").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = userrepo.NewGormUserRepository(suite.db, suite.tracker)
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UserRepositoryIntegrationTestSuite) createTestUser(email string, role user.Role) *user.User {
	u, err := user.NewUser(kernel.NewUUID(), email,
		"$2a$10$abcdefghijklmnopqrstuv", "Ana", "Garcia", "+34600111222", role)
	suite.Require().NoError(err)
	return u
}

func (suite *UserRepositoryIntegrationTestSuite) TestSaveAndGet() {
	ctx := context.Background()
	testUser := suite.createTestUser("ana@example.com", user.RoleClient)
	suite.tracker.On("TrackAggregate", testUser.ID(), testUser).Once()

	suite.Require().NoError(suite.repository.Save(ctx, testUser))

	loaded, err := suite.repository.Get(ctx, testUser.ID())
	suite.Require().NoError(err)
	suite.Equal("ana@example.com", loaded.Email())
	suite.Equal(user.RoleClient, loaded.Role())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *UserRepositoryIntegrationTestSuite) TestGetByEmail_CaseInsensitive() {
	ctx := context.Background()
	testUser := suite.createTestUser("ana@example.com", user.RoleClient)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Save(ctx, testUser))

	loaded, err := suite.repository.GetByEmail(ctx, "Ana@Example.COM")
	suite.Require().NoError(err)
	suite.True(testUser.IsEqual(loaded))

	_, err = suite.repository.GetByEmail(ctx, "missing@example.com")
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UserRepositoryIntegrationTestSuite) TestEmailExists() {
	ctx := context.Background()
	testUser := suite.createTestUser("ana@example.com", user.RoleClient)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Save(ctx, testUser))

	exists, err := suite.repository.EmailExists(ctx, "ana@example.com")
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.repository.EmailExists(ctx, "missing@example.com")
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *UserRepositoryIntegrationTestSuite) TestGetByRole() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	client := suite.createTestUser("client@example.com", user.RoleClient)
	carrier := suite.createTestUser("carrier@example.com", user.RoleCarrier)
	suite.Require().NoError(suite.repository.Save(ctx, client))
	suite.Require().NoError(suite.repository.Save(ctx, carrier))

	carriers, err := suite.repository.GetByRole(ctx, user.RoleCarrier)
	suite.Require().NoError(err)
	suite.Require().Len(carriers, 1)
	suite.True(carrier.IsEqual(carriers[0]))
}

func (suite *UserRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	testUser := suite.createTestUser("ana@example.com", user.RoleClient)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Save(ctx, testUser))

	suite.Require().NoError(suite.repository.Delete(ctx, testUser.ID()))

	_, err := suite.repository.Get(ctx, testUser.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	// Deleting an already removed user is a no-op.
	suite.NoError(suite.repository.Delete(ctx, testUser.ID()))
}

func TestUserRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}
